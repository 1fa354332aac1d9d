package domain

import "time"

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// IsValid returns true if the priority is one of the known values
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// TaskStatus represents the status of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// IsValid returns true if the status is one of the known task states
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// Task is an assignment of exactly one driver and one vehicle to a time
// window on one date. Driver and vehicle ids are weak references: a task
// outlives the deletion of either resource and is retained as a historical
// record with a dangling id. Vehicle type and seat count are snapshotted at
// commit time so later vehicle edits do not rewrite history.
type Task struct {
	ID            string
	DriverID      string
	VehicleID     string
	Date          time.Time
	StartIndex    int
	DurationSlots int
	StartTime     time.Time
	EndTime       time.Time
	LocationStart string
	LocationEnd   string
	Priority      TaskPriority
	Status        TaskStatus

	// Snapshots captured at commit time
	VehicleType  string
	VehicleSeats int

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the task still occupies schedule slots
func (t *Task) IsActive() bool {
	return t.Status == TaskStatusPending || t.Status == TaskStatusInProgress
}

// CanBeCancelled returns true if the task can still be cancelled
func (t *Task) CanBeCancelled() bool {
	return t.Status == TaskStatusPending || t.Status == TaskStatusInProgress
}

// Window returns the slot window the task occupies
func (t *Task) Window() Window {
	return Window{StartIndex: t.StartIndex, DurationSlots: t.DurationSlots}
}
