package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskProposal is a proposed assignment as it arrives from the caller,
// before any validation.
type TaskProposal struct {
	DriverID      string
	VehicleID     string
	Date          time.Time
	StartIndex    int
	DurationSlots int
	LocationStart string
	LocationEnd   string
	Priority      TaskPriority
}

// SlotMutation is one of the two companion schedule mutations derived from a
// committed task: an inclusive range update for a single resource.
type SlotMutation struct {
	ResourceID string
	Kind       ResourceKind
	Date       time.Time
	StartIndex int
	EndIndex   int

	// DriverStatus applies when Kind is KindDriver, Available when KindVehicle
	DriverStatus DriverSlotStatus
	Available    bool
}

// CommitPlan is the outcome of a validated commit: the task to persist plus
// the two range mutations the caller must apply to keep the schedules
// consistent with it. The plan itself persists nothing.
type CommitPlan struct {
	Task      Task
	Mutations [2]SlotMutation
}

// BuildCommit validates a proposed assignment against the current schedules
// of exactly the requested driver and vehicle and materializes the commit
// plan. Preconditions are checked in a fixed order, first failure wins:
//
//  1. driver and vehicle ids present (ErrMissingResource)
//  2. both endpoints non-empty after trimming (ErrMissingEndpoint)
//  3. the window is well formed (ErrInvalidWindow)
//  4. both resources are free across the whole window (ErrResourceUnavailable)
//
// The re-check in step 4 defends against stale availability snapshots between
// query and commit; callers wanting real mutual exclusion run BuildCommit and
// the mutation writes inside one serializable transaction.
func BuildCommit(p TaskProposal, driver *Driver, vehicle *Vehicle,
	driverSchedule, vehicleSchedule DaySchedule, now time.Time) (*CommitPlan, error) {

	if strings.TrimSpace(p.DriverID) == "" || strings.TrimSpace(p.VehicleID) == "" {
		return nil, ErrMissingResource
	}

	locationStart := strings.TrimSpace(p.LocationStart)
	locationEnd := strings.TrimSpace(p.LocationEnd)
	if locationStart == "" || locationEnd == "" {
		return nil, ErrMissingEndpoint
	}

	window, err := NewWindow(p.StartIndex, p.DurationSlots)
	if err != nil {
		return nil, err
	}

	if !driver.Schedulable() || !DriverFreeFor(driverSchedule, window) {
		return nil, ErrResourceUnavailable
	}
	if !vehicle.Schedulable() || !VehicleUsableFor(vehicle, vehicleSchedule, window) {
		return nil, ErrResourceUnavailable
	}

	priority := p.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	startTime, err := SlotStart(p.Date, window.StartIndex)
	if err != nil {
		return nil, err
	}
	endTime, err := SlotEnd(p.Date, window.LastIndex())
	if err != nil {
		return nil, err
	}

	task := Task{
		ID:            uuid.NewString(),
		DriverID:      p.DriverID,
		VehicleID:     p.VehicleID,
		Date:          p.Date,
		StartIndex:    window.StartIndex,
		DurationSlots: window.DurationSlots,
		StartTime:     startTime,
		EndTime:       endTime,
		LocationStart: locationStart,
		LocationEnd:   locationEnd,
		Priority:      priority,
		Status:        TaskStatusPending,
		VehicleType:   vehicle.VehicleType,
		VehicleSeats:  vehicle.Seats,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return &CommitPlan{
		Task: task,
		Mutations: [2]SlotMutation{
			{
				ResourceID:   p.DriverID,
				Kind:         KindDriver,
				Date:         p.Date,
				StartIndex:   window.StartIndex,
				EndIndex:     window.LastIndex(),
				DriverStatus: SlotBusy,
			},
			{
				ResourceID: p.VehicleID,
				Kind:       KindVehicle,
				Date:       p.Date,
				StartIndex: window.StartIndex,
				EndIndex:   window.LastIndex(),
				Available:  false,
			},
		},
	}, nil
}
