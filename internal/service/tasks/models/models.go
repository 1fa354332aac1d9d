package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// TaskResponse модель задачи для вызывающей стороны
type TaskResponse struct {
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
	Priority      string
	Status        string

	VehicleType  string
	VehicleSeats int

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskListResponse список задач
type TaskListResponse struct {
	Tasks []*TaskResponse
	Total int
}

// FromDomainTask конвертирует доменную задачу в модель ответа
func FromDomainTask(t *domain.Task) *TaskResponse {
	return &TaskResponse{
		ID:                 t.ID,
		DriverID:           t.DriverID,
		VehicleID:          t.VehicleID,
		Date:               t.Date,
		StartIndex:         t.StartIndex,
		DurationSlots:      t.DurationSlots,
		StartTime:          t.StartTime,
		EndTime:            t.EndTime,
		LocationStart:      t.LocationStart,
		LocationEnd:        t.LocationEnd,
		Priority:           string(t.Priority),
		Status:             string(t.Status),
		VehicleType:        t.VehicleType,
		VehicleSeats:       t.VehicleSeats,
		CancellationReason: t.CancellationReason,
		CancelledAt:        t.CancelledAt,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

// FromDomainTaskList конвертирует список доменных задач
func FromDomainTaskList(tasks []*domain.Task) *TaskListResponse {
	out := make([]*TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromDomainTask(t))
	}
	return &TaskListResponse{Tasks: out, Total: len(out)}
}

// ToDomainTaskStatus конвертирует строковый статус в доменный
func ToDomainTaskStatus(status string) (domain.TaskStatus, error) {
	s := domain.TaskStatus(status)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown task status %q", status)
	}
	return s, nil
}
