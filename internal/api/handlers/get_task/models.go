package get_task

import (
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/internal/service/tasks/models"
)

// TaskResponse HTTP response model
type TaskResponse struct {
	ID                 string  `json:"id"`
	DriverID           string  `json:"driverId"`
	VehicleID          string  `json:"vehicleId"`
	Date               string  `json:"date"`
	StartIndex         int     `json:"startIndex"`
	DurationSlots      int     `json:"durationSlots"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	LocationStart      string  `json:"locationStart"`
	LocationEnd        string  `json:"locationEnd"`
	Priority           string  `json:"priority"`
	Status             string  `json:"status"`
	VehicleType        string  `json:"vehicleType"`
	VehicleSeats       int     `json:"vehicleSeats"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(t *models.TaskResponse) *TaskResponse {
	var cancelledAt *string
	if t.CancelledAt != nil {
		formatted := t.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &TaskResponse{
		ID:                 t.ID,
		DriverID:           t.DriverID,
		VehicleID:          t.VehicleID,
		Date:               t.Date.Format(domain.DateFormat),
		StartIndex:         t.StartIndex,
		DurationSlots:      t.DurationSlots,
		StartTime:          t.StartTime.Format(time.RFC3339),
		EndTime:            t.EndTime.Format(time.RFC3339),
		LocationStart:      t.LocationStart,
		LocationEnd:        t.LocationEnd,
		Priority:           t.Priority,
		Status:             t.Status,
		VehicleType:        t.VehicleType,
		VehicleSeats:       t.VehicleSeats,
		CancellationReason: t.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          t.UpdatedAt.Format(time.RFC3339),
	}
}
