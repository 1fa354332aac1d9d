package list_driver_tasks

import (
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/internal/service/tasks/models"
)

// TaskResponse HTTP модель задачи в списке
type TaskResponse struct {
	ID            string `json:"id"`
	DriverID      string `json:"driverId"`
	VehicleID     string `json:"vehicleId"`
	Date          string `json:"date"`
	StartIndex    int    `json:"startIndex"`
	DurationSlots int    `json:"durationSlots"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	LocationStart string `json:"locationStart"`
	LocationEnd   string `json:"locationEnd"`
	Priority      string `json:"priority"`
	Status        string `json:"status"`
	VehicleType   string `json:"vehicleType"`
	VehicleSeats  int    `json:"vehicleSeats"`
}

// TaskListResponse HTTP модель списка задач водителя
type TaskListResponse struct {
	Tasks []*TaskResponse `json:"tasks"`
	Total int             `json:"total"`
}

// FromServiceResponse конвертирует список сервиса в HTTP response
func FromServiceResponse(list *models.TaskListResponse) *TaskListResponse {
	out := make([]*TaskResponse, 0, len(list.Tasks))
	for _, t := range list.Tasks {
		out = append(out, &TaskResponse{
			ID:            t.ID,
			DriverID:      t.DriverID,
			VehicleID:     t.VehicleID,
			Date:          t.Date.Format(domain.DateFormat),
			StartIndex:    t.StartIndex,
			DurationSlots: t.DurationSlots,
			StartTime:     t.StartTime.Format(time.RFC3339),
			EndTime:       t.EndTime.Format(time.RFC3339),
			LocationStart: t.LocationStart,
			LocationEnd:   t.LocationEnd,
			Priority:      t.Priority,
			Status:        t.Status,
			VehicleType:   t.VehicleType,
			VehicleSeats:  t.VehicleSeats,
		})
	}
	return &TaskListResponse{Tasks: out, Total: list.Total}
}
