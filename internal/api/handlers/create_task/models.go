package create_task

import (
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	createTask "github.com/m04kA/SMC-FleetService/internal/usecase/create_task"
)

// CreateTaskRequest HTTP request model
type CreateTaskRequest struct {
	DriverID      string `json:"driverId"`
	VehicleID     string `json:"vehicleId"`
	Date          string `json:"date"` // "2025-10-15"
	StartIndex    int    `json:"startIndex"`
	DurationSlots int    `json:"durationSlots"`
	LocationStart string `json:"locationStart"`
	LocationEnd   string `json:"locationEnd"`
	Priority      string `json:"priority,omitempty"` // high | medium | low
}

// SlotMutationResponse HTTP модель сопутствующей мутации расписания
type SlotMutationResponse struct {
	ResourceID string `json:"resourceId"`
	Kind       string `json:"kind"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
}

// TaskResponse HTTP response model
type TaskResponse struct {
	ID            string                 `json:"id"`
	DriverID      string                 `json:"driverId"`
	VehicleID     string                 `json:"vehicleId"`
	Date          string                 `json:"date"`
	StartIndex    int                    `json:"startIndex"`
	DurationSlots int                    `json:"durationSlots"`
	StartTime     string                 `json:"startTime"`
	EndTime       string                 `json:"endTime"`
	LocationStart string                 `json:"locationStart"`
	LocationEnd   string                 `json:"locationEnd"`
	Priority      string                 `json:"priority"`
	Status        string                 `json:"status"`
	VehicleType   string                 `json:"vehicleType"`
	VehicleSeats  int                    `json:"vehicleSeats"`
	Mutations     []SlotMutationResponse `json:"scheduleMutations"`
	CreatedAt     string                 `json:"createdAt"`
	UpdatedAt     string                 `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTaskRequest) ToUseCaseRequest() (*createTask.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createTask.Request{
		DriverID:      r.DriverID,
		VehicleID:     r.VehicleID,
		Date:          date,
		StartIndex:    r.StartIndex,
		DurationSlots: r.DurationSlots,
		LocationStart: r.LocationStart,
		LocationEnd:   r.LocationEnd,
		Priority:      domain.TaskPriority(r.Priority),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createTask.Response) *TaskResponse {
	mutations := make([]SlotMutationResponse, 0, len(resp.Mutations))
	for _, m := range resp.Mutations {
		mutations = append(mutations, SlotMutationResponse{
			ResourceID: m.ResourceID,
			Kind:       string(m.Kind),
			StartIndex: m.StartIndex,
			EndIndex:   m.EndIndex,
		})
	}

	t := resp.Task
	return &TaskResponse{
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
		Priority:      string(t.Priority),
		Status:        string(t.Status),
		VehicleType:   t.VehicleType,
		VehicleSeats:  t.VehicleSeats,
		Mutations:     mutations,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     t.UpdatedAt.Format(time.RFC3339),
	}
}
