package update_slots

import (
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	updateSlots "github.com/m04kA/SMC-FleetService/internal/usecase/update_slots"
)

// UpdateSlotsRequest HTTP request model.
// Для kind=driver обязателен status, для kind=vehicle обязателен available.
type UpdateSlotsRequest struct {
	Kind        string `json:"kind"` // driver | vehicle
	Date        string `json:"date"` // "2025-10-15"
	StartIndex  int    `json:"startIndex"`
	EndIndex    int    `json:"endIndex"`
	Status      string `json:"status,omitempty"`      // free | busy | break | off_duty
	Available   *bool  `json:"available,omitempty"`   // только для транспорта
	Materialize bool   `json:"materialize,omitempty"` // создать расписание из умолчаний при отсутствии
}

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	Index       int    `json:"index"`
	Status      string `json:"status,omitempty"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// ScheduleResponse HTTP модель расписания на день
type ScheduleResponse struct {
	ResourceID string         `json:"resourceId"`
	Kind       string         `json:"kind"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateSlotsRequest) ToUseCaseRequest(resourceID string) (*updateSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &updateSlots.Request{
		ResourceID:  resourceID,
		Kind:        domain.ResourceKind(r.Kind),
		Date:        date,
		StartIndex:  r.StartIndex,
		EndIndex:    r.EndIndex,
		Materialize: r.Materialize,
	}

	switch req.Kind {
	case domain.KindDriver:
		req.DriverStatus = domain.DriverSlotStatus(r.Status)
	case domain.KindVehicle:
		if r.Available != nil {
			req.Available = *r.Available
		}
	}

	return req, nil
}

// FromSchedule конвертирует доменное расписание в HTTP response
func FromSchedule(s *domain.DaySchedule) *ScheduleResponse {
	slots := make([]SlotResponse, 0, len(s.Slots))
	for _, slot := range s.Slots {
		switch s.Kind {
		case domain.KindDriver:
			slots = append(slots, SlotResponse{Index: slot.Index, Status: string(slot.Status)})
		default:
			available := slot.IsAvailable
			slots = append(slots, SlotResponse{Index: slot.Index, IsAvailable: &available})
		}
	}

	return &ScheduleResponse{
		ResourceID: s.ResourceID,
		Kind:       string(s.Kind),
		Date:       s.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
