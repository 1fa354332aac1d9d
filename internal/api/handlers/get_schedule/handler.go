package get_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/internal/service/schedules"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidKind      = "некорректный вид ресурса, ожидается driver или vehicle"
	msgInvalidArguments = "некорректные параметры запроса"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
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

// Handle GET /api/v1/resources/{resourceId}/schedule
// Query params: date (required, YYYY-MM-DD), kind (required, driver|vehicle)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	kind := domain.ResourceKind(query.Get("kind"))
	if kind != domain.KindDriver && kind != domain.KindVehicle {
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}

	schedule, err := h.service.Get(r.Context(), resourceID, kind, date)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidArguments)

		default:
			h.logger.Error("GET /resources/{id}/schedule - Failed to get schedule: resource=%s, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	slots := make([]SlotResponse, 0, len(schedule.Slots))
	for _, slot := range schedule.Slots {
		switch schedule.Kind {
		case domain.KindDriver:
			slots = append(slots, SlotResponse{Index: slot.Index, Status: string(slot.Status)})
		default:
			available := slot.IsAvailable
			slots = append(slots, SlotResponse{Index: slot.Index, IsAvailable: &available})
		}
	}

	h.logger.Info("GET /resources/{id}/schedule - resource=%s, date=%s", resourceID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, &ScheduleResponse{
		ResourceID: schedule.ResourceID,
		Kind:       string(schedule.Kind),
		Date:       schedule.Date.Format(domain.DateFormat),
		Slots:      slots,
	})
}
