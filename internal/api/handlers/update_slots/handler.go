package update_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	updateSlots "github.com/m04kA/SMC-FleetService/internal/usecase/update_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "некорректный диапазон слотов"
	msgNoSchedule         = "расписание на указанную дату не материализовано"
	msgInvalidArguments   = "некорректные входные данные"
)

type Handler struct {
	useCase UpdateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase UpdateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/resources/{resourceId}/schedule/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	var req UpdateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /resources/{id}/schedule/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(resourceID)
	if err != nil {
		h.logger.Warn("PATCH /resources/{id}/schedule/slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateSlots.ErrInvalidRange):
			h.logger.Warn("PATCH /resources/{id}/schedule/slots - Invalid range: resource=%s, [%d,%d]",
				resourceID, req.StartIndex, req.EndIndex)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, updateSlots.ErrNoScheduleFound):
			h.logger.Warn("PATCH /resources/{id}/schedule/slots - No schedule: resource=%s, date=%s",
				resourceID, req.Date)
			handlers.RespondNotFound(w, msgNoSchedule)

		case errors.Is(err, updateSlots.ErrInvalidInput):
			h.logger.Warn("PATCH /resources/{id}/schedule/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidArguments)

		default:
			h.logger.Error("PATCH /resources/{id}/schedule/slots - Failed to update slots: resource=%s, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /resources/{id}/schedule/slots - Updated: resource=%s, range=[%d,%d]",
		resourceID, req.StartIndex, req.EndIndex)
	handlers.RespondJSON(w, http.StatusOK, FromSchedule(&result.Schedule))
}
