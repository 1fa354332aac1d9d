package create_task

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	createTask "github.com/m04kA/SMC-FleetService/internal/usecase/create_task"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingResource     = "водитель и транспортное средство обязательны"
	msgMissingEndpoint     = "точки начала и окончания маршрута обязательны"
	msgInvalidWindow       = "некорректное временное окно"
	msgDriverNotFound      = "водитель не найден"
	msgVehicleNotFound     = "транспортное средство не найдено"
	msgResourceUnavailable = "ресурс недоступен на выбранное окно"
	msgInvalidArguments    = "некорректные входные данные"
)

type Handler struct {
	useCase CreateTaskUseCase
	logger  Logger
}

func NewHandler(useCase CreateTaskUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tasks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tasks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /tasks - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createTask.ErrMissingResource):
			h.logger.Warn("POST /tasks - Missing resource: driver=%s, vehicle=%s", req.DriverID, req.VehicleID)
			handlers.RespondBadRequest(w, msgMissingResource)

		case errors.Is(err, createTask.ErrMissingEndpoint):
			h.logger.Warn("POST /tasks - Missing endpoint: driver=%s, vehicle=%s", req.DriverID, req.VehicleID)
			handlers.RespondBadRequest(w, msgMissingEndpoint)

		case errors.Is(err, createTask.ErrInvalidWindow):
			h.logger.Warn("POST /tasks - Invalid window: start=%d, duration=%d", req.StartIndex, req.DurationSlots)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, createTask.ErrDriverNotFound):
			h.logger.Warn("POST /tasks - Driver not found: driver=%s", req.DriverID)
			handlers.RespondNotFound(w, msgDriverNotFound)

		case errors.Is(err, createTask.ErrVehicleNotFound):
			h.logger.Warn("POST /tasks - Vehicle not found: vehicle=%s", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createTask.ErrResourceUnavailable):
			h.logger.Warn("POST /tasks - Resource unavailable: driver=%s, vehicle=%s, window=[%d,+%d)",
				req.DriverID, req.VehicleID, req.StartIndex, req.DurationSlots)
			handlers.RespondConflict(w, msgResourceUnavailable)

		case errors.Is(err, createTask.ErrInvalidInput):
			h.logger.Warn("POST /tasks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidArguments)

		default:
			h.logger.Error("POST /tasks - Failed to create task: driver=%s, vehicle=%s, error=%v",
				req.DriverID, req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tasks - Task created successfully: task_id=%s, driver=%s, vehicle=%s",
		result.Task.ID, req.DriverID, req.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
