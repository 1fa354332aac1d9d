package list_driver_tasks

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/tasks"
	"github.com/m04kA/SMC-FleetService/pkg/ptr"
)

const (
	msgInvalidStatus = "некорректный статус задачи"
)

type Handler struct {
	service TaskService
	logger  Logger
}

func NewHandler(service TaskService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/drivers/{driverId}/tasks?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["driverId"]

	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = ptr.Ptr(raw)
	}

	result, err := h.service.ListByDriver(r.Context(), driverID, status)
	if err != nil {
		switch {
		case errors.Is(err, tasks.ErrInvalidStatus):
			h.logger.Warn("GET /drivers/{id}/tasks - Invalid status filter: driver_id=%s, error=%v", driverID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /drivers/{id}/tasks - Failed to list tasks: driver_id=%s, error=%v", driverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /drivers/{id}/tasks - Tasks listed: driver_id=%s, total=%d", driverID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
