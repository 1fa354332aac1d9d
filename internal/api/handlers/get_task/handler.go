package get_task

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/tasks"
)

const (
	msgTaskNotFound = "задача не найдена"
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

// Handle GET /api/v1/tasks/{taskId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["taskId"]

	result, err := h.service.GetByID(r.Context(), taskID)
	if err != nil {
		switch {
		case errors.Is(err, tasks.ErrTaskNotFound):
			h.logger.Warn("GET /tasks/{id} - Task not found: task_id=%s", taskID)
			handlers.RespondNotFound(w, msgTaskNotFound)

		default:
			h.logger.Error("GET /tasks/{id} - Failed to get task: task_id=%s, error=%v", taskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tasks/{id} - Task fetched: task_id=%s", taskID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
