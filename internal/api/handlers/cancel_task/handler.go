package cancel_task

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/tasks"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgTaskNotFound = "задача не найдена"
	msgCannotCancel = "задача не может быть отменена в текущем статусе"
	msgBadReason    = "некорректная причина отмены"
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

// Handle PATCH /api/v1/tasks/{taskId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["taskId"]

	var req CancelTaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tasks/{id}/cancel - Invalid request body: task_id=%s, error=%v", taskID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	err := h.service.Cancel(r.Context(), taskID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, tasks.ErrTaskNotFound):
			h.logger.Warn("PATCH /tasks/{id}/cancel - Task not found: task_id=%s", taskID)
			handlers.RespondNotFound(w, msgTaskNotFound)

		case errors.Is(err, tasks.ErrCannotCancel):
			h.logger.Warn("PATCH /tasks/{id}/cancel - Task cannot be cancelled: task_id=%s", taskID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, tasks.ErrInvalidInput):
			h.logger.Warn("PATCH /tasks/{id}/cancel - Invalid cancellation reason: task_id=%s, error=%v", taskID, err)
			handlers.RespondBadRequest(w, msgBadReason)

		default:
			h.logger.Error("PATCH /tasks/{id}/cancel - Failed to cancel task: task_id=%s, error=%v", taskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tasks/{id}/cancel - Task cancelled: task_id=%s", taskID)
	w.WriteHeader(http.StatusNoContent)
}
