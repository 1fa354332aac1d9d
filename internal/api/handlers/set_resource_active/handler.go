package set_resource_active

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/internal/service/resources"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidKind      = "некорректный тип ресурса"
	msgMissingActive    = "поле active обязательно"
	msgResourceNotFound = "ресурс не найден"
)

type Handler struct {
	service ResourceService
	logger  Logger
}

func NewHandler(service ResourceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/resources/{resourceId}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	var req SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /resources/{id}/active - Invalid request body: resource_id=%s, error=%v", resourceID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	kind := domain.ResourceKind(req.Kind)
	if kind != domain.KindDriver && kind != domain.KindVehicle {
		h.logger.Warn("PATCH /resources/{id}/active - Invalid resource kind: resource_id=%s, kind=%s", resourceID, req.Kind)
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}
	if req.Active == nil {
		h.logger.Warn("PATCH /resources/{id}/active - Missing active field: resource_id=%s", resourceID)
		handlers.RespondBadRequest(w, msgMissingActive)
		return
	}

	err := h.service.SetActive(r.Context(), resourceID, kind, *req.Active)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrResourceNotFound):
			h.logger.Warn("PATCH /resources/{id}/active - Resource not found: resource_id=%s, kind=%s", resourceID, kind)
			handlers.RespondNotFound(w, msgResourceNotFound)

		default:
			h.logger.Error("PATCH /resources/{id}/active - Failed to set active: resource_id=%s, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /resources/{id}/active - Resource updated: resource_id=%s, kind=%s, active=%t", resourceID, kind, *req.Active)
	w.WriteHeader(http.StatusNoContent)
}
