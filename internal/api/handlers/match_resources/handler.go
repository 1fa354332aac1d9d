package match_resources

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/domain"
	matchResources "github.com/m04kA/SMC-FleetService/internal/usecase/match_resources"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStart     = "некорректный индекс начального слота"
	msgInvalidDuration  = "некорректная длительность окна"
	msgInvalidWindow    = "окно выходит за пределы суточной сетки слотов"
	msgInvalidArguments = "некорректные параметры запроса"
)

type Handler struct {
	useCase MatchResourcesUseCase
	logger  Logger
}

func NewHandler(useCase MatchResourcesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/available
// Query params: date (required, YYYY-MM-DD), startIndex (required, 0-47),
// durationSlots (required, >= 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /resources/available - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startIndex, err := strconv.Atoi(query.Get("startIndex"))
	if err != nil {
		h.logger.Warn("GET /resources/available - Invalid startIndex: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	durationSlots, err := strconv.Atoi(query.Get("durationSlots"))
	if err != nil {
		h.logger.Warn("GET /resources/available - Invalid durationSlots: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &matchResources.Request{
		Date:          date,
		StartIndex:    startIndex,
		DurationSlots: durationSlots,
	})
	if err != nil {
		switch {
		case errors.Is(err, matchResources.ErrInvalidWindow):
			h.logger.Warn("GET /resources/available - Invalid window: start=%d, duration=%d", startIndex, durationSlots)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, matchResources.ErrInvalidInput):
			h.logger.Warn("GET /resources/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidArguments)

		default:
			h.logger.Error("GET /resources/available - Failed to match resources: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/available - %d drivers, %d vehicles for %s [%d,+%d)",
		len(result.Drivers), len(result.Vehicles), dateStr, startIndex, durationSlots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
