package create_task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// validateRequest выполняет проверки протокола коммита, не требующие
// обращения к хранилищу. Порядок фиксирован: сначала ресурсы, затем точки
// маршрута, затем окно. Доступность проверяется позже, внутри транзакции.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.DriverID) == "" || strings.TrimSpace(req.VehicleID) == "" {
		return ErrMissingResource
	}

	if strings.TrimSpace(req.LocationStart) == "" || strings.TrimSpace(req.LocationEnd) == "" {
		return ErrMissingEndpoint
	}

	if len(req.LocationStart) > domain.MaxLocationLength || len(req.LocationEnd) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location exceeds %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := domain.NewWindow(req.StartIndex, req.DurationSlots); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	if req.Priority != "" && !req.Priority.IsValid() {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, req.Priority)
	}

	return nil
}

// wrapDomainError переводит доменные ошибки протокола в ошибки usecase
func wrapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingResource):
		return ErrMissingResource
	case errors.Is(err, domain.ErrMissingEndpoint):
		return ErrMissingEndpoint
	case errors.Is(err, domain.ErrInvalidWindow), errors.Is(err, domain.ErrIndexOutOfRange):
		return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	case errors.Is(err, domain.ErrResourceUnavailable):
		return ErrResourceUnavailable
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
