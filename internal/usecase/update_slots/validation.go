package update_slots

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ResourceID) == "" {
		return fmt.Errorf("%w: resourceID is required", ErrInvalidInput)
	}

	if req.Kind != domain.KindDriver && req.Kind != domain.KindVehicle {
		return fmt.Errorf("%w: unknown resource kind %q", ErrInvalidInput, req.Kind)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartIndex < domain.MinSlotIndex || req.StartIndex > domain.MaxSlotIndex ||
		req.EndIndex < domain.MinSlotIndex || req.EndIndex > domain.MaxSlotIndex {
		return fmt.Errorf("%w: indices [%d,%d] outside slot grid", ErrInvalidRange, req.StartIndex, req.EndIndex)
	}

	if req.StartIndex > req.EndIndex {
		return fmt.Errorf("%w: start %d after end %d", ErrInvalidRange, req.StartIndex, req.EndIndex)
	}

	if req.Kind == domain.KindDriver && !req.DriverStatus.IsValid() {
		return fmt.Errorf("%w: unknown driver slot status %q", ErrInvalidInput, req.DriverStatus)
	}

	return nil
}

// wrapDomainError переводит доменные ошибки мутации в ошибки usecase
func wrapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrIndexOutOfRange), errors.Is(err, domain.ErrInvalidRange):
		return fmt.Errorf("%w: %v", ErrInvalidRange, err)
	case errors.Is(err, domain.ErrKindMismatch):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
