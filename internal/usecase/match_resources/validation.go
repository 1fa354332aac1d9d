package match_resources

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// validateRequest валидирует входные данные и строит доменное окно
func validateRequest(req *Request) (domain.Window, error) {
	if req.Date.IsZero() {
		return domain.Window{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	window, err := domain.NewWindow(req.StartIndex, req.DurationSlots)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWindow) {
			return domain.Window{}, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}
		return domain.Window{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return window, nil
}
