package update_slots

import (
	"context"

	updateSlots "github.com/m04kA/SMC-FleetService/internal/usecase/update_slots"
)

type UpdateSlotsUseCase interface {
	Execute(ctx context.Context, req *updateSlots.Request) (*updateSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
