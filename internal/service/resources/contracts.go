package resources

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// ResourceRepository интерфейс справочника ресурсов
type ResourceRepository interface {
	ListDrivers(ctx context.Context) ([]*domain.Driver, error)
	ListVehicles(ctx context.Context) ([]*domain.Vehicle, error)
	SetDriverActive(ctx context.Context, id string, active bool) error
	SetVehicleActive(ctx context.Context, id string, active bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
