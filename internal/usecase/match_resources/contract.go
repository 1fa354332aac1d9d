package match_resources

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// ResourceRepository интерфейс справочника ресурсов
type ResourceRepository interface {
	ListDrivers(ctx context.Context) ([]*domain.Driver, error)
	ListVehicles(ctx context.Context) ([]*domain.Vehicle, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetForDate(ctx context.Context, kind domain.ResourceKind, date string) (map[string]domain.DaySchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
