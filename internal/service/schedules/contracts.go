package schedules

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Get(ctx context.Context, resourceID string, date string) (*domain.DaySchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
