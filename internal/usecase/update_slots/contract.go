package update_slots

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Get(ctx context.Context, resourceID string, date string) (*domain.DaySchedule, error)
	Put(ctx context.Context, schedule *domain.DaySchedule) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
