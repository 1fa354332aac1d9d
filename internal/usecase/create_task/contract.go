package create_task

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// ResourceRepository интерфейс справочника ресурсов
type ResourceRepository interface {
	GetDriver(ctx context.Context, id string) (*domain.Driver, error)
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Get(ctx context.Context, resourceID string, date string) (*domain.DaySchedule, error)
	Put(ctx context.Context, schedule *domain.DaySchedule) error
}

// TaskRepository интерфейс репозитория задач
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
