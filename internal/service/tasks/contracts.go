package tasks

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// TaskRepository интерфейс репозитория задач
type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByDriver(ctx context.Context, driverID string, status *domain.TaskStatus) ([]*domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error
	Cancel(ctx context.Context, id string, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
