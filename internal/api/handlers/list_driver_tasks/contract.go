package list_driver_tasks

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/service/tasks/models"
)

type TaskService interface {
	ListByDriver(ctx context.Context, driverID string, status *string) (*models.TaskListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
