package get_task

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/service/tasks/models"
)

type TaskService interface {
	GetByID(ctx context.Context, id string) (*models.TaskResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
