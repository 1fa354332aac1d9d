package create_task

import (
	"context"

	createTask "github.com/m04kA/SMC-FleetService/internal/usecase/create_task"
)

type CreateTaskUseCase interface {
	Execute(ctx context.Context, req *createTask.Request) (*createTask.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
