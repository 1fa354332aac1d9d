package cancel_task

import (
	"context"
)

type TaskService interface {
	Cancel(ctx context.Context, id string, reason string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
