package get_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type ScheduleService interface {
	Get(ctx context.Context, resourceID string, kind domain.ResourceKind, date time.Time) (*domain.DaySchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
