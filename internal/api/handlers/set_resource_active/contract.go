package set_resource_active

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type ResourceService interface {
	SetActive(ctx context.Context, resourceID string, kind domain.ResourceKind, active bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
