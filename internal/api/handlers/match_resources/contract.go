package match_resources

import (
	"context"

	matchResources "github.com/m04kA/SMC-FleetService/internal/usecase/match_resources"
)

type MatchResourcesUseCase interface {
	Execute(ctx context.Context, req *matchResources.Request) (*matchResources.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
