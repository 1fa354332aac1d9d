package schedules

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/schedule"
)

// Service сервис чтения расписаний
type Service struct {
	scheduleRepo ScheduleRepository
	policy       domain.DefaultPolicy
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, policy domain.DefaultPolicy, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		policy:       policy,
		logger:       logger,
	}
}

// Get возвращает расписание ресурса на дату. Если расписание на дату не
// материализовано, возвращается значение политики по умолчанию; оно при этом
// НЕ сохраняется - материализация происходит только при первой мутации.
func (s *Service) Get(ctx context.Context, resourceID string, kind domain.ResourceKind, date time.Time) (*domain.DaySchedule, error) {
	if strings.TrimSpace(resourceID) == "" {
		return nil, fmt.Errorf("%w: resourceID is required", ErrInvalidInput)
	}
	if kind != domain.KindDriver && kind != domain.KindVehicle {
		return nil, fmt.Errorf("%w: unknown resource kind %q", ErrInvalidInput, kind)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	s.logger.Info("GetSchedule: resource=%s, kind=%s, date=%s", resourceID, kind, date.Format(domain.DateFormat))

	schedule, err := s.scheduleRepo.Get(ctx, resourceID, date.Format(domain.DateFormat))
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			defaulted := domain.EmptySchedule(resourceID, date, kind, s.policy)
			return &defaulted, nil
		}
		s.logger.Error("GetSchedule: repository error for resource=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return schedule, nil
}
