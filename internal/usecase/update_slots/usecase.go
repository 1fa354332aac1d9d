package update_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/schedule"
)

// UseCase use case пакетного изменения статуса слотов.
// Меняет только расписание: задачи при этом не создаются и не отменяются,
// согласованность с задачами обеспечивает вызывающая сторона.
type UseCase struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	policy       domain.DefaultPolicy
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	policy domain.DefaultPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		policy:       policy,
		logger:       logger,
	}
}

// Execute применяет статус к включительному диапазону слотов одного ресурса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSlots: resource=%s, kind=%s, date=%s, range=[%d,%d]",
		req.ResourceID, req.Kind, req.Date.Format(domain.DateFormat), req.StartIndex, req.EndIndex)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSlots: validation failed: %v", err)
		return nil, err
	}

	date := req.Date.Format(domain.DateFormat)
	var updated domain.DaySchedule

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		schedule, err := uc.scheduleRepo.Get(txCtx, req.ResourceID, date)
		if err != nil {
			if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Error("UpdateSlots: failed to get schedule: %v", err)
				return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
			}
			if !req.Materialize {
				uc.logger.Warn("UpdateSlots: no schedule for resource=%s on %s", req.ResourceID, date)
				return ErrNoScheduleFound
			}
			materialized := domain.EmptySchedule(req.ResourceID, req.Date, req.Kind, uc.policy)
			schedule = &materialized
			uc.logger.Info("UpdateSlots: materialized default schedule for resource=%s on %s", req.ResourceID, date)
		}

		switch req.Kind {
		case domain.KindDriver:
			updated, err = schedule.WithDriverStatus(req.StartIndex, req.EndIndex, req.DriverStatus)
		case domain.KindVehicle:
			updated, err = schedule.WithAvailability(req.StartIndex, req.EndIndex, req.Available)
		default:
			err = fmt.Errorf("%w: unknown resource kind %q", ErrInvalidInput, req.Kind)
		}
		if err != nil {
			uc.logger.Warn("UpdateSlots: mutation rejected: %v", err)
			return wrapDomainError(err)
		}

		if err := uc.scheduleRepo.Put(txCtx, &updated); err != nil {
			uc.logger.Error("UpdateSlots: failed to put schedule: %v", err)
			return fmt.Errorf("%w: failed to put schedule: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateSlots: resource=%s updated, range=[%d,%d]", req.ResourceID, req.StartIndex, req.EndIndex)
	return &Response{Schedule: updated}, nil
}
