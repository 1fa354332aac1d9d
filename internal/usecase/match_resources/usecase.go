package match_resources

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// UseCase use case подбора доступных ресурсов на временное окно
type UseCase struct {
	resourceRepo ResourceRepository
	scheduleRepo ScheduleRepository
	policy       domain.DefaultPolicy
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	scheduleRepo ScheduleRepository,
	policy domain.DefaultPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		scheduleRepo: scheduleRepo,
		policy:       policy,
		logger:       logger,
	}
}

// Execute выполняет подбор: возвращает водителей, свободных на всём окне, и
// транспорт, доступный на всём окне. Неактивные ресурсы исключаются до
// проверки слотов; порядок результата стабилен и совпадает с входным.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MatchResources: date=%s, startIndex=%d, durationSlots=%d",
		req.Date.Format(domain.DateFormat), req.StartIndex, req.DurationSlots)

	// 1. Валидация входных данных
	window, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("MatchResources: validation failed: %v", err)
		return nil, err
	}

	date := req.Date.Format(domain.DateFormat)

	// 2. Получаем справочник ресурсов
	drivers, err := uc.resourceRepo.ListDrivers(ctx)
	if err != nil {
		uc.logger.Error("MatchResources: failed to list drivers: %v", err)
		return nil, fmt.Errorf("%w: failed to list drivers: %v", ErrInternal, err)
	}

	vehicles, err := uc.resourceRepo.ListVehicles(ctx)
	if err != nil {
		uc.logger.Error("MatchResources: failed to list vehicles: %v", err)
		return nil, fmt.Errorf("%w: failed to list vehicles: %v", ErrInternal, err)
	}

	// 3. Получаем материализованные расписания на дату
	driverSchedules, err := uc.scheduleRepo.GetForDate(ctx, domain.KindDriver, date)
	if err != nil {
		uc.logger.Error("MatchResources: failed to load driver schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to load driver schedules: %v", ErrInternal, err)
	}

	vehicleSchedules, err := uc.scheduleRepo.GetForDate(ctx, domain.KindVehicle, date)
	if err != nil {
		uc.logger.Error("MatchResources: failed to load vehicle schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to load vehicle schedules: %v", ErrInternal, err)
	}

	// 4. Фильтруем; для ресурсов без расписания действует политика по умолчанию
	availableDrivers := domain.FilterAvailableDrivers(drivers, req.Date, func(id string) (domain.DaySchedule, bool) {
		s, ok := driverSchedules[id]
		return s, ok
	}, window, uc.policy)

	availableVehicles := domain.FilterAvailableVehicles(vehicles, req.Date, func(id string) (domain.DaySchedule, bool) {
		s, ok := vehicleSchedules[id]
		return s, ok
	}, window, uc.policy)

	uc.logger.Info("MatchResources: %d/%d drivers and %d/%d vehicles available for [%d,%d)",
		len(availableDrivers), len(drivers), len(availableVehicles), len(vehicles),
		window.StartIndex, window.EndIndex())

	return &Response{
		Date:          req.Date,
		StartIndex:    window.StartIndex,
		DurationSlots: window.DurationSlots,
		Drivers:       availableDrivers,
		Vehicles:      availableVehicles,
	}, nil
}
