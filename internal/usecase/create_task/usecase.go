package create_task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	resourceRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/resource"
	scheduleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/schedule"
)

// UseCase use case создания задачи: протокол коммита назначения.
// Повторная проверка доступности, создание задачи и обе мутации расписаний
// выполняются в одной сериализуемой транзакции, чтобы два конкурентных
// коммита на пересекающиеся окна не прошли оба.
type UseCase struct {
	resourceRepo ResourceRepository
	scheduleRepo ScheduleRepository
	taskRepo     TaskRepository
	txManager    TransactionManager
	policy       domain.DefaultPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	scheduleRepo ScheduleRepository,
	taskRepo TaskRepository,
	txManager TransactionManager,
	policy domain.DefaultPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		scheduleRepo: scheduleRepo,
		taskRepo:     taskRepo,
		txManager:    txManager,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет протокол коммита. Порядок проверок фиксирован, первая
// ошибка выигрывает: ресурсы указаны -> точки маршрута указаны -> окно
// корректно -> оба ресурса свободны на всём окне.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTask: driver=%s, vehicle=%s, date=%s, startIndex=%d, durationSlots=%d",
		req.DriverID, req.VehicleID, req.Date.Format(domain.DateFormat), req.StartIndex, req.DurationSlots)

	// 1. Проверки порядка валидации, не требующие обращения к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTask: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	date := req.Date.Format(domain.DateFormat)

	var result *Response

	// 2. Коммит в сериализуемой транзакции: повторная проверка доступности ->
	// построение задачи -> запись задачи -> мутация расписания водителя ->
	// мутация расписания транспорта
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		driver, err := uc.resourceRepo.GetDriver(txCtx, req.DriverID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrDriverNotFound) {
				uc.logger.Warn("CreateTask: driver id=%s not found", req.DriverID)
				return ErrDriverNotFound
			}
			uc.logger.Error("CreateTask: failed to get driver id=%s: %v", req.DriverID, err)
			return fmt.Errorf("%w: failed to get driver: %v", ErrInternal, err)
		}

		vehicle, err := uc.resourceRepo.GetVehicle(txCtx, req.VehicleID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrVehicleNotFound) {
				uc.logger.Warn("CreateTask: vehicle id=%s not found", req.VehicleID)
				return ErrVehicleNotFound
			}
			uc.logger.Error("CreateTask: failed to get vehicle id=%s: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
		}

		driverSchedule, err := uc.loadOrDefault(txCtx, req.DriverID, date, req.Date, domain.KindDriver)
		if err != nil {
			return err
		}
		vehicleSchedule, err := uc.loadOrDefault(txCtx, req.VehicleID, date, req.Date, domain.KindVehicle)
		if err != nil {
			return err
		}

		plan, err := domain.BuildCommit(domain.TaskProposal{
			DriverID:      req.DriverID,
			VehicleID:     req.VehicleID,
			Date:          req.Date,
			StartIndex:    req.StartIndex,
			DurationSlots: req.DurationSlots,
			LocationStart: req.LocationStart,
			LocationEnd:   req.LocationEnd,
			Priority:      req.Priority,
		}, driver, vehicle, driverSchedule, vehicleSchedule, now)
		if err != nil {
			uc.logger.Warn("CreateTask: commit rejected: %v", err)
			return wrapDomainError(err)
		}

		created, err := uc.taskRepo.Create(txCtx, &plan.Task)
		if err != nil {
			uc.logger.Error("CreateTask: failed to create task: %v", err)
			return fmt.Errorf("%w: failed to create task: %v", ErrInternal, err)
		}

		window := created.Window()

		busyDriver, err := driverSchedule.WithDriverStatus(window.StartIndex, window.LastIndex(), domain.SlotBusy)
		if err != nil {
			return fmt.Errorf("%w: failed to mark driver slots busy: %v", ErrInternal, err)
		}
		if err := uc.scheduleRepo.Put(txCtx, &busyDriver); err != nil {
			uc.logger.Error("CreateTask: failed to persist driver schedule: %v", err)
			return fmt.Errorf("%w: failed to persist driver schedule: %v", ErrInternal, err)
		}

		takenVehicle, err := vehicleSchedule.WithAvailability(window.StartIndex, window.LastIndex(), false)
		if err != nil {
			return fmt.Errorf("%w: failed to mark vehicle slots taken: %v", ErrInternal, err)
		}
		if err := uc.scheduleRepo.Put(txCtx, &takenVehicle); err != nil {
			uc.logger.Error("CreateTask: failed to persist vehicle schedule: %v", err)
			return fmt.Errorf("%w: failed to persist vehicle schedule: %v", ErrInternal, err)
		}

		result = &Response{Task: *created, Mutations: plan.Mutations}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateTask: successfully created task id=%s (driver=%s, vehicle=%s)",
		result.Task.ID, result.Task.DriverID, result.Task.VehicleID)

	return result, nil
}

// loadOrDefault получает расписание ресурса на дату или материализует
// значение политики по умолчанию, если расписание отсутствует
func (uc *UseCase) loadOrDefault(ctx context.Context, resourceID, date string, day time.Time, kind domain.ResourceKind) (domain.DaySchedule, error) {
	schedule, err := uc.scheduleRepo.Get(ctx, resourceID, date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return domain.EmptySchedule(resourceID, day, kind, uc.policy), nil
		}
		uc.logger.Error("CreateTask: failed to get schedule for resource=%s: %v", resourceID, err)
		return domain.DaySchedule{}, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	return *schedule, nil
}
