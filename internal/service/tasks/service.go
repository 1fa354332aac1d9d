package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	taskRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/task"
	"github.com/m04kA/SMC-FleetService/internal/service/tasks/models"
)

// Service сервис для работы с задачами. Жизненный цикл задачи (pending ->
// in_progress -> completed/cancelled) продвигается здесь, внешними вызовами;
// движок расписаний задачи не трогает. Освобождение слотов отменённой задачи
// остаётся за вызывающей стороной (update_slots) - сервис эти две записи
// не связывает транзакцией.
type Service struct {
	taskRepo TaskRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса задач
func NewService(taskRepo TaskRepository, logger Logger) *Service {
	return &Service{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// GetByID получает задачу по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.TaskResponse, error) {
	s.logger.Info("GetByID: fetching task id=%s", id)

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			s.logger.Warn("GetByID: task id=%s not found", id)
			return nil, ErrTaskNotFound
		}
		s.logger.Error("GetByID: repository error for task id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTask(task), nil
}

// ListByDriver получает историю задач водителя.
// Опционально фильтрует по статусу.
func (s *Service) ListByDriver(ctx context.Context, driverID string, status *string) (*models.TaskListResponse, error) {
	s.logger.Info("ListByDriver: fetching tasks for driver=%s, status=%v", driverID, status)

	var domainStatus *domain.TaskStatus
	if status != nil {
		converted, err := models.ToDomainTaskStatus(*status)
		if err != nil {
			s.logger.Warn("ListByDriver: invalid status=%s for driver=%s", *status, driverID)
			return nil, ErrInvalidStatus
		}
		domainStatus = &converted
	}

	tasks, err := s.taskRepo.ListByDriver(ctx, driverID, domainStatus)
	if err != nil {
		s.logger.Error("ListByDriver: repository error for driver=%s: %v", driverID, err)
		return nil, fmt.Errorf("%w: ListByDriver - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDriver: fetched %d tasks for driver=%s", len(tasks), driverID)
	return models.FromDomainTaskList(tasks), nil
}

// UpdateStatus продвигает статус задачи
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) error {
	s.logger.Info("UpdateStatus: task id=%s -> %s", id, status)

	domainStatus, err := models.ToDomainTaskStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for task id=%s", status, id)
		return ErrInvalidStatus
	}

	if err := s.taskRepo.UpdateStatus(ctx, id, domainStatus); err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			s.logger.Warn("UpdateStatus: task id=%s not found", id)
			return ErrTaskNotFound
		}
		s.logger.Error("UpdateStatus: repository error for task id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Cancel отменяет задачу. Отмена допустима только для pending и in_progress.
func (s *Service) Cancel(ctx context.Context, id string, reason string) error {
	s.logger.Info("Cancel: cancelling task id=%s", id)

	reason = strings.TrimSpace(reason)
	if len(reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			s.logger.Warn("Cancel: task id=%s not found", id)
			return ErrTaskNotFound
		}
		s.logger.Error("Cancel: repository error for task id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !task.CanBeCancelled() {
		s.logger.Warn("Cancel: task id=%s in status %s cannot be cancelled", id, task.Status)
		return ErrCannotCancel
	}

	if err := s.taskRepo.Cancel(ctx, id, reason); err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		s.logger.Error("Cancel: repository error for task id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: task id=%s cancelled; schedule slots must be released separately", id)
	return nil
}
