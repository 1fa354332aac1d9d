package resources

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	resourceRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/resource"
)

// Service сервис справочника ресурсов. Ручное переключение isActive - это
// операторский оверрайд: неактивный ресурс исключается из подбора и коммита
// независимо от состояния его слотов.
type Service struct {
	resourceRepo ResourceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// ListDrivers возвращает всех водителей
func (s *Service) ListDrivers(ctx context.Context) ([]*domain.Driver, error) {
	drivers, err := s.resourceRepo.ListDrivers(ctx)
	if err != nil {
		s.logger.Error("ListDrivers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDrivers - repository error: %v", ErrInternal, err)
	}
	return drivers, nil
}

// ListVehicles возвращает весь транспорт
func (s *Service) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	vehicles, err := s.resourceRepo.ListVehicles(ctx)
	if err != nil {
		s.logger.Error("ListVehicles: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListVehicles - repository error: %v", ErrInternal, err)
	}
	return vehicles, nil
}

// SetActive переключает флаг isActive ресурса указанного вида
func (s *Service) SetActive(ctx context.Context, resourceID string, kind domain.ResourceKind, active bool) error {
	if strings.TrimSpace(resourceID) == "" {
		return fmt.Errorf("%w: resourceID is required", ErrInvalidInput)
	}

	s.logger.Info("SetActive: resource=%s, kind=%s, active=%t", resourceID, kind, active)

	var err error
	switch kind {
	case domain.KindDriver:
		err = s.resourceRepo.SetDriverActive(ctx, resourceID, active)
	case domain.KindVehicle:
		err = s.resourceRepo.SetVehicleActive(ctx, resourceID, active)
	default:
		return fmt.Errorf("%w: unknown resource kind %q", ErrInvalidInput, kind)
	}

	if err != nil {
		if errors.Is(err, resourceRepo.ErrDriverNotFound) || errors.Is(err, resourceRepo.ErrVehicleNotFound) {
			s.logger.Warn("SetActive: resource=%s not found", resourceID)
			return ErrResourceNotFound
		}
		s.logger.Error("SetActive: repository error for resource=%s: %v", resourceID, err)
		return fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	return nil
}
