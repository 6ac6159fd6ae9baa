package packages

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	packagesRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/packages"
	"github.com/m04kA/cappadocia-tours/internal/service/packages/models"
)

// Service сервис просмотра и удаления бронирований персоналом
type Service struct {
	packageRepo PackageRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(packageRepo PackageRepository, logger Logger) *Service {
	return &Service{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// ListPackages получает бронирования, опционально одного отеля
func (s *Service) ListPackages(ctx context.Context, hotelID *int64) ([]*models.PackageResponse, error) {
	packages, err := s.packageRepo.List(ctx, domain.PackageFilter{HotelID: hotelID})
	if err != nil {
		s.logger.Error("ListPackages: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPackages - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPackages: fetched %d packages", len(packages))
	return models.FromDomainPackageList(packages), nil
}

// GetPackage получает бронирование по ID
func (s *Service) GetPackage(ctx context.Context, id int64) (*models.PackageResponse, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetPackage", id, err)
	}

	return models.FromDomainPackage(pkg), nil
}

// DeletePackage удаляет бронирование
func (s *Service) DeletePackage(ctx context.Context, id int64) error {
	if err := s.packageRepo.Delete(ctx, id); err != nil {
		return s.mapError("DeletePackage", id, err)
	}

	s.logger.Info("DeletePackage: deleted package id=%d", id)
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, packagesRepo.ErrPackageNotFound) {
		s.logger.Warn("%s: package id=%d not found", op, id)
		return ErrPackageNotFound
	}
	s.logger.Error("%s: repository error for package id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
