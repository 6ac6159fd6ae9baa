package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	hotelRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/hotel"
	serviceRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/service"
	"github.com/m04kA/cappadocia-tours/internal/service/catalog/models"
)

// Service сервис каталога: отели, услуги, изображения и статистика
type Service struct {
	hotelRepo   HotelRepository
	serviceRepo ServiceRepository
	packages    PackageCounter
	images      ImageStore // nil - хранилище изображений отключено
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	hotelRepo HotelRepository,
	serviceRepo ServiceRepository,
	packages PackageCounter,
	images ImageStore,
	logger Logger,
) *Service {
	return &Service{
		hotelRepo:   hotelRepo,
		serviceRepo: serviceRepo,
		packages:    packages,
		images:      images,
		logger:      logger,
		now:         time.Now,
	}
}

// ListHotels получает все отели
func (s *Service) ListHotels(ctx context.Context) ([]*models.HotelResponse, error) {
	hotels, err := s.hotelRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListHotels: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHotels - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHotelList(hotels), nil
}

// GetHotel получает отель вместе с его услугами
func (s *Service) GetHotel(ctx context.Context, id int64) (*models.HotelResponse, error) {
	hotel, err := s.getHotel(ctx, id)
	if err != nil {
		return nil, err
	}

	services, err := s.serviceRepo.List(ctx, domain.ServiceFilter{HotelID: &id})
	if err != nil {
		s.logger.Error("GetHotel: failed to list services for hotel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetHotel - list services: %v", ErrInternal, err)
	}
	hotel.Services = services

	return models.FromDomainHotel(hotel), nil
}

// ListServices читает каталог услуг, опционально одного отеля
func (s *Service) ListServices(ctx context.Context, hotelID *int64) ([]*models.ServiceResponse, error) {
	services, err := s.serviceRepo.List(ctx, domain.ServiceFilter{HotelID: hotelID})
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// CreateService создает услугу отеля
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	req.Name = strings.TrimSpace(req.Name)

	// 1. Валидация
	switch {
	case req.Name == "":
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case len([]rune(req.Name)) > domain.MaxServiceNameLength:
		return nil, fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxServiceNameLength)
	case req.Price < 0:
		return nil, fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	case req.Capacity < 0:
		return nil, fmt.Errorf("%w: capacity must be non-negative", ErrInvalidInput)
	case req.HotelID <= 0:
		return nil, fmt.Errorf("%w: hotelId is required", ErrInvalidInput)
	}

	// 2. Отель должен существовать
	if _, err := s.getHotel(ctx, req.HotelID); err != nil {
		return nil, err
	}

	// 3. Создаем
	created, err := s.serviceRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("CreateService: repository error for hotel id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d for hotel id=%d", created.ID, created.HotelID)
	return models.FromDomainService(created), nil
}

// UpdateCapacity устанавливает capacity (Capacity) или изменяет его на Delta с отсечкой на нуле
func (s *Service) UpdateCapacity(ctx context.Context, id int64, req *models.UpdateCapacityRequest) (*models.ServiceResponse, error) {
	var (
		updated *domain.Service
		err     error
	)

	switch {
	case req.Capacity != nil && req.Delta != nil:
		return nil, fmt.Errorf("%w: capacity and delta are mutually exclusive", ErrInvalidInput)
	case req.Capacity != nil:
		if *req.Capacity < 0 {
			return nil, fmt.Errorf("%w: capacity must be non-negative", ErrInvalidInput)
		}
		updated, err = s.serviceRepo.UpdateCapacity(ctx, id, *req.Capacity)
	case req.Delta != nil:
		updated, err = s.serviceRepo.AdjustCapacity(ctx, id, *req.Delta)
	default:
		return nil, fmt.Errorf("%w: capacity or delta is required", ErrInvalidInput)
	}

	if err != nil {
		return nil, s.mapServiceError("UpdateCapacity", id, err)
	}

	s.logger.Info("UpdateCapacity: service id=%d capacity=%d", id, updated.Capacity)
	return models.FromDomainService(updated), nil
}

// DeleteService удаляет услугу
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return s.mapServiceError("DeleteService", id, err)
	}

	s.logger.Info("DeleteService: deleted service id=%d", id)
	return nil
}

// UploadServiceImage сохраняет изображение в объектное хранилище и записывает URL в услугу
func (s *Service) UploadServiceImage(ctx context.Context, id int64, filename, contentType string, body io.Reader) (*models.ServiceResponse, error) {
	if s.images == nil {
		return nil, ErrImagesDisabled
	}

	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: unsupported content type %q", ErrInvalidInput, contentType)
	}

	// Услуга должна существовать до загрузки файла
	if _, err := s.serviceRepo.GetByID(ctx, id); err != nil {
		return nil, s.mapServiceError("UploadServiceImage", id, err)
	}

	url, err := s.images.Upload(ctx, id, filename, contentType, body)
	if err != nil {
		s.logger.Error("UploadServiceImage: upload failed for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UploadServiceImage - upload: %v", ErrInternal, err)
	}

	updated, err := s.serviceRepo.UpdateImagePath(ctx, id, url)
	if err != nil {
		return nil, s.mapServiceError("UploadServiceImage", id, err)
	}

	s.logger.Info("UploadServiceImage: service id=%d image=%s", id, url)
	return models.FromDomainService(updated), nil
}

// Stats считает отели, услуги, бронирования и бронирования за сегодня
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	var stats domain.Stats
	var err error

	if stats.Hotels, err = s.hotelRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("%w: Stats - count hotels: %v", ErrInternal, err)
	}
	if stats.Services, err = s.serviceRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("%w: Stats - count services: %v", ErrInternal, err)
	}
	if stats.Packages, err = s.packages.Count(ctx); err != nil {
		return nil, fmt.Errorf("%w: Stats - count packages: %v", ErrInternal, err)
	}

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if stats.PackagesToday, err = s.packages.CountCreatedSince(ctx, startOfDay); err != nil {
		return nil, fmt.Errorf("%w: Stats - count today packages: %v", ErrInternal, err)
	}

	return models.FromDomainStats(stats), nil
}

func (s *Service) getHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("hotel id=%d not found", id)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("failed to load hotel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: get hotel: %v", ErrInternal, err)
	}
	return hotel, nil
}

func (s *Service) mapServiceError(op string, id int64, err error) error {
	if errors.Is(err, serviceRepo.ErrServiceNotFound) {
		s.logger.Warn("%s: service id=%d not found", op, id)
		return ErrServiceNotFound
	}
	s.logger.Error("%s: repository error for service id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
