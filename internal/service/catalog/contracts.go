package catalog

import (
	"context"
	"io"
	"time"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context) ([]*domain.Hotel, error)
	Count(ctx context.Context) (int64, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, filter domain.ServiceFilter) ([]*domain.Service, error)
	UpdateCapacity(ctx context.Context, id int64, capacity int) (*domain.Service, error)
	AdjustCapacity(ctx context.Context, id int64, delta int) (*domain.Service, error)
	UpdateImagePath(ctx context.Context, id int64, imagePath string) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// PackageCounter интерфейс подсчета бронирований для статистики
type PackageCounter interface {
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// ImageStore интерфейс хранилища изображений
type ImageStore interface {
	Upload(ctx context.Context, serviceID int64, filename, contentType string, body io.Reader) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
