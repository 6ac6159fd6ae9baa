package history

import (
	"context"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// PackageRepository интерфейс чтения бронирований
type PackageRepository interface {
	List(ctx context.Context, filter domain.PackageFilter) ([]*domain.Package, error)
}

// ServiceRepository интерфейс чтения каталога услуг
type ServiceRepository interface {
	List(ctx context.Context, filter domain.ServiceFilter) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
