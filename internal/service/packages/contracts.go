package packages

import (
	"context"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// PackageRepository интерфейс репозитория бронирований
type PackageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	List(ctx context.Context, filter domain.PackageFilter) ([]*domain.Package, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
