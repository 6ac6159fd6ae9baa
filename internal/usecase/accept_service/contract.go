package accept_service

import (
	"context"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// PackageRepository интерфейс репозитория бронирований
type PackageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	AppendAccepted(ctx context.Context, id, serviceID int64) (*domain.Package, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	DecrementCapacity(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
