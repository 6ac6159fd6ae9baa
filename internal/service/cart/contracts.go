package cart

import (
	"context"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// ServiceRepository интерфейс чтения каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
