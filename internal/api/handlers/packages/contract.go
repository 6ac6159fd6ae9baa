package packages

import (
	"context"

	"github.com/m04kA/cappadocia-tours/internal/service/packages/models"
)

type PackageService interface {
	ListPackages(ctx context.Context, hotelID *int64) ([]*models.PackageResponse, error)
	GetPackage(ctx context.Context, id int64) (*models.PackageResponse, error)
	DeletePackage(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
