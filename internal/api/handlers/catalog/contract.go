package catalog

import (
	"context"
	"io"

	"github.com/m04kA/cappadocia-tours/internal/service/catalog/models"
)

type CatalogService interface {
	ListHotels(ctx context.Context) ([]*models.HotelResponse, error)
	GetHotel(ctx context.Context, id int64) (*models.HotelResponse, error)
	ListServices(ctx context.Context, hotelID *int64) ([]*models.ServiceResponse, error)
	CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error)
	UpdateCapacity(ctx context.Context, id int64, req *models.UpdateCapacityRequest) (*models.ServiceResponse, error)
	DeleteService(ctx context.Context, id int64) error
	UploadServiceImage(ctx context.Context, id int64, filename, contentType string, body io.Reader) (*models.ServiceResponse, error)
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
