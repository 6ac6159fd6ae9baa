package weather

import (
	"context"

	"github.com/m04kA/cappadocia-tours/internal/service/weather/models"
)

type WeatherService interface {
	Forecast(ctx context.Context, city string) *models.ForecastResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
