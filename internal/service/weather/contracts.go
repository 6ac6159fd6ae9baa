package weather

import (
	"context"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	weatherClient "github.com/m04kA/cappadocia-tours/internal/integrations/weather"
)

// WeatherClient интерфейс клиента сервиса погоды
type WeatherClient interface {
	GetForecast(ctx context.Context, city string) ([]weatherClient.Day, error)
}

// Cache интерфейс кэша прогнозов
type Cache interface {
	Get(ctx context.Context, city string) ([]domain.WeatherDay, error)
	Set(ctx context.Context, city string, days []domain.WeatherDay) error
}

// Metrics интерфейс учета обращений к внешним сервисам
type Metrics interface {
	ObserveExternalCall(dependency, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
