package weather

import (
	"context"
	"errors"
	"strings"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	"github.com/m04kA/cappadocia-tours/internal/infra/cache"
	weatherClient "github.com/m04kA/cappadocia-tours/internal/integrations/weather"
	"github.com/m04kA/cappadocia-tours/internal/service/weather/models"
	"github.com/m04kA/cappadocia-tours/pkg/metrics"
)

const dependencyName = "weather"

// Service сервис прогнозов погоды
type Service struct {
	client      WeatherClient
	cache       Cache // nil - кэш отключен
	metrics     Metrics
	defaultCity string
	logger      Logger
}

// NewService создает новый экземпляр сервиса погоды
func NewService(client WeatherClient, cache Cache, m Metrics, defaultCity string, logger Logger) *Service {
	return &Service{
		client:      client,
		cache:       cache,
		metrics:     m,
		defaultCity: defaultCity,
		logger:      logger,
	}
}

// Forecast возвращает прогноз для города. Пустой город заменяется городом по умолчанию.
// Ошибка сервиса погоды не возвращается: ответ пустой и помечен Degraded.
func (s *Service) Forecast(ctx context.Context, city string) *models.ForecastResponse {
	city = strings.TrimSpace(city)
	if city == "" {
		city = s.defaultCity
	}

	// 1. Кэш
	if s.cache != nil {
		days, err := s.cache.Get(ctx, city)
		switch {
		case err == nil:
			return &models.ForecastResponse{City: city, Result: models.FromDomainDays(days), Cached: true}
		case !errors.Is(err, cache.ErrCacheMiss):
			s.logger.Warn("Forecast: cache read failed for city=%s: %v", city, err)
		}
	}

	// 2. Внешний сервис
	raw, err := s.client.GetForecast(ctx, city)
	if err != nil {
		s.logger.Warn("Forecast: weather service unavailable for city=%s, degrading: %v", city, err)
		s.observe(metrics.OutcomeFallback)
		return &models.ForecastResponse{City: city, Result: []models.DayResponse{}, Degraded: true}
	}
	s.observe(metrics.OutcomeOK)

	days := toDomain(raw)

	// 3. Сохраняем в кэш; ошибка кэша не влияет на ответ
	if s.cache != nil {
		if err := s.cache.Set(ctx, city, days); err != nil {
			s.logger.Warn("Forecast: cache write failed for city=%s: %v", city, err)
		}
	}

	return &models.ForecastResponse{City: city, Result: models.FromDomainDays(days)}
}

func (s *Service) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveExternalCall(dependencyName, outcome)
	}
}

func toDomain(raw []weatherClient.Day) []domain.WeatherDay {
	days := make([]domain.WeatherDay, 0, len(raw))
	for _, d := range raw {
		days = append(days, domain.WeatherDay{
			Date:        d.Date,
			Day:         d.Day,
			Description: d.Description,
			Status:      domain.NormalizeWeatherStatus(d.Status),
			Degree:      float64(d.Degree),
			Min:         float64(d.Min),
			Max:         float64(d.Max),
			Humidity:    float64(d.Humidity),
		})
	}
	return days
}
