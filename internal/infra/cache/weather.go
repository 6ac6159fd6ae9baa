package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

const weatherKeyPrefix = "weather:"

// WeatherCache кэш прогнозов погоды в Redis
type WeatherCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewWeatherCache создает кэш прогнозов
func NewWeatherCache(client redis.Cmdable, ttl time.Duration) *WeatherCache {
	return &WeatherCache{client: client, ttl: ttl}
}

type weatherDay struct {
	Date        string  `json:"date"`
	Day         string  `json:"day"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Degree      float64 `json:"degree"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Humidity    float64 `json:"humidity"`
}

// Get возвращает прогноз для города или ErrCacheMiss
func (c *WeatherCache) Get(ctx context.Context, city string) ([]domain.WeatherDay, error) {
	raw, err := c.client.Get(ctx, weatherKey(city)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrCache, err)
	}

	var cached []weatherDay
	if err := json.Unmarshal(raw, &cached); err != nil {
		// Битую запись считаем промахом
		return nil, ErrCacheMiss
	}

	days := make([]domain.WeatherDay, 0, len(cached))
	for _, d := range cached {
		days = append(days, domain.WeatherDay{
			Date:        d.Date,
			Day:         d.Day,
			Description: d.Description,
			Status:      domain.WeatherStatus(d.Status),
			Degree:      d.Degree,
			Min:         d.Min,
			Max:         d.Max,
			Humidity:    d.Humidity,
		})
	}

	return days, nil
}

// Set сохраняет прогноз для города на ttl
func (c *WeatherCache) Set(ctx context.Context, city string, days []domain.WeatherDay) error {
	cached := make([]weatherDay, 0, len(days))
	for _, d := range days {
		cached = append(cached, weatherDay{
			Date:        d.Date,
			Day:         d.Day,
			Description: d.Description,
			Status:      string(d.Status),
			Degree:      d.Degree,
			Min:         d.Min,
			Max:         d.Max,
			Humidity:    d.Humidity,
		})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("%w: Set - %v", ErrEncode, err)
	}

	if err := c.client.Set(ctx, weatherKey(city), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrCache, err)
	}

	return nil
}

func weatherKey(city string) string {
	return weatherKeyPrefix + strings.ToLower(strings.TrimSpace(city))
}
