package domain

import "strings"

// WeatherStatus represents the forecast condition
type WeatherStatus string

const (
	WeatherClear  WeatherStatus = "clear"
	WeatherRainy  WeatherStatus = "rainy"
	WeatherCloudy WeatherStatus = "cloudy"
	WeatherSnowy  WeatherStatus = "snowy"
)

// NormalizeWeatherStatus maps a provider status to a known WeatherStatus.
// Unknown values become WeatherCloudy.
func NormalizeWeatherStatus(s string) WeatherStatus {
	switch WeatherStatus(strings.ToLower(strings.TrimSpace(s))) {
	case WeatherClear:
		return WeatherClear
	case WeatherRainy:
		return WeatherRainy
	case WeatherSnowy:
		return WeatherSnowy
	default:
		return WeatherCloudy
	}
}

// WeatherDay one day of a city forecast
type WeatherDay struct {
	Date        string
	Day         string
	Description string
	Status      WeatherStatus
	Degree      float64
	Min         float64
	Max         float64
	Humidity    float64
}
