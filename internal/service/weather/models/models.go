package models

import "github.com/m04kA/cappadocia-tours/internal/domain"

// DayResponse прогноз на один день
type DayResponse struct {
	Date        string  `json:"date"`
	Day         string  `json:"day"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Degree      float64 `json:"degree"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Humidity    float64 `json:"humidity"`
}

// ForecastResponse прогноз для города.
// Degraded = true, если сервис погоды недоступен и список пуст.
type ForecastResponse struct {
	City     string        `json:"city"`
	Result   []DayResponse `json:"result"`
	Degraded bool          `json:"degraded"`
	Cached   bool          `json:"cached"`
}

// FromDomainDays конвертирует дни прогноза
func FromDomainDays(days []domain.WeatherDay) []DayResponse {
	result := make([]DayResponse, 0, len(days))
	for _, d := range days {
		result = append(result, DayResponse{
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
	return result
}
