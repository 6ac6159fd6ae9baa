package weather

import (
	"net/http"
	"strings"

	"github.com/m04kA/cappadocia-tours/internal/api/handlers"
)

type Handler struct {
	service WeatherService
	logger  Logger
}

func NewHandler(service WeatherService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/weather?city=
// Недоступность сервиса погоды не является ошибкой: ответ приходит с degraded=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))

	forecast := h.service.Forecast(r.Context(), city)

	h.logger.Info("GET /weather - city=%s, days=%d, cached=%t, degraded=%t",
		forecast.City, len(forecast.Result), forecast.Cached, forecast.Degraded)
	handlers.RespondJSON(w, http.StatusOK, forecast)
}
