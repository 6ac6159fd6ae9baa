package describe_package

import (
	"context"

	cartModels "github.com/m04kA/cappadocia-tours/internal/service/cart/models"
	weatherModels "github.com/m04kA/cappadocia-tours/internal/service/weather/models"
)

// CompletionClient клиент LLM
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// WeatherSource прогноз погоды для подсказки, если клиент его не передал
type WeatherSource interface {
	Forecast(ctx context.Context, city string) *weatherModels.ForecastResponse
}

// CartService установка набора в корзину
type CartService interface {
	SetBundle(cartID string, req *cartModels.BundleRequest) (*cartModels.CartResponse, error)
}

// Metrics счетчики внешних вызовов
type Metrics interface {
	ObserveExternalCall(dependency, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
