package predict_packages

import (
	"context"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	"github.com/m04kA/cappadocia-tours/internal/integrations/predictor"
	"github.com/m04kA/cappadocia-tours/internal/service/recommendation"
)

// HistoryBuilder источник снимка прошлых бронирований
type HistoryBuilder interface {
	Build(ctx context.Context) ([]domain.HistoricalRecord, error)
}

// PredictorClient клиент внешнего сервиса прогнозов
type PredictorClient interface {
	Predict(ctx context.Context, request *predictor.Request) (*predictor.Response, error)
}

// ServiceRepository интерфейс чтения каталога услуг
type ServiceRepository interface {
	List(ctx context.Context, filter domain.ServiceFilter) ([]*domain.Service, error)
}

// Joiner сопоставление предложений с каталогом
type Joiner interface {
	Join(suggestions []recommendation.Suggestion, catalog []*domain.Service) []domain.Recommendation
	Defaults(catalog []*domain.Service) []domain.Recommendation
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
