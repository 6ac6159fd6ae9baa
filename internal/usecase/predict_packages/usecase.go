package predict_packages

import (
	"context"
	"strings"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	"github.com/m04kA/cappadocia-tours/internal/integrations/predictor"
	"github.com/m04kA/cappadocia-tours/internal/service/recommendation"
	"github.com/m04kA/cappadocia-tours/pkg/metrics"
)

// Имена зависимостей в метриках
const (
	dependencyPredictor = "predictor"
	dependencyHistory   = "history"
	dependencyCatalog   = "catalog"
)

// UseCase use case получения рекомендаций и наборов для путешественника
type UseCase struct {
	history     HistoryBuilder
	predictor   PredictorClient
	serviceRepo ServiceRepository
	joiner      Joiner
	metrics     Metrics
	groupQuote  string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	history HistoryBuilder,
	predictorClient PredictorClient,
	serviceRepo ServiceRepository,
	joiner Joiner,
	m Metrics,
	groupQuote string,
	logger Logger,
) *UseCase {
	return &UseCase{
		history:     history,
		predictor:   predictorClient,
		serviceRepo: serviceRepo,
		joiner:      joiner,
		metrics:     m,
		groupQuote:  groupQuote,
		logger:      logger,
	}
}

// Execute возвращает рекомендации. Ошибки внешних зависимостей не прерывают поток:
// вместо них используются значения по умолчанию. Ошибка возвращается только при валидации.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация до любых внешних вызовов
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PredictPackages: validation failed: %v", err)
		return nil, err
	}

	// 2. Профиль путешественника
	params := buildParams(req, uc.groupQuote)
	uc.logger.Info("PredictPackages: params nationality=%s, city=%s, age_gender=%s, group=%s, duration=%d, room_type=%s",
		params.Nationality, params.City, params.AgeGender, params.Group, params.Duration, params.RoomType)

	resp := &Response{
		FormData:      req,
		PredictParams: params,
	}

	// 3. Снимок истории собирается до запроса к сервису прогнозов
	history, err := uc.history.Build(ctx)
	if err != nil {
		uc.logger.Warn("PredictPackages: history unavailable, sending empty snapshot: %v", err)
		uc.metrics.ObserveExternalCall(dependencyHistory, metrics.OutcomeFallback)
		history = nil
	}
	resp.HistorySize = len(history)

	// 4. Запрос к сервису прогнозов
	suggestions, predictErr := uc.predict(ctx, history, params)

	// 5. Каталог для сопоставления
	filter := domain.ServiceFilter{HotelID: req.HotelID}
	catalog, err := uc.serviceRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Warn("PredictPackages: catalog unavailable, using lexicon only: %v", err)
		uc.metrics.ObserveExternalCall(dependencyCatalog, metrics.OutcomeFallback)
		catalog = nil
	}

	// 6. Сопоставление и наборы
	var recs []domain.Recommendation
	if predictErr != nil {
		resp.Fallback = true
		resp.PredictError = PredictErrorMessage
		recs = uc.joiner.Defaults(catalog)
	} else {
		recs = uc.joiner.Join(suggestions, catalog)
	}

	resp.Recommendations = recommendation.Rank(recs)
	resp.Bundles = recommendation.Bundles(resp.Recommendations, strings.TrimSpace(req.FirstName))

	uc.logger.Info("PredictPackages: %d recommendations, %d bundles, fallback=%t",
		len(resp.Recommendations), len(resp.Bundles), resp.Fallback)
	return resp, nil
}

func (uc *UseCase) predict(ctx context.Context, history []domain.HistoricalRecord, params PredictParams) ([]recommendation.Suggestion, error) {
	age, gender := domain.SplitAgeGender(params.AgeGender)

	request := &predictor.Request{
		Old: toPredictorHistory(history),
		NewData: predictor.NewData{
			Nationality: params.Nationality,
			City:        params.City,
			Age:         age,
			Gender:      gender,
			Group:       params.Group,
			Duration:    params.Duration,
			RoomType:    params.RoomType,
		},
	}

	result, err := uc.predictor.Predict(ctx, request)
	if err != nil {
		uc.logger.Warn("PredictPackages: predictor failed, using defaults: %v", err)
		uc.metrics.ObserveExternalCall(dependencyPredictor, metrics.OutcomeFallback)
		return nil, err
	}
	uc.metrics.ObserveExternalCall(dependencyPredictor, metrics.OutcomeOK)

	items := result.Services.Items()
	suggestions := make([]recommendation.Suggestion, 0, len(items))
	for _, it := range items {
		suggestions = append(suggestions, recommendation.Suggestion{Name: it.Name, Score: it.Score})
	}
	return suggestions, nil
}

func toPredictorHistory(history []domain.HistoricalRecord) []predictor.HistoricalRecord {
	result := make([]predictor.HistoricalRecord, 0, len(history))
	for _, h := range history {
		result = append(result, predictor.HistoricalRecord{
			Nationality: h.Nationality,
			City:        h.City,
			AgeGender:   h.AgeGender,
			Group:       h.Group,
			Duration:    h.Duration,
			RoomType:    h.RoomType,
			Services:    h.Services,
		})
	}
	return result
}
