package describe_package

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	cartModels "github.com/m04kA/cappadocia-tours/internal/service/cart/models"
	"github.com/m04kA/cappadocia-tours/pkg/metrics"
)

const dependencyLLM = "llm"

// UseCase use case описания пакета с помощью LLM
type UseCase struct {
	llm     CompletionClient
	weather WeatherSource
	carts   CartService
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case. weather может быть nil
func NewUseCase(llm CompletionClient, weather WeatherSource, carts CartService, m Metrics, logger Logger) *UseCase {
	return &UseCase{
		llm:     llm,
		weather: weather,
		carts:   carts,
		metrics: m,
		logger:  logger,
	}
}

// Execute описывает пакет. Любая ошибка LLM или разбора дает описание по умолчанию;
// ошибкой завершаются только валидация и установка набора в корзину.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DescribePackage: validation failed: %v", err)
		return nil, err
	}

	// 2. Подсказка
	top := topRecommendations(req.Recommendations, promptTopCount)
	prompt := buildPrompt(req, uc.weatherFor(ctx, req), top)

	// 3. Запрос к LLM с откатом на описание по умолчанию
	resp := uc.describe(ctx, prompt, req.Recommendations, top)

	// 4. Установка набора в корзину
	if req.CartID != "" {
		cart, err := uc.carts.SetBundle(req.CartID, &cartModels.BundleRequest{
			ID:          BundleID,
			Name:        resp.Name,
			Description: resp.Description,
			Price:       resp.Price,
			ItemIDs:     resp.Activities,
		})
		if err != nil {
			uc.logger.Warn("DescribePackage: failed to install bundle into cart=%s: %v", req.CartID, err)
			return nil, err
		}
		resp.Cart = cart
	}

	uc.logger.Info("DescribePackage: name=%q, activities=%v, fallback=%t", resp.Name, resp.Activities, resp.Fallback)
	return resp, nil
}

// Complete прямой запрос к LLM
func (uc *UseCase) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}

	text, err := uc.llm.Complete(ctx, prompt)
	if err != nil {
		uc.metrics.ObserveExternalCall(dependencyLLM, metrics.OutcomeError)
		uc.logger.Error("Complete: llm failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}

	uc.metrics.ObserveExternalCall(dependencyLLM, metrics.OutcomeOK)
	return text, nil
}

func (uc *UseCase) describe(ctx context.Context, prompt string, all, top []domain.Recommendation) *Response {
	text, err := uc.llm.Complete(ctx, prompt)
	if err != nil {
		uc.logger.Warn("DescribePackage: llm failed, using fallback: %v", err)
		uc.metrics.ObserveExternalCall(dependencyLLM, metrics.OutcomeFallback)
		return fallback(all, top)
	}

	desc, err := parseCompletion(text)
	if err != nil {
		uc.logger.Warn("DescribePackage: malformed completion, using fallback: %v", err)
		uc.metrics.ObserveExternalCall(dependencyLLM, metrics.OutcomeFallback)
		return fallback(all, top)
	}

	// Оставляем только активности, которые есть среди рекомендаций
	byID := indexByID(all)
	activities := make([]int64, 0, len(desc.Activities))
	seen := make(map[int64]struct{}, len(desc.Activities))
	for _, id := range desc.Activities {
		if _, ok := byID[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		activities = append(activities, id)
	}

	if strings.TrimSpace(desc.Name) == "" || len(activities) == 0 {
		uc.logger.Warn("DescribePackage: completion has no name or known activities, using fallback")
		uc.metrics.ObserveExternalCall(dependencyLLM, metrics.OutcomeFallback)
		return fallback(all, top)
	}

	uc.metrics.ObserveExternalCall(dependencyLLM, metrics.OutcomeOK)

	features := desc.Features
	if features == nil {
		features = []string{}
	}

	return &Response{
		Name:        strings.TrimSpace(desc.Name),
		Description: strings.TrimSpace(desc.Description),
		Features:    features,
		Activities:  activities,
		Price:       sumPrices(byID, activities),
	}
}

// fallback описание по умолчанию из трех лучших рекомендаций
func fallback(all, top []domain.Recommendation) *Response {
	n := fallbackActivityCount
	if len(top) < n {
		n = len(top)
	}

	activities := make([]int64, 0, n)
	for _, r := range top[:n] {
		activities = append(activities, r.ID)
	}

	return &Response{
		Name:        FallbackName,
		Description: FallbackDescription,
		Features:    append([]string(nil), FallbackFeatures...),
		Activities:  activities,
		Price:       sumPrices(indexByID(all), activities),
		Fallback:    true,
	}
}

func (uc *UseCase) weatherFor(ctx context.Context, req *Request) []WeatherDay {
	if len(req.Weather) > 0 || uc.weather == nil {
		return req.Weather
	}

	forecast := uc.weather.Forecast(ctx, req.City)
	if forecast == nil {
		return nil
	}

	days := make([]WeatherDay, 0, len(forecast.Result))
	for _, d := range forecast.Result {
		days = append(days, WeatherDay{Date: d.Date, Description: d.Description, Degree: d.Degree})
	}
	return days
}

func indexByID(recs []domain.Recommendation) map[int64]domain.Recommendation {
	result := make(map[int64]domain.Recommendation, len(recs))
	for _, r := range recs {
		if _, exists := result[r.ID]; !exists {
			result[r.ID] = r
		}
	}
	return result
}

func sumPrices(byID map[int64]domain.Recommendation, ids []int64) float64 {
	var sum float64
	for _, id := range ids {
		sum += byID[id].Price
	}
	return sum
}
