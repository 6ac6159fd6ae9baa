package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	serviceRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/service"
	"github.com/m04kA/cappadocia-tours/internal/service/cart/models"
	"github.com/m04kA/cappadocia-tours/pkg/ptr"
)

// Service сервис корзин: сессии, позиции, наборы и оформление
type Service struct {
	store       *Store
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса корзин
func NewService(store *Store, serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		store:       store,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create открывает новую корзину
func (s *Service) Create() *models.CartResponse {
	id, state := s.store.Create()
	s.logger.Info("Create: cart=%s opened", id)
	return toResponse(id, state)
}

// Get возвращает корзину
func (s *Service) Get(cartID string) (*models.CartResponse, error) {
	state, err := s.store.Get(cartID)
	if err != nil {
		return nil, err
	}
	return toResponse(cartID, state), nil
}

// Delete завершает сессию корзины
func (s *Service) Delete(cartID string) error {
	if !s.store.Delete(cartID) {
		return ErrCartNotFound
	}
	s.logger.Info("Delete: cart=%s closed", cartID)
	return nil
}

// AddItem добавляет позицию. Позиции каталога (ID > 0) берутся из каталога:
// название и цена клиента игнорируются.
func (s *Service) AddItem(ctx context.Context, cartID string, req *models.AddItemRequest) (*models.CartResponse, error) {
	item, err := s.resolveItem(ctx, req)
	if err != nil {
		return nil, err
	}

	state, err := s.store.Update(cartID, func(c *Cart) State { return c.Add(item) })
	if err != nil {
		return nil, err
	}

	s.logger.Info("AddItem: cart=%s item=%d, items=%d", cartID, item.ID, len(state.Items))
	return toResponse(cartID, state), nil
}

// RemoveItem удаляет позицию
func (s *Service) RemoveItem(cartID string, itemID int64) (*models.CartResponse, error) {
	state, err := s.store.Update(cartID, func(c *Cart) State { return c.Remove(itemID) })
	if err != nil {
		return nil, err
	}
	return toResponse(cartID, state), nil
}

// Clear очищает корзину
func (s *Service) Clear(cartID string) (*models.CartResponse, error) {
	state, err := s.store.Update(cartID, func(c *Cart) State { return c.Clear() })
	if err != nil {
		return nil, err
	}
	return toResponse(cartID, state), nil
}

// SetBundle устанавливает активный набор
func (s *Service) SetBundle(cartID string, req *models.BundleRequest) (*models.CartResponse, error) {
	if len(req.ItemIDs) == 0 {
		return nil, fmt.Errorf("%w: bundle has no items", ErrInvalidItem)
	}

	bundle := req.ToDomain()
	state, err := s.store.Update(cartID, func(c *Cart) State { return c.SetBundle(bundle) })
	if err != nil {
		return nil, err
	}

	s.logger.Info("SetBundle: cart=%s bundle=%s complete=%t", cartID, bundle.ID, state.BundleComplete)
	return toResponse(cartID, state), nil
}

// ClearBundle снимает активный набор
func (s *Service) ClearBundle(cartID string) (*models.CartResponse, error) {
	state, err := s.store.Update(cartID, func(c *Cart) State { return c.SetBundle(nil) })
	if err != nil {
		return nil, err
	}
	return toResponse(cartID, state), nil
}

// Checkout фиксирует итоги и очищает корзину
func (s *Service) Checkout(cartID string) (*models.CheckoutResponse, error) {
	var final State
	empty := false

	_, err := s.store.Update(cartID, func(c *Cart) State {
		if c.Len() == 0 {
			empty = true
			return c.State()
		}
		final = c.State()
		c.Clear()
		c.SetBundle(nil)
		c.Close()
		return c.State()
	})
	if err != nil {
		return nil, err
	}
	if empty {
		return nil, ErrEmptyCart
	}

	s.logger.Info("Checkout: cart=%s items=%d total=%.2f", cartID, len(final.Items), final.Totals.Total)
	return toCheckout(cartID, final), nil
}

func (s *Service) resolveItem(ctx context.Context, req *models.AddItemRequest) (domain.Recommendation, error) {
	if req.ID == 0 {
		return domain.Recommendation{}, fmt.Errorf("%w: id is required", ErrInvalidItem)
	}

	if req.ID < 0 {
		// синтезированная рекомендация: данные приходят от клиента
		if strings.TrimSpace(req.Title) == "" || req.Price < 0 {
			return domain.Recommendation{}, fmt.Errorf("%w: title and non-negative price are required", ErrInvalidItem)
		}
		return req.ToDomain(), nil
	}

	service, err := s.serviceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return domain.Recommendation{}, fmt.Errorf("%w: service %d not found", ErrInvalidItem, req.ID)
		}
		s.logger.Error("AddItem: failed to load service id=%d: %v", req.ID, err)
		return domain.Recommendation{}, fmt.Errorf("%w: AddItem - load service: %v", ErrInternal, err)
	}

	return domain.Recommendation{
		ID:          service.ID,
		ServiceID:   ptr.Ptr(service.ID),
		Title:       service.Name,
		Description: service.Description,
		Price:       service.Price,
		ImagePath:   service.ImagePath,
		Score:       req.Score,
	}, nil
}

func toResponse(id string, state State) *models.CartResponse {
	return &models.CartResponse{
		ID:             id,
		Items:          toItems(state.Items),
		Bundle:         models.FromBundle(state.Bundle),
		BundleComplete: state.BundleComplete,
		Open:           state.Open,
		Totals:         toTotals(state.Totals),
	}
}

func toCheckout(id string, state State) *models.CheckoutResponse {
	return &models.CheckoutResponse{
		ID:     id,
		Items:  toItems(state.Items),
		Totals: toTotals(state.Totals),
	}
}

func toItems(items []domain.Recommendation) []models.ItemResponse {
	result := make([]models.ItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, models.FromRecommendation(item))
	}
	return result
}

func toTotals(t Totals) models.TotalsResponse {
	return models.TotalsResponse{
		Subtotal: t.Subtotal,
		Discount: t.Discount,
		Tax:      t.Tax,
		Total:    t.Total,
	}
}
