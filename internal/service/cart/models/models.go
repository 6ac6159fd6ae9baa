package models

import (
	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// Request модели

// AddItemRequest позиция для добавления в корзину
type AddItemRequest struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	ImagePath   string  `json:"imagePath,omitempty"`
	Score       int     `json:"score,omitempty"`
}

// ToDomain конвертирует запрос в рекомендацию
func (r *AddItemRequest) ToDomain() domain.Recommendation {
	return domain.Recommendation{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		ImagePath:   r.ImagePath,
		Score:       r.Score,
	}
}

// BundleRequest активный набор корзины
type BundleRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ItemIDs     []int64 `json:"services"`
	Confidence  float64 `json:"confidence,omitempty"`
}

// ToDomain конвертирует запрос в набор
func (r *BundleRequest) ToDomain() *domain.Bundle {
	return &domain.Bundle{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ItemIDs:     append([]int64(nil), r.ItemIDs...),
		Confidence:  r.Confidence,
	}
}

// Response модели

// ItemResponse позиция корзины
type ItemResponse struct {
	ID          int64   `json:"id"`
	ServiceID   *int64  `json:"serviceId,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImagePath   string  `json:"imagePath,omitempty"`
	Score       int     `json:"score,omitempty"`
}

// BundleResponse набор
type BundleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ItemIDs     []int64 `json:"services"`
	Confidence  float64 `json:"confidence"`
}

// TotalsResponse итоги корзины
type TotalsResponse struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// CartResponse состояние корзины
type CartResponse struct {
	ID             string          `json:"id"`
	Items          []ItemResponse  `json:"items"`
	Bundle         *BundleResponse `json:"bundle,omitempty"`
	BundleComplete bool            `json:"bundleComplete"`
	Open           bool            `json:"open"`
	Totals         TotalsResponse  `json:"totals"`
}

// CheckoutResponse итог оформления
type CheckoutResponse struct {
	ID     string         `json:"id"`
	Items  []ItemResponse `json:"items"`
	Totals TotalsResponse `json:"totals"`
}

// FromRecommendation конвертирует рекомендацию в позицию ответа
func FromRecommendation(r domain.Recommendation) ItemResponse {
	return ItemResponse{
		ID:          r.ID,
		ServiceID:   r.ServiceID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		ImagePath:   r.ImagePath,
		Score:       r.Score,
	}
}

// FromBundle конвертирует набор
func FromBundle(b *domain.Bundle) *BundleResponse {
	if b == nil {
		return nil
	}
	return &BundleResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		ItemIDs:     b.ItemIDs,
		Confidence:  b.Confidence,
	}
}
