package carts

import (
	"context"

	"github.com/m04kA/cappadocia-tours/internal/service/cart/models"
)

type CartService interface {
	Create() *models.CartResponse
	Get(cartID string) (*models.CartResponse, error)
	Delete(cartID string) error
	AddItem(ctx context.Context, cartID string, req *models.AddItemRequest) (*models.CartResponse, error)
	RemoveItem(cartID string, itemID int64) (*models.CartResponse, error)
	Clear(cartID string) (*models.CartResponse, error)
	SetBundle(cartID string, req *models.BundleRequest) (*models.CartResponse, error)
	ClearBundle(cartID string) (*models.CartResponse, error)
	Checkout(cartID string) (*models.CheckoutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
