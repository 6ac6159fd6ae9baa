package cart

import "errors"

var (
	// ErrCartNotFound возвращается, когда сессии корзины нет или она истекла
	ErrCartNotFound = errors.New("cart: cart not found")

	// ErrEmptyCart возвращается при оформлении пустой корзины
	ErrEmptyCart = errors.New("cart: cart is empty")

	// ErrInvalidItem возвращается при некорректной позиции
	ErrInvalidItem = errors.New("cart: invalid item")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cart: internal error")
)
