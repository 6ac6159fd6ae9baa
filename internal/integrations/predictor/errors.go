package predictor

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("predictor client: internal error")

	// ErrUnavailable возвращается, когда сервис прогнозов недоступен или не ответил вовремя
	ErrUnavailable = errors.New("predictor client: service unavailable")

	// ErrUnexpectedStatus возвращается при ответе со статусом, отличным от 2xx
	ErrUnexpectedStatus = errors.New("predictor client: unexpected status code")

	// ErrInvalidResponse возвращается при некорректном теле ответа
	ErrInvalidResponse = errors.New("predictor client: invalid response")
)
