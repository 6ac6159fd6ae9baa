package weather

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("weather client: internal error")

	// ErrUnavailable возвращается, когда сервис погоды недоступен
	ErrUnavailable = errors.New("weather client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("weather client: invalid response")
)
