package accept_service

import "errors"

var (
	// ErrPackageNotFound возвращается, когда бронирование не найдено
	ErrPackageNotFound = errors.New("accept_service: package not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("accept_service: service not found")

	// ErrNotRequested возвращается в строгом режиме, если гость не запрашивал услугу
	ErrNotRequested = errors.New("accept_service: service was not requested by the guest")

	// ErrAlreadyAccepted возвращается в строгом режиме при повторном подтверждении
	ErrAlreadyAccepted = errors.New("accept_service: service already accepted")

	// ErrNoCapacity возвращается, когда у услуги не осталось мест
	ErrNoCapacity = errors.New("accept_service: no capacity left")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("accept_service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("accept_service: internal error")
)
