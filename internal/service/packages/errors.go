package packages

import "errors"

var (
	// ErrPackageNotFound возвращается, когда бронирование не найдено
	ErrPackageNotFound = errors.New("package not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("packages service: internal error")
)
