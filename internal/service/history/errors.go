package history

import "errors"

var (
	// ErrFetchPackages возвращается, если не удалось прочитать бронирования
	ErrFetchPackages = errors.New("history: failed to fetch packages")

	// ErrFetchServices возвращается, если не удалось прочитать каталог услуг
	ErrFetchServices = errors.New("history: failed to fetch services")
)
