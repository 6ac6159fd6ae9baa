package images

import "errors"

var (
	// ErrConfig возвращается при некорректной конфигурации хранилища
	ErrConfig = errors.New("images.storage: invalid configuration")

	// ErrUpload возвращается при ошибке загрузки объекта
	ErrUpload = errors.New("images.storage: upload failed")
)
