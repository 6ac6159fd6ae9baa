package cache

import "errors"

var (
	// ErrCacheMiss возвращается, если ключа нет в кэше
	ErrCacheMiss = errors.New("cache: miss")

	// ErrCache возвращается при ошибке обращения к Redis
	ErrCache = errors.New("cache: redis error")

	// ErrEncode возвращается при ошибке сериализации значения
	ErrEncode = errors.New("cache: encode error")
)
