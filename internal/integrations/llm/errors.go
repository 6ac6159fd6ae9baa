package llm

import "errors"

var (
	// ErrDisabled возвращается, если ключ API не настроен
	ErrDisabled = errors.New("llm client: api key not configured")

	// ErrRateLimited возвращается, если не удалось дождаться слота rate limiter'а
	ErrRateLimited = errors.New("llm client: rate limit wait aborted")

	// ErrUnavailable возвращается при ошибке обращения к API
	ErrUnavailable = errors.New("llm client: completion failed")

	// ErrEmptyResponse возвращается, если модель не вернула ни одного варианта
	ErrEmptyResponse = errors.New("llm client: empty response")
)
