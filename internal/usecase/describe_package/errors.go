package describe_package

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("describe_package: invalid input data")

	// ErrCompletionFailed возвращается, когда LLM недоступна для прямого запроса
	ErrCompletionFailed = errors.New("describe_package: completion failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("describe_package: internal error")
)
