package recommendation

// RandomSource источник случайных чисел для синтезированных цен и оценок
type RandomSource interface {
	// Intn возвращает число из [0, n)
	Intn(n int) int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
