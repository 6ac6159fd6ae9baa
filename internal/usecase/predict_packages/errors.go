package predict_packages

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("predict_packages: invalid input data")
)

// PredictErrorMessage сообщение для клиента, когда сервис прогнозов недоступен
const PredictErrorMessage = "AI tahmin hatası, varsayılan paketler gösteriliyor"
