package predict_packages

import (
	"time"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// Traveler участник поездки из формы
type Traveler struct {
	Age    string
	Gender string // "male" / "female"
}

// Request ответы формы бронирования
type Request struct {
	FirstName    string
	LastName     string
	IDNumber     string
	Country      string
	City         string
	Age          string
	Gender       string // "male" / "female"
	Travelers    []Traveler
	Adults       int
	Children     int
	CheckInDate  time.Time // нулевое значение - дата не указана
	CheckOutDate time.Time
	RoomType     string
	HotelID      *int64 // nil - весь каталог
}

// PredictParams профиль, вычисленный локально и отправленный сервису прогнозов
type PredictParams struct {
	Nationality string
	City        string
	AgeGender   string
	Group       string
	Duration    int
	RoomType    string
}

// Response результат прогноза
type Response struct {
	FormData        *Request
	PredictParams   PredictParams
	Recommendations []domain.Recommendation // по убыванию оценки
	Bundles         []domain.Bundle
	HistorySize     int
	// Fallback true, если показаны рекомендации по умолчанию из-за ошибки сервиса прогнозов
	Fallback     bool
	PredictError string
}
