package describe_package

import (
	"time"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	cartModels "github.com/m04kA/cappadocia-tours/internal/service/cart/models"
)

// Значения описания по умолчанию
const (
	FallbackName        = "Kapadokya Keşif Paketi"
	FallbackDescription = "En popüler Kapadokya etkinliklerini içeren özel paket"

	// BundleID идентификатор набора, установленного из описания
	BundleID = "gpt"

	// promptTopCount сколько лучших рекомендаций попадает в подсказку
	promptTopCount = 5
	// fallbackActivityCount сколько рекомендаций попадает в набор по умолчанию
	fallbackActivityCount = 3
	// promptWeatherDays сколько дней прогноза попадает в подсказку
	promptWeatherDays = 3
	// defaultPromptDuration длительность в подсказке, если даты не указаны
	defaultPromptDuration = 7
)

// FallbackFeatures особенности пакета по умолчанию
var FallbackFeatures = []string{"En iyi etkinlikler", "Kişiselleştirilmiş deneyim", "Uygun fiyat"}

// WeatherDay день прогноза для подсказки
type WeatherDay struct {
	Date        string
	Description string
	Degree      float64
}

// Request данные путешественника и его рекомендации
type Request struct {
	FirstName       string
	LastName        string
	Country         string
	City            string
	Adults          int
	Children        int
	RoomType        string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	Interests       []string
	SpecialRequests string
	Weather         []WeatherDay // пусто - прогноз запрашивается по City
	Recommendations []domain.Recommendation
	CartID          string // непусто - описание устанавливается как набор корзины
}

// Response описание пакета
type Response struct {
	Name        string
	Description string
	Features    []string
	Activities  []int64
	Price       float64 // сумма цен активностей
	// Fallback true, если использовано описание по умолчанию
	Fallback bool
	Cart     *cartModels.CartResponse
}
