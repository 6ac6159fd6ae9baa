package recommendation

// Suggestion одна услуга, предложенная сервисом прогнозов
type Suggestion struct {
	Name  string
	Score *int // 0-100, nil - оценки нет
}

// DefaultNames услуги, которые показываются при любой ошибке разбора
var DefaultNames = []string{
	"Kapadokya Balon Turu",
	"Kırmızı Tur",
	"ATV Safari",
}

// Идентификаторы и параметры наборов
const (
	PremiumBundleID   = "pkg1"
	AdventureBundleID = "pkg2"
	SingleBundleID    = "pkg1"

	PremiumConfidence   = 0.92
	AdventureConfidence = 0.85
	SingleConfidence    = 0.78

	premiumDiscountRate   = 0.10
	adventureFlatDiscount = 20
	singleMarkup          = 30

	adventureMaxItems = 3

	// DefaultGuestName подставляется в название premium-набора без имени гостя
	DefaultGuestName = "Misafirimiz"
)
