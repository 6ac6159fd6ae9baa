package recommendation

import "strings"

// Значения для услуг, которых нет в каталоге
const (
	DefaultDescription = "Kapadokya'nın eşsiz güzelliklerini keşfedin"
	DefaultImage       = "cappadocia.jpg"

	// цена без совпадений: [randomPriceBase, randomPriceBase+randomPriceSpan)
	randomPriceBase = 30
	randomPriceSpan = 100

	// оценка без данных сервиса прогнозов: [randomScoreBase, 100]
	randomScoreBase = 70
	randomScoreSpan = 31
)

type textEntry struct {
	keyword string
	value   string
}

type priceEntry struct {
	keyword string
	price   float64
}

// Порядок важен: побеждает первое совпадение
var descriptions = []textEntry{
	{"Balon Turu", "Güneşin doğuşunu gökyüzünden izleyin"},
	{"Kapadokya Balon Turu", "Güneşin doğuşunu gökyüzünden izleyin"},
	{"Kırmızı Tur", "Göreme Açık Hava Müzesi ve bölgenin doğal güzelliklerini keşfedin"},
	{"ATV Safari", "Vadileri ATV ile keşfetme deneyimi"},
	{"Türk Gecesi", "Geleneksel Türk müziği ve dansları eşliğinde akşam yemeği"},
	{"At Binme", "Kapadokya vadilerinde at sırtında gezi"},
	{"Yeraltı Şehri Turu", "Antik yeraltı şehirlerini keşfedin"},
}

var prices = []priceEntry{
	{"Balon", 150},
	{"Kapadokya Balon", 150},
	{"Tur", 80},
	{"ATV", 60},
	{"Safari", 60},
	{"Gece", 70},
	{"At", 50},
	{"Yeraltı", 40},
}

var images = []textEntry{
	{"Balon", "balloon.jpg"},
	{"Kapadokya Balon", "balloon.jpg"},
	{"Tur", "red-tour.jpg"},
	{"Kırmızı", "red-tour.jpg"},
	{"ATV", "atv.jpg"},
	{"Safari", "atv.jpg"},
	{"Gece", "turkish-night.jpg"},
	{"At", "horse.jpg"},
	{"Yeraltı", "underground.jpg"},
}

// DescribeByName подбирает описание по ключевому слову в названии
func DescribeByName(name string) string {
	if v, ok := lookupText(descriptions, name); ok {
		return v
	}
	return DefaultDescription
}

// ImageByName подбирает изображение по ключевому слову в названии
func ImageByName(name string) string {
	if v, ok := lookupText(images, name); ok {
		return v
	}
	return DefaultImage
}

// PriceByName подбирает цену по ключевому слову. ok=false - совпадений нет
func PriceByName(name string) (float64, bool) {
	lower := strings.ToLower(name)
	for _, e := range prices {
		if strings.Contains(lower, strings.ToLower(e.keyword)) {
			return e.price, true
		}
	}
	return 0, false
}

func lookupText(entries []textEntry, name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, e := range entries {
		if strings.Contains(lower, strings.ToLower(e.keyword)) {
			return e.value, true
		}
	}
	return "", false
}
