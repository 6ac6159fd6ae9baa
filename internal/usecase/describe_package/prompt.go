package describe_package

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// buildPrompt собирает подсказку на турецком. Набор полей совпадает с тем, что
// ожидает модель: данные клиента, погода, совместимые активности и формат ответа.
func buildPrompt(req *Request, weather []WeatherDay, top []domain.Recommendation) string {
	var b strings.Builder

	b.WriteString("Kapadokya seyahati için özel bir paket hazırla. Şu bilgileri kullanarak öneri yap:\n\n")

	b.WriteString("Müşteri Bilgileri:\n")
	fmt.Fprintf(&b, "- İsim: %s %s\n", strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName))
	fmt.Fprintf(&b, "- Ülke/Şehir: %s/%s\n", req.Country, req.City)
	fmt.Fprintf(&b, "- Yetişkin Sayısı: %d\n", req.Adults)
	if req.Children > 0 {
		fmt.Fprintf(&b, "- Çocuk Sayısı: %d\n", req.Children)
	}
	roomType := req.RoomType
	if roomType == "" {
		roomType = "Standart"
	}
	fmt.Fprintf(&b, "- Oda Tipi: %s\n", roomType)
	fmt.Fprintf(&b, "- Kalış Süresi: %d gün\n", promptDuration(req))
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, "- İlgi Alanları: %s\n", strings.Join(req.Interests, ", "))
	}
	if s := strings.TrimSpace(req.SpecialRequests); s != "" {
		fmt.Fprintf(&b, "- Özel İstekler: %s\n", s)
	}

	b.WriteString("\nHava Durumu:\n")
	if len(weather) == 0 {
		b.WriteString("Hava durumu bilgisi mevcut değil\n")
	}
	for i, w := range weather {
		if i == promptWeatherDays {
			break
		}
		fmt.Fprintf(&b, "%s: %s, %s°C\n", w.Date, w.Description, strconv.FormatFloat(w.Degree, 'f', -1, 64))
	}

	b.WriteString("\nUyumlu Etkinlikler:\n")
	for _, r := range top {
		fmt.Fprintf(&b, "- %s (Uyumluluk: %%%d)\n", r.Title, r.Score)
	}

	ids := make([]string, 0, len(req.Recommendations))
	for _, r := range req.Recommendations {
		ids = append(ids, strconv.FormatInt(r.ID, 10))
	}

	b.WriteString("\nLütfen şunları yap:\n")
	b.WriteString("1. Bu müşteri için özel bir Kapadokya seyahat paketi oluştur.\n")
	fmt.Fprintf(&b, "2. Paket içinde bu etkinlik ID'lerinden uygun olanları seç: [%s]\n", strings.Join(ids, ", "))
	b.WriteString("3. Sadece şu formatta yanıt ver (JSON):\n")
	b.WriteString("{\n")
	b.WriteString("  \"paketAdi\": \"(Paket için yaratıcı bir isim)\",\n")
	b.WriteString("  \"aciklama\": \"(Paket için kısa bir pazarlama açıklaması)\",\n")
	b.WriteString("  \"ozellikler\": [\"(özellik1)\", \"(özellik2)\", \"(özellik3)\"],\n")
	b.WriteString("  \"aktiviteler\": [(İD numaraları, sadece sayı olarak)]\n")
	b.WriteString("}\n\n")
	b.WriteString("İndirimler ve paket avantajlarından bahsetme, sadece istenen formatta yanıt ver.\n")

	return b.String()
}

func promptDuration(req *Request) int {
	if req.CheckInDate.IsZero() || req.CheckOutDate.IsZero() {
		return defaultPromptDuration
	}
	return domain.StayDuration(req.CheckInDate, req.CheckOutDate)
}

// topRecommendations возвращает n рекомендаций с наибольшей оценкой, порядок стабилен
func topRecommendations(recs []domain.Recommendation, n int) []domain.Recommendation {
	sorted := make([]domain.Recommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Score > sorted[b].Score
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
