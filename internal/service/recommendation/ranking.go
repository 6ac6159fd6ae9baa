package recommendation

import (
	"math"
	"sort"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// Rank сортирует рекомендации по убыванию оценки. При равных оценках порядок сохраняется
func Rank(recs []domain.Recommendation) []domain.Recommendation {
	ranked := make([]domain.Recommendation, len(recs))
	copy(ranked, recs)

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	return ranked
}

// Bundles собирает 1-2 набора из ранжированных рекомендаций:
//   - от 2 позиций: premium из двух первых, скидка 10% (округление вниз)
//   - от 3 позиций: adventure из позиций 2-4, скидка 20
//   - ровно 1 позиция: единственный набор с наценкой 30
func Bundles(ranked []domain.Recommendation, firstName string) []domain.Bundle {
	if firstName == "" {
		firstName = DefaultGuestName
	}

	bundles := make([]domain.Bundle, 0, 2)

	if len(ranked) >= 2 {
		top := ranked[:2]
		sum := sumPrices(top)
		bundles = append(bundles, domain.Bundle{
			ID:          PremiumBundleID,
			Name:        firstName + " için Özel Premium Paket",
			Description: "En popüler aktiviteleri içeren lüks deneyim",
			Price:       sum - math.Floor(sum*premiumDiscountRate),
			ItemIDs:     ids(top),
			Confidence:  PremiumConfidence,
		})
	}

	if len(ranked) >= 3 {
		end := 1 + adventureMaxItems
		if end > len(ranked) {
			end = len(ranked)
		}
		items := ranked[1:end]
		bundles = append(bundles, domain.Bundle{
			ID:          AdventureBundleID,
			Name:        "Kapadokya Macera Paketi",
			Description: "Bölgenin en güzel yerlerini keşfedin",
			Price:       sumPrices(items) - adventureFlatDiscount,
			ItemIDs:     ids(items),
			Confidence:  AdventureConfidence,
		})
	}

	if len(bundles) == 0 && len(ranked) > 0 {
		bundles = append(bundles, domain.Bundle{
			ID:          SingleBundleID,
			Name:        "Kapadokya Keşif Paketi",
			Description: "Kapadokya'nın güzelliklerini keşfetmek için ideal paket",
			Price:       ranked[0].Price + singleMarkup,
			ItemIDs:     []int64{ranked[0].ID},
			Confidence:  SingleConfidence,
		})
	}

	return bundles
}

func sumPrices(recs []domain.Recommendation) float64 {
	var sum float64
	for _, r := range recs {
		sum += r.Price
	}
	return sum
}

func ids(recs []domain.Recommendation) []int64 {
	result := make([]int64, 0, len(recs))
	for _, r := range recs {
		result = append(result, r.ID)
	}
	return result
}
