package recommendation

import (
	"hash/fnv"
	"strings"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	"github.com/m04kA/cappadocia-tours/pkg/ptr"
)

// Joiner сопоставляет предложения сервиса прогнозов с каталогом услуг
type Joiner struct {
	rnd RandomSource
	log Logger
}

// NewJoiner создает новый экземпляр Joiner
func NewJoiner(rnd RandomSource, log Logger) *Joiner {
	return &Joiner{rnd: rnd, log: log}
}

// Join превращает предложения в рекомендации. Никогда не возвращает пустой список:
// без предложений используются DefaultNames.
//
// Совпадение с каталогом (по имени, без учета регистра) дает ID, цену, описание и
// изображение услуги. Иначе значения подбираются по ключевым словам, а ID
// отрицательный и зависит только от имени (SyntheticID).
//
// Предложения, сведенные к одному ID, объединяются: остается первая позиция
// с наибольшей из оценок.
func (j *Joiner) Join(suggestions []Suggestion, catalog []*domain.Service) []domain.Recommendation {
	if len(suggestions) == 0 {
		j.log.Warn("Join: no suggestions, using %d default recommendations", len(DefaultNames))
		return j.Defaults(catalog)
	}

	byName := make(map[string]*domain.Service, len(catalog))
	for _, s := range catalog {
		key := normalizeName(s.Name)
		if _, exists := byName[key]; !exists {
			byName[key] = s
		}
	}

	result := make([]domain.Recommendation, 0, len(suggestions))
	position := make(map[int64]int, len(suggestions))
	matched := 0
	for _, sg := range suggestions {
		rec := j.resolve(sg.Name, byName)

		if sg.Score != nil {
			rec.Score = clampScore(*sg.Score)
		} else {
			rec.Score = randomScoreBase + j.rnd.Intn(randomScoreSpan)
		}

		if i, dup := position[rec.ID]; dup {
			if rec.Score > result[i].Score {
				result[i].Score = rec.Score
			}
			continue
		}

		if rec.IsFromCatalog() {
			matched++
		}
		position[rec.ID] = len(result)
		result = append(result, rec)
	}

	j.log.Info("Join: %d suggestions, %d unique, %d matched catalog", len(suggestions), len(result), matched)
	return result
}

// Defaults встроенный список рекомендаций (балон, kırmızı tur, ATV)
func (j *Joiner) Defaults(catalog []*domain.Service) []domain.Recommendation {
	suggestions := make([]Suggestion, 0, len(DefaultNames))
	for _, n := range DefaultNames {
		suggestions = append(suggestions, Suggestion{Name: n})
	}
	return j.Join(suggestions, catalog)
}

func (j *Joiner) resolve(name string, byName map[string]*domain.Service) domain.Recommendation {
	if s, ok := byName[normalizeName(name)]; ok {
		return domain.Recommendation{
			ID:          s.ID,
			ServiceID:   ptr.Ptr(s.ID),
			Title:       s.Name,
			Description: s.Description,
			Price:       s.Price,
			ImagePath:   s.ImagePath,
		}
	}

	price, ok := PriceByName(name)
	if !ok {
		price = float64(randomPriceBase + j.rnd.Intn(randomPriceSpan))
	}

	return domain.Recommendation{
		ID:          SyntheticID(name),
		Title:       name,
		Description: DescribeByName(name),
		Price:       price,
		ImagePath:   ImageByName(name),
	}
}

// SyntheticID отрицательный ID рекомендации вне каталога: FNV-1a от нормализованного
// имени, ограниченный 52 битами (точное целое в JSON-клиентах). Одно имя дает
// один ID в любом запросе
func SyntheticID(name string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(normalizeName(name)))
	return -int64(h.Sum64()&syntheticIDMask) - 1
}

const syntheticIDMask = 1<<52 - 1

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
