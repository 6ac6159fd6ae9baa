package predictor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SuggestionKind форма, в которой пришел список предложенных услуг
type SuggestionKind int

const (
	KindNone    SuggestionKind = iota // поле отсутствует или null
	KindString                        // строка: JSON-массив либо список через запятую
	KindList                          // массив строк
	KindObjects                       // массив объектов {name, score}
)

// SuggestedService одна предложенная услуга
type SuggestedService struct {
	Name  string
	Score *int // nil - сервис не прислал оценку
}

// Suggestions tagged union над всеми формами поля services
type Suggestions struct {
	Kind  SuggestionKind
	items []SuggestedService
}

// NewSuggestions собирает список из готовых имен
func NewSuggestions(names ...string) Suggestions {
	items := make([]SuggestedService, 0, len(names))
	for _, n := range names {
		items = append(items, SuggestedService{Name: n})
	}
	return Suggestions{Kind: KindList, items: items}
}

// Items возвращает разобранные предложения в исходном порядке
func (s Suggestions) Items() []SuggestedService {
	result := make([]SuggestedService, len(s.items))
	copy(result, s.items)
	return result
}

// Len количество предложений
func (s Suggestions) Len() int {
	return len(s.items)
}

type suggestionObject struct {
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Score *float64 `json:"score"`
}

// UnmarshalJSON разбирает services в любой из поддерживаемых форм.
// Ошибка возвращается только для форм, которые нельзя интерпретировать.
func (s *Suggestions) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = Suggestions{Kind: KindNone}
		return nil
	}

	switch data[0] {
	case '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: services string: %v", ErrInvalidResponse, err)
		}
		*s = Suggestions{Kind: KindString, items: parseString(raw)}
		return nil
	case '[':
		var elements []json.RawMessage
		if err := json.Unmarshal(data, &elements); err != nil {
			return fmt.Errorf("%w: services array: %v", ErrInvalidResponse, err)
		}
		kind, items := parseElements(elements)
		*s = Suggestions{Kind: kind, items: items}
		return nil
	default:
		return fmt.Errorf("%w: unsupported services shape", ErrInvalidResponse)
	}
}

// parseString сначала пробует JSON, затем делит строку по запятым
func parseString(raw string) []SuggestedService {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err == nil {
		_, items := parseElements(elements)
		return items
	}

	// Python-подобный список: ['Balon Turu', 'ATV Safari']
	trimmed := strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")

	parts := strings.Split(trimmed, ",")
	items := make([]SuggestedService, 0, len(parts))
	for _, p := range parts {
		name := strings.Trim(strings.TrimSpace(p), `'"`)
		if name == "" {
			continue
		}
		items = append(items, SuggestedService{Name: name})
	}
	return items
}

func parseElements(elements []json.RawMessage) (SuggestionKind, []SuggestedService) {
	kind := KindList
	items := make([]SuggestedService, 0, len(elements))

	for i, el := range elements {
		var name string
		if err := json.Unmarshal(el, &name); err == nil {
			items = append(items, SuggestedService{Name: fallbackName(strings.TrimSpace(name), i)})
			continue
		}

		kind = KindObjects

		var obj suggestionObject
		if err := json.Unmarshal(el, &obj); err != nil {
			items = append(items, SuggestedService{Name: fallbackName("", i)})
			continue
		}

		n := obj.Name
		if n == "" {
			n = obj.Title
		}
		item := SuggestedService{Name: fallbackName(strings.TrimSpace(n), i)}
		if obj.Score != nil {
			score := normalizeScore(*obj.Score)
			item.Score = &score
		}
		items = append(items, item)
	}

	return kind, items
}

// fallbackName подставляет "Hizmet N" (N с единицы) для безымянных элементов
func fallbackName(name string, index int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("Hizmet %d", index+1)
}

// normalizeScore приводит оценку к процентам 0-100. Доли (0..1) умножаются на 100
func normalizeScore(v float64) int {
	if v > 0 && v <= 1 {
		v *= 100
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v + 0.5)
}
