package describe_package

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var errNoJSONObject = errors.New("describe_package: no json object in completion")

// packageDescription ответ модели
type packageDescription struct {
	Name        string      `json:"paketAdi"`
	Description string      `json:"aciklama"`
	Features    []string    `json:"ozellikler"`
	Activities  activityIDs `json:"aktiviteler"`
}

// activityIDs принимает числа и числовые строки
type activityIDs []int64

func (a *activityIDs) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ids := make([]int64, 0, len(raw))
	for _, r := range raw {
		var n json.Number
		if err := json.Unmarshal(r, &n); err != nil {
			continue
		}
		id, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	*a = ids
	return nil
}

// parseCompletion извлекает JSON-объект из ответа модели. Допускается обертка ```json ... ```
// и текст вокруг объекта.
func parseCompletion(text string) (*packageDescription, error) {
	body := strings.TrimSpace(text)
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")

	start := strings.Index(body, "{")
	end := strings.LastIndex(body, "}")
	if start < 0 || end < start {
		return nil, errNoJSONObject
	}

	var desc packageDescription
	if err := json.Unmarshal([]byte(body[start:end+1]), &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}
