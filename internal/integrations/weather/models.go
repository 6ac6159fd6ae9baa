package weather

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Response ответ сервиса погоды
type Response struct {
	Success bool  `json:"success"`
	Result  []Day `json:"result"`
}

// Day прогноз на один день
type Day struct {
	Date        string `json:"date"`
	Day         string `json:"day"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Degree      Number `json:"degree"`
	Min         Number `json:"min"`
	Max         Number `json:"max"`
	Night       Number `json:"night"`
	Humidity    Number `json:"humidity"`
}

// Number число, которое сервис присылает то строкой ("12.5"), то числом
type Number float64

// UnmarshalJSON принимает число, строку с числом, пустую строку и null
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = Number(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}
