package predict_packages

import (
	"fmt"
	"strings"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// validateRequest проверяет обязательные поля до любых внешних вызовов
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: firstName and lastName are required", ErrInvalidInput)
	}
	if req.Adults < 0 || req.Children < 0 {
		return fmt.Errorf("%w: adults and children must be non-negative", ErrInvalidInput)
	}
	return nil
}

// buildParams вычисляет профиль путешественника из ответов формы
func buildParams(req *Request, quote string) PredictParams {
	return PredictParams{
		Nationality: valueOr(req.Country, domain.DefaultNationality),
		City:        valueOr(req.City, domain.DefaultCity),
		AgeGender:   primaryAgeGender(req),
		Group:       encodeGroup(req, quote),
		Duration:    domain.StayDuration(req.CheckInDate, req.CheckOutDate),
		RoomType:    valueOr(req.RoomType, string(domain.DefaultRoomType)),
	}
}

// primaryAgeGender: возраст из формы, иначе первый участник, иначе DefaultAgeGender
func primaryAgeGender(req *Request) string {
	if strings.TrimSpace(req.Age) != "" {
		return domain.AgeGenderToken(req.Age, req.Gender)
	}
	if len(req.Travelers) > 0 && strings.TrimSpace(req.Travelers[0].Age) != "" {
		return domain.AgeGenderToken(req.Travelers[0].Age, req.Travelers[0].Gender)
	}
	return domain.DefaultAgeGender
}

// encodeGroup: участники без возраста или пола пропускаются; без участников
// каждый взрослый считается DefaultAgeGender
func encodeGroup(req *Request, quote string) string {
	if len(req.Travelers) > 0 {
		tokens := make([]string, 0, len(req.Travelers))
		for _, t := range req.Travelers {
			if strings.TrimSpace(t.Age) == "" || strings.TrimSpace(t.Gender) == "" {
				continue
			}
			tokens = append(tokens, domain.AgeGenderToken(t.Age, t.Gender))
		}
		return domain.EncodeGroup(tokens, quote)
	}
	return domain.EncodeGroup(domain.DefaultRoster(req.Adults), quote)
}

func valueOr(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}
