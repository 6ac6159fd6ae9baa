package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Surname) == "" {
		return fmt.Errorf("%w: name and surname are required", ErrInvalidInput)
	}

	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelId must be positive", ErrInvalidInput)
	}

	if req.Age < 0 || req.Age > domain.MaxGuestAge {
		return fmt.Errorf("%w: age must be between 0 and %d", ErrInvalidInput, domain.MaxGuestAge)
	}

	if req.ArrivalDate.IsZero() || req.DepartureDate.IsZero() {
		return fmt.Errorf("%w: arrival and departure dates are required", ErrInvalidInput)
	}

	if !req.DepartureDate.After(req.ArrivalDate) {
		return ErrInvalidDates
	}

	if req.RoomType != "" && !domain.RoomType(req.RoomType).IsValid() {
		return fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.RoomType)
	}

	if req.Adults < 0 {
		return fmt.Errorf("%w: adults must be non-negative", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.Services))
	for _, id := range req.Services {
		if id <= 0 {
			return fmt.Errorf("%w: service ids must be positive", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: service id %d is duplicated", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// rosterTokens собирает токены состава группы. Участники без возраста или пола пропускаются;
// без участников используется Adults x DefaultAgeGender
func rosterTokens(travelers []Traveler, adults int) []string {
	if len(travelers) == 0 {
		return domain.DefaultRoster(adults)
	}

	tokens := make([]string, 0, len(travelers))
	for _, t := range travelers {
		if strings.TrimSpace(t.Age) == "" || strings.TrimSpace(t.Gender) == "" {
			continue
		}
		tokens = append(tokens, domain.AgeGenderToken(t.Age, t.Gender))
	}
	return tokens
}
