package domain

import (
	"math"
	"strings"
	"time"
)

// StayDuration returns ceil((checkOut - checkIn) / 1 day).
// A zero date on either side gives MinStayDays; the result is never below MinStayDays.
func StayDuration(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return MinStayDays
	}

	days := int(math.Ceil(float64(checkOut.Sub(checkIn)) / float64(Day)))
	if days < MinStayDays {
		return MinStayDays
	}
	return days
}

// GenderLetter maps a form gender value ("male"/"female") to "M"/"F".
// Anything other than "male" is treated as female.
func GenderLetter(gender string) string {
	if strings.EqualFold(strings.TrimSpace(gender), "male") {
		return GenderMaleLetter
	}
	return GenderFemaleLetter
}

// AgeGenderToken builds the "<age><M|F>" token, e.g. "30M"
func AgeGenderToken(age, gender string) string {
	return strings.TrimSpace(age) + GenderLetter(gender)
}

// SplitAgeGender splits a token into age (all but the last character)
// and gender (the last character)
func SplitAgeGender(token string) (age, gender string) {
	if token == "" {
		return "", ""
	}
	return token[:len(token)-1], token[len(token)-1:]
}

// EncodeGroup serializes roster tokens as "[t1,t2,...]", each token wrapped in quote
func EncodeGroup(tokens []string, quote string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = quote + t + quote
	}
	return "[" + strings.Join(quoted, ",") + "]"
}

// DefaultRoster returns count copies of DefaultAgeGender
func DefaultRoster(count int) []string {
	if count < 0 {
		count = 0
	}
	roster := make([]string, count)
	for i := range roster {
		roster[i] = DefaultAgeGender
	}
	return roster
}
