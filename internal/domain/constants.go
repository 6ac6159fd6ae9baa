package domain

import "time"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	Day        = 24 * time.Hour
)

// Stay defaults
const (
	MinStayDays     = 1
	DefaultRoomType = RoomStandard
)

// Traveler defaults used when the intake form is incomplete
const (
	DefaultAgeGender   = "30M"
	DefaultNationality = "TR"
	DefaultCity        = "Unknown"
	GenderMaleLetter   = "M"
	GenderFemaleLetter = "F"
)

// UnknownServiceName placeholder for service ids missing from the catalog
const UnknownServiceName = "Bilinmeyen Servis"

// Business validation constants
const (
	MaxServiceNameLength = 200
	MaxGuestAge          = 120
)
