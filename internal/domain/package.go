package domain

import (
	"strconv"
	"time"
)

// RoomType represents the room category of a booking
type RoomType string

const (
	RoomStandard RoomType = "standard"
	RoomDeluxe   RoomType = "deluxe"
	RoomSuite    RoomType = "suite"
	RoomFamily   RoomType = "family"
	RoomCave     RoomType = "cave"
)

// RoomTypes list of supported room types
var RoomTypes = []RoomType{
	RoomStandard,
	RoomDeluxe,
	RoomSuite,
	RoomFamily,
	RoomCave,
}

// IsValid returns true if the room type is one of RoomTypes
func (r RoomType) IsValid() bool {
	for _, t := range RoomTypes {
		if r == t {
			return true
		}
	}
	return false
}

// Package represents a guest reservation together with the requested services
type Package struct {
	ID            int64
	Name          string
	Surname       string
	Nationality   string
	SerialNumber  string // government id or passport number
	City          string
	Age           int
	Gender        bool   // true - male
	Group         string // serialized roster, e.g. "[30M,28F]"
	ArrivalDate   time.Time
	DepartureDate time.Time
	HotelID       int64
	RoomType      RoomType
	Services      []int64 // requested service ids
	Accepted      []int64 // staff-accepted service ids
	CreatedAt     time.Time
}

// Duration returns the stay length in days, never less than MinStayDays
func (p *Package) Duration() int {
	return StayDuration(p.ArrivalDate, p.DepartureDate)
}

// AgeGender returns the "<age><M|F>" token of the primary guest
func (p *Package) AgeGender() string {
	letter := GenderFemaleLetter
	if p.Gender {
		letter = GenderMaleLetter
	}
	return strconv.Itoa(p.Age) + letter
}

// IsRequested returns true if the service was requested by the guest
func (p *Package) IsRequested(serviceID int64) bool {
	return containsID(p.Services, serviceID)
}

// IsAccepted returns true if the service was already accepted by staff
func (p *Package) IsAccepted(serviceID int64) bool {
	return containsID(p.Accepted, serviceID)
}

// PackageFilter filter for booking reads
type PackageFilter struct {
	HotelID *int64 // nil - all hotels
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
