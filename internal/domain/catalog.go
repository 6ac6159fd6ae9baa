package domain

import "time"

// Hotel represents a hotel whose staff manage services and bookings
type Hotel struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time

	// Services is filled only by detail reads
	Services []*Service
}

// Service represents a purchasable activity or amenity offered by a hotel
type Service struct {
	ID          int64
	HotelID     int64
	AgencyID    int64
	Name        string
	Description string
	Price       float64
	Capacity    int // remaining bookable slots
	ImagePath   string
	CreatedAt   time.Time
}

// HasCapacity returns true if at least one slot can still be booked
func (s *Service) HasCapacity() bool {
	return s.Capacity > 0
}

// ServiceFilter filter for catalog reads
type ServiceFilter struct {
	HotelID *int64 // nil - all hotels
}

// Stats aggregated counters for the admin dashboard
type Stats struct {
	Hotels        int64
	Services      int64
	Packages      int64
	PackagesToday int64
}
