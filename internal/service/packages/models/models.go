package models

import (
	"time"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// PackageResponse бронирование для панели администратора
type PackageResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Surname       string    `json:"surname"`
	Nationality   string    `json:"nationality"`
	SerialNumber  string    `json:"serialNumber"`
	City          string    `json:"city"`
	Age           int       `json:"age"`
	Gender        bool      `json:"gender"`
	Group         string    `json:"group"`
	ArrivalDate   string    `json:"arrivalDate"`
	DepartureDate string    `json:"departureDate"`
	Duration      int       `json:"duration"`
	HotelID       int64     `json:"hotelId"`
	RoomType      string    `json:"roomType"`
	Services      []int64   `json:"services"`
	Accepted      []int64   `json:"accepted"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FromDomainPackage конвертирует бронирование
func FromDomainPackage(p *domain.Package) *PackageResponse {
	return &PackageResponse{
		ID:            p.ID,
		Name:          p.Name,
		Surname:       p.Surname,
		Nationality:   p.Nationality,
		SerialNumber:  p.SerialNumber,
		City:          p.City,
		Age:           p.Age,
		Gender:        p.Gender,
		Group:         p.Group,
		ArrivalDate:   formatDate(p.ArrivalDate),
		DepartureDate: formatDate(p.DepartureDate),
		Duration:      p.Duration(),
		HotelID:       p.HotelID,
		RoomType:      string(p.RoomType),
		Services:      nonNil(p.Services),
		Accepted:      nonNil(p.Accepted),
		CreatedAt:     p.CreatedAt,
	}
}

// FromDomainPackageList конвертирует список бронирований
func FromDomainPackageList(packages []*domain.Package) []*PackageResponse {
	result := make([]*PackageResponse, 0, len(packages))
	for _, p := range packages {
		result = append(result, FromDomainPackage(p))
	}
	return result
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateFormat)
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
