package models

import (
	"time"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	HotelID     int64   `json:"hotelId"`
	AgencyID    int64   `json:"agencyId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	ImagePath   string  `json:"imagePath"`
}

// ToDomain конвертирует запрос в услугу
func (r *CreateServiceRequest) ToDomain() *domain.Service {
	agency := r.AgencyID
	if agency == 0 {
		agency = 1
	}
	return &domain.Service{
		HotelID:     r.HotelID,
		AgencyID:    agency,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Capacity:    r.Capacity,
		ImagePath:   r.ImagePath,
	}
}

// UpdateCapacityRequest абсолютное значение (Capacity) либо приращение (Delta)
type UpdateCapacityRequest struct {
	Capacity *int `json:"capacity,omitempty"`
	Delta    *int `json:"delta,omitempty"`
}

// Response модели

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID          int64     `json:"id"`
	HotelID     int64     `json:"hotelId"`
	AgencyID    int64     `json:"agencyId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	ImagePath   string    `json:"imagePath"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HotelResponse отель; Services заполняется только в детальном ответе
type HotelResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	CreatedAt   time.Time          `json:"createdAt"`
	Services    []*ServiceResponse `json:"services,omitempty"`
}

// StatsResponse счетчики для панели администратора
type StatsResponse struct {
	Hotels        int64 `json:"hotels"`
	Services      int64 `json:"services"`
	Packages      int64 `json:"packages"`
	PackagesToday int64 `json:"packagesToday"`
}

// FromDomainService конвертирует услугу
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          s.ID,
		HotelID:     s.HotelID,
		AgencyID:    s.AgencyID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Capacity:    s.Capacity,
		ImagePath:   s.ImagePath,
		CreatedAt:   s.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список услуг
func FromDomainServiceList(services []*domain.Service) []*ServiceResponse {
	result := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, FromDomainService(s))
	}
	return result
}

// FromDomainHotel конвертирует отель вместе с услугами
func FromDomainHotel(h *domain.Hotel) *HotelResponse {
	resp := &HotelResponse{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
	}
	if h.Services != nil {
		resp.Services = FromDomainServiceList(h.Services)
	}
	return resp
}

// FromDomainHotelList конвертирует список отелей
func FromDomainHotelList(hotels []*domain.Hotel) []*HotelResponse {
	result := make([]*HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		result = append(result, FromDomainHotel(h))
	}
	return result
}

// FromDomainStats конвертирует статистику
func FromDomainStats(s domain.Stats) *StatsResponse {
	return &StatsResponse{
		Hotels:        s.Hotels,
		Services:      s.Services,
		Packages:      s.Packages,
		PackagesToday: s.PackagesToday,
	}
}
