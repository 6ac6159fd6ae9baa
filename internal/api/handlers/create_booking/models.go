package create_booking

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/cappadocia-tours/internal/api/handlers"
	"github.com/m04kA/cappadocia-tours/internal/domain"
	createBooking "github.com/m04kA/cappadocia-tours/internal/usecase/create_booking"
)

// TravelerRequest участник поездки
type TravelerRequest struct {
	Age    handlers.FlexString `json:"age"`
	Gender string              `json:"gender"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name          string              `json:"name"`
	Surname       string              `json:"surname"`
	Nationality   string              `json:"nationality"`
	SerialNumber  string              `json:"serialNumber"`
	City          string              `json:"city"`
	Age           handlers.FlexString `json:"age"`
	Gender        string              `json:"gender"` // "male" / "female"
	Travelers     []TravelerRequest   `json:"travelers,omitempty"`
	Adults        handlers.FlexInt    `json:"adults,omitempty"`
	ArrivalDate   string              `json:"arrivalDate"`   // "2024-06-01"
	DepartureDate string              `json:"departureDate"` // "2024-06-08"
	HotelID       int64               `json:"hotelId"`
	RoomType      string              `json:"roomType"`
	Services      []int64             `json:"services"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Surname       string  `json:"surname"`
	Nationality   string  `json:"nationality"`
	SerialNumber  string  `json:"serialNumber"`
	City          string  `json:"city"`
	Age           int     `json:"age"`
	Gender        bool    `json:"gender"`
	Group         string  `json:"group"`
	ArrivalDate   string  `json:"arrivalDate"`
	DepartureDate string  `json:"departureDate"`
	Duration      int     `json:"duration"`
	HotelID       int64   `json:"hotelId"`
	RoomType      string  `json:"roomType"`
	Services      []int64 `json:"services"`
	Accepted      []int64 `json:"accepted"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	arrival, err := handlers.ParseDate(r.ArrivalDate)
	if err != nil {
		return nil, err
	}
	departure, err := handlers.ParseDate(r.DepartureDate)
	if err != nil {
		return nil, err
	}

	age := 0
	if s := strings.TrimSpace(string(r.Age)); s != "" {
		age, err = strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
	}

	travelers := make([]createBooking.Traveler, 0, len(r.Travelers))
	for _, t := range r.Travelers {
		travelers = append(travelers, createBooking.Traveler{Age: string(t.Age), Gender: t.Gender})
	}

	return &createBooking.Request{
		Name:          r.Name,
		Surname:       r.Surname,
		Nationality:   r.Nationality,
		SerialNumber:  r.SerialNumber,
		City:          r.City,
		Age:           age,
		Gender:        r.Gender,
		Travelers:     travelers,
		Adults:        int(r.Adults),
		ArrivalDate:   arrival,
		DepartureDate: departure,
		HotelID:       r.HotelID,
		RoomType:      r.RoomType,
		Services:      r.Services,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	accepted := resp.Accepted
	if accepted == nil {
		accepted = []int64{}
	}
	services := resp.Services
	if services == nil {
		services = []int64{}
	}

	return &BookingResponse{
		ID:            resp.ID,
		Name:          resp.Name,
		Surname:       resp.Surname,
		Nationality:   resp.Nationality,
		SerialNumber:  resp.SerialNumber,
		City:          resp.City,
		Age:           resp.Age,
		Gender:        resp.Gender,
		Group:         resp.Group,
		ArrivalDate:   resp.ArrivalDate.Format(domain.DateFormat),
		DepartureDate: resp.DepartureDate.Format(domain.DateFormat),
		Duration:      resp.Duration,
		HotelID:       resp.HotelID,
		RoomType:      resp.RoomType,
		Services:      services,
		Accepted:      accepted,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
