package create_booking

import (
	"time"
)

// Traveler участник поездки
type Traveler struct {
	Age    string // возраст строкой, как пришел из формы
	Gender string // "male" / "female"
}

// Request модель запроса на создание бронирования
type Request struct {
	Name          string
	Surname       string
	Nationality   string
	SerialNumber  string // паспорт или удостоверение личности
	City          string
	Age           int
	Gender        string // "male" / "female"
	Travelers     []Traveler
	Adults        int // используется, если Travelers пуст
	ArrivalDate   time.Time
	DepartureDate time.Time
	HotelID       int64
	RoomType      string // пусто - standard
	Services      []int64
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	Name          string
	Surname       string
	Nationality   string
	SerialNumber  string
	City          string
	Age           int
	Gender        bool
	Group         string
	ArrivalDate   time.Time
	DepartureDate time.Time
	Duration      int
	HotelID       int64
	RoomType      string
	Services      []int64
	Accepted      []int64
	CreatedAt     time.Time
}
