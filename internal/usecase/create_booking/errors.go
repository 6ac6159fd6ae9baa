package create_booking

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("create_booking: hotel not found")

	// ErrServiceNotInHotel возвращается, когда запрошенная услуга не принадлежит отелю
	ErrServiceNotInHotel = errors.New("create_booking: service does not belong to the hotel")

	// ErrInvalidDates возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDates = errors.New("create_booking: departure date must be after arrival date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
