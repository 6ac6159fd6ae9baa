package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/cappadocia-tours/internal/api/handlers"
	createBooking "github.com/m04kA/cappadocia-tours/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFormat      = "некорректный формат даты (ожидается YYYY-MM-DD) или возраста"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidDates       = "дата выезда должна быть позже даты заезда"
	msgHotelNotFound      = "отель не найден"
	msgServiceNotInHotel  = "услуга не принадлежит выбранному отелю"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат и возраста)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidDates):
			h.logger.Warn("POST /bookings - Invalid dates: hotel_id=%d", req.HotelID)
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrHotelNotFound):
			h.logger.Warn("POST /bookings - Hotel not found: hotel_id=%d", req.HotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, createBooking.ErrServiceNotInHotel):
			h.logger.Warn("POST /bookings - %v", err)
			handlers.RespondBadRequest(w, msgServiceNotInHotel)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: hotel_id=%d, error=%v", req.HotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: package_id=%d, hotel_id=%d", result.ID, result.HotelID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
