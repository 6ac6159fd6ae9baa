package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	hotelRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/hotel"
)

// UseCase use case для создания бронирования (package)
type UseCase struct {
	packageRepo PackageRepository
	hotelRepo   HotelRepository
	serviceRepo ServiceRepository
	groupQuote  string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// groupQuote - символ, которым обрамляются токены состава группы
func NewUseCase(
	packageRepo PackageRepository,
	hotelRepo HotelRepository,
	serviceRepo ServiceRepository,
	groupQuote string,
	logger Logger,
) *UseCase {
	return &UseCase{
		packageRepo: packageRepo,
		hotelRepo:   hotelRepo,
		serviceRepo: serviceRepo,
		groupQuote:  groupQuote,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: hotel=%d, arrival=%s, departure=%s, services=%v",
		req.HotelID, req.ArrivalDate.Format(domain.DateFormat), req.DepartureDate.Format(domain.DateFormat), req.Services)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем отель
	if _, err := uc.hotelRepo.GetByID(ctx, req.HotelID); err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			uc.logger.Warn("CreateBooking: hotel id=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("CreateBooking: failed to get hotel id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
	}

	// 3. Все запрошенные услуги должны принадлежать отелю
	if len(req.Services) > 0 {
		services, err := uc.serviceRepo.List(ctx, domain.ServiceFilter{HotelID: &req.HotelID})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list services of hotel id=%d: %v", req.HotelID, err)
			return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
		}

		own := make(map[int64]struct{}, len(services))
		for _, s := range services {
			own[s.ID] = struct{}{}
		}
		for _, id := range req.Services {
			if _, ok := own[id]; !ok {
				uc.logger.Warn("CreateBooking: service id=%d is not offered by hotel id=%d", id, req.HotelID)
				return nil, fmt.Errorf("%w: service id=%d", ErrServiceNotInHotel, id)
			}
		}
	}

	// 4. Создаем бронирование с пустым списком accepted
	roomType := domain.RoomType(req.RoomType)
	if roomType == "" {
		roomType = domain.DefaultRoomType
	}

	pkg := &domain.Package{
		Name:          strings.TrimSpace(req.Name),
		Surname:       strings.TrimSpace(req.Surname),
		Nationality:   req.Nationality,
		SerialNumber:  req.SerialNumber,
		City:          req.City,
		Age:           req.Age,
		Gender:        domain.GenderLetter(req.Gender) == domain.GenderMaleLetter,
		Group:         domain.EncodeGroup(rosterTokens(req.Travelers, req.Adults), uc.groupQuote),
		ArrivalDate:   req.ArrivalDate,
		DepartureDate: req.DepartureDate,
		HotelID:       req.HotelID,
		RoomType:      roomType,
		Services:      append([]int64{}, req.Services...),
	}

	created, err := uc.packageRepo.Create(ctx, pkg)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create package: %v", err)
		return nil, fmt.Errorf("%w: failed to create package: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created package id=%d for hotel id=%d", created.ID, created.HotelID)
	return toResponse(created), nil
}

func toResponse(p *domain.Package) *Response {
	return &Response{
		ID:            p.ID,
		Name:          p.Name,
		Surname:       p.Surname,
		Nationality:   p.Nationality,
		SerialNumber:  p.SerialNumber,
		City:          p.City,
		Age:           p.Age,
		Gender:        p.Gender,
		Group:         p.Group,
		ArrivalDate:   p.ArrivalDate,
		DepartureDate: p.DepartureDate,
		Duration:      p.Duration(),
		HotelID:       p.HotelID,
		RoomType:      string(p.RoomType),
		Services:      p.Services,
		Accepted:      p.Accepted,
		CreatedAt:     p.CreatedAt,
	}
}
