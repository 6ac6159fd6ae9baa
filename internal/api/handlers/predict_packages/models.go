package predict_packages

import (
	"strconv"
	"strings"

	"github.com/m04kA/cappadocia-tours/internal/api/handlers"
	cartModels "github.com/m04kA/cappadocia-tours/internal/service/cart/models"
	predictPackages "github.com/m04kA/cappadocia-tours/internal/usecase/predict_packages"
)

// TravelerRequest участник поездки
type TravelerRequest struct {
	Age    handlers.FlexString `json:"age"`
	Gender string              `json:"gender"`
}

// PredictRequest HTTP request model (поля формы сайта)
type PredictRequest struct {
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	IDNumber     string              `json:"idNumber,omitempty"`
	Country      string              `json:"country,omitempty"`
	City         string              `json:"city,omitempty"`
	Age          handlers.FlexString `json:"age,omitempty"`
	Gender       string              `json:"gender,omitempty"`
	Travelers    []TravelerRequest   `json:"travelers,omitempty"`
	Adults       handlers.FlexInt    `json:"adults,omitempty"`
	Children     handlers.FlexInt    `json:"children,omitempty"`
	CheckInDate  string              `json:"checkInDate,omitempty"`
	CheckOutDate string              `json:"checkOutDate,omitempty"`
	RoomType     string              `json:"roomType,omitempty"`
	HotelID      *int64              `json:"hotelId,omitempty"`
}

// PredictParamsResponse профиль, отправленный сервису прогнозов
type PredictParamsResponse struct {
	Nationality string `json:"nationality"`
	City        string `json:"city"`
	AgeGender   string `json:"age_gender"`
	Group       string `json:"group"`
	Duration    string `json:"duration"`
	RoomType    string `json:"room_type"`
}

// PredictResponse HTTP response model
type PredictResponse struct {
	FormData        *PredictRequest             `json:"formData"`
	PredictParams   PredictParamsResponse       `json:"predictParams"`
	Recommendations []cartModels.ItemResponse   `json:"recommendations"`
	Packages        []cartModels.BundleResponse `json:"packages"`
	Fallback        bool                        `json:"fallback"`
	PredictError    string                      `json:"predictError,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PredictRequest) ToUseCaseRequest() (*predictPackages.Request, error) {
	checkIn, err := handlers.ParseDate(r.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := handlers.ParseDate(r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	travelers := make([]predictPackages.Traveler, 0, len(r.Travelers))
	for _, t := range r.Travelers {
		travelers = append(travelers, predictPackages.Traveler{
			Age:    strings.TrimSpace(string(t.Age)),
			Gender: t.Gender,
		})
	}

	return &predictPackages.Request{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		IDNumber:     r.IDNumber,
		Country:      r.Country,
		City:         r.City,
		Age:          strings.TrimSpace(string(r.Age)),
		Gender:       r.Gender,
		Travelers:    travelers,
		Adults:       int(r.Adults),
		Children:     int(r.Children),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		RoomType:     r.RoomType,
		HotelID:      r.HotelID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(req *PredictRequest, resp *predictPackages.Response) *PredictResponse {
	recs := make([]cartModels.ItemResponse, 0, len(resp.Recommendations))
	for _, r := range resp.Recommendations {
		recs = append(recs, cartModels.FromRecommendation(r))
	}

	bundles := make([]cartModels.BundleResponse, 0, len(resp.Bundles))
	for i := range resp.Bundles {
		bundles = append(bundles, *cartModels.FromBundle(&resp.Bundles[i]))
	}

	p := resp.PredictParams
	return &PredictResponse{
		FormData: req,
		PredictParams: PredictParamsResponse{
			Nationality: p.Nationality,
			City:        p.City,
			AgeGender:   p.AgeGender,
			Group:       p.Group,
			Duration:    strconv.Itoa(p.Duration),
			RoomType:    p.RoomType,
		},
		Recommendations: recs,
		Packages:        bundles,
		Fallback:        resp.Fallback,
		PredictError:    resp.PredictError,
	}
}
