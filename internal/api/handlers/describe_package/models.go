package describe_package

import (
	"github.com/m04kA/cappadocia-tours/internal/api/handlers"
	"github.com/m04kA/cappadocia-tours/internal/domain"
	cartModels "github.com/m04kA/cappadocia-tours/internal/service/cart/models"
	describePackage "github.com/m04kA/cappadocia-tours/internal/usecase/describe_package"
)

// WeatherDayRequest день прогноза, уже показанный пользователю
type WeatherDayRequest struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Degree      float64 `json:"degree"`
}

// DescribeRequest HTTP request model
type DescribeRequest struct {
	FirstName       string                    `json:"firstName"`
	LastName        string                    `json:"lastName"`
	Country         string                    `json:"country,omitempty"`
	City            string                    `json:"city,omitempty"`
	Adults          handlers.FlexInt          `json:"adults,omitempty"`
	Children        handlers.FlexInt          `json:"children,omitempty"`
	RoomType        string                    `json:"roomType,omitempty"`
	CheckInDate     string                    `json:"checkInDate,omitempty"`
	CheckOutDate    string                    `json:"checkOutDate,omitempty"`
	Interests       []string                  `json:"interests,omitempty"`
	SpecialRequests string                    `json:"specialRequests,omitempty"`
	WeatherData     []WeatherDayRequest       `json:"weatherData,omitempty"`
	Recommendations []cartModels.ItemResponse `json:"recommendations"`
	CartID          string                    `json:"cartId,omitempty"`
}

// DescribeResponse HTTP response model. Поля совпадают с тем, что ожидает страница рекомендаций
type DescribeResponse struct {
	Name        string                   `json:"paketAdi"`
	Description string                   `json:"aciklama"`
	Features    []string                 `json:"ozellikler"`
	Activities  []int64                  `json:"aktiviteler"`
	Price       float64                  `json:"price"`
	Fallback    bool                     `json:"fallback"`
	Cart        *cartModels.CartResponse `json:"cart,omitempty"`
}

// CompletionRequest тело POST /gpt
type CompletionRequest struct {
	Prompt string `json:"prompt"`
}

// CompletionResponse ответ POST /gpt
type CompletionResponse struct {
	Response string `json:"response"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DescribeRequest) ToUseCaseRequest() (*describePackage.Request, error) {
	checkIn, err := handlers.ParseDate(r.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := handlers.ParseDate(r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	weather := make([]describePackage.WeatherDay, 0, len(r.WeatherData))
	for _, d := range r.WeatherData {
		weather = append(weather, describePackage.WeatherDay{Date: d.Date, Description: d.Description, Degree: d.Degree})
	}

	recs := make([]domain.Recommendation, 0, len(r.Recommendations))
	for _, it := range r.Recommendations {
		recs = append(recs, domain.Recommendation{
			ID:          it.ID,
			ServiceID:   it.ServiceID,
			Title:       it.Title,
			Description: it.Description,
			Price:       it.Price,
			ImagePath:   it.ImagePath,
			Score:       it.Score,
		})
	}

	return &describePackage.Request{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Country:         r.Country,
		City:            r.City,
		Adults:          int(r.Adults),
		Children:        int(r.Children),
		RoomType:        r.RoomType,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Interests:       r.Interests,
		SpecialRequests: r.SpecialRequests,
		Weather:         weather,
		Recommendations: recs,
		CartID:          r.CartID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *describePackage.Response) *DescribeResponse {
	return &DescribeResponse{
		Name:        resp.Name,
		Description: resp.Description,
		Features:    resp.Features,
		Activities:  resp.Activities,
		Price:       resp.Price,
		Fallback:    resp.Fallback,
		Cart:        resp.Cart,
	}
}
