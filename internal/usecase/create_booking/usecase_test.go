package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	hotelRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/hotel"
)

type fakePackages struct {
	created *domain.Package
	err     error
}

func (f *fakePackages) Create(_ context.Context, p *domain.Package) (*domain.Package, error) {
	if f.err != nil {
		return nil, f.err
	}
	p.ID = 10
	p.Accepted = []int64{}
	f.created = p
	return p, nil
}

type fakeHotels struct{}

func (fakeHotels) GetByID(_ context.Context, id int64) (*domain.Hotel, error) {
	if id != 1 {
		return nil, hotelRepo.ErrHotelNotFound
	}
	return &domain.Hotel{ID: 1}, nil
}

type fakeServices struct{}

func (fakeServices) List(_ context.Context, filter domain.ServiceFilter) ([]*domain.Service, error) {
	if filter.HotelID == nil || *filter.HotelID != 1 {
		return nil, errors.New("unexpected filter")
	}
	return []*domain.Service{{ID: 3, HotelID: 1}, {ID: 4, HotelID: 1}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(s string) time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return t
}

func validRequest() *Request {
	return &Request{
		Name:          "Ayşe",
		Surname:       "Yılmaz",
		Nationality:   "TR",
		City:          "Ankara",
		Age:           30,
		Gender:        "male",
		Travelers:     []Traveler{{"30", "male"}, {"28", "female"}, {"7", "male"}, {"", "female"}},
		ArrivalDate:   date("2024-06-01"),
		DepartureDate: date("2024-06-08"),
		HotelID:       1,
		RoomType:      "cave",
		Services:      []int64{3, 4},
	}
}

func TestUseCase_Execute(t *testing.T) {
	repo := &fakePackages{}
	uc := NewUseCase(repo, fakeHotels{}, fakeServices{}, "", nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "[30M,28F,7M]", resp.Group)
	assert.Equal(t, 7, resp.Duration)
	assert.True(t, resp.Gender)
	assert.Equal(t, "cave", resp.RoomType)
	assert.Equal(t, []int64{3, 4}, resp.Services)
	assert.Empty(t, resp.Accepted)
}

func TestUseCase_Execute_DefaultsAndQuote(t *testing.T) {
	repo := &fakePackages{}
	uc := NewUseCase(repo, fakeHotels{}, fakeServices{}, "'", nopLogger{})

	req := validRequest()
	req.Travelers = nil
	req.Adults = 2
	req.RoomType = ""
	req.Gender = "female"
	req.Services = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "['30M','30M']", resp.Group)
	assert.Equal(t, "standard", resp.RoomType)
	assert.False(t, resp.Gender)
	assert.Equal(t, []int64{}, repo.created.Services)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
		err    error
	}{
		{"missing name", func(r *Request) { r.Name = " " }, ErrInvalidInput},
		{"missing surname", func(r *Request) { r.Surname = "" }, ErrInvalidInput},
		{"same day", func(r *Request) { r.DepartureDate = r.ArrivalDate }, ErrInvalidDates},
		{"reversed dates", func(r *Request) { r.DepartureDate = date("2024-05-01") }, ErrInvalidDates},
		{"missing date", func(r *Request) { r.ArrivalDate = time.Time{} }, ErrInvalidInput},
		{"bad room", func(r *Request) { r.RoomType = "penthouse" }, ErrInvalidInput},
		{"negative age", func(r *Request) { r.Age = -1 }, ErrInvalidInput},
		{"duplicate service", func(r *Request) { r.Services = []int64{3, 3} }, ErrInvalidInput},
		{"non positive service", func(r *Request) { r.Services = []int64{0} }, ErrInvalidInput},
		{"unknown hotel", func(r *Request) { r.HotelID = 2 }, ErrHotelNotFound},
		{"foreign service", func(r *Request) { r.Services = []int64{3, 9} }, ErrServiceNotInHotel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePackages{}
			uc := NewUseCase(repo, fakeHotels{}, fakeServices{}, "", nopLogger{})

			req := validRequest()
			tt.modify(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, repo.created)
		})
	}
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&fakePackages{err: errors.New("insert failed")}, fakeHotels{}, fakeServices{}, "", nopLogger{})
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
