package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	hotelRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/hotel"
	serviceRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/service"
	"github.com/m04kA/cappadocia-tours/internal/service/catalog/models"
	"github.com/m04kA/cappadocia-tours/pkg/ptr"
)

type fakeHotels struct {
	hotels map[int64]*domain.Hotel
	err    error
}

func (f *fakeHotels) GetByID(_ context.Context, id int64) (*domain.Hotel, error) {
	if f.err != nil {
		return nil, f.err
	}
	h, ok := f.hotels[id]
	if !ok {
		return nil, hotelRepo.ErrHotelNotFound
	}
	copied := *h
	return &copied, nil
}

func (f *fakeHotels) List(context.Context) ([]*domain.Hotel, error) {
	result := make([]*domain.Hotel, 0, len(f.hotels))
	for _, h := range f.hotels {
		result = append(result, h)
	}
	return result, f.err
}

func (f *fakeHotels) Count(context.Context) (int64, error) {
	return int64(len(f.hotels)), f.err
}

type fakeServices struct {
	services map[int64]*domain.Service
	nextID   int64
}

func newFakeServices(services ...*domain.Service) *fakeServices {
	f := &fakeServices{services: map[int64]*domain.Service{}, nextID: 100}
	for _, s := range services {
		f.services[s.ID] = s
	}
	return f
}

func (f *fakeServices) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	f.nextID++
	s.ID = f.nextID
	f.services[s.ID] = s
	return s, nil
}

func (f *fakeServices) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return s, nil
}

func (f *fakeServices) List(_ context.Context, filter domain.ServiceFilter) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0)
	for _, s := range f.services {
		if filter.HotelID == nil || s.HotelID == *filter.HotelID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeServices) UpdateCapacity(_ context.Context, id int64, capacity int) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	s.Capacity = capacity
	return s, nil
}

func (f *fakeServices) AdjustCapacity(_ context.Context, id int64, delta int) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	s.Capacity += delta
	if s.Capacity < 0 {
		s.Capacity = 0
	}
	return s, nil
}

func (f *fakeServices) UpdateImagePath(_ context.Context, id int64, path string) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	s.ImagePath = path
	return s, nil
}

func (f *fakeServices) Delete(_ context.Context, id int64) error {
	if _, ok := f.services[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	delete(f.services, id)
	return nil
}

func (f *fakeServices) Count(context.Context) (int64, error) {
	return int64(len(f.services)), nil
}

type fakePackages struct {
	total int64
	today int64
	since time.Time
}

func (f *fakePackages) Count(context.Context) (int64, error) { return f.total, nil }

func (f *fakePackages) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	f.since = since
	return f.today, nil
}

type fakeImages struct {
	body []byte
}

func (f *fakeImages) Upload(_ context.Context, id int64, filename, _ string, body io.Reader) (string, error) {
	f.body, _ = io.ReadAll(body)
	return "https://cdn.example.com/services/" + filename, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(services *fakeServices, images ImageStore) *Service {
	hotels := &fakeHotels{hotels: map[int64]*domain.Hotel{1: {ID: 1, Name: "Cave Suites"}}}
	return NewService(hotels, services, &fakePackages{total: 12, today: 3}, images, nopLogger{})
}

func TestService_CreateService(t *testing.T) {
	svc := newService(newFakeServices(), nil)
	ctx := context.Background()

	created, err := svc.CreateService(ctx, &models.CreateServiceRequest{
		HotelID: 1, Name: "  ATV Safari ", Price: 60, Capacity: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, "ATV Safari", created.Name)
	assert.Equal(t, int64(1), created.AgencyID)

	tests := []struct {
		name string
		req  models.CreateServiceRequest
		err  error
	}{
		{"empty name", models.CreateServiceRequest{HotelID: 1, Name: " "}, ErrInvalidInput},
		{"negative price", models.CreateServiceRequest{HotelID: 1, Name: "x", Price: -1}, ErrInvalidInput},
		{"negative capacity", models.CreateServiceRequest{HotelID: 1, Name: "x", Capacity: -1}, ErrInvalidInput},
		{"missing hotel id", models.CreateServiceRequest{Name: "x"}, ErrInvalidInput},
		{"unknown hotel", models.CreateServiceRequest{HotelID: 7, Name: "x"}, ErrHotelNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateService(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestService_UpdateCapacity(t *testing.T) {
	services := newFakeServices(&domain.Service{ID: 5, HotelID: 1, Name: "Balon", Capacity: 1})
	svc := newService(services, nil)
	ctx := context.Background()

	resp, err := svc.UpdateCapacity(ctx, 5, &models.UpdateCapacityRequest{Delta: ptr.Ptr(-1)})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Capacity)

	resp, err = svc.UpdateCapacity(ctx, 5, &models.UpdateCapacityRequest{Delta: ptr.Ptr(-1)})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Capacity)

	resp, err = svc.UpdateCapacity(ctx, 5, &models.UpdateCapacityRequest{Capacity: ptr.Ptr(12)})
	require.NoError(t, err)
	assert.Equal(t, 12, resp.Capacity)

	_, err = svc.UpdateCapacity(ctx, 5, &models.UpdateCapacityRequest{Capacity: ptr.Ptr(-3)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateCapacity(ctx, 5, &models.UpdateCapacityRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateCapacity(ctx, 5, &models.UpdateCapacityRequest{Capacity: ptr.Ptr(1), Delta: ptr.Ptr(1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateCapacity(ctx, 404, &models.UpdateCapacityRequest{Delta: ptr.Ptr(1)})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_GetHotelAndDelete(t *testing.T) {
	services := newFakeServices(
		&domain.Service{ID: 5, HotelID: 1, Name: "Balon"},
		&domain.Service{ID: 6, HotelID: 2, Name: "ATV"},
	)
	svc := newService(services, nil)
	ctx := context.Background()

	hotel, err := svc.GetHotel(ctx, 1)
	require.NoError(t, err)
	require.Len(t, hotel.Services, 1)
	assert.Equal(t, int64(5), hotel.Services[0].ID)

	_, err = svc.GetHotel(ctx, 2)
	assert.ErrorIs(t, err, ErrHotelNotFound)

	require.NoError(t, svc.DeleteService(ctx, 5))
	assert.ErrorIs(t, svc.DeleteService(ctx, 5), ErrServiceNotFound)
}

func TestService_UploadServiceImage(t *testing.T) {
	services := newFakeServices(&domain.Service{ID: 5, HotelID: 1, Name: "Balon"})
	ctx := context.Background()

	_, err := newService(services, nil).UploadServiceImage(ctx, 5, "a.jpg", "image/jpeg", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrImagesDisabled)

	images := &fakeImages{}
	svc := newService(services, images)

	_, err = svc.UploadServiceImage(ctx, 5, "a.txt", "text/plain", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UploadServiceImage(ctx, 404, "a.jpg", "image/jpeg", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrServiceNotFound)

	resp, err := svc.UploadServiceImage(ctx, 5, "a.jpg", "image/jpeg", bytes.NewReader([]byte("jpeg")))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/services/a.jpg", resp.ImagePath)
	assert.Equal(t, []byte("jpeg"), images.body)
}

func TestService_Stats(t *testing.T) {
	services := newFakeServices(&domain.Service{ID: 5, HotelID: 1})
	packages := &fakePackages{total: 12, today: 3}
	svc := NewService(&fakeHotels{hotels: map[int64]*domain.Hotel{1: {ID: 1}}}, services, packages, nil, nopLogger{})
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC) }

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.StatsResponse{Hotels: 1, Services: 1, Packages: 12, PackagesToday: 3}, stats)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), packages.since)
}

func TestService_ListHotelsError(t *testing.T) {
	svc := NewService(&fakeHotels{err: errors.New("down")}, newFakeServices(), &fakePackages{}, nil, nopLogger{})
	_, err := svc.ListHotels(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
