package predict_packages

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	"github.com/m04kA/cappadocia-tours/internal/integrations/predictor"
	"github.com/m04kA/cappadocia-tours/internal/service/recommendation"
)

type fakeHistory struct {
	records []domain.HistoricalRecord
	err     error
	calls   int
}

func (f *fakeHistory) Build(context.Context) ([]domain.HistoricalRecord, error) {
	f.calls++
	return f.records, f.err
}

type fakePredictor struct {
	body    string
	err     error
	request *predictor.Request
}

func (f *fakePredictor) Predict(_ context.Context, request *predictor.Request) (*predictor.Response, error) {
	f.request = request
	if f.err != nil {
		return nil, f.err
	}
	var resp predictor.Response
	if err := json.Unmarshal([]byte(f.body), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type fakeCatalog struct {
	services []*domain.Service
	err      error
}

func (f *fakeCatalog) List(context.Context, domain.ServiceFilter) ([]*domain.Service, error) {
	return f.services, f.err
}

type fixedRand struct{ v int }

func (f fixedRand) Intn(n int) int { return f.v % n }

type fakeMetrics struct {
	calls map[string]string
}

func (f *fakeMetrics) ObserveExternalCall(dependency, outcome string) {
	f.calls[dependency] = outcome
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(s string) time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return t
}

type fixture struct {
	history   *fakeHistory
	predictor *fakePredictor
	catalog   *fakeCatalog
	metrics   *fakeMetrics
	uc        *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		history: &fakeHistory{records: []domain.HistoricalRecord{{
			Nationality: "DE", City: "Berlin", AgeGender: "40F", Group: "[40F]",
			Duration: 3, RoomType: "suite", Services: []string{"ATV Safari"},
		}}},
		predictor: &fakePredictor{
			body: `{"services":[{"name":"ATV Safari","score":80},{"name":"Kapadokya Balon Turu","score":0.9}]}`,
		},
		catalog: &fakeCatalog{services: []*domain.Service{
			{ID: 7, HotelID: 1, Name: "ATV Safari", Description: "Quad", Price: 55, ImagePath: "atv.png"},
		}},
		metrics: &fakeMetrics{calls: map[string]string{}},
	}
	joiner := recommendation.NewJoiner(fixedRand{v: 5}, nopLogger{})
	f.uc = NewUseCase(f.history, f.predictor, f.catalog, joiner, f.metrics, "", nopLogger{})
	return f
}

func validRequest() *Request {
	return &Request{
		FirstName:    "Ayşe",
		LastName:     "Yılmaz",
		Country:      "TR",
		City:         "İzmir",
		Travelers:    []Traveler{{"30", "male"}, {"28", "female"}, {"7", "male"}},
		CheckInDate:  date("2024-06-01"),
		CheckOutDate: date("2024-06-08"),
		RoomType:     "cave",
	}
}

func TestUseCase_Execute(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Профиль
	assert.Equal(t, PredictParams{
		Nationality: "TR",
		City:        "İzmir",
		AgeGender:   "30M",
		Group:       "[30M,28F,7M]",
		Duration:    7,
		RoomType:    "cave",
	}, resp.PredictParams)

	// Запрос к сервису прогнозов
	require.NotNil(t, f.predictor.request)
	assert.Equal(t, "30", f.predictor.request.NewData.Age)
	assert.Equal(t, "M", f.predictor.request.NewData.Gender)
	require.Len(t, f.predictor.request.Old, 1)
	assert.Equal(t, "40F", f.predictor.request.Old[0].AgeGender)

	// Ранжирование: balon 90 выше ATV 80
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, "Kapadokya Balon Turu", resp.Recommendations[0].Title)
	assert.Equal(t, recommendation.SyntheticID("Kapadokya Balon Turu"), resp.Recommendations[0].ID)
	assert.Equal(t, 150.0, resp.Recommendations[0].Price)
	assert.Equal(t, 90, resp.Recommendations[0].Score)
	assert.Equal(t, int64(7), resp.Recommendations[1].ID)
	assert.Equal(t, 55.0, resp.Recommendations[1].Price)

	require.Len(t, resp.Bundles, 1)
	assert.Equal(t, "Ayşe için Özel Premium Paket", resp.Bundles[0].Name)
	assert.Equal(t, 185.0, resp.Bundles[0].Price)
	assert.Equal(t, []int64{recommendation.SyntheticID("Kapadokya Balon Turu"), 7}, resp.Bundles[0].ItemIDs)

	assert.False(t, resp.Fallback)
	assert.Empty(t, resp.PredictError)
	assert.Equal(t, 1, resp.HistorySize)
	assert.Equal(t, "ok", f.metrics.calls[dependencyPredictor])
}

func TestUseCase_Execute_PredictorFailure(t *testing.T) {
	f := newFixture()
	f.predictor.err = errors.New("timeout")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Fallback)
	assert.Equal(t, PredictErrorMessage, resp.PredictError)
	assert.Equal(t, "[30M,28F,7M]", resp.PredictParams.Group)
	assert.Equal(t, "Ayşe", resp.FormData.FirstName)

	require.Len(t, resp.Recommendations, len(recommendation.DefaultNames))
	assert.Equal(t, "Kapadokya Balon Turu", resp.Recommendations[0].Title)
	assert.Equal(t, int64(7), resp.Recommendations[2].ID, "ATV Safari matches the catalog")
	assert.Len(t, resp.Bundles, 2)
	assert.Equal(t, "fallback", f.metrics.calls[dependencyPredictor])
}

func TestUseCase_Execute_DegradedDependencies(t *testing.T) {
	f := newFixture()
	f.history.err = errors.New("db down")
	f.catalog.err = errors.New("db down")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, f.predictor.request)
	assert.NotNil(t, f.predictor.request.Old)
	assert.Empty(t, f.predictor.request.Old)
	assert.Zero(t, resp.HistorySize)

	// Без каталога ATV синтезируется по ключевым словам
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, 60.0, resp.Recommendations[1].Price)
	assert.Equal(t, "fallback", f.metrics.calls[dependencyHistory])
	assert.Equal(t, "fallback", f.metrics.calls[dependencyCatalog])
}

func TestUseCase_Execute_Validation(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.LastName = "  "

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, f.history.calls)
	assert.Nil(t, f.predictor.request)
}

func TestBuildParams(t *testing.T) {
	tests := []struct {
		name   string
		req    Request
		quote  string
		expect PredictParams
	}{
		{
			name: "empty form uses defaults",
			req:  Request{},
			expect: PredictParams{
				Nationality: "TR", City: "Unknown", AgeGender: "30M",
				Group: "[]", Duration: 1, RoomType: "standard",
			},
		},
		{
			name: "explicit age wins over travelers",
			req:  Request{Age: "45", Gender: "female", Travelers: []Traveler{{"30", "male"}}},
			expect: PredictParams{
				Nationality: "TR", City: "Unknown", AgeGender: "45F",
				Group: "[30M]", Duration: 1, RoomType: "standard",
			},
		},
		{
			name:  "adults only with quoted tokens",
			req:   Request{Adults: 2, Country: "DE", City: "Berlin", RoomType: "suite"},
			quote: "'",
			expect: PredictParams{
				Nationality: "DE", City: "Berlin", AgeGender: "30M",
				Group: "['30M','30M']", Duration: 1, RoomType: "suite",
			},
		},
		{
			name: "incomplete travelers are skipped",
			req:  Request{Travelers: []Traveler{{"25", "female"}, {"", "male"}, {"40", ""}}},
			expect: PredictParams{
				Nationality: "TR", City: "Unknown", AgeGender: "25F",
				Group: "[25F]", Duration: 1, RoomType: "standard",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, buildParams(&tt.req, tt.quote))
		})
	}
}
