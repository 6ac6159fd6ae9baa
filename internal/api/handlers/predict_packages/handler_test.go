package predict_packages

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	predictPackages "github.com/m04kA/cappadocia-tours/internal/usecase/predict_packages"
)

type useCaseStub struct {
	got  *predictPackages.Request
	resp *predictPackages.Response
	err  error
}

func (s *useCaseStub) Execute(_ context.Context, req *predictPackages.Request) (*predictPackages.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/predictions", strings.NewReader(body)))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	uc := &useCaseStub{resp: &predictPackages.Response{
		PredictParams: predictPackages.PredictParams{
			Nationality: "TR",
			City:        "Ankara",
			AgeGender:   "30M",
			Group:       "[30M,28F]",
			Duration:    7,
			RoomType:    "cave",
		},
		Recommendations: []domain.Recommendation{{ID: 5, Title: "Kapadokya Balon Turu", Price: 150, Score: 90}},
		Bundles:         []domain.Bundle{{ID: "premium", Name: "Premium", Price: 150, ItemIDs: []int64{5}}},
	}}

	rec := post(NewHandler(uc, nopLogger{}), `{
		"firstName": "Ali",
		"lastName": "Kaya",
		"country": "TR",
		"age": 30,
		"gender": "male",
		"adults": "2",
		"travelers": [{"age": "28", "gender": "female"}],
		"checkInDate": "2024-06-01",
		"checkOutDate": "2024-06-08",
		"roomType": "cave"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, "30", uc.got.Age)
	assert.Equal(t, 2, uc.got.Adults)
	require.Len(t, uc.got.Travelers, 1)
	assert.Equal(t, "28", uc.got.Travelers[0].Age)
	assert.Equal(t, time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC), uc.got.CheckOutDate)

	var resp PredictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "7", resp.PredictParams.Duration)
	assert.Equal(t, "[30M,28F]", resp.PredictParams.Group)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, 90, resp.Recommendations[0].Score)
	require.Len(t, resp.Packages, 1)
	assert.Equal(t, "premium", resp.Packages[0].ID)
	assert.Equal(t, "Ali", resp.FormData.FirstName)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		err     error
		want    int
		message string
	}{
		{"bad body", `{`, nil, http.StatusBadRequest, ""},
		{"bad date", `{"firstName":"Ali","lastName":"Kaya","checkInDate":"yarın"}`, nil, http.StatusBadRequest, ""},
		{"missing name", `{"lastName":"Kaya"}`, predictPackages.ErrInvalidInput, http.StatusBadRequest, msgNameRequired},
		{"blank name", `{"firstName":"   ","lastName":"Kaya"}`, predictPackages.ErrInvalidInput, http.StatusBadRequest, msgNameRequired},
		{"other validation", `{"firstName":"Ali","lastName":"Kaya"}`, predictPackages.ErrInvalidInput, http.StatusBadRequest, msgInvalidInput},
		{"internal", `{"firstName":"Ali","lastName":"Kaya"}`, assert.AnError, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(NewHandler(&useCaseStub{err: tt.err}, nopLogger{}), tt.body)
			assert.Equal(t, tt.want, rec.Code)
			if tt.message != "" {
				assert.Contains(t, rec.Body.String(), tt.message)
			}
		})
	}
}
