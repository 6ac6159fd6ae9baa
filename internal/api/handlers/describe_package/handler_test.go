package describe_package

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/cappadocia-tours/internal/service/cart"
	describePackage "github.com/m04kA/cappadocia-tours/internal/usecase/describe_package"
)

type useCaseStub struct {
	got        *describePackage.Request
	resp       *describePackage.Response
	err        error
	completion string
	prompt     string
}

func (s *useCaseStub) Execute(_ context.Context, req *describePackage.Request) (*describePackage.Response, error) {
	s.got = req
	return s.resp, s.err
}

func (s *useCaseStub) Complete(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.completion, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const describeBody = `{
	"firstName": "Ayşe",
	"lastName": "Yılmaz",
	"adults": "2",
	"checkInDate": "2024-06-01",
	"checkOutDate": "2024-06-08",
	"weatherData": [{"date": "01.06.2024", "description": "açık", "degree": 27.5}],
	"recommendations": [{"id": 5, "title": "Kapadokya Balon Turu", "price": 150, "score": 90}],
	"cartId": "c-1"
}`

func TestHandler_Describe(t *testing.T) {
	uc := &useCaseStub{resp: &describePackage.Response{
		Name:        "Ayşe için Balon Paketi",
		Description: "Gökyüzünden Kapadokya",
		Features:    []string{"Gün doğumu"},
		Activities:  []int64{5},
		Price:       150,
	}}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Describe(rec, httptest.NewRequest(http.MethodPost, "/packages/describe", strings.NewReader(describeBody)))

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, "Ayşe", uc.got.FirstName)
	assert.Equal(t, 2, uc.got.Adults)
	assert.Equal(t, "c-1", uc.got.CartID)
	require.Len(t, uc.got.Weather, 1)
	assert.Equal(t, 27.5, uc.got.Weather[0].Degree)
	require.Len(t, uc.got.Recommendations, 1)
	assert.Equal(t, 90, uc.got.Recommendations[0].Score)

	var resp DescribeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Ayşe için Balon Paketi", resp.Name)
	assert.Equal(t, []int64{5}, resp.Activities)
	assert.Contains(t, rec.Body.String(), `"paketAdi"`)
}

func TestHandler_Describe_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"bad body", `{`, nil, http.StatusBadRequest},
		{"bad date", `{"firstName":"A","lastName":"B","checkInDate":"01/06/2024"}`, nil, http.StatusBadRequest},
		{"invalid input", describeBody, describePackage.ErrInvalidInput, http.StatusBadRequest},
		{"cart not found", describeBody, cart.ErrCartNotFound, http.StatusNotFound},
		{"internal", describeBody, describePackage.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&useCaseStub{err: tt.err}, nopLogger{})
			rec := httptest.NewRecorder()
			h.Describe(rec, httptest.NewRequest(http.MethodPost, "/packages/describe", strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_Complete(t *testing.T) {
	uc := &useCaseStub{completion: "Merhaba"}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Complete(rec, httptest.NewRequest(http.MethodPost, "/gpt", strings.NewReader(`{"prompt":"Selam"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Selam", uc.prompt)
	assert.JSONEq(t, `{"response":"Merhaba"}`, rec.Body.String())
}

func TestHandler_Complete_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty prompt", describePackage.ErrInvalidInput, http.StatusBadRequest},
		{"llm failure", describePackage.ErrCompletionFailed, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&useCaseStub{err: tt.err}, nopLogger{})
			rec := httptest.NewRecorder()
			h.Complete(rec, httptest.NewRequest(http.MethodPost, "/gpt", strings.NewReader(`{"prompt":""}`)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
