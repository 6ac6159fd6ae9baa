package accept_service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	acceptService "github.com/m04kA/cappadocia-tours/internal/usecase/accept_service"
)

type useCaseStub struct {
	got  *acceptService.Request
	resp *acceptService.Response
	err  error
}

func (s *useCaseStub) Execute(_ context.Context, req *acceptService.Request) (*acceptService.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc AcceptServiceUseCase, path, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/admin/packages/{packageId}/accept", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	return rec
}

func TestHandler_Success(t *testing.T) {
	uc := &useCaseStub{resp: &acceptService.Response{PackageID: 7, Services: []int64{3, 4}, Accepted: []int64{3}}}

	rec := serve(uc, "/admin/packages/7/accept", `{"serviceId":3}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &acceptService.Request{PackageID: 7, ServiceID: 3}, uc.got)
	assert.JSONEq(t, `{"packageId":7,"services":[3,4],"accepted":[3]}`, rec.Body.String())
}

func TestHandler_EmptyListsAreArrays(t *testing.T) {
	uc := &useCaseStub{resp: &acceptService.Response{PackageID: 7}}

	rec := serve(uc, "/admin/packages/7/accept", `{"serviceId":3}`)

	assert.JSONEq(t, `{"packageId":7,"services":[],"accepted":[]}`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		err  error
		want int
	}{
		{"bad package id", "/admin/packages/abc/accept", `{"serviceId":3}`, nil, http.StatusBadRequest},
		{"bad body", "/admin/packages/7/accept", `{`, nil, http.StatusBadRequest},
		{"invalid input", "/admin/packages/7/accept", `{}`, acceptService.ErrInvalidInput, http.StatusBadRequest},
		{"package not found", "/admin/packages/7/accept", `{"serviceId":3}`, acceptService.ErrPackageNotFound, http.StatusNotFound},
		{"service not found", "/admin/packages/7/accept", `{"serviceId":3}`, acceptService.ErrServiceNotFound, http.StatusNotFound},
		{"not requested", "/admin/packages/7/accept", `{"serviceId":3}`, acceptService.ErrNotRequested, http.StatusConflict},
		{"already accepted", "/admin/packages/7/accept", `{"serviceId":3}`, acceptService.ErrAlreadyAccepted, http.StatusConflict},
		{"no capacity", "/admin/packages/7/accept", `{"serviceId":3}`, fmt.Errorf("wrapped: %w", acceptService.ErrNoCapacity), http.StatusConflict},
		{"internal", "/admin/packages/7/accept", `{"serviceId":3}`, acceptService.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&useCaseStub{err: tt.err}, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
