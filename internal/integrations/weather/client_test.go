package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_GetForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tr", r.URL.Query().Get("data.lang"))
		assert.Equal(t, "nevşehir", r.URL.Query().Get("data.city"))
		assert.Equal(t, "apikey secret", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"success":true,"result":[
			{"date":"18.10.2026","day":"Pazar","description":"açık","status":"Clear","degree":"21.5","min":"9","max":24,"humidity":"40"},
			{"date":"19.10.2026","day":"Pazartesi","description":"yağmurlu","status":"Rainy","degree":14,"min":null,"max":"","humidity":71}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", "tr", time.Second, nopLogger{})
	days, err := client.GetForecast(context.Background(), "nevşehir")
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, Number(21.5), days[0].Degree)
	assert.Equal(t, Number(9), days[0].Min)
	assert.Equal(t, Number(24), days[0].Max)
	assert.Equal(t, Number(40), days[0].Humidity)
	assert.Equal(t, Number(0), days[1].Min)
	assert.Equal(t, Number(0), days[1].Max)
	assert.Equal(t, "Rainy", days[1].Status)
}

func TestClient_GetForecast_Errors(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, "bad", "tr", time.Second, nopLogger{}).GetForecast(context.Background(), "ankara")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("garbage numbers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"result":[{"degree":"hot"}]}`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, "", "tr", time.Second, nopLogger{}).GetForecast(context.Background(), "ankara")
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}
