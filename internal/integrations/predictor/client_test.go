package predictor

import (
	"context"
	"encoding/json"
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

func TestClient_Predict(t *testing.T) {
	var got map[string]json.RawMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"services":["Kapadokya Balon Turu"]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})
	resp, err := client.Predict(context.Background(), &Request{
		NewData: NewData{
			Nationality: "TR",
			City:        "Ankara",
			Age:         "30",
			Gender:      "M",
			Group:       "[30M,28F,7M]",
			Duration:    7,
			RoomType:    "cave",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Kapadokya Balon Turu"}, names(resp.Services))

	assert.JSONEq(t, `[]`, string(got["old"]))
	assert.JSONEq(t, `{
		"nationality":"TR","city":"Ankara","age":"30","gender":"M",
		"group":"[30M,28F,7M]","duration":"7","room_type":"cave"
	}`, string(got["newData"]))
}

func TestClient_Predict_Errors(t *testing.T) {
	t.Run("non 2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, time.Second, nopLogger{}).Predict(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"services":`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, time.Second, nopLogger{}).Predict(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, 20*time.Millisecond, nopLogger{}).Predict(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}
