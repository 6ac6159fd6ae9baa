package predictor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(s Suggestions) []string {
	result := make([]string, 0, s.Len())
	for _, item := range s.Items() {
		result = append(result, item.Name)
	}
	return result
}

func TestSuggestions_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKind SuggestionKind
		want     []string
	}{
		{
			name:     "array of strings",
			body:     `{"services":["Kapadokya Balon Turu","ATV Safari"]}`,
			wantKind: KindList,
			want:     []string{"Kapadokya Balon Turu", "ATV Safari"},
		},
		{
			name:     "json encoded string",
			body:     `{"services":"[\"Kırmızı Tur\",\"At Binme\"]"}`,
			wantKind: KindString,
			want:     []string{"Kırmızı Tur", "At Binme"},
		},
		{
			name:     "comma separated string",
			body:     `{"services":"Balon Turu, ATV Safari ,Türk Gecesi"}`,
			wantKind: KindString,
			want:     []string{"Balon Turu", "ATV Safari", "Türk Gecesi"},
		},
		{
			name:     "python style list",
			body:     `{"services":"['Balon Turu', 'Kırmızı Tur']"}`,
			wantKind: KindString,
			want:     []string{"Balon Turu", "Kırmızı Tur"},
		},
		{
			name:     "objects with names",
			body:     `{"services":[{"name":"ATV Safari"},{"name":""},{"title":"At Binme"}]}`,
			wantKind: KindObjects,
			want:     []string{"ATV Safari", "Hizmet 2", "At Binme"},
		},
		{
			name:     "missing field",
			body:     `{}`,
			wantKind: KindNone,
			want:     []string{},
		},
		{
			name:     "null",
			body:     `{"services":null}`,
			wantKind: KindNone,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp Response
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))
			assert.Equal(t, tt.wantKind, resp.Services.Kind)
			assert.Equal(t, tt.want, names(resp.Services))
		})
	}
}

func TestSuggestions_Scores(t *testing.T) {
	var resp Response
	require.NoError(t, json.Unmarshal([]byte(`{"services":[{"name":"A","score":0.87},{"name":"B","score":64},{"name":"C"}]}`), &resp))

	items := resp.Services.Items()
	require.Len(t, items, 3)
	require.NotNil(t, items[0].Score)
	assert.Equal(t, 87, *items[0].Score)
	require.NotNil(t, items[1].Score)
	assert.Equal(t, 64, *items[1].Score)
	assert.Nil(t, items[2].Score)
}

func TestSuggestions_InvalidShape(t *testing.T) {
	var resp Response
	err := json.Unmarshal([]byte(`{"services":42}`), &resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestNewSuggestions(t *testing.T) {
	s := NewSuggestions("A", "B")
	assert.Equal(t, KindList, s.Kind)
	assert.Equal(t, []string{"A", "B"}, names(s))
}
