package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-01-03", "2024-01-03", false},
		{"2024-1-3", "2024-01-03", false},
		{"2024-01-03T00:00:00Z", "2024-01-03", false},
		{"2024-01-03T23:30:00+09:00", "2024-01-03", false},
		{"03/01/2024", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDate_Ordering(t *testing.T) {
	a := domain.NewDate(2024, time.January, 31)
	b := a.Time().AddDate(0, 0, 1)

	assert.True(t, a.Before(domain.DateOf(b)))
	assert.True(t, domain.DateOf(b).After(a))
	assert.Equal(t, "2024-02-01", domain.DateOf(b).String())
	assert.True(t, domain.Date{}.IsZero())
}

func TestDate_JSON(t *testing.T) {
	var wrapper struct {
		On domain.Date `json:"on"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"on":"2024-7-1"}`), &wrapper))

	out, err := json.Marshal(wrapper)
	require.NoError(t, err)
	assert.JSONEq(t, `{"on":"2024-07-01"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"on":20240701}`), &wrapper))
}
