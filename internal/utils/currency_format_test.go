package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		want     string
	}{
		{"yen", decimal.NewFromInt(5000), "JPY", "¥5,000"},
		{"default currency", decimal.NewFromInt(5000), "", "¥5,000"},
		{"negative yen", decimal.NewFromInt(-1000), "JPY", "-¥1,000"},
		{"lowercase code", decimal.NewFromInt(300), "jpy", "¥300"},
		{"dollars keep cents", decimal.RequireFromString("1234.5"), "USD", "$1,234.50"},
		{"unknown code", decimal.RequireFromString("12.5"), "ZZZ", "12.5 ZZZ"},
		{"beyond int64 minor units", decimal.RequireFromString("99999999999999999999"), "USD", "99999999999999999999 USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount, tt.currency))
		})
	}
}

func TestIsKnownCurrency(t *testing.T) {
	assert.True(t, IsKnownCurrency("JPY"))
	assert.True(t, IsKnownCurrency(" usd "))
	assert.False(t, IsKnownCurrency("ZZZ"))
}
