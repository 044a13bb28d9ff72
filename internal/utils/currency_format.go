package utils

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultDisplayCurrency is used when no currency code is configured.
const DefaultDisplayCurrency = "JPY"

// FormatAmount renders amount in the given ISO 4217 currency using its minor-unit precision.
// Example: 5000 JPY returns "¥5,000"; 1234.5 USD returns "$1,234.50".
// Unknown codes, and amounts whose minor units do not fit in an int64, fall back to the
// plain decimal followed by the code.
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if code == "" {
		code = DefaultDisplayCurrency
	}
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.String() + " " + code
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	if !minor.BigInt().IsInt64() {
		return amount.String() + " " + code
	}
	return money.New(minor.IntPart(), cur.Code).Display()
}

// IsKnownCurrency reports whether code is a currency FormatAmount can render natively.
func IsKnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) != nil
}
