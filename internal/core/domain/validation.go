package domain

import (
	"fmt"

	"github.com/SscSPs/money_lending_ledger/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate is shared; validator caches struct metadata per type.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Event amounts are stored as NUMERIC(20, 4).
const (
	AmountScale         = 4
	amountIntegerDigits = 16
)

var amountLimit = decimal.New(1, amountIntegerDigits)

// ValidateAccount checks an account before it is saved.
func ValidateAccount(a Account) error { return validate.Struct(a) }

// ValidatePerson checks a person before it is saved.
func ValidatePerson(p Person) error { return validate.Struct(p) }

// validateAmountPrecision rejects amounts the store would round or could not hold.
func validateAmountPrecision(amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return fmt.Errorf("%w: amount %s has more than %d decimal places", apperrors.ErrValidation, amount, AmountScale)
	}
	if amount.Abs().GreaterThanOrEqual(amountLimit) {
		return fmt.Errorf("%w: amount %s exceeds %d integer digits", apperrors.ErrValidation, amount, amountIntegerDigits)
	}
	return nil
}
