package domain

import (
	"fmt"

	"github.com/SscSPs/money_lending_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// NetFlowType is the direction of a person net flow.
type NetFlowType string

const (
	NetDeposit    NetFlowType = "deposit"
	NetWithdrawal NetFlowType = "withdrawal"
)

// PersonNetFlowEvent is a cash movement with a person outside the lend/borrow framing.
// Amount is unsigned; Type carries the direction. Net flows have no archival flag.
type PersonNetFlowEvent struct {
	ID       string          `json:"id"`
	PersonID string          `json:"personId" validate:"required"`
	Type     NetFlowType     `json:"type" validate:"required,oneof=deposit withdrawal"`
	Amount   decimal.Decimal `json:"amount"`
	Date     Date            `json:"date"`
	Memo     string          `json:"memo,omitempty"`
}

// SignedAmount is +Amount for deposits and -Amount for withdrawals.
func (e PersonNetFlowEvent) SignedAmount() decimal.Decimal {
	if e.Type == NetWithdrawal {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Validate checks an event before it is appended to the store.
func (e PersonNetFlowEvent) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: net flow amount must be positive", apperrors.ErrValidation)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	return validateAmountPrecision(e.Amount)
}
