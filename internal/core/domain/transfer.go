package domain

import (
	"fmt"

	"github.com/SscSPs/money_lending_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransferType enumerates account transfer events and account-local adjustments.
type TransferType string

const (
	Transfer       TransferType = "transfer"
	Interest       TransferType = "interest"
	Deposit        TransferType = "deposit"
	Withdrawal     TransferType = "withdrawal"
	InvestmentGain TransferType = "investment_gain"
)

// AccountTransferEvent moves money between two accounts (Transfer) or adjusts a single account.
// Transfers use FromAccountID/ToAccountID; every other type uses AccountID.
type AccountTransferEvent struct {
	ID            string          `json:"id"`
	Type          TransferType    `json:"type" validate:"required,oneof=transfer interest deposit withdrawal investment_gain"`
	FromAccountID string          `json:"fromAccountId,omitempty"`
	ToAccountID   string          `json:"toAccountId,omitempty"`
	AccountID     string          `json:"accountId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Date          Date            `json:"date"`
	Memo          string          `json:"memo,omitempty"`
	IsArchived    bool            `json:"isArchived"`
	AuditFields
}

// AccountIDs returns every account the event references.
func (e AccountTransferEvent) AccountIDs() []string {
	if e.Type == Transfer {
		return []string{e.FromAccountID, e.ToAccountID}
	}
	return []string{e.AccountID}
}

// Validate checks an event before it is appended to the store.
func (e AccountTransferEvent) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	switch e.Type {
	case Transfer:
		if e.FromAccountID == "" || e.ToAccountID == "" {
			return fmt.Errorf("%w: transfer needs both fromAccountId and toAccountId", apperrors.ErrValidation)
		}
		if e.FromAccountID == e.ToAccountID {
			return fmt.Errorf("%w: cannot transfer from account %s to itself", apperrors.ErrValidation, e.FromAccountID)
		}
	default:
		if e.AccountID == "" {
			return fmt.Errorf("%w: %s needs accountId", apperrors.ErrValidation, e.Type)
		}
	}
	switch e.Type {
	case Transfer, Deposit, Withdrawal:
		if !e.Amount.IsPositive() {
			return fmt.Errorf("%w: %s amount must be positive", apperrors.ErrValidation, e.Type)
		}
	default:
		if e.Amount.IsZero() {
			return fmt.Errorf("%w: %s amount must not be zero", apperrors.ErrValidation, e.Type)
		}
	}
	return validateAmountPrecision(e.Amount)
}
