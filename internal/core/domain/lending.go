package domain

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/money_lending_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CounterpartyType identifies which kind of participant sits on the other side of a lending event.
type CounterpartyType string

const (
	CounterpartyAccount CounterpartyType = "account"
	CounterpartyPerson  CounterpartyType = "person"
)

// LendingType is the direction of a lending event.
type LendingType string

const (
	Lend   LendingType = "lend"
	Borrow LendingType = "borrow"
	Return LendingType = "return"
)

// LendingEvent is a directed monetary movement between an account and a counterparty.
//
// Amount is signed from the account side: positive means the account is owed (lent out),
// negative means the account owes (borrowed). A return is its own ledger line; Returned
// flags the original event as settled.
type LendingEvent struct {
	ID               string           `json:"id"`
	AccountID        string           `json:"accountId" validate:"required"`
	CounterpartyType CounterpartyType `json:"counterpartyType,omitempty" validate:"omitempty,oneof=account person"`
	CounterpartyID   string           `json:"counterpartyId,omitempty"`
	PersonID         string           `json:"personId,omitempty"` // Legacy; see Normalize
	Type             LendingType      `json:"type" validate:"required,oneof=lend borrow return"`
	Amount           decimal.Decimal  `json:"amount"`
	Date             Date             `json:"date"`
	Memo             string           `json:"memo,omitempty"`
	Returned         bool             `json:"returned"`
	IsArchived       bool             `json:"isArchived"`
	AuditFields
}

// Normalize returns the event with its counterparty in canonical form.
// Records written before the counterparty fields existed only carry PersonID;
// those become counterpartyType=person, counterpartyId=PersonID.
func (e LendingEvent) Normalize() LendingEvent {
	if e.CounterpartyType == "" && e.PersonID != "" {
		e.CounterpartyType = CounterpartyPerson
		e.CounterpartyID = e.PersonID
	}
	return e
}

// IsLegacy reports whether the stored record predates the counterparty fields.
func (e LendingEvent) IsLegacy() bool {
	return e.CounterpartyType == "" && e.PersonID != ""
}

// UnmarshalJSON decodes the stored record and normalizes legacy counterparties on the way in.
func (e *LendingEvent) UnmarshalJSON(data []byte) error {
	type plain LendingEvent
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = LendingEvent(p).Normalize()
	return nil
}

// Validate checks an event before it is appended to the store.
// Self-referential account lending is rejected here; the balance engine assumes it never happens.
func (e LendingEvent) Validate() error {
	n := e.Normalize()
	if err := validate.Struct(n); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if n.CounterpartyType == "" || n.CounterpartyID == "" {
		return fmt.Errorf("%w: lending event needs a counterparty", apperrors.ErrValidation)
	}
	if n.CounterpartyType == CounterpartyAccount && n.CounterpartyID == n.AccountID {
		return fmt.Errorf("%w: account %s cannot lend to or borrow from itself", apperrors.ErrValidation, n.AccountID)
	}
	if n.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	switch n.Type {
	case Lend:
		if !n.Amount.IsPositive() {
			return fmt.Errorf("%w: lend amount must be positive", apperrors.ErrValidation)
		}
	case Borrow:
		if !n.Amount.IsNegative() {
			return fmt.Errorf("%w: borrow amount must be negative", apperrors.ErrValidation)
		}
	case Return:
		if n.Amount.IsZero() {
			return fmt.Errorf("%w: return amount must not be zero", apperrors.ErrValidation)
		}
	}
	return validateAmountPrecision(n.Amount)
}
