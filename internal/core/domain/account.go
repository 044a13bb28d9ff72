package domain

import (
	"github.com/shopspring/decimal"
)

// Account is an internal ledger participant, e.g. a company cash account.
type Account struct {
	ID         string          `json:"id"`
	Name       string          `json:"name" validate:"required"`
	BusinessID *string         `json:"businessId,omitempty"` // Optional owning business reference
	Balance    decimal.Decimal `json:"balance"`              // Cached running total; derived, never authoritative
	IsArchived bool            `json:"isArchived"`           // Hidden from new-event pickers, history stays valid
	AuditFields
}
