package models

import (
	"github.com/shopspring/decimal"
)

// Account is the accounts table row.
type Account struct {
	AccountID   string          `db:"account_id"`
	Name        string          `db:"name"`
	BusinessID  *string         `db:"business_id"` // Nullable
	Balance     decimal.Decimal `db:"balance"`
	IsArchived  bool            `db:"is_archived"`
	AuditFields                 // Embed common audit fields
}

// Person is the persons table row.
type Person struct {
	PersonID    string  `db:"person_id"`
	Name        string  `db:"name"`
	BusinessID  *string `db:"business_id"`
	IsArchived  bool    `db:"is_archived"`
	AuditFields
}
