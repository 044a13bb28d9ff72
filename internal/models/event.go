package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LendingEvent is the lending_events table row.
// Rows imported from the legacy store may have only person_id set.
type LendingEvent struct {
	EventID          string          `db:"event_id"`
	AccountID        string          `db:"account_id"`
	CounterpartyType *string         `db:"counterparty_type"` // Nullable for legacy rows
	CounterpartyID   *string         `db:"counterparty_id"`
	PersonID         *string         `db:"person_id"` // Legacy
	Type             string          `db:"type"`
	Amount           decimal.Decimal `db:"amount"`
	EventDate        time.Time       `db:"event_date"`
	Memo             string          `db:"memo"`
	Returned         bool            `db:"returned"`
	IsArchived       bool            `db:"is_archived"`
	AuditFields
}

// TransferEvent is the transfer_events table row.
type TransferEvent struct {
	EventID       string          `db:"event_id"`
	Type          string          `db:"type"`
	FromAccountID *string         `db:"from_account_id"`
	ToAccountID   *string         `db:"to_account_id"`
	AccountID     *string         `db:"account_id"`
	Amount        decimal.Decimal `db:"amount"`
	EventDate     time.Time       `db:"event_date"`
	Memo          string          `db:"memo"`
	IsArchived    bool            `db:"is_archived"`
	AuditFields
}

// NetFlowEvent is the net_flow_events table row.
type NetFlowEvent struct {
	EventID   string          `db:"event_id"`
	PersonID  string          `db:"person_id"`
	Type      string          `db:"type"`
	Amount    decimal.Decimal `db:"amount"`
	EventDate time.Time       `db:"event_date"`
	Memo      string          `db:"memo"`
}
