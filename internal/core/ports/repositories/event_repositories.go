package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LendingEventReader defines read operations for lending events.
// Implementations return events in canonical counterparty form.
type LendingEventReader interface {
	FindLendingEventByID(ctx context.Context, eventID string) (*domain.LendingEvent, error)

	// ListLendingEventsInTx returns every stored lending event, archived included, in insertion
	// order, as seen by tx.
	ListLendingEventsInTx(ctx context.Context, tx pgx.Tx) ([]domain.LendingEvent, error)
}

// LendingEventWriter defines write operations for lending events.
// Events are append-only; only the archival and returned flags change after insert.
type LendingEventWriter interface {
	AppendLendingEvent(ctx context.Context, event domain.LendingEvent) error
	SetLendingEventArchived(ctx context.Context, eventID string, archived bool, userID string, now time.Time) error
	SetLendingEventReturned(ctx context.Context, eventID string, returned bool, userID string, now time.Time) error
}

// LendingEventRepositoryFacade combines all lending event repository interfaces
type LendingEventRepositoryFacade interface {
	LendingEventReader
	LendingEventWriter
}

// TransferEventReader defines read operations for account transfer events
type TransferEventReader interface {
	FindTransferEventByID(ctx context.Context, eventID string) (*domain.AccountTransferEvent, error)
	ListTransferEvents(ctx context.Context) ([]domain.AccountTransferEvent, error)
	ListTransferEventsInTx(ctx context.Context, tx pgx.Tx) ([]domain.AccountTransferEvent, error)
}

// TransferEventWriter defines write operations for account transfer events
type TransferEventWriter interface {
	AppendTransferEvent(ctx context.Context, event domain.AccountTransferEvent) error
	SetTransferEventArchived(ctx context.Context, eventID string, archived bool, userID string, now time.Time) error
}

// TransferEventRepositoryFacade combines all transfer event repository interfaces
type TransferEventRepositoryFacade interface {
	TransferEventReader
	TransferEventWriter
}

// NetFlowEventReader defines read operations for person net flows
type NetFlowEventReader interface {
	ListNetFlowEventsInTx(ctx context.Context, tx pgx.Tx) ([]domain.PersonNetFlowEvent, error)
}

// NetFlowEventRepositoryFacade defines persistence for person net flows.
// Net flows carry no archival flag, so there is nothing to update after insert.
type NetFlowEventRepositoryFacade interface {
	NetFlowEventReader
	AppendNetFlowEvent(ctx context.Context, event domain.PersonNetFlowEvent) error
}
