package services

import (
	"context"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/SscSPs/money_lending_ledger/internal/dto"
)

// LendingEventSvc appends lending events and maintains their flags.
type LendingEventSvc interface {
	// RecordLendingEvent validates and appends a lend, borrow or return.
	RecordLendingEvent(ctx context.Context, req dto.CreateLendingEventRequest, userID string) (*domain.LendingEvent, error)

	SetLendingEventArchived(ctx context.Context, eventID string, archived bool, userID string) (*domain.LendingEvent, error)

	// SetLendingEventReturned marks a lend or borrow as settled (or reopens it).
	SetLendingEventReturned(ctx context.Context, eventID string, returned bool, userID string) (*domain.LendingEvent, error)
}

// TransferEventSvc appends account transfer events.
type TransferEventSvc interface {
	RecordTransferEvent(ctx context.Context, req dto.CreateTransferEventRequest, userID string) (*domain.AccountTransferEvent, error)
	SetTransferEventArchived(ctx context.Context, eventID string, archived bool, userID string) (*domain.AccountTransferEvent, error)
}

// NetFlowEventSvc appends person net flows.
type NetFlowEventSvc interface {
	RecordNetFlowEvent(ctx context.Context, req dto.CreateNetFlowEventRequest, userID string) (*domain.PersonNetFlowEvent, error)
}

// EventSvcFacade combines every event write path.
type EventSvcFacade interface {
	LendingEventSvc
	TransferEventSvc
	NetFlowEventSvc
}
