package services

import (
	"context"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
)

// BalanceSvc derives balances from one consistent snapshot of the event store.
type BalanceSvc interface {
	GetPersonBalance(ctx context.Context, personID string) (*domain.PersonBalance, error)
	GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error)
	GetPersonTotals(ctx context.Context) (*domain.PersonTotals, error)
}

// HistorySvc composes the unified, newest-first event history.
type HistorySvc interface {
	GetHistory(ctx context.Context, excludeArchived bool) (*domain.HistoryView, error)
}
