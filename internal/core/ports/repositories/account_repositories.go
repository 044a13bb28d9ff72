package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account, archived ones only when includeArchived is set.
	ListAccounts(ctx context.Context, includeArchived bool) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SetAccountArchived flips the archival flag.
	SetAccountArchived(ctx context.Context, accountID string, archived bool, userID string, now time.Time) error

	// UpdateAccountBalances writes the cached running balance of each account in one transaction.
	UpdateAccountBalances(ctx context.Context, balances map[string]decimal.Decimal) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
