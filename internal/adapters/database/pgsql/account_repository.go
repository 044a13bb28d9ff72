package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_lending_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/money_lending_ledger/internal/models"
	"github.com/SscSPs/money_lending_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, name, business_id, balance, is_archived, created_at, created_by, last_edited_at, last_edited_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.BusinessID,
		&m.Balance,
		&m.IsArchived,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastEditedAt,
		&m.LastEditedBy,
	)
	return m, err
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.BusinessID,
		m.Balance,
		m.IsArchived,
		m.CreatedAt,
		m.CreatedBy,
		m.LastEditedAt,
		m.LastEditedBy,
	)
	if err != nil {
		return insertError(err, "account", m.AccountID)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, findError(err, "account", accountID)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccounts retrieves accounts ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, includeArchived bool) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE $1 OR NOT is_archived
		ORDER BY name, account_id;
	`
	rows, err := r.Pool.Query(ctx, query, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// SetAccountArchived flips is_archived and stamps the edit.
func (r *PgxAccountRepository) SetAccountArchived(ctx context.Context, accountID string, archived bool, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_archived = $2, last_edited_at = $3, last_edited_by = $4
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, archived, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update archival of account %s: %w", accountID, err)
	}
	return requireOneRow(tag, "account", accountID)
}

// UpdateAccountBalances writes the derived balance column for each account in one transaction.
// Unknown ids are skipped; the balance is a cache of the transfer ledger.
func (r *PgxAccountRepository) UpdateAccountBalances(ctx context.Context, balances map[string]decimal.Decimal) error {
	if len(balances) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	for accountID, balance := range balances {
		batch.Queue(`UPDATE accounts SET balance = $2 WHERE account_id = $1;`, accountID, balance)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to update account balances: %w", err)
	}

	return r.Commit(ctx, tx)
}
