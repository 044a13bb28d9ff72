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
)

const lendingEventColumns = `event_id, account_id, counterparty_type, counterparty_id, person_id, type, amount, event_date, memo, returned, is_archived, created_at, created_by, last_edited_at, last_edited_by`

// PgxLendingEventRepository stores lending events. Rows are read back in canonical form.
type PgxLendingEventRepository struct {
	BaseRepository
}

func newPgxLendingEventRepository(pool *pgxpool.Pool) *PgxLendingEventRepository {
	return &PgxLendingEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LendingEventRepositoryFacade = (*PgxLendingEventRepository)(nil)

func scanLendingEvent(row pgx.Row) (models.LendingEvent, error) {
	var m models.LendingEvent
	err := row.Scan(
		&m.EventID,
		&m.AccountID,
		&m.CounterpartyType,
		&m.CounterpartyID,
		&m.PersonID,
		&m.Type,
		&m.Amount,
		&m.EventDate,
		&m.Memo,
		&m.Returned,
		&m.IsArchived,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastEditedAt,
		&m.LastEditedBy,
	)
	return m, err
}

func (r *PgxLendingEventRepository) AppendLendingEvent(ctx context.Context, event domain.LendingEvent) error {
	m := mapping.ToModelLendingEvent(event)
	query := `
		INSERT INTO lending_events (` + lendingEventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EventID,
		m.AccountID,
		m.CounterpartyType,
		m.CounterpartyID,
		m.PersonID,
		m.Type,
		m.Amount,
		m.EventDate,
		m.Memo,
		m.Returned,
		m.IsArchived,
		m.CreatedAt,
		m.CreatedBy,
		m.LastEditedAt,
		m.LastEditedBy,
	)
	if err != nil {
		return insertError(err, "lending event", m.EventID)
	}
	return nil
}

func (r *PgxLendingEventRepository) FindLendingEventByID(ctx context.Context, eventID string) (*domain.LendingEvent, error) {
	query := `SELECT ` + lendingEventColumns + ` FROM lending_events WHERE event_id = $1;`

	m, err := scanLendingEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		return nil, findError(err, "lending event", eventID)
	}
	event := mapping.ToDomainLendingEvent(m)
	return &event, nil
}

// ListLendingEventsInTx returns the full collection in insertion order.
func (r *PgxLendingEventRepository) ListLendingEventsInTx(ctx context.Context, tx pgx.Tx) ([]domain.LendingEvent, error) {
	query := `SELECT ` + lendingEventColumns + ` FROM lending_events ORDER BY seq;`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lending events: %w", err)
	}
	defer rows.Close()

	events := []domain.LendingEvent{}
	for rows.Next() {
		m, err := scanLendingEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lending event row: %w", err)
		}
		events = append(events, mapping.ToDomainLendingEvent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lending event rows: %w", err)
	}
	return events, nil
}

func (r *PgxLendingEventRepository) SetLendingEventArchived(ctx context.Context, eventID string, archived bool, userID string, now time.Time) error {
	return r.setFlag(ctx, "is_archived", eventID, archived, userID, now)
}

func (r *PgxLendingEventRepository) SetLendingEventReturned(ctx context.Context, eventID string, returned bool, userID string, now time.Time) error {
	return r.setFlag(ctx, "returned", eventID, returned, userID, now)
}

// setFlag updates one of the two mutable boolean columns. column is never user input.
func (r *PgxLendingEventRepository) setFlag(ctx context.Context, column, eventID string, value bool, userID string, now time.Time) error {
	query := `
		UPDATE lending_events
		SET ` + column + ` = $2, last_edited_at = $3, last_edited_by = $4
		WHERE event_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, eventID, value, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update %s of lending event %s: %w", column, eventID, err)
	}
	return requireOneRow(tag, "lending event", eventID)
}
