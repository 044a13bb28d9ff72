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

const transferEventColumns = `event_id, type, from_account_id, to_account_id, account_id, amount, event_date, memo, is_archived, created_at, created_by, last_edited_at, last_edited_by`

type PgxTransferEventRepository struct {
	BaseRepository
}

func newPgxTransferEventRepository(pool *pgxpool.Pool) *PgxTransferEventRepository {
	return &PgxTransferEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransferEventRepositoryFacade = (*PgxTransferEventRepository)(nil)

func scanTransferEvent(row pgx.Row) (models.TransferEvent, error) {
	var m models.TransferEvent
	err := row.Scan(
		&m.EventID,
		&m.Type,
		&m.FromAccountID,
		&m.ToAccountID,
		&m.AccountID,
		&m.Amount,
		&m.EventDate,
		&m.Memo,
		&m.IsArchived,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastEditedAt,
		&m.LastEditedBy,
	)
	return m, err
}

func (r *PgxTransferEventRepository) AppendTransferEvent(ctx context.Context, event domain.AccountTransferEvent) error {
	m := mapping.ToModelTransferEvent(event)
	query := `
		INSERT INTO transfer_events (` + transferEventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EventID,
		m.Type,
		m.FromAccountID,
		m.ToAccountID,
		m.AccountID,
		m.Amount,
		m.EventDate,
		m.Memo,
		m.IsArchived,
		m.CreatedAt,
		m.CreatedBy,
		m.LastEditedAt,
		m.LastEditedBy,
	)
	if err != nil {
		return insertError(err, "transfer event", m.EventID)
	}
	return nil
}

func (r *PgxTransferEventRepository) FindTransferEventByID(ctx context.Context, eventID string) (*domain.AccountTransferEvent, error) {
	query := `SELECT ` + transferEventColumns + ` FROM transfer_events WHERE event_id = $1;`

	m, err := scanTransferEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		return nil, findError(err, "transfer event", eventID)
	}
	event := mapping.ToDomainTransferEvent(m)
	return &event, nil
}

func (r *PgxTransferEventRepository) ListTransferEvents(ctx context.Context) ([]domain.AccountTransferEvent, error) {
	return r.listTransferEvents(ctx, r.Pool)
}

func (r *PgxTransferEventRepository) ListTransferEventsInTx(ctx context.Context, tx pgx.Tx) ([]domain.AccountTransferEvent, error) {
	return r.listTransferEvents(ctx, tx)
}

func (r *PgxTransferEventRepository) listTransferEvents(ctx context.Context, q querier) ([]domain.AccountTransferEvent, error) {
	query := `SELECT ` + transferEventColumns + ` FROM transfer_events ORDER BY seq;`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfer events: %w", err)
	}
	defer rows.Close()

	events := []domain.AccountTransferEvent{}
	for rows.Next() {
		m, err := scanTransferEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer event row: %w", err)
		}
		events = append(events, mapping.ToDomainTransferEvent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfer event rows: %w", err)
	}
	return events, nil
}

func (r *PgxTransferEventRepository) SetTransferEventArchived(ctx context.Context, eventID string, archived bool, userID string, now time.Time) error {
	query := `
		UPDATE transfer_events
		SET is_archived = $2, last_edited_at = $3, last_edited_by = $4
		WHERE event_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, eventID, archived, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update archival of transfer event %s: %w", eventID, err)
	}
	return requireOneRow(tag, "transfer event", eventID)
}
