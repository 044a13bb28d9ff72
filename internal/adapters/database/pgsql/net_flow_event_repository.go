package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_lending_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/money_lending_ledger/internal/models"
	"github.com/SscSPs/money_lending_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNetFlowEventRepository struct {
	BaseRepository
}

func newPgxNetFlowEventRepository(pool *pgxpool.Pool) *PgxNetFlowEventRepository {
	return &PgxNetFlowEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NetFlowEventRepositoryFacade = (*PgxNetFlowEventRepository)(nil)

func (r *PgxNetFlowEventRepository) AppendNetFlowEvent(ctx context.Context, event domain.PersonNetFlowEvent) error {
	m := mapping.ToModelNetFlowEvent(event)
	query := `
		INSERT INTO net_flow_events (event_id, person_id, type, amount, event_date, memo)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.EventID, m.PersonID, m.Type, m.Amount, m.EventDate, m.Memo)
	if err != nil {
		return insertError(err, "net flow event", m.EventID)
	}
	return nil
}

func (r *PgxNetFlowEventRepository) ListNetFlowEventsInTx(ctx context.Context, tx pgx.Tx) ([]domain.PersonNetFlowEvent, error) {
	query := `
		SELECT event_id, person_id, type, amount, event_date, memo
		FROM net_flow_events
		ORDER BY seq;
	`
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query net flow events: %w", err)
	}
	defer rows.Close()

	events := []domain.PersonNetFlowEvent{}
	for rows.Next() {
		var m models.NetFlowEvent
		if err := rows.Scan(&m.EventID, &m.PersonID, &m.Type, &m.Amount, &m.EventDate, &m.Memo); err != nil {
			return nil, fmt.Errorf("failed to scan net flow event row: %w", err)
		}
		events = append(events, mapping.ToDomainNetFlowEvent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating net flow event rows: %w", err)
	}
	return events, nil
}
