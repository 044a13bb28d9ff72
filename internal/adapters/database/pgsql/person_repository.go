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

const personColumns = `person_id, name, business_id, is_archived, created_at, created_by, last_edited_at, last_edited_by`

type PgxPersonRepository struct {
	BaseRepository
}

func newPgxPersonRepository(pool *pgxpool.Pool) *PgxPersonRepository {
	return &PgxPersonRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PersonRepositoryFacade = (*PgxPersonRepository)(nil)

func scanPerson(row pgx.Row) (models.Person, error) {
	var m models.Person
	err := row.Scan(
		&m.PersonID,
		&m.Name,
		&m.BusinessID,
		&m.IsArchived,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastEditedAt,
		&m.LastEditedBy,
	)
	return m, err
}

func (r *PgxPersonRepository) SavePerson(ctx context.Context, person domain.Person) error {
	m := mapping.ToModelPerson(person)
	query := `
		INSERT INTO persons (` + personColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PersonID,
		m.Name,
		m.BusinessID,
		m.IsArchived,
		m.CreatedAt,
		m.CreatedBy,
		m.LastEditedAt,
		m.LastEditedBy,
	)
	if err != nil {
		return insertError(err, "person", m.PersonID)
	}
	return nil
}

func (r *PgxPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE person_id = $1;`

	m, err := scanPerson(r.Pool.QueryRow(ctx, query, personID))
	if err != nil {
		return nil, findError(err, "person", personID)
	}
	person := mapping.ToDomainPerson(m)
	return &person, nil
}

func (r *PgxPersonRepository) ListPersons(ctx context.Context, includeArchived bool) ([]domain.Person, error) {
	query := `
		SELECT ` + personColumns + `
		FROM persons
		WHERE $1 OR NOT is_archived
		ORDER BY name, person_id;
	`
	rows, err := r.Pool.Query(ctx, query, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	var persons []models.Person
	for rows.Next() {
		m, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		persons = append(persons, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating person rows: %w", err)
	}
	return mapping.ToDomainPersonSlice(persons), nil
}

func (r *PgxPersonRepository) SetPersonArchived(ctx context.Context, personID string, archived bool, userID string, now time.Time) error {
	query := `
		UPDATE persons
		SET is_archived = $2, last_edited_at = $3, last_edited_by = $4
		WHERE person_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, personID, archived, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update archival of person %s: %w", personID, err)
	}
	return requireOneRow(tag, "person", personID)
}
