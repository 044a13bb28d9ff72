package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
)

// PersonReader defines read operations for person data
type PersonReader interface {
	FindPersonByID(ctx context.Context, personID string) (*domain.Person, error)
	ListPersons(ctx context.Context, includeArchived bool) ([]domain.Person, error)
}

// PersonWriter defines write operations for person data
type PersonWriter interface {
	SavePerson(ctx context.Context, person domain.Person) error
	SetPersonArchived(ctx context.Context, personID string, archived bool, userID string, now time.Time) error
}

// PersonRepositoryFacade combines all person-related repository interfaces
type PersonRepositoryFacade interface {
	PersonReader
	PersonWriter
}
