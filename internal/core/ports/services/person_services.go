package services

import (
	"context"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/SscSPs/money_lending_ledger/internal/dto"
)

// PersonReaderSvc defines read operations for person data
type PersonReaderSvc interface {
	GetPersonByID(ctx context.Context, personID string) (*domain.Person, error)
	ListPersons(ctx context.Context, includeArchived bool) ([]domain.Person, error)
}

// PersonWriterSvc defines write operations for person data
type PersonWriterSvc interface {
	CreatePerson(ctx context.Context, req dto.CreatePersonRequest, userID string) (*domain.Person, error)
	SetPersonArchived(ctx context.Context, personID string, archived bool, userID string) (*domain.Person, error)
}

// PersonSvcFacade combines all person-related service interfaces
type PersonSvcFacade interface {
	PersonReaderSvc
	PersonWriterSvc
}
