package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_lending_ledger/internal/apperrors"
	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_lending_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_lending_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_lending_ledger/internal/dto"
	"github.com/google/uuid"
)

// PersonService manages external persons.
type PersonService struct {
	BaseService
	personRepo portsrepo.PersonRepositoryFacade
}

func NewPersonService(repo portsrepo.PersonRepositoryFacade, options ...ServiceOption) *PersonService {
	return &PersonService{
		BaseService: newBaseService(options...),
		personRepo:  repo,
	}
}

var _ portssvc.PersonSvcFacade = (*PersonService)(nil)

func (s *PersonService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest, userID string) (*domain.Person, error) {
	now := s.now()
	person := domain.Person{
		ID:         uuid.NewString(),
		Name:       req.Name,
		BusinessID: req.BusinessID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: userID,
		},
	}
	if err := domain.ValidatePerson(person); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.personRepo.SavePerson(ctx, person); err != nil {
		s.LogError(ctx, err, "Failed to save person",
			slog.String("person_id", person.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Person created successfully",
		slog.String("person_id", person.ID))
	return &person, nil
}

func (s *PersonService) GetPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	person, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find person by ID",
				slog.String("person_id", personID))
		}
		return nil, err
	}
	return person, nil
}

func (s *PersonService) ListPersons(ctx context.Context, includeArchived bool) ([]domain.Person, error) {
	persons, err := s.personRepo.ListPersons(ctx, includeArchived)
	if err != nil {
		s.LogError(ctx, err, "Failed to list persons")
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	if persons == nil {
		return []domain.Person{}, nil
	}
	return persons, nil
}

func (s *PersonService) SetPersonArchived(ctx context.Context, personID string, archived bool, userID string) (*domain.Person, error) {
	person, err := s.GetPersonByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	if person.IsArchived == archived {
		return person, nil
	}

	now := s.now()
	if err := s.personRepo.SetPersonArchived(ctx, personID, archived, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update person archival",
			slog.String("person_id", personID))
		return nil, err
	}
	person.IsArchived = archived
	person.Touch(userID, now)
	// Aggregate totals skip archived persons.
	s.bumpVersion(ctx)

	s.LogInfo(ctx, "Person archival updated",
		slog.String("person_id", personID),
		slog.Bool("archived", archived))
	return person, nil
}
