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
	"github.com/SscSPs/money_lending_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventService owns every write to the event log.
// Events are validated and checked against live accounts and persons before they are appended.
type EventService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	personRepo   portsrepo.PersonReader
	lendingRepo  portsrepo.LendingEventRepositoryFacade
	transferRepo portsrepo.TransferEventRepositoryFacade
	netFlowRepo  portsrepo.NetFlowEventRepositoryFacade
}

// NewEventService creates the event service from the repository provider.
func NewEventService(repos portsrepo.RepositoryProvider, options ...ServiceOption) *EventService {
	return &EventService{
		BaseService:  newBaseService(options...),
		accountRepo:  repos.AccountRepo,
		personRepo:   repos.PersonRepo,
		lendingRepo:  repos.LendingRepo,
		transferRepo: repos.TransferRepo,
		netFlowRepo:  repos.NetFlowRepo,
	}
}

var _ portssvc.EventSvcFacade = (*EventService)(nil)

// requireActiveAccount rejects references to unknown or archived accounts.
func (s *EventService) requireActiveAccount(ctx context.Context, accountID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, accountID)
		}
		s.LogError(ctx, err, "Failed to look up account", slog.String("account_id", accountID))
		return err
	}
	if account.IsArchived {
		return fmt.Errorf("%w: %w: account %s", apperrors.ErrValidation, apperrors.ErrArchived, accountID)
	}
	return nil
}

// requireActivePerson rejects references to unknown or archived persons.
func (s *EventService) requireActivePerson(ctx context.Context, personID string) error {
	person, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: person %s does not exist", apperrors.ErrValidation, personID)
		}
		s.LogError(ctx, err, "Failed to look up person", slog.String("person_id", personID))
		return err
	}
	if person.IsArchived {
		return fmt.Errorf("%w: %w: person %s", apperrors.ErrValidation, apperrors.ErrArchived, personID)
	}
	return nil
}

func (s *EventService) RecordLendingEvent(ctx context.Context, req dto.CreateLendingEventRequest, userID string) (*domain.LendingEvent, error) {
	event := domain.LendingEvent{
		ID:               uuid.NewString(),
		AccountID:        req.AccountID,
		CounterpartyType: req.CounterpartyType,
		CounterpartyID:   req.CounterpartyID,
		PersonID:         req.PersonID,
		Type:             req.Type,
		Amount:           req.Amount,
		Date:             req.Date,
		Memo:             req.Memo,
		AuditFields: domain.AuditFields{
			CreatedAt: s.now(),
			CreatedBy: userID,
		},
	}.Normalize()
	// New records are always written in canonical form.
	event.PersonID = ""

	if err := event.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireActiveAccount(ctx, event.AccountID); err != nil {
		return nil, err
	}
	switch event.CounterpartyType {
	case domain.CounterpartyAccount:
		if err := s.requireActiveAccount(ctx, event.CounterpartyID); err != nil {
			return nil, err
		}
	case domain.CounterpartyPerson:
		if err := s.requireActivePerson(ctx, event.CounterpartyID); err != nil {
			return nil, err
		}
	}

	if err := s.lendingRepo.AppendLendingEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to append lending event",
			slog.String("event_id", event.ID))
		return nil, err
	}
	s.bumpVersion(ctx)

	s.LogInfo(ctx, "Lending event recorded",
		slog.String("event_id", event.ID),
		slog.String("type", string(event.Type)),
		slog.String("account_id", event.AccountID),
		slog.String("counterparty_id", event.CounterpartyID))
	return &event, nil
}

func (s *EventService) findLendingEvent(ctx context.Context, eventID string) (*domain.LendingEvent, error) {
	event, err := s.lendingRepo.FindLendingEventByID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find lending event", slog.String("event_id", eventID))
		}
		return nil, err
	}
	return event, nil
}

func (s *EventService) SetLendingEventArchived(ctx context.Context, eventID string, archived bool, userID string) (*domain.LendingEvent, error) {
	event, err := s.findLendingEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.lendingRepo.SetLendingEventArchived(ctx, eventID, archived, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update lending event archival", slog.String("event_id", eventID))
		return nil, err
	}
	event.IsArchived = archived
	event.Touch(userID, now)
	s.bumpVersion(ctx)

	s.LogInfo(ctx, "Lending event archival updated",
		slog.String("event_id", eventID),
		slog.Bool("archived", archived))
	return event, nil
}

func (s *EventService) SetLendingEventReturned(ctx context.Context, eventID string, returned bool, userID string) (*domain.LendingEvent, error) {
	event, err := s.findLendingEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Type == domain.Return {
		return nil, fmt.Errorf("%w: return event %s cannot itself be marked returned", apperrors.ErrValidation, eventID)
	}

	now := s.now()
	if err := s.lendingRepo.SetLendingEventReturned(ctx, eventID, returned, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update lending event returned flag", slog.String("event_id", eventID))
		return nil, err
	}
	event.Returned = returned
	event.Touch(userID, now)
	s.bumpVersion(ctx)

	s.LogInfo(ctx, "Lending event returned flag updated",
		slog.String("event_id", eventID),
		slog.Bool("returned", returned))
	return event, nil
}

func (s *EventService) RecordTransferEvent(ctx context.Context, req dto.CreateTransferEventRequest, userID string) (*domain.AccountTransferEvent, error) {
	event := domain.AccountTransferEvent{
		ID:            uuid.NewString(),
		Type:          req.Type,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		AccountID:     req.AccountID,
		Amount:        req.Amount,
		Date:          req.Date,
		Memo:          req.Memo,
		AuditFields: domain.AuditFields{
			CreatedAt: s.now(),
			CreatedBy: userID,
		},
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	for _, accountID := range event.AccountIDs() {
		if err := s.requireActiveAccount(ctx, accountID); err != nil {
			return nil, err
		}
	}

	if err := s.transferRepo.AppendTransferEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to append transfer event",
			slog.String("event_id", event.ID))
		return nil, err
	}
	s.bumpVersion(ctx)
	s.refreshLedgerBalances(ctx, event.AccountIDs())

	s.LogInfo(ctx, "Transfer event recorded",
		slog.String("event_id", event.ID),
		slog.String("type", string(event.Type)))
	return &event, nil
}

func (s *EventService) SetTransferEventArchived(ctx context.Context, eventID string, archived bool, userID string) (*domain.AccountTransferEvent, error) {
	event, err := s.transferRepo.FindTransferEventByID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transfer event", slog.String("event_id", eventID))
		}
		return nil, err
	}

	now := s.now()
	if err := s.transferRepo.SetTransferEventArchived(ctx, eventID, archived, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update transfer event archival", slog.String("event_id", eventID))
		return nil, err
	}
	event.IsArchived = archived
	event.Touch(userID, now)
	s.bumpVersion(ctx)
	s.refreshLedgerBalances(ctx, event.AccountIDs())

	s.LogInfo(ctx, "Transfer event archival updated",
		slog.String("event_id", eventID),
		slog.Bool("archived", archived))
	return event, nil
}

func (s *EventService) RecordNetFlowEvent(ctx context.Context, req dto.CreateNetFlowEventRequest, userID string) (*domain.PersonNetFlowEvent, error) {
	event := domain.PersonNetFlowEvent{
		ID:       uuid.NewString(),
		PersonID: req.PersonID,
		Type:     req.Type,
		Amount:   req.Amount,
		Date:     req.Date,
		Memo:     req.Memo,
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireActivePerson(ctx, event.PersonID); err != nil {
		return nil, err
	}

	if err := s.netFlowRepo.AppendNetFlowEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to append net flow event",
			slog.String("event_id", event.ID))
		return nil, err
	}
	s.bumpVersion(ctx)

	s.LogInfo(ctx, "Net flow event recorded",
		slog.String("event_id", event.ID),
		slog.String("person_id", event.PersonID))
	return &event, nil
}

// refreshLedgerBalances recomputes the cached Account.Balance of the touched accounts.
// The stored balance is derived data, so a failure is logged and the write still succeeds.
func (s *EventService) refreshLedgerBalances(ctx context.Context, accountIDs []string) {
	transfers, err := s.transferRepo.ListTransferEvents(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transfers for balance refresh")
		return
	}
	balances := make(map[string]decimal.Decimal, len(accountIDs))
	for _, id := range accountIDs {
		balances[id] = accounting.AccountLedgerBalance(transfers, id)
	}
	if err := s.accountRepo.UpdateAccountBalances(ctx, balances); err != nil {
		s.LogError(ctx, err, "Failed to update cached account balances")
	}
}
