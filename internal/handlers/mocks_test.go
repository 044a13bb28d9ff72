package handlers_test

import (
	"context"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/money_lending_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_lending_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, includeArchived bool) ([]domain.Account, error) {
	args := m.Called(ctx, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) SetAccountArchived(ctx context.Context, accountID string, archived bool, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, archived, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock PersonService ---
type MockPersonService struct {
	mock.Mock
}

func (m *MockPersonService) GetPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonService) ListPersons(ctx context.Context, includeArchived bool) ([]domain.Person, error) {
	args := m.Called(ctx, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Person), args.Error(1)
}

func (m *MockPersonService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest, userID string) (*domain.Person, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonService) SetPersonArchived(ctx context.Context, personID string, archived bool, userID string) (*domain.Person, error) {
	args := m.Called(ctx, personID, archived, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

var _ portssvc.PersonSvcFacade = (*MockPersonService)(nil)

// --- Mock EventService ---
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) RecordLendingEvent(ctx context.Context, req dto.CreateLendingEventRequest, userID string) (*domain.LendingEvent, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LendingEvent), args.Error(1)
}

func (m *MockEventService) SetLendingEventArchived(ctx context.Context, eventID string, archived bool, userID string) (*domain.LendingEvent, error) {
	args := m.Called(ctx, eventID, archived, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LendingEvent), args.Error(1)
}

func (m *MockEventService) SetLendingEventReturned(ctx context.Context, eventID string, returned bool, userID string) (*domain.LendingEvent, error) {
	args := m.Called(ctx, eventID, returned, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LendingEvent), args.Error(1)
}

func (m *MockEventService) RecordTransferEvent(ctx context.Context, req dto.CreateTransferEventRequest, userID string) (*domain.AccountTransferEvent, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountTransferEvent), args.Error(1)
}

func (m *MockEventService) SetTransferEventArchived(ctx context.Context, eventID string, archived bool, userID string) (*domain.AccountTransferEvent, error) {
	args := m.Called(ctx, eventID, archived, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountTransferEvent), args.Error(1)
}

func (m *MockEventService) RecordNetFlowEvent(ctx context.Context, req dto.CreateNetFlowEventRequest, userID string) (*domain.PersonNetFlowEvent, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonNetFlowEvent), args.Error(1)
}

var _ portssvc.EventSvcFacade = (*MockEventService)(nil)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetPersonBalance(ctx context.Context, personID string) (*domain.PersonBalance, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonBalance), args.Error(1)
}

func (m *MockBalanceService) GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountBalance), args.Error(1)
}

func (m *MockBalanceService) GetPersonTotals(ctx context.Context) (*domain.PersonTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonTotals), args.Error(1)
}

var _ portssvc.BalanceSvc = (*MockBalanceService)(nil)

// --- Mock HistoryService ---
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) GetHistory(ctx context.Context, excludeArchived bool) (*domain.HistoryView, error) {
	args := m.Called(ctx, excludeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryView), args.Error(1)
}

var _ portssvc.HistorySvc = (*MockHistoryService)(nil)
