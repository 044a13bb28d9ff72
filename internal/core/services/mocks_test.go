package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_lending_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Account repository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, includeArchived bool) ([]domain.Account, error) {
	args := m.Called(ctx, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SetAccountArchived(ctx context.Context, accountID string, archived bool, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, archived, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccountBalances(ctx context.Context, balances map[string]decimal.Decimal) error {
	args := m.Called(ctx, balances)
	return args.Error(0)
}

// --- Person repository ---

type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) ListPersons(ctx context.Context, includeArchived bool) ([]domain.Person, error) {
	args := m.Called(ctx, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Person), args.Error(1)
}

func (m *MockPersonRepository) SavePerson(ctx context.Context, person domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonRepository) SetPersonArchived(ctx context.Context, personID string, archived bool, userID string, now time.Time) error {
	args := m.Called(ctx, personID, archived, userID, now)
	return args.Error(0)
}

// --- Event repositories ---

type MockLendingEventRepository struct {
	mock.Mock
}

func (m *MockLendingEventRepository) FindLendingEventByID(ctx context.Context, eventID string) (*domain.LendingEvent, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LendingEvent), args.Error(1)
}

func (m *MockLendingEventRepository) ListLendingEventsInTx(ctx context.Context, tx pgx.Tx) ([]domain.LendingEvent, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LendingEvent), args.Error(1)
}

func (m *MockLendingEventRepository) AppendLendingEvent(ctx context.Context, event domain.LendingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockLendingEventRepository) SetLendingEventArchived(ctx context.Context, eventID string, archived bool, userID string, now time.Time) error {
	args := m.Called(ctx, eventID, archived, userID, now)
	return args.Error(0)
}

func (m *MockLendingEventRepository) SetLendingEventReturned(ctx context.Context, eventID string, returned bool, userID string, now time.Time) error {
	args := m.Called(ctx, eventID, returned, userID, now)
	return args.Error(0)
}

type MockTransferEventRepository struct {
	mock.Mock
}

func (m *MockTransferEventRepository) FindTransferEventByID(ctx context.Context, eventID string) (*domain.AccountTransferEvent, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountTransferEvent), args.Error(1)
}

func (m *MockTransferEventRepository) ListTransferEvents(ctx context.Context) ([]domain.AccountTransferEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTransferEvent), args.Error(1)
}

func (m *MockTransferEventRepository) ListTransferEventsInTx(ctx context.Context, tx pgx.Tx) ([]domain.AccountTransferEvent, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTransferEvent), args.Error(1)
}

func (m *MockTransferEventRepository) AppendTransferEvent(ctx context.Context, event domain.AccountTransferEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTransferEventRepository) SetTransferEventArchived(ctx context.Context, eventID string, archived bool, userID string, now time.Time) error {
	args := m.Called(ctx, eventID, archived, userID, now)
	return args.Error(0)
}

type MockNetFlowEventRepository struct {
	mock.Mock
}

func (m *MockNetFlowEventRepository) AppendNetFlowEvent(ctx context.Context, event domain.PersonNetFlowEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockNetFlowEventRepository) ListNetFlowEventsInTx(ctx context.Context, tx pgx.Tx) ([]domain.PersonNetFlowEvent, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PersonNetFlowEvent), args.Error(1)
}

// --- Transactions ---

type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionManager) BeginSnapshot(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// fakeTx stands in for a live transaction; the mocked repositories never call into it.
type fakeTx struct {
	pgx.Tx
	name string
}

// snapshotTx returns a transaction manager whose snapshot transactions always succeed.
func snapshotTx() (*MockTransactionManager, pgx.Tx) {
	tx := &fakeTx{name: "snapshot"}
	txm := new(MockTransactionManager)
	txm.On("BeginSnapshot", mock.Anything).Return(tx, nil)
	txm.On("Commit", mock.Anything, tx).Return(nil)
	txm.On("Rollback", mock.Anything, tx).Return(nil)
	return txm, tx
}

// --- Cache ---

type MockBalanceCache struct {
	mock.Mock
}

func (m *MockBalanceCache) Version(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBalanceCache) Bump(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBalanceCache) Get(ctx context.Context, key portsrepo.CacheKey, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockBalanceCache) Set(ctx context.Context, key portsrepo.CacheKey, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

var (
	_ portsrepo.AccountRepositoryFacade       = (*MockAccountRepository)(nil)
	_ portsrepo.PersonRepositoryFacade        = (*MockPersonRepository)(nil)
	_ portsrepo.LendingEventRepositoryFacade  = (*MockLendingEventRepository)(nil)
	_ portsrepo.TransferEventRepositoryFacade = (*MockTransferEventRepository)(nil)
	_ portsrepo.NetFlowEventRepositoryFacade  = (*MockNetFlowEventRepository)(nil)
	_ portsrepo.BalanceCache                  = (*MockBalanceCache)(nil)
	_ portsrepo.TransactionManager            = (*MockTransactionManager)(nil)
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// decimalMapEq matches a balances map by decimal value rather than representation.
func decimalMapEq(want map[string]decimal.Decimal) any {
	return mock.MatchedBy(func(got map[string]decimal.Decimal) bool {
		if len(got) != len(want) {
			return false
		}
		for k, v := range want {
			if g, ok := got[k]; !ok || !g.Equal(v) {
				return false
			}
		}
		return true
	})
}
