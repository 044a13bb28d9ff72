package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_lending_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_lending_ledger/internal/core/ports/services"
)

// BalanceService answers balance queries over one snapshot of the event log.
// Ids are not resolved against the account and person tables: an id that only events
// reference is computed like any other, and an id nothing references is zero.
type BalanceService struct {
	BaseService
	snapshots  snapshotLoader
	personRepo portsrepo.PersonReader
}

func NewBalanceService(repos portsrepo.RepositoryProvider, options ...ServiceOption) *BalanceService {
	return &BalanceService{
		BaseService: newBaseService(options...),
		snapshots:   newSnapshotLoader(repos),
		personRepo:  repos.PersonRepo,
	}
}

var _ portssvc.BalanceSvc = (*BalanceService)(nil)

func (s *BalanceService) GetPersonBalance(ctx context.Context, personID string) (*domain.PersonBalance, error) {
	return cachedCompute(ctx, &s.BaseService, "person", personID, "balance", func() (*domain.PersonBalance, error) {
		snapshot, err := s.snapshots.load(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to load event snapshot", slog.String("person_id", personID))
			return nil, err
		}
		balance := snapshot.PersonBalance(personID)
		return &balance, nil
	})
}

func (s *BalanceService) GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error) {
	return cachedCompute(ctx, &s.BaseService, "account", accountID, "balance", func() (*domain.AccountBalance, error) {
		snapshot, err := s.snapshots.load(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to load event snapshot", slog.String("account_id", accountID))
			return nil, err
		}
		balance := snapshot.AccountBalance(accountID)
		return &balance, nil
	})
}

func (s *BalanceService) GetPersonTotals(ctx context.Context) (*domain.PersonTotals, error) {
	return cachedCompute(ctx, &s.BaseService, "totals", "all", "persons", func() (*domain.PersonTotals, error) {
		persons, err := s.personRepo.ListPersons(ctx, false)
		if err != nil {
			s.LogError(ctx, err, "Failed to list persons for totals")
			return nil, err
		}
		snapshot, err := s.snapshots.load(ctx)
		if err != nil {
			return nil, err
		}
		totals := snapshot.AggregatePersonTotals(persons)
		return &totals, nil
	})
}

// cachedCompute serves a result from the balance cache when one exists for the
// current event-set version. Cache failures degrade to recomputation.
func cachedCompute[T any](ctx context.Context, base *BaseService, kind, id, op string, compute func() (*T, error)) (*T, error) {
	if base.Cache == nil {
		return compute()
	}

	version, err := base.Cache.Version(ctx)
	if err != nil {
		base.LogError(ctx, err, "Balance cache unavailable", slog.String("kind", kind))
		return compute()
	}
	key := portsrepo.CacheKey{Version: version, Kind: kind, ID: id, Op: op}

	var cached T
	hit, err := base.Cache.Get(ctx, key, &cached)
	if err != nil {
		base.LogError(ctx, err, "Failed to read balance cache", slog.String("key", key.String()))
	}
	if hit {
		base.LogDebug(ctx, "Balance cache hit", slog.String("key", key.String()))
		return &cached, nil
	}

	result, err := compute()
	if err != nil {
		return nil, err
	}
	if err := base.Cache.Set(ctx, key, result); err != nil {
		base.LogError(ctx, err, "Failed to write balance cache", slog.String("key", key.String()))
	}
	return result, nil
}
