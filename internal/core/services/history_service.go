package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_lending_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_lending_ledger/internal/core/ports/services"
)

// HistoryService composes the unified history and the name directory used to label it.
type HistoryService struct {
	BaseService
	snapshots   snapshotLoader
	accountRepo portsrepo.AccountReader
	personRepo  portsrepo.PersonReader
}

func NewHistoryService(repos portsrepo.RepositoryProvider, options ...ServiceOption) *HistoryService {
	return &HistoryService{
		BaseService: newBaseService(options...),
		snapshots:   newSnapshotLoader(repos),
		accountRepo: repos.AccountRepo,
		personRepo:  repos.PersonRepo,
	}
}

var _ portssvc.HistorySvc = (*HistoryService)(nil)

func (s *HistoryService) GetHistory(ctx context.Context, excludeArchived bool) (*domain.HistoryView, error) {
	snapshot, err := s.snapshots.load(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load event snapshot")
		return nil, err
	}

	// Archived entities still label old lines.
	accounts, err := s.accountRepo.ListAccounts(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for history")
		return nil, err
	}
	persons, err := s.personRepo.ListPersons(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list persons for history")
		return nil, err
	}

	view := &domain.HistoryView{
		Items:        snapshot.History(excludeArchived),
		AccountNames: make(map[string]string, len(accounts)),
		PersonNames:  make(map[string]string, len(persons)),
	}
	for _, a := range accounts {
		view.AccountNames[a.ID] = a.Name
	}
	for _, p := range persons {
		view.PersonNames[p.ID] = p.Name
	}

	s.LogDebug(ctx, "History composed",
		slog.Int("count", len(view.Items)),
		slog.Bool("exclude_archived", excludeArchived))
	return view, nil
}
