package services

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/money_lending_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/money_lending_ledger/internal/utils/accounting"
)

// snapshotLoader reads each event collection once per computation, all inside one snapshot
// transaction.
type snapshotLoader struct {
	txManager    portsrepo.TransactionManager
	lendingRepo  portsrepo.LendingEventReader
	transferRepo portsrepo.TransferEventReader
	netFlowRepo  portsrepo.NetFlowEventReader
}

func newSnapshotLoader(repos portsrepo.RepositoryProvider) snapshotLoader {
	return snapshotLoader{
		txManager:    repos.TxManager,
		lendingRepo:  repos.LendingRepo,
		transferRepo: repos.TransferRepo,
		netFlowRepo:  repos.NetFlowRepo,
	}
}

func (l snapshotLoader) load(ctx context.Context) (*accounting.Snapshot, error) {
	tx, err := l.txManager.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = l.txManager.Rollback(ctx, tx) }()

	lendings, err := l.lendingRepo.ListLendingEventsInTx(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lending events: %w", err)
	}
	transfers, err := l.transferRepo.ListTransferEventsInTx(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfer events: %w", err)
	}
	netFlows, err := l.netFlowRepo.ListNetFlowEventsInTx(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to list net flow events: %w", err)
	}

	if err := l.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return accounting.NewSnapshot(lendings, transfers, netFlows), nil
}
