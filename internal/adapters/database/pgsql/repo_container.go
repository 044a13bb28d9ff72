package pgsql

import (
	portsrepo "github.com/SscSPs/money_lending_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository and the transaction manager onto one pool.
// The balance cache is attached by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		PersonRepo:   newPgxPersonRepository(dbPool),
		LendingRepo:  newPgxLendingEventRepository(dbPool),
		TransferRepo: newPgxTransferEventRepository(dbPool),
		NetFlowRepo:  newPgxNetFlowEventRepository(dbPool),
		TxManager:    &BaseRepository{Pool: dbPool},
	}
}
