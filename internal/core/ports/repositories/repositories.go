package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo  AccountRepositoryFacade
	PersonRepo   PersonRepositoryFacade
	LendingRepo  LendingEventRepositoryFacade
	TransferRepo TransferEventRepositoryFacade
	NetFlowRepo  NetFlowEventRepositoryFacade

	// TxManager opens the snapshot transaction that balance and history reads share.
	TxManager TransactionManager

	// Cache is optional; nil disables balance caching.
	Cache BalanceCache
}
