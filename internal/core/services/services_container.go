package services

import (
	portsrepo "github.com/SscSPs/money_lending_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_lending_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// A nil repos.Cache disables balance caching.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	var options []ServiceOption
	if repos.Cache != nil {
		options = append(options, WithBalanceCache(repos.Cache))
	}

	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos.AccountRepo, options...),
		Person:  NewPersonService(repos.PersonRepo, options...),
		Event:   NewEventService(repos, options...),
		Balance: NewBalanceService(repos, options...),
		History: NewHistoryService(repos, options...),
	}
}
