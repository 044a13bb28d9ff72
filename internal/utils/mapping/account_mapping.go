package mapping

import (
	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/SscSPs/money_lending_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.ID,
		Name:        d.Name,
		BusinessID:  d.BusinessID,
		Balance:     d.Balance,
		IsArchived:  d.IsArchived,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:          m.AccountID,
		Name:        m.Name,
		BusinessID:  m.BusinessID,
		Balance:     m.Balance,
		IsArchived:  m.IsArchived,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToModelPerson converts a domain Person to a model Person
func ToModelPerson(d domain.Person) models.Person {
	return models.Person{
		PersonID:    d.ID,
		Name:        d.Name,
		BusinessID:  d.BusinessID,
		IsArchived:  d.IsArchived,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPerson converts a model Person to a domain Person
func ToDomainPerson(m models.Person) domain.Person {
	return domain.Person{
		ID:          m.PersonID,
		Name:        m.Name,
		BusinessID:  m.BusinessID,
		IsArchived:  m.IsArchived,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainPersonSlice(ms []models.Person) []domain.Person {
	ds := make([]domain.Person, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPerson(m)
	}
	return ds
}
