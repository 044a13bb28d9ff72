package accounting

import (
	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PersonOutstandingBalance is what personID currently owes: positive means the person owes the
// organization, negative means the organization owes the person.
func PersonOutstandingBalance(events []domain.LendingEvent, personID string) decimal.Decimal {
	return NewSnapshot(events, nil, nil).PersonOutstandingBalance(personID)
}

// PersonAccountBalance is personID's running custodial balance including settled history.
func PersonAccountBalance(events []domain.LendingEvent, netFlows []domain.PersonNetFlowEvent, personID string) decimal.Decimal {
	return NewSnapshot(events, nil, netFlows).PersonAccountBalance(personID)
}

// AccountOutstandingBalance is accountID's open lending position across both participant roles.
func AccountOutstandingBalance(events []domain.LendingEvent, accountID string) decimal.Decimal {
	return NewSnapshot(events, nil, nil).AccountOutstandingBalance(accountID)
}

// AccountLedgerBalance is accountID's running balance net of transfer events.
func AccountLedgerBalance(transfers []domain.AccountTransferEvent, accountID string) decimal.Decimal {
	return NewSnapshot(nil, transfers, nil).AccountLedgerBalance(accountID)
}

// AggregatePersonTotals splits the outstanding balances of every non-archived person into
// money lent out and money borrowed.
func AggregatePersonTotals(events []domain.LendingEvent, persons []domain.Person) domain.PersonTotals {
	return NewSnapshot(events, nil, nil).AggregatePersonTotals(persons)
}

// PersonOutstandingBalance sums the stored amount of every live, unreturned lend/borrow line
// whose counterparty is personID. Return lines settle other events and are not summed.
func (s *Snapshot) PersonOutstandingBalance(personID string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.lendings {
		if e.IsArchived || e.Returned || e.Type == domain.Return {
			continue
		}
		if !touchesPerson(e, personID) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}

// PersonAccountBalance adds the person's net flows to the custodial effect of every live
// lending event touching the person, returned or not.
func (s *Snapshot) PersonAccountBalance(personID string) decimal.Decimal {
	total := decimal.Zero
	for _, f := range s.netFlows {
		if f.PersonID != personID {
			continue
		}
		total = total.Add(f.SignedAmount())
	}
	for _, e := range s.lendings {
		if e.IsArchived || !touchesPerson(e, personID) {
			continue
		}
		total = total.Add(CustodialEffect(e.Type, e.Amount))
	}
	return total
}

// AccountOutstandingBalance accumulates live, unreturned events where accountID is the primary
// account or the account-type counterparty. The two roles are checked independently, so an event
// contributes exactly once per role it matches.
func (s *Snapshot) AccountOutstandingBalance(accountID string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.lendings {
		if e.IsArchived || e.Returned {
			continue
		}
		if e.AccountID == accountID {
			total = total.Add(ResolveSign(Role{Side: Primary, Type: e.Type}, e.Amount))
		}
		if touchesAccountAsCounterparty(e, accountID) {
			total = total.Add(ResolveSign(Role{Side: Counterparty, Type: e.Type}, e.Amount))
		}
	}
	return total
}

// AccountLedgerBalance sums the effect of every live transfer event on accountID.
func (s *Snapshot) AccountLedgerBalance(accountID string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.transfers {
		if e.IsArchived {
			continue
		}
		total = total.Add(TransferEffect(e, accountID))
	}
	return total
}

// AggregatePersonTotals computes PersonOutstandingBalance for every non-archived person.
// Positive balances go to TotalLent, negative ones to TotalBorrowed by magnitude.
func (s *Snapshot) AggregatePersonTotals(persons []domain.Person) domain.PersonTotals {
	totals := domain.PersonTotals{TotalLent: decimal.Zero, TotalBorrowed: decimal.Zero}
	for _, p := range persons {
		if p.IsArchived {
			continue
		}
		balance := s.PersonOutstandingBalance(p.ID)
		switch {
		case balance.IsPositive():
			totals.TotalLent = totals.TotalLent.Add(balance)
		case balance.IsNegative():
			totals.TotalBorrowed = totals.TotalBorrowed.Add(balance.Abs())
		}
	}
	return totals
}

// PersonBalance bundles both person balances.
func (s *Snapshot) PersonBalance(personID string) domain.PersonBalance {
	return domain.PersonBalance{
		PersonID:       personID,
		Outstanding:    s.PersonOutstandingBalance(personID),
		AccountBalance: s.PersonAccountBalance(personID),
	}
}

// AccountBalance bundles both account balances.
func (s *Snapshot) AccountBalance(accountID string) domain.AccountBalance {
	return domain.AccountBalance{
		AccountID:     accountID,
		Outstanding:   s.AccountOutstandingBalance(accountID),
		LedgerBalance: s.AccountLedgerBalance(accountID),
	}
}
