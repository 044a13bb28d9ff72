package domain

import (
	"github.com/shopspring/decimal"
)

// PersonTotals aggregates outstanding balances across persons.
// TotalBorrowed is reported as an absolute value.
type PersonTotals struct {
	TotalLent     decimal.Decimal `json:"totalLent"`
	TotalBorrowed decimal.Decimal `json:"totalBorrowed"`
}

// Net is TotalLent - TotalBorrowed, the sum of every person's outstanding balance.
func (t PersonTotals) Net() decimal.Decimal {
	return t.TotalLent.Sub(t.TotalBorrowed)
}

// PersonBalance pairs what a person currently owes with their custodial running balance.
type PersonBalance struct {
	PersonID       string          `json:"personId"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	AccountBalance decimal.Decimal `json:"accountBalance"`
}

// AccountBalance pairs an account's outstanding lending position with its transfer ledger balance.
type AccountBalance struct {
	AccountID     string          `json:"accountId"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	LedgerBalance decimal.Decimal `json:"ledgerBalance"`
}
