package dto

import (
	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/SscSPs/money_lending_ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// BalanceParams selects the display currency of formatted amounts.
type BalanceParams struct {
	Currency string `form:"currency"`
}

// PersonBalanceResponse is what a person owes plus their custodial running balance.
type PersonBalanceResponse struct {
	PersonID                string          `json:"personId"`
	Outstanding             decimal.Decimal `json:"outstanding"`
	AccountBalance          decimal.Decimal `json:"accountBalance"`
	FormattedOutstanding    string          `json:"formattedOutstanding"`
	FormattedAccountBalance string          `json:"formattedAccountBalance"`
}

func ToPersonBalanceResponse(b domain.PersonBalance, currency string) PersonBalanceResponse {
	return PersonBalanceResponse{
		PersonID:                b.PersonID,
		Outstanding:             b.Outstanding,
		AccountBalance:          b.AccountBalance,
		FormattedOutstanding:    utils.FormatAmount(b.Outstanding, currency),
		FormattedAccountBalance: utils.FormatAmount(b.AccountBalance, currency),
	}
}

// AccountBalanceResponse is an account's outstanding lending position and transfer ledger balance.
type AccountBalanceResponse struct {
	AccountID              string          `json:"accountId"`
	Outstanding            decimal.Decimal `json:"outstanding"`
	LedgerBalance          decimal.Decimal `json:"ledgerBalance"`
	FormattedOutstanding   string          `json:"formattedOutstanding"`
	FormattedLedgerBalance string          `json:"formattedLedgerBalance"`
}

func ToAccountBalanceResponse(b domain.AccountBalance, currency string) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountID:              b.AccountID,
		Outstanding:            b.Outstanding,
		LedgerBalance:          b.LedgerBalance,
		FormattedOutstanding:   utils.FormatAmount(b.Outstanding, currency),
		FormattedLedgerBalance: utils.FormatAmount(b.LedgerBalance, currency),
	}
}

// PersonTotalsResponse aggregates outstanding balances across all persons.
type PersonTotalsResponse struct {
	TotalLent              decimal.Decimal `json:"totalLent"`
	TotalBorrowed          decimal.Decimal `json:"totalBorrowed"`
	Net                    decimal.Decimal `json:"net"`
	FormattedTotalLent     string          `json:"formattedTotalLent"`
	FormattedTotalBorrowed string          `json:"formattedTotalBorrowed"`
	FormattedNet           string          `json:"formattedNet"`
}

func ToPersonTotalsResponse(t domain.PersonTotals, currency string) PersonTotalsResponse {
	net := t.Net()
	return PersonTotalsResponse{
		TotalLent:              t.TotalLent,
		TotalBorrowed:          t.TotalBorrowed,
		Net:                    net,
		FormattedTotalLent:     utils.FormatAmount(t.TotalLent, currency),
		FormattedTotalBorrowed: utils.FormatAmount(t.TotalBorrowed, currency),
		FormattedNet:           utils.FormatAmount(net, currency),
	}
}
