package accounting

import (
	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Side is the position an account holds on a lending event.
type Side string

const (
	// Primary is the event's own accountId.
	Primary Side = "primary"
	// Counterparty is an account referenced through counterpartyType=account.
	Counterparty Side = "counterparty"
)

// Role tags a participant's view of a lending event.
type Role struct {
	Side Side
	Type domain.LendingType
}

// ResolveSign returns the outstanding-balance contribution of amount for a participant in role.
//
// From the primary side a lend is an asset (+|amount|) and a borrow a liability (-|amount|).
// The counterparty sees the same event mirrored. Returns settle other lines and contribute nothing.
func ResolveSign(role Role, amount decimal.Decimal) decimal.Decimal {
	var signed decimal.Decimal
	switch role.Type {
	case domain.Lend:
		signed = amount.Abs()
	case domain.Borrow:
		signed = amount.Abs().Neg()
	default:
		return decimal.Zero
	}
	if role.Side == Counterparty {
		signed = signed.Neg()
	}
	return signed
}

// CustodialEffect is a lending event's contribution to a person's running custodial balance.
// Lend and borrow are taken by magnitude; a return keeps its stored sign, which already
// encodes the direction of the repayment.
func CustodialEffect(t domain.LendingType, amount decimal.Decimal) decimal.Decimal {
	switch t {
	case domain.Lend:
		return amount.Abs()
	case domain.Borrow:
		return amount.Abs().Neg()
	case domain.Return:
		return amount
	}
	return decimal.Zero
}

// TransferEffect is a transfer event's contribution to accountID's ledger balance.
func TransferEffect(e domain.AccountTransferEvent, accountID string) decimal.Decimal {
	switch e.Type {
	case domain.Transfer:
		effect := decimal.Zero
		if e.FromAccountID == accountID {
			effect = effect.Sub(e.Amount.Abs())
		}
		if e.ToAccountID == accountID {
			effect = effect.Add(e.Amount.Abs())
		}
		return effect
	}
	if e.AccountID != accountID {
		return decimal.Zero
	}
	switch e.Type {
	case domain.Deposit:
		return e.Amount.Abs()
	case domain.Withdrawal:
		return e.Amount.Abs().Neg()
	case domain.Interest, domain.InvestmentGain:
		return e.Amount
	}
	return decimal.Zero
}
