package accounting

import (
	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Display labels used by existing reports. They must not change.
const (
	LabelLent          = "貸し"
	LabelBorrowed      = "借り"
	LabelRepaid        = "返済"
	LabelTransfer      = "振替"
	LabelInterest      = "受取利息"
	LabelNetDeposit    = "純入金"
	LabelNetWithdrawal = "純出金"
	LabelGain          = "運用益"
	LabelLoss          = "運用損"
	LabelDeposit       = "入金"
	LabelWithdrawal    = "出金"
)

// LendingLabel labels a lending line by type and sign.
func LendingLabel(t domain.LendingType, amount decimal.Decimal) string {
	if t == domain.Return {
		return LabelRepaid
	}
	if amount.IsNegative() {
		return LabelBorrowed
	}
	return LabelLent
}

// TransferLabel labels a transfer-collection line.
func TransferLabel(t domain.TransferType, amount decimal.Decimal) string {
	switch t {
	case domain.Transfer:
		return LabelTransfer
	case domain.Interest:
		return LabelInterest
	case domain.Deposit:
		return LabelDeposit
	case domain.Withdrawal:
		return LabelWithdrawal
	case domain.InvestmentGain:
		if amount.IsNegative() {
			return LabelLoss
		}
		return LabelGain
	}
	return string(t)
}

// NetFlowLabel labels a person net-flow line.
func NetFlowLabel(t domain.NetFlowType) string {
	if t == domain.NetWithdrawal {
		return LabelNetWithdrawal
	}
	return LabelNetDeposit
}
