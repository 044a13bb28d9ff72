package accounting_test

import (
	"testing"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertAmount(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "want %d, got %s %v", want, got.String(), msgAndArgs)
}

func lendToPerson(id, accountID, personID string, amount int64) domain.LendingEvent {
	return domain.LendingEvent{
		ID:               id,
		AccountID:        accountID,
		CounterpartyType: domain.CounterpartyPerson,
		CounterpartyID:   personID,
		Type:             domain.Lend,
		Amount:           d(amount),
		Date:             domain.NewDate(2024, 1, 1),
	}
}

func accountEvent(id, accountID, counterpartyID string, t domain.LendingType, amount int64) domain.LendingEvent {
	return domain.LendingEvent{
		ID:               id,
		AccountID:        accountID,
		CounterpartyType: domain.CounterpartyAccount,
		CounterpartyID:   counterpartyID,
		Type:             t,
		Amount:           d(amount),
		Date:             domain.NewDate(2024, 1, 1),
	}
}
