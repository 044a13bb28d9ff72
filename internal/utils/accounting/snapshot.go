// Package accounting derives balances and a combined history from the event log.
//
// Every function here is pure: it reads an immutable snapshot of the event collections and
// returns fresh values. Callers are responsible for handing in one consistent read of the
// store per computation.
package accounting

import (
	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
)

// Snapshot is one consistent read of the event store with lending counterparties normalized.
type Snapshot struct {
	lendings  []domain.LendingEvent
	transfers []domain.AccountTransferEvent
	netFlows  []domain.PersonNetFlowEvent
}

// NewSnapshot copies the collections and normalizes legacy lending records once,
// so the balance arithmetic only ever reads the canonical counterparty fields.
func NewSnapshot(lendings []domain.LendingEvent, transfers []domain.AccountTransferEvent, netFlows []domain.PersonNetFlowEvent) *Snapshot {
	return &Snapshot{
		lendings:  NormalizeLendingEvents(lendings),
		transfers: append([]domain.AccountTransferEvent(nil), transfers...),
		netFlows:  append([]domain.PersonNetFlowEvent(nil), netFlows...),
	}
}

// NormalizeLendingEvents returns a copy of events in canonical counterparty form.
func NormalizeLendingEvents(events []domain.LendingEvent) []domain.LendingEvent {
	out := make([]domain.LendingEvent, len(events))
	for i, e := range events {
		out[i] = e.Normalize()
	}
	return out
}

// Lendings returns the normalized lending events.
func (s *Snapshot) Lendings() []domain.LendingEvent { return s.lendings }

// Transfers returns the transfer events.
func (s *Snapshot) Transfers() []domain.AccountTransferEvent { return s.transfers }

// NetFlows returns the person net-flow events.
func (s *Snapshot) NetFlows() []domain.PersonNetFlowEvent { return s.netFlows }

func touchesPerson(e domain.LendingEvent, personID string) bool {
	return e.CounterpartyType == domain.CounterpartyPerson && e.CounterpartyID == personID
}

func touchesAccountAsCounterparty(e domain.LendingEvent, accountID string) bool {
	return e.CounterpartyType == domain.CounterpartyAccount && e.CounterpartyID == accountID
}
