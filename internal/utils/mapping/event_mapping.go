package mapping

import (
	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/SscSPs/money_lending_ledger/internal/models"
)

// ToModelLendingEvent converts a domain LendingEvent to a row.
// The legacy person_id column is only written when the event itself still carries it.
func ToModelLendingEvent(d domain.LendingEvent) models.LendingEvent {
	m := models.LendingEvent{
		EventID:        d.ID,
		AccountID:      d.AccountID,
		CounterpartyID: optionalString(d.CounterpartyID),
		PersonID:       optionalString(d.PersonID),
		Type:           string(d.Type),
		Amount:         d.Amount,
		EventDate:      d.Date.Time(),
		Memo:           d.Memo,
		Returned:       d.Returned,
		IsArchived:     d.IsArchived,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	m.CounterpartyType = optionalString(string(d.CounterpartyType))
	return m
}

// ToDomainLendingEvent converts a row to a domain LendingEvent in canonical counterparty form.
func ToDomainLendingEvent(m models.LendingEvent) domain.LendingEvent {
	return domain.LendingEvent{
		ID:               m.EventID,
		AccountID:        m.AccountID,
		CounterpartyType: domain.CounterpartyType(derefString(m.CounterpartyType)),
		CounterpartyID:   derefString(m.CounterpartyID),
		PersonID:         derefString(m.PersonID),
		Type:             domain.LendingType(m.Type),
		Amount:           m.Amount,
		Date:             dateOf(m.EventDate),
		Memo:             m.Memo,
		Returned:         m.Returned,
		IsArchived:       m.IsArchived,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}.Normalize()
}

// ToModelTransferEvent converts a domain AccountTransferEvent to a row.
func ToModelTransferEvent(d domain.AccountTransferEvent) models.TransferEvent {
	return models.TransferEvent{
		EventID:       d.ID,
		Type:          string(d.Type),
		FromAccountID: optionalString(d.FromAccountID),
		ToAccountID:   optionalString(d.ToAccountID),
		AccountID:     optionalString(d.AccountID),
		Amount:        d.Amount,
		EventDate:     d.Date.Time(),
		Memo:          d.Memo,
		IsArchived:    d.IsArchived,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransferEvent converts a row to a domain AccountTransferEvent.
func ToDomainTransferEvent(m models.TransferEvent) domain.AccountTransferEvent {
	return domain.AccountTransferEvent{
		ID:            m.EventID,
		Type:          domain.TransferType(m.Type),
		FromAccountID: derefString(m.FromAccountID),
		ToAccountID:   derefString(m.ToAccountID),
		AccountID:     derefString(m.AccountID),
		Amount:        m.Amount,
		Date:          dateOf(m.EventDate),
		Memo:          m.Memo,
		IsArchived:    m.IsArchived,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelNetFlowEvent converts a domain PersonNetFlowEvent to a row.
func ToModelNetFlowEvent(d domain.PersonNetFlowEvent) models.NetFlowEvent {
	return models.NetFlowEvent{
		EventID:   d.ID,
		PersonID:  d.PersonID,
		Type:      string(d.Type),
		Amount:    d.Amount,
		EventDate: d.Date.Time(),
		Memo:      d.Memo,
	}
}

// ToDomainNetFlowEvent converts a row to a domain PersonNetFlowEvent.
func ToDomainNetFlowEvent(m models.NetFlowEvent) domain.PersonNetFlowEvent {
	return domain.PersonNetFlowEvent{
		ID:       m.EventID,
		PersonID: m.PersonID,
		Type:     domain.NetFlowType(m.Type),
		Amount:   m.Amount,
		Date:     dateOf(m.EventDate),
		Memo:     m.Memo,
	}
}
