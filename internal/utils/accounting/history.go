package accounting

import (
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
)

// CombinedHistory merges the three event kinds into one list ordered by date, newest first.
//
// Items are concatenated as lendings, transfers, net flows and sorted stably by date only.
// Lines sharing a date keep that concatenation order; no stronger tie-break is promised.
// With excludeArchived, archived lending and transfer events are dropped. Net flows carry no
// archival flag and are always included.
func CombinedHistory(lendings []domain.LendingEvent, transfers []domain.AccountTransferEvent, netFlows []domain.PersonNetFlowEvent, excludeArchived bool) []domain.HistoryItem {
	return NewSnapshot(lendings, transfers, netFlows).History(excludeArchived)
}

// History is CombinedHistory over the snapshot.
func (s *Snapshot) History(excludeArchived bool) []domain.HistoryItem {
	items := make([]domain.HistoryItem, 0, len(s.lendings)+len(s.transfers)+len(s.netFlows))
	for _, e := range s.lendings {
		if excludeArchived && e.IsArchived {
			continue
		}
		items = append(items, projectLending(e))
	}
	for _, e := range s.transfers {
		if excludeArchived && e.IsArchived {
			continue
		}
		items = append(items, projectTransfer(e))
	}
	for _, e := range s.netFlows {
		items = append(items, projectNetFlow(e))
	}
	slices.SortStableFunc(items, func(a, b domain.HistoryItem) int {
		return b.Date.Time().Compare(a.Date.Time())
	})
	return items
}

// HistoryID builds the synthetic id "<kind>-<originalId>", unique across kinds.
func HistoryID(kind domain.HistoryKind, originalID string) string {
	return fmt.Sprintf("%s-%s", kind, originalID)
}

func projectLending(e domain.LendingEvent) domain.HistoryItem {
	return domain.HistoryItem{
		ID:               HistoryID(domain.KindLending, e.ID),
		OriginalID:       e.ID,
		Kind:             domain.KindLending,
		Type:             string(e.Type),
		Label:            LendingLabel(e.Type, e.Amount),
		Amount:           e.Amount,
		Date:             e.Date,
		AccountID:        e.AccountID,
		CounterpartyType: e.CounterpartyType,
		CounterpartyID:   e.CounterpartyID,
		Memo:             e.Memo,
		Returned:         e.Returned,
		IsArchived:       e.IsArchived,
		CreatedBy:        e.CreatedBy,
		LastEditedBy:     e.LastEditedBy,
		LastEditedAt:     timePtr(e.LastEditedAt),
	}
}

func projectTransfer(e domain.AccountTransferEvent) domain.HistoryItem {
	return domain.HistoryItem{
		ID:            HistoryID(domain.KindTransfer, e.ID),
		OriginalID:    e.ID,
		Kind:          domain.KindTransfer,
		Type:          string(e.Type),
		Label:         TransferLabel(e.Type, e.Amount),
		Amount:        e.Amount,
		Date:          e.Date,
		AccountID:     e.AccountID,
		FromAccountID: e.FromAccountID,
		ToAccountID:   e.ToAccountID,
		Memo:          e.Memo,
		IsArchived:    e.IsArchived,
		CreatedBy:     e.CreatedBy,
		LastEditedBy:  e.LastEditedBy,
		LastEditedAt:  timePtr(e.LastEditedAt),
	}
}

func projectNetFlow(e domain.PersonNetFlowEvent) domain.HistoryItem {
	return domain.HistoryItem{
		ID:               HistoryID(domain.KindNetFlow, e.ID),
		OriginalID:       e.ID,
		Kind:             domain.KindNetFlow,
		Type:             string(e.Type),
		Label:            NetFlowLabel(e.Type),
		Amount:           e.SignedAmount(),
		Date:             e.Date,
		CounterpartyType: domain.CounterpartyPerson,
		CounterpartyID:   e.PersonID,
		Memo:             e.Memo,
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
