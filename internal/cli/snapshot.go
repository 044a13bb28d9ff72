// Package cli implements lendingctl, which computes balances and history from an exported
// snapshot of the store without a database.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/SscSPs/money_lending_ledger/internal/utils/accounting"
)

// SnapshotFile is the on-disk export of every collection.
type SnapshotFile struct {
	Accounts  []domain.Account              `json:"accounts"`
	Persons   []domain.Person               `json:"persons"`
	Lendings  []domain.LendingEvent         `json:"lendings"`
	Transfers []domain.AccountTransferEvent `json:"transfers"`
	NetFlows  []domain.PersonNetFlowEvent   `json:"netFlows"`
}

// DecodeSnapshot reads a snapshot from r. Legacy lending records are normalized while decoding.
func DecodeSnapshot(r io.Reader) (*SnapshotFile, error) {
	var s SnapshotFile
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &s, nil
}

// OpenSnapshot reads the snapshot file at path.
func OpenSnapshot(path string) (*SnapshotFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeSnapshot(f)
}

// Engine returns the balance engine view of the snapshot.
// Ids are not checked against Accounts or Persons; orphaned ids are summed like any other.
func (s *SnapshotFile) Engine() *accounting.Snapshot {
	return accounting.NewSnapshot(s.Lendings, s.Transfers, s.NetFlows)
}

// HistoryView composes the history with the file's name directory.
func (s *SnapshotFile) HistoryView(excludeArchived bool) domain.HistoryView {
	view := domain.HistoryView{
		Items:        s.Engine().History(excludeArchived),
		AccountNames: make(map[string]string, len(s.Accounts)),
		PersonNames:  make(map[string]string, len(s.Persons)),
	}
	for _, a := range s.Accounts {
		view.AccountNames[a.ID] = a.Name
	}
	for _, p := range s.Persons {
		view.PersonNames[p.ID] = p.Name
	}
	return view
}
