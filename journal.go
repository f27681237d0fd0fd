package ledger

import (
	"iter"
	"sort"
)

// entry pairs a journal transaction with the account it belongs to.
type entry struct {
	account *Account
	tx      Transaction
}

// Entries yields every journal entry of every account, in global append
// order. The sequence operates on a snapshot taken when it is created.
func (l *Ledger) Entries() iter.Seq2[*Account, Transaction] {
	entries := l.collect()
	return func(yield func(*Account, Transaction) bool) {
		for _, e := range entries {
			if !yield(e.account, e.tx) {
				return
			}
		}
	}
}

// AggregatedEntries yields every journal entry of every account, most recent
// first. The sort is stable: entries with equal timestamps keep their global
// append order.
func (l *Ledger) AggregatedEntries() iter.Seq2[*Account, Transaction] {
	entries := l.collect()
	// collect() returns entries in global append order already, so the
	// stable sort alone gives the required tie-breaking.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].tx.Time.After(entries[j].tx.Time)
	})
	return func(yield func(*Account, Transaction) bool) {
		for _, e := range entries {
			if !yield(e.account, e.tx) {
				return
			}
		}
	}
}

// collect snapshots all journal entries, ordered by global append sequence.
func (l *Ledger) collect() []entry {
	l.mu.RLock()
	var entries []entry
	for _, a := range l.order {
		snap := a.snapshot()
		for _, tx := range snap.journal {
			entries = append(entries, entry{account: snap, tx: tx})
		}
	}
	l.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].tx.seq < entries[j].tx.seq
	})
	return entries
}
