package ledger

import (
	"iter"
	"time"
)

// Profile carries the personal information collected at registration.
// The ledger stores it verbatim and never interprets it.
type Profile struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Address   string `json:"address,omitempty"`
	Country   string `json:"country,omitempty"`
	State     string `json:"state,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Birthday  string `json:"birthday,omitempty"`
}

// FullName returns "First Last", or "" when both parts are empty.
func (p Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// Account is one customer account: a unique username, an allocated account
// number, a balance and the append-only journal of its transactions.
// Accounts are created and mutated only through a Ledger; values handed out
// by Ledger read methods are snapshots.
type Account struct {
	username string
	number   string
	profile  Profile
	openedAt time.Time
	balance  Money
	journal  []Transaction
}

func (a *Account) Username() string   { return a.username }
func (a *Account) Number() string     { return a.number }
func (a *Account) Profile() Profile   { return a.profile }
func (a *Account) OpenedAt() time.Time { return a.openedAt }
func (a *Account) Balance() Money     { return a.balance }

// Chronological returns the account's journal entries in creation order.
// The view is lazy and restartable, it never mutates the journal.
func (a *Account) Chronological() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range a.journal {
			if !yield(tx) {
				return
			}
		}
	}
}

// ReverseChronological returns the journal entries most recent first.
func (a *Account) ReverseChronological() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for i := len(a.journal) - 1; i >= 0; i-- {
			if !yield(a.journal[i]) {
				return
			}
		}
	}
}

// snapshot returns a copy whose journal cannot alias the live one.
func (a *Account) snapshot() *Account {
	cp := *a
	cp.journal = make([]Transaction, len(a.journal))
	copy(cp.journal, a.journal)
	return &cp
}

// append adds an entry to the end of the journal. Entries are never mutated
// or removed afterwards.
func (a *Account) append(tx Transaction) {
	a.journal = append(a.journal, tx)
}
