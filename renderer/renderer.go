// Package renderer turns ledger data into markdown reports.
package renderer

import (
	"github.com/tanakala/ledger"
)

// entryCells returns the table cells of one journal entry.
//
// The account cell shows the counterparty's number for transfer entries and
// the owning account's number for deposits, matching the statement format.
func entryCells(a *ledger.Account, tx ledger.Transaction) []string {
	number := tx.Counterparty
	if number == "" {
		number = a.Number()
	}
	return []string{
		tx.Time.Format("2006-01-02 15:04"),
		tx.Kind.String(),
		number,
		tx.Label,
		tx.Kind.Signed(tx.Amount).SignedString(),
	}
}
