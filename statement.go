package ledger

import (
	"fmt"
	"iter"
	"strings"
)

// Statement column widths. All columns are fixed-width and pipe-delimited so
// rows align in any monospace output.
const (
	stmtDateWidth    = 6  // "Jan 02"
	stmtKindWidth    = 6  // "Credit" / "Debit"
	stmtAccountWidth = 14 // "ACC-" plus a counter of up to ten digits
	stmtLabelWidth   = 24
	stmtAmountWidth  = 12
)

// stmtDateFormat renders the entry time as abbreviated month and day.
const stmtDateFormat = "Jan 02"

// Order selects the direction of a single-account statement.
type Order int

const (
	// NewestFirst lists the most recent entries first.
	NewestFirst Order = iota
	// OldestFirst lists entries in creation order.
	OldestFirst
)

// FormatEntry renders one journal entry as a fixed-width statement row.
//
// The account column shows the number most relevant to the viewer: the
// counterparty's number for a transfer entry, the owning account's number for
// a deposit. The amount is signed by the entry kind.
func FormatEntry(a *Account, tx Transaction) string {
	number := tx.Counterparty
	if number == "" {
		number = a.Number()
	}
	return fmt.Sprintf("%-*s | %-*s | %-*s | %-*s | %*s",
		stmtDateWidth, tx.Time.Format(stmtDateFormat),
		stmtKindWidth, tx.Kind,
		stmtAccountWidth, number,
		stmtLabelWidth, truncate(tx.Label, stmtLabelWidth),
		stmtAmountWidth, tx.Kind.Signed(tx.Amount).SignedString(),
	)
}

// truncate shortens s to at most width runes, marking the cut with "…".
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

// statementHeader returns the column header row and its separator line.
func statementHeader() (header, separator string) {
	header = fmt.Sprintf("%-*s | %-*s | %-*s | %-*s | %*s",
		stmtDateWidth, "Date",
		stmtKindWidth, "Type",
		stmtAccountWidth, "Account",
		stmtLabelWidth, "Description",
		stmtAmountWidth, "Amount",
	)
	return header, strings.Repeat("-", len(header))
}

// Statement returns the formatted rows of one account's journal.
func (l *Ledger) Statement(username string, order Order) ([]string, error) {
	a, err := l.Lookup(username)
	if err != nil {
		return nil, err
	}
	var view iter.Seq[Transaction]
	if order == OldestFirst {
		view = a.Chronological()
	} else {
		view = a.ReverseChronological()
	}
	var rows []string
	for tx := range view {
		rows = append(rows, FormatEntry(a, tx))
	}
	return rows, nil
}

// AggregatedStatement returns the formatted rows of every account's journal,
// most recent first, each row prefixed with the owning user.
func (l *Ledger) AggregatedStatement() []string {
	var rows []string
	for a, tx := range l.AggregatedEntries() {
		prefix := fmt.Sprintf("User: %s (%s)", a.Username(), a.Number())
		rows = append(rows, prefix+" | "+FormatEntry(a, tx))
	}
	return rows
}

// ExportStatement renders one account's full statement as a plain-text blob:
// a header line, a separator line, and all rows, most recent first. The
// result is suitable for file download as-is.
func (l *Ledger) ExportStatement(username string) (string, error) {
	rows, err := l.Statement(username, NewestFirst)
	if err != nil {
		return "", err
	}
	header, separator := statementHeader()
	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(separator + "\n")
	for _, row := range rows {
		b.WriteString(row + "\n")
	}
	return b.String(), nil
}
