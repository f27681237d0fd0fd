package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/tanakala/ledger"
)

// History renders an account's balance and journal as a markdown report.
func History(a *ledger.Account, order ledger.Order) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Account %s (%s)", a.Username(), a.Number()))
	doc.PlainText(fmt.Sprintf("Balance: **%s**", a.Balance()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Type", "Account", "Description", "Amount"},
		Rows:   [][]string{},
	}

	view := a.ReverseChronological()
	if order == ledger.OldestFirst {
		view = a.Chronological()
	}
	for tx := range view {
		table.Rows = append(table.Rows, entryCells(a, tx))
	}

	if len(table.Rows) == 0 {
		doc.PlainText("No transactions yet.")
	} else {
		doc.Table(table)
	}
	return doc.String()
}
