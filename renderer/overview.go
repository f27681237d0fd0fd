package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/tanakala/ledger"
)

// Overview renders the banker view: every account with holder and balance,
// followed by all journal entries across accounts, most recent first.
func Overview(l *ledger.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Banker Overview")

	accounts := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"User", "Name", "Account", "Balance"},
		Rows:   [][]string{},
	}
	for a := range l.Accounts() {
		accounts.Rows = append(accounts.Rows, []string{
			a.Username(),
			a.Profile().FullName(),
			a.Number(),
			a.Balance().String(),
		})
	}
	if len(accounts.Rows) == 0 {
		doc.PlainText("No accounts registered yet.")
		return doc.String()
	}
	doc.H2("Accounts")
	doc.Table(accounts)

	activity := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"User", "Date", "Type", "Account", "Description", "Amount"},
		Rows:   [][]string{},
	}
	for a, tx := range l.AggregatedEntries() {
		activity.Rows = append(activity.Rows, append([]string{a.Username()}, entryCells(a, tx)...))
	}
	if len(activity.Rows) > 0 {
		doc.H2("Activity")
		doc.Table(activity)
	}
	return doc.String()
}
