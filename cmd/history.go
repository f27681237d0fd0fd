package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tanakala/ledger"
	"github.com/tanakala/ledger/renderer"
)

type historyCmd struct {
	username  string
	ascending bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display an account's balance and transaction history" }
func (*historyCmd) Usage() string {
	return `teller history -u <username> [-asc]

  Displays the account balance and its journal entries, most recent first
  by default.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username of the account to report on")
	f.BoolVar(&c.ascending, "asc", false, "List entries oldest first")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	l, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	a, err := l.Lookup(c.username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	order := ledger.NewestFirst
	if c.ascending {
		order = ledger.OldestFirst
	}
	printMarkdown(renderer.History(a, order))
	return subcommands.ExitSuccess
}
