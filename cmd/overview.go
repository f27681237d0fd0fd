package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tanakala/ledger/renderer"
)

type overviewCmd struct{}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display every account with balances and recent activity" }
func (*overviewCmd) Usage() string {
	return `teller overview

  The banker view: every account with its holder, number and balance, followed
  by all journal entries across accounts, most recent first. Permission
  checking is left to whoever runs the command.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Overview(l))
	return subcommands.ExitSuccess
}
