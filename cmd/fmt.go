package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the ledger file in canonical form" }
func (*fmtCmd) Usage() string {
	return `teller fmt

  Replays the ledger file and writes it back canonically: account openings
  first, then every money movement in order. Replaying the result yields the
  exact same state.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := os.OpenFile(*ledgerFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q for writing: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := l.EncodeLedger(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Ledger file %q has been formatted.\n", *ledgerFile)
	return subcommands.ExitSuccess
}
