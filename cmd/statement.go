package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// --- Statement Command ---

type statementCmd struct {
	username string
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "print a fixed-width statement" }
func (*statementCmd) Usage() string {
	return `teller statement [-u <username>]

  Prints the statement of one account, or, when -u is omitted, the aggregated
  statement of every account sorted by time, most recent first.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username to report on; all accounts when omitted")
}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.username == "" {
		for _, row := range l.AggregatedStatement() {
			fmt.Println(row)
		}
		return subcommands.ExitSuccess
	}

	blob, err := l.ExportStatement(c.username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(blob)
	return subcommands.ExitSuccess
}

// --- Export Command ---

type exportCmd struct {
	username   string
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write an account statement to a file" }
func (*exportCmd) Usage() string {
	return `teller export -u <username> [-o <file>]

  Writes the account's full statement as a plain-text file, ready for download.
  Without -o the statement is written to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username of the account to export")
	f.StringVar(&c.outputFile, "o", "", "Destination file; stdout when omitted")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	l, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	blob, err := l.ExportStatement(c.username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.outputFile == "" {
		fmt.Print(blob)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.outputFile, []byte(blob), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing statement to %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	lines := strings.Count(blob, "\n")
	fmt.Printf("Wrote %d lines to %s\n", lines, c.outputFile)
	return subcommands.ExitSuccess
}
