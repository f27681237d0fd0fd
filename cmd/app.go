// Package cmd implements the CLI application to manage a bank ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/tanakala/ledger"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&openCmd{}, "accounts")
	c.Register(&depositCmd{}, "transactions")
	c.Register(&sendCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")

	c.Register(&historyCmd{}, "reports")
	c.Register(&statementCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")
	c.Register(&overviewCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger file")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file containing events (JSONL format)")

// DecodeLedgerFile replays the app ledger file into a fresh ledger.
// A missing file is not an error, it is an empty ledger.
func DecodeLedgerFile() (*ledger.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting with an empty ledger")
		return ledger.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return ledger.DecodeLedger(f)
}

// appendEvent appends a single event to the app ledger file.
func appendEvent(e ledger.Event) subcommands.ExitStatus {
	filename := *ledgerFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := ledger.EncodeEvent(f, e); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders a markdown document to the terminal.
// When rendering fails the raw markdown is printed instead.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
