package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/tanakala/ledger"
)

// parseAmount parses a CLI amount flag into Money in the ledger currency.
func parseAmount(s string) (ledger.Money, error) {
	return ledger.ParseMoney(s, ledger.DefaultCurrency)
}

// --- Deposit Command ---

type depositCmd struct {
	username string
	amount   string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "credit an amount to an account" }
func (*depositCmd) Usage() string {
	return `teller deposit -u <username> -a <amount>

  Deposits the amount on the account and records one credit entry in its journal.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username of the account to credit")
	f.StringVar(&c.amount, "a", "", "Amount to deposit, e.g. 100.00")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	l, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	ev := ledger.NewDepositEvent(time.Now(), c.username, amount)
	if err := l.Apply(ev); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := appendEvent(ev); status != subcommands.ExitSuccess {
		return status
	}

	a, err := l.Lookup(c.username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deposited %s to %q, new balance is %s\n", amount, c.username, a.Balance())
	return subcommands.ExitSuccess
}

// --- Send Command ---

type sendCmd struct {
	sender    string
	recipient string
	amount    string
}

func (*sendCmd) Name() string     { return "send" }
func (*sendCmd) Synopsis() string { return "transfer an amount to another account" }
func (*sendCmd) Usage() string {
	return `teller send -u <sender> -to <recipient> -a <amount>

  Moves the amount from the sender to the recipient as one atomic operation:
  a debit entry on the sender and a credit entry on the recipient, sharing the
  same timestamp and referencing each other's account number.
`
}

func (c *sendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sender, "u", "", "Username of the sending account")
	f.StringVar(&c.recipient, "to", "", "Username of the receiving account")
	f.StringVar(&c.amount, "a", "", "Amount to send, e.g. 40.00")
}

func (c *sendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.sender == "" || c.recipient == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	l, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	ev := ledger.NewTransferEvent(time.Now(), c.sender, c.recipient, amount)
	if err := l.Apply(ev); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := appendEvent(ev); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Sent %s from %q to %q\n", amount, c.sender, c.recipient)
	return subcommands.ExitSuccess
}
