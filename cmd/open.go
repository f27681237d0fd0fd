package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tanakala/ledger"
)

type openCmd struct {
	username  string
	firstName string
	lastName  string
	address   string
	country   string
	state     string
	zip       string
	birthday  string
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open a new account with a zero balance" }
func (*openCmd) Usage() string {
	return `teller open -u <username> [-first <name>] [-last <name>] [-address <addr>] [-country <c>] [-state <s>] [-zip <zip>] [-birthday <YYYY-MM-DD>]

  Opens a new account. The username must be unique; the account number is
  allocated sequentially. Personal information is stored verbatim and shown
  in the banker overview.
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username, unique across the ledger")
	f.StringVar(&c.firstName, "first", "", "First name")
	f.StringVar(&c.lastName, "last", "", "Last name")
	f.StringVar(&c.address, "address", "", "Street address")
	f.StringVar(&c.country, "country", "", "Country")
	f.StringVar(&c.state, "state", "", "State")
	f.StringVar(&c.zip, "zip", "", "Zip code")
	f.StringVar(&c.birthday, "birthday", "", "Birthday (YYYY-MM-DD)")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	l, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	profile := ledger.Profile{
		FirstName: c.firstName,
		LastName:  c.lastName,
		Address:   c.address,
		Country:   c.country,
		State:     c.state,
		Zip:       c.zip,
		Birthday:  c.birthday,
	}
	a, err := l.Open(c.username, profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening account: %v\n", err)
		return subcommands.ExitFailure
	}

	ev := ledger.NewOpenEvent(a.OpenedAt(), a.Username(), a.Number(), a.Profile())
	if status := appendEvent(ev); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Opened account %s for %q\n", a.Number(), a.Username())
	return subcommands.ExitSuccess
}
