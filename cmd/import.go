package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/tanakala/ledger"
)

type importCmd struct {
	username string
	file     string
	path     string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import deposits from a JSON statement export" }
func (*importCmd) Usage() string {
	return `teller import -u <username> -f <file.json> [-path <jsonpath>]

  Reads a third-party JSON statement export and deposits every extracted
  amount on the account. The default query expects an export shaped like
  {"transactions":[{"amount": 12.34}, ...]}.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username of the account to credit")
	f.StringVar(&c.file, "f", "", "JSON export file to read")
	f.StringVar(&c.path, "path", "$.transactions[*].amount", "jsonpath query selecting the amounts")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.file == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(c.path, jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", c.path, err)
		return subcommands.ExitFailure
	}
	// jsonpath is never clear about whether it returns a list of answers or a
	// single answer: normalize to a list.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}

	var amounts []ledger.Money
	for _, jv := range jlist {
		val, ok := jv.(float64)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: %q selected a non-numeric value %v\n", c.path, jv)
			return subcommands.ExitFailure
		}
		amounts = append(amounts, ledger.M(val, ledger.DefaultCurrency))
	}
	if len(amounts) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no amounts found in %q\n", c.file)
		return subcommands.ExitSuccess
	}

	l, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, amount := range amounts {
		ev := ledger.NewDepositEvent(time.Now(), c.username, amount)
		if err := l.Apply(ev); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if status := appendEvent(ev); status != subcommands.ExitSuccess {
			return status
		}
	}

	a, err := l.Lookup(c.username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d deposits to %q, new balance is %s\n", len(amounts), c.username, a.Balance())
	return subcommands.ExitSuccess
}
