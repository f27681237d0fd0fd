package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/tanakala/ledger/cmd"
)

func main() {
	// Shell completion: this returns immediately unless the binary is invoked
	// by the shell completion machinery.
	user := map[string]complete.Predictor{"u": predict.Nothing}
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"open":      {Flags: user},
			"deposit":   {Flags: user},
			"send":      {Flags: user},
			"import":    {Flags: map[string]complete.Predictor{"u": predict.Nothing, "f": predict.Files("*.json")}},
			"history":   {Flags: user},
			"statement": {Flags: user},
			"export":    {Flags: user},
			"overview":  {},
			"fmt":       {},
			"topic":     {},
		},
	}
	completion.Complete("teller")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
