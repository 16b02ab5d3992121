package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/rafaelleal24/inventory/internal/adapters/config"
	"github.com/rafaelleal24/inventory/internal/adapters/console"
)

// runCmd feeds a file of menu answers to a console session.
type runCmd struct {
	file     string
	echo     bool
	currency string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "replay a script of menu answers against a new ledger" }
func (*runCmd) Usage() string {
	return `inventory run -f <script> [-echo=false] [-c <currency>]

  Reads one answer per line from the script, exactly as they would be typed
  in the console. Unless LEDGER_USERNAME and LEDGER_PASSWORD are set, the
  first two lines are the operator credentials.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "script file, one answer per line")
	f.BoolVar(&c.echo, "echo", true, "print every answer after its prompt")
	f.StringVar(&c.currency, "c", "", "currency used to display amounts; defaults to LEDGER_CURRENCY")
}

func (c *runCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		return subcommands.ExitUsageError
	}

	f, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	cfg := config.NewConfig()
	return serve(f, os.Stdout, cfg, console.Options{
		Currency: firstNonEmpty(c.currency, cfg.Ledger.Currency),
		Echo:     c.echo,
	})
}
