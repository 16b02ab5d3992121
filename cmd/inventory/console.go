package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/rafaelleal24/inventory/internal/adapters/config"
	"github.com/rafaelleal24/inventory/internal/adapters/console"
)

// consoleCmd runs the interactive menu on the terminal.
type consoleCmd struct {
	style    string
	currency string
}

func (*consoleCmd) Name() string     { return "console" }
func (*consoleCmd) Synopsis() string { return "manage the inventory from an interactive menu" }
func (*consoleCmd) Usage() string {
	return `inventory console [-style <glamour style>] [-c <currency>]

  Sets up an empty ledger, asking for the operator credentials unless
  LEDGER_USERNAME and LEDGER_PASSWORD are set, then serves the menu.
`
}

func (c *consoleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.style, "style", "", "glamour style for reports (dark, light, ascii, notty); defaults to CONSOLE_STYLE")
	f.StringVar(&c.currency, "c", "", "currency used to display amounts; defaults to LEDGER_CURRENCY")
}

func (c *consoleCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.NewConfig()
	return serve(os.Stdin, os.Stdout, cfg, console.Options{
		Currency: firstNonEmpty(c.currency, cfg.Ledger.Currency),
		Style:    firstNonEmpty(c.style, cfg.Console.Style),
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
