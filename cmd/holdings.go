package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/openbroker/brokerbook/renderer"
)

type holdingsCmd struct {
	client string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "a client's raw positions" }
func (*holdingsCmd) Usage() string {
	return `bkb holdings -c <client>

  Prints the client's net position per instrument, without valuation.
  Positions come from the holdings snapshot, which the book keeps in
  lockstep with the trade ledger.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "c", "", "Client id to inspect.")
}

func (c *holdingsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Positions(c.client, book.Holdings(c.client)))
	return subcommands.ExitSuccess
}
