package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/openbroker/brokerbook"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the data files in canonical form" }
func (*fmtCmd) Usage() string {
	return `bkb fmt

  Reloads the data files, rebuilds the holdings store from the trade
  ledger, and writes everything back in canonical form: sorted trades,
  fixed key order, one trade per line. Unlike the other commands it
  accepts a drifted holdings store, and repairs it.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := brokerbook.Recover(*dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := book.RebuildHoldings(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %s.\n", *dataDir)
	return subcommands.ExitSuccess
}
