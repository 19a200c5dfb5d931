package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/openbroker/brokerbook/renderer"
)

type periodCmd struct{}

func (*periodCmd) Name() string     { return "period" }
func (*periodCmd) Synopsis() string { return "today's and the trailing week's totals" }
func (*periodCmd) Usage() string {
	return `bkb period

  Prints the two fixed aggregations over all clients: trades recorded
  today, and trades over the trailing seven days.
`
}

func (*periodCmd) SetFlags(*flag.FlagSet) {}

func (*periodCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Periods(book.PeriodSummary()))
	return subcommands.ExitSuccess
}
