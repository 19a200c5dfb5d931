package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/openbroker/brokerbook"
	"github.com/openbroker/brokerbook/renderer"
)

type summaryCmd struct {
	client string
	mode   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "whole-history totals for one client" }
func (*summaryCmd) Usage() string {
	return `bkb summary -c <client> [-m buy|sell]

  Prints the client's totals over every trade it took part in: buy values
  where it bought, sell values where it sold, and the net profit and loss.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "c", "", "Client id to summarize.")
	f.StringVar(&c.mode, "m", "buy", "Mode label for the summary, buy or sell.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mode, err := brokerbook.ParseTradeMode(c.mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Summary(book.SummaryForClient(c.client, mode)))
	return subcommands.ExitSuccess
}
