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

type dayCmd struct {
	day dateFlag
}

func (*dayCmd) Name() string     { return "day" }
func (*dayCmd) Synopsis() string { return "all trades on one day, with totals" }
func (*dayCmd) Usage() string {
	return `bkb day [-d <date>]

  Prints every client's trades on exactly one day, with buy, sell and
  profit totals. Defaults to today.
`
}

func (c *dayCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.day, "d", "Day to slice, like 2026-08-30. Defaults to today.")
}

func (c *dayCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := c.day.Date
	if day.IsZero() {
		day = brokerbook.Today()
	}

	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Slice(fmt.Sprintf("Trades on %s", day), book.DateSlice(day)))
	return subcommands.ExitSuccess
}
