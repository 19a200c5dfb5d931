package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/openbroker/brokerbook"
	"github.com/openbroker/brokerbook/export"
	"github.com/openbroker/brokerbook/renderer"
)

type reportCmd struct {
	client string
	start  dateFlag
	end    dateFlag
	pdf    string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "a client's trades over a date range, with valued holdings" }
func (*reportCmd) Usage() string {
	return `bkb report -c <client> -s <start> -e <end> [-pdf <prefix>]

  Prints the client's trades between the two dates, both ends included,
  followed by a valuation of its current holdings at the latest close.
  Positions whose quote cannot be fetched are valued at zero.

  With -pdf, also writes <prefix>-trades.pdf and <prefix>-holdings.pdf.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "c", "", "Client id to report on.")
	f.Var(&c.start, "s", "Start date, included.")
	f.Var(&c.end, "e", "End date, included.")
	f.StringVar(&c.pdf, "pdf", "", "Also export the tables as PDF files with this name prefix.")
}

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	r, err := book.RangeReport(c.client, c.start.Date, c.end.Date, brokerbook.NewNSEQuoter())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Range(&r))

	if c.pdf != "" {
		if err := c.exportPDF(&r); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func (c *reportCmd) exportPDF(r *brokerbook.RangeReport) error {
	title := fmt.Sprintf("%s Report %s to %s", r.ClientID, r.From, r.To)
	if err := export.PDF(brokerbook.TradeTable(r.Trades), title, c.pdf+"-trades.pdf"); err != nil {
		return err
	}
	holdings := fmt.Sprintf("%s Holdings as of %s", r.ClientID, r.To)
	if err := export.PDF(brokerbook.HoldingsTable(r.ClientID, r.Holdings), holdings, c.pdf+"-holdings.pdf"); err != nil {
		return err
	}
	fmt.Printf("Exported %s-trades.pdf and %s-holdings.pdf.\n", c.pdf, c.pdf)
	return nil
}
