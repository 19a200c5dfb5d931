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

// recordCmd holds the flags shared by the buy and sell subcommands. The two
// only differ by the trade mode they record.
type recordCmd struct {
	mode brokerbook.TradeMode

	client     string
	instrument string
	quantity   int64
	buyPrice   float64
	sellPrice  float64
	typ        string
	day        dateFlag
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "c", "", "Client id taking the trade.")
	f.StringVar(&c.instrument, "i", "", "Instrument symbol, like RELIANCE.")
	f.Int64Var(&c.quantity, "q", 0, "Quantity of shares.")
	f.Float64Var(&c.buyPrice, "bp", 0, "Buy price per share.")
	f.Float64Var(&c.sellPrice, "sp", 0, "Sell price per share.")
	f.StringVar(&c.typ, "t", string(brokerbook.NSE), "Trade type, one of "+typeList()+".")
	f.Var(&c.day, "d", "Trade date like 2026-08-30, defaults to today.")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := brokerbook.ParseTradeType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	t, err := book.RecordTrade(c.client, c.mode, c.instrument, c.quantity, c.buyPrice, c.sellPrice, typ, c.day.Date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Trade(t))
	return subcommands.ExitSuccess
}

func typeList() string {
	s := ""
	for i, t := range brokerbook.TradeTypes() {
		if i > 0 {
			s += ", "
		}
		s += string(t)
	}
	return s
}

// dateFlag implements flag.Value for an optional trade date.
type dateFlag struct{ brokerbook.Date }

func (d *dateFlag) Set(s string) (err error) {
	d.Date, err = brokerbook.ParseDate(s)
	return err
}

func (d *dateFlag) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Date.String()
}
