package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/openbroker/brokerbook"
)

type sellCmd struct{ recordCmd }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell trade for a client" }
func (*sellCmd) Usage() string {
	return `bkb sell -c <client> -i <instrument> -q <quantity> -bp <price> -sp <price> [-t <type>] [-d <date>]

  Records a trade where the client sells to the market. The sell side pays
  the client's brokerage rate, the market side pays none. The client's
  position in the instrument decreases by the quantity, possibly below zero.
`
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	c.mode = brokerbook.Sell
	return c.recordCmd.Execute(ctx, f, args...)
}
