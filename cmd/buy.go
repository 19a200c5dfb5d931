package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/openbroker/brokerbook"
)

type buyCmd struct{ recordCmd }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy trade for a client" }
func (*buyCmd) Usage() string {
	return `bkb buy -c <client> -i <instrument> -q <quantity> -bp <price> -sp <price> [-t <type>] [-d <date>]

  Records a trade where the client buys from the market. The buy side pays
  the client's brokerage rate, the market side pays none. The client's
  position in the instrument increases by the quantity.
`
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	c.mode = brokerbook.Buy
	return c.recordCmd.Execute(ctx, f, args...)
}
