package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type addClientCmd struct {
	id        string
	name      string
	brokerage string
}

func (*addClientCmd) Name() string     { return "add-client" }
func (*addClientCmd) Synopsis() string { return "register a client with its brokerage rate" }
func (*addClientCmd) Usage() string {
	return `bkb add-client -id <id> -name <name> -brokerage <percent>

  Registers a client, or overwrites an existing registration with the same id.
  The brokerage percentage is applied to both legs of the client's trades.
`
}

func (c *addClientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Client id, the unique key used on trades and reports.")
	f.StringVar(&c.name, "name", "", "Client display name.")
	f.StringVar(&c.brokerage, "brokerage", "", "Brokerage percentage, like 0.5.")
}

func (c *addClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := strconv.ParseFloat(c.brokerage, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: brokerage must be numeric: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := book.Register(c.id, c.name, rate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Client %s (%s) added.\n", client.Name, client.ID)
	return subcommands.ExitSuccess
}
