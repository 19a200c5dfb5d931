package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clientsCmd struct{}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "list registered client ids" }
func (*clientsCmd) Usage() string {
	return `bkb clients

  Lists the registered client ids in sorted order.
`
}

func (*clientsCmd) SetFlags(*flag.FlagSet) {}

func (*clientsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, id := range book.ClientIDs() {
		client, _ := book.Lookup(id)
		fmt.Printf("%s\t%s\t%s%%\n", client.ID, client.Name, client.Brokerage)
	}
	return subcommands.ExitSuccess
}
