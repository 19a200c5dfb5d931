// Package cmd implements the CLI application to manage a broker book.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/openbroker/brokerbook"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addClientCmd{}, "clients")
	c.Register(&clientsCmd{}, "clients")

	c.Register(&buyCmd{}, "trades")
	c.Register(&sellCmd{}, "trades")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&dayCmd{}, "reports")
	c.Register(&periodCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", defaultDataDir(), "Path to the folder holding clients.json, trades.jsonl and holdings.json")

func defaultDataDir() string {
	if dir := os.Getenv("BROKERBOOK_DATA"); dir != "" {
		return dir
	}
	return "."
}

// OpenBook loads the book from the app data directory.
func OpenBook() (*brokerbook.Book, error) {
	return brokerbook.Open(*dataDir)
}
