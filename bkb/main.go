// Command bkb manages a stock broker's book: clients, trades and holdings.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/openbroker/brokerbook/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for the subcommands and their most
// common flags. It returns immediately unless the shell is asking.
func completion() {
	date := predict.Something
	client := predict.Something
	trade := map[string]complete.Predictor{
		"c":  client,
		"i":  predict.Something,
		"q":  predict.Something,
		"bp": predict.Something,
		"sp": predict.Something,
		"t":  predict.Set{"NSE", "BSE", "FUTURE", "MCX", "OPTIONS", "CURRENCY", "INTRADAY", "DELIVERY"},
		"d":  date,
	}

	bkb := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"add-client": {Flags: map[string]complete.Predictor{"id": client, "name": predict.Something, "brokerage": predict.Something}},
			"clients":    {},
			"buy":        {Flags: trade},
			"sell":       {Flags: trade},
			"summary":    {Flags: map[string]complete.Predictor{"c": client, "m": predict.Set{"buy", "sell"}}},
			"report":     {Flags: map[string]complete.Predictor{"c": client, "s": date, "e": date, "pdf": predict.Files("*")}},
			"day":        {Flags: map[string]complete.Predictor{"d": date}},
			"period":     {},
			"holdings":   {Flags: map[string]complete.Predictor{"c": client}},
			"fmt":        {},
			"topic":      {Args: predict.Something},
		},
	}
	bkb.Complete("bkb")
}
