// Command kd maintains a personal horse-race betting ledger: it records
// bets, fills race rosters from a JV-Link database, and keeps the daily,
// monthly and grand rollups of one JSON document consistent.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nazotarou/keiba-dashboard/cmd"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// Shell completion; run once with COMP_INSTALL=1 to install.
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	completion := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"config":    predict.Files("*.yaml"),
			"data-file": predict.Files("*.json"),
			"jvlink-db": predict.Files("*.db"),
		},
	}
	completion.Complete("kd")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
