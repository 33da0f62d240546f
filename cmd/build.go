package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	keiba "github.com/nazotarou/keiba-dashboard"
)

type buildCmd struct{}

func (*buildCmd) Name() string     { return "build" }
func (*buildCmd) Synopsis() string { return "fill missing race rosters from the JV-Link database" }
func (*buildCmd) Usage() string {
	return `kd build

  Walks every race in the ledger and, for races with no roster yet, looks up
  the horse names of the runners its bets reference. Races with a roster are
  left alone: manual edits always win. A missing JV-Link database degrades
  to no enrichment.

Usage Examples:
$ kd build

`
}

func (*buildCmd) SetFlags(_ *flag.FlagSet) {}

func (*buildCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var lookup keiba.NameLookup
	if db := OpenLookup(); db != nil {
		defer db.Close()
		lookup = db
	}

	updated := ledger.Enrich(lookup)
	if updated == 0 {
		fmt.Println("No rosters to populate.")
		return subcommands.ExitSuccess
	}

	if err := EncodeLedgerFile(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Populated rosters for %d races.\n", updated)
	return subcommands.ExitSuccess
}
