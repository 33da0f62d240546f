package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type validateCmd struct{}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check every bet's type and selection fields" }
func (*validateCmd) Usage() string {
	return `kd validate

  Checks the structural conformance of every bet in the ledger: the bet type
  must be one of the known ticket labels, and the selection must be a
  well-formed runner combination. Exits non-zero when anything is malformed.

Usage Examples:
$ kd validate

`
}

func (*validateCmd) SetFlags(_ *flag.FlagSet) {}

func (*validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	errs := ledger.Validate()
	total := ledger.TotalBets()

	if len(errs) == 0 {
		fmt.Printf("OK: %d bets, no errors.\n", total)
		return subcommands.ExitSuccess
	}

	// Errors arrive grouped by ascending race key already.
	lastKey := ""
	n := 0
	for _, e := range errs {
		if e.RaceKey != lastKey {
			lastKey = e.RaceKey
			n++
			fmt.Printf("%d. %s\n", n, e.RaceKey)
		}
		fmt.Printf("   - %s: %q (%s)\n", e.Field, e.Value, e.Reason)
	}
	fmt.Printf("%d errors in %d bets.\n", len(errs), total)
	return subcommands.ExitFailure
}
