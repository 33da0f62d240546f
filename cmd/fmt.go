package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "recompute all rollups and rewrite the document in canonical form" }
func (*fmtCmd) Usage() string {
	return `kd fmt

  Reads the ledger document, recomputes the daily, monthly and grand rollups
  for every date that has races, and writes the document back in its
  canonical two-space-indented form. Useful after hand-editing races.

Usage Examples:
$ kd fmt

`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ledger.RecomputeAll()

	if err := EncodeLedgerFile(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Ledger formatted.")
	return subcommands.ExitSuccess
}
