package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	keiba "github.com/nazotarou/keiba-dashboard"
	"github.com/nazotarou/keiba-dashboard/renderer"
)

// The report commands share one shape: decode the document, render a
// derived view as markdown, print it.

func runReport(render func(*keiba.Ledger) string) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(render(ledger))
	return subcommands.ExitSuccess
}

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the grand performance summary" }
func (*summaryCmd) Usage() string {
	return `kd summary

  Displays total invest, payout, profit and return on investment over every
  bet in the ledger.

Usage Examples:
$ kd summary

`
}
func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}
func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runReport(renderer.SummaryMarkdown)
}

type dailyCmd struct{}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the daily rollups with cumulative profit" }
func (*dailyCmd) Usage() string {
	return `kd daily

  Displays one row per racing day: invest, payout, profit and the running
  cumulative profit, ascending by date.

Usage Examples:
$ kd daily

`
}
func (*dailyCmd) SetFlags(_ *flag.FlagSet) {}
func (*dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runReport(renderer.DailyMarkdown)
}

type monthlyCmd struct{}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the monthly rollups" }
func (*monthlyCmd) Usage() string {
	return `kd monthly

  Displays one row per month: invest, payout, profit and return on
  investment, ascending by month.

Usage Examples:
$ kd monthly

`
}
func (*monthlyCmd) SetFlags(_ *flag.FlagSet) {}
func (*monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runReport(renderer.MonthlyMarkdown)
}

type racesCmd struct{}

func (*racesCmd) Name() string     { return "races" }
func (*racesCmd) Synopsis() string { return "display every race with its roster and bets" }
func (*racesCmd) Usage() string {
	return `kd races

  Displays every recorded race, its runner roster and the bets placed on it.

Usage Examples:
$ kd races

`
}
func (*racesCmd) SetFlags(_ *flag.FlagSet) {}
func (*racesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runReport(renderer.RacesMarkdown)
}
