package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/google/subcommands"

	keiba "github.com/nazotarou/keiba-dashboard"
	"github.com/nazotarou/keiba-dashboard/renderer"
)

// betTypeChoices is what the recording front end offers. The validator
// additionally tolerates the historical 単複 label.
var betTypeChoices = []string{"単勝", "複勝", "馬連", "ワイド", "枠連", "馬単", "3連複", "3連単"}

var (
	// input-side selection forms; stricter than the stored-document rules.
	inputSelectionRE        = regexp.MustCompile(`^\d{1,2}(-\d{1,2}){0,2}$`)
	inputBracketSelectionRE = regexp.MustCompile(`^\d(-\d)?$`)
)

type addCmd struct {
	date      string
	venue     string
	race      int
	betType   string
	selection string
	amount    int
	payout    int
	weapon    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a bet and refresh every rollup" }
func (*addCmd) Usage() string {
	return `kd add -d <date> -v <venue> -r <race> -t <type> -s <selection> -a <amount> [-p <payout>] [-w <weapon>]

  Appends one bet to the ledger document. The race entry is created on the
  first bet for that date and venue, runner names are looked up from the
  JV-Link database, and the daily, monthly and grand rollups are recomputed
  before the document is written back.

Usage Examples:
# A 1000 yen win bet on runner 5, missed.
$ kd add -d 2026-02-01 -v 東京 -r 5 -t 単勝 -s 05 -a 1000

# A quinella that paid out.
$ kd add -d 2026-02-01 -v 中山 -r 11 -t 馬連 -s 03-12 -a 500 -p 3200

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Race date (YYYY-MM-DD).")
	f.StringVar(&c.venue, "v", "", "Venue name, e.g. 東京 or 中山.")
	f.IntVar(&c.race, "r", 0, "Race number (1-12).")
	f.StringVar(&c.betType, "t", "", "Bet type: "+strings.Join(betTypeChoices, "/")+".")
	f.StringVar(&c.selection, "s", "", "Selection, e.g. 05, 05-11 or 05-11-13.")
	f.IntVar(&c.amount, "a", 0, "Amount staked in yen.")
	f.IntVar(&c.payout, "p", 0, "Payout in yen; leave 0 for a miss.")
	f.StringVar(&c.weapon, "w", "", "Weapon tag, if any.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date, err := keiba.ParseDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if _, ok := keiba.VenueCode(c.venue); !ok {
		fmt.Fprintf(os.Stderr, "unknown venue %q (choices: %s)\n", c.venue, strings.Join(keiba.VenueNames(), ", "))
		return subcommands.ExitUsageError
	}
	if c.race < 1 || c.race > 12 {
		fmt.Fprintf(os.Stderr, "race number %d out of range (1-12)\n", c.race)
		return subcommands.ExitUsageError
	}
	if !validChoice(c.betType) {
		fmt.Fprintf(os.Stderr, "unknown bet type %q (choices: %s)\n", c.betType, strings.Join(betTypeChoices, ", "))
		return subcommands.ExitUsageError
	}
	if !validInputSelection(c.selection, c.betType) {
		fmt.Fprintf(os.Stderr, "malformed selection %q for %s\n", c.selection, c.betType)
		return subcommands.ExitUsageError
	}
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "amount must be a positive number of yen")
		return subcommands.ExitUsageError
	}
	if c.payout < 0 {
		fmt.Fprintln(os.Stderr, "payout cannot be negative")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Best-effort card lookup, for roster names on the selected runners.
	card := map[string]string{}
	venueCode, _ := keiba.VenueCode(c.venue)
	if db := OpenLookup(); db != nil {
		defer db.Close()
		if runners, err := db.Runners(date.Compact(), venueCode, c.race); err == nil {
			card = runners
		} else {
			fmt.Fprintf(os.Stderr, "warning: JV-Link query failed: %v\n", err)
		}
	}

	key := keiba.RaceKey(date, c.venue, c.race)
	race := ledger.EnsureRace(key, date.String(), keiba.RaceName(c.venue, c.race))

	nums := keiba.ParseSelection(c.selection)
	for _, num := range nums {
		if _, ok := race.Horses[num]; ok {
			continue
		}
		if name := card[num]; name != "" {
			race.Horses[num] = name
		}
	}

	bet := keiba.NewBet(c.betType, c.selection, c.amount, c.payout, c.weapon)
	race.Bets = append(race.Bets, bet)

	ledger.LastUpdated = date.String()
	ledger.Recompute(date.String(), date.WeekdayKanji())

	if err := EncodeLedgerFile(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	c.printConfirmation(key, race, bet, nums)
	return subcommands.ExitSuccess
}

// printConfirmation mirrors what was appended, with runner names when known.
func (c *addCmd) printConfirmation(key string, race *keiba.Race, bet keiba.Bet, nums []string) {
	var names []string
	for _, num := range nums {
		if name := race.Horses[num]; name != "" {
			names = append(names, name)
		}
	}
	fmt.Printf("Added to %s: %s %s", key, bet.Type, bet.Selection)
	if len(names) > 0 {
		fmt.Printf(" (%s)", strings.Join(names, " / "))
	}
	fmt.Printf(", %s staked", renderer.Yen(bet.Amount))
	if bet.IsHit() {
		fmt.Printf(", paid %s (%s)", renderer.Yen(bet.Payout), renderer.SignedYen(bet.Payout-bet.Amount))
	}
	fmt.Println()
}

func validChoice(betType string) bool {
	for _, t := range betTypeChoices {
		if t == betType {
			return true
		}
	}
	return false
}

func validInputSelection(selection, betType string) bool {
	if betType == keiba.BracketQuinella {
		return inputBracketSelectionRE.MatchString(selection)
	}
	return inputSelectionRE.MatchString(selection)
}
