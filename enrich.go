package keiba

import (
	"github.com/rs/zerolog/log"
)

// NameLookup resolves runner numbers of one race to horse names. The
// JV-Link database is the production implementation; a nil or erroring
// lookup degrades to no enrichment, never to a failure.
type NameLookup interface {
	// HorseNames returns the name of each requested runner number for the
	// race identified by compact date, venue code and two-digit race
	// number. Numbers the backing store does not know are simply absent
	// from the result.
	HorseNames(raceDate, venueCode, raceNum string, nums []string) (map[string]string, error)
}

// Enrich populates the roster of every race that has none from the runner
// numbers its bets reference. A race whose roster is already non-empty is
// never touched: manual edits take precedence over the lookup. Returns the
// number of races whose roster was populated.
//
// Races with unparseable keys are skipped with a diagnostic. Enrichment is
// idempotent.
func (l *Ledger) Enrich(lookup NameLookup) int {
	if lookup == nil {
		log.Warn().Msg("name lookup unavailable, rosters will not be populated")
		return 0
	}

	updated := 0
	for _, key := range l.RaceKeys() {
		race := l.Races[key]
		if len(race.Horses) > 0 {
			continue
		}

		raceDate, venueCode, raceNum, err := ParseRaceKey(key)
		if err != nil {
			log.Warn().Err(err).Str("race", key).Msg("skipping race during enrichment")
			continue
		}

		nums := RunnerNumbers(race.Bets)
		if len(nums) == 0 {
			continue
		}

		horses, err := lookup.HorseNames(raceDate, venueCode, raceNum, nums)
		if err != nil {
			log.Warn().Err(err).Str("race", key).Msg("name lookup failed")
			continue
		}
		if len(horses) == 0 {
			continue
		}

		race.Horses = horses
		updated++
		log.Info().Str("race", key).Int("horses", len(horses)).Msg("roster populated")
	}
	return updated
}
