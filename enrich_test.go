package keiba

import (
	"errors"
	"reflect"
	"testing"
)

// fakeLookup serves canned names keyed by "raceDate/venueCode/raceNum".
type fakeLookup struct {
	races map[string]map[string]string
	err   error
	calls int
}

func (f *fakeLookup) HorseNames(raceDate, venueCode, raceNum string, nums []string) (map[string]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	all := f.races[raceDate+"/"+venueCode+"/"+raceNum]
	horses := make(map[string]string)
	for _, num := range nums {
		if name, ok := all[num]; ok {
			horses[num] = name
		}
	}
	return horses, nil
}

func TestEnrich(t *testing.T) {
	l := NewLedger()
	l.Races["2026-01-05_中山5R"] = &Race{
		Date: "2026-01-05", Name: "中山5R",
		Horses: map[string]string{},
		Bets: []Bet{
			{Type: "馬連", Selection: "03-12"},
			{Type: "単勝", Selection: "3"},
		},
	}
	lookup := &fakeLookup{races: map[string]map[string]string{
		"20260105/06/05": {"03": "ハヤテマル", "12": "キタノオーカン", "01": "unrelated"},
	}}

	if got := l.Enrich(lookup); got != 1 {
		t.Fatalf("Enrich() = %d, want 1", got)
	}
	want := map[string]string{"03": "ハヤテマル", "12": "キタノオーカン"}
	if got := l.Races["2026-01-05_中山5R"].Horses; !reflect.DeepEqual(got, want) {
		t.Errorf("Horses = %v, want %v (restricted to referenced runners)", got, want)
	}
}

func TestEnrich_NeverOverwritesRoster(t *testing.T) {
	manual := map[string]string{"03": "手入力の馬"}
	l := NewLedger()
	l.Races["2026-01-05_中山5R"] = &Race{
		Date: "2026-01-05", Name: "中山5R",
		Horses: manual,
		Bets:   []Bet{{Type: "単勝", Selection: "03"}},
	}
	lookup := &fakeLookup{races: map[string]map[string]string{
		"20260105/06/05": {"03": "ハヤテマル"},
	}}

	if got := l.Enrich(lookup); got != 0 {
		t.Fatalf("Enrich() = %d, want 0", got)
	}
	if lookup.calls != 0 {
		t.Errorf("lookup called %d times for a populated roster, want 0", lookup.calls)
	}
	if got := l.Races["2026-01-05_中山5R"].Horses; !reflect.DeepEqual(got, manual) {
		t.Errorf("Horses = %v, want manual roster untouched", got)
	}
}

func TestEnrich_Idempotent(t *testing.T) {
	l := NewLedger()
	l.Races["2026-01-05_中山5R"] = &Race{
		Date: "2026-01-05", Name: "中山5R",
		Horses: map[string]string{},
		Bets:   []Bet{{Type: "単勝", Selection: "03"}},
	}
	lookup := &fakeLookup{races: map[string]map[string]string{
		"20260105/06/05": {"03": "ハヤテマル"},
	}}

	first := l.Enrich(lookup)
	second := l.Enrich(lookup)
	if first != 1 || second != 0 {
		t.Errorf("Enrich twice = %d, %d, want 1, 0", first, second)
	}
}

func TestEnrich_SkipsUnparseableKeys(t *testing.T) {
	l := NewLedger()
	l.Races["not-a-race-key"] = &Race{
		Horses: map[string]string{},
		Bets:   []Bet{{Type: "単勝", Selection: "03"}},
	}
	lookup := &fakeLookup{}
	if got := l.Enrich(lookup); got != 0 {
		t.Errorf("Enrich() = %d, want 0 (key skipped, not fatal)", got)
	}
	if lookup.calls != 0 {
		t.Errorf("lookup called %d times for an unparseable key, want 0", lookup.calls)
	}
}

func TestEnrich_EmptyAnswerLeavesRosterEmpty(t *testing.T) {
	l := NewLedger()
	l.Races["2026-01-05_中山5R"] = &Race{
		Date: "2026-01-05", Name: "中山5R",
		Horses: map[string]string{},
		Bets:   []Bet{{Type: "単勝", Selection: "03"}},
	}

	// Unknown race: the lookup answers with nothing.
	if got := l.Enrich(&fakeLookup{}); got != 0 {
		t.Errorf("Enrich() = %d, want 0", got)
	}
	if got := len(l.Races["2026-01-05_中山5R"].Horses); got != 0 {
		t.Errorf("Horses has %d entries, want 0", got)
	}
}

func TestEnrich_LookupErrorIsNonFatal(t *testing.T) {
	l := NewLedger()
	l.Races["2026-01-05_中山5R"] = &Race{
		Date: "2026-01-05", Name: "中山5R",
		Horses: map[string]string{},
		Bets:   []Bet{{Type: "単勝", Selection: "03"}},
	}
	lookup := &fakeLookup{err: errors.New("database is locked")}
	if got := l.Enrich(lookup); got != 0 {
		t.Errorf("Enrich() = %d, want 0", got)
	}
}

func TestEnrich_NilLookup(t *testing.T) {
	l := NewLedger()
	l.Races["2026-01-05_中山5R"] = &Race{
		Date: "2026-01-05", Name: "中山5R",
		Horses: map[string]string{},
		Bets:   []Bet{{Type: "単勝", Selection: "03"}},
	}
	if got := l.Enrich(nil); got != 0 {
		t.Errorf("Enrich(nil) = %d, want 0", got)
	}
}

func TestEnrich_NoBetsNoLookup(t *testing.T) {
	l := NewLedger()
	l.Races["2026-01-05_中山5R"] = &Race{
		Date: "2026-01-05", Name: "中山5R",
		Horses: map[string]string{},
		Bets:   []Bet{},
	}
	lookup := &fakeLookup{}
	if got := l.Enrich(lookup); got != 0 {
		t.Errorf("Enrich() = %d, want 0", got)
	}
	if lookup.calls != 0 {
		t.Errorf("lookup called %d times for a race with no bets, want 0", lookup.calls)
	}
}
