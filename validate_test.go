package keiba

import "testing"

func TestValidBetType(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		ok   bool
	}{
		{name: "win", in: "単勝", ok: true},
		{name: "place", in: "複勝", ok: true},
		{name: "trifecta", in: "3連単", ok: true},
		{name: "trio", in: "3連複", ok: true},
		{name: "historical win-place", in: "単複", ok: true},
		{name: "empty", in: "", ok: false},
		{name: "selection pasted as type", in: "03-12", ok: false},
		{name: "unknown label", in: "ボックス", ok: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if ok, _ := validBetType(tc.in); ok != tc.ok {
				t.Errorf("validBetType(%q) = %v, want %v", tc.in, ok, tc.ok)
			}
		})
	}
}

func TestValidSelection(t *testing.T) {
	testCases := []struct {
		name    string
		sel     string
		betType string
		ok      bool
	}{
		{name: "single", sel: "5", betType: "単勝", ok: true},
		{name: "padded single", sel: "05", betType: "単勝", ok: true},
		{name: "pair", sel: "03-15", betType: "馬連", ok: true},
		{name: "triple", sel: "03-06-15", betType: "3連複", ok: true},
		{name: "four numbers", sel: "1-2-3-4", betType: "3連複", ok: false},
		{name: "empty", sel: "", betType: "単勝", ok: false},
		{name: "placeholder dash", sel: "-", betType: "単勝", ok: false},
		{name: "zero", sel: "0", betType: "単勝", ok: false},
		{name: "comma separated", sel: "3,6", betType: "馬連", ok: false},
		{name: "unit suffix", sel: "5番", betType: "単勝", ok: false},
		{name: "bracket form for bracket quinella", sel: "枠5-5", betType: "枠連", ok: true},
		{name: "plain pair for bracket quinella", sel: "5-5", betType: "枠連", ok: true},
		{name: "bracket form for win", sel: "枠5-5", betType: "単勝", ok: false},
		{name: "bracket form for quinella", sel: "枠5-5", betType: "馬連", ok: false},
		{name: "bare bracket prefix", sel: "枠", betType: "枠連", ok: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if ok, _ := validSelection(tc.sel, tc.betType); ok != tc.ok {
				t.Errorf("validSelection(%q, %q) = %v, want %v", tc.sel, tc.betType, ok, tc.ok)
			}
		})
	}
}

func TestLedger_Validate(t *testing.T) {
	l := NewLedger()
	l.Races["2026-01-05_中山5R"] = &Race{
		Date: "2026-01-05", Name: "中山5R",
		Bets: []Bet{
			{Type: "単勝", Selection: "05"},     // fine
			{Type: "03-12", Selection: "0"},   // both fields bad
			{Type: "馬連", Selection: "3,6"},    // bad selection
		},
	}
	l.Races["2026-01-04_中山1R"] = &Race{
		Date: "2026-01-04", Name: "中山1R",
		Bets: []Bet{{Type: "ワイド", Selection: "01-02"}},
	}

	errs := l.Validate()
	if len(errs) != 3 {
		t.Fatalf("Validate() returned %d errors, want 3: %v", len(errs), errs)
	}
	// Grouped by ascending race key; the clean race contributes nothing.
	for _, e := range errs {
		if e.RaceKey != "2026-01-05_中山5R" {
			t.Errorf("error on race %q, want all on 2026-01-05_中山5R", e.RaceKey)
		}
	}
	if errs[0].Field != "type" || errs[0].Value != "03-12" {
		t.Errorf("errs[0] = %+v, want the pasted-selection type first", errs[0])
	}
}

func TestLedger_Validate_Clean(t *testing.T) {
	l := NewLedger()
	l.Races["2026-01-04_中山1R"] = &Race{
		Date: "2026-01-04", Name: "中山1R",
		Bets: []Bet{{Type: "ワイド", Selection: "01-02"}},
	}
	if errs := l.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}
