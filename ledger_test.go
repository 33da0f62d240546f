package keiba

import (
	"reflect"
	"testing"
)

func TestNewBet(t *testing.T) {
	hit := NewBet("単勝", "05", 1000, 2500, "")
	if hit.Result != Hit {
		t.Errorf("Result = %q, want %q for a positive payout", hit.Result, Hit)
	}
	if hit.Weapon != NoWeapon {
		t.Errorf("Weapon = %q, want %q when omitted", hit.Weapon, NoWeapon)
	}
	if !hit.IsHit() {
		t.Error("IsHit() = false for a positive payout")
	}

	miss := NewBet("馬連", "03-12", 500, 0, "差し")
	if miss.Result != "-" {
		t.Errorf("Result = %q, want %q for a zero payout", miss.Result, "-")
	}
	if miss.Weapon != "差し" {
		t.Errorf("Weapon = %q, want kept", miss.Weapon)
	}
	if miss.IsHit() {
		t.Error("IsHit() = true for a zero payout")
	}
}

func TestLedger_EnsureRace(t *testing.T) {
	l := NewLedger()
	race := l.EnsureRace("2026-01-05_中山5R", "2026-01-05", "中山5R")
	if race.Date != "2026-01-05" || race.Name != "中山5R" {
		t.Errorf("race = %+v", race)
	}
	if race.Horses == nil || race.Bets == nil {
		t.Error("race collections not initialized")
	}

	// A second call returns the same race, unchanged.
	race.Title = "G3"
	again := l.EnsureRace("2026-01-05_中山5R", "other", "other")
	if again != race || again.Title != "G3" || again.Date != "2026-01-05" {
		t.Errorf("EnsureRace created a new race: %+v", again)
	}
}

func TestLedger_AppendBet(t *testing.T) {
	l := NewLedger()
	l.AppendBet("2026-01-05_中山5R", "2026-01-05", "中山5R", NewBet("単勝", "05", 1000, 0, ""))
	l.AppendBet("2026-01-05_中山5R", "2026-01-05", "中山5R", NewBet("複勝", "05", 500, 650, ""))

	race := l.Race("2026-01-05_中山5R")
	if race == nil || len(race.Bets) != 2 {
		t.Fatalf("race = %+v, want 2 bets", race)
	}
	if l.TotalBets() != 2 {
		t.Errorf("TotalBets() = %d, want 2", l.TotalBets())
	}
}

func TestLedger_RaceKeys_Sorted(t *testing.T) {
	l := NewLedger()
	for _, key := range []string{"2026-02-01_東京5R", "2026-01-05_中山5R", "2026-01-05_中山11R"} {
		l.EnsureRace(key, "", "")
	}
	want := []string{"2026-01-05_中山11R", "2026-01-05_中山5R", "2026-02-01_東京5R"}
	if got := l.RaceKeys(); !reflect.DeepEqual(got, want) {
		t.Errorf("RaceKeys() = %v, want %v", got, want)
	}
}
