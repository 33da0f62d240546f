package keiba

import (
	"encoding/json"
	"maps"
	"slices"
)

// Hit is the result label stored on a winning bet.
const Hit = "的中"

// NoWeapon is the placeholder stored when a bet carries no weapon tag.
const NoWeapon = "-"

// Bet is a single wager placed on a race.
//
// Result is Hit iff Payout > 0; everything else carries "-". Use NewBet to
// keep that invariant.
type Bet struct {
	Type      string `json:"type"`
	Selection string `json:"selection"`
	Amount    int    `json:"amount"`
	Payout    int    `json:"payout"`
	Weapon    string `json:"weapon"`
	Result    string `json:"result"`
}

// NewBet builds a Bet, deriving the result from the payout.
func NewBet(betType, selection string, amount, payout int, weapon string) Bet {
	result := "-"
	if payout > 0 {
		result = Hit
	}
	if weapon == "" {
		weapon = NoWeapon
	}
	return Bet{
		Type:      betType,
		Selection: selection,
		Amount:    amount,
		Payout:    payout,
		Weapon:    weapon,
		Result:    result,
	}
}

// IsHit reports whether the bet paid out.
func (b Bet) IsHit() bool { return b.Payout > 0 }

// Race groups the bets placed on a single race, together with the roster of
// runners (number to horse name) referenced by those bets.
type Race struct {
	Date   string            `json:"date"`
	Name   string            `json:"name"`
	Title  string            `json:"title"`
	Horses map[string]string `json:"horses"`
	Bets   []Bet             `json:"bets"`
}

// DailyEntry is the derived rollup for one racing day.
type DailyEntry struct {
	Date       string `json:"date"`
	DayOfWeek  string `json:"dayOfWeek"`
	Invest     int    `json:"invest"`
	Payout     int    `json:"payout"`
	Profit     int    `json:"profit"`
	Cumulative int    `json:"cumulative"`
	Note       string `json:"note"`
}

// MonthlyEntry is the derived rollup for one month of daily entries.
type MonthlyEntry struct {
	Month  string `json:"month"`
	Invest int    `json:"invest"`
	Payout int    `json:"payout"`
	Profit int    `json:"profit"`
	ROI    int    `json:"roi"`
}

// Summary is the grand total over every bet in the ledger.
type Summary struct {
	TotalInvest int `json:"totalInvest"`
	TotalPayout int `json:"totalPayout"`
	TotalProfit int `json:"totalProfit"`
	ROI         int `json:"roi"`
}

// Ledger is the persisted betting document.
//
// Races own all raw data; Summary, Monthly and Daily are derived views,
// never hand-edited and fully recomputed on every mutation. Top-level
// fields this package does not model (the dashboard's weapon statistics,
// for instance) are preserved verbatim across a decode/encode round-trip.
type Ledger struct {
	LastUpdated string
	Summary     Summary
	Monthly     []MonthlyEntry
	Daily       []DailyEntry
	Races       map[string]*Race

	extra map[string]json.RawMessage // unknown top-level fields, kept as-is
}

// NewLedger creates an empty ledger with the document skeleton the dashboard
// front end expects, including its auxiliary fields.
func NewLedger() *Ledger {
	return &Ledger{
		Monthly: []MonthlyEntry{},
		Daily:   []DailyEntry{},
		Races:   make(map[string]*Race),
		extra: map[string]json.RawMessage{
			"weaponStats":     json.RawMessage(`{}`),
			"weaponBreakdown": json.RawMessage(`[]`),
		},
	}
}

// Race returns the race stored under key, or nil if unknown.
func (l *Ledger) Race(key string) *Race {
	return l.Races[key]
}

// RaceKeys returns all race keys in ascending order. Iterating races in
// sorted key order keeps every derived value deterministic.
func (l *Ledger) RaceKeys() []string {
	return slices.Sorted(maps.Keys(l.Races))
}

// EnsureRace returns the race stored under key, creating an empty one on
// first use. A race comes to exist when the first bet is placed on it.
func (l *Ledger) EnsureRace(key, date, name string) *Race {
	if race, ok := l.Races[key]; ok {
		return race
	}
	race := &Race{
		Date:   date,
		Name:   name,
		Horses: make(map[string]string),
		Bets:   []Bet{},
	}
	l.Races[key] = race
	return race
}

// AppendBet appends a bet to the race under key, creating the race if needed.
// Bets are append-only; there is no update or delete.
func (l *Ledger) AppendBet(key, date, name string, bet Bet) {
	race := l.EnsureRace(key, date, name)
	race.Bets = append(race.Bets, bet)
}

// TotalBets counts every bet in every race.
func (l *Ledger) TotalBets() int {
	n := 0
	for _, race := range l.Races {
		n += len(race.Bets)
	}
	return n
}
