package keiba

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// The aggregation engine. The three update procedures below are total over a
// well-formed ledger and must run in dependency order: daily before monthly
// (monthly groups the daily entries), while the grand summary reads the raw
// races directly so that stale rollups can never drift into it.
// Recompute runs all three in that order.

// roundROI computes round(payout / invest * 100) with half-to-even
// rounding, the rounding the persisted documents were built with.
// A zero or negative invest yields 0.
func roundROI(payout, invest int) int {
	if invest <= 0 {
		return 0
	}
	// A single rounding step: dividing at full precision first keeps
	// quotients just above a .5 boundary from collapsing onto it.
	roi := decimal.NewFromInt(int64(payout) * 100).
		Div(decimal.NewFromInt(int64(invest))).
		RoundBank(0)
	return int(roi.IntPart())
}

// UpdateDaily recomputes the daily entry for one date from every race of
// that day, then rescans the whole sequence to restore the running
// cumulative profit. The full rescan keeps cumulative correct even when a
// date is inserted out of order.
//
// A race of that day carrying a non-empty title becomes the entry's note;
// with several titled races on one day, the last in ascending key order
// wins.
func (l *Ledger) UpdateDaily(date, dayOfWeek string) {
	var invest, payout int
	var note string
	for _, key := range l.RaceKeys() {
		if !strings.HasPrefix(key, date) {
			continue
		}
		race := l.Races[key]
		for _, bet := range race.Bets {
			invest += bet.Amount
			payout += bet.Payout
		}
		if race.Title != "" {
			note = race.Title
		}
	}
	profit := payout - invest

	if entry := l.dailyEntry(date); entry != nil {
		entry.Invest = invest
		entry.Payout = payout
		entry.Profit = profit
		if note != "" {
			entry.Note = note
		}
	} else {
		l.Daily = append(l.Daily, DailyEntry{
			Date:      date,
			DayOfWeek: dayOfWeek,
			Invest:    invest,
			Payout:    payout,
			Profit:    profit,
			Note:      note,
		})
		sort.Slice(l.Daily, func(i, j int) bool {
			return l.Daily[i].Date < l.Daily[j].Date
		})
	}

	cumulative := 0
	for i := range l.Daily {
		cumulative += l.Daily[i].Profit
		l.Daily[i].Cumulative = cumulative
	}
}

// dailyEntry returns a pointer into the daily sequence for date, or nil.
func (l *Ledger) dailyEntry(date string) *DailyEntry {
	for i := range l.Daily {
		if l.Daily[i].Date == date {
			return &l.Daily[i]
		}
	}
	return nil
}

// UpdateMonthly rebuilds the whole monthly sequence by grouping daily
// entries on their "YYYY-MM" prefix, ascending.
func (l *Ledger) UpdateMonthly() {
	totals := make(map[string]*MonthlyEntry)
	var months []string
	for _, day := range l.Daily {
		month := day.Date
		if len(month) > 7 {
			month = month[:7]
		}
		entry, ok := totals[month]
		if !ok {
			entry = &MonthlyEntry{Month: month}
			totals[month] = entry
			months = append(months, month)
		}
		entry.Invest += day.Invest
		entry.Payout += day.Payout
	}
	sort.Strings(months)

	l.Monthly = make([]MonthlyEntry, 0, len(months))
	for _, month := range months {
		entry := totals[month]
		entry.Profit = entry.Payout - entry.Invest
		entry.ROI = roundROI(entry.Payout, entry.Invest)
		l.Monthly = append(l.Monthly, *entry)
	}
}

// UpdateSummary recomputes the grand summary from every bet in every race.
// It deliberately ignores the daily and monthly rollups: the races are the
// source of truth.
func (l *Ledger) UpdateSummary() {
	var invest, payout int
	for _, race := range l.Races {
		for _, bet := range race.Bets {
			invest += bet.Amount
			payout += bet.Payout
		}
	}
	l.Summary = Summary{
		TotalInvest: invest,
		TotalPayout: payout,
		TotalProfit: payout - invest,
		ROI:         roundROI(payout, invest),
	}
}

// Recompute refreshes every derived view after a mutation touching date.
func (l *Ledger) Recompute(date, dayOfWeek string) {
	l.UpdateDaily(date, dayOfWeek)
	l.UpdateMonthly()
	l.UpdateSummary()
}

// RecomputeAll refreshes the daily entry of every date that has races, then
// the monthly sequence and the grand summary. Daily entries for dates with
// no recorded races are left untouched.
func (l *Ledger) RecomputeAll() {
	seen := make(map[string]bool)
	var dates []string
	for _, race := range l.Races {
		if race.Date != "" && !seen[race.Date] {
			seen[race.Date] = true
			dates = append(dates, race.Date)
		}
	}
	sort.Strings(dates)

	for _, date := range dates {
		dayOfWeek := ""
		if d, err := ParseDate(date); err == nil {
			dayOfWeek = d.WeekdayKanji()
		}
		l.UpdateDaily(date, dayOfWeek)
	}
	l.UpdateMonthly()
	l.UpdateSummary()
}
