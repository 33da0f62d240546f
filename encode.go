package keiba

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file persists the ledger as a single UTF-8 JSON document, the exact
// shape the dashboard front end reads. The decoder keeps every top-level
// field it does not model as raw JSON so that re-encoding is lossless.

// known top-level field names. Everything else round-trips through extra.
const (
	fieldLastUpdated = "lastUpdated"
	fieldSummary     = "summary"
	fieldMonthly     = "monthly"
	fieldDaily       = "daily"
	fieldRaces       = "races"
)

// DecodeLedger decodes a ledger document from r.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}

	l := &Ledger{extra: make(map[string]json.RawMessage)}
	for key, value := range raw {
		var err error
		switch key {
		case fieldLastUpdated:
			err = json.Unmarshal(value, &l.LastUpdated)
		case fieldSummary:
			err = json.Unmarshal(value, &l.Summary)
		case fieldMonthly:
			err = json.Unmarshal(value, &l.Monthly)
		case fieldDaily:
			err = json.Unmarshal(value, &l.Daily)
		case fieldRaces:
			err = json.Unmarshal(value, &l.Races)
		default:
			l.extra[key] = value
		}
		if err != nil {
			return nil, fmt.Errorf("decode ledger field %q: %w", key, err)
		}
	}

	// Normalize optional collections so callers never see nil.
	if l.Monthly == nil {
		l.Monthly = []MonthlyEntry{}
	}
	if l.Daily == nil {
		l.Daily = []DailyEntry{}
	}
	if l.Races == nil {
		l.Races = make(map[string]*Race)
	}
	for _, race := range l.Races {
		if race.Horses == nil {
			race.Horses = make(map[string]string)
		}
		if race.Bets == nil {
			race.Bets = []Bet{}
		}
	}
	return l, nil
}

// EncodeLedger encodes the ledger document to w with two-space indentation,
// leaving multibyte text unescaped.
func EncodeLedger(w io.Writer, l *Ledger) error {
	doc := map[string]any{
		fieldLastUpdated: l.LastUpdated,
		fieldSummary:     l.Summary,
		fieldMonthly:     l.Monthly,
		fieldDaily:       l.Daily,
		fieldRaces:       l.Races,
	}
	for key, value := range l.extra {
		doc[key] = value
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	return nil
}

// Aux returns the raw JSON of a preserved auxiliary top-level field.
func (l *Ledger) Aux(key string) (json.RawMessage, bool) {
	value, ok := l.extra[key]
	return value, ok
}
