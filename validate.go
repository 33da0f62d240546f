package keiba

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// BracketQuinella is the bet type whose selections use bracket numbers.
const BracketQuinella = "枠連"

// betTypes is the closed set of ticket labels a well-formed document may
// carry. 単複 appears in historical data as a combined win/place ticket.
var betTypes = map[string]bool{
	"単勝": true, "複勝": true, "馬連": true, "馬単": true, "ワイド": true,
	"枠連": true, "3連複": true, "3連単": true, "単複": true,
}

// BetTypes lists the allowed bet-type labels, sorted.
func BetTypes() []string {
	types := make([]string, 0, len(betTypes))
	for t := range betTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

var (
	// 1-2 digit runner numbers, hyphen-joined, at most three of them.
	selectionRE = regexp.MustCompile(`^\d{1,2}(-\d{1,2}){0,2}$`)
	// the bracket form, valid for 枠連 only.
	bracketSelectionRE = regexp.MustCompile(`^枠\d{1,2}-\d{1,2}$`)
	// digits leaked into a type label, e.g. a selection pasted as a type.
	embeddedPairRE = regexp.MustCompile(`\d+-\d+`)
)

// ValidationError describes one malformed bet field.
type ValidationError struct {
	RaceKey string
	Field   string
	Value   string
	Reason  string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %q (%s)", e.RaceKey, e.Field, e.Value, e.Reason)
}

// validBetType checks a bet's type label against the closed set.
func validBetType(betType string) (ok bool, reason string) {
	if betTypes[betType] {
		return true, ""
	}
	if embeddedPairRE.MatchString(betType) {
		return false, "contains runner numbers"
	}
	return false, fmt.Sprintf("not an allowed bet type (allowed: %s)", strings.Join(BetTypes(), ", "))
}

// validSelection checks a bet's selection string. The bracket form 枠N-N is
// accepted for the bracket quinella type only.
func validSelection(selection, betType string) (ok bool, reason string) {
	switch selection {
	case "", "-", "0":
		return false, "empty or placeholder value"
	}
	if strings.Contains(selection, ",") || strings.Contains(selection, "番") {
		return false, "contains a comma or unit suffix"
	}
	if betType == BracketQuinella {
		if bracketSelectionRE.MatchString(selection) || selectionRE.MatchString(selection) {
			return true, ""
		}
		return false, "malformed bracket selection (want 枠N-N or N-N)"
	}
	if selectionRE.MatchString(selection) {
		return true, ""
	}
	return false, "malformed selection (want N, N-N or N-N-N)"
}

// Validate checks every bet's type and selection fields for structural
// conformance, returning one error per malformed field, grouped by
// ascending race key. An empty result means the document is well-formed.
func (l *Ledger) Validate() []ValidationError {
	var errs []ValidationError
	for _, key := range l.RaceKeys() {
		for _, bet := range l.Races[key].Bets {
			if ok, reason := validBetType(bet.Type); !ok {
				errs = append(errs, ValidationError{RaceKey: key, Field: "type", Value: bet.Type, Reason: reason})
			}
			if ok, reason := validSelection(bet.Selection, bet.Type); !ok {
				errs = append(errs, ValidationError{RaceKey: key, Field: "selection", Value: bet.Selection, Reason: reason})
			}
		}
	}
	return errs
}
