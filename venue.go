package keiba

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// venueCodes maps each of the ten JRA venues to its two-digit JV-Link code.
var venueCodes = map[string]string{
	"札幌": "01", "函館": "02", "福島": "03", "新潟": "04", "東京": "05",
	"中山": "06", "中京": "07", "京都": "08", "阪神": "09", "小倉": "10",
}

// VenueCode returns the two-digit code for a venue name.
func VenueCode(name string) (string, bool) {
	code, ok := venueCodes[name]
	return code, ok
}

// VenueNames lists the known venue names, ordered by venue code.
func VenueNames() []string {
	names := make([]string, 0, len(venueCodes))
	for name := range venueCodes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return venueCodes[names[i]] < venueCodes[names[j]]
	})
	return names
}

// RaceKey builds the key a race is stored under, e.g. "2026-01-05_中山5R".
func RaceKey(date Date, venue string, raceNum int) string {
	return fmt.Sprintf("%s_%s%dR", date, venue, raceNum)
}

// RaceName is the short race label stored inside a race, e.g. "中山5R".
func RaceName(venue string, raceNum int) string {
	return fmt.Sprintf("%s%dR", venue, raceNum)
}

// Race numbers may be one or two digits in a key.
var raceKeyRE = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})_(.+?)(\d+)R$`)

// ParseRaceKey decomposes a race key into the triple the JV-Link lookup
// wants: compact date ("20260105"), venue code ("06") and zero-padded race
// number ("05"). Keys that do not parse, or that name an unknown venue,
// yield an error; callers skip such races rather than fail.
func ParseRaceKey(key string) (raceDate, venueCode, raceNum string, err error) {
	m := raceKeyRE.FindStringSubmatch(key)
	if m == nil {
		return "", "", "", fmt.Errorf("malformed race key %q", key)
	}
	code, ok := venueCodes[m[2]]
	if !ok {
		return "", "", "", fmt.Errorf("unknown venue %q in race key %q", m[2], key)
	}
	return strings.ReplaceAll(m[1], "-", ""), code, pad2(m[3]), nil
}
