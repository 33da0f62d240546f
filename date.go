package keiba

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// ParseDate parses a Date from a strict "YYYY-MM-DD" string.
func ParseDate(str string) (Date, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(str))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", str, err)
	}
	return NewDate(t.Date()), nil
}

// MustParse parses a Date from a string, panicking on error. For tests and constants.
func MustParse(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String formats the date as "YYYY-MM-DD".
func (d Date) String() string { return d.time().Format(DateFormat) }

// Compact formats the date as "YYYYMMDD", the form the JV-Link database keys on.
func (d Date) Compact() string { return d.time().Format("20060102") }

// MonthKey formats the date as "YYYY-MM", the monthly rollup grouping key.
func (d Date) MonthKey() string { return d.time().Format("2006-01") }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// weekdayKanji is indexed by time.Weekday (Sunday first).
var weekdayKanji = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// WeekdayKanji returns the single-kanji day of week stored in daily rollups.
func (d Date) WeekdayKanji() string { return weekdayKanji[d.Weekday()] }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }
