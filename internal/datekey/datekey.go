// Package datekey formats and parses "YYYY-MM-DD" calendar keys.
//
// Keys compare lexicographically in calendar order, which the index and the
// stats aggregator rely on for range scans.
package datekey

import (
	"fmt"
	"time"
)

// Layout is the time layout of a date key.
const Layout = "2006-01-02"

// Format returns the key for year/month/day. Out-of-range months and days are
// normalized by time.Date, so month 0 is December of the previous year and
// day 32 of a 31-day month is the 1st of the next month.
func Format(year int, month time.Month, day int) string {
	// Noon keeps the date stable regardless of location offsets.
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).Format(Layout)
}

// FromTime returns the key for t's calendar date in t's location.
func FromTime(t time.Time) string {
	return Format(t.Year(), t.Month(), t.Day())
}

// Parse parses a key into a UTC midnight time.
func Parse(key string) (time.Time, error) {
	t, err := time.Parse(Layout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// Valid reports whether key is a real calendar date in canonical form.
func Valid(key string) bool {
	t, err := time.Parse(Layout, key)
	if err != nil {
		return false
	}
	return t.Format(Layout) == key
}

// ParseMonth parses "YYYY-MM" into a year and month.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return t.Year(), t.Month(), nil
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the inclusive first and last keys of the month.
func MonthRange(year int, month time.Month) (first, last string) {
	return Format(year, month, 1), Format(year, month, DaysIn(year, month))
}
