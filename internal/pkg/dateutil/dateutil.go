// Package dateutil normalizes calendar days to canonical UTC day keys.
//
// Every "same day" comparison in the booking rules and in day-scoped store
// queries goes through this package rather than comparing raw timestamps.
package dateutil

import (
	"time"

	"deskbook/internal/pkg/errs"
)

const dayLayout = "2006-01-02"

var ErrInvalidDayFormat = errs.New("day must be a YYYY-MM-DD calendar date")

// ParseDay parses a "YYYY-MM-DD" string into the canonical day key:
// the UTC instant at 00:00:00.000 of that calendar date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidDayFormat)
	}
	return t.UTC(), nil
}

// DayKeyOf returns the canonical day key for the UTC calendar date of t.
func DayKeyOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayRange returns the inclusive range [00:00:00.000, 23:59:59.999] UTC for
// the calendar day of the given key. Store range queries use it so records
// that were historically written under some other timezone offset are still
// caught.
func DayRange(day time.Time) (start, end time.Time) {
	start = DayKeyOf(day)
	end = start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// Format renders a canonical day key back to "YYYY-MM-DD".
func Format(day time.Time) string {
	return day.UTC().Format(dayLayout)
}

// SameDay reports whether two instants fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return DayKeyOf(a).Equal(DayKeyOf(b))
}
