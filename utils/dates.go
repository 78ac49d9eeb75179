package utils

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date form used across collections ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// FormatDate renders a calendar-local "YYYY-MM-DD" string. No timezone
// conversion is applied; the time's own location is used as-is.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a "YYYY-MM-DD" string in the local timezone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// truncateToDay drops the clock portion, keeping the calendar day.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsToday reports whether t falls on the same calendar day as clock.Now().
func IsToday(t time.Time, clock Clock) bool {
	now := clock.Now()
	return t.Year() == now.Year() && t.Month() == now.Month() && t.Day() == now.Day()
}

// IsPastDate reports whether t is strictly before today. Both sides are
// truncated to midnight, so today itself is never past.
func IsPastDate(t time.Time, clock Clock) bool {
	return truncateToDay(t).Before(truncateToDay(clock.Now()))
}

// IsPastDateString is IsPastDate over a "YYYY-MM-DD" string. Malformed input
// is treated as past so callers refuse it rather than mutate on it.
func IsPastDateString(date string, clock Clock) bool {
	t, err := ParseDate(date)
	if err != nil {
		return true
	}
	return IsPastDate(t, clock)
}

// IsTodayString is IsToday over a "YYYY-MM-DD" string.
func IsTodayString(date string, clock Clock) bool {
	t, err := ParseDate(date)
	if err != nil {
		return false
	}
	return IsToday(t, clock)
}
