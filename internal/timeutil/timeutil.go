package timeutil

import "time"

// DateLayout is the slate date format (YYYY-MM-DD) used in URLs, files, and snapshot names.
const DateLayout = time.DateOnly

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// IsDate reports whether value is a valid YYYY-MM-DD calendar date.
func IsDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateIn formats t as the calendar date observed in loc. A nil loc means UTC.
func DateIn(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return FormatDate(t.In(loc))
}

// MidnightUTC truncates t to the start of its UTC day.
func MidnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
