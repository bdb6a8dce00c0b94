package providers

import (
	"time"
	_ "time/tzdata"

	"github.com/preston-bernstein/nba-projection-service/internal/timeutil"
)

// DefaultTimezone is where the NBA schedules its day.
const DefaultTimezone = "America/New_York"

// ResolveTimezone returns a location for a tz string, or nil if invalid.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}

// SlateDate returns the YYYY-MM-DD date of now in tz, falling back to DefaultTimezone and then UTC.
func SlateDate(now time.Time, tz string) string {
	loc := ResolveTimezone(tz)
	if loc == nil {
		loc = ResolveTimezone(DefaultTimezone)
	}
	return timeutil.DateIn(now, loc)
}
