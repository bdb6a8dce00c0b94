package testutil

import (
	"time"

	"github.com/preston-bernstein/nba-projection-service/internal/timeutil"
)

// Today returns the current UTC date. Snapshot writers prune against the wall clock,
// so slates archived through a real writer in tests should carry this date.
func Today() string {
	return timeutil.DateIn(time.Now(), time.UTC)
}

// DaysAgo returns the UTC date n days before today.
func DaysAgo(n int) string {
	return timeutil.DateIn(time.Now().AddDate(0, 0, -n), time.UTC)
}
