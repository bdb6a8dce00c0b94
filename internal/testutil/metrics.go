package testutil

import (
	"context"
	"testing"

	"github.com/preston-bernstein/nba-projection-service/internal/metrics"
)

// NewRecorderWithShutdown returns an in-memory recorder and a no-op shutdown, matching what
// metrics.Setup hands the server when telemetry export is disabled.
func NewRecorderWithShutdown() (*metrics.Recorder, func(context.Context) error) {
	return metrics.NewRecorder(), func(context.Context) error { return nil }
}

// AssertProjections fails the test unless rec counted exactly the given served and
// not-found projections for stat.
func AssertProjections(t testing.TB, rec *metrics.Recorder, stat string, served, notFound int) {
	t.Helper()
	gotServed, gotNotFound := rec.Projections(stat)
	if gotServed != served || gotNotFound != notFound {
		t.Fatalf("projections[%s]: served=%d notFound=%d, want served=%d notFound=%d",
			stat, gotServed, gotNotFound, served, notFound)
	}
}
