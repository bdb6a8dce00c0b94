package snapshots

import (
	"os"
	"testing"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
)

func simpleSlate(date string) games.Slate {
	return games.NewSlate(date, "fixture", []games.Game{
		{Team1: "BOS", Team2: "LAL", Spread1: -4.5, Spread2: 4.5, Total: 226},
	})
}

func writeSlate(t *testing.T, w *Writer, date string, slate games.Slate) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for date %s", date)
	}
	if err := w.WriteSlateSnapshot(date, slate); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", date, err)
	}
}

func writeSimpleSlate(t *testing.T, w *Writer, date string) {
	t.Helper()
	writeSlate(t, w, date, simpleSlate(date))
}

func requireSnapshotExists(t *testing.T, w *Writer, date string) {
	t.Helper()
	if _, err := os.Stat(SlateSnapshotPath(w.BasePath(), date)); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", date, err)
	}
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
