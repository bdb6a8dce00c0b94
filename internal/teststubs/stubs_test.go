package teststubs

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	notify := make(chan struct{})
	p := &StubProvider{Slate: games.Slate{Date: "2024-01-01"}, Err: err, Notify: notify}
	if _, got := p.FetchSlate(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	_, _ = p.FetchSlate(context.Background())
	if p.Calls.Load() != 2 {
		t.Fatalf("expected call count 2, got %d", p.Calls.Load())
	}
	select {
	case <-notify:
	default:
		t.Fatalf("expected notify channel to be closed")
	}
}

func TestStubSnapshotStore(t *testing.T) {
	date := "2024-01-01"
	s := &StubSnapshotStore{
		Slates: map[string]games.Slate{
			date: games.NewSlate(date, "file", []games.Game{{Team1: "BOS", Team2: "LAL"}}),
		},
	}

	slate, err := s.LoadSlate(date)
	if err != nil || slate.Date != date {
		t.Fatalf("expected loaded slate, got %v err %v", slate, err)
	}
	if _, err := s.LoadSlate("2024-01-02"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	s.LoadErr = errors.New("disk")
	if _, err := s.LoadSlate(date); err == nil {
		t.Fatalf("expected configured error")
	}
}

func TestStubSnapshotWriter(t *testing.T) {
	date := "2024-01-01"
	w := &StubSnapshotWriter{}
	if err := w.WriteSlateSnapshot(date, games.NewSlate(date, "file", nil)); err != nil {
		t.Fatalf("expected write success, got %v", err)
	}
	if w.Count() != 1 {
		t.Fatalf("expected one written entry, got %d", w.Count())
	}
	if _, ok := w.Written(date); !ok {
		t.Fatalf("expected slate recorded for %s", date)
	}

	w.Err = errors.New("write error")
	if err := w.WriteSlateSnapshot("2024-01-02", games.Slate{}); err == nil {
		t.Fatalf("expected write error")
	}
}
