// Package teststubs holds dependency-free doubles shared by package tests that
// cannot import testutil without a cycle.
package teststubs

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
)

// StubProvider is a test double for providers.SlateProvider.
type StubProvider struct {
	Slate  games.Slate
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}

	notifyOnce sync.Once
}

// FetchSlate returns the configured slate and error while tracking calls.
func (s *StubProvider) FetchSlate(ctx context.Context) (games.Slate, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Notify != nil {
		s.notifyOnce.Do(func() { close(s.Notify) })
	}
	return s.Slate.Clone(), s.Err
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Slates  map[string]games.Slate // keyed by date
	LoadErr error
}

// LoadSlate returns the slate for the date, or an os.ErrNotExist error when absent.
func (s *StubSnapshotStore) LoadSlate(date string) (games.Slate, error) {
	if s.LoadErr != nil {
		return games.Slate{}, s.LoadErr
	}
	slate, ok := s.Slates[date]
	if !ok {
		return games.Slate{}, &os.PathError{Op: "open", Path: date, Err: os.ErrNotExist}
	}
	return slate, nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	Err error

	mu      sync.Mutex
	written map[string]games.Slate // keyed by date
}

// WriteSlateSnapshot records the slate for verification in tests.
func (w *StubSnapshotWriter) WriteSlateSnapshot(date string, slate games.Slate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	if date == "" {
		return errors.New("date required")
	}
	if w.written == nil {
		w.written = make(map[string]games.Slate)
	}
	w.written[date] = slate.Clone()
	return nil
}

// Written returns the slate recorded for date.
func (w *StubSnapshotWriter) Written(date string) (games.Slate, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	slate, ok := w.written[date]
	return slate, ok
}

// Count returns how many dates have been written.
func (w *StubSnapshotWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.written)
}
