package slate

import (
	"errors"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/snapshots"
)

// ErrNoArchive is returned when archived slates are requested but snapshots are disabled.
var ErrNoArchive = errors.New("slate archive not configured")

// Store defines the contract for holding the current slate.
type Store interface {
	Slate() (games.Slate, bool)
	SetSlate(games.Slate)
}

// Service coordinates the current slate and the on-disk archive.
type Service struct {
	store   Store
	archive snapshots.Store
}

// NewService constructs a Service. archive may be nil when snapshots are disabled.
func NewService(store Store, archive snapshots.Store) *Service {
	return &Service{store: store, archive: archive}
}

// Current returns a copy of the current slate and whether one has loaded.
func (s *Service) Current() (games.Slate, bool) {
	return s.store.Slate()
}

// Games returns the current slate's games in listing order.
func (s *Service) Games() []games.Game {
	slate, _ := s.store.Slate()
	return slate.Games
}

// Replace swaps in a new slate.
func (s *Service) Replace(slate games.Slate) {
	s.store.SetSlate(slate)
}

// ForDate loads an archived slate.
func (s *Service) ForDate(date string) (games.Slate, error) {
	if s.archive == nil {
		return games.Slate{}, ErrNoArchive
	}
	return s.archive.LoadSlate(date)
}
