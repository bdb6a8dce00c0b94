package store

import (
	"sync"
	"time"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
)

// MemoryStore keeps a thread-safe copy of the current slate in memory.
type MemoryStore struct {
	mu        sync.RWMutex
	slate     games.Slate
	loaded    bool
	updatedAt time.Time
	now       func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// Slate returns a copy of the current slate and whether one has been set.
func (s *MemoryStore) Slate() (games.Slate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slate.Clone(), s.loaded
}

// Games returns a copy of the current slate's games.
func (s *MemoryStore) Games() []games.Game {
	slate, _ := s.Slate()
	return slate.Games
}

// SetSlate replaces the current slate.
func (s *MemoryStore) SetSlate(slate games.Slate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slate = slate.Clone()
	s.loaded = true
	s.updatedAt = s.now()
}

// UpdatedAt reports when the slate was last replaced.
func (s *MemoryStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
