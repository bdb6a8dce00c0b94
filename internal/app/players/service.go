package players

import "github.com/preston-bernstein/nba-projection-service/internal/domain/players"

// Service answers roster lookups against the immutable baseline table.
type Service struct {
	roster *players.Roster
}

// NewService constructs a Service over the loaded roster.
func NewService(roster *players.Roster) *Service {
	return &Service{roster: roster}
}

// Players returns the team's players sorted by name, or every player in load order when team is empty.
func (s *Service) Players(team string) []players.Baseline {
	if team == "" {
		return s.roster.All()
	}
	return s.roster.ByTeam(team)
}

// PlayerByName resolves a player ignoring case and surrounding space.
func (s *Service) PlayerByName(name string) (players.Baseline, bool) {
	return s.roster.ByName(name)
}

// Count returns the number of rostered players.
func (s *Service) Count() int {
	return s.roster.Len()
}
