package teams

import (
	"strings"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/teams"
)

// Service exposes the team directory.
type Service struct {
	dir *teams.Directory
}

// NewService constructs a Service. A nil directory falls back to the NBA directory.
func NewService(dir *teams.Directory) *Service {
	if dir == nil {
		dir = teams.NBA()
	}
	return &Service{dir: dir}
}

// Teams returns every team sorted by code.
func (s *Service) Teams() []teams.Team {
	return s.dir.Teams()
}

// TeamByCode returns a single team if the code is known.
func (s *Service) TeamByCode(code string) (teams.Team, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !s.dir.Known(code) {
		return teams.Team{}, false
	}
	return teams.Team{Code: code, FullName: s.dir.FullName(code)}, true
}

// Directory exposes the underlying directory for the projection engine.
func (s *Service) Directory() *teams.Directory {
	return s.dir
}
