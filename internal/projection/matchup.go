package projection

import (
	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/teams"
)

// LeagueAverageTotal is the game total assumed when a team has no game on the slate.
const LeagueAverageTotal = 224.0

// Matchup is the player's team's game context.
type Matchup struct {
	Opponent     string  `json:"opponent,omitempty"`
	OpponentName string  `json:"opponentName,omitempty"`
	Spread       float64 `json:"spread"`
	Total        float64 `json:"total"`
}

// HasOpponent reports whether the team was found on the slate.
func (m Matchup) HasOpponent() bool {
	return m.Opponent != ""
}

// ResolveMatchup finds the first game in slate order involving team. The spread
// is always the team's own side. A team missing from the slate gets a neutral
// matchup: no opponent, spread 0, LeagueAverageTotal.
func ResolveMatchup(team string, slate []games.Game, dir *teams.Directory) Matchup {
	for _, g := range slate {
		if !g.Involves(team) {
			continue
		}
		m := Matchup{Total: g.Total}
		if g.Team1 == team {
			m.Opponent = g.Team2
			m.Spread = g.Spread1
		} else {
			m.Opponent = g.Team1
			m.Spread = g.Spread2
		}
		// Sources that could not read a total report zero.
		if m.Total <= 0 {
			m.Total = LeagueAverageTotal
		}
		m.OpponentName = dir.FullName(m.Opponent)
		return m
	}
	return Matchup{Total: LeagueAverageTotal}
}
