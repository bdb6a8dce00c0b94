package testutil

import (
	"github.com/preston-bernstein/nba-projection-service/internal/domain/dvp"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/players"
)

// SampleBaseline returns a baseline row with round numbers for the given player.
func SampleBaseline(name, team string, pos players.Position) players.Baseline {
	return players.Baseline{
		Name:           name,
		Team:           team,
		Position:       pos,
		Points:         20,
		Rebounds:       6,
		Assists:        4,
		TrueShooting:   0.57,
		MinutesPerGame: 32,
	}
}

// SampleRoster returns a small roster spanning two slate teams and one idle team.
func SampleRoster() *players.Roster {
	tatum := SampleBaseline("Jayson Tatum", "BOS", players.PositionForward)
	tatum.Points, tatum.Rebounds, tatum.Assists, tatum.TrueShooting, tatum.MinutesPerGame = 27.5, 8.1, 4.6, 0.60, 35.8
	return players.NewRoster([]players.Baseline{
		tatum,
		SampleBaseline("Jrue Holiday", "BOS", players.PositionGuard),
		SampleBaseline("LeBron James", "LAL", players.PositionForward),
		SampleBaseline("Nikola Jokic", "DEN", players.PositionCenter),
	})
}

// SampleDvP returns ranks for the two teams on SampleSlate.
func SampleDvP() *dvp.Table {
	return dvp.NewTable([]dvp.Row{
		{Team: "Los Angeles Lakers", Ranks: map[string]int{"SF_PTS": 3, "PF_PTS": 5, "SF_REB": 12, "PF_REB": 14}},
		{Team: "Boston Celtics", Ranks: map[string]int{"PG_PTS": 25, "SG_PTS": 27, "SF_PTS": 29, "PF_PTS": 30}},
	})
}

// SampleSlate returns a one-game slate: BOS hosting LAL.
func SampleSlate(date string) games.Slate {
	return games.NewSlate(date, "test", []games.Game{
		{Team1: "BOS", Team2: "LAL", Spread1: -6.5, Spread2: 6.5, Total: 230},
	})
}
