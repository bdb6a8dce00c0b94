package tables

import (
	"errors"
	"strconv"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/players"
)

// Player table headers.
const (
	ColPlayer       = "Player"
	ColTeam         = "Team"
	ColPosition     = "Position"
	ColPoints       = "PTS_adj"
	ColRebounds     = "REB_adj"
	ColAssists      = "AST_adj"
	ColTrueShooting = "TS%"
	ColMinutes      = "MPG"
)

var errBlankCell = errors.New("value required")

// LoadPlayers reads the player baseline table from a .csv or .xlsx file.
func LoadPlayers(path string) (*players.Roster, error) {
	s, err := readSheet(path)
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int)
	for _, name := range []string{ColPlayer, ColTeam, ColPosition, ColPoints, ColRebounds, ColAssists, ColTrueShooting, ColMinutes} {
		i, err := s.column(name)
		if err != nil {
			return nil, err
		}
		idx[name] = i
	}

	rows := make([]players.Baseline, 0, len(s.rows))
	for n, row := range s.rows {
		if blank(row) {
			continue
		}
		line := n + 2
		name := cell(row, idx[ColPlayer])
		if name == "" {
			return nil, &RowError{File: s.file, Row: line, Column: ColPlayer, Err: errBlankCell}
		}

		b := players.Baseline{
			Name:     name,
			Team:     cell(row, idx[ColTeam]),
			Position: players.Position(cell(row, idx[ColPosition])),
		}
		numeric := []struct {
			col string
			dst *float64
		}{
			{ColPoints, &b.Points},
			{ColRebounds, &b.Rebounds},
			{ColAssists, &b.Assists},
			{ColTrueShooting, &b.TrueShooting},
			{ColMinutes, &b.MinutesPerGame},
		}
		for _, f := range numeric {
			v, err := parseFloat(cell(row, idx[f.col]))
			if err != nil {
				return nil, &RowError{File: s.file, Row: line, Column: f.col, Err: err}
			}
			*f.dst = v
		}
		rows = append(rows, b)
	}
	return players.NewRoster(rows), nil
}

func parseFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, errBlankCell
	}
	return strconv.ParseFloat(raw, 64)
}
