package tables

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/dvp"
)

// ColDvPTeam holds the opponent's full display name in the DvP table.
const ColDvPTeam = "Team"

// Rank bounds for DvP cells.
const (
	MinRank = 1
	MaxRank = 30
)

var errRankRange = fmt.Errorf("rank must be between %d and %d", MinRank, MaxRank)

// LoadDvP reads the defense-vs-position table. Every column other than Team whose
// header looks like POS_CAT is read as a rank column; blank cells are left out so
// the engine treats them as missing.
func LoadDvP(path string) (*dvp.Table, error) {
	s, err := readSheet(path)
	if err != nil {
		return nil, err
	}
	teamIdx, err := s.column(ColDvPTeam)
	if err != nil {
		return nil, err
	}

	rankCols := make(map[int]string)
	for i, name := range s.names {
		if i == teamIdx || !isRankColumn(name) {
			continue
		}
		rankCols[i] = strings.ToUpper(name)
	}

	rows := make([]dvp.Row, 0, len(s.rows))
	for n, row := range s.rows {
		if blank(row) {
			continue
		}
		line := n + 2
		team := cell(row, teamIdx)
		if team == "" {
			return nil, &RowError{File: s.file, Row: line, Column: ColDvPTeam, Err: errBlankCell}
		}
		ranks := make(map[string]int, len(rankCols))
		for i, col := range rankCols {
			raw := cell(row, i)
			if raw == "" {
				continue
			}
			rank, err := parseRank(raw)
			if err != nil {
				return nil, &RowError{File: s.file, Row: line, Column: col, Err: err}
			}
			ranks[col] = rank
		}
		rows = append(rows, dvp.Row{Team: team, Ranks: ranks})
	}
	return dvp.NewTable(rows), nil
}

func isRankColumn(name string) bool {
	pos, cat, ok := strings.Cut(name, "_")
	return ok && pos != "" && cat != ""
}

// parseRank accepts integral values, including spreadsheet floats such as "12.0".
func parseRank(raw string) (int, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, errors.New("rank must be a whole number")
	}
	rank := int(v)
	if rank < MinRank || rank > MaxRank {
		return 0, errRankRange
	}
	return rank, nil
}
