package projection

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/dvp"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/players"
)

// DvP bonus tiers keyed on the averaged rank. Upper bounds are inclusive.
const (
	eliteMatchupMaxRank   = 5
	goodMatchupMaxRank    = 10
	neutralMatchupMaxRank = 20
	toughMatchupMaxRank   = 25

	eliteMatchupBonus = 0.06
	goodMatchupBonus  = 0.03
	toughMatchupBonus = -0.03
	worstMatchupBonus = -0.06
)

// DvPResult is the aggregated defense-vs-position signal for one category.
type DvPResult struct {
	Category    Category `json:"category"`
	Found       bool     `json:"found"`
	Columns     []string `json:"columns,omitempty"`
	AverageRank float64  `json:"averageRank,omitempty"`
	Rank        int      `json:"rank,omitempty"`
	Bonus       float64  `json:"bonus"`
}

// Label names the diagnostic the way it is reported alongside an explanation.
func (r DvPResult) Label() string {
	return "avg_" + r.Category.String()
}

// AggregateDvP averages the opponent's ranks over the player's granular
// positions. Missing columns are skipped; when nothing matches the bonus is 0
// and Found is false.
func AggregateDvP(table *dvp.Table, pos players.Position, opponentName string, cat Category) DvPResult {
	res := DvPResult{Category: cat}
	if opponentName == "" || !table.HasTeam(opponentName) {
		return res
	}

	var ranks []float64
	for _, g := range GranularPositions(pos) {
		col := dvp.Column(string(g), cat.String())
		rank, ok := table.Rank(opponentName, col)
		if !ok {
			continue
		}
		ranks = append(ranks, float64(rank))
		res.Columns = append(res.Columns, col)
	}
	if len(ranks) == 0 {
		return res
	}

	res.Found = true
	res.AverageRank = stat.Mean(ranks, nil)
	res.Rank = int(math.RoundToEven(res.AverageRank))
	res.Bonus = DvPBonus(res.AverageRank)
	return res
}

// DvPBonus maps an averaged rank to its signed bonus.
func DvPBonus(avgRank float64) float64 {
	switch {
	case avgRank <= eliteMatchupMaxRank:
		return eliteMatchupBonus
	case avgRank <= goodMatchupMaxRank:
		return goodMatchupBonus
	case avgRank <= neutralMatchupMaxRank:
		return 0
	case avgRank <= toughMatchupMaxRank:
		return toughMatchupBonus
	default:
		return worstMatchupBonus
	}
}
