// Package projection turns a player's baseline stats into matchup-adjusted
// projections. Everything here is a pure function of its inputs; the reference
// tables handed to an Engine must not be mutated while it is in use.
package projection

import (
	"github.com/preston-bernstein/nba-projection-service/internal/domain/dvp"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/players"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/teams"
)

// Values holds the three adjusted categories and their combinations.
type Values struct {
	Points   float64 `json:"points"`
	Rebounds float64 `json:"rebounds"`
	Assists  float64 `json:"assists"`
	PR       float64 `json:"pr"`
	PA       float64 `json:"pa"`
	RA       float64 `json:"ra"`
	PRA      float64 `json:"pra"`
}

// Get returns the value for a selector.
func (v Values) Get(sel Selector) float64 {
	switch sel {
	case Points:
		return v.Points
	case Rebounds:
		return v.Rebounds
	case Assists:
		return v.Assists
	case PR:
		return v.PR
	case PA:
		return v.PA
	case RA:
		return v.RA
	case PRA:
		return v.PRA
	}
	return 0
}

// Explanation records how each factor contributed to a single-category projection.
type Explanation struct {
	Category     Category   `json:"category"`
	Base         float64    `json:"base"`
	TSMultiplier float64    `json:"tsMultiplier"`
	DvPBonusPct  float64    `json:"dvpBonusPct"`
	Pace         float64    `json:"pace"`
	Blowout      bool       `json:"blowout"`
	Final        float64    `json:"final"`
	DvP          *DvPResult `json:"dvp,omitempty"`
}

// Result is the outcome of one projection query.
type Result struct {
	Player      players.Baseline `json:"player"`
	Selector    Selector         `json:"stat"`
	Value       float64          `json:"value"`
	Values      Values           `json:"values"`
	Matchup     Matchup          `json:"matchup"`
	DvP         []DvPResult      `json:"dvp,omitempty"`
	Explanation *Explanation     `json:"explanation,omitempty"`
	UsageProxy  float64          `json:"usageProxy"`
}

// Engine projects players against read-only reference tables.
type Engine struct {
	dvp   *dvp.Table
	teams *teams.Directory
}

// NewEngine constructs an Engine. A nil directory falls back to the NBA directory.
func NewEngine(table *dvp.Table, dir *teams.Directory) *Engine {
	if dir == nil {
		dir = teams.NBA()
	}
	return &Engine{dvp: table, teams: dir}
}

// Project computes every category for the player and selects sel. The
// explanation is only filled for single-category selectors.
func (e *Engine) Project(p players.Baseline, slate []games.Game, sel Selector) Result {
	m := ResolveMatchup(p.Team, slate, e.teams)

	var (
		adjusted [numCategories]float64
		signals  [numCategories]DvPResult
		found    []DvPResult
	)
	for _, cat := range Categories {
		signals[cat] = AggregateDvP(e.dvp, p.Position, m.OpponentName, cat)
		if signals[cat].Found {
			found = append(found, signals[cat])
		}
		adjusted[cat] = Adjust(baseValue(p, cat), cat, Inputs{
			TrueShooting:   p.TrueShooting,
			MinutesPerGame: p.MinutesPerGame,
			Spread:         m.Spread,
			Total:          m.Total,
			DvPBonus:       signals[cat].Bonus,
		})
	}

	sum := func(s Selector) float64 {
		total := 0.0
		for _, c := range s.Components() {
			total += adjusted[c]
		}
		return total
	}
	values := Values{
		Points:   sum(Points),
		Rebounds: sum(Rebounds),
		Assists:  sum(Assists),
		PR:       sum(PR),
		PA:       sum(PA),
		RA:       sum(RA),
		PRA:      sum(PRA),
	}

	res := Result{
		Player:     p,
		Selector:   sel,
		Value:      values.Get(sel),
		Values:     values,
		Matchup:    m,
		DvP:        found,
		UsageProxy: UsageProxy(p),
	}
	if cat, ok := sel.Single(); ok {
		res.Explanation = explain(p, cat, m, signals[cat], adjusted[cat])
	}
	return res
}

// UsageProxy is points per minute, or 0 when minutes are unknown.
func UsageProxy(p players.Baseline) float64 {
	if p.MinutesPerGame <= 0 {
		return 0
	}
	return p.Points / p.MinutesPerGame
}

func explain(p players.Baseline, cat Category, m Matchup, signal DvPResult, final float64) *Explanation {
	ts := 1.0
	if cat == PTS {
		ts = ShootingMultiplier(p.TrueShooting)
	}
	ex := &Explanation{
		Category:     cat,
		Base:         baseValue(p, cat),
		TSMultiplier: ts,
		DvPBonusPct:  signal.Bonus * 100,
		Pace:         PaceMultiplier(m.Total),
		Blowout:      IsBlowout(m.Spread),
		Final:        Round2(final),
	}
	if signal.Found {
		s := signal
		ex.DvP = &s
	}
	return ex
}

func baseValue(p players.Baseline, cat Category) float64 {
	switch cat {
	case PTS:
		return p.Points
	case REB:
		return p.Rebounds
	case AST:
		return p.Assists
	}
	return 0
}
