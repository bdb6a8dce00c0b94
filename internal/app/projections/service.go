// Package projections runs projection queries against the loaded tables and the current slate.
package projections

import (
	"sort"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/players"
	"github.com/preston-bernstein/nba-projection-service/internal/metrics"
	"github.com/preston-bernstein/nba-projection-service/internal/projection"
)

// Roster resolves players.
type Roster interface {
	PlayerByName(name string) (players.Baseline, bool)
	Players(team string) []players.Baseline
}

// SlateSource supplies the current slate's games.
type SlateSource interface {
	Games() []games.Game
}

// Service answers single-player and board queries.
type Service struct {
	engine  *projection.Engine
	roster  Roster
	slate   SlateSource
	metrics *metrics.Recorder
}

// NewService wires the engine to its data sources. recorder may be nil.
func NewService(engine *projection.Engine, roster Roster, slate SlateSource, recorder *metrics.Recorder) *Service {
	return &Service{
		engine:  engine,
		roster:  roster,
		slate:   slate,
		metrics: recorder,
	}
}

// Project resolves the player by name and projects the selected stat against the current slate.
// It reports false when the player is not rostered.
func (s *Service) Project(name string, sel projection.Selector) (projection.Result, bool) {
	p, ok := s.roster.PlayerByName(name)
	s.metrics.RecordProjection(sel.String(), ok)
	if !ok {
		return projection.Result{}, false
	}
	return s.engine.Project(p, s.slate.Games(), sel), true
}

// Board projects every rostered player whose team plays on the current slate, highest
// selected value first. Ties break by name. limit <= 0 returns every row.
func (s *Service) Board(sel projection.Selector, limit int) []projection.Result {
	slate := s.slate.Games()
	playing := make(map[string]struct{}, len(slate)*2)
	for _, g := range slate {
		playing[g.Team1] = struct{}{}
		playing[g.Team2] = struct{}{}
	}

	var out []projection.Result
	for _, p := range s.roster.Players("") {
		if _, ok := playing[p.Team]; !ok {
			continue
		}
		out = append(out, s.engine.Project(p, slate, sel))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Player.Name < out[j].Player.Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
