package players

import (
	"sort"
	"strings"
)

// Position is a listed roster position. Hybrid listings such as "F-C" are their own value.
type Position string

const (
	PositionGuard         Position = "G"
	PositionForward       Position = "F"
	PositionCenter        Position = "C"
	PositionForwardCenter Position = "F-C"
	PositionCenterForward Position = "C-F"
	PositionGuardForward  Position = "G-F"
	PositionForwardGuard  Position = "F-G"
	PositionPointGuard    Position = "PG"
	PositionShootingGuard Position = "SG"
	PositionSmallForward  Position = "SF"
	PositionPowerForward  Position = "PF"
)

// Baseline is one row of the player baseline table.
type Baseline struct {
	Name           string   `json:"name"`
	Team           string   `json:"team"`
	Position       Position `json:"position"`
	Points         float64  `json:"points"`
	Rebounds       float64  `json:"rebounds"`
	Assists        float64  `json:"assists"`
	TrueShooting   float64  `json:"trueShooting"`
	MinutesPerGame float64  `json:"minutesPerGame"`
}

// Roster is the immutable, name-keyed baseline table.
type Roster struct {
	players []Baseline
	byName  map[string]int
}

// NewRoster indexes the given rows. The first row wins when two names normalize to the same key.
func NewRoster(rows []Baseline) *Roster {
	r := &Roster{
		players: make([]Baseline, 0, len(rows)),
		byName:  make(map[string]int, len(rows)),
	}
	for _, p := range rows {
		key := nameKey(p.Name)
		if _, dup := r.byName[key]; dup {
			continue
		}
		r.byName[key] = len(r.players)
		r.players = append(r.players, p)
	}
	return r
}

// ByName returns the player whose name matches ignoring case and surrounding space.
func (r *Roster) ByName(name string) (Baseline, bool) {
	if r == nil {
		return Baseline{}, false
	}
	idx, ok := r.byName[nameKey(name)]
	if !ok {
		return Baseline{}, false
	}
	return r.players[idx], true
}

// All returns a copy of every row in load order.
func (r *Roster) All() []Baseline {
	if r == nil {
		return nil
	}
	out := make([]Baseline, len(r.players))
	copy(out, r.players)
	return out
}

// ByTeam returns the team's players sorted by name.
func (r *Roster) ByTeam(team string) []Baseline {
	if r == nil {
		return nil
	}
	var out []Baseline
	for _, p := range r.players {
		if strings.EqualFold(p.Team, team) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of rostered players.
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.players)
}

func nameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
