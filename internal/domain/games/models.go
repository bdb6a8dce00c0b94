package games

// Game is one scheduled matchup on a slate. Spreads are signed from each side's
// point of view; negative means that side is favored.
type Game struct {
	Team1   string  `json:"team1" yaml:"team1"`
	Team2   string  `json:"team2" yaml:"team2"`
	Spread1 float64 `json:"spread1" yaml:"spread1"`
	Spread2 float64 `json:"spread2" yaml:"spread2"`
	Total   float64 `json:"total" yaml:"total"`
}

// Involves reports whether the team plays in this game.
func (g Game) Involves(team string) bool {
	return g.Team1 == team || g.Team2 == team
}

// Slate is the set of games for one date, in the order the source listed them.
type Slate struct {
	Date   string `json:"date" yaml:"date"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Games  []Game `json:"games" yaml:"games"`
}

// NewSlate builds a Slate payload.
func NewSlate(date, source string, games []Game) Slate {
	return Slate{
		Date:   date,
		Source: source,
		Games:  games,
	}
}

// Clone returns a copy whose Games slice does not alias the receiver's.
func (s Slate) Clone() Slate {
	out := s
	if s.Games != nil {
		out.Games = make([]Game, len(s.Games))
		copy(out.Games, s.Games)
	}
	return out
}

// Teams returns every team code on the slate in listing order.
func (s Slate) Teams() []string {
	out := make([]string, 0, len(s.Games)*2)
	for _, g := range s.Games {
		out = append(out, g.Team1, g.Team2)
	}
	return out
}
