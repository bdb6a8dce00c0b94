package providers

import (
	"strings"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
)

// NormalizeSlate upper-cases team codes, drops games missing a side and stamps
// the source and a fallback date. Unknown team codes are kept.
func NormalizeSlate(slate games.Slate, source, fallbackDate string) games.Slate {
	out := games.NewSlate(strings.TrimSpace(slate.Date), source, make([]games.Game, 0, len(slate.Games)))
	if out.Date == "" {
		out.Date = fallbackDate
	}
	for _, g := range slate.Games {
		g.Team1 = strings.ToUpper(strings.TrimSpace(g.Team1))
		g.Team2 = strings.ToUpper(strings.TrimSpace(g.Team2))
		if g.Team1 == "" || g.Team2 == "" {
			continue
		}
		out.Games = append(out.Games, g)
	}
	return out
}
