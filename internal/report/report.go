// Package report renders projections, boards and slates as terminal tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-projection-service/internal/projection"
)

var selectorForCategory = map[projection.Category]projection.Selector{
	projection.PTS: projection.Points,
	projection.REB: projection.Rebounds,
	projection.AST: projection.Assists,
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	// Headers print as written; StyleLight would upper-case them.
	t.Style().Format.Header = text.FormatDefault
	return t
}

func num(v float64) string {
	return fmt.Sprintf("%.2f", projection.Round2(v))
}

// ExplanationLine formats the factor trail of a single-stat projection, e.g.
// "Base: 27.5 -> TS: x1.05 -> DvP: +6.0% -> Pace: x1.03 -> 29.36 final".
func ExplanationLine(ex *projection.Explanation) string {
	if ex == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Base: %s -> TS: x%s -> DvP: %+.1f%% -> Pace: x%s",
		trim(ex.Base), trim(ex.TSMultiplier), ex.DvPBonusPct, trim(ex.Pace))
	if ex.Blowout {
		b.WriteString(" -> -5% Blowout")
	}
	fmt.Fprintf(&b, " -> %s final", num(ex.Final))
	return b.String()
}

// trim prints at most two decimals without trailing zeros.
func trim(v float64) string {
	s := fmt.Sprintf("%.2f", projection.Round2(v))
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Projection writes one player's result: a matchup header, the selected value with its
// components, and for single stats the explanation and diagnostics.
func Projection(w io.Writer, res projection.Result) {
	p := res.Player
	fmt.Fprintf(w, "%s (%s - %s)\n", p.Name, p.Team, p.Position)
	if res.Matchup.HasOpponent() {
		fmt.Fprintf(w, "Opponent: %s | Spread: %s | Total: %s\n",
			res.Matchup.Opponent, trim(res.Matchup.Spread), trim(res.Matchup.Total))
	} else {
		fmt.Fprintln(w, "Opponent: not on slate")
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Stat", "Projection"})
	comps := res.Selector.Components()
	if len(comps) > 1 {
		for _, c := range comps {
			sel := selectorForCategory[c]
			t.AppendRow(table.Row{sel.String(), num(res.Values.Get(sel))})
		}
		t.AppendSeparator()
	}
	t.AppendRow(table.Row{res.Selector.String(), num(res.Value)})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()

	if res.Explanation == nil {
		return
	}
	fmt.Fprintln(w, ExplanationLine(res.Explanation))
	fmt.Fprintf(w, "Usage Proxy (PTS/MPG): %s\n", num(res.UsageProxy))
	if dvp := res.Explanation.DvP; dvp != nil {
		fmt.Fprintf(w, "DvP Rank vs %s: %d of 30\n", dvp.Label(), dvp.Rank)
	}
}

// Board writes a ranked table of projections for one selector.
func Board(w io.Writer, sel projection.Selector, results []projection.Result) {
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Player", "Team", "Pos", "Opp", "Spread", "Total", sel.String()})
	for i, res := range results {
		opp := res.Matchup.Opponent
		if opp == "" {
			opp = "-"
		}
		t.AppendRow(table.Row{
			i + 1,
			res.Player.Name,
			res.Player.Team,
			string(res.Player.Position),
			opp,
			trim(res.Matchup.Spread),
			trim(res.Matchup.Total),
			num(res.Value),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})
	t.Render()
}

// Slate writes the games of a slate in listing order. dir supplies full team names and may be nil.
func Slate(w io.Writer, slate games.Slate, dir *teams.Directory) {
	if dir == nil {
		dir = teams.NBA()
	}
	fmt.Fprintf(w, "Slate %s (%d games)\n", slate.Date, len(slate.Games))
	t := newTable(w)
	t.AppendHeader(table.Row{"Team 1", "Team 2", "Spread 1", "Spread 2", "Total"})
	for _, g := range slate.Games {
		t.AppendRow(table.Row{
			teamLabel(dir, g.Team1),
			teamLabel(dir, g.Team2),
			trim(g.Spread1),
			trim(g.Spread2),
			trim(g.Total),
		})
	}
	t.Render()
}

func teamLabel(dir *teams.Directory, code string) string {
	if name := dir.FullName(code); name != "" {
		return code + " " + name
	}
	return code
}
