// Package dvp holds the defense-vs-position ranking table.
package dvp

import "sort"

// Table maps an opponent's full display name to its rank columns. Column names
// combine a granular position and a stat category, e.g. "PG_PTS". Ranks run from
// 1 (most favorable to attack) to 30.
type Table struct {
	rows    map[string]map[string]int
	columns map[string]struct{}
}

// Row is one team's ranks as loaded from a reference file.
type Row struct {
	Team  string
	Ranks map[string]int
}

// NewTable copies the given rows into an immutable table. When a team appears
// more than once the first row wins.
func NewTable(rows []Row) *Table {
	t := &Table{
		rows:    make(map[string]map[string]int, len(rows)),
		columns: make(map[string]struct{}),
	}
	for _, r := range rows {
		if _, dup := t.rows[r.Team]; dup {
			continue
		}
		ranks := make(map[string]int, len(r.Ranks))
		for col, rank := range r.Ranks {
			ranks[col] = rank
			t.columns[col] = struct{}{}
		}
		t.rows[r.Team] = ranks
	}
	return t
}

// Column builds the column name for a granular position and stat category.
func Column(position, category string) string {
	return position + "_" + category
}

// Rank returns the team's rank in the given column.
func (t *Table) Rank(team, column string) (int, bool) {
	if t == nil {
		return 0, false
	}
	row, ok := t.rows[team]
	if !ok {
		return 0, false
	}
	rank, ok := row[column]
	return rank, ok
}

// HasTeam reports whether the table carries a row for the team.
func (t *Table) HasTeam(team string) bool {
	if t == nil {
		return false
	}
	_, ok := t.rows[team]
	return ok
}

// Columns returns every rank column name, sorted.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.columns))
	for c := range t.columns {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of team rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}
