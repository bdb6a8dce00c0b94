package teams

import "sort"

// Team pairs the three-letter code used in the baseline table and slate with the
// full display name used as the DvP row key.
type Team struct {
	Code     string `json:"code"`
	FullName string `json:"fullName"`
}

// Directory maps team codes to full names and back. It is immutable once built.
type Directory struct {
	byCode map[string]Team
	byName map[string]Team
}

// NewDirectory builds a Directory from the given teams. Later duplicates win.
func NewDirectory(items []Team) *Directory {
	d := &Directory{
		byCode: make(map[string]Team, len(items)),
		byName: make(map[string]Team, len(items)),
	}
	for _, t := range items {
		d.byCode[t.Code] = t
		d.byName[t.FullName] = t
	}
	return d
}

// NBA returns the directory of the thirty NBA franchises.
func NBA() *Directory {
	return NewDirectory(nbaTeams)
}

// FullName returns the display name for a code, or "" when the code is unknown.
func (d *Directory) FullName(code string) string {
	if d == nil {
		return ""
	}
	return d.byCode[code].FullName
}

// CodeFor returns the code for a full display name.
func (d *Directory) CodeFor(fullName string) (string, bool) {
	if d == nil {
		return "", false
	}
	t, ok := d.byName[fullName]
	return t.Code, ok
}

// Known reports whether the code belongs to the directory.
func (d *Directory) Known(code string) bool {
	if d == nil {
		return false
	}
	_, ok := d.byCode[code]
	return ok
}

// Teams returns every team sorted by code.
func (d *Directory) Teams() []Team {
	if d == nil {
		return nil
	}
	out := make([]Team, 0, len(d.byCode))
	for _, t := range d.byCode {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

var nbaTeams = []Team{
	{Code: "ATL", FullName: "Atlanta Hawks"},
	{Code: "BOS", FullName: "Boston Celtics"},
	{Code: "BKN", FullName: "Brooklyn Nets"},
	{Code: "CHA", FullName: "Charlotte Hornets"},
	{Code: "CHI", FullName: "Chicago Bulls"},
	{Code: "CLE", FullName: "Cleveland Cavaliers"},
	{Code: "DAL", FullName: "Dallas Mavericks"},
	{Code: "DEN", FullName: "Denver Nuggets"},
	{Code: "DET", FullName: "Detroit Pistons"},
	{Code: "GSW", FullName: "Golden State Warriors"},
	{Code: "HOU", FullName: "Houston Rockets"},
	{Code: "IND", FullName: "Indiana Pacers"},
	{Code: "LAC", FullName: "LA Clippers"},
	{Code: "LAL", FullName: "Los Angeles Lakers"},
	{Code: "MEM", FullName: "Memphis Grizzlies"},
	{Code: "MIA", FullName: "Miami Heat"},
	{Code: "MIL", FullName: "Milwaukee Bucks"},
	{Code: "MIN", FullName: "Minnesota Timberwolves"},
	{Code: "NOP", FullName: "New Orleans Pelicans"},
	{Code: "NYK", FullName: "New York Knicks"},
	{Code: "OKC", FullName: "Oklahoma City Thunder"},
	{Code: "ORL", FullName: "Orlando Magic"},
	{Code: "PHI", FullName: "Philadelphia 76ers"},
	{Code: "PHX", FullName: "Phoenix Suns"},
	{Code: "POR", FullName: "Portland Trail Blazers"},
	{Code: "SAC", FullName: "Sacramento Kings"},
	{Code: "SAS", FullName: "San Antonio Spurs"},
	{Code: "TOR", FullName: "Toronto Raptors"},
	{Code: "UTA", FullName: "Utah Jazz"},
	{Code: "WAS", FullName: "Washington Wizards"},
}
