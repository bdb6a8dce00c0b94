package tables

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

const playersCSV = `Player,Team,Position,PTS_adj,REB_adj,AST_adj,TS%,MPG
Jayson Tatum,BOS,F,27.5,8.1,4.6,0.60,35.8
Jrue Holiday,BOS,G,12.5,5.4,4.8,0.59,33.0

Nikola Jokic,DEN,C,26.4,12.4,9.0,0.65,34.6
`

const dvpCSV = `Team,PG_PTS,SG_PTS,SF_PTS,PF_PTS,C_PTS,C_REB
Boston Celtics,28,27,30,29,25,20
Washington Wizards,2,1,3,4,1,
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadPlayersFromCSV(t *testing.T) {
	roster, err := LoadPlayers(writeFile(t, "players.csv", playersCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roster.Len() != 3 {
		t.Fatalf("expected 3 players (blank line skipped), got %d", roster.Len())
	}
	p, ok := roster.ByName("nikola jokic")
	if !ok {
		t.Fatalf("expected case-insensitive lookup to resolve")
	}
	if p.Team != "DEN" || p.Position != "C" || p.Rebounds != 12.4 || p.TrueShooting != 0.65 || p.MinutesPerGame != 34.6 {
		t.Fatalf("unexpected row: %+v", p)
	}
}

func TestLoadPlayersMissingColumn(t *testing.T) {
	path := writeFile(t, "players.csv", "Player,Team,Position,PTS_adj,REB_adj,AST_adj,MPG\nA,BOS,G,1,1,1,30\n")
	_, err := LoadPlayers(path)
	var colErr *ColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("expected ColumnError, got %v", err)
	}
	if colErr.Column != ColTrueShooting {
		t.Fatalf("expected missing TS%%, got %q", colErr.Column)
	}
}

func TestLoadPlayersBadNumber(t *testing.T) {
	path := writeFile(t, "players.csv", "Player,Team,Position,PTS_adj,REB_adj,AST_adj,TS%,MPG\nA,BOS,G,abc,1,1,0.5,30\n")
	_, err := LoadPlayers(path)
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("expected RowError, got %v", err)
	}
	if rowErr.Row != 2 || rowErr.Column != ColPoints {
		t.Fatalf("unexpected row error location: %+v", rowErr)
	}
}

func TestLoadPlayersUnsupportedFormat(t *testing.T) {
	_, err := LoadPlayers(writeFile(t, "players.txt", playersCSV))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadDvPFromCSV(t *testing.T) {
	table, err := LoadDvP(writeFile(t, "dvp.csv", dvpCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 teams, got %d", table.Len())
	}
	if rank, ok := table.Rank("Boston Celtics", "SF_PTS"); !ok || rank != 30 {
		t.Fatalf("expected SF_PTS rank 30, got %d (%v)", rank, ok)
	}
	if _, ok := table.Rank("Washington Wizards", "C_REB"); ok {
		t.Fatalf("expected blank cell to be treated as missing")
	}
}

func TestLoadDvPKeepsFirstDuplicateRow(t *testing.T) {
	path := writeFile(t, "dvp.csv", "Team,SF_PTS\nLos Angeles Lakers,3\nLos Angeles Lakers,28\n")
	table, err := LoadDvP(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rank, _ := table.Rank("Los Angeles Lakers", "SF_PTS"); rank != 3 {
		t.Fatalf("expected first row's rank 3, got %d", rank)
	}
}

func TestLoadDvPRejectsOutOfRangeRank(t *testing.T) {
	path := writeFile(t, "dvp.csv", "Team,PG_PTS\nBoston Celtics,31\n")
	_, err := LoadDvP(path)
	var rowErr *RowError
	if !errors.As(err, &rowErr) || rowErr.Column != "PG_PTS" {
		t.Fatalf("expected PG_PTS RowError, got %v", err)
	}
}

func TestLoadDvPRequiresTeamColumn(t *testing.T) {
	_, err := LoadDvP(writeFile(t, "dvp.csv", "Name,PG_PTS\nBoston Celtics,3\n"))
	var colErr *ColumnError
	if !errors.As(err, &colErr) || colErr.Column != ColDvPTeam {
		t.Fatalf("expected Team ColumnError, got %v", err)
	}
}

func TestParseRankAcceptsWholeFloats(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "12", want: 12},
		{raw: "12.0", want: 12},
		{raw: "12.5", wantErr: true},
		{raw: "0", wantErr: true},
		{raw: "x", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseRank(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("parseRank(%q) expected error", tt.raw)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("parseRank(%q) = %d, %v; want %d", tt.raw, got, err, tt.want)
		}
	}
}

func TestLoadPlayersFromXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Player", "Team", "Position", "PTS_adj", "REB_adj", "AST_adj", "TS%", "MPG"},
		{"Trae Young", "ATL", "PG", 25.7, 2.8, 10.8, 0.56, 36.0},
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	_ = f.Close()

	roster, err := LoadPlayers(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := roster.ByName("Trae Young")
	if !ok || p.Assists != 10.8 || p.Position != "PG" {
		t.Fatalf("unexpected xlsx row: %+v (found=%v)", p, ok)
	}
}

func TestLoadWrapsErrors(t *testing.T) {
	playersPath := writeFile(t, "players.csv", playersCSV)
	dvpPath := writeFile(t, "dvp.csv", dvpCSV)

	ref, err := Load(playersPath, dvpPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Players.Len() != 3 || ref.DvP.Len() != 2 {
		t.Fatalf("unexpected reference sizes")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.csv"), dvpPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}
