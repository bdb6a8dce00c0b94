package players

import (
	"testing"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/players"
)

func TestPlayersService(t *testing.T) {
	svc := NewService(players.NewRoster([]players.Baseline{
		{Name: "Jrue Holiday", Team: "BOS"},
		{Name: "Jayson Tatum", Team: "BOS"},
		{Name: "Nikola Jokic", Team: "DEN"},
	}))

	if svc.Count() != 3 {
		t.Fatalf("expected 3 players, got %d", svc.Count())
	}
	if got := svc.Players(""); len(got) != 3 || got[0].Name != "Jrue Holiday" {
		t.Fatalf("expected all players in load order, got %+v", got)
	}
	bos := svc.Players("bos")
	if len(bos) != 2 || bos[0].Name != "Jayson Tatum" {
		t.Fatalf("expected BOS players sorted by name, got %+v", bos)
	}
	if p, ok := svc.PlayerByName("  NIKOLA jokic "); !ok || p.Team != "DEN" {
		t.Fatalf("expected case-insensitive lookup, got %+v ok=%v", p, ok)
	}
	if _, ok := svc.PlayerByName("Nobody"); ok {
		t.Fatalf("expected unknown player to miss")
	}
}

func TestPlayersServiceNilRoster(t *testing.T) {
	svc := NewService(nil)
	if svc.Count() != 0 || len(svc.Players("")) != 0 {
		t.Fatalf("expected empty results from nil roster")
	}
	if _, ok := svc.PlayerByName("x"); ok {
		t.Fatalf("expected miss from nil roster")
	}
}
