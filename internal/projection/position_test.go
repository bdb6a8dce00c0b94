package projection

import (
	"reflect"
	"testing"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/players"
)

func TestGranularPositions(t *testing.T) {
	cases := map[players.Position][]Granular{
		players.PositionGuard:         {PointGuard, ShootingGuard},
		players.PositionForward:       {SmallForward, PowerForward},
		players.PositionCenter:        {Center},
		players.PositionForwardCenter: {PowerForward, Center},
		players.PositionCenterForward: {Center, PowerForward},
		players.PositionGuardForward:  {ShootingGuard, SmallForward},
		players.PositionForwardGuard:  {SmallForward, PowerForward},
		players.PositionPointGuard:    {PointGuard},
		players.PositionShootingGuard: {ShootingGuard},
		players.PositionSmallForward:  {SmallForward},
		players.PositionPowerForward:  {PowerForward},
	}
	for pos, want := range cases {
		if !IsMappedPosition(pos) {
			t.Fatalf("%s: expected mapped", pos)
		}
		if got := GranularPositions(pos); !reflect.DeepEqual(got, want) {
			t.Fatalf("%s: expected %v, got %v", pos, want, got)
		}
	}
}

func TestGranularPositionsFallback(t *testing.T) {
	pos := players.Position("G-C")
	if IsMappedPosition(pos) {
		t.Fatal("expected unmapped position")
	}
	if got := GranularPositions(pos); !reflect.DeepEqual(got, []Granular{"G-C"}) {
		t.Fatalf("expected raw fallback, got %v", got)
	}
}

func TestGranularPositionsReturnsCopy(t *testing.T) {
	got := GranularPositions(players.PositionGuard)
	got[0] = Center
	if GranularPositions(players.PositionGuard)[0] != PointGuard {
		t.Fatal("expected mapping to be immutable")
	}
}
