package projection

import "github.com/preston-bernstein/nba-projection-service/internal/domain/players"

// Granular is a single position as used by DvP columns.
type Granular string

const (
	PointGuard    Granular = "PG"
	ShootingGuard Granular = "SG"
	SmallForward  Granular = "SF"
	PowerForward  Granular = "PF"
	Center        Granular = "C"
)

var positionMapping = map[players.Position][]Granular{
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

// GranularPositions expands a listed position into the positions used for DvP
// lookups. Unmapped positions fall back to the raw value as a single entry.
func GranularPositions(pos players.Position) []Granular {
	mapped, ok := positionMapping[pos]
	if !ok {
		return []Granular{Granular(pos)}
	}
	out := make([]Granular, len(mapped))
	copy(out, mapped)
	return out
}

// IsMappedPosition reports whether the position has an explicit expansion.
func IsMappedPosition(pos players.Position) bool {
	_, ok := positionMapping[pos]
	return ok
}
