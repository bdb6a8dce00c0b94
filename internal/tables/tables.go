// Package tables loads the player baseline and defense-vs-position reference files.
package tables

import (
	"fmt"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/dvp"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/players"
)

// Reference bundles the immutable tables consulted by every projection.
type Reference struct {
	Players *players.Roster
	DvP     *dvp.Table
}

// Load reads both reference tables.
func Load(playersPath, dvpPath string) (Reference, error) {
	roster, err := LoadPlayers(playersPath)
	if err != nil {
		return Reference{}, fmt.Errorf("load players: %w", err)
	}
	table, err := LoadDvP(dvpPath)
	if err != nil {
		return Reference{}, fmt.Errorf("load dvp: %w", err)
	}
	return Reference{Players: roster, DvP: table}, nil
}
