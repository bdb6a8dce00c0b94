package server

import (
	appplayers "github.com/preston-bernstein/nba-projection-service/internal/app/players"
	appprojections "github.com/preston-bernstein/nba-projection-service/internal/app/projections"
	appslate "github.com/preston-bernstein/nba-projection-service/internal/app/slate"
	appteams "github.com/preston-bernstein/nba-projection-service/internal/app/teams"
	"github.com/preston-bernstein/nba-projection-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-projection-service/internal/metrics"
	"github.com/preston-bernstein/nba-projection-service/internal/projection"
	"github.com/preston-bernstein/nba-projection-service/internal/snapshots"
	"github.com/preston-bernstein/nba-projection-service/internal/store"
	"github.com/preston-bernstein/nba-projection-service/internal/tables"
)

// buildServices wires the app services over the loaded reference tables. archive may be nil.
func buildServices(ref tables.Reference, archive snapshots.Store, recorder *metrics.Recorder) (*store.MemoryStore, handlers.Services) {
	memoryStore := store.NewMemoryStore()
	playerSvc := appplayers.NewService(ref.Players)
	teamSvc := appteams.NewService(nil)
	slateSvc := appslate.NewService(memoryStore, archive)
	engine := projection.NewEngine(ref.DvP, teamSvc.Directory())
	return memoryStore, handlers.Services{
		Players:     playerSvc,
		Teams:       teamSvc,
		Slate:       slateSvc,
		Projections: appprojections.NewService(engine, playerSvc, slateSvc, recorder),
	}
}
