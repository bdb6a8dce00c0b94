package testutil

import (
	appplayers "github.com/preston-bernstein/nba-projection-service/internal/app/players"
	appprojections "github.com/preston-bernstein/nba-projection-service/internal/app/projections"
	appslate "github.com/preston-bernstein/nba-projection-service/internal/app/slate"
	appteams "github.com/preston-bernstein/nba-projection-service/internal/app/teams"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/metrics"
	"github.com/preston-bernstein/nba-projection-service/internal/projection"
	"github.com/preston-bernstein/nba-projection-service/internal/snapshots"
	"github.com/preston-bernstein/nba-projection-service/internal/store"
)

// Services bundles the app services built over the sample fixtures.
type Services struct {
	Players     *appplayers.Service
	Teams       *appteams.Service
	Slate       *appslate.Service
	Projections *appprojections.Service
	Store       *store.MemoryStore
	Metrics     *metrics.Recorder
}

// NewServices builds services over SampleRoster and SampleDvP. When slate has games it is preloaded.
func NewServices(slate games.Slate, archive snapshots.Store) Services {
	ms := store.NewMemoryStore()
	if len(slate.Games) > 0 {
		ms.SetSlate(slate)
	}
	rec := metrics.NewRecorder()
	playerSvc := appplayers.NewService(SampleRoster())
	teamSvc := appteams.NewService(nil)
	slateSvc := appslate.NewService(ms, archive)
	engine := projection.NewEngine(SampleDvP(), teamSvc.Directory())
	return Services{
		Players:     playerSvc,
		Teams:       teamSvc,
		Slate:       slateSvc,
		Projections: appprojections.NewService(engine, playerSvc, slateSvc, rec),
		Store:       ms,
		Metrics:     rec,
	}
}
