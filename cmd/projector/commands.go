package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	appplayers "github.com/preston-bernstein/nba-projection-service/internal/app/players"
	appprojections "github.com/preston-bernstein/nba-projection-service/internal/app/projections"
	appslate "github.com/preston-bernstein/nba-projection-service/internal/app/slate"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-projection-service/internal/logging"
	"github.com/preston-bernstein/nba-projection-service/internal/projection"
	"github.com/preston-bernstein/nba-projection-service/internal/providers"
	"github.com/preston-bernstein/nba-projection-service/internal/providers/file"
	"github.com/preston-bernstein/nba-projection-service/internal/report"
	"github.com/preston-bernstein/nba-projection-service/internal/store"
	"github.com/preston-bernstein/nba-projection-service/internal/tables"
)

// session holds the loaded tables and slate for one command run.
type session struct {
	projections *appprojections.Service
	slate       games.Slate
}

// open loads the reference tables and the slate. A missing slate file is not fatal:
// every player then projects without matchup adjustments.
func (o *options) open(ctx context.Context) (*session, error) {
	ref, err := tables.Load(o.playersFile, o.dvpFile)
	if err != nil {
		return nil, err
	}
	slate, err := o.loadSlate(ctx)
	if err != nil {
		if !errors.Is(err, providers.ErrSlateNotFound) {
			return nil, err
		}
		logging.Warn(o.logger, "slate file not found, projecting without matchups", slog.String(logging.FieldFile, o.slateFile))
	}

	ms := store.NewMemoryStore()
	ms.SetSlate(slate)
	playerSvc := appplayers.NewService(ref.Players)
	slateSvc := appslate.NewService(ms, nil)
	engine := projection.NewEngine(ref.DvP, teams.NBA())
	return &session{
		projections: appprojections.NewService(engine, playerSvc, slateSvc, nil),
		slate:       slate,
	}, nil
}

func (o *options) loadSlate(ctx context.Context) (games.Slate, error) {
	return file.New(o.slateFile, o.timezone).FetchSlate(ctx)
}

func projectCmd(opts *options) *cobra.Command {
	var stat string
	cmd := &cobra.Command{
		Use:   "project <player name>",
		Short: "Project one player against the slate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := projection.ParseSelector(stat)
			if err != nil {
				return err
			}
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")
			res, ok := s.projections.Project(name, sel)
			if !ok {
				return fmt.Errorf("player %q not found", name)
			}
			report.Projection(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVar(&stat, "stat", projection.Points.String(), "Points, Rebounds, Assists, PR, PA, RA or PRA")
	return cmd
}

func boardCmd(opts *options) *cobra.Command {
	var (
		stat  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Rank every player on the slate by projected stat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := projection.ParseSelector(stat)
			if err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("limit must be non-negative, got %d", limit)
			}
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			report.Board(cmd.OutOrStdout(), sel, s.projections.Board(sel, limit))
			return nil
		},
	}
	cmd.Flags().StringVar(&stat, "stat", projection.Points.String(), "Points, Rebounds, Assists, PR, PA, RA or PRA")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum rows (0 for all)")
	return cmd
}

func slateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "slate",
		Short: "Show the games on the slate file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slate, err := opts.loadSlate(cmd.Context())
			if err != nil {
				return err
			}
			report.Slate(cmd.OutOrStdout(), slate, teams.NBA())
			return nil
		},
	}
}
