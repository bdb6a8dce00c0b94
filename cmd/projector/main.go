// Command projector prints stat projections from the reference tables and a slate file.
//
// Usage:
//
//	projector project "Jayson Tatum" --stat PRA
//	projector board --stat Points --limit 20
//	projector slate --slate data/slate.yaml
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-projection-service/internal/config"
	"github.com/preston-bernstein/nba-projection-service/internal/logging"
)

func main() {
	config.LoadDotEnv()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd(config.Load()).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Table and slate paths default to the env config.
func newRootCmd(cfg config.Config) *cobra.Command {
	opts := &options{
		playersFile: cfg.Tables.PlayersFile,
		dvpFile:     cfg.Tables.DvpFile,
		slateFile:   cfg.Slate.File,
		timezone:    cfg.Slate.Timezone,
	}
	var logLevel string

	root := &cobra.Command{
		Use:          "projector",
		Short:        "NBA player stat projections adjusted for matchup",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = logging.NewLogger(logging.Config{
				Level:   logLevel,
				Format:  cfg.LogFormat,
				Service: "projector",
				Output:  cmd.ErrOrStderr(),
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.playersFile, "players", opts.playersFile, "player baseline table (.csv or .xlsx)")
	flags.StringVar(&opts.dvpFile, "dvp", opts.dvpFile, "defense-vs-position table (.csv or .xlsx)")
	flags.StringVar(&opts.slateFile, "slate", opts.slateFile, "slate file (.yaml, .yml or .json)")
	flags.StringVar(&logLevel, "log-level", "warn", "log level (debug|info|warn|error)")

	root.AddCommand(projectCmd(opts))
	root.AddCommand(boardCmd(opts))
	root.AddCommand(slateCmd(opts))
	return root
}

type options struct {
	playersFile string
	dvpFile     string
	slateFile   string
	timezone    string
	logger      *slog.Logger
}
