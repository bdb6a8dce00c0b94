package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nba-projection-service/internal/config"
	"github.com/preston-bernstein/nba-projection-service/internal/logging"
	"github.com/preston-bernstein/nba-projection-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, stop); err != nil {
		stop()
		os.Exit(1)
	}
}

// run loads configuration and reference tables, then serves until ctx is canceled.
func run(ctx context.Context, stop context.CancelFunc) error {
	config.LoadDotEnv()
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: config.ServiceName,
		Version: appVersion,
	})

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "server startup failed", err,
			"players_file", cfg.Tables.PlayersFile,
			"dvp_file", cfg.Tables.DvpFile,
		)
		return err
	}
	srv.Run(ctx, stop)
	return nil
}
