package main

import (
	"context"
	"fmt"

	"github.com/justsurfingit/job-board-api/internal/config"
	"github.com/justsurfingit/job-board-api/internal/database"
	"github.com/justsurfingit/job-board-api/internal/logger"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// serveAction runs the API until ctx is cancelled by a signal.
func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app := newApp(cfg)

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return app.Stop(stopCtx)
}

// migrateAction applies the schema and exits.
func migrateAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	log.Info("Running migrations...")
	if err := database.Migrate(db.WithContext(ctx)); err != nil {
		return err
	}
	log.Info("Migrations complete", zap.String("driver", cfg.Database.Driver))
	return nil
}
