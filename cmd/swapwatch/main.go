package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/swapwatch/internal/config"
	"github.com/gabapcia/swapwatch/internal/handlers/cli"
	"github.com/gabapcia/swapwatch/internal/pkg/logger"
	"github.com/gabapcia/swapwatch/internal/pkg/telemetry"
	"github.com/gabapcia/swapwatch/internal/watchlist"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// the .env file is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Telemetry {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			_ = shutdown(context.WithoutCancel(ctx))
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	wl := watchlist.New()
	wlService := watchlist.NewService(wl)
	if err := watchlist.Seed(ctx, wlService, cfg.Watchlist); err != nil {
		return err
	}

	monitor, cleanup, err := newMonitor(ctx, cfg, wl)
	if err != nil {
		return err
	}
	defer cleanup()

	return cli.Run(ctx, wlService, monitor)
}
