package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gabapcia/swapwatch/internal/walletmonitor"

	"github.com/urfave/cli/v3"
)

// startMonitorCommand returns a CLI command that starts the block monitor.
//
// Usage example:
//
//	swapwatch start
//
// The process runs until it receives SIGINT or SIGTERM, or until ctx is done.
// In-flight lookups are drained before the command returns.
func startMonitorCommand(monitor walletmonitor.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the block monitor and delivers wallet activity notifications.",
		Usage:       "Runs the monitor. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := monitor.Start(ctx); err != nil {
				return err
			}
			defer monitor.Close()

			<-ctx.Done()
			return nil
		},
	}
}
