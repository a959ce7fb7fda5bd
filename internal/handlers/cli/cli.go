package cli

import (
	"context"
	"os"

	"github.com/gabapcia/swapwatch/internal/walletmonitor"
	"github.com/gabapcia/swapwatch/internal/watchlist"

	"github.com/urfave/cli/v3"
)

func newApp(wl watchlist.Service, monitor walletmonitor.Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "swapwatch",
		Description:           "Command-line interface for running the swapwatch wallet activity monitor.",
		Usage:                 "swapwatch [command] [flags]",
		Commands: []*cli.Command{
			startMonitorCommand(monitor),
			listWalletsCommand(wl),
			checkAddressCommand(),
		},
	}
}

// Run initializes and executes the swapwatch CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Starts block monitoring and notification delivery.
//   - `wallets`: Lists the watched wallets of a user.
//   - `check-address`: Validates and normalizes an address.
func Run(ctx context.Context, wl watchlist.Service, monitor walletmonitor.Service) error {
	return newApp(wl, monitor).Run(ctx, os.Args)
}
