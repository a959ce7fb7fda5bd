package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/swapwatch/internal/pkg/types"
	"github.com/gabapcia/swapwatch/internal/watchlist"

	"github.com/urfave/cli/v3"
)

// listWalletsCommand returns a CLI command that prints the watchlist of a user.
//
// Usage example:
//
//	swapwatch wallets --user 123456
func listWalletsCommand(wl watchlist.Service) *cli.Command {
	return &cli.Command{
		Name:        "wallets",
		Description: "Prints the wallets watched for a user, in insertion order.",
		Usage:       "Lists watched wallets. Must provide the user id.",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "user",
				Usage:    "User (chat) id owning the watchlist",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			w := c.Root().Writer

			wallets := wl.ListWallets(ctx, watchlist.UserID(c.Int64("user")))
			if len(wallets) == 0 {
				_, err := fmt.Fprintln(w, "The wallet list is empty.")
				return err
			}

			for i, address := range wallets {
				if _, err := fmt.Fprintf(w, "Wallet %d: %s\n", i+1, address); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// checkAddressCommand returns a CLI command that validates an address and
// prints its canonical form.
//
// Usage example:
//
//	swapwatch check-address --address 0xABC123...
func checkAddressCommand() *cli.Command {
	return &cli.Command{
		Name:        "check-address",
		Description: "Validates a wallet address and prints its canonical form.",
		Usage:       "Checks an address. Must provide the address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to check",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			address, err := types.ParseAddress(c.String("address"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, address)
			return err
		},
	}
}
