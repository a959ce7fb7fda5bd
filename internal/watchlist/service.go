package watchlist

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabapcia/swapwatch/internal/pkg/logger"
	"github.com/gabapcia/swapwatch/internal/pkg/types"
)

// ErrInvalidSeedEntry is returned by Seed when an entry is not in the
// "<user>:<address>" form.
var ErrInvalidSeedEntry = errors.New("invalid watchlist seed entry")

// Service is the management surface used by chat handlers and the CLI to
// edit watchlists. The wallet monitor never goes through it; it reads
// Snapshot and AllUsers from the underlying Watchlist.
type Service interface {
	// AddWallet registers address for user. Invalid and duplicate addresses
	// are rejected synchronously.
	AddWallet(ctx context.Context, user UserID, address string) (types.Address, error)

	// RemoveWallet removes the address at the zero-based index.
	RemoveWallet(ctx context.Context, user UserID, index int) (types.Address, error)

	// EditWallet replaces the address at the zero-based index.
	EditWallet(ctx context.Context, user UserID, index int, address string) (types.Address, error)

	// ListWallets returns the user's addresses in insertion order.
	ListWallets(ctx context.Context, user UserID) []types.Address
}

type service struct {
	watchlist *Watchlist
}

var _ Service = (*service)(nil)

func (s *service) AddWallet(ctx context.Context, user UserID, address string) (types.Address, error) {
	addr, err := s.watchlist.Add(user, address)
	if err != nil {
		logger.Warn(ctx, "wallet rejected", "watchlist.user", int64(user), "wallet.address", address, "error", err)
		return "", err
	}

	logger.Info(ctx, "wallet added", "watchlist.user", int64(user), "wallet.address", addr.String())
	return addr, nil
}

func (s *service) RemoveWallet(ctx context.Context, user UserID, index int) (types.Address, error) {
	addr, err := s.watchlist.RemoveAt(user, index)
	if err != nil {
		return "", err
	}

	logger.Info(ctx, "wallet removed", "watchlist.user", int64(user), "wallet.address", addr.String())
	return addr, nil
}

func (s *service) EditWallet(ctx context.Context, user UserID, index int, address string) (types.Address, error) {
	addr, err := s.watchlist.ReplaceAt(user, index, address)
	if err != nil {
		logger.Warn(ctx, "wallet edit rejected", "watchlist.user", int64(user), "watchlist.index", index, "error", err)
		return "", err
	}

	logger.Info(ctx, "wallet edited", "watchlist.user", int64(user), "watchlist.index", index, "wallet.address", addr.String())
	return addr, nil
}

func (s *service) ListWallets(_ context.Context, user UserID) []types.Address {
	return s.watchlist.Snapshot(user)
}

// Seed adds every "<user>:<address>" entry to the watchlist. Entries already
// present are skipped. It stops at the first malformed entry.
func Seed(ctx context.Context, svc Service, entries []string) error {
	for _, raw := range entries {
		userPart, address, ok := strings.Cut(strings.TrimSpace(raw), ":")
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidSeedEntry, raw)
		}

		user, err := strconv.ParseInt(userPart, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidSeedEntry, raw, err)
		}

		if _, err := svc.AddWallet(ctx, UserID(user), address); err != nil && !errors.Is(err, ErrAlreadyExists) {
			return fmt.Errorf("%w: %q: %w", ErrInvalidSeedEntry, raw, err)
		}
	}

	return nil
}

// NewService returns a Service backed by w.
func NewService(w *Watchlist) *service {
	return &service{watchlist: w}
}
