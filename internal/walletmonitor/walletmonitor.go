// Package walletmonitor watches newly produced blocks for transactions
// involving watched wallets and turns each match into user notifications.
//
// For every block announced by a ChainSource the monitor intersects the
// block participants with every user's watchlist snapshot. Each match starts
// an independent lookup against an ActivityFeed under a bounded retry policy.
// Resolved events are deduplicated and delivered once to a NotificationSink.
//
// Block ingestion never waits on lookups: a slow or rate limited provider
// only delays the notifications of the block that triggered it.
package walletmonitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/swapwatch/internal/activity"
	"github.com/gabapcia/swapwatch/internal/pkg/types"
	"github.com/gabapcia/swapwatch/internal/watchlist"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrFetchParticipants wraps chain source failures while fetching a block.
	// The affected block is skipped and never retried.
	ErrFetchParticipants = errors.New("failed to fetch block participants")

	// ErrDeliveryFailed is returned by notification sinks when a message
	// could not be delivered. Failed deliveries are not retried.
	ErrDeliveryFailed = errors.New("notification delivery failed")
)

// Block is the part of a chain block the monitor needs. It is never persisted.
type Block struct {
	Number       uint64
	Timestamp    time.Time
	Participants types.Set[types.Address] // canonical sender and receiver addresses
}

// ChainSource abstracts the chain node the monitor follows.
type ChainSource interface {
	// Subscribe announces newly observed block numbers. Numbers never
	// decrease but may skip values. The channel is closed once ctx is done
	// and the subscription cannot be restarted.
	Subscribe(ctx context.Context) (<-chan uint64, error)

	// FetchParticipants returns the block with the given number and the
	// addresses found in its transactions.
	FetchParticipants(ctx context.Context, number uint64) (Block, error)
}

// Watchlist is the read side of the address watchlist.
type Watchlist interface {
	// AllUsers returns every user owning a watchlist.
	AllUsers() []watchlist.UserID

	// Snapshot returns a point-in-time copy of the user's addresses.
	Snapshot(user watchlist.UserID) []types.Address
}

// ActivityFeed is an external wallet history provider.
//
// Query bounds are block numbers or unix timestamps depending on RangeKind.
// An empty result is not an error: the provider may lag the chain.
// Failures wrap activity.ErrTransient, activity.ErrRateLimited or
// activity.ErrPermanent.
type ActivityFeed interface {
	RangeKind() activity.RangeKind
	Query(ctx context.Context, address types.Address, from, to uint64) ([]activity.Record, error)
}

// NotificationSink delivers a finished event to a user.
type NotificationSink interface {
	// Notify delivers e to user. Implementations wrap ErrDeliveryFailed.
	Notify(ctx context.Context, user watchlist.UserID, e activity.Event) error
}

func fmtFetchError(err error) error {
	if errors.Is(err, ErrFetchParticipants) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrFetchParticipants, err)
}
