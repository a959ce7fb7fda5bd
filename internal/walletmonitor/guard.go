package walletmonitor

import (
	"context"
	"fmt"

	"github.com/gabapcia/swapwatch/internal/watchlist"
)

// DeliveryGuard claims the right to deliver an event across processes
// sharing the same notification channel. It complements the in-memory dedup
// window, which only covers the current process.
type DeliveryGuard interface {
	// TryAcquire returns true when the caller is the first to claim the key.
	TryAcquire(ctx context.Context, key string) (bool, error)
}

// nopDeliveryGuard always grants delivery.
type nopDeliveryGuard struct{}

func (nopDeliveryGuard) TryAcquire(context.Context, string) (bool, error) {
	return true, nil
}

// deliveryKey is the DeliveryGuard key of an event identity for user.
func deliveryKey(user watchlist.UserID, identity string) string {
	return fmt.Sprintf("%d:%s", user, identity)
}
