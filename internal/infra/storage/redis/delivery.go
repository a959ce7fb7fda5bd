package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/swapwatch/internal/walletmonitor"
)

// deliveryKeyPrefix is the Redis key namespace of delivery claims.
const deliveryKeyPrefix = "swapwatch:delivery"

func deliveryKey(key string) string {
	return fmt.Sprintf("%s:%s", deliveryKeyPrefix, key)
}

// TryAcquire claims key with SET NX and the configured TTL. Only the first
// caller gets true until the claim expires, which lets several monitor
// replicas share one notification channel without duplicate messages.
func (c *client) TryAcquire(ctx context.Context, key string) (bool, error) {
	return c.conn.SetNX(ctx, deliveryKey(key), 1, c.deliveryTTL).Result()
}

// Ensure the client satisfies the DeliveryGuard interface at compile time.
var _ walletmonitor.DeliveryGuard = (*client)(nil)
