// Package logsink is a NotificationSink that writes each event as a
// structured log line. It is meant for local runs and dry runs.
package logsink

import (
	"context"

	"github.com/gabapcia/swapwatch/internal/activity"
	"github.com/gabapcia/swapwatch/internal/pkg/logger"
	"github.com/gabapcia/swapwatch/internal/walletmonitor"
	"github.com/gabapcia/swapwatch/internal/watchlist"
)

var _ walletmonitor.NotificationSink = sink{}

type sink struct{}

// New returns a sink that logs events at info level.
func New() sink {
	return sink{}
}

func (sink) Notify(ctx context.Context, user watchlist.UserID, e activity.Event) error {
	kv := []any{
		"notification.user", user,
		"event.kind", e.Kind,
		"event.identity", e.Identity(),
		"wallet.address", e.Wallet,
		"token.address", e.TokenAddress,
		"token.name", e.TokenName,
		"token.symbol", e.TokenSymbol,
		"token.amount", e.AmountFormatted(),
		"tx.hash", e.TxHash,
		"event.occurred_at", e.OccurredAt,
	}
	if e.PriceUSD != nil {
		kv = append(kv, "token.price_usd", e.PriceUSD.String())
	}
	if e.MarketCap != nil {
		kv = append(kv, "token.market_cap", e.MarketCap.String())
	}

	logger.Info(ctx, "wallet activity", kv...)
	return nil
}
