package main

import (
	"context"
	"fmt"

	"github.com/gabapcia/swapwatch/internal/config"
	"github.com/gabapcia/swapwatch/internal/infra/activity/cielo"
	"github.com/gabapcia/swapwatch/internal/infra/activity/moralis"
	"github.com/gabapcia/swapwatch/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/swapwatch/internal/infra/blockchain/geth"
	"github.com/gabapcia/swapwatch/internal/infra/notification/logsink"
	"github.com/gabapcia/swapwatch/internal/infra/notification/telegram"
	"github.com/gabapcia/swapwatch/internal/infra/storage/redis"
	"github.com/gabapcia/swapwatch/internal/pkg/resilience/retry"
	transporthttp "github.com/gabapcia/swapwatch/internal/pkg/transport/http"
	"github.com/gabapcia/swapwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/swapwatch/internal/walletmonitor"
	"github.com/gabapcia/swapwatch/internal/watchlist"
)

type cleanupFunc func()

func newChainSource(ctx context.Context, cfg config.Chain) (walletmonitor.ChainSource, cleanupFunc, error) {
	switch cfg.Kind {
	case config.ChainWebsocket:
		c, err := geth.Dial(ctx, cfg.URL, geth.WithConfirmations(cfg.Confirmations))
		if err != nil {
			return nil, nil, fmt.Errorf("dial chain: %w", err)
		}
		return c, c.Close, nil
	default:
		conn := jsonrpc.NewClient(transporthttp.NewClient(), cfg.URL)
		c := ethereum.NewClient(conn,
			ethereum.WithPollInterval(cfg.PollInterval),
			ethereum.WithConfirmations(cfg.Confirmations),
			ethereum.WithMaxCatchUp(cfg.MaxCatchUp),
		)
		return c, func() {}, nil
	}
}

func newActivityFeed(cfg config.Feed) walletmonitor.ActivityFeed {
	// lookups own the retry budget, the transport only reports status codes
	httpClient := transporthttp.NewClient(
		transporthttp.WithRetryMax(0),
		transporthttp.WithPassthroughErrors(),
	)

	switch cfg.Kind {
	case config.FeedCielo:
		opts := []cielo.Option{cielo.WithMaxPages(cfg.MaxPages)}
		if cfg.BaseURL != "" {
			opts = append(opts, cielo.WithBaseURL(cfg.BaseURL))
		}
		if cfg.Chain != "" {
			opts = append(opts, cielo.WithChain(cfg.Chain))
		}
		return cielo.NewClient(httpClient, cfg.APIKey, opts...)
	default:
		opts := []moralis.Option{moralis.WithMaxPages(cfg.MaxPages)}
		if cfg.BaseURL != "" {
			opts = append(opts, moralis.WithBaseURL(cfg.BaseURL))
		}
		if cfg.Chain != "" {
			opts = append(opts, moralis.WithChain(cfg.Chain))
		}
		return moralis.NewClient(httpClient, cfg.APIKey, opts...)
	}
}

func newNotificationSink(cfg config.Sink) walletmonitor.NotificationSink {
	switch cfg.Kind {
	case config.SinkTelegram:
		var opts []telegram.Option
		if cfg.TelegramURL != "" {
			opts = append(opts, telegram.WithBaseURL(cfg.TelegramURL))
		}
		if cfg.ExplorerURL != "" {
			opts = append(opts, telegram.WithExplorerURL(cfg.ExplorerURL))
		}
		return telegram.NewClient(transporthttp.NewClient(transporthttp.WithRetryMax(0)), cfg.TelegramToken, opts...)
	default:
		return logsink.New()
	}
}

func newMonitor(ctx context.Context, cfg config.Config, wl *watchlist.Watchlist) (walletmonitor.Service, cleanupFunc, error) {
	chain, closeChain, err := newChainSource(ctx, cfg.Chain)
	if err != nil {
		return nil, nil, err
	}

	cleanups := []cleanupFunc{closeChain}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	opts := []walletmonitor.Option{
		walletmonitor.WithRetry(retry.New(cfg.Retry.RetryOptions()...)),
		walletmonitor.WithStopOnEmpty(cfg.Monitor.StopOnEmpty),
		walletmonitor.WithAttemptTimeout(cfg.Monitor.AttemptTimeout),
		walletmonitor.WithDedupRetention(cfg.Monitor.DedupRetention),
	}

	if cfg.Redis.Addr != "" {
		guard, err := redis.NewClient(ctx, cfg.Redis.Addr,
			redis.WithCredentials(cfg.Redis.Username, cfg.Redis.Password),
			redis.WithDB(cfg.Redis.DB),
			redis.WithDeliveryTTL(cfg.Redis.DeliveryTTL),
		)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		cleanups = append(cleanups, func() { _ = guard.Close() })
		opts = append(opts, walletmonitor.WithDeliveryGuard(guard))
	}

	monitor, err := walletmonitor.New(chain, wl, newActivityFeed(cfg.Feed), newNotificationSink(cfg.Sink), opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return monitor, cleanup, nil
}
