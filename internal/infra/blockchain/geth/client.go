// Package geth implements the wallet monitor ChainSource on top of the
// go-ethereum client, following new heads through a websocket subscription.
package geth

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/gabapcia/swapwatch/internal/pkg/logger"
	"github.com/gabapcia/swapwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/swapwatch/internal/pkg/types"
	"github.com/gabapcia/swapwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/swapwatch/internal/walletmonitor"

	"github.com/ethereum/go-ethereum"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

type config struct {
	confirmations uint64
	resubscribe   retry.Retry
}

// Option configures the client.
type Option func(*config)

// WithConfirmations sets how many blocks behind each announced head the
// client stays. Defaults to 1.
func WithConfirmations(n uint64) Option {
	return func(c *config) {
		c.confirmations = n
	}
}

// WithResubscribeRetry sets the policy used to restore a dropped subscription.
func WithResubscribeRetry(r retry.Retry) Option {
	return func(c *config) {
		c.resubscribe = r
	}
}

type client struct {
	eth *ethclient.Client
	cfg config
}

// Ensure client implements the walletmonitor.ChainSource interface at compile time.
var _ walletmonitor.ChainSource = (*client)(nil)

// Dial connects to the node at rawURL. Subscriptions need a websocket or IPC endpoint.
func Dial(ctx context.Context, rawURL string, opts ...Option) (*client, error) {
	c, err := rpc.DialContext(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return NewClient(c, opts...), nil
}

// NewClient wraps an established RPC connection.
func NewClient(c *rpc.Client, opts ...Option) *client {
	cfg := config{
		confirmations: 1,
		resubscribe: retry.New(
			retry.WithAttempts(10),
			retry.WithDelay(time.Second),
			retry.WithMaxDelay(30*time.Second),
		),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		eth: ethclient.NewClient(c),
		cfg: cfg,
	}
}

// Close closes the underlying connection.
func (c *client) Close() {
	c.eth.Close()
}

// FetchParticipants implements walletmonitor.ChainSource.
func (c *client) FetchParticipants(ctx context.Context, number uint64) (walletmonitor.Block, error) {
	block, err := c.eth.BlockByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		return walletmonitor.Block{}, fmt.Errorf("%w: %w", walletmonitor.ErrFetchParticipants, err)
	}

	participants := types.NewSet[types.Address]()
	for i, tx := range block.Transactions() {
		from, err := c.eth.TransactionSender(ctx, tx, block.Hash(), uint(i))
		if err != nil {
			return walletmonitor.Block{}, fmt.Errorf("%w: sender of %s: %w", walletmonitor.ErrFetchParticipants, tx.Hash().Hex(), err)
		}
		participants.Add(types.NormalizeAddress(from.Hex()))

		if to := tx.To(); to != nil {
			participants.Add(types.NormalizeAddress(to.Hex()))
		}
	}

	return walletmonitor.Block{
		Number:       block.NumberU64(),
		Timestamp:    time.Unix(int64(block.Time()), 0).UTC(),
		Participants: participants,
	}, nil
}

func (c *client) subscribe(ctx context.Context, headers chan<- *gethtypes.Header) (ethereum.Subscription, error) {
	var sub ethereum.Subscription
	err := c.cfg.resubscribe.Execute(ctx, func() error {
		var err error
		sub, err = c.eth.SubscribeNewHead(ctx, headers)
		return err
	})

	return sub, err
}

// Subscribe implements walletmonitor.ChainSource. A dropped subscription is
// restored under the resubscribe policy. The channel is closed when ctx ends
// or the subscription cannot be restored.
func (c *client) Subscribe(ctx context.Context) (<-chan uint64, error) {
	headers := make(chan *gethtypes.Header)

	sub, err := c.eth.SubscribeNewHead(ctx, headers)
	if err != nil {
		return nil, err
	}

	heads := make(chan uint64, 16)
	go func() {
		defer close(heads)

		var last uint64
		for {
			select {
			case <-ctx.Done():
				sub.Unsubscribe()
				return
			case err := <-sub.Err():
				logger.Warn(ctx, "head subscription dropped", "error", err)

				sub, err = c.subscribe(ctx, headers)
				if err != nil {
					logger.Error(ctx, "failed to restore head subscription", "error", err)
					return
				}
			case header := <-headers:
				number := header.Number.Uint64()
				if number < c.cfg.confirmations {
					continue
				}

				number -= c.cfg.confirmations
				if number <= last && last != 0 {
					continue
				}

				if !chflow.Send(ctx, heads, number) {
					sub.Unsubscribe()
					return
				}
				last = number
			}
		}
	}()

	return heads, nil
}
