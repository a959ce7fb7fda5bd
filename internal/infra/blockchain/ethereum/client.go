// Package ethereum implements the wallet monitor ChainSource for
// Ethereum-compatible nodes by polling their JSON-RPC API.
package ethereum

import (
	"time"

	"github.com/gabapcia/swapwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/swapwatch/internal/walletmonitor"
)

type config struct {
	pollInterval  time.Duration
	confirmations uint64
	maxCatchUp    uint64
}

// Option configures the client.
type Option func(*config)

// WithPollInterval sets how often the node is asked for its latest block.
// Defaults to 12 seconds, the average Ethereum block time.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithConfirmations sets how many blocks behind the head the client stays.
// History providers index blocks with some delay, so the default is 1.
func WithConfirmations(n uint64) Option {
	return func(c *config) {
		c.confirmations = n
	}
}

// WithMaxCatchUp bounds how many block numbers a single poll may announce.
// Older numbers are skipped. Defaults to 32.
func WithMaxCatchUp(n uint64) Option {
	return func(c *config) {
		c.maxCatchUp = max(n, 1)
	}
}

// client implements walletmonitor.ChainSource over a JSON-RPC connection.
type client struct {
	conn jsonrpc.Client
	cfg  config
}

// Ensure client implements the walletmonitor.ChainSource interface at compile time.
var _ walletmonitor.ChainSource = (*client)(nil)

// NewClient creates a chain source using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	cfg := config{
		pollInterval:  12 * time.Second,
		confirmations: 1,
		maxCatchUp:    32,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn: conn,
		cfg:  cfg,
	}
}
