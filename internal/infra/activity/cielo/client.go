// Package cielo implements a time-range activity feed on top of the Cielo
// wallet feed API.
package cielo

import (
	"net/http"

	"github.com/gabapcia/swapwatch/internal/activity"
	"github.com/gabapcia/swapwatch/internal/walletmonitor"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultBaseURL  = "https://feed-api.cielo.finance"
	defaultChain    = "ethereum"
	defaultMaxPages = 5
	apiKeyHeader    = "X-API-KEY"
)

var _ walletmonitor.ActivityFeed = (*client)(nil)

type config struct {
	baseURL  string
	chain    string
	maxPages int
}

// Option customizes the Cielo client.
type Option func(*config)

// WithBaseURL overrides the API root. Default: https://feed-api.cielo.finance.
func WithBaseURL(url string) Option {
	return func(c *config) {
		c.baseURL = url
	}
}

// WithChain restricts the feed to one chain. Default: ethereum.
func WithChain(chain string) Option {
	return func(c *config) {
		c.chain = chain
	}
}

// WithMaxPages bounds how many pages a single query may follow.
// Values below 1 are ignored. Default: 5.
func WithMaxPages(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxPages = n
		}
	}
}

type client struct {
	httpClient *retryablehttp.Client
	apiKey     string
	cfg        config
}

// NewClient returns a feed that authenticates with apiKey.
func NewClient(httpClient *retryablehttp.Client, apiKey string, opts ...Option) *client {
	cfg := config{
		baseURL:  defaultBaseURL,
		chain:    defaultChain,
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		httpClient: httpClient,
		apiKey:     apiKey,
		cfg:        cfg,
	}
}

// RangeKind reports that query bounds are unix timestamps.
func (c *client) RangeKind() activity.RangeKind {
	return activity.RangeTime
}

func (c *client) header() http.Header {
	return http.Header{apiKeyHeader: {c.apiKey}}
}
