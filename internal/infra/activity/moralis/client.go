// Package moralis implements a block-range activity feed on top of the
// Moralis wallet history API.
package moralis

import (
	"net/http"

	"github.com/gabapcia/swapwatch/internal/activity"
	"github.com/gabapcia/swapwatch/internal/walletmonitor"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultBaseURL  = "https://deep-index.moralis.io"
	defaultChain    = "eth"
	defaultMaxPages = 5
	apiKeyHeader    = "X-API-Key"
)

var _ walletmonitor.ActivityFeed = (*client)(nil)

type config struct {
	baseURL  string
	chain    string
	maxPages int
}

// Option customizes the Moralis client.
type Option func(*config)

// WithBaseURL overrides the API root. Default: https://deep-index.moralis.io.
func WithBaseURL(url string) Option {
	return func(c *config) {
		c.baseURL = url
	}
}

// WithChain sets the chain identifier sent with every query. Default: eth.
func WithChain(chain string) Option {
	return func(c *config) {
		c.chain = chain
	}
}

// WithMaxPages bounds how many cursor pages a single query may follow.
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

// NewClient returns a feed that authenticates with apiKey. The HTTP client
// should pass through error responses so rate limiting can be detected.
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

// RangeKind reports that query bounds are block numbers.
func (c *client) RangeKind() activity.RangeKind {
	return activity.RangeBlock
}

func (c *client) header() http.Header {
	return http.Header{apiKeyHeader: {c.apiKey}}
}
