// Package redis implements storage-backed collaborators of the wallet
// monitor on top of Redis.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type config struct {
	username    string
	password    string
	db          int
	deliveryTTL time.Duration
}

// Option configures the Redis client.
type Option func(*config)

// WithCredentials sets the ACL username and password.
func WithCredentials(username, password string) Option {
	return func(c *config) {
		c.username = username
		c.password = password
	}
}

// WithDB selects the logical database.
func WithDB(db int) Option {
	return func(c *config) {
		c.db = db
	}
}

// WithDeliveryTTL sets for how long a delivery claim is kept. Defaults to 24 hours.
func WithDeliveryTTL(d time.Duration) Option {
	return func(c *config) {
		c.deliveryTTL = d
	}
}

type client struct {
	conn        *redis.Client
	deliveryTTL time.Duration
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to the Redis server at addr and checks the connection
// with a PING.
func NewClient(ctx context.Context, addr string, opts ...Option) (*client, error) {
	cfg := config{deliveryTTL: 24 * time.Hour}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn:        conn,
		deliveryTTL: cfg.deliveryTTL,
	}, nil
}
