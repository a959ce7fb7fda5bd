// Package config reads the process configuration from SWAPWATCH_ prefixed
// environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/swapwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/swapwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "SWAPWATCH"

const (
	ChainJSONRPC   = "jsonrpc"
	ChainWebsocket = "websocket"

	FeedMoralis = "moralis"
	FeedCielo   = "cielo"

	SinkTelegram = "telegram"
	SinkLog      = "log"

	BackoffFixed       = "fixed"
	BackoffExponential = "exponential"
)

// Chain configures the block source.
type Chain struct {
	Kind          string        `envconfig:"KIND" default:"jsonrpc" validate:"oneof=jsonrpc websocket"`
	URL           string        `envconfig:"URL" validate:"required,url"`
	PollInterval  time.Duration `envconfig:"POLL_INTERVAL" default:"12s" validate:"gt=0"`
	Confirmations uint64        `envconfig:"CONFIRMATIONS" default:"1"`
	MaxCatchUp    uint64        `envconfig:"MAX_CATCH_UP" default:"32" validate:"gte=1"`
}

// Feed configures the activity provider.
type Feed struct {
	Kind     string `envconfig:"KIND" default:"moralis" validate:"oneof=moralis cielo"`
	APIKey   string `envconfig:"API_KEY" validate:"required"`
	BaseURL  string `envconfig:"BASE_URL" validate:"omitempty,url"`
	Chain    string `envconfig:"CHAIN"`
	MaxPages int    `envconfig:"MAX_PAGES" default:"5" validate:"gte=1"`
}

// Retry configures the lookup retry policy.
type Retry struct {
	Attempts uint          `envconfig:"ATTEMPTS" default:"10" validate:"gte=1"`
	Delay    time.Duration `envconfig:"DELAY" default:"1s" validate:"gt=0"`
	MaxDelay time.Duration `envconfig:"MAX_DELAY" default:"10s" validate:"gtefield=Delay"`
	Backoff  string        `envconfig:"BACKOFF" default:"fixed" validate:"oneof=fixed exponential"`
}

// Monitor configures the block monitor.
type Monitor struct {
	StopOnEmpty    bool          `envconfig:"STOP_ON_EMPTY" default:"false"`
	AttemptTimeout time.Duration `envconfig:"ATTEMPT_TIMEOUT" default:"15s" validate:"gt=0"`
	DedupRetention time.Duration `envconfig:"DEDUP_RETENTION" default:"10m" validate:"gt=0"`
}

// Sink configures the notification sink.
type Sink struct {
	Kind          string `envconfig:"KIND" default:"log" validate:"oneof=telegram log"`
	TelegramToken string `envconfig:"TELEGRAM_TOKEN" validate:"required_if=Kind telegram"`
	TelegramURL   string `envconfig:"TELEGRAM_URL" validate:"omitempty,url"`
	ExplorerURL   string `envconfig:"EXPLORER_URL" validate:"omitempty,url"`
}

// Redis configures the optional shared delivery guard. It is disabled when
// Addr is empty.
type Redis struct {
	Addr        string        `envconfig:"ADDR"`
	Username    string        `envconfig:"USERNAME"`
	Password    string        `envconfig:"PASSWORD"`
	DB          int           `envconfig:"DB" default:"0" validate:"gte=0"`
	DeliveryTTL time.Duration `envconfig:"DELIVERY_TTL" default:"24h" validate:"gt=0"`
}

// Config is the full process configuration.
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"swapwatch" validate:"required"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error dpanic panic fatal"`
	Telemetry   bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	Chain   Chain   `envconfig:"CHAIN"`
	Feed    Feed    `envconfig:"FEED"`
	Retry   Retry   `envconfig:"RETRY"`
	Monitor Monitor `envconfig:"MONITOR"`
	Sink    Sink    `envconfig:"SINK"`
	Redis   Redis   `envconfig:"REDIS"`

	// Watchlist holds "user:address" seed entries.
	Watchlist []string `envconfig:"WATCHLIST"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// RetryOptions translates the retry section into retry options.
func (r Retry) RetryOptions() []retry.Option {
	backoff := retry.BackoffFixed
	if strings.EqualFold(r.Backoff, BackoffExponential) {
		backoff = retry.BackoffExponential
	}

	return []retry.Option{
		retry.WithAttempts(r.Attempts),
		retry.WithDelay(r.Delay),
		retry.WithMaxDelay(r.MaxDelay),
		retry.WithBackoff(backoff),
	}
}
