package config

import (
	"testing"
	"time"

	"github.com/gabapcia/swapwatch/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SWAPWATCH_CHAIN_URL", "https://rpc.example.com")
	t.Setenv("SWAPWATCH_FEED_API_KEY", "key")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "swapwatch", cfg.ServiceName)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.Telemetry)
		assert.Equal(t, ChainJSONRPC, cfg.Chain.Kind)
		assert.Equal(t, 12*time.Second, cfg.Chain.PollInterval)
		assert.Equal(t, uint64(1), cfg.Chain.Confirmations)
		assert.Equal(t, FeedMoralis, cfg.Feed.Kind)
		assert.Equal(t, 5, cfg.Feed.MaxPages)
		assert.Equal(t, uint(10), cfg.Retry.Attempts)
		assert.Equal(t, time.Second, cfg.Retry.Delay)
		assert.Equal(t, BackoffFixed, cfg.Retry.Backoff)
		assert.Equal(t, 15*time.Second, cfg.Monitor.AttemptTimeout)
		assert.Equal(t, 10*time.Minute, cfg.Monitor.DedupRetention)
		assert.Equal(t, SinkLog, cfg.Sink.Kind)
		assert.Empty(t, cfg.Redis.Addr)
		assert.Equal(t, 24*time.Hour, cfg.Redis.DeliveryTTL)
		assert.Empty(t, cfg.Watchlist)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SWAPWATCH_CHAIN_KIND", "websocket")
		t.Setenv("SWAPWATCH_CHAIN_URL", "wss://rpc.example.com")
		t.Setenv("SWAPWATCH_FEED_KIND", "cielo")
		t.Setenv("SWAPWATCH_RETRY_ATTEMPTS", "3")
		t.Setenv("SWAPWATCH_RETRY_BACKOFF", "exponential")
		t.Setenv("SWAPWATCH_MONITOR_STOP_ON_EMPTY", "true")
		t.Setenv("SWAPWATCH_SINK_KIND", "telegram")
		t.Setenv("SWAPWATCH_SINK_TELEGRAM_TOKEN", "bot")
		t.Setenv("SWAPWATCH_REDIS_ADDR", "localhost:6379")
		t.Setenv("SWAPWATCH_WATCHLIST", "1:0x1111111111111111111111111111111111111111,2:0x2222222222222222222222222222222222222222")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ChainWebsocket, cfg.Chain.Kind)
		assert.Equal(t, FeedCielo, cfg.Feed.Kind)
		assert.Equal(t, uint(3), cfg.Retry.Attempts)
		assert.True(t, cfg.Monitor.StopOnEmpty)
		assert.Equal(t, SinkTelegram, cfg.Sink.Kind)
		assert.Equal(t, "bot", cfg.Sink.TelegramToken)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Len(t, cfg.Watchlist, 2)
	})

	t.Run("missing required values", func(t *testing.T) {
		t.Setenv("SWAPWATCH_CHAIN_URL", "")
		t.Setenv("SWAPWATCH_FEED_API_KEY", "")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("telegram sink requires a token", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SWAPWATCH_SINK_KIND", "telegram")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("unknown feed kind", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SWAPWATCH_FEED_KIND", "etherscan")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("malformed duration", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SWAPWATCH_MONITOR_ATTEMPT_TIMEOUT", "soon")

		_, err := Load()
		assert.Error(t, err)
		assert.NotErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestRetry_RetryOptions(t *testing.T) {
	r := Retry{Attempts: 4, Delay: time.Second, MaxDelay: 2 * time.Second, Backoff: BackoffExponential}
	assert.Len(t, r.RetryOptions(), 4)
}
