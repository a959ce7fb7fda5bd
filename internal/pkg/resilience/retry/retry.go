// Package retry provides a bounded retry mechanism for operations that may
// fail temporarily. It wraps the retry-go package from Avast and exposes a
// small interface with functional options.
//
// Every policy is bounded: the attempt budget can never be zero (which
// retry-go would read as "retry forever"). Errors wrapped with Permanent, or
// rejected by the WithRetryIf predicate, stop the sequence immediately.
//
// Basic usage:
//
//	r := retry.New()
//	err := r.Execute(ctx, func() error {
//	    return someOperation()
//	})
//
// Retrying until the result is acceptable:
//
//	events, err := retry.Until(ctx, r, query, retry.NonEmpty[Event])
//	if errors.Is(err, retry.ErrNotDone) {
//	    // every attempt succeeded but none produced a final result
//	}
package retry

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// ErrNotDone is returned by Until when the attempt budget ran out while the
// operation kept succeeding with results the caller does not deem final.
var ErrNotDone = errors.New("operation did not produce a final result")

// Backoff selects how the delay between attempts evolves.
type Backoff uint8

const (
	// BackoffExponential doubles the delay after every attempt, capped by the max delay.
	BackoffExponential Backoff = iota
	// BackoffFixed waits the base delay between every attempt.
	BackoffFixed
)

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs the given function with configured retry logic.
	//
	// The context allows for cancellation. If the context is canceled while
	// waiting between attempts, Execute stops and returns the context error.
	//
	// Execute returns nil as soon as the operation succeeds, the operation's
	// error when it is permanent, or the last error once all attempts fail.
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts    uint             // maximum number of attempts, including the first one
	delay       time.Duration    // base delay between attempts
	maxDelay    time.Duration    // cap for exponential growth
	backoff     Backoff          // delay strategy
	lastErrOnly bool             // whether to return only the last error
	retryIf     func(error) bool // extra predicate; false stops retrying
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New creates a Retry with the provided options.
//
// Default configuration:
//   - attempts:    3
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - backoff:     exponential
//   - lastErrOnly: true
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		backoff:     BackoffExponential,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) shouldRetry(err error) bool {
	if !retry.IsRecoverable(err) {
		return false
	}

	if r.cfg.retryIf != nil {
		return r.cfg.retryIf(err)
	}

	return true
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	delayType := retry.BackOffDelay
	if r.cfg.backoff == BackoffFixed {
		delayType = retry.FixedDelay
	}

	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(delayType),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.RetryIf(r.shouldRetry),
		retry.Context(ctx),
	}

	return retry.Do(operation, options...)
}

// Permanent marks err so that Execute stops without further attempts.
// errors.Is and errors.As still see through the returned error.
func Permanent(err error) error {
	return retry.Unrecoverable(err)
}

// Until runs operation under r until done reports its result as final.
//
// A successful result that done rejects counts as a failed attempt carrying
// ErrNotDone. The value of the last successful attempt is always returned,
// together with:
//   - nil when a final result was produced;
//   - ErrNotDone when every remaining attempt succeeded without a final result;
//   - the operation's error otherwise.
//
// A nil done accepts any successful result.
func Until[T any](ctx context.Context, r Retry, operation func(ctx context.Context) (T, error), done func(T) bool) (T, error) {
	var last T
	err := r.Execute(ctx, func() error {
		v, err := operation(ctx)
		if err != nil {
			return err
		}

		last = v
		if done != nil && !done(v) {
			return ErrNotDone
		}

		return nil
	})

	return last, err
}

// NonEmpty is a done predicate for Until that accepts only non-empty slices.
func NonEmpty[T any](v []T) bool {
	return len(v) > 0
}

// WithAttempts sets the maximum number of attempts (including the initial
// attempt). Values below 1 are raised to 1.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = max(n, 1)
	}
}

// WithDelay sets the base delay between retry attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts for exponential backoff.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithBackoff selects the delay strategy.
func WithBackoff(b Backoff) Option {
	return func(c *config) {
		c.backoff = b
	}
}

// WithLastErrorOnly sets whether to return only the last error.
// When false, the errors of all attempts are combined.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf installs a predicate consulted after every failed attempt.
// Returning false stops the sequence and returns that attempt's error.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}
