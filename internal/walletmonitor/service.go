package walletmonitor

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/swapwatch/internal/activity"
	"github.com/gabapcia/swapwatch/internal/pkg/logger"
	"github.com/gabapcia/swapwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/swapwatch/internal/pkg/x/chflow"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Service defines the wallet monitor lifecycle.
type Service interface {
	// Start subscribes to the chain source and begins matching blocks in
	// the background.
	//
	// Returns ErrServiceAlreadyStarted if the service is already running.
	Start(ctx context.Context) error

	// Close stops block ingestion. Running lookups finish their current
	// attempt, deliver what it resolved and do not start another one.
	// Close returns once every lookup has ended. It is safe to call Close
	// even if the service was never started.
	Close()
}

type config struct {
	retry               retry.Retry
	stopOnEmpty         bool
	attemptTimeout      time.Duration
	dedupRetention      time.Duration
	deliveryGuard       DeliveryGuard
	lookupReportHandler LookupReportHandler
	blockFailureHandler BlockFailureHandler
	meterProvider       metric.MeterProvider
	tracerProvider      trace.TracerProvider
}

// Option configures the monitor.
type Option func(*config)

// WithRetry sets the retry policy of lookups.
// Defaults to 10 attempts one second apart.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithStopOnEmpty makes an empty successful query final. By default lookups
// retry until the feed returns at least one event for the watched wallet.
func WithStopOnEmpty(b bool) Option {
	return func(c *config) {
		c.stopOnEmpty = b
	}
}

// WithAttemptTimeout bounds each feed query and each delivery.
// Defaults to 15 seconds.
func WithAttemptTimeout(d time.Duration) Option {
	return func(c *config) {
		c.attemptTimeout = d
	}
}

// WithDedupRetention sets for how long, in block time, delivered event
// identities are remembered. Defaults to 10 minutes.
func WithDedupRetention(d time.Duration) Option {
	return func(c *config) {
		c.dedupRetention = d
	}
}

// WithDeliveryGuard sets a cross-process guard consulted before every delivery.
func WithDeliveryGuard(g DeliveryGuard) Option {
	return func(c *config) {
		c.deliveryGuard = g
	}
}

// WithLookupReportHandler sets the handler of finished lookups.
// The default logs every report.
func WithLookupReportHandler(h LookupReportHandler) Option {
	return func(c *config) {
		c.lookupReportHandler = h
	}
}

// WithBlockFailureHandler sets the handler of skipped blocks.
// The default logs at error level.
func WithBlockFailureHandler(h BlockFailureHandler) Option {
	return func(c *config) {
		c.blockFailureHandler = h
	}
}

// WithMeterProvider sets the provider of the monitor counters.
// Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithTracerProvider sets the provider of lookup spans.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	cfg config

	chain     ChainSource
	watchlist Watchlist
	feed      ActivityFeed
	sink      NotificationSink

	inflight *inflight
	dedup    *dedupWindow
	lookups  sync.WaitGroup

	metrics metrics
	tracer  trace.Tracer
}

var _ Service = (*service)(nil)

// Start implements Service.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	heads, err := s.chain.Subscribe(ctx)
	if err != nil {
		cancel()
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.run(ctx, heads)
	}()

	s.closeFunc = func() {
		cancel()
		<-done
		s.lookups.Wait()
	}
	s.isStarted = true
	return nil
}

// Close implements Service.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

// run consumes block announcements until ctx is done or the source closes
// the channel.
func (s *service) run(ctx context.Context, heads <-chan uint64) {
	for {
		number, ok := chflow.Receive(ctx, heads)
		if !ok {
			return
		}

		s.processBlock(ctx, number)
	}
}

// processBlock matches the participants of a block against every watchlist
// and starts one lookup per match. It never waits on lookups.
func (s *service) processBlock(ctx context.Context, number uint64) {
	block, err := s.chain.FetchParticipants(ctx, number)
	if err != nil {
		if ctx.Err() != nil {
			return
		}

		s.metrics.blocksSkipped.Add(ctx, 1)
		s.cfg.blockFailureHandler(ctx, number, fmtFetchError(err))
		return
	}

	s.metrics.blocksProcessed.Add(ctx, 1)
	s.dedup.advance(block.Timestamp)

	rangeKind := s.feed.RangeKind()
	value := block.Number
	if rangeKind == activity.RangeTime {
		value = uint64(block.Timestamp.Unix())
	}

	for _, user := range s.watchlist.AllUsers() {
		snapshot := s.watchlist.Snapshot(user)
		if len(snapshot) == 0 {
			continue
		}

		for _, address := range block.Participants.Intersect(snapshot) {
			s.startLookup(ctx, LookupKey{
				User:    user,
				Address: address,
				Range:   rangeKind,
				Value:   value,
			}, block)
		}
	}

	logger.Debug(ctx, "block processed",
		"block.number", block.Number,
		"block.participants", len(block.Participants),
		"lookups.inflight", s.inflight.len(),
	)
}

// New creates a wallet monitor. Call Start to begin processing blocks.
func New(chain ChainSource, w Watchlist, feed ActivityFeed, sink NotificationSink, opts ...Option) (*service, error) {
	cfg := config{
		retry: retry.New(
			retry.WithAttempts(10),
			retry.WithDelay(time.Second),
			retry.WithBackoff(retry.BackoffFixed),
		),
		attemptTimeout:      15 * time.Second,
		dedupRetention:      10 * time.Minute,
		deliveryGuard:       nopDeliveryGuard{},
		lookupReportHandler: defaultLookupReportHandler,
		blockFailureHandler: defaultBlockFailureHandler,
		meterProvider:       otel.GetMeterProvider(),
		tracerProvider:      otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	m, err := newMetrics(cfg.meterProvider.Meter(instrumentationName))
	if err != nil {
		return nil, err
	}

	return &service{
		cfg:       cfg,
		chain:     chain,
		watchlist: w,
		feed:      feed,
		sink:      sink,
		inflight:  newInflight(),
		dedup:     newDedupWindow(cfg.dedupRetention),
		metrics:   m,
		tracer:    cfg.tracerProvider.Tracer(instrumentationName),
	}, nil
}
