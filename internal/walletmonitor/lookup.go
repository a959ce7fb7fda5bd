package walletmonitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/swapwatch/internal/activity"
	"github.com/gabapcia/swapwatch/internal/pkg/logger"
	"github.com/gabapcia/swapwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/swapwatch/internal/pkg/types"
	"github.com/gabapcia/swapwatch/internal/watchlist"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// LookupKey identifies one outstanding lookup. At most one lookup runs per
// key at any time.
type LookupKey struct {
	User    watchlist.UserID
	Address types.Address
	Range   activity.RangeKind
	Value   uint64 // block number or unix timestamp, depending on Range
}

func (k LookupKey) String() string {
	return fmt.Sprintf("%d/%s/%s/%d", k.User, k.Address, k.Range, k.Value)
}

// inflight is the set of keys with a running lookup.
type inflight struct {
	mu   sync.Mutex
	keys types.Set[LookupKey]
}

func newInflight() *inflight {
	return &inflight{keys: types.NewSet[LookupKey]()}
}

// tryAcquire adds key to the set and reports whether it was absent.
func (f *inflight) tryAcquire(key LookupKey) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.keys.Contains(key) {
		return false
	}

	f.keys.Add(key)
	return true
}

func (f *inflight) release(key LookupKey) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.keys.Delete(key)
}

func (f *inflight) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.keys)
}

// startLookup launches the lookup for key unless one is already running.
// It returns false when the key was already in flight.
func (s *service) startLookup(ctx context.Context, key LookupKey, block Block) bool {
	if !s.inflight.tryAcquire(key) {
		logger.Debug(ctx, "lookup already in flight",
			"lookup.key", key.String(),
			"block.number", block.Number,
		)
		return false
	}

	s.lookups.Add(1)
	go func() {
		defer s.lookups.Done()

		s.runLookup(ctx, key, block)
	}()

	return true
}

// runLookup queries the feed for key under the retry policy and delivers the
// resolved events. The key is released before the report is handed over.
//
// ctx only controls whether a new attempt may start. Attempts and
// deliveries run on a detached context bounded by the attempt timeout so the
// work already started completes when the monitor is closed.
func (s *service) runLookup(ctx context.Context, key LookupKey, block Block) {
	report := LookupReport{
		ID:          newLookupID(),
		Key:         key,
		BlockNumber: block.Number,
		StartedAt:   time.Now(),
	}

	ctx, span := s.tracer.Start(ctx, "walletmonitor.lookup", trace.WithAttributes(
		attribute.String("lookup.id", report.ID),
		attribute.Int64("lookup.user", int64(key.User)),
		attribute.String("wallet.address", key.Address.String()),
		attribute.String("lookup.range", key.Range.String()),
		attribute.Int64("lookup.value", int64(key.Value)),
	))
	defer span.End()

	ctx = logger.Derive(ctx, "lookup.id", report.ID)
	s.metrics.lookupsStarted.Add(ctx, 1)

	var done func([]activity.Event) bool
	if !s.cfg.stopOnEmpty {
		done = retry.NonEmpty[activity.Event]
	}

	events, err := retry.Until(ctx, s.cfg.retry, func(ctx context.Context) ([]activity.Event, error) {
		report.Attempts++

		attemptCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.attemptTimeout)
		defer cancel()

		records, err := s.feed.Query(attemptCtx, key.Address, key.Value, key.Value)
		if err != nil {
			logger.Debug(ctx, "lookup attempt failed", "lookup.attempt", report.Attempts, "error", err)
			if errors.Is(err, activity.ErrPermanent) {
				return nil, retry.Permanent(err)
			}
			return nil, err
		}

		return activity.Resolve(key.Address, records), nil
	}, done)

	switch {
	case err == nil:
		report.State = LookupResolved
		s.metrics.lookupsResolved.Add(ctx, 1)
		s.deliver(ctx, key, block, events, &report)
	case errors.Is(err, activity.ErrPermanent):
		report.State = LookupFailed
		report.Err = err
		s.metrics.lookupsFailed.Add(ctx, 1)
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	default:
		report.State = LookupExhausted
		report.Err = err
		s.metrics.lookupsExhausted.Add(ctx, 1)
	}

	span.SetAttributes(
		attribute.String("lookup.state", string(report.State)),
		attribute.Int("lookup.attempts", report.Attempts),
	)

	report.FinishedAt = time.Now()
	s.inflight.release(key)
	s.cfg.lookupReportHandler(ctx, report)
}

// deliver hands every new event to the sink, in feed order. Each event is
// offered once: failed deliveries are reported and not retried.
func (s *service) deliver(ctx context.Context, key LookupKey, block Block, events []activity.Event, report *LookupReport) {
	for _, e := range events {
		if !s.dedup.observe(key.User, e, block.Timestamp) {
			report.Suppressed++
			s.metrics.duplicatesSuppressed.Add(ctx, 1)
			continue
		}

		deliveryCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.attemptTimeout)
		err := s.notify(deliveryCtx, key.User, e)
		cancel()

		switch {
		case errors.Is(err, errAlreadyClaimed):
			report.Suppressed++
			s.metrics.duplicatesSuppressed.Add(ctx, 1)
		case err != nil:
			report.Failed++
			s.metrics.notificationsFailed.Add(ctx, 1)
			logger.Error(ctx, "notification not delivered",
				"lookup.user", int64(key.User),
				"wallet.address", key.Address.String(),
				"event.kind", string(e.Kind),
				"event.tx_hash", e.TxHash,
				"error", err,
			)
		default:
			report.Delivered++
			s.metrics.notificationsDelivered.Add(ctx, 1)
		}
	}
}

var errAlreadyClaimed = errors.New("event already claimed")

func (s *service) notify(ctx context.Context, user watchlist.UserID, e activity.Event) error {
	acquired, err := s.cfg.deliveryGuard.TryAcquire(ctx, deliveryKey(user, e.Identity()))
	if err != nil {
		return fmt.Errorf("%w: delivery guard: %w", ErrDeliveryFailed, err)
	}

	if !acquired {
		return errAlreadyClaimed
	}

	if err := s.sink.Notify(ctx, user, e); err != nil {
		if !errors.Is(err, ErrDeliveryFailed) {
			err = fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
		}
		return err
	}

	return nil
}

func newLookupID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
