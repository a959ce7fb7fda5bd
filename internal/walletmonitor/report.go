package walletmonitor

import (
	"context"
	"time"

	"github.com/gabapcia/swapwatch/internal/pkg/logger"
)

// LookupState is the terminal state of a lookup.
type LookupState string

const (
	// LookupResolved means the feed produced a final result and its events
	// were handed to the sink.
	LookupResolved LookupState = "resolved"

	// LookupExhausted means the attempt budget ran out on empty results or
	// transient failures, or the monitor was closed mid-sequence.
	LookupExhausted LookupState = "exhausted"

	// LookupFailed means the feed returned a permanent error.
	LookupFailed LookupState = "failed"
)

// LookupReport describes how a lookup ended.
type LookupReport struct {
	ID          string
	Key         LookupKey
	BlockNumber uint64
	State       LookupState
	Attempts    int
	Delivered   int   // events accepted by the sink
	Suppressed  int   // events skipped as already delivered
	Failed      int   // events the sink failed to deliver
	Err         error // last error for exhausted and failed lookups
	StartedAt   time.Time
	FinishedAt  time.Time
}

// LookupReportHandler receives the report of every finished lookup.
type LookupReportHandler func(ctx context.Context, report LookupReport)

// BlockFailureHandler is called when a block is skipped because its
// participants could not be fetched.
type BlockFailureHandler func(ctx context.Context, number uint64, err error)

func defaultLookupReportHandler(ctx context.Context, r LookupReport) {
	kv := []any{
		"lookup.id", r.ID,
		"lookup.user", int64(r.Key.User),
		"wallet.address", r.Key.Address.String(),
		"lookup.range", r.Key.Range.String(),
		"lookup.value", r.Key.Value,
		"block.number", r.BlockNumber,
		"lookup.state", string(r.State),
		"lookup.attempts", r.Attempts,
		"lookup.delivered", r.Delivered,
		"lookup.suppressed", r.Suppressed,
		"lookup.duration", r.FinishedAt.Sub(r.StartedAt).String(),
	}

	switch r.State {
	case LookupResolved:
		if r.Failed > 0 {
			logger.Warn(ctx, "lookup resolved with failed deliveries", append(kv, "lookup.failed", r.Failed)...)
			return
		}
		logger.Info(ctx, "lookup resolved", kv...)
	case LookupExhausted:
		logger.Warn(ctx, "lookup exhausted", append(kv, "error", r.Err)...)
	default:
		logger.Error(ctx, "lookup failed", append(kv, "error", r.Err)...)
	}
}

func defaultBlockFailureHandler(ctx context.Context, number uint64, err error) {
	logger.Error(ctx, "block skipped",
		"block.number", number,
		"error", err,
	)
}
