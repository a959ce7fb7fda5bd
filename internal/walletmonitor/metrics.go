package walletmonitor

import (
	"errors"

	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gabapcia/swapwatch/internal/walletmonitor"

type metrics struct {
	blocksProcessed        metric.Int64Counter
	blocksSkipped          metric.Int64Counter
	lookupsStarted         metric.Int64Counter
	lookupsResolved        metric.Int64Counter
	lookupsExhausted       metric.Int64Counter
	lookupsFailed          metric.Int64Counter
	notificationsDelivered metric.Int64Counter
	notificationsFailed    metric.Int64Counter
	duplicatesSuppressed   metric.Int64Counter
}

func newMetrics(meter metric.Meter) (metrics, error) {
	var (
		m    metrics
		errs []error
	)

	counter := func(name, description string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(description))
		errs = append(errs, err)
		return c
	}

	m.blocksProcessed = counter("walletmonitor.blocks.processed", "Blocks whose participants were matched against watchlists")
	m.blocksSkipped = counter("walletmonitor.blocks.skipped", "Blocks skipped because their participants could not be fetched")
	m.lookupsStarted = counter("walletmonitor.lookups.started", "Activity lookups started")
	m.lookupsResolved = counter("walletmonitor.lookups.resolved", "Activity lookups that produced a final result")
	m.lookupsExhausted = counter("walletmonitor.lookups.exhausted", "Activity lookups that ran out of attempts")
	m.lookupsFailed = counter("walletmonitor.lookups.failed", "Activity lookups stopped by a permanent provider error")
	m.notificationsDelivered = counter("walletmonitor.notifications.delivered", "Events delivered to the notification sink")
	m.notificationsFailed = counter("walletmonitor.notifications.failed", "Events the notification sink failed to deliver")
	m.duplicatesSuppressed = counter("walletmonitor.duplicates.suppressed", "Events skipped because they were already delivered")

	return m, errors.Join(errs...)
}
