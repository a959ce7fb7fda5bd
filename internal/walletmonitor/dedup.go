package walletmonitor

import (
	"sync"
	"time"

	"github.com/gabapcia/swapwatch/internal/activity"
	"github.com/gabapcia/swapwatch/internal/pkg/types"
	"github.com/gabapcia/swapwatch/internal/watchlist"
)

type walletKey struct {
	user    watchlist.UserID
	address types.Address
}

// walletSeen holds the event identities already delivered for one wallet of
// one user, keyed to the block time at which they were observed.
type walletSeen struct {
	watermark time.Time
	seen      map[string]time.Time
}

// dedupWindow suppresses events already delivered in the current session.
//
// Identities are kept for the retention period after they are observed.
// Once pruned, the wallet watermark moves to the pruning cutoff so events
// that occurred before it are still rejected.
type dedupWindow struct {
	mu        sync.Mutex
	retention time.Duration
	wallets   types.DefaultMap[walletKey, *walletSeen]
}

func newDedupWindow(retention time.Duration) *dedupWindow {
	return &dedupWindow{
		retention: retention,
		wallets: types.NewDefaultMap[walletKey](func() *walletSeen {
			return &walletSeen{seen: make(map[string]time.Time)}
		}),
	}
}

// observe reports whether e is new for the wallet of user, recording it when it is.
func (d *dedupWindow) observe(user watchlist.UserID, e activity.Event, observedAt time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	w := d.wallets.Get(walletKey{user: user, address: e.Wallet})
	if !e.OccurredAt.IsZero() && e.OccurredAt.Before(w.watermark) {
		return false
	}

	id := e.Identity()
	if _, ok := w.seen[id]; ok {
		return false
	}

	w.seen[id] = observedAt
	return true
}

// advance drops identities observed before now minus the retention period.
func (d *dedupWindow) advance(now time.Time) {
	cutoff := now.Add(-d.retention)

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, w := range d.wallets.All() {
		for id, at := range w.seen {
			if at.Before(cutoff) {
				delete(w.seen, id)
			}
		}

		if w.watermark.Before(cutoff) {
			w.watermark = cutoff
		}
	}
}
