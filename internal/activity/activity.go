// Package activity models the wallet activity returned by external history
// providers and turns it into classified, notification-ready events.
package activity

import (
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/swapwatch/internal/pkg/types"

	"github.com/shopspring/decimal"
)

var (
	// ErrTransient marks provider failures that may succeed when retried
	// (network errors, 5xx responses, malformed payloads).
	ErrTransient = errors.New("activity provider transient error")

	// ErrRateLimited marks provider responses rejected by rate limiting.
	// It is retried like ErrTransient.
	ErrRateLimited = errors.New("activity provider rate limited")

	// ErrPermanent marks provider failures that retrying cannot fix, such as
	// bad credentials or an unsupported chain. Lookups stop at the first one.
	ErrPermanent = errors.New("activity provider permanent error")
)

// CategoryTokenSwap is the history category of swap transactions.
const CategoryTokenSwap = "token swap"

// RangeKind tells which unit a provider's query bounds are expressed in.
type RangeKind int

const (
	// RangeBlock bounds are block numbers.
	RangeBlock RangeKind = iota

	// RangeTime bounds are unix timestamps in seconds.
	RangeTime
)

func (k RangeKind) String() string {
	switch k {
	case RangeBlock:
		return "block"
	case RangeTime:
		return "time"
	default:
		return fmt.Sprintf("RangeKind(%d)", int(k))
	}
}

// Transfer is a single token movement inside a Record.
type Transfer struct {
	From         types.Address
	To           types.Address
	TokenAddress types.Address // zero for the chain's native asset
	TokenName    string
	TokenSymbol  string
	Amount       decimal.Decimal // human readable, already scaled by token decimals

	PriceUSD  *decimal.Decimal
	MarketCap *decimal.Decimal

	// LogIndex is the position of the transfer log in its transaction, or -1
	// when the provider does not report it.
	LogIndex int
}

// Record is a provider-agnostic history entry for one transaction.
type Record struct {
	TxHash      string
	Category    string
	BlockNumber uint64
	Timestamp   time.Time
	Transfers   []Transfer
}

// IsSwap reports whether r describes a token swap.
func (r Record) IsSwap() bool {
	return r.Category == CategoryTokenSwap
}
