package activity

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gabapcia/swapwatch/internal/pkg/types"

	"github.com/shopspring/decimal"
)

// Kind is the direction of an Event from the watched wallet's point of view.
type Kind string

const (
	KindBuy      Kind = "Buy"
	KindSell     Kind = "Sell"
	KindTransfer Kind = "Transfer"
)

// Event is a resolved activity record ready to be delivered to a user.
type Event struct {
	Kind         Kind
	Wallet       types.Address
	TokenAddress types.Address
	TokenName    string
	TokenSymbol  string
	Amount       decimal.Decimal
	PriceUSD     *decimal.Decimal
	MarketCap    *decimal.Decimal
	OccurredAt   time.Time
	TxHash       string

	logIndex int // -1 when the provider did not report one
	ordinal  int // position of the transfer inside its record
}

// AmountFormatted returns the amount as a plain decimal string.
func (e Event) AmountFormatted() string {
	return e.Amount.String()
}

// Identity returns a key that is stable across repeated queries for the same
// on-chain activity. It is "<txHash>:<logIndex>" for indexed transfers.
// Unindexed transfers live in their own "<txHash>:n<ordinal>|..." namespace,
// qualified by token, kind and amount, so they never collide with a log
// index of the same transaction. Without a hash it is a composite of the
// event fields.
func (e Event) Identity() string {
	if e.TxHash != "" && e.logIndex >= 0 {
		return e.TxHash + ":" + strconv.Itoa(e.logIndex)
	}

	if e.TxHash != "" {
		return fmt.Sprintf("%s:n%d|%s|%s|%s", e.TxHash, e.ordinal, e.TokenAddress, e.Kind, e.Amount.String())
	}

	return fmt.Sprintf("%s|%s|%s|%s|%d", e.Wallet, e.TokenAddress, e.Kind, e.Amount.String(), e.OccurredAt.Unix())
}

// Classify returns the Kind of t as seen from wallet. Non-swap records are
// transfers. Inside a swap, a transfer sent by wallet is a sale and anything
// else is a purchase.
func Classify(wallet types.Address, r Record, t Transfer) Kind {
	if !r.IsSwap() {
		return KindTransfer
	}

	if t.From == wallet {
		return KindSell
	}

	return KindBuy
}

// Resolve keeps the transfers of records in which wallet is the sender or the
// receiver and maps each of them to an Event. Provider order is preserved.
func Resolve(wallet types.Address, records []Record) []Event {
	var events []Event
	for _, r := range records {
		for i, t := range r.Transfers {
			if t.From != wallet && t.To != wallet {
				continue
			}

			logIndex := t.LogIndex
			if logIndex < 0 {
				logIndex = -1
			}

			events = append(events, Event{
				Kind:         Classify(wallet, r, t),
				Wallet:       wallet,
				TokenAddress: t.TokenAddress,
				TokenName:    t.TokenName,
				TokenSymbol:  t.TokenSymbol,
				Amount:       t.Amount,
				PriceUSD:     t.PriceUSD,
				MarketCap:    t.MarketCap,
				OccurredAt:   r.Timestamp,
				TxHash:       r.TxHash,
				logIndex:     logIndex,
				ordinal:      i,
			})
		}
	}

	return events
}
