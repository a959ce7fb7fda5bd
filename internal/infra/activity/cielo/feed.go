package cielo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/swapwatch/internal/activity"
	"github.com/gabapcia/swapwatch/internal/infra/activity/httpfeed"
	"github.com/gabapcia/swapwatch/internal/pkg/logger"
	"github.com/gabapcia/swapwatch/internal/pkg/types"

	"github.com/shopspring/decimal"
)

const (
	txTypeSwap     = "swap"
	txTypeTransfer = "transfer"

	categoryTransfer = "transfer"
)

type feedItem struct {
	TxHash    string `json:"tx_hash"`
	TxType    string `json:"tx_type"`
	Block     uint64 `json:"block"`
	Timestamp int64  `json:"timestamp"`
	Wallet    string `json:"wallet"`

	// swap fields: token0 leaves the wallet, token1 enters it
	Token0Address  string              `json:"token0_address"`
	Token0Name     string              `json:"token0_name"`
	Token0Symbol   string              `json:"token0_symbol"`
	Token0Amount   decimal.Decimal     `json:"token0_amount"`
	Token0PriceUSD decimal.NullDecimal `json:"token0_price_usd"`
	Token1Address  string              `json:"token1_address"`
	Token1Name     string              `json:"token1_name"`
	Token1Symbol   string              `json:"token1_symbol"`
	Token1Amount   decimal.Decimal     `json:"token1_amount"`
	Token1PriceUSD decimal.NullDecimal `json:"token1_price_usd"`

	// transfer fields
	From         string              `json:"from"`
	To           string              `json:"to"`
	TokenAddress string              `json:"contract_address"`
	TokenName    string              `json:"name"`
	TokenSymbol  string              `json:"symbol"`
	Amount       decimal.Decimal     `json:"amount"`
	PriceUSD     decimal.NullDecimal `json:"price_usd"`
	MarketCap    decimal.NullDecimal `json:"market_cap"`
}

type feedResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items  []feedItem `json:"items"`
		Paging struct {
			NextObjectID string `json:"next_object_id"`
			HasNextPage  bool   `json:"has_next_page"`
		} `json:"paging"`
	} `json:"data"`
}

func optional(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}

	v := d.Decimal
	return &v
}

func (i feedItem) toRecord() (activity.Record, bool) {
	record := activity.Record{
		TxHash:      strings.ToLower(i.TxHash),
		BlockNumber: i.Block,
		Timestamp:   time.Unix(i.Timestamp, 0).UTC(),
	}

	wallet := types.NormalizeAddress(i.Wallet)

	switch i.TxType {
	case txTypeSwap:
		record.Category = activity.CategoryTokenSwap
		record.Transfers = []activity.Transfer{
			{
				From:         wallet,
				TokenAddress: types.NormalizeAddress(i.Token0Address),
				TokenName:    i.Token0Name,
				TokenSymbol:  i.Token0Symbol,
				Amount:       i.Token0Amount,
				PriceUSD:     optional(i.Token0PriceUSD),
				LogIndex:     -1,
			},
			{
				To:           wallet,
				TokenAddress: types.NormalizeAddress(i.Token1Address),
				TokenName:    i.Token1Name,
				TokenSymbol:  i.Token1Symbol,
				Amount:       i.Token1Amount,
				PriceUSD:     optional(i.Token1PriceUSD),
				LogIndex:     -1,
			},
		}
	case txTypeTransfer:
		record.Category = categoryTransfer
		record.Transfers = []activity.Transfer{{
			From:         types.NormalizeAddress(i.From),
			To:           types.NormalizeAddress(i.To),
			TokenAddress: types.NormalizeAddress(i.TokenAddress),
			TokenName:    i.TokenName,
			TokenSymbol:  i.TokenSymbol,
			Amount:       i.Amount,
			PriceUSD:     optional(i.PriceUSD),
			MarketCap:    optional(i.MarketCap),
			LogIndex:     -1,
		}}
	default:
		return activity.Record{}, false
	}

	return record, true
}

func (c *client) feedURL(address types.Address, from, to uint64, startFrom string) string {
	q := url.Values{}
	q.Set("wallet", address.String())
	q.Set("chains", c.cfg.chain)
	q.Set("from_timestamp", strconv.FormatUint(from, 10))
	q.Set("to_timestamp", strconv.FormatUint(to, 10))
	if startFrom != "" {
		q.Set("start_from", startFrom)
	}

	return fmt.Sprintf("%s/api/v1/feed?%s", strings.TrimRight(c.cfg.baseURL, "/"), q.Encode())
}

// Query returns the swaps and transfers of address with a timestamp between
// from and to, both inclusive unix seconds. Feed items of other types are
// ignored.
func (c *client) Query(ctx context.Context, address types.Address, from, to uint64) ([]activity.Record, error) {
	var (
		records   []activity.Record
		startFrom string
	)

	for page := 0; page < c.cfg.maxPages; page++ {
		var res feedResponse
		if err := httpfeed.GetJSON(ctx, c.httpClient, c.feedURL(address, from, to, startFrom), c.header(), &res); err != nil {
			return nil, err
		}

		if res.Status != "" && res.Status != "ok" {
			return nil, fmt.Errorf("%w: feed status %q", activity.ErrTransient, res.Status)
		}

		for _, item := range res.Data.Items {
			if item.Wallet == "" {
				item.Wallet = address.String()
			}

			if record, ok := item.toRecord(); ok {
				records = append(records, record)
			}
		}

		if !res.Data.Paging.HasNextPage || res.Data.Paging.NextObjectID == "" {
			return records, nil
		}
		startFrom = res.Data.Paging.NextObjectID
	}

	logger.Warn(ctx, "wallet feed truncated at page limit",
		"wallet.address", address,
		"feed.pages", c.cfg.maxPages,
	)

	return records, nil
}
