package moralis

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

type erc20Transfer struct {
	TokenName      string  `json:"token_name"`
	TokenSymbol    string  `json:"token_symbol"`
	Address        string  `json:"address"`
	FromAddress    string  `json:"from_address"`
	ToAddress      string  `json:"to_address"`
	ValueFormatted string  `json:"value_formatted"`
	LogIndex       *int    `json:"log_index"`
	UsdPrice       *string `json:"usd_price"`
}

type nativeTransfer struct {
	TokenName      string `json:"token_name"`
	TokenSymbol    string `json:"token_symbol"`
	FromAddress    string `json:"from_address"`
	ToAddress      string `json:"to_address"`
	ValueFormatted string `json:"value_formatted"`
}

type historyItem struct {
	Hash            string           `json:"hash"`
	BlockNumber     string           `json:"block_number"`
	BlockTimestamp  string           `json:"block_timestamp"`
	Category        string           `json:"category"`
	ERC20Transfers  []erc20Transfer  `json:"erc20_transfers"`
	NativeTransfers []nativeTransfer `json:"native_transfers"`
}

type historyResponse struct {
	Cursor string        `json:"cursor"`
	Result []historyItem `json:"result"`
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid %s %q: %w", activity.ErrTransient, field, s, err)
	}

	return d, nil
}

func (t erc20Transfer) toTransfer() (activity.Transfer, error) {
	amount, err := parseDecimal("value_formatted", t.ValueFormatted)
	if err != nil {
		return activity.Transfer{}, err
	}

	transfer := activity.Transfer{
		From:         types.NormalizeAddress(t.FromAddress),
		To:           types.NormalizeAddress(t.ToAddress),
		TokenAddress: types.NormalizeAddress(t.Address),
		TokenName:    t.TokenName,
		TokenSymbol:  t.TokenSymbol,
		Amount:       amount,
		LogIndex:     -1,
	}

	if t.LogIndex != nil {
		transfer.LogIndex = *t.LogIndex
	}

	if t.UsdPrice != nil && *t.UsdPrice != "" {
		price, err := parseDecimal("usd_price", *t.UsdPrice)
		if err != nil {
			return activity.Transfer{}, err
		}
		transfer.PriceUSD = &price
	}

	return transfer, nil
}

func (t nativeTransfer) toTransfer() (activity.Transfer, error) {
	amount, err := parseDecimal("value_formatted", t.ValueFormatted)
	if err != nil {
		return activity.Transfer{}, err
	}

	return activity.Transfer{
		From:        types.NormalizeAddress(t.FromAddress),
		To:          types.NormalizeAddress(t.ToAddress),
		TokenName:   t.TokenName,
		TokenSymbol: t.TokenSymbol,
		Amount:      amount,
		LogIndex:    -1,
	}, nil
}

func (i historyItem) toRecord() (activity.Record, error) {
	record := activity.Record{
		TxHash:   strings.ToLower(i.Hash),
		Category: i.Category,
	}

	if i.BlockNumber != "" {
		n, err := strconv.ParseUint(i.BlockNumber, 10, 64)
		if err != nil {
			return activity.Record{}, fmt.Errorf("%w: invalid block_number %q: %w", activity.ErrTransient, i.BlockNumber, err)
		}
		record.BlockNumber = n
	}

	if i.BlockTimestamp != "" {
		ts, err := time.Parse(time.RFC3339Nano, i.BlockTimestamp)
		if err != nil {
			return activity.Record{}, fmt.Errorf("%w: invalid block_timestamp %q: %w", activity.ErrTransient, i.BlockTimestamp, err)
		}
		record.Timestamp = ts.UTC()
	}

	for _, t := range i.ERC20Transfers {
		transfer, err := t.toTransfer()
		if err != nil {
			return activity.Record{}, err
		}
		record.Transfers = append(record.Transfers, transfer)
	}

	for _, t := range i.NativeTransfers {
		transfer, err := t.toTransfer()
		if err != nil {
			return activity.Record{}, err
		}
		record.Transfers = append(record.Transfers, transfer)
	}

	return record, nil
}

func (c *client) historyURL(address types.Address, from, to uint64, cursor string) string {
	q := url.Values{}
	q.Set("chain", c.cfg.chain)
	q.Set("from_block", strconv.FormatUint(from, 10))
	q.Set("to_block", strconv.FormatUint(to, 10))
	q.Set("order", "ASC")
	if cursor != "" {
		q.Set("cursor", cursor)
	}

	return fmt.Sprintf("%s/api/v2.2/wallets/%s/history?%s", strings.TrimRight(c.cfg.baseURL, "/"), address, q.Encode())
}

// Query returns the wallet history of address between blocks from and to,
// both inclusive, in ascending order. Pagination stops after the configured
// page limit.
func (c *client) Query(ctx context.Context, address types.Address, from, to uint64) ([]activity.Record, error) {
	var (
		records []activity.Record
		cursor  string
	)

	for page := 0; page < c.cfg.maxPages; page++ {
		var res historyResponse
		if err := httpfeed.GetJSON(ctx, c.httpClient, c.historyURL(address, from, to, cursor), c.header(), &res); err != nil {
			return nil, err
		}

		for _, item := range res.Result {
			record, err := item.toRecord()
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}

		if res.Cursor == "" {
			return records, nil
		}
		cursor = res.Cursor
	}

	logger.Warn(ctx, "wallet history truncated at page limit",
		"wallet.address", address,
		"history.pages", c.cfg.maxPages,
	)

	return records, nil
}
