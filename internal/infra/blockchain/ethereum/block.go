package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/swapwatch/internal/pkg/logger"
	"github.com/gabapcia/swapwatch/internal/pkg/types"
	"github.com/gabapcia/swapwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/swapwatch/internal/walletmonitor"
)

// ErrBlockNotFound is returned when the node does not know the requested block.
var ErrBlockNotFound = errors.New("block not found")

type (
	// TransactionResponse holds the transaction fields read from eth_getBlockByNumber.
	TransactionResponse struct {
		Hash string `json:"hash"`
		From string `json:"from"`
		To   string `json:"to"` // empty for contract creations
	}

	// BlockResponse holds the block fields read from eth_getBlockByNumber.
	BlockResponse struct {
		Hash         string                `json:"hash"`
		Number       types.Hex             `json:"number"`
		Timestamp    types.Hex             `json:"timestamp"`
		Transactions []TransactionResponse `json:"transactions"`
	}
)

// toBlock converts a BlockResponse into the monitor's Block, collecting the
// canonical sender and receiver of every transaction.
func (b BlockResponse) toBlock() walletmonitor.Block {
	participants := types.NewSet[types.Address]()
	for _, tx := range b.Transactions {
		if tx.From != "" {
			participants.Add(types.NormalizeAddress(tx.From))
		}

		if tx.To != "" {
			participants.Add(types.NormalizeAddress(tx.To))
		}
	}

	return walletmonitor.Block{
		Number:       b.Number.Uint64(),
		Timestamp:    time.Unix(int64(b.Timestamp.Uint64()), 0).UTC(),
		Participants: participants,
	}
}

// getLatestBlockNumber fetches the latest block number from the node.
func (c *client) getLatestBlockNumber(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	var blockNumber types.Hex
	if err := json.Unmarshal(data, &blockNumber); err != nil {
		return 0, err
	}

	return blockNumber.Uint64(), nil
}

// getBlockByNumber retrieves a block with its full transaction objects.
func (c *client) getBlockByNumber(ctx context.Context, number uint64) (BlockResponse, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBlockByNumber", types.HexFromUint64(number), true)
	if err != nil {
		return BlockResponse{}, err
	}

	var blockResponse BlockResponse
	if err := json.Unmarshal(data, &blockResponse); err != nil {
		return BlockResponse{}, err
	}

	if blockResponse.Number == "" {
		return BlockResponse{}, fmt.Errorf("%w: %d", ErrBlockNotFound, number)
	}

	return blockResponse, nil
}

// FetchParticipants implements walletmonitor.ChainSource.
func (c *client) FetchParticipants(ctx context.Context, number uint64) (walletmonitor.Block, error) {
	block, err := c.getBlockByNumber(ctx, number)
	if err != nil {
		return walletmonitor.Block{}, fmt.Errorf("%w: %w", walletmonitor.ErrFetchParticipants, err)
	}

	return block.toBlock(), nil
}

// confirmedHead returns the latest block number minus the confirmation depth.
func (c *client) confirmedHead(ctx context.Context) (uint64, error) {
	latest, err := c.getLatestBlockNumber(ctx)
	if err != nil {
		return 0, err
	}

	if latest < c.cfg.confirmations {
		return 0, nil
	}

	return latest - c.cfg.confirmations, nil
}

// pollNewBlocks announces every confirmed block after cursor, at most
// maxCatchUp of them, and returns the new cursor.
func (c *client) pollNewBlocks(ctx context.Context, cursor uint64, heads chan<- uint64) uint64 {
	head, err := c.confirmedHead(ctx)
	if err != nil {
		logger.Warn(ctx, "failed to poll latest block", "block.cursor", cursor, "error", err)
		return cursor
	}

	if head <= cursor {
		return cursor
	}

	from := cursor + 1
	if head-from >= c.cfg.maxCatchUp {
		from = head - c.cfg.maxCatchUp + 1
		logger.Warn(ctx, "falling behind chain head, skipping blocks",
			"block.skipped_from", cursor+1,
			"block.skipped_to", from-1,
		)
	}

	for n := from; n <= head; n++ {
		if !chflow.Send(ctx, heads, n) {
			return n - 1
		}
	}

	return head
}

// Subscribe implements walletmonitor.ChainSource. The first announced block
// is the one confirmed after the subscription starts.
func (c *client) Subscribe(ctx context.Context) (<-chan uint64, error) {
	cursor, err := c.confirmedHead(ctx)
	if err != nil {
		return nil, err
	}

	heads := make(chan uint64, c.cfg.maxCatchUp)
	go func() {
		defer close(heads)

		for chflow.Sleep(ctx, c.cfg.pollInterval) {
			cursor = c.pollNewBlocks(ctx, cursor, heads)
		}
	}()

	return heads, nil
}
