package near

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
)

// MaxBlockRange is the most blocks FetchBlocksInRange fetches in one call.
const MaxBlockRange = 10_000

// FetchBlocksInRange fetches the blocks with heights from..to inclusive, at
// most concurrency at a time. Heights the node reports as UNKNOWN_BLOCK were
// skipped by the chain and are left out. Blocks are returned by height.
func (c *Client) FetchBlocksInRange(ctx context.Context, from, to entity.BlockHeight, concurrency int) ([]entity.RpcBlockResponse, error) {
	if from > to {
		return nil, fmt.Errorf("%w %d..%d", ErrInvalidRange, from, to)
	}
	if to-from >= MaxBlockRange {
		return nil, fmt.Errorf("%w %d..%d: more than %d blocks", ErrInvalidRange, from, to, MaxBlockRange)
	}

	slots := make([]*entity.RpcBlockResponse, to-from+1)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(concurrency, 1))

	for height := from; height <= to; height++ {
		g.Go(func() error {
			block, err := c.Block(gCtx, entity.RpcBlockRequest{
				BlockReference: entity.BlockIdReference(*entity.BlockIdFromHeight(height)),
			})
			if IsCause(err, entity.ErrorUnknownBlock) {
				c.log.Debug(fmt.Sprintf("block %d was skipped", height))
				return nil
			}
			if err != nil {
				return fmt.Errorf("could not fetch block %d: %w", height, err)
			}

			slots[height-from] = block
			return nil
		})

		if height == to {
			break
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	blocks := make([]entity.RpcBlockResponse, 0, len(slots))
	for _, block := range slots {
		if block != nil {
			blocks = append(blocks, *block)
		}
	}
	return blocks, nil
}
