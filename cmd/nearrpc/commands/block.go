package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
)

func blockCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "block [final|optimistic|near-final|genesis|earliest_available|height|hash]",
		Short: "Print a block, the final one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value string
			if len(args) == 1 {
				value = args[0]
			}
			ref, err := parseBlockReference(value)
			if err != nil {
				return err
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			block, err := opts.client.Block(ctx, entity.RpcBlockRequest{BlockReference: ref})
			if err != nil {
				return err
			}
			return opts.print(cmd, block)
		},
	}
}

func chunkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "chunk <chunk-hash> | chunk <block> <shard-id>",
		Short: "Print a chunk by its hash or by block and shard",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req entity.RpcChunkRequest
			if len(args) == 1 {
				if !entity.IsCryptoHash(args[0]) {
					return fmt.Errorf("%q is not a chunk hash", args[0])
				}
				req = entity.ChunkByHash(entity.CryptoHash(args[0]))
			} else {
				blockID, err := parseBlockId(args[0])
				if err != nil {
					return err
				}
				shard, err := strconv.ParseUint(args[1], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid shard id %q: %w", args[1], err)
				}
				req = entity.ChunkByBlockShard(*blockID, entity.ShardId(shard))
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			chunk, err := opts.client.Chunk(ctx, req)
			if err != nil {
				return err
			}
			return opts.print(cmd, chunk)
		},
	}
}
