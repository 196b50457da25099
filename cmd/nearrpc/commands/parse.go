package commands

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
)

// parseBlockReference accepts a finality, a sync checkpoint, a height or a
// block hash. An empty value means the final block.
func parseBlockReference(value string) (entity.BlockReference, error) {
	if value == "" {
		return entity.FinalityReference(entity.FinalityFinal), nil
	}
	if slices.Contains(entity.Finalities, entity.Finality(value)) {
		return entity.FinalityReference(entity.Finality(value)), nil
	}
	if slices.Contains(entity.SyncCheckpoints, entity.SyncCheckpoint(value)) {
		return entity.SyncCheckpointReference(entity.SyncCheckpoint(value)), nil
	}

	id, err := parseBlockId(value)
	if err != nil {
		return entity.BlockReference{}, err
	}
	return entity.BlockIdReference(*id), nil
}

func parseBlockId(value string) (*entity.BlockId, error) {
	if height, err := strconv.ParseUint(value, 10, 64); err == nil {
		return entity.BlockIdFromHeight(entity.BlockHeight(height)), nil
	}
	if entity.IsCryptoHash(value) {
		return entity.BlockIdFromHash(entity.CryptoHash(value)), nil
	}
	return nil, fmt.Errorf("%q is neither a block height nor a block hash", value)
}

// parseOptionalBlockId returns nil for an empty value, which the node reads
// as the latest block.
func parseOptionalBlockId(value string) (*entity.BlockId, error) {
	if value == "" {
		return nil, nil
	}
	return parseBlockId(value)
}

func parseWaitUntil(value string) (entity.TxExecutionStatus, error) {
	status := entity.TxExecutionStatus(value)
	if !slices.Contains(entity.TxExecutionStatuses, status) {
		return "", fmt.Errorf("unknown execution status %q, want one of %v", value, entity.TxExecutionStatuses)
	}
	return status, nil
}
