package entity

import (
	"fmt"
	"math/big"
)

type CurrentEpochValidatorInfo struct {
	AccountID                       AccountId `json:"account_id"`
	PublicKey                       PublicKey `json:"public_key"`
	IsSlashed                       bool      `json:"is_slashed"`
	Stake                           Balance   `json:"stake"`
	Shards                          []ShardId `json:"shards"`
	NumProducedBlocks               uint64    `json:"num_produced_blocks"`
	NumExpectedBlocks               uint64    `json:"num_expected_blocks"`
	NumProducedChunks               *uint64   `json:"num_produced_chunks,omitempty"`
	NumExpectedChunks               *uint64   `json:"num_expected_chunks,omitempty"`
	NumProducedChunksPerShard       []uint64  `json:"num_produced_chunks_per_shard,omitempty"`
	NumExpectedChunksPerShard       []uint64  `json:"num_expected_chunks_per_shard,omitempty"`
	NumProducedEndorsements         *uint64   `json:"num_produced_endorsements,omitempty"`
	NumExpectedEndorsements         *uint64   `json:"num_expected_endorsements,omitempty"`
	NumProducedEndorsementsPerShard []uint64  `json:"num_produced_endorsements_per_shard,omitempty"`
	NumExpectedEndorsementsPerShard []uint64  `json:"num_expected_endorsements_per_shard,omitempty"`
	ShardsEndorsed                  []ShardId `json:"shards_endorsed,omitempty"`
}

type NextEpochValidatorInfo struct {
	AccountID AccountId `json:"account_id"`
	PublicKey PublicKey `json:"public_key"`
	Stake     Balance   `json:"stake"`
	Shards    []ShardId `json:"shards"`
}

type ValidatorInfo struct {
	AccountID AccountId `json:"account_id"`
}

type NotEnoughBlocksInfo struct {
	Produced uint64 `json:"produced"`
	Expected uint64 `json:"expected"`
}

type NotEnoughStakeInfo struct {
	StakeU128     Balance `json:"stake_u128"`
	ThresholdU128 Balance `json:"threshold_u128"`
}

type ProtocolVersionTooOldInfo struct {
	Version        uint32 `json:"version"`
	NetworkVersion uint32 `json:"network_version"`
}

type ValidatorKickoutReason struct {
	UnusedSlashed              *Unit                      `variant:"_UnusedSlashed"`
	NotEnoughBlocks            *NotEnoughBlocksInfo       `variant:"NotEnoughBlocks"`
	NotEnoughChunks            *NotEnoughBlocksInfo       `variant:"NotEnoughChunks"`
	Unstaked                   *Unit                      `variant:"Unstaked"`
	NotEnoughStake             *NotEnoughStakeInfo        `variant:"NotEnoughStake"`
	DidNotGetASeat             *Unit                      `variant:"DidNotGetASeat"`
	NotEnoughChunkEndorsements *NotEnoughBlocksInfo       `variant:"NotEnoughChunkEndorsements"`
	ProtocolVersionTooOld      *ProtocolVersionTooOldInfo `variant:"ProtocolVersionTooOld"`
}

func (r ValidatorKickoutReason) MarshalJSON() ([]byte, error)     { return marshalUnion(r) }
func (r *ValidatorKickoutReason) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, r) }
func (r ValidatorKickoutReason) Variant() string                  { return unionVariant(r) }

type ValidatorKickoutView struct {
	AccountID AccountId              `json:"account_id"`
	Reason    ValidatorKickoutReason `json:"reason"`
}

type RpcValidatorResponse struct {
	CurrentValidators []CurrentEpochValidatorInfo `json:"current_validators"`
	NextValidators    []NextEpochValidatorInfo    `json:"next_validators"`
	CurrentFishermen  []ValidatorStakeView        `json:"current_fishermen"`
	NextFishermen     []ValidatorStakeView        `json:"next_fishermen"`
	CurrentProposals  []ValidatorStakeView        `json:"current_proposals"`
	PrevEpochKickout  []ValidatorKickoutView      `json:"prev_epoch_kickout"`
	EpochStartHeight  BlockHeight                 `json:"epoch_start_height"`
	EpochHeight       uint64                      `json:"epoch_height"`
}

// TotalStake sums the stake of the current validators.
func (r RpcValidatorResponse) TotalStake() (Balance, error) {
	total := new(big.Int)
	for _, v := range r.CurrentValidators {
		stake, err := v.Stake.BigInt()
		if err != nil {
			return "", fmt.Errorf("stake of %s: %w", v.AccountID, err)
		}
		total.Add(total, stake)
	}
	return NewBalance(total), nil
}
