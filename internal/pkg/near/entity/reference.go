package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BlockId is either a block height or a block hash.
type BlockId struct {
	Height *BlockHeight
	Hash   *CryptoHash
}

func BlockIdFromHeight(h BlockHeight) *BlockId { return &BlockId{Height: &h} }

func BlockIdFromHash(h CryptoHash) *BlockId { return &BlockId{Hash: &h} }

func (b BlockId) Variant() string {
	switch {
	case b.Height != nil:
		return "BlockHeight"
	case b.Hash != nil:
		return "CryptoHash"
	}
	return ""
}

func (b BlockId) String() string {
	switch {
	case b.Height != nil:
		return fmt.Sprintf("%d", *b.Height)
	case b.Hash != nil:
		return string(*b.Hash)
	}
	return ""
}

func (b BlockId) MarshalJSON() ([]byte, error) {
	switch {
	case b.Height != nil:
		return json.Marshal(*b.Height)
	case b.Hash != nil:
		return json.Marshal(*b.Hash)
	}
	return nil, fmt.Errorf("BlockId: %w", ErrEmptyUnion)
}

func (b *BlockId) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*b = BlockId{}
	if len(data) > 0 && data[0] == '"' {
		var hash CryptoHash
		if err := json.Unmarshal(data, &hash); err != nil {
			return fmt.Errorf("BlockId: %w", err)
		}
		b.Hash = &hash
		return nil
	}

	var height BlockHeight
	if err := json.Unmarshal(data, &height); err != nil {
		return fmt.Errorf("BlockId: %w", err)
	}
	b.Height = &height
	return nil
}

// BlockReference selects a block by id, by finality or by a sync checkpoint.
// Exactly one field is expected to be set.
type BlockReference struct {
	BlockID        *BlockId        `json:"block_id,omitempty"`
	Finality       *Finality       `json:"finality,omitempty"`
	SyncCheckpoint *SyncCheckpoint `json:"sync_checkpoint,omitempty"`
}

func FinalityReference(f Finality) BlockReference {
	return BlockReference{Finality: &f}
}

func BlockIdReference(id BlockId) BlockReference {
	return BlockReference{BlockID: &id}
}

func SyncCheckpointReference(c SyncCheckpoint) BlockReference {
	return BlockReference{SyncCheckpoint: &c}
}

func (r BlockReference) Variant() string {
	switch {
	case r.BlockID != nil:
		return "block_id"
	case r.Finality != nil:
		return "finality"
	case r.SyncCheckpoint != nil:
		return "sync_checkpoint"
	}
	return ""
}

// EpochReference selects the epoch of a validators request.
type EpochReference struct {
	EpochID *EpochId
	BlockID *BlockId
	Latest  bool
}

func (r EpochReference) Variant() string {
	switch {
	case r.EpochID != nil:
		return "epoch_id"
	case r.BlockID != nil:
		return "block_id"
	case r.Latest:
		return "latest"
	}
	return ""
}

func (r EpochReference) MarshalJSON() ([]byte, error) {
	switch {
	case r.EpochID != nil:
		return json.Marshal(struct {
			EpochID EpochId `json:"epoch_id"`
		}{*r.EpochID})
	case r.BlockID != nil:
		return json.Marshal(struct {
			BlockID BlockId `json:"block_id"`
		}{*r.BlockID})
	case r.Latest:
		return json.Marshal("latest")
	}
	return nil, fmt.Errorf("EpochReference: %w", ErrEmptyUnion)
}

func (r *EpochReference) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*r = EpochReference{}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("EpochReference: %w", err)
		}
		if s != "latest" {
			return &UnknownVariantError{Type: "EpochReference", Variant: s}
		}
		r.Latest = true
		return nil
	}

	if bytes.Equal(data, []byte("null")) {
		r.Latest = true
		return nil
	}

	var aux struct {
		EpochID *EpochId `json:"epoch_id"`
		BlockID *BlockId `json:"block_id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("EpochReference: %w", err)
	}
	if aux.EpochID == nil && aux.BlockID == nil {
		return fmt.Errorf("EpochReference: %w", ErrEmptyUnion)
	}
	r.EpochID, r.BlockID = aux.EpochID, aux.BlockID
	return nil
}
