package feeder

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"

	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
)

// BlockDto is the message published for every block.
type BlockDto struct {
	Hash      entity.CryptoHash  `json:"hash"`
	Height    entity.BlockHeight `json:"height"`
	PrevHash  entity.CryptoHash  `json:"prev_hash"`
	Timestamp uint64             `json:"timestamp"`
	Author    entity.AccountId   `json:"author"`

	// Chunks holds only the chunks included in this block for the first time.
	Chunks []ChunkDto `json:"chunks"`
}

type ChunkDto struct {
	ChunkHash    entity.CryptoHash              `json:"chunk_hash"`
	ShardID      entity.ShardId                 `json:"shard_id"`
	Author       entity.AccountId               `json:"author"`
	Transactions []entity.SignedTransactionView `json:"transactions"`
	Receipts     []entity.ReceiptView           `json:"receipts"`
}

func NewBlockDto(block *entity.RpcBlockResponse, chunks []*entity.RpcChunkResponse) BlockDto {
	dto := BlockDto{
		Hash:      block.Header.Hash,
		Height:    block.Header.Height,
		PrevHash:  block.Header.PrevHash,
		Timestamp: block.Header.Timestamp,
		Author:    block.Author,
		Chunks:    make([]ChunkDto, 0, len(chunks)),
	}

	for _, chunk := range chunks {
		dto.Chunks = append(dto.Chunks, ChunkDto{
			ChunkHash:    chunk.Header.ChunkHash,
			ShardID:      chunk.Header.ShardID,
			Author:       chunk.Author,
			Transactions: chunk.Transactions,
			Receipts:     chunk.Receipts,
		})
	}

	return dto
}

// Validate validates this block dto
func (m *BlockDto) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("hash", "body", string(m.Hash)); err != nil {
		res = append(res, err)
	}
	if m.Hash != "" && !entity.IsCryptoHash(string(m.Hash)) {
		res = append(res, errors.InvalidType("hash", "body", "CryptoHash", m.Hash))
	}
	if err := validate.RequiredString("author", "body", string(m.Author)); err != nil {
		res = append(res, err)
	}

	for i := range m.Chunks {
		if err := validate.RequiredString("chunks."+swag.FormatInt64(int64(i))+".chunk_hash", "body", string(m.Chunks[i].ChunkHash)); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// MarshalBinary interface implementation
func (m *BlockDto) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *BlockDto) UnmarshalBinary(b []byte) error {
	var res BlockDto
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
