package entity

import (
	"fmt"

	"github.com/go-openapi/strfmt"
)

type (
	RpcHealthRequest           struct{}
	RpcStatusRequest           struct{}
	RpcNetworkInfoRequest      struct{}
	RpcClientConfigRequest     struct{}
	RpcSplitStorageInfoRequest struct{}
	GenesisConfigRequest       struct{}
)

type RpcBlockRequest struct {
	BlockReference
}

func (r RpcBlockRequest) Validate(formats strfmt.Registry) error {
	v := newValidator(formats)
	v.blockReference(r.BlockReference)
	return v.result()
}

type RpcProtocolConfigRequest struct {
	BlockReference
}

func (r RpcProtocolConfigRequest) Validate(formats strfmt.Registry) error {
	v := newValidator(formats)
	v.blockReference(r.BlockReference)
	return v.result()
}

type RpcStateChangesInBlockRequest struct {
	BlockReference
}

func (r RpcStateChangesInBlockRequest) Validate(formats strfmt.Registry) error {
	v := newValidator(formats)
	v.blockReference(r.BlockReference)
	return v.result()
}

// RpcChunkRequest addresses a chunk by its hash or by block and shard.
type RpcChunkRequest struct {
	ChunkID *CryptoHash `json:"chunk_id,omitempty"`
	BlockID *BlockId    `json:"block_id,omitempty"`
	ShardID *ShardId    `json:"shard_id,omitempty"`
}

func ChunkByHash(hash CryptoHash) RpcChunkRequest {
	return RpcChunkRequest{ChunkID: &hash}
}

func ChunkByBlockShard(block BlockId, shard ShardId) RpcChunkRequest {
	return RpcChunkRequest{BlockID: &block, ShardID: &shard}
}

func (r RpcChunkRequest) Variant() string {
	switch {
	case r.ChunkID != nil:
		return "chunk_hash"
	case r.BlockID != nil && r.ShardID != nil:
		return "block_shard_id"
	}
	return ""
}

func (r RpcChunkRequest) Validate(formats strfmt.Registry) error {
	v := newValidator(formats)
	switch r.Variant() {
	case "chunk_hash":
		v.cryptoHash("chunk_id", *r.ChunkID)
	case "block_shard_id":
		if r.BlockID.Hash != nil {
			v.cryptoHash("block_id", *r.BlockID.Hash)
		}
	default:
		v.missing("chunk_id|block_id,shard_id")
	}
	return v.result()
}

type RpcCongestionLevelRequest struct {
	RpcChunkRequest
}

type RpcValidatorRequest struct {
	EpochReference
}

type RpcValidatorsOrderedRequest struct {
	BlockID *BlockId `json:"block_id,omitempty"`
}

type RpcGasPriceRequest struct {
	BlockID *BlockId `json:"block_id,omitempty"`
}

type RpcSendTransactionRequest struct {
	SignedTxBase64 strfmt.Base64      `json:"signed_tx_base64"`
	WaitUntil      *TxExecutionStatus `json:"wait_until,omitempty"`
}

func (r RpcSendTransactionRequest) Validate(formats strfmt.Registry) error {
	v := newValidator(formats)
	if len(r.SignedTxBase64) == 0 {
		v.missing("signed_tx_base64")
	}
	if r.WaitUntil != nil {
		v.enum("wait_until", string(*r.WaitUntil), stringsOf(TxExecutionStatuses))
	}
	return v.result()
}

// RpcTransactionStatusRequest looks a transaction up by the signed
// transaction itself or by its hash and sender.
type RpcTransactionStatusRequest struct {
	SignedTxBase64  *strfmt.Base64     `json:"signed_tx_base64,omitempty"`
	TxHash          *CryptoHash        `json:"tx_hash,omitempty"`
	SenderAccountID *AccountId         `json:"sender_account_id,omitempty"`
	WaitUntil       *TxExecutionStatus `json:"wait_until,omitempty"`
}

func TxStatusByHash(hash CryptoHash, sender AccountId, wait TxExecutionStatus) RpcTransactionStatusRequest {
	return RpcTransactionStatusRequest{TxHash: &hash, SenderAccountID: &sender, WaitUntil: &wait}
}

func (r RpcTransactionStatusRequest) Variant() string {
	switch {
	case r.SignedTxBase64 != nil:
		return "signed_tx_base64"
	case r.TxHash != nil:
		return "tx_hash"
	}
	return ""
}

func (r RpcTransactionStatusRequest) Validate(formats strfmt.Registry) error {
	v := newValidator(formats)
	switch r.Variant() {
	case "signed_tx_base64":
	case "tx_hash":
		v.cryptoHash("tx_hash", *r.TxHash)
		v.accountIDPtr("sender_account_id", r.SenderAccountID)
	default:
		v.missing("signed_tx_base64|tx_hash")
	}
	if r.WaitUntil != nil {
		v.enum("wait_until", string(*r.WaitUntil), stringsOf(TxExecutionStatuses))
	}
	return v.result()
}

type LightClientProofType string

const (
	LightClientProofTransaction LightClientProofType = "transaction"
	LightClientProofReceipt     LightClientProofType = "receipt"
)

type RpcLightClientExecutionProofRequest struct {
	Type            LightClientProofType `json:"type"`
	TransactionHash *CryptoHash          `json:"transaction_hash,omitempty"`
	SenderID        *AccountId           `json:"sender_id,omitempty"`
	ReceiptID       *CryptoHash          `json:"receipt_id,omitempty"`
	ReceiverID      *AccountId           `json:"receiver_id,omitempty"`
	LightClientHead CryptoHash           `json:"light_client_head"`
}

func (r RpcLightClientExecutionProofRequest) Variant() string { return string(r.Type) }

func (r RpcLightClientExecutionProofRequest) Validate(formats strfmt.Registry) error {
	v := newValidator(formats)
	v.cryptoHash("light_client_head", r.LightClientHead)
	switch r.Type {
	case LightClientProofTransaction:
		v.cryptoHashPtr("transaction_hash", r.TransactionHash)
		v.accountIDPtr("sender_id", r.SenderID)
	case LightClientProofReceipt:
		v.cryptoHashPtr("receipt_id", r.ReceiptID)
		v.accountIDPtr("receiver_id", r.ReceiverID)
	default:
		v.enum("type", string(r.Type), []string{string(LightClientProofTransaction), string(LightClientProofReceipt)})
	}
	return v.result()
}

type RpcLightClientBlockProofRequest struct {
	BlockHash       CryptoHash `json:"block_hash"`
	LightClientHead CryptoHash `json:"light_client_head"`
}

func (r RpcLightClientBlockProofRequest) Validate(formats strfmt.Registry) error {
	v := newValidator(formats)
	v.cryptoHash("block_hash", r.BlockHash)
	v.cryptoHash("light_client_head", r.LightClientHead)
	return v.result()
}

type RpcLightClientNextBlockRequest struct {
	LastBlockHash CryptoHash `json:"last_block_hash"`
}

func (r RpcLightClientNextBlockRequest) Validate(formats strfmt.Registry) error {
	v := newValidator(formats)
	v.cryptoHash("last_block_hash", r.LastBlockHash)
	return v.result()
}

type RpcReceiptRequest struct {
	ReceiptID CryptoHash `json:"receipt_id"`
}

func (r RpcReceiptRequest) Validate(formats strfmt.Registry) error {
	v := newValidator(formats)
	v.cryptoHash("receipt_id", r.ReceiptID)
	return v.result()
}

type RpcMaintenanceWindowsRequest struct {
	AccountID AccountId `json:"account_id"`
}

func (r RpcMaintenanceWindowsRequest) Validate(formats strfmt.Registry) error {
	v := newValidator(formats)
	v.accountID("account_id", r.AccountID)
	return v.result()
}

type StateChangesType string

const (
	ChangesAccount         StateChangesType = "account_changes"
	ChangesSingleAccessKey StateChangesType = "single_access_key_changes"
	ChangesSingleGasKey    StateChangesType = "single_gas_key_changes"
	ChangesAllAccessKey    StateChangesType = "all_access_key_changes"
	ChangesAllGasKey       StateChangesType = "all_gas_key_changes"
	ChangesContractCode    StateChangesType = "contract_code_changes"
	ChangesData            StateChangesType = "data_changes"
)

var StateChangesTypes = []StateChangesType{
	ChangesAccount,
	ChangesSingleAccessKey,
	ChangesSingleGasKey,
	ChangesAllAccessKey,
	ChangesAllGasKey,
	ChangesContractCode,
	ChangesData,
}

type RpcStateChangesInBlockByTypeRequest struct {
	BlockReference
	ChangesType     StateChangesType       `json:"changes_type"`
	AccountIDs      []AccountId            `json:"account_ids,omitempty"`
	Keys            []AccountWithPublicKey `json:"keys,omitempty"`
	KeyPrefixBase64 *strfmt.Base64         `json:"key_prefix_base64,omitempty"`
}

func (r RpcStateChangesInBlockByTypeRequest) Variant() string {
	return fmt.Sprintf("%s_by_%s", r.ChangesType, r.BlockReference.Variant())
}

func (r RpcStateChangesInBlockByTypeRequest) Validate(formats strfmt.Registry) error {
	v := newValidator(formats)
	v.blockReference(r.BlockReference)
	v.enum("changes_type", string(r.ChangesType), stringsOf(StateChangesTypes))

	switch r.ChangesType {
	case ChangesSingleAccessKey, ChangesSingleGasKey:
		if len(r.Keys) == 0 {
			v.missing("keys")
		}
		for i, k := range r.Keys {
			v.accountID(fmt.Sprintf("keys.%d.account_id", i), k.AccountID)
			v.publicKey(fmt.Sprintf("keys.%d.public_key", i), k.PublicKey)
		}
	default:
		if len(r.AccountIDs) == 0 {
			v.missing("account_ids")
		}
		for i, id := range r.AccountIDs {
			v.accountID(fmt.Sprintf("account_ids.%d", i), id)
		}
		if r.ChangesType == ChangesData && r.KeyPrefixBase64 == nil {
			v.missing("key_prefix_base64")
		}
	}

	return v.result()
}

// BlockEffectsRequest is the params of block_effects, the stable name of
// EXPERIMENTAL_changes_in_block.
type BlockEffectsRequest = RpcStateChangesInBlockRequest
