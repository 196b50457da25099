package entity

import (
	"encoding/json"
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/tidwall/gjson"
)

type SignedTransactionView struct {
	SignerID    AccountId    `json:"signer_id"`
	PublicKey   PublicKey    `json:"public_key"`
	Nonce       Nonce        `json:"nonce"`
	ReceiverID  AccountId    `json:"receiver_id"`
	Actions     []ActionView `json:"actions"`
	PriorityFee uint64       `json:"priority_fee"`
	Signature   Signature    `json:"signature"`
	Hash        CryptoHash   `json:"hash"`
	NonceIndex  *uint16      `json:"nonce_index,omitempty"`
}

type CostGasUsed struct {
	CostCategory string `json:"cost_category"`
	Cost         string `json:"cost"`
	GasUsed      string `json:"gas_used"`
}

type ExecutionMetadataView struct {
	Version    uint32        `json:"version"`
	GasProfile []CostGasUsed `json:"gas_profile,omitempty"`
}

type ExecutionStatusView struct {
	Unknown          *Unit             `variant:"Unknown"`
	Failure          *TxExecutionError `variant:"Failure"`
	SuccessValue     *strfmt.Base64    `variant:"SuccessValue"`
	SuccessReceiptID *CryptoHash       `variant:"SuccessReceiptId"`
}

func (s ExecutionStatusView) MarshalJSON() ([]byte, error)     { return marshalUnion(s) }
func (s *ExecutionStatusView) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, s) }
func (s ExecutionStatusView) Variant() string                  { return unionVariant(s) }

type ExecutionOutcomeView struct {
	Logs        []string              `json:"logs"`
	ReceiptIDs  []CryptoHash          `json:"receipt_ids"`
	GasBurnt    Gas                   `json:"gas_burnt"`
	TokensBurnt Balance               `json:"tokens_burnt"`
	ExecutorID  AccountId             `json:"executor_id"`
	Status      ExecutionStatusView   `json:"status"`
	Metadata    ExecutionMetadataView `json:"metadata"`
}

type ExecutionOutcomeWithIdView struct {
	Proof     []MerklePathItem     `json:"proof"`
	BlockHash CryptoHash           `json:"block_hash"`
	ID        CryptoHash           `json:"id"`
	Outcome   ExecutionOutcomeView `json:"outcome"`
}

type FinalExecutionStatus struct {
	NotStarted   *Unit             `variant:"NotStarted"`
	Started      *Unit             `variant:"Started"`
	Failure      *TxExecutionError `variant:"Failure"`
	SuccessValue *strfmt.Base64    `variant:"SuccessValue"`
}

func (s FinalExecutionStatus) MarshalJSON() ([]byte, error)     { return marshalUnion(s) }
func (s *FinalExecutionStatus) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, s) }
func (s FinalExecutionStatus) Variant() string                  { return unionVariant(s) }

type FinalExecutionOutcomeView struct {
	Status             FinalExecutionStatus         `json:"status"`
	Transaction        SignedTransactionView        `json:"transaction"`
	TransactionOutcome ExecutionOutcomeWithIdView   `json:"transaction_outcome"`
	ReceiptsOutcome    []ExecutionOutcomeWithIdView `json:"receipts_outcome"`
}

type FinalExecutionOutcomeWithReceiptView struct {
	FinalExecutionOutcomeView
	Receipts []ReceiptView `json:"receipts"`
}

type DataReceiverView struct {
	DataID     CryptoHash `json:"data_id"`
	ReceiverID AccountId  `json:"receiver_id"`
}

type ActionReceiptView struct {
	SignerID            AccountId          `json:"signer_id"`
	SignerPublicKey     PublicKey          `json:"signer_public_key"`
	GasPrice            Balance            `json:"gas_price"`
	OutputDataReceivers []DataReceiverView `json:"output_data_receivers"`
	InputDataIDs        []CryptoHash       `json:"input_data_ids"`
	Actions             []ActionView       `json:"actions"`
	IsPromiseYield      bool               `json:"is_promise_yield"`
	RefundTo            *AccountId         `json:"refund_to,omitempty"`
}

type DataReceiptView struct {
	DataID          CryptoHash     `json:"data_id"`
	Data            *strfmt.Base64 `json:"data,omitempty"`
	IsPromiseResume bool           `json:"is_promise_resume"`
}

type GlobalContractDistributionReceiptView struct {
	ID                     GlobalContractIdentifier `json:"id"`
	TargetShard            ShardId                  `json:"target_shard"`
	AlreadyDeliveredShards []ShardId                `json:"already_delivered_shards"`
	Code                   strfmt.Base64            `json:"code"`
	Nonce                  *uint64                  `json:"nonce,omitempty"`
}

type ReceiptEnumView struct {
	Action                     *ActionReceiptView                     `variant:"Action"`
	Data                       *DataReceiptView                       `variant:"Data"`
	GlobalContractDistribution *GlobalContractDistributionReceiptView `variant:"GlobalContractDistribution"`
}

func (r ReceiptEnumView) MarshalJSON() ([]byte, error)     { return marshalUnion(r) }
func (r *ReceiptEnumView) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, r) }
func (r ReceiptEnumView) Variant() string                  { return unionVariant(r) }

type ReceiptView struct {
	PredecessorID AccountId       `json:"predecessor_id"`
	ReceiverID    AccountId       `json:"receiver_id"`
	ReceiptID     CryptoHash      `json:"receipt_id"`
	Receipt       ReceiptEnumView `json:"receipt"`
	Priority      uint64          `json:"priority"`
}

type RpcReceiptResponse struct {
	ReceiptView
}

// RpcTransactionResponse carries the execution status reached so far and,
// once available, the outcome with or without receipts.
type RpcTransactionResponse struct {
	FinalExecutionStatus TxExecutionStatus
	Outcome              *FinalExecutionOutcomeView
	OutcomeWithReceipts  *FinalExecutionOutcomeWithReceiptView
}

func (r RpcTransactionResponse) Variant() string {
	switch {
	case r.OutcomeWithReceipts != nil:
		return "FinalExecutionOutcomeWithReceiptView"
	case r.Outcome != nil:
		return "FinalExecutionOutcomeView"
	}
	return ""
}

// Final returns the outcome whichever shape the node answered with.
func (r RpcTransactionResponse) Final() *FinalExecutionOutcomeView {
	if r.OutcomeWithReceipts != nil {
		return &r.OutcomeWithReceipts.FinalExecutionOutcomeView
	}
	return r.Outcome
}

type txStatusField struct {
	FinalExecutionStatus TxExecutionStatus `json:"final_execution_status"`
}

func (r RpcTransactionResponse) MarshalJSON() ([]byte, error) {
	var payload any
	switch {
	case r.OutcomeWithReceipts != nil:
		payload = r.OutcomeWithReceipts
	case r.Outcome != nil:
		payload = r.Outcome
	}
	return mergeObjects(txStatusField{r.FinalExecutionStatus}, payload)
}

func (r *RpcTransactionResponse) UnmarshalJSON(data []byte) error {
	var status txStatusField
	if err := json.Unmarshal(data, &status); err != nil {
		return fmt.Errorf("RpcTransactionResponse: %w", err)
	}
	*r = RpcTransactionResponse{FinalExecutionStatus: status.FinalExecutionStatus}

	switch {
	case gjson.GetBytes(data, "receipts").IsArray():
		r.OutcomeWithReceipts = new(FinalExecutionOutcomeWithReceiptView)
		return json.Unmarshal(data, r.OutcomeWithReceipts)
	case gjson.GetBytes(data, "transaction").Exists():
		r.Outcome = new(FinalExecutionOutcomeView)
		return json.Unmarshal(data, r.Outcome)
	}
	return nil
}
