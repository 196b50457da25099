package entity

import "github.com/go-openapi/strfmt"

type StateChangeCauseType string

const (
	CauseNotWritableToDisk              StateChangeCauseType = "not_writable_to_disk"
	CauseInitialState                   StateChangeCauseType = "initial_state"
	CauseTransactionProcessing          StateChangeCauseType = "transaction_processing"
	CauseActionReceiptProcessingStarted StateChangeCauseType = "action_receipt_processing_started"
	CauseActionReceiptGasReward         StateChangeCauseType = "action_receipt_gas_reward"
	CauseReceiptProcessing              StateChangeCauseType = "receipt_processing"
	CausePostponedReceipt               StateChangeCauseType = "postponed_receipt"
	CauseUpdatedDelayedReceipts         StateChangeCauseType = "updated_delayed_receipts"
	CauseValidatorAccountsUpdate        StateChangeCauseType = "validator_accounts_update"
	CauseMigration                      StateChangeCauseType = "migration"
	CauseBandwidthSchedulerStateUpdate  StateChangeCauseType = "bandwidth_scheduler_state_update"
)

// StateChangeCauseView tells why a piece of state changed. TxHash is set for
// transaction_processing, ReceiptHash for the receipt driven causes.
type StateChangeCauseView struct {
	Type        StateChangeCauseType `json:"type"`
	TxHash      *CryptoHash          `json:"tx_hash,omitempty"`
	ReceiptHash *CryptoHash          `json:"receipt_hash,omitempty"`
}

func (c StateChangeCauseView) Variant() string { return string(c.Type) }

type StateChangeKindType string

const (
	KindAccountTouched      StateChangeKindType = "account_touched"
	KindAccessKeyTouched    StateChangeKindType = "access_key_touched"
	KindDataTouched         StateChangeKindType = "data_touched"
	KindContractCodeTouched StateChangeKindType = "contract_code_touched"
)

type StateChangeKindView struct {
	Type      StateChangeKindType `json:"type"`
	AccountID AccountId           `json:"account_id"`
}

func (k StateChangeKindView) Variant() string { return string(k.Type) }

type StateChangeType string

const (
	ChangeAccountUpdate        StateChangeType = "account_update"
	ChangeAccountDeletion      StateChangeType = "account_deletion"
	ChangeAccessKeyUpdate      StateChangeType = "access_key_update"
	ChangeAccessKeyDeletion    StateChangeType = "access_key_deletion"
	ChangeGasKeyUpdate         StateChangeType = "gas_key_update"
	ChangeGasKeyNonceUpdate    StateChangeType = "gas_key_nonce_update"
	ChangeGasKeyDeletion       StateChangeType = "gas_key_deletion"
	ChangeDataUpdate           StateChangeType = "data_update"
	ChangeDataDeletion         StateChangeType = "data_deletion"
	ChangeContractCodeUpdate   StateChangeType = "contract_code_update"
	ChangeContractCodeDeletion StateChangeType = "contract_code_deletion"
)

// StateChangeValueView holds the fields of every change type. The account
// fields are present only on account_update.
type StateChangeValueView struct {
	AccountID AccountId `json:"account_id"`
	*AccountView

	PublicKey   *PublicKey     `json:"public_key,omitempty"`
	AccessKey   *AccessKeyView `json:"access_key,omitempty"`
	GasKey      *GasKeyView    `json:"gas_key,omitempty"`
	Index       *uint32        `json:"index,omitempty"`
	Nonce       *Nonce         `json:"nonce,omitempty"`
	KeyBase64   *strfmt.Base64 `json:"key_base64,omitempty"`
	ValueBase64 *strfmt.Base64 `json:"value_base64,omitempty"`
	CodeBase64  *strfmt.Base64 `json:"code_base64,omitempty"`
}

type StateChangeWithCauseView struct {
	Cause  StateChangeCauseView `json:"cause"`
	Type   StateChangeType      `json:"type"`
	Change StateChangeValueView `json:"change"`
}

func (s StateChangeWithCauseView) Variant() string { return string(s.Type) }

type RpcStateChangesInBlockByTypeResponse struct {
	BlockHash CryptoHash            `json:"block_hash"`
	Changes   []StateChangeKindView `json:"changes"`
}

type RpcStateChangesInBlockResponse struct {
	BlockHash CryptoHash                 `json:"block_hash"`
	Changes   []StateChangeWithCauseView `json:"changes"`
}
