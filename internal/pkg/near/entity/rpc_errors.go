package entity

// ErrorName is the "name" tag of handler, validation and internal errors.
type ErrorName string

const (
	ErrorInternal                    ErrorName = "INTERNAL_ERROR"
	ErrorUnknownBlock                ErrorName = "UNKNOWN_BLOCK"
	ErrorNotSyncedYet                ErrorName = "NOT_SYNCED_YET"
	ErrorInvalidShardID              ErrorName = "INVALID_SHARD_ID"
	ErrorUnknownChunk                ErrorName = "UNKNOWN_CHUNK"
	ErrorEpochOutOfBounds            ErrorName = "EPOCH_OUT_OF_BOUNDS"
	ErrorInconsistentState           ErrorName = "INCONSISTENT_STATE"
	ErrorNotConfirmed                ErrorName = "NOT_CONFIRMED"
	ErrorUnknownTransactionOrReceipt ErrorName = "UNKNOWN_TRANSACTION_OR_RECEIPT"
	ErrorUnavailableShard            ErrorName = "UNAVAILABLE_SHARD"
	ErrorNoSyncedBlocks              ErrorName = "NO_SYNCED_BLOCKS"
	ErrorGarbageCollectedBlock       ErrorName = "GARBAGE_COLLECTED_BLOCK"
	ErrorInvalidAccount              ErrorName = "INVALID_ACCOUNT"
	ErrorUnknownAccount              ErrorName = "UNKNOWN_ACCOUNT"
	ErrorNoContractCode              ErrorName = "NO_CONTRACT_CODE"
	ErrorTooLargeContractState       ErrorName = "TOO_LARGE_CONTRACT_STATE"
	ErrorUnknownAccessKey            ErrorName = "UNKNOWN_ACCESS_KEY"
	ErrorUnknownGasKey               ErrorName = "UNKNOWN_GAS_KEY"
	ErrorContractExecution           ErrorName = "CONTRACT_EXECUTION_ERROR"
	ErrorNoGlobalContractCode        ErrorName = "NO_GLOBAL_CONTRACT_CODE"
	ErrorUnknownReceipt              ErrorName = "UNKNOWN_RECEIPT"
	ErrorNodeIsSyncing               ErrorName = "NODE_IS_SYNCING"
	ErrorNoNewBlocks                 ErrorName = "NO_NEW_BLOCKS"
	ErrorInvalidTransaction          ErrorName = "INVALID_TRANSACTION"
	ErrorDoesNotTrackShard           ErrorName = "DOES_NOT_TRACK_SHARD"
	ErrorRequestRouted               ErrorName = "REQUEST_ROUTED"
	ErrorUnknownTransaction          ErrorName = "UNKNOWN_TRANSACTION"
	ErrorTimeout                     ErrorName = "TIMEOUT_ERROR"
	ErrorUnknownEpoch                ErrorName = "UNKNOWN_EPOCH"
	ErrorValidatorInfoUnavailable    ErrorName = "VALIDATOR_INFO_UNAVAILABLE"
	ErrorMethodNotFound              ErrorName = "METHOD_NOT_FOUND"
	ErrorParse                       ErrorName = "PARSE_ERROR"
)

// NamedError is a {"name": ..., "info": {...}} error. Info holds the fields
// of every case flattened, only those of Name are set.
type NamedError[I any] struct {
	Name ErrorName `json:"name"`
	Info *I        `json:"info,omitempty"`
}

func (e NamedError[I]) Variant() string { return string(e.Name) }

func (e NamedError[I]) Error() string { return string(e.Name) }

type ErrorMessageInfo struct {
	ErrorMessage string `json:"error_message"`
}

type RequestValidationInfo struct {
	MethodName   *string `json:"method_name,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`
}

type ChunkErrorInfo struct {
	ErrorMessage *string     `json:"error_message,omitempty"`
	ShardID      *ShardId    `json:"shard_id,omitempty"`
	ChunkHash    *CryptoHash `json:"chunk_hash,omitempty"`
}

type LightClientNextBlockErrorInfo struct {
	ErrorMessage *string  `json:"error_message,omitempty"`
	EpochID      *EpochId `json:"epoch_id,omitempty"`
}

type LightClientProofErrorInfo struct {
	ErrorMessage            *string     `json:"error_message,omitempty"`
	NumberOrShards          *uint64     `json:"number_or_shards,omitempty"`
	ExecutionOutcomeShardID *ShardId    `json:"execution_outcome_shard_id,omitempty"`
	TransactionOrReceiptID  *CryptoHash `json:"transaction_or_receipt_id,omitempty"`
	ShardID                 *ShardId    `json:"shard_id,omitempty"`
}

type QueryErrorInfo struct {
	ErrorMessage       *string                   `json:"error_message,omitempty"`
	RequestedShardID   *ShardId                  `json:"requested_shard_id,omitempty"`
	BlockReference     *BlockReference           `json:"block_reference,omitempty"`
	RequestedAccountID *AccountId                `json:"requested_account_id,omitempty"`
	ContractAccountID  *AccountId                `json:"contract_account_id,omitempty"`
	PublicKey          *PublicKey                `json:"public_key,omitempty"`
	VMError            *string                   `json:"vm_error,omitempty"`
	Identifier         *GlobalContractIdentifier `json:"identifier,omitempty"`
	BlockHeight        *BlockHeight              `json:"block_height,omitempty"`
	BlockHash          *CryptoHash               `json:"block_hash,omitempty"`
}

type ReceiptErrorInfo struct {
	ErrorMessage *string     `json:"error_message,omitempty"`
	ReceiptID    *CryptoHash `json:"receipt_id,omitempty"`
}

type StatusErrorInfo struct {
	ErrorMessage *string                      `json:"error_message,omitempty"`
	Elapsed      *DurationAsStdSchemaProvider `json:"elapsed,omitempty"`
	EpochID      *EpochId                     `json:"epoch_id,omitempty"`
}

type TransactionErrorInfo struct {
	Context                  *TxExecutionError `json:"context,omitempty"`
	TransactionHash          *CryptoHash       `json:"transaction_hash,omitempty"`
	RequestedTransactionHash *CryptoHash       `json:"requested_transaction_hash,omitempty"`
	DebugInfo                *string           `json:"debug_info,omitempty"`
}

type (
	InternalError                 = NamedError[ErrorMessageInfo]
	GenesisConfigError            = NamedError[ErrorMessageInfo]
	RpcRequestValidationErrorKind = NamedError[RequestValidationInfo]
	RpcBlockError                 = NamedError[ErrorMessageInfo]
	RpcChunkError                 = NamedError[ChunkErrorInfo]
	RpcClientConfigError          = NamedError[ErrorMessageInfo]
	RpcGasPriceError              = NamedError[ErrorMessageInfo]
	RpcLightClientNextBlockError  = NamedError[LightClientNextBlockErrorInfo]
	RpcLightClientProofError      = NamedError[LightClientProofErrorInfo]
	RpcMaintenanceWindowsError    = NamedError[ErrorMessageInfo]
	RpcNetworkInfoError           = NamedError[ErrorMessageInfo]
	RpcProtocolConfigError        = NamedError[ErrorMessageInfo]
	RpcQueryError                 = NamedError[QueryErrorInfo]
	RpcReceiptError               = NamedError[ReceiptErrorInfo]
	RpcSplitStorageInfoError      = NamedError[ErrorMessageInfo]
	RpcStateChangesError          = NamedError[ErrorMessageInfo]
	RpcStatusError                = NamedError[StatusErrorInfo]
	RpcTransactionError           = NamedError[TransactionErrorInfo]
	RpcValidatorError             = NamedError[ErrorMessageInfo]
)
