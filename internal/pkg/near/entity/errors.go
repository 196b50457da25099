package entity

// Payloads shared by several error cases.
type (
	AccountIDInfo struct {
		AccountID AccountId `json:"account_id"`
	}

	AccountKeyInfo struct {
		AccountID AccountId `json:"account_id"`
		PublicKey PublicKey `json:"public_key"`
	}

	SignerIDInfo struct {
		SignerID AccountId `json:"signer_id"`
	}

	ReceiverIDInfo struct {
		ReceiverID AccountId `json:"receiver_id"`
	}

	PublicKeyInfo struct {
		PublicKey PublicKey `json:"public_key"`
	}

	MethodNameInfo struct {
		MethodName string `json:"method_name"`
	}

	MsgInfo struct {
		Msg string `json:"msg"`
	}

	LimitInfo struct {
		Limit uint64 `json:"limit"`
	}

	LengthLimitInfo struct {
		Length uint64 `json:"length"`
		Limit  uint64 `json:"limit"`
	}

	SizeLimitInfo struct {
		Size  uint64 `json:"size"`
		Limit uint64 `json:"limit"`
	}

	NumberInputDataDependenciesInfo struct {
		NumberOfInputDataDependencies uint64 `json:"number_of_input_data_dependencies"`
		Limit                         uint64 `json:"limit"`
	}
)

type ActionError struct {
	Index *uint64         `json:"index,omitempty"`
	Kind  ActionErrorKind `json:"kind"`
}

type CreateAccountOnlyByRegistrarInfo struct {
	AccountID          AccountId `json:"account_id"`
	RegistrarAccountID AccountId `json:"registrar_account_id"`
	PredecessorID      AccountId `json:"predecessor_id"`
}

type CreateAccountNotAllowedInfo struct {
	AccountID     AccountId `json:"account_id"`
	PredecessorID AccountId `json:"predecessor_id"`
}

type ActorNoPermissionInfo struct {
	AccountID AccountId `json:"account_id"`
	ActorID   AccountId `json:"actor_id"`
}

type LackBalanceForStateInfo struct {
	AccountID AccountId `json:"account_id"`
	Amount    Balance   `json:"amount"`
}

type TriesToStakeInfo struct {
	AccountID AccountId `json:"account_id"`
	Stake     Balance   `json:"stake"`
	Locked    Balance   `json:"locked"`
	Balance   Balance   `json:"balance"`
}

type InsufficientStakeInfo struct {
	AccountID    AccountId `json:"account_id"`
	Stake        Balance   `json:"stake"`
	MinimumStake Balance   `json:"minimum_stake"`
}

type DelegateSenderReceiverInfo struct {
	SenderID   AccountId `json:"sender_id"`
	ReceiverID AccountId `json:"receiver_id"`
}

type DelegateInvalidNonceInfo struct {
	DelegateNonce Nonce `json:"delegate_nonce"`
	AkNonce       Nonce `json:"ak_nonce"`
}

type DelegateNonceTooLargeInfo struct {
	DelegateNonce Nonce `json:"delegate_nonce"`
	UpperBound    Nonce `json:"upper_bound"`
}

type GlobalContractInfo struct {
	Identifier GlobalContractIdentifier `json:"identifier"`
}

type InsufficientGasKeyBalanceInfo struct {
	AccountID AccountId `json:"account_id"`
	PublicKey PublicKey `json:"public_key"`
	Balance   Balance   `json:"balance"`
	Required  Balance   `json:"required"`
}

type ActionErrorKind struct {
	AccountAlreadyExists                       *AccountIDInfo                    `variant:"AccountAlreadyExists"`
	AccountDoesNotExist                        *AccountIDInfo                    `variant:"AccountDoesNotExist"`
	CreateAccountOnlyByRegistrar               *CreateAccountOnlyByRegistrarInfo `variant:"CreateAccountOnlyByRegistrar"`
	CreateAccountNotAllowed                    *CreateAccountNotAllowedInfo      `variant:"CreateAccountNotAllowed"`
	ActorNoPermission                          *ActorNoPermissionInfo            `variant:"ActorNoPermission"`
	DeleteKeyDoesNotExist                      *AccountKeyInfo                   `variant:"DeleteKeyDoesNotExist"`
	AddKeyAlreadyExists                        *AccountKeyInfo                   `variant:"AddKeyAlreadyExists"`
	DeleteAccountStaking                       *AccountIDInfo                    `variant:"DeleteAccountStaking"`
	LackBalanceForState                        *LackBalanceForStateInfo          `variant:"LackBalanceForState"`
	TriesToUnstake                             *AccountIDInfo                    `variant:"TriesToUnstake"`
	TriesToStake                               *TriesToStakeInfo                 `variant:"TriesToStake"`
	InsufficientStake                          *InsufficientStakeInfo            `variant:"InsufficientStake"`
	FunctionCallError                          *FunctionCallError                `variant:"FunctionCallError"`
	NewReceiptValidationError                  *ReceiptValidationError           `variant:"NewReceiptValidationError"`
	OnlyImplicitAccountCreationAllowed         *AccountIDInfo                    `variant:"OnlyImplicitAccountCreationAllowed"`
	DeleteAccountWithLargeState                *AccountIDInfo                    `variant:"DeleteAccountWithLargeState"`
	DelegateActionInvalidSignature             *Unit                             `variant:"DelegateActionInvalidSignature"`
	DelegateActionSenderDoesNotMatchTxReceiver *DelegateSenderReceiverInfo       `variant:"DelegateActionSenderDoesNotMatchTxReceiver"`
	DelegateActionExpired                      *Unit                             `variant:"DelegateActionExpired"`
	DelegateActionAccessKeyError               *InvalidAccessKeyError            `variant:"DelegateActionAccessKeyError"`
	DelegateActionInvalidNonce                 *DelegateInvalidNonceInfo         `variant:"DelegateActionInvalidNonce"`
	DelegateActionNonceTooLarge                *DelegateNonceTooLargeInfo        `variant:"DelegateActionNonceTooLarge"`
	GlobalContractDoesNotExist                 *GlobalContractInfo               `variant:"GlobalContractDoesNotExist"`
	GasKeyDoesNotExist                         *AccountKeyInfo                   `variant:"GasKeyDoesNotExist"`
	InsufficientGasKeyBalance                  *InsufficientGasKeyBalanceInfo    `variant:"InsufficientGasKeyBalance"`
}

func (k ActionErrorKind) MarshalJSON() ([]byte, error)     { return marshalUnion(k) }
func (k *ActionErrorKind) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, k) }
func (k ActionErrorKind) Variant() string                  { return unionVariant(k) }

type FunctionCallError struct {
	CompilationError   *CompilationError   `variant:"CompilationError"`
	LinkError          *MsgInfo            `variant:"LinkError"`
	MethodResolveError *MethodResolveError `variant:"MethodResolveError"`
	WasmTrap           *WasmTrap           `variant:"WasmTrap"`
	WasmUnknownError   *Unit               `variant:"WasmUnknownError"`
	HostError          *HostError          `variant:"HostError"`
	ExecutionError     *string             `variant:"ExecutionError"`
}

func (e FunctionCallError) MarshalJSON() ([]byte, error)     { return marshalUnion(e) }
func (e *FunctionCallError) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, e) }
func (e FunctionCallError) Variant() string                  { return unionVariant(e) }

type CompilationError struct {
	CodeDoesNotExist   *AccountIDInfo `variant:"CodeDoesNotExist"`
	PrepareError       *PrepareError  `variant:"PrepareError"`
	WasmerCompileError *MsgInfo       `variant:"WasmerCompileError"`
}

func (e CompilationError) MarshalJSON() ([]byte, error)     { return marshalUnion(e) }
func (e *CompilationError) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, e) }
func (e CompilationError) Variant() string                  { return unionVariant(e) }

type PanicInfo struct {
	PanicMsg string `json:"panic_msg"`
}

type PromiseIndexInfo struct {
	PromiseIdx uint64 `json:"promise_idx"`
}

type ResultIndexInfo struct {
	ResultIdx uint64 `json:"result_idx"`
}

type RegisterIDInfo struct {
	RegisterID uint64 `json:"register_id"`
}

type IteratorIndexInfo struct {
	IteratorIndex uint64 `json:"iterator_index"`
}

type ReceiptIndexInfo struct {
	ReceiptIndex uint64 `json:"receipt_index"`
}

type NumberPromisesInfo struct {
	NumberOfPromises uint64 `json:"number_of_promises"`
	Limit            uint64 `json:"limit"`
}

type HostError struct {
	BadUTF16                            *Unit                            `variant:"BadUTF16"`
	BadUTF8                             *Unit                            `variant:"BadUTF8"`
	GasExceeded                         *Unit                            `variant:"GasExceeded"`
	GasLimitExceeded                    *Unit                            `variant:"GasLimitExceeded"`
	BalanceExceeded                     *Unit                            `variant:"BalanceExceeded"`
	EmptyMethodName                     *Unit                            `variant:"EmptyMethodName"`
	GuestPanic                          *PanicInfo                       `variant:"GuestPanic"`
	IntegerOverflow                     *Unit                            `variant:"IntegerOverflow"`
	InvalidPromiseIndex                 *PromiseIndexInfo                `variant:"InvalidPromiseIndex"`
	CannotAppendActionToJointPromise    *Unit                            `variant:"CannotAppendActionToJointPromise"`
	CannotReturnJointPromise            *Unit                            `variant:"CannotReturnJointPromise"`
	InvalidPromiseResultIndex           *ResultIndexInfo                 `variant:"InvalidPromiseResultIndex"`
	InvalidRegisterID                   *RegisterIDInfo                  `variant:"InvalidRegisterId"`
	IteratorWasInvalidated              *IteratorIndexInfo               `variant:"IteratorWasInvalidated"`
	MemoryAccessViolation               *Unit                            `variant:"MemoryAccessViolation"`
	InvalidReceiptIndex                 *ReceiptIndexInfo                `variant:"InvalidReceiptIndex"`
	InvalidIteratorIndex                *IteratorIndexInfo               `variant:"InvalidIteratorIndex"`
	InvalidAccountID                    *Unit                            `variant:"InvalidAccountId"`
	InvalidMethodName                   *Unit                            `variant:"InvalidMethodName"`
	InvalidPublicKey                    *Unit                            `variant:"InvalidPublicKey"`
	ProhibitedInView                    *MethodNameInfo                  `variant:"ProhibitedInView"`
	NumberOfLogsExceeded                *LimitInfo                       `variant:"NumberOfLogsExceeded"`
	KeyLengthExceeded                   *LengthLimitInfo                 `variant:"KeyLengthExceeded"`
	ValueLengthExceeded                 *LengthLimitInfo                 `variant:"ValueLengthExceeded"`
	TotalLogLengthExceeded              *LengthLimitInfo                 `variant:"TotalLogLengthExceeded"`
	NumberPromisesExceeded              *NumberPromisesInfo              `variant:"NumberPromisesExceeded"`
	NumberInputDataDependenciesExceeded *NumberInputDataDependenciesInfo `variant:"NumberInputDataDependenciesExceeded"`
	ReturnedValueLengthExceeded         *LengthLimitInfo                 `variant:"ReturnedValueLengthExceeded"`
	ContractSizeExceeded                *SizeLimitInfo                   `variant:"ContractSizeExceeded"`
	Deprecated                          *MethodNameInfo                  `variant:"Deprecated"`
	ECRecoverError                      *MsgInfo                         `variant:"ECRecoverError"`
	AltBn128InvalidInput                *MsgInfo                         `variant:"AltBn128InvalidInput"`
	Ed25519VerifyInvalidInput           *MsgInfo                         `variant:"Ed25519VerifyInvalidInput"`
}

func (e HostError) MarshalJSON() ([]byte, error)     { return marshalUnion(e) }
func (e *HostError) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, e) }
func (e HostError) Variant() string                  { return unionVariant(e) }

type ReceiverMismatchInfo struct {
	TxReceiver AccountId `json:"tx_receiver"`
	AkReceiver string    `json:"ak_receiver"`
}

type NotEnoughAllowanceInfo struct {
	AccountID AccountId `json:"account_id"`
	PublicKey PublicKey `json:"public_key"`
	Allowance Balance   `json:"allowance"`
	Cost      Balance   `json:"cost"`
}

type InvalidAccessKeyError struct {
	AccessKeyNotFound       *AccountKeyInfo         `variant:"AccessKeyNotFound"`
	ReceiverMismatch        *ReceiverMismatchInfo   `variant:"ReceiverMismatch"`
	MethodNameMismatch      *MethodNameInfo         `variant:"MethodNameMismatch"`
	RequiresFullAccess      *Unit                   `variant:"RequiresFullAccess"`
	NotEnoughAllowance      *NotEnoughAllowanceInfo `variant:"NotEnoughAllowance"`
	DepositWithFunctionCall *Unit                   `variant:"DepositWithFunctionCall"`
}

func (e InvalidAccessKeyError) MarshalJSON() ([]byte, error)     { return marshalUnion(e) }
func (e *InvalidAccessKeyError) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, e) }
func (e InvalidAccessKeyError) Variant() string                  { return unionVariant(e) }

type InvalidNonceInfo struct {
	TxNonce Nonce `json:"tx_nonce"`
	AkNonce Nonce `json:"ak_nonce"`
}

type NonceTooLargeInfo struct {
	TxNonce    Nonce `json:"tx_nonce"`
	UpperBound Nonce `json:"upper_bound"`
}

type NotEnoughBalanceInfo struct {
	SignerID AccountId `json:"signer_id"`
	Balance  Balance   `json:"balance"`
	Cost     Balance   `json:"cost"`
}

type SignerLackBalanceForStateInfo struct {
	SignerID AccountId `json:"signer_id"`
	Amount   Balance   `json:"amount"`
}

type ShardCongestedInfo struct {
	ShardID         uint32  `json:"shard_id"`
	CongestionLevel float64 `json:"congestion_level"`
}

type ShardStuckInfo struct {
	ShardID      uint32 `json:"shard_id"`
	MissedChunks uint64 `json:"missed_chunks"`
}

type InvalidTxError struct {
	InvalidAccessKeyError     *InvalidAccessKeyError         `variant:"InvalidAccessKeyError"`
	InvalidSignerID           *SignerIDInfo                  `variant:"InvalidSignerId"`
	SignerDoesNotExist        *SignerIDInfo                  `variant:"SignerDoesNotExist"`
	InvalidNonce              *InvalidNonceInfo              `variant:"InvalidNonce"`
	NonceTooLarge             *NonceTooLargeInfo             `variant:"NonceTooLarge"`
	InvalidReceiverID         *ReceiverIDInfo                `variant:"InvalidReceiverId"`
	InvalidSignature          *Unit                          `variant:"InvalidSignature"`
	NotEnoughBalance          *NotEnoughBalanceInfo          `variant:"NotEnoughBalance"`
	LackBalanceForState       *SignerLackBalanceForStateInfo `variant:"LackBalanceForState"`
	CostOverflow              *Unit                          `variant:"CostOverflow"`
	InvalidChain              *Unit                          `variant:"InvalidChain"`
	Expired                   *Unit                          `variant:"Expired"`
	ActionsValidation         *ActionsValidationError        `variant:"ActionsValidation"`
	TransactionSizeExceeded   *SizeLimitInfo                 `variant:"TransactionSizeExceeded"`
	InvalidTransactionVersion *Unit                          `variant:"InvalidTransactionVersion"`
	StorageError              *StorageError                  `variant:"StorageError"`
	ShardCongested            *ShardCongestedInfo            `variant:"ShardCongested"`
	ShardStuck                *ShardStuckInfo                `variant:"ShardStuck"`
}

func (e InvalidTxError) MarshalJSON() ([]byte, error)     { return marshalUnion(e) }
func (e *InvalidTxError) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, e) }
func (e InvalidTxError) Variant() string                  { return unionVariant(e) }

type TotalPrepaidGasExceededInfo struct {
	TotalPrepaidGas Gas `json:"total_prepaid_gas"`
	Limit           Gas `json:"limit"`
}

type TotalNumberOfActionsExceededInfo struct {
	TotalNumberOfActions uint64 `json:"total_number_of_actions"`
	Limit                uint64 `json:"limit"`
}

type MethodNamesBytesExceededInfo struct {
	TotalNumberOfBytes uint64 `json:"total_number_of_bytes"`
	Limit              uint64 `json:"limit"`
}

type UnsupportedProtocolFeatureInfo struct {
	ProtocolFeature string `json:"protocol_feature"`
	Version         uint32 `json:"version"`
}

type InvalidDeterministicStateInitReceiverInfo struct {
	ReceiverID AccountId `json:"receiver_id"`
	DerivedID  AccountId `json:"derived_id"`
}

type GasKeyInvalidNumNoncesInfo struct {
	RequestedNonces uint32 `json:"requested_nonces"`
	Limit           uint32 `json:"limit"`
}

type ActionsValidationError struct {
	DeleteActionMustBeFinal                   *Unit                                      `variant:"DeleteActionMustBeFinal"`
	TotalPrepaidGasExceeded                   *TotalPrepaidGasExceededInfo               `variant:"TotalPrepaidGasExceeded"`
	TotalNumberOfActionsExceeded              *TotalNumberOfActionsExceededInfo          `variant:"TotalNumberOfActionsExceeded"`
	AddKeyMethodNamesNumberOfBytesExceeded    *MethodNamesBytesExceededInfo              `variant:"AddKeyMethodNamesNumberOfBytesExceeded"`
	AddKeyMethodNameLengthExceeded            *LengthLimitInfo                           `variant:"AddKeyMethodNameLengthExceeded"`
	IntegerOverflow                           *Unit                                      `variant:"IntegerOverflow"`
	InvalidAccountID                          *AccountIDInfo                             `variant:"InvalidAccountId"`
	ContractSizeExceeded                      *SizeLimitInfo                             `variant:"ContractSizeExceeded"`
	FunctionCallMethodNameLengthExceeded      *LengthLimitInfo                           `variant:"FunctionCallMethodNameLengthExceeded"`
	FunctionCallArgumentsLengthExceeded       *LengthLimitInfo                           `variant:"FunctionCallArgumentsLengthExceeded"`
	UnsuitableStakingKey                      *PublicKeyInfo                             `variant:"UnsuitableStakingKey"`
	FunctionCallZeroAttachedGas               *Unit                                      `variant:"FunctionCallZeroAttachedGas"`
	DelegateActionMustBeOnlyOne               *Unit                                      `variant:"DelegateActionMustBeOnlyOne"`
	UnsupportedProtocolFeature                *UnsupportedProtocolFeatureInfo            `variant:"UnsupportedProtocolFeature"`
	InvalidDeterministicStateInitReceiver     *InvalidDeterministicStateInitReceiverInfo `variant:"InvalidDeterministicStateInitReceiver"`
	DeterministicStateInitKeyLengthExceeded   *LengthLimitInfo                           `variant:"DeterministicStateInitKeyLengthExceeded"`
	DeterministicStateInitValueLengthExceeded *LengthLimitInfo                           `variant:"DeterministicStateInitValueLengthExceeded"`
	GasKeyInvalidNumNonces                    *GasKeyInvalidNumNoncesInfo                `variant:"GasKeyInvalidNumNonces"`
	GasKeyFunctionCallAllowanceNotAllowed     *Unit                                      `variant:"GasKeyFunctionCallAllowanceNotAllowed"`
}

func (e ActionsValidationError) MarshalJSON() ([]byte, error)     { return marshalUnion(e) }
func (e *ActionsValidationError) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, e) }
func (e ActionsValidationError) Variant() string                  { return unionVariant(e) }

type ReceiptValidationError struct {
	InvalidPredecessorID                *AccountIDInfo                   `variant:"InvalidPredecessorId"`
	InvalidReceiverID                   *AccountIDInfo                   `variant:"InvalidReceiverId"`
	InvalidSignerID                     *AccountIDInfo                   `variant:"InvalidSignerId"`
	InvalidDataReceiverID               *AccountIDInfo                   `variant:"InvalidDataReceiverId"`
	ReturnedValueLengthExceeded         *LengthLimitInfo                 `variant:"ReturnedValueLengthExceeded"`
	NumberInputDataDependenciesExceeded *NumberInputDataDependenciesInfo `variant:"NumberInputDataDependenciesExceeded"`
	ActionsValidation                   *ActionsValidationError          `variant:"ActionsValidation"`
	ReceiptSizeExceeded                 *SizeLimitInfo                   `variant:"ReceiptSizeExceeded"`
	InvalidRefundTo                     *AccountIDInfo                   `variant:"InvalidRefundTo"`
}

func (e ReceiptValidationError) MarshalJSON() ([]byte, error)     { return marshalUnion(e) }
func (e *ReceiptValidationError) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, e) }
func (e ReceiptValidationError) Variant() string                  { return unionVariant(e) }

type MissingTrieValue struct {
	Context MissingTrieValueContext `json:"context"`
	Hash    CryptoHash              `json:"hash"`
}

type StorageError struct {
	StorageInternalError         *Unit             `variant:"StorageInternalError"`
	MissingTrieValue             *MissingTrieValue `variant:"MissingTrieValue"`
	UnexpectedTrieValue          *Unit             `variant:"UnexpectedTrieValue"`
	StorageInconsistentState     *string           `variant:"StorageInconsistentState"`
	FlatStorageBlockNotSupported *string           `variant:"FlatStorageBlockNotSupported"`
	MemTrieLoadingError          *string           `variant:"MemTrieLoadingError"`
}

func (e StorageError) MarshalJSON() ([]byte, error)     { return marshalUnion(e) }
func (e *StorageError) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, e) }
func (e StorageError) Variant() string                  { return unionVariant(e) }

type TxExecutionError struct {
	ActionError    *ActionError    `variant:"ActionError"`
	InvalidTxError *InvalidTxError `variant:"InvalidTxError"`
}

func (e TxExecutionError) MarshalJSON() ([]byte, error)     { return marshalUnion(e) }
func (e *TxExecutionError) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, e) }
func (e TxExecutionError) Variant() string                  { return unionVariant(e) }
