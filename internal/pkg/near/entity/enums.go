package entity

type Finality string

const (
	FinalityOptimistic Finality = "optimistic"
	FinalityNearFinal  Finality = "near-final"
	FinalityFinal      Finality = "final"
)

var Finalities = []Finality{FinalityOptimistic, FinalityNearFinal, FinalityFinal}

type SyncCheckpoint string

const (
	SyncCheckpointGenesis           SyncCheckpoint = "genesis"
	SyncCheckpointEarliestAvailable SyncCheckpoint = "earliest_available"
)

var SyncCheckpoints = []SyncCheckpoint{SyncCheckpointGenesis, SyncCheckpointEarliestAvailable}

type TxExecutionStatus string

const (
	TxExecutionStatusNone               TxExecutionStatus = "NONE"
	TxExecutionStatusIncluded           TxExecutionStatus = "INCLUDED"
	TxExecutionStatusExecutedOptimistic TxExecutionStatus = "EXECUTED_OPTIMISTIC"
	TxExecutionStatusIncludedFinal      TxExecutionStatus = "INCLUDED_FINAL"
	TxExecutionStatusExecuted           TxExecutionStatus = "EXECUTED"
	TxExecutionStatusFinal              TxExecutionStatus = "FINAL"
)

var TxExecutionStatuses = []TxExecutionStatus{
	TxExecutionStatusNone,
	TxExecutionStatusIncluded,
	TxExecutionStatusExecutedOptimistic,
	TxExecutionStatusIncludedFinal,
	TxExecutionStatusExecuted,
	TxExecutionStatusFinal,
}

type WasmTrap string

const (
	WasmTrapUnreachable                    WasmTrap = "Unreachable"
	WasmTrapIncorrectCallIndirectSignature WasmTrap = "IncorrectCallIndirectSignature"
	WasmTrapMemoryOutOfBounds              WasmTrap = "MemoryOutOfBounds"
	WasmTrapCallIndirectOOB                WasmTrap = "CallIndirectOOB"
	WasmTrapIllegalArithmetic              WasmTrap = "IllegalArithmetic"
	WasmTrapMisalignedAtomicAccess         WasmTrap = "MisalignedAtomicAccess"
	WasmTrapIndirectCallToNull             WasmTrap = "IndirectCallToNull"
	WasmTrapStackOverflow                  WasmTrap = "StackOverflow"
	WasmTrapGenericTrap                    WasmTrap = "GenericTrap"
)

type PrepareError string

const (
	PrepareErrorSerialization              PrepareError = "Serialization"
	PrepareErrorDeserialization            PrepareError = "Deserialization"
	PrepareErrorInternalMemoryDeclared     PrepareError = "InternalMemoryDeclared"
	PrepareErrorGasInstrumentation         PrepareError = "GasInstrumentation"
	PrepareErrorStackHeightInstrumentation PrepareError = "StackHeightInstrumentation"
	PrepareErrorInstantiate                PrepareError = "Instantiate"
	PrepareErrorMemory                     PrepareError = "Memory"
	PrepareErrorTooManyFunctions           PrepareError = "TooManyFunctions"
	PrepareErrorTooManyLocals              PrepareError = "TooManyLocals"
	PrepareErrorTooManyTables              PrepareError = "TooManyTables"
	PrepareErrorTooManyTableElements       PrepareError = "TooManyTableElements"
)

type MethodResolveError string

const (
	MethodResolveErrorMethodEmptyName        MethodResolveError = "MethodEmptyName"
	MethodResolveErrorMethodNotFound         MethodResolveError = "MethodNotFound"
	MethodResolveErrorMethodInvalidSignature MethodResolveError = "MethodInvalidSignature"
)

type MissingTrieValueContext string

const (
	MissingTrieValueContextTrieIterator             MissingTrieValueContext = "TrieIterator"
	MissingTrieValueContextTriePrefetchingStorage   MissingTrieValueContext = "TriePrefetchingStorage"
	MissingTrieValueContextTrieMemoryPartialStorage MissingTrieValueContext = "TrieMemoryPartialStorage"
	MissingTrieValueContextTrieStorage              MissingTrieValueContext = "TrieStorage"
)

type VMKind string

const (
	VMKindWasmer0  VMKind = "Wasmer0"
	VMKindWasmtime VMKind = "Wasmtime"
	VMKindWasmer2  VMKind = "Wasmer2"
	VMKindNearVm   VMKind = "NearVm"
)

type StorageGetMode string

const (
	StorageGetModeFlatStorage StorageGetMode = "FlatStorage"
	StorageGetModeTrie        StorageGetMode = "Trie"
)

type LogSummaryStyle string

const (
	LogSummaryStylePlain   LogSummaryStyle = "plain"
	LogSummaryStyleColored LogSummaryStyle = "colored"
)

type Direction string

const (
	DirectionLeft  Direction = "Left"
	DirectionRight Direction = "Right"
)

type GlobalContractDeployMode string

const (
	GlobalContractDeployModeCodeHash  GlobalContractDeployMode = "CodeHash"
	GlobalContractDeployModeAccountId GlobalContractDeployMode = "AccountId"
)

type ProtocolVersionCheckConfig string

const (
	ProtocolVersionCheckNext     ProtocolVersionCheckConfig = "Next"
	ProtocolVersionCheckNextNext ProtocolVersionCheckConfig = "NextNext"
)
