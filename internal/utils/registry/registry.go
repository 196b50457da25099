package registry

import "sort"

// Method describes one JSON-RPC method served by a NEAR node.
type Method struct {
	Name        string
	Description string
	// ReplacedBy is set when the node still serves the method but a newer
	// one should be used instead.
	ReplacedBy string
	// NullableResult methods answer with a null result on success.
	NullableResult bool
	// Immutable results may be cached by the caller.
	Immutable bool
}

func (m Method) Deprecated() bool {
	return m.ReplacedBy != ""
}

const (
	ExperimentalChanges               = `EXPERIMENTAL_changes`
	ExperimentalChangesInBlock        = `EXPERIMENTAL_changes_in_block`
	ExperimentalCongestionLevel       = `EXPERIMENTAL_congestion_level`
	ExperimentalGenesisConfig         = `EXPERIMENTAL_genesis_config`
	ExperimentalLightClientBlockProof = `EXPERIMENTAL_light_client_block_proof`
	ExperimentalLightClientProof      = `EXPERIMENTAL_light_client_proof`
	ExperimentalMaintenanceWindows    = `EXPERIMENTAL_maintenance_windows`
	ExperimentalProtocolConfig        = `EXPERIMENTAL_protocol_config`
	ExperimentalReceipt               = `EXPERIMENTAL_receipt`
	ExperimentalSplitStorageInfo      = `EXPERIMENTAL_split_storage_info`
	ExperimentalTxStatus              = `EXPERIMENTAL_tx_status`
	ExperimentalValidatorsOrdered     = `EXPERIMENTAL_validators_ordered`
	Block                             = `block`
	BlockEffects                      = `block_effects`
	BroadcastTxAsync                  = `broadcast_tx_async`
	BroadcastTxCommit                 = `broadcast_tx_commit`
	Changes                           = `changes`
	Chunk                             = `chunk`
	ClientConfig                      = `client_config`
	GasPrice                          = `gas_price`
	GenesisConfig                     = `genesis_config`
	Health                            = `health`
	LightClientProof                  = `light_client_proof`
	MaintenanceWindows                = `maintenance_windows`
	NetworkInfo                       = `network_info`
	NextLightClientBlock              = `next_light_client_block`
	Query                             = `query`
	SendTx                            = `send_tx`
	Status                            = `status`
	Tx                                = `tx`
	Validators                        = `validators`
)

var Methods = map[string]Method{
	ExperimentalChanges: {
		Description: "Changes of accounts, access keys, contract code or data in a block",
		ReplacedBy:  Changes,
	},
	ExperimentalChangesInBlock: {
		Description: "Kinds of state changes in a block, per account",
		ReplacedBy:  BlockEffects,
	},
	ExperimentalCongestionLevel: {
		Description: "Congestion level of a shard",
	},
	ExperimentalGenesisConfig: {
		Description: "Genesis parameters of the chain",
		ReplacedBy:  GenesisConfig,
		Immutable:   true,
	},
	ExperimentalLightClientBlockProof: {
		Description: "Proof that a block is part of the chain",
	},
	ExperimentalLightClientProof: {
		Description: "Proof of a transaction or receipt outcome",
		ReplacedBy:  LightClientProof,
	},
	ExperimentalMaintenanceWindows: {
		Description: "Future maintenance windows of a validator in the current epoch",
		ReplacedBy:  MaintenanceWindows,
	},
	ExperimentalProtocolConfig: {
		Description: "Protocol configuration at a block",
	},
	ExperimentalReceipt: {
		Description: "Receipt by id",
		Immutable:   true,
	},
	ExperimentalSplitStorageInfo: {
		Description: "Hot and cold storage heads of an archival node",
	},
	ExperimentalTxStatus: {
		Description: "Transaction status with all its receipts",
	},
	ExperimentalValidatorsOrdered: {
		Description: "Block producers of an epoch in producing order",
	},
	Block: {
		Description: "Block by height, hash or finality",
		Immutable:   true,
	},
	BlockEffects: {
		Description: "Kinds of state changes in a block, per account",
	},
	BroadcastTxAsync: {
		Description: "Sends a signed transaction and returns its hash at once",
		ReplacedBy:  SendTx,
	},
	BroadcastTxCommit: {
		Description: "Sends a signed transaction and waits for its outcome",
		ReplacedBy:  SendTx,
	},
	Changes: {
		Description: "Changes of accounts, access keys, contract code or data in a block",
	},
	Chunk: {
		Description: "Chunk by hash or by block and shard",
		Immutable:   true,
	},
	ClientConfig: {
		Description: "Configuration of the node serving the request",
	},
	GasPrice: {
		Description: "Gas price at a block, the latest when no block is given",
	},
	GenesisConfig: {
		Description: "Genesis parameters of the chain",
		Immutable:   true,
	},
	Health: {
		Description:    "Null when the node is healthy",
		NullableResult: true,
	},
	LightClientProof: {
		Description: "Proof of a transaction or receipt outcome",
	},
	MaintenanceWindows: {
		Description: "Future maintenance windows of a validator in the current epoch",
	},
	NetworkInfo: {
		Description: "Connected peers and known producers",
	},
	NextLightClientBlock: {
		Description: "Next light client block after the given one",
	},
	Query: {
		Description: "Accounts, contract code, contract state, access keys and view calls",
	},
	SendTx: {
		Description: "Sends a signed transaction and waits up to the requested status",
	},
	Status: {
		Description: "Node version, sync state and validators",
	},
	Tx: {
		Description: "Transaction status by hash and sender",
	},
	Validators: {
		Description: "Validators of an epoch with their stake and kickouts",
	},
}

func init() {
	for name, m := range Methods {
		m.Name = name
		Methods[name] = m
	}
}

func Lookup(name string) (Method, bool) {
	m, ok := Methods[name]
	return m, ok
}

// Names returns every known method, sorted.
func Names() []string {
	out := make([]string, 0, len(Methods))
	for name := range Methods {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
