package entity

import "time"

// DurationAsStdSchemaProvider is a std duration split in seconds and nanos.
type DurationAsStdSchemaProvider struct {
	Secs  int64 `json:"secs"`
	Nanos int32 `json:"nanos"`
}

func (d DurationAsStdSchemaProvider) Duration() time.Duration {
	return time.Duration(d.Secs)*time.Second + time.Duration(d.Nanos)
}

func NewDuration(d time.Duration) DurationAsStdSchemaProvider {
	return DurationAsStdSchemaProvider{
		Secs:  int64(d / time.Second),
		Nanos: int32(d % time.Second),
	}
}

type Fee struct {
	SendSir    Gas `json:"send_sir"`
	SendNotSir Gas `json:"send_not_sir"`
	Execution  Gas `json:"execution"`
}

// ExecFee is the fee of an action executed on behalf of the sender, sir
// meaning sender is receiver.
func (f Fee) ExecFee(sir bool) Gas {
	if sir {
		return f.SendSir + f.Execution
	}
	return f.SendNotSir + f.Execution
}

type DataReceiptCreationConfigView struct {
	BaseCost    Fee `json:"base_cost"`
	CostPerByte Fee `json:"cost_per_byte"`
}

type AccessKeyCreationConfigView struct {
	FullAccessCost          Fee `json:"full_access_cost"`
	FunctionCallCost        Fee `json:"function_call_cost"`
	FunctionCallCostPerByte Fee `json:"function_call_cost_per_byte"`
}

type ActionCreationConfigView struct {
	CreateAccountCost         Fee                         `json:"create_account_cost"`
	DeployContractCost        Fee                         `json:"deploy_contract_cost"`
	DeployContractCostPerByte Fee                         `json:"deploy_contract_cost_per_byte"`
	FunctionCallCost          Fee                         `json:"function_call_cost"`
	FunctionCallCostPerByte   Fee                         `json:"function_call_cost_per_byte"`
	TransferCost              Fee                         `json:"transfer_cost"`
	StakeCost                 Fee                         `json:"stake_cost"`
	AddKeyCost                AccessKeyCreationConfigView `json:"add_key_cost"`
	DeleteKeyCost             Fee                         `json:"delete_key_cost"`
	DeleteAccountCost         Fee                         `json:"delete_account_cost"`
	DelegateCost              Fee                         `json:"delegate_cost"`
}

type StorageUsageConfigView struct {
	NumBytesAccount     uint64 `json:"num_bytes_account"`
	NumExtraBytesRecord uint64 `json:"num_extra_bytes_record"`
}

type RuntimeFeesConfigView struct {
	ActionReceiptCreationConfig       Fee                           `json:"action_receipt_creation_config"`
	DataReceiptCreationConfig         DataReceiptCreationConfigView `json:"data_receipt_creation_config"`
	ActionCreationConfig              ActionCreationConfigView      `json:"action_creation_config"`
	StorageUsageConfig                StorageUsageConfigView        `json:"storage_usage_config"`
	BurntGasReward                    Rational                      `json:"burnt_gas_reward"`
	PessimisticGasPriceInflationRatio Rational                      `json:"pessimistic_gas_price_inflation_ratio"`
}

type ExtCostsConfigView struct {
	Base                      Gas `json:"base"`
	ContractLoadingBase       Gas `json:"contract_loading_base"`
	ContractLoadingBytes      Gas `json:"contract_loading_bytes"`
	ReadMemoryBase            Gas `json:"read_memory_base"`
	ReadMemoryByte            Gas `json:"read_memory_byte"`
	WriteMemoryBase           Gas `json:"write_memory_base"`
	WriteMemoryByte           Gas `json:"write_memory_byte"`
	ReadRegisterBase          Gas `json:"read_register_base"`
	ReadRegisterByte          Gas `json:"read_register_byte"`
	WriteRegisterBase         Gas `json:"write_register_base"`
	WriteRegisterByte         Gas `json:"write_register_byte"`
	Utf8DecodingBase          Gas `json:"utf8_decoding_base"`
	Utf8DecodingByte          Gas `json:"utf8_decoding_byte"`
	Utf16DecodingBase         Gas `json:"utf16_decoding_base"`
	Utf16DecodingByte         Gas `json:"utf16_decoding_byte"`
	Sha256Base                Gas `json:"sha256_base"`
	Sha256Byte                Gas `json:"sha256_byte"`
	Keccak256Base             Gas `json:"keccak256_base"`
	Keccak256Byte             Gas `json:"keccak256_byte"`
	Keccak512Base             Gas `json:"keccak512_base"`
	Keccak512Byte             Gas `json:"keccak512_byte"`
	Ripemd160Base             Gas `json:"ripemd160_base"`
	Ripemd160Block            Gas `json:"ripemd160_block"`
	Ed25519VerifyBase         Gas `json:"ed25519_verify_base"`
	Ed25519VerifyByte         Gas `json:"ed25519_verify_byte"`
	EcrecoverBase             Gas `json:"ecrecover_base"`
	LogBase                   Gas `json:"log_base"`
	LogByte                   Gas `json:"log_byte"`
	StorageWriteBase          Gas `json:"storage_write_base"`
	StorageWriteKeyByte       Gas `json:"storage_write_key_byte"`
	StorageWriteValueByte     Gas `json:"storage_write_value_byte"`
	StorageWriteEvictedByte   Gas `json:"storage_write_evicted_byte"`
	StorageReadBase           Gas `json:"storage_read_base"`
	StorageReadKeyByte        Gas `json:"storage_read_key_byte"`
	StorageReadValueByte      Gas `json:"storage_read_value_byte"`
	StorageRemoveBase         Gas `json:"storage_remove_base"`
	StorageRemoveKeyByte      Gas `json:"storage_remove_key_byte"`
	StorageRemoveRetValueByte Gas `json:"storage_remove_ret_value_byte"`
	StorageHasKeyBase         Gas `json:"storage_has_key_base"`
	StorageHasKeyByte         Gas `json:"storage_has_key_byte"`
	TouchingTrieNode          Gas `json:"touching_trie_node"`
	ReadCachedTrieNode        Gas `json:"read_cached_trie_node"`
	PromiseAndBase            Gas `json:"promise_and_base"`
	PromiseAndPerPromise      Gas `json:"promise_and_per_promise"`
	PromiseReturn             Gas `json:"promise_return"`
	ValidatorStakeBase        Gas `json:"validator_stake_base"`
	ValidatorTotalStakeBase   Gas `json:"validator_total_stake_base"`
	YieldCreateBase           Gas `json:"yield_create_base"`
	YieldCreateByte           Gas `json:"yield_create_byte"`
	YieldResumeBase           Gas `json:"yield_resume_base"`
	YieldResumeByte           Gas `json:"yield_resume_byte"`
	Bls12381G1MultiexpBase    Gas `json:"bls12381_g1_multiexp_base"`
	Bls12381G1MultiexpElement Gas `json:"bls12381_g1_multiexp_element"`
	Bls12381PairingBase       Gas `json:"bls12381_pairing_base"`
	Bls12381PairingElement    Gas `json:"bls12381_pairing_element"`
}

type LimitConfig struct {
	MaxGasBurnt                      Gas     `json:"max_gas_burnt"`
	MaxStackHeight                   uint32  `json:"max_stack_height"`
	InitialMemoryPages               uint32  `json:"initial_memory_pages"`
	MaxMemoryPages                   uint32  `json:"max_memory_pages"`
	RegistersMemoryLimit             uint64  `json:"registers_memory_limit"`
	MaxRegisterSize                  uint64  `json:"max_register_size"`
	MaxNumberRegisters               uint64  `json:"max_number_registers"`
	MaxNumberLogs                    uint64  `json:"max_number_logs"`
	MaxTotalLogLength                uint64  `json:"max_total_log_length"`
	MaxTotalPrepaidGas               Gas     `json:"max_total_prepaid_gas"`
	MaxActionsPerReceipt             uint64  `json:"max_actions_per_receipt"`
	MaxNumberBytesMethodNames        uint64  `json:"max_number_bytes_method_names"`
	MaxLengthMethodName              uint64  `json:"max_length_method_name"`
	MaxArgumentsLength               uint64  `json:"max_arguments_length"`
	MaxLengthReturnedData            uint64  `json:"max_length_returned_data"`
	MaxContractSize                  uint64  `json:"max_contract_size"`
	MaxTransactionSize               uint64  `json:"max_transaction_size"`
	MaxReceiptSize                   uint64  `json:"max_receipt_size"`
	MaxLengthStorageKey              uint64  `json:"max_length_storage_key"`
	MaxLengthStorageValue            uint64  `json:"max_length_storage_value"`
	MaxPromisesPerFunctionCallAction uint64  `json:"max_promises_per_function_call_action"`
	MaxNumberInputDataDependencies   uint64  `json:"max_number_input_data_dependencies"`
	MaxFunctionsNumberPerContract    *uint64 `json:"max_functions_number_per_contract,omitempty"`
	Wasmer2StackLimit                int32   `json:"wasmer2_stack_limit"`
	MaxLocalsPerContract             *uint64 `json:"max_locals_per_contract,omitempty"`
	AccountIDValidityRulesVersion    uint8   `json:"account_id_validity_rules_version"`
	YieldTimeoutLengthInBlocks       uint64  `json:"yield_timeout_length_in_blocks"`
	MaxYieldPayloadSize              uint64  `json:"max_yield_payload_size"`
	PerReceiptStorageProofSizeLimit  uint64  `json:"per_receipt_storage_proof_size_limit"`
	MaxTablesPerContract             *uint32 `json:"max_tables_per_contract,omitempty"`
	MaxElementsPerContractTable      *uint64 `json:"max_elements_per_contract_table,omitempty"`
}

type VMConfigView struct {
	ExtCosts                ExtCostsConfigView `json:"ext_costs"`
	GrowMemCost             uint32             `json:"grow_mem_cost"`
	RegularOpCost           uint32             `json:"regular_op_cost"`
	LinearOpBaseCost        uint64             `json:"linear_op_base_cost"`
	LinearOpUnitCost        uint64             `json:"linear_op_unit_cost"`
	VMKind                  VMKind             `json:"vm_kind"`
	Disable9393Fix          bool               `json:"disable_9393_fix"`
	StorageGetMode          StorageGetMode     `json:"storage_get_mode"`
	FixContractLoadingCost  bool               `json:"fix_contract_loading_cost"`
	ImplicitAccountCreation bool               `json:"implicit_account_creation"`
	EthImplicitAccounts     bool               `json:"eth_implicit_accounts"`
	DiscardCustomSections   bool               `json:"discard_custom_sections"`
	SaturatingFloatToInt    bool               `json:"saturating_float_to_int"`
	GlobalContractHostFns   bool               `json:"global_contract_host_fns"`
	ReftypesBulkMemory      bool               `json:"reftypes_bulk_memory"`
	LimitConfig             LimitConfig        `json:"limit_config"`
}

type CongestionControlConfigView struct {
	MaxCongestionIncomingGas       Gas     `json:"max_congestion_incoming_gas"`
	MaxCongestionOutgoingGas       Gas     `json:"max_congestion_outgoing_gas"`
	MaxCongestionMemoryConsumption uint64  `json:"max_congestion_memory_consumption"`
	MaxCongestionMissedChunks      uint64  `json:"max_congestion_missed_chunks"`
	MaxOutgoingGas                 Gas     `json:"max_outgoing_gas"`
	MinOutgoingGas                 Gas     `json:"min_outgoing_gas"`
	AllowedShardOutgoingGas        Gas     `json:"allowed_shard_outgoing_gas"`
	MaxTxGas                       Gas     `json:"max_tx_gas"`
	MinTxGas                       Gas     `json:"min_tx_gas"`
	RejectTxCongestionThreshold    float64 `json:"reject_tx_congestion_threshold"`
	OutgoingReceiptsUsualSizeLimit uint64  `json:"outgoing_receipts_usual_size_limit"`
	OutgoingReceiptsBigSizeLimit   uint64  `json:"outgoing_receipts_big_size_limit"`
}

type WitnessConfigView struct {
	MainStorageProofSizeSoftLimit               uint64 `json:"main_storage_proof_size_soft_limit"`
	CombinedTransactionsSizeLimit               uint64 `json:"combined_transactions_size_limit"`
	NewTransactionsValidationStateSizeSoftLimit uint64 `json:"new_transactions_validation_state_size_soft_limit"`
}

type RuntimeConfigView struct {
	StorageAmountPerByte    Balance                     `json:"storage_amount_per_byte"`
	TransactionCosts        RuntimeFeesConfigView       `json:"transaction_costs"`
	WasmConfig              VMConfigView                `json:"wasm_config"`
	AccountCreationConfig   AccountCreationConfigView   `json:"account_creation_config"`
	CongestionControlConfig CongestionControlConfigView `json:"congestion_control_config"`
	WitnessConfig           WitnessConfigView           `json:"witness_config"`
	UseStateStoredReceipt   bool                        `json:"use_state_stored_receipt"`
}

type RpcProtocolConfigResponse struct {
	ProtocolVersion                         uint32            `json:"protocol_version"`
	GenesisTime                             string            `json:"genesis_time"`
	ChainID                                 string            `json:"chain_id"`
	GenesisHeight                           BlockHeight       `json:"genesis_height"`
	NumBlockProducerSeats                   uint64            `json:"num_block_producer_seats"`
	NumBlockProducerSeatsPerShard           []uint64          `json:"num_block_producer_seats_per_shard"`
	AvgHiddenValidatorSeatsPerShard         []uint64          `json:"avg_hidden_validator_seats_per_shard"`
	DynamicResharding                       bool              `json:"dynamic_resharding"`
	ProtocolUpgradeStakeThreshold           Rational          `json:"protocol_upgrade_stake_threshold"`
	EpochLength                             uint64            `json:"epoch_length"`
	GasLimit                                Gas               `json:"gas_limit"`
	MinGasPrice                             Balance           `json:"min_gas_price"`
	MaxGasPrice                             Balance           `json:"max_gas_price"`
	BlockProducerKickoutThreshold           uint8             `json:"block_producer_kickout_threshold"`
	ChunkProducerKickoutThreshold           uint8             `json:"chunk_producer_kickout_threshold"`
	ChunkValidatorOnlyKickoutThreshold      uint8             `json:"chunk_validator_only_kickout_threshold"`
	OnlineMinThreshold                      Rational          `json:"online_min_threshold"`
	OnlineMaxThreshold                      Rational          `json:"online_max_threshold"`
	GasPriceAdjustmentRate                  Rational          `json:"gas_price_adjustment_rate"`
	RuntimeConfig                           RuntimeConfigView `json:"runtime_config"`
	TransactionValidityPeriod               uint64            `json:"transaction_validity_period"`
	ProtocolRewardRate                      Rational          `json:"protocol_reward_rate"`
	MaxInflationRate                        Rational          `json:"max_inflation_rate"`
	NumBlocksPerYear                        uint64            `json:"num_blocks_per_year"`
	ProtocolTreasuryAccount                 AccountId         `json:"protocol_treasury_account"`
	FishermenThreshold                      Balance           `json:"fishermen_threshold"`
	MinimumStakeDivisor                     uint64            `json:"minimum_stake_divisor"`
	ShardLayout                             ShardLayout       `json:"shard_layout"`
	MaxKickoutStakePerc                     uint8             `json:"max_kickout_stake_perc"`
	MinimumValidatorsPerShard               uint64            `json:"minimum_validators_per_shard"`
	MinimumStakeRatio                       Rational          `json:"minimum_stake_ratio"`
	TargetValidatorMandatesPerShard         uint64            `json:"target_validator_mandates_per_shard"`
	ShuffleShardAssignmentForChunkProducers bool              `json:"shuffle_shard_assignment_for_chunk_producers"`
}

type GenesisConfig struct {
	ProtocolVersion                         uint32        `json:"protocol_version"`
	GenesisTime                             string        `json:"genesis_time"`
	ChainID                                 string        `json:"chain_id"`
	GenesisHeight                           BlockHeight   `json:"genesis_height"`
	NumBlockProducerSeats                   uint64        `json:"num_block_producer_seats"`
	NumBlockProducerSeatsPerShard           []uint64      `json:"num_block_producer_seats_per_shard"`
	AvgHiddenValidatorSeatsPerShard         []uint64      `json:"avg_hidden_validator_seats_per_shard"`
	DynamicResharding                       bool          `json:"dynamic_resharding"`
	ProtocolUpgradeStakeThreshold           Rational      `json:"protocol_upgrade_stake_threshold"`
	EpochLength                             uint64        `json:"epoch_length"`
	GasLimit                                Gas           `json:"gas_limit"`
	MinGasPrice                             Balance       `json:"min_gas_price"`
	MaxGasPrice                             Balance       `json:"max_gas_price"`
	BlockProducerKickoutThreshold           uint8         `json:"block_producer_kickout_threshold"`
	ChunkProducerKickoutThreshold           uint8         `json:"chunk_producer_kickout_threshold"`
	ChunkValidatorOnlyKickoutThreshold      uint8         `json:"chunk_validator_only_kickout_threshold"`
	OnlineMinThreshold                      Rational      `json:"online_min_threshold"`
	OnlineMaxThreshold                      Rational      `json:"online_max_threshold"`
	GasPriceAdjustmentRate                  Rational      `json:"gas_price_adjustment_rate"`
	Validators                              []AccountInfo `json:"validators"`
	TransactionValidityPeriod               uint64        `json:"transaction_validity_period"`
	ProtocolRewardRate                      Rational      `json:"protocol_reward_rate"`
	MaxInflationRate                        Rational      `json:"max_inflation_rate"`
	TotalSupply                             Balance       `json:"total_supply"`
	NumBlocksPerYear                        uint64        `json:"num_blocks_per_year"`
	ProtocolTreasuryAccount                 AccountId     `json:"protocol_treasury_account"`
	FishermenThreshold                      Balance       `json:"fishermen_threshold"`
	MinimumStakeDivisor                     uint64        `json:"minimum_stake_divisor"`
	ShardLayout                             ShardLayout   `json:"shard_layout"`
	NumChunkOnlyProducerSeats               uint64        `json:"num_chunk_only_producer_seats"`
	MinimumValidatorsPerShard               uint64        `json:"minimum_validators_per_shard"`
	MaxKickoutStakePerc                     uint8         `json:"max_kickout_stake_perc"`
	MinimumStakeRatio                       Rational      `json:"minimum_stake_ratio"`
	UseProductionConfig                     bool          `json:"use_production_config"`
	NumChunkProducerSeats                   uint64        `json:"num_chunk_producer_seats"`
	NumChunkValidatorSeats                  uint64        `json:"num_chunk_validator_seats"`
	ChunkProducerAssignmentChangesLimit     uint64        `json:"chunk_producer_assignment_changes_limit"`
	ShuffleShardAssignmentForChunkProducers bool          `json:"shuffle_shard_assignment_for_chunk_producers"`
	TargetValidatorMandatesPerShard         uint64        `json:"target_validator_mandates_per_shard"`
}

type GCConfig struct {
	GCBlocksLimit     uint64                      `json:"gc_blocks_limit"`
	GCForkCleanStep   uint64                      `json:"gc_fork_clean_step"`
	GCNumEpochsToKeep uint64                      `json:"gc_num_epochs_to_keep"`
	GCStepPeriod      DurationAsStdSchemaProvider `json:"gc_step_period"`
}

type EpochSyncConfig struct {
	EpochSyncHorizon                 uint64                      `json:"epoch_sync_horizon"`
	TimeoutForEpochSync              DurationAsStdSchemaProvider `json:"timeout_for_epoch_sync"`
	DisableEpochSyncForBootstrapping bool                        `json:"disable_epoch_sync_for_bootstrapping"`
	IgnoreEpochSyncNetworkRequests   bool                        `json:"ignore_epoch_sync_network_requests"`
}

type S3Location struct {
	Bucket string `json:"bucket"`
	Region string `json:"region"`
}

type FilesystemLocation struct {
	RootDir string `json:"root_dir"`
}

type GCSLocation struct {
	Bucket string `json:"bucket"`
}

type ExternalStorageLocation struct {
	S3         *S3Location         `variant:"S3"`
	Filesystem *FilesystemLocation `variant:"Filesystem"`
	GCS        *GCSLocation        `variant:"GCS"`
}

func (l ExternalStorageLocation) MarshalJSON() ([]byte, error)     { return marshalUnion(l) }
func (l *ExternalStorageLocation) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, l) }
func (l ExternalStorageLocation) Variant() string                  { return unionVariant(l) }

type DumpConfig struct {
	Location             ExternalStorageLocation      `json:"location"`
	RestartDumpForShards []ShardId                    `json:"restart_dump_for_shards,omitempty"`
	IterationDelay       *DurationAsStdSchemaProvider `json:"iteration_delay,omitempty"`
	CredentialsFile      *string                      `json:"credentials_file,omitempty"`
}

type ExternalStorageConfig struct {
	Location                           ExternalStorageLocation `json:"location"`
	NumConcurrentRequests              uint8                   `json:"num_concurrent_requests"`
	NumConcurrentRequestsDuringCatchup uint8                   `json:"num_concurrent_requests_during_catchup"`
	ExternalStorageFallbackThreshold   uint64                  `json:"external_storage_fallback_threshold"`
}

type SyncConfig struct {
	Peers           *Unit                  `variant:"Peers"`
	ExternalStorage *ExternalStorageConfig `variant:"ExternalStorage"`
}

func (s SyncConfig) MarshalJSON() ([]byte, error)     { return marshalUnion(s) }
func (s *SyncConfig) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, s) }
func (s SyncConfig) Variant() string                  { return unionVariant(s) }

type SyncConcurrency struct {
	Apply              uint8 `json:"apply"`
	ApplyDuringCatchup uint8 `json:"apply_during_catchup"`
	PeerDownloads      uint8 `json:"peer_downloads"`
	PerShard           uint8 `json:"per_shard"`
}

type StateSyncConfig struct {
	Dump                *DumpConfig     `json:"dump,omitempty"`
	Sync                SyncConfig      `json:"sync"`
	Concurrency         SyncConcurrency `json:"concurrency"`
	PartsCompressionLvl int32           `json:"parts_compression_lvl"`
}

type ChunkDistributionUris struct {
	Get string `json:"get"`
	Set string `json:"set"`
}

type ChunkDistributionNetworkConfig struct {
	Enabled bool                  `json:"enabled"`
	Uris    ChunkDistributionUris `json:"uris"`
}

type CloudArchivalWriterConfig struct {
	ArchiveBlockData bool                        `json:"archive_block_data"`
	PollingInterval  DurationAsStdSchemaProvider `json:"polling_interval"`
}

type TrackedShardsConfig struct {
	NoShards        *Unit        `variant:"NoShards"`
	Shards          *[]ShardUId  `variant:"Shards"`
	AllShards       *Unit        `variant:"AllShards"`
	ShadowValidator *AccountId   `variant:"ShadowValidator"`
	Schedule        *[][]ShardId `variant:"Schedule"`
	Accounts        *[]AccountId `variant:"Accounts"`
}

func (t TrackedShardsConfig) MarshalJSON() ([]byte, error)     { return marshalUnion(t) }
func (t *TrackedShardsConfig) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, t) }
func (t TrackedShardsConfig) Variant() string                  { return unionVariant(t) }

type RpcClientConfigResponse struct {
	Version                           Version                         `json:"version"`
	ChainID                           string                          `json:"chain_id"`
	RpcAddr                           *string                         `json:"rpc_addr,omitempty"`
	Archive                           bool                            `json:"archive"`
	BlockFetchHorizon                 uint64                          `json:"block_fetch_horizon"`
	BlockHeaderFetchHorizon           uint64                          `json:"block_header_fetch_horizon"`
	BlockProductionTrackingDelay      DurationAsStdSchemaProvider     `json:"block_production_tracking_delay"`
	MinBlockProductionDelay           DurationAsStdSchemaProvider     `json:"min_block_production_delay"`
	MaxBlockProductionDelay           DurationAsStdSchemaProvider     `json:"max_block_production_delay"`
	MaxBlockWaitDelay                 DurationAsStdSchemaProvider     `json:"max_block_wait_delay"`
	ChunkRequestRetryPeriod           DurationAsStdSchemaProvider     `json:"chunk_request_retry_period"`
	DoomslugStepPeriod                DurationAsStdSchemaProvider     `json:"doomslug_step_period"`
	EpochLength                       uint64                          `json:"epoch_length"`
	NumBlockProducerSeats             uint64                          `json:"num_block_producer_seats"`
	MinNumPeers                       uint64                          `json:"min_num_peers"`
	ProduceEmptyBlocks                bool                            `json:"produce_empty_blocks"`
	SkipSyncWait                      bool                            `json:"skip_sync_wait"`
	SyncCheckPeriod                   DurationAsStdSchemaProvider     `json:"sync_check_period"`
	SyncStepPeriod                    DurationAsStdSchemaProvider     `json:"sync_step_period"`
	SyncHeightThreshold               uint64                          `json:"sync_height_threshold"`
	SyncMaxBlockRequests              uint64                          `json:"sync_max_block_requests"`
	HeaderSyncInitialTimeout          DurationAsStdSchemaProvider     `json:"header_sync_initial_timeout"`
	HeaderSyncProgressTimeout         DurationAsStdSchemaProvider     `json:"header_sync_progress_timeout"`
	HeaderSyncStallBanTimeout         DurationAsStdSchemaProvider     `json:"header_sync_stall_ban_timeout"`
	HeaderSyncExpectedHeightPerSecond uint64                          `json:"header_sync_expected_height_per_second"`
	StateSyncExternalTimeout          DurationAsStdSchemaProvider     `json:"state_sync_external_timeout"`
	StateSyncP2pTimeout               DurationAsStdSchemaProvider     `json:"state_sync_p2p_timeout"`
	StateSyncRetryBackoff             DurationAsStdSchemaProvider     `json:"state_sync_retry_backoff"`
	StateSyncExternalBackoff          DurationAsStdSchemaProvider     `json:"state_sync_external_backoff"`
	StateSyncEnabled                  bool                            `json:"state_sync_enabled"`
	StateSync                         StateSyncConfig                 `json:"state_sync"`
	EpochSync                         EpochSyncConfig                 `json:"epoch_sync"`
	LogSummaryPeriod                  DurationAsStdSchemaProvider     `json:"log_summary_period"`
	LogSummaryStyle                   LogSummaryStyle                 `json:"log_summary_style"`
	EnableMultilineLogging            bool                            `json:"enable_multiline_logging"`
	TTLAccountIDRouter                DurationAsStdSchemaProvider     `json:"ttl_account_id_router"`
	GC                                GCConfig                        `json:"gc"`
	TrackedShardsConfig               TrackedShardsConfig             `json:"tracked_shards_config"`
	SaveTrieChanges                   bool                            `json:"save_trie_changes"`
	SaveTxOutcomes                    bool                            `json:"save_tx_outcomes"`
	SaveUntrackedPartialChunksParts   bool                            `json:"save_untracked_partial_chunks_parts"`
	SaveLatestWitnesses               bool                            `json:"save_latest_witnesses"`
	ViewClientThreads                 uint64                          `json:"view_client_threads"`
	TransactionPoolSizeLimit          *uint64                         `json:"transaction_pool_size_limit,omitempty"`
	TxRoutingHeightHorizon            uint64                          `json:"tx_routing_height_horizon"`
	ChunkDistributionNetwork          *ChunkDistributionNetworkConfig `json:"chunk_distribution_network,omitempty"`
	OrphanStateWitnessPoolSize        uint64                          `json:"orphan_state_witness_pool_size"`
	OrphanStateWitnessMaxSize         uint64                          `json:"orphan_state_witness_max_size"`
	MaxLoadedContracts                uint64                          `json:"max_loaded_contracts"`
	CloudArchivalWriter               *CloudArchivalWriterConfig      `json:"cloud_archival_writer,omitempty"`
	ProtocolVersionCheck              ProtocolVersionCheckConfig      `json:"protocol_version_check"`
	TrieViewerStateSizeLimit          *uint64                         `json:"trie_viewer_state_size_limit,omitempty"`
	MaxGasBurntView                   *Gas                            `json:"max_gas_burnt_view,omitempty"`
}
