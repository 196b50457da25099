package entity

type ValidatorStakeViewV1 struct {
	AccountID AccountId `json:"account_id"`
	PublicKey PublicKey `json:"public_key"`
	Stake     Balance   `json:"stake"`
}

// ValidatorStakeView is tagged by validator_stake_struct_version, V1 being
// the only known version.
type ValidatorStakeView struct {
	ValidatorStakeStructVersion string `json:"validator_stake_struct_version"`
	ValidatorStakeViewV1
}

func (v ValidatorStakeView) Variant() string { return v.ValidatorStakeStructVersion }

type SlashedValidator struct {
	AccountID    AccountId `json:"account_id"`
	IsDoubleSign bool      `json:"is_double_sign"`
}

type BlockHeaderView struct {
	Height                BlockHeight          `json:"height"`
	PrevHeight            *BlockHeight         `json:"prev_height,omitempty"`
	EpochID               CryptoHash           `json:"epoch_id"`
	NextEpochID           CryptoHash           `json:"next_epoch_id"`
	Hash                  CryptoHash           `json:"hash"`
	PrevHash              CryptoHash           `json:"prev_hash"`
	PrevStateRoot         CryptoHash           `json:"prev_state_root"`
	BlockBodyHash         *CryptoHash          `json:"block_body_hash,omitempty"`
	ChunkReceiptsRoot     CryptoHash           `json:"chunk_receipts_root"`
	ChunkHeadersRoot      CryptoHash           `json:"chunk_headers_root"`
	ChunkTxRoot           CryptoHash           `json:"chunk_tx_root"`
	OutcomeRoot           CryptoHash           `json:"outcome_root"`
	ChunksIncluded        uint64               `json:"chunks_included"`
	ChallengesRoot        CryptoHash           `json:"challenges_root"`
	Timestamp             uint64               `json:"timestamp"`
	TimestampNanosec      string               `json:"timestamp_nanosec"`
	RandomValue           CryptoHash           `json:"random_value"`
	ValidatorProposals    []ValidatorStakeView `json:"validator_proposals"`
	ChunkMask             []bool               `json:"chunk_mask"`
	GasPrice              Balance              `json:"gas_price"`
	BlockOrdinal          *uint64              `json:"block_ordinal,omitempty"`
	RentPaid              Balance              `json:"rent_paid"`
	ValidatorReward       Balance              `json:"validator_reward"`
	TotalSupply           Balance              `json:"total_supply"`
	ChallengesResult      []SlashedValidator   `json:"challenges_result"`
	LastFinalBlock        CryptoHash           `json:"last_final_block"`
	LastDsFinalBlock      CryptoHash           `json:"last_ds_final_block"`
	NextBpHash            CryptoHash           `json:"next_bp_hash"`
	BlockMerkleRoot       CryptoHash           `json:"block_merkle_root"`
	EpochSyncDataHash     *CryptoHash          `json:"epoch_sync_data_hash,omitempty"`
	Approvals             []*Signature         `json:"approvals"`
	Signature             Signature            `json:"signature"`
	LatestProtocolVersion uint32               `json:"latest_protocol_version"`
	ChunkEndorsements     [][]uint16           `json:"chunk_endorsements,omitempty"`
}

type BlockHeaderInnerLiteView struct {
	Height           BlockHeight `json:"height"`
	EpochID          CryptoHash  `json:"epoch_id"`
	NextEpochID      CryptoHash  `json:"next_epoch_id"`
	PrevStateRoot    CryptoHash  `json:"prev_state_root"`
	OutcomeRoot      CryptoHash  `json:"outcome_root"`
	Timestamp        uint64      `json:"timestamp"`
	TimestampNanosec string      `json:"timestamp_nanosec"`
	NextBpHash       CryptoHash  `json:"next_bp_hash"`
	BlockMerkleRoot  CryptoHash  `json:"block_merkle_root"`
}

type BlockStatusView struct {
	Height BlockHeight `json:"height"`
	Hash   CryptoHash  `json:"hash"`
}

type CongestionInfoView struct {
	DelayedReceiptsGas  string `json:"delayed_receipts_gas"`
	BufferedReceiptsGas string `json:"buffered_receipts_gas"`
	ReceiptBytes        uint64 `json:"receipt_bytes"`
	AllowedShard        uint16 `json:"allowed_shard"`
}

type BandwidthRequestBitmap struct {
	Data [5]uint8 `json:"data"`
}

type BandwidthRequest struct {
	ToShard               uint16                 `json:"to_shard"`
	RequestedValuesBitmap BandwidthRequestBitmap `json:"requested_values_bitmap"`
}

type BandwidthRequestsV1 struct {
	Requests []BandwidthRequest `json:"requests"`
}

type BandwidthRequests struct {
	V1 *BandwidthRequestsV1 `variant:"V1"`
}

func (b BandwidthRequests) MarshalJSON() ([]byte, error)     { return marshalUnion(b) }
func (b *BandwidthRequests) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, b) }
func (b BandwidthRequests) Variant() string                  { return unionVariant(b) }

type ChunkHeaderView struct {
	ChunkHash            CryptoHash           `json:"chunk_hash"`
	PrevBlockHash        CryptoHash           `json:"prev_block_hash"`
	OutcomeRoot          CryptoHash           `json:"outcome_root"`
	PrevStateRoot        CryptoHash           `json:"prev_state_root"`
	EncodedMerkleRoot    CryptoHash           `json:"encoded_merkle_root"`
	EncodedLength        uint64               `json:"encoded_length"`
	HeightCreated        BlockHeight          `json:"height_created"`
	HeightIncluded       BlockHeight          `json:"height_included"`
	ShardID              ShardId              `json:"shard_id"`
	GasUsed              Gas                  `json:"gas_used"`
	GasLimit             Gas                  `json:"gas_limit"`
	RentPaid             Balance              `json:"rent_paid"`
	ValidatorReward      Balance              `json:"validator_reward"`
	BalanceBurnt         Balance              `json:"balance_burnt"`
	OutgoingReceiptsRoot CryptoHash           `json:"outgoing_receipts_root"`
	TxRoot               CryptoHash           `json:"tx_root"`
	ValidatorProposals   []ValidatorStakeView `json:"validator_proposals"`
	CongestionInfo       *CongestionInfoView  `json:"congestion_info,omitempty"`
	BandwidthRequests    *BandwidthRequests   `json:"bandwidth_requests,omitempty"`
	Signature            Signature            `json:"signature"`
}

type LightClientBlockLiteView struct {
	PrevBlockHash CryptoHash               `json:"prev_block_hash"`
	InnerRestHash CryptoHash               `json:"inner_rest_hash"`
	InnerLite     BlockHeaderInnerLiteView `json:"inner_lite"`
}

type MerklePathItem struct {
	Hash      CryptoHash `json:"hash"`
	Direction Direction  `json:"direction"`
}

type ShardUId struct {
	Version uint32 `json:"version"`
	ShardID uint32 `json:"shard_id"`
}

type ShardLayoutV0 struct {
	NumShards uint64 `json:"num_shards"`
	Version   uint32 `json:"version"`
}

type ShardLayoutV1 struct {
	BoundaryAccounts []AccountId `json:"boundary_accounts"`
	ShardsSplitMap   [][]ShardId `json:"shards_split_map,omitempty"`
	ToParentShardMap []ShardId   `json:"to_parent_shard_map,omitempty"`
	Version          uint32      `json:"version"`
}

type ShardLayoutV2 struct {
	BoundaryAccounts []AccountId          `json:"boundary_accounts"`
	ShardIDs         []ShardId            `json:"shard_ids"`
	IDToIndexMap     map[string]uint64    `json:"id_to_index_map"`
	IndexToIDMap     map[string]ShardId   `json:"index_to_id_map"`
	ShardsParentMap  map[string]ShardId   `json:"shards_parent_map,omitempty"`
	ShardsSplitMap   map[string][]ShardId `json:"shards_split_map,omitempty"`
	Version          uint32               `json:"version"`
}

type ShardLayout struct {
	V0 *ShardLayoutV0 `variant:"V0"`
	V1 *ShardLayoutV1 `variant:"V1"`
	V2 *ShardLayoutV2 `variant:"V2"`
}

func (s ShardLayout) MarshalJSON() ([]byte, error)     { return marshalUnion(s) }
func (s *ShardLayout) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, s) }
func (s ShardLayout) Variant() string                  { return unionVariant(s) }

// NumShards reports the shard count of any layout version.
func (s ShardLayout) NumShards() uint64 {
	switch {
	case s.V0 != nil:
		return s.V0.NumShards
	case s.V1 != nil:
		return uint64(len(s.V1.BoundaryAccounts) + 1)
	case s.V2 != nil:
		return uint64(len(s.V2.ShardIDs))
	}
	return 0
}

type RangeOfUint64 struct {
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
}

type RpcBlockResponse struct {
	Author AccountId         `json:"author"`
	Header BlockHeaderView   `json:"header"`
	Chunks []ChunkHeaderView `json:"chunks"`
}

type RpcChunkResponse struct {
	Author       AccountId               `json:"author"`
	Header       ChunkHeaderView         `json:"header"`
	Transactions []SignedTransactionView `json:"transactions"`
	Receipts     []ReceiptView           `json:"receipts"`
}

type RpcLightClientBlockProofResponse struct {
	BlockHeaderLite LightClientBlockLiteView `json:"block_header_lite"`
	BlockProof      []MerklePathItem         `json:"block_proof"`
}

type RpcLightClientExecutionProofResponse struct {
	OutcomeProof     ExecutionOutcomeWithIdView `json:"outcome_proof"`
	OutcomeRootProof []MerklePathItem           `json:"outcome_root_proof"`
	BlockHeaderLite  LightClientBlockLiteView   `json:"block_header_lite"`
	BlockProof       []MerklePathItem           `json:"block_proof"`
}

type RpcLightClientNextBlockResponse struct {
	PrevBlockHash      *CryptoHash               `json:"prev_block_hash,omitempty"`
	NextBlockInnerHash *CryptoHash               `json:"next_block_inner_hash,omitempty"`
	InnerLite          *BlockHeaderInnerLiteView `json:"inner_lite,omitempty"`
	InnerRestHash      *CryptoHash               `json:"inner_rest_hash,omitempty"`
	NextBps            []ValidatorStakeView      `json:"next_bps,omitempty"`
	ApprovalsAfterNext []*Signature              `json:"approvals_after_next,omitempty"`
}

type RpcCongestionLevelResponse struct {
	CongestionLevel float64 `json:"congestion_level"`
}

type RpcGasPriceResponse struct {
	GasPrice Balance `json:"gas_price"`
}
