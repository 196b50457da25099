package entity

type KnownProducerView struct {
	AccountID AccountId `json:"account_id"`
	PeerID    PeerId    `json:"peer_id"`
	NextHops  []PeerId  `json:"next_hops,omitempty"`
}

type RpcKnownProducer struct {
	AccountID AccountId `json:"account_id"`
	Addr      *string   `json:"addr,omitempty"`
	PeerID    PeerId    `json:"peer_id"`
}

type PeerInfoView struct {
	Addr                  string       `json:"addr"`
	AccountID             *AccountId   `json:"account_id,omitempty"`
	Height                *BlockHeight `json:"height,omitempty"`
	BlockHash             *CryptoHash  `json:"block_hash,omitempty"`
	IsHighestBlockInvalid bool         `json:"is_highest_block_invalid"`
	TrackedShards         []ShardId    `json:"tracked_shards"`
	ArchivalNode          bool         `json:"archival"`
	PeerID                PublicKey    `json:"peer_id"`
	ReceivedBytesPerSec   uint64       `json:"received_bytes_per_sec"`
	SentBytesPerSec       uint64       `json:"sent_bytes_per_sec"`
	LastTimePeerRequested uint64       `json:"last_time_peer_requested_millis"`
	LastTimeReceivedMsg   uint64       `json:"last_time_received_message_millis"`
	ConnectionEstablished uint64       `json:"connection_established_time_millis"`
	IsOutboundPeer        bool         `json:"is_outbound_peer"`
	Nonce                 uint64       `json:"nonce"`
}

type RpcPeerInfo struct {
	ID        PeerId     `json:"id"`
	Addr      *string    `json:"addr,omitempty"`
	AccountID *AccountId `json:"account_id,omitempty"`
}

type NetworkInfoView struct {
	PeerMaxCount      uint32              `json:"peer_max_count"`
	NumConnectedPeers uint64              `json:"num_connected_peers"`
	ConnectedPeers    []PeerInfoView      `json:"connected_peers"`
	KnownProducers    []KnownProducerView `json:"known_producers"`
	Tier1AccountsKeys []PublicKey         `json:"tier1_accounts_keys"`
	Tier1AccountsData []AccountDataView   `json:"tier1_accounts_data"`
	Tier1Connections  []PeerInfoView      `json:"tier1_connections"`
}

type RpcNetworkInfoResponse struct {
	ActivePeers         []RpcPeerInfo      `json:"active_peers"`
	NumActivePeers      uint64             `json:"num_active_peers"`
	PeerMaxCount        uint32             `json:"peer_max_count"`
	SentBytesPerSec     uint64             `json:"sent_bytes_per_sec"`
	ReceivedBytesPerSec uint64             `json:"received_bytes_per_sec"`
	KnownProducers      []RpcKnownProducer `json:"known_producers"`
}

type CatchupStatusView struct {
	SyncBlockHash   CryptoHash        `json:"sync_block_hash"`
	SyncBlockHeight BlockHeight       `json:"sync_block_height"`
	ShardSyncStatus map[string]string `json:"shard_sync_status"`
	BlocksToCatchup []BlockStatusView `json:"blocks_to_catchup"`
}

type DetailedDebugStatus struct {
	NetworkInfo                NetworkInfoView     `json:"network_info"`
	SyncStatus                 string              `json:"sync_status"`
	CatchupStatus              []CatchupStatusView `json:"catchup_status"`
	CurrentHeadStatus          BlockStatusView     `json:"current_head_status"`
	CurrentHeaderHeadStatus    BlockStatusView     `json:"current_header_head_status"`
	BlockProductionDelayMillis uint64              `json:"block_production_delay_millis"`
}

type StatusSyncInfo struct {
	LatestBlockHash     CryptoHash   `json:"latest_block_hash"`
	LatestBlockHeight   BlockHeight  `json:"latest_block_height"`
	LatestStateRoot     CryptoHash   `json:"latest_state_root"`
	LatestBlockTime     string       `json:"latest_block_time"`
	Syncing             bool         `json:"syncing"`
	EarliestBlockHash   *CryptoHash  `json:"earliest_block_hash,omitempty"`
	EarliestBlockHeight *BlockHeight `json:"earliest_block_height,omitempty"`
	EarliestBlockTime   *string      `json:"earliest_block_time,omitempty"`
	EpochID             *EpochId     `json:"epoch_id,omitempty"`
	EpochStartHeight    *BlockHeight `json:"epoch_start_height,omitempty"`
}

type Version struct {
	Version      string `json:"version"`
	Build        string `json:"build"`
	Commit       string `json:"commit"`
	RustcVersion string `json:"rustc_version"`
}

type RpcStatusResponse struct {
	Version               Version              `json:"version"`
	ChainID               string               `json:"chain_id"`
	ProtocolVersion       uint32               `json:"protocol_version"`
	LatestProtocolVersion uint32               `json:"latest_protocol_version"`
	RpcAddr               *string              `json:"rpc_addr,omitempty"`
	Validators            []ValidatorInfo      `json:"validators"`
	SyncInfo              StatusSyncInfo       `json:"sync_info"`
	ValidatorAccountID    *AccountId           `json:"validator_account_id,omitempty"`
	ValidatorPublicKey    *PublicKey           `json:"validator_public_key,omitempty"`
	NodePublicKey         PublicKey            `json:"node_public_key"`
	NodeKey               *PublicKey           `json:"node_key,omitempty"`
	Uptime                uint64               `json:"uptime_sec"`
	GenesisHash           CryptoHash           `json:"genesis_hash"`
	DetailedDebugStatus   *DetailedDebugStatus `json:"detailed_debug_status,omitempty"`
}

// RpcHealthResponse is empty: a healthy node answers with a null result.
type RpcHealthResponse struct{}

type RpcSplitStorageInfoResponse struct {
	HeadHeight      *BlockHeight `json:"head_height,omitempty"`
	FinalHeadHeight *BlockHeight `json:"final_head_height,omitempty"`
	ColdHeadHeight  *BlockHeight `json:"cold_head_height,omitempty"`
	HotDbKind       *string      `json:"hot_db_kind,omitempty"`
}

type RpcMaintenanceWindowsResponse []RangeOfUint64
