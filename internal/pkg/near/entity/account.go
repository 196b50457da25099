package entity

import "github.com/go-openapi/strfmt"

type AccountView struct {
	Amount                  Balance      `json:"amount"`
	Locked                  Balance      `json:"locked"`
	CodeHash                CryptoHash   `json:"code_hash"`
	StorageUsage            StorageUsage `json:"storage_usage"`
	StoragePaidAt           BlockHeight  `json:"storage_paid_at"`
	GlobalContractHash      *CryptoHash  `json:"global_contract_hash,omitempty"`
	GlobalContractAccountID *AccountId   `json:"global_contract_account_id,omitempty"`
}

// AccountInfo is a genesis validator record.
type AccountInfo struct {
	AccountID AccountId `json:"account_id"`
	PublicKey PublicKey `json:"public_key"`
	Amount    Balance   `json:"amount"`
}

type AccountWithPublicKey struct {
	AccountID AccountId `json:"account_id"`
	PublicKey PublicKey `json:"public_key"`
}

type Tier1ProxyView struct {
	Addr   string `json:"addr"`
	PeerID PeerId `json:"peer_id"`
}

type AccountDataView struct {
	PeerID     PeerId           `json:"peer_id"`
	Proxies    []Tier1ProxyView `json:"proxies"`
	AccountKey PublicKey        `json:"account_key"`
	Timestamp  string           `json:"timestamp"`
}

type AccountCreationConfigView struct {
	MinAllowedTopLevelAccountLength uint8     `json:"min_allowed_top_level_account_length"`
	RegistrarAccountID              AccountId `json:"registrar_account_id"`
}

type ContractCodeView struct {
	CodeBase64 strfmt.Base64 `json:"code_base64"`
	Hash       CryptoHash    `json:"hash"`
}

type StateItem struct {
	Key   strfmt.Base64 `json:"key"`
	Value strfmt.Base64 `json:"value"`
}

type ViewStateResult struct {
	Values []StateItem     `json:"values"`
	Proof  []strfmt.Base64 `json:"proof,omitempty"`
}

type CallResult struct {
	Result ByteArray `json:"result"`
	Logs   []string  `json:"logs"`
}
