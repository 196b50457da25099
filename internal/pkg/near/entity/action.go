package entity

import "github.com/go-openapi/strfmt"

type CreateAccountAction struct{}

type DeployContractAction struct {
	Code strfmt.Base64 `json:"code"`
}

type FunctionCallAction struct {
	MethodName string        `json:"method_name"`
	Args       strfmt.Base64 `json:"args"`
	Gas        Gas           `json:"gas"`
	Deposit    Balance       `json:"deposit"`
}

type TransferAction struct {
	Deposit Balance `json:"deposit"`
}

type StakeAction struct {
	Stake     Balance   `json:"stake"`
	PublicKey PublicKey `json:"public_key"`
}

type AddKeyAction struct {
	PublicKey PublicKey `json:"public_key"`
	AccessKey AccessKey `json:"access_key"`
}

type DeleteKeyAction struct {
	PublicKey PublicKey `json:"public_key"`
}

type DeleteAccountAction struct {
	BeneficiaryID AccountId `json:"beneficiary_id"`
}

type DeployGlobalContractAction struct {
	Code       strfmt.Base64            `json:"code"`
	DeployMode GlobalContractDeployMode `json:"deploy_mode"`
}

type UseGlobalContractAction struct {
	ContractIdentifier GlobalContractIdentifier `json:"contract_identifier"`
}

type DeterministicStateInitAction struct {
	StateInit DeterministicAccountStateInit `json:"state_init"`
	Deposit   Balance                       `json:"deposit"`
}

type AddGasKeyAction struct {
	PublicKey  PublicKey           `json:"public_key"`
	NumNonces  uint32              `json:"num_nonces"`
	Permission AccessKeyPermission `json:"permission"`
}

type DeleteGasKeyAction struct {
	PublicKey PublicKey `json:"public_key"`
}

type TransferToGasKeyAction struct {
	PublicKey PublicKey `json:"public_key"`
	Deposit   Balance   `json:"deposit"`
}

// GlobalContractIdentifier points at a global contract by code hash or by
// the account that deployed it.
type GlobalContractIdentifier struct {
	CodeHash  *CryptoHash `variant:"CodeHash"`
	AccountID *AccountId  `variant:"AccountId"`
}

func (g GlobalContractIdentifier) MarshalJSON() ([]byte, error)     { return marshalUnion(g) }
func (g *GlobalContractIdentifier) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, g) }
func (g GlobalContractIdentifier) Variant() string                  { return unionVariant(g) }

type GlobalContractIdentifierView struct {
	Hash      *CryptoHash `json:"hash,omitempty"`
	AccountID *AccountId  `json:"account_id,omitempty"`
}

func (g GlobalContractIdentifierView) Variant() string {
	switch {
	case g.Hash != nil:
		return "hash"
	case g.AccountID != nil:
		return "account_id"
	}
	return ""
}

type DeterministicAccountStateInitV1 struct {
	Code GlobalContractIdentifier `json:"code"`
	Data map[string]string        `json:"data"`
}

type DeterministicAccountStateInit struct {
	V1 *DeterministicAccountStateInitV1 `variant:"V1"`
}

func (d DeterministicAccountStateInit) MarshalJSON() ([]byte, error) { return marshalUnion(d) }
func (d *DeterministicAccountStateInit) UnmarshalJSON(data []byte) error {
	return unmarshalUnion(data, d)
}
func (d DeterministicAccountStateInit) Variant() string { return unionVariant(d) }

// NonDelegateAction is any action allowed inside a delegate action.
type NonDelegateAction struct {
	CreateAccount          *CreateAccountAction          `variant:"CreateAccount"`
	DeployContract         *DeployContractAction         `variant:"DeployContract"`
	FunctionCall           *FunctionCallAction           `variant:"FunctionCall"`
	Transfer               *TransferAction               `variant:"Transfer"`
	Stake                  *StakeAction                  `variant:"Stake"`
	AddKey                 *AddKeyAction                 `variant:"AddKey"`
	DeleteKey              *DeleteKeyAction              `variant:"DeleteKey"`
	DeleteAccount          *DeleteAccountAction          `variant:"DeleteAccount"`
	DeployGlobalContract   *DeployGlobalContractAction   `variant:"DeployGlobalContract"`
	UseGlobalContract      *UseGlobalContractAction      `variant:"UseGlobalContract"`
	DeterministicStateInit *DeterministicStateInitAction `variant:"DeterministicStateInit"`
	AddGasKey              *AddGasKeyAction              `variant:"AddGasKey"`
	DeleteGasKey           *DeleteGasKeyAction           `variant:"DeleteGasKey"`
	TransferToGasKey       *TransferToGasKeyAction       `variant:"TransferToGasKey"`
}

func (a NonDelegateAction) MarshalJSON() ([]byte, error)     { return marshalUnion(a) }
func (a *NonDelegateAction) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, a) }
func (a NonDelegateAction) Variant() string                  { return unionVariant(a) }

type DelegateAction struct {
	SenderID       AccountId           `json:"sender_id"`
	ReceiverID     AccountId           `json:"receiver_id"`
	Actions        []NonDelegateAction `json:"actions"`
	Nonce          Nonce               `json:"nonce"`
	MaxBlockHeight BlockHeight         `json:"max_block_height"`
	PublicKey      PublicKey           `json:"public_key"`
}

type SignedDelegateAction struct {
	DelegateAction DelegateAction `json:"delegate_action"`
	Signature      Signature      `json:"signature"`
}

type AddKeyActionView struct {
	PublicKey PublicKey     `json:"public_key"`
	AccessKey AccessKeyView `json:"access_key"`
}

type DeployGlobalContractView struct {
	Code strfmt.Base64 `json:"code"`
}

type UseGlobalContractView struct {
	CodeHash CryptoHash `json:"code_hash"`
}

type UseGlobalContractByAccountIDView struct {
	AccountID AccountId `json:"account_id"`
}

type DeterministicStateInitView struct {
	Code    GlobalContractIdentifierView `json:"code"`
	Data    map[string]string            `json:"data"`
	Deposit Balance                      `json:"deposit"`
}

type AddGasKeyActionView struct {
	PublicKey  PublicKey               `json:"public_key"`
	NumNonces  uint32                  `json:"num_nonces"`
	Permission AccessKeyPermissionView `json:"permission"`
}

type ActionView struct {
	CreateAccount                   *Unit                             `variant:"CreateAccount"`
	DeployContract                  *DeployContractAction             `variant:"DeployContract"`
	FunctionCall                    *FunctionCallAction               `variant:"FunctionCall"`
	Transfer                        *TransferAction                   `variant:"Transfer"`
	Stake                           *StakeAction                      `variant:"Stake"`
	AddKey                          *AddKeyActionView                 `variant:"AddKey"`
	DeleteKey                       *DeleteKeyAction                  `variant:"DeleteKey"`
	DeleteAccount                   *DeleteAccountAction              `variant:"DeleteAccount"`
	Delegate                        *SignedDelegateAction             `variant:"Delegate"`
	DeployGlobalContract            *DeployGlobalContractView         `variant:"DeployGlobalContract"`
	DeployGlobalContractByAccountID *DeployGlobalContractView         `variant:"DeployGlobalContractByAccountId"`
	UseGlobalContract               *UseGlobalContractView            `variant:"UseGlobalContract"`
	UseGlobalContractByAccountID    *UseGlobalContractByAccountIDView `variant:"UseGlobalContractByAccountId"`
	DeterministicStateInit          *DeterministicStateInitView       `variant:"DeterministicStateInit"`
	AddGasKey                       *AddGasKeyActionView              `variant:"AddGasKey"`
	DeleteGasKey                    *DeleteGasKeyAction               `variant:"DeleteGasKey"`
	TransferToGasKey                *TransferToGasKeyAction           `variant:"TransferToGasKey"`
}

func (a ActionView) MarshalJSON() ([]byte, error)     { return marshalUnion(a) }
func (a *ActionView) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, a) }
func (a ActionView) Variant() string                  { return unionVariant(a) }
