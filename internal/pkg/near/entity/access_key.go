package entity

type FunctionCallPermission struct {
	Allowance   *Balance `json:"allowance,omitempty"`
	ReceiverID  string   `json:"receiver_id"`
	MethodNames []string `json:"method_names"`
}

type AccessKeyPermission struct {
	FullAccess   *Unit                   `variant:"FullAccess"`
	FunctionCall *FunctionCallPermission `variant:"FunctionCall"`
}

func (p AccessKeyPermission) MarshalJSON() ([]byte, error)     { return marshalUnion(p) }
func (p *AccessKeyPermission) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, p) }
func (p AccessKeyPermission) Variant() string                  { return unionVariant(p) }

// AccessKeyPermissionView is the read model of AccessKeyPermission.
type AccessKeyPermissionView struct {
	FullAccess   *Unit                   `variant:"FullAccess"`
	FunctionCall *FunctionCallPermission `variant:"FunctionCall"`
}

func (p AccessKeyPermissionView) MarshalJSON() ([]byte, error)     { return marshalUnion(p) }
func (p *AccessKeyPermissionView) UnmarshalJSON(data []byte) error { return unmarshalUnion(data, p) }
func (p AccessKeyPermissionView) Variant() string                  { return unionVariant(p) }

type AccessKey struct {
	Nonce      Nonce               `json:"nonce"`
	Permission AccessKeyPermission `json:"permission"`
}

type AccessKeyView struct {
	Nonce      Nonce                   `json:"nonce"`
	Permission AccessKeyPermissionView `json:"permission"`
}

type AccessKeyInfoView struct {
	PublicKey PublicKey     `json:"public_key"`
	AccessKey AccessKeyView `json:"access_key"`
}

type AccessKeyList struct {
	Keys []AccessKeyInfoView `json:"keys"`
}

type GasKey struct {
	NumNonces  uint32              `json:"num_nonces"`
	Balance    Balance             `json:"balance"`
	Permission AccessKeyPermission `json:"permission"`
}

type GasKeyView struct {
	NumNonces  uint32                  `json:"num_nonces"`
	Balance    Balance                 `json:"balance"`
	Permission AccessKeyPermissionView `json:"permission"`
	Nonces     []Nonce                 `json:"nonces"`
}

type GasKeyInfoView struct {
	PublicKey PublicKey  `json:"public_key"`
	GasKey    GasKeyView `json:"gas_key"`
}

type GasKeyList struct {
	Keys []GasKeyInfoView `json:"keys"`
}
