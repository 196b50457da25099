package entity

import (
	"encoding/json"
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/tidwall/gjson"

	"github.com/lidofinance/near-jsonrpc/internal/utils/pointers"
)

type QueryRequestType string

const (
	QueryViewAccount                       QueryRequestType = "view_account"
	QueryViewCode                          QueryRequestType = "view_code"
	QueryViewState                         QueryRequestType = "view_state"
	QueryViewAccessKey                     QueryRequestType = "view_access_key"
	QueryViewAccessKeyList                 QueryRequestType = "view_access_key_list"
	QueryViewGasKey                        QueryRequestType = "view_gas_key"
	QueryViewGasKeyList                    QueryRequestType = "view_gas_key_list"
	QueryCallFunction                      QueryRequestType = "call_function"
	QueryViewGlobalContractCode            QueryRequestType = "view_global_contract_code"
	QueryViewGlobalContractCodeByAccountID QueryRequestType = "view_global_contract_code_by_account_id"
)

var QueryRequestTypes = []QueryRequestType{
	QueryViewAccount,
	QueryViewCode,
	QueryViewState,
	QueryViewAccessKey,
	QueryViewAccessKeyList,
	QueryViewGasKey,
	QueryViewGasKeyList,
	QueryCallFunction,
	QueryViewGlobalContractCode,
	QueryViewGlobalContractCodeByAccountID,
}

// RpcQueryRequest is the params object of the query method. RequestType
// decides which of the optional fields are expected.
type RpcQueryRequest struct {
	BlockReference
	RequestType  QueryRequestType `json:"request_type"`
	AccountID    *AccountId       `json:"account_id,omitempty"`
	PublicKey    *PublicKey       `json:"public_key,omitempty"`
	PrefixBase64 *strfmt.Base64   `json:"prefix_base64,omitempty"`
	IncludeProof *bool            `json:"include_proof,omitempty"`
	MethodName   *string          `json:"method_name,omitempty"`
	ArgsBase64   *strfmt.Base64   `json:"args_base64,omitempty"`
	CodeHash     *CryptoHash      `json:"code_hash,omitempty"`
}

func (r RpcQueryRequest) Variant() string {
	return fmt.Sprintf("%s_by_%s", r.RequestType, r.BlockReference.Variant())
}

func (r RpcQueryRequest) Validate(formats strfmt.Registry) error {
	v := newValidator(formats)
	v.blockReference(r.BlockReference)
	v.enum("request_type", string(r.RequestType), stringsOf(QueryRequestTypes))

	switch r.RequestType {
	case QueryViewAccount, QueryViewCode, QueryViewAccessKeyList, QueryViewGasKeyList,
		QueryViewGlobalContractCodeByAccountID:
		v.accountIDPtr("account_id", r.AccountID)
	case QueryViewState:
		v.accountIDPtr("account_id", r.AccountID)
		if r.PrefixBase64 == nil {
			v.missing("prefix_base64")
		}
	case QueryViewAccessKey, QueryViewGasKey:
		v.accountIDPtr("account_id", r.AccountID)
		v.publicKeyPtr("public_key", r.PublicKey)
	case QueryCallFunction:
		v.accountIDPtr("account_id", r.AccountID)
		if r.MethodName == nil {
			v.missing("method_name")
		} else {
			v.required("method_name", *r.MethodName)
		}
		if r.ArgsBase64 == nil {
			v.missing("args_base64")
		}
	case QueryViewGlobalContractCode:
		v.cryptoHashPtr("code_hash", r.CodeHash)
	}

	return v.result()
}

func ViewAccountRequest(ref BlockReference, account AccountId) RpcQueryRequest {
	return RpcQueryRequest{BlockReference: ref, RequestType: QueryViewAccount, AccountID: &account}
}

func ViewCodeRequest(ref BlockReference, account AccountId) RpcQueryRequest {
	return RpcQueryRequest{BlockReference: ref, RequestType: QueryViewCode, AccountID: &account}
}

func ViewStateRequest(ref BlockReference, account AccountId, prefix []byte) RpcQueryRequest {
	return RpcQueryRequest{
		BlockReference: ref,
		RequestType:    QueryViewState,
		AccountID:      &account,
		PrefixBase64:   pointers.To(strfmt.Base64(prefix)),
	}
}

func ViewAccessKeyRequest(ref BlockReference, account AccountId, key PublicKey) RpcQueryRequest {
	return RpcQueryRequest{BlockReference: ref, RequestType: QueryViewAccessKey, AccountID: &account, PublicKey: &key}
}

func ViewAccessKeyListRequest(ref BlockReference, account AccountId) RpcQueryRequest {
	return RpcQueryRequest{BlockReference: ref, RequestType: QueryViewAccessKeyList, AccountID: &account}
}

func CallFunctionRequest(ref BlockReference, account AccountId, method string, args []byte) RpcQueryRequest {
	return RpcQueryRequest{
		BlockReference: ref,
		RequestType:    QueryCallFunction,
		AccountID:      &account,
		MethodName:     &method,
		ArgsBase64:     pointers.To(strfmt.Base64(args)),
	}
}

// RpcQueryResponse is the result of query. Which payload is set depends on
// the request type; the shape of the object tells them apart.
type RpcQueryResponse struct {
	BlockHash   CryptoHash
	BlockHeight BlockHeight

	Account       *AccountView
	ContractCode  *ContractCodeView
	ViewState     *ViewStateResult
	CallResult    *CallResult
	AccessKey     *AccessKeyView
	AccessKeyList *AccessKeyList
	GasKey        *GasKeyView
	GasKeyList    *GasKeyList
}

type queryBlockFields struct {
	BlockHash   CryptoHash  `json:"block_hash"`
	BlockHeight BlockHeight `json:"block_height"`
}

func (r RpcQueryResponse) payload() (string, any) {
	switch {
	case r.Account != nil:
		return "AccountView", r.Account
	case r.ContractCode != nil:
		return "ContractCodeView", r.ContractCode
	case r.ViewState != nil:
		return "ViewStateResult", r.ViewState
	case r.CallResult != nil:
		return "CallResult", r.CallResult
	case r.AccessKey != nil:
		return "AccessKeyView", r.AccessKey
	case r.AccessKeyList != nil:
		return "AccessKeyList", r.AccessKeyList
	case r.GasKey != nil:
		return "GasKeyView", r.GasKey
	case r.GasKeyList != nil:
		return "GasKeyList", r.GasKeyList
	}
	return "", nil
}

func (r RpcQueryResponse) Variant() string {
	name, _ := r.payload()
	return name
}

func (r RpcQueryResponse) MarshalJSON() ([]byte, error) {
	name, payload := r.payload()
	if name == "" {
		return nil, fmt.Errorf("RpcQueryResponse: %w", ErrEmptyUnion)
	}
	return mergeObjects(payload, queryBlockFields{r.BlockHash, r.BlockHeight})
}

func (r *RpcQueryResponse) UnmarshalJSON(data []byte) error {
	var block queryBlockFields
	if err := json.Unmarshal(data, &block); err != nil {
		return fmt.Errorf("RpcQueryResponse: %w", err)
	}
	*r = RpcQueryResponse{BlockHash: block.BlockHash, BlockHeight: block.BlockHeight}

	var target any
	has := func(path string) bool { return gjson.GetBytes(data, path).Exists() }

	switch {
	case has("amount") && has("locked"):
		r.Account = new(AccountView)
		target = r.Account
	case has("code_base64"):
		r.ContractCode = new(ContractCodeView)
		target = r.ContractCode
	case has("values"):
		r.ViewState = new(ViewStateResult)
		target = r.ViewState
	case has("result") && has("logs"):
		r.CallResult = new(CallResult)
		target = r.CallResult
	case has("num_nonces"):
		r.GasKey = new(GasKeyView)
		target = r.GasKey
	case has("nonce") && has("permission"):
		r.AccessKey = new(AccessKeyView)
		target = r.AccessKey
	case has("keys.0.gas_key"):
		r.GasKeyList = new(GasKeyList)
		target = r.GasKeyList
	case has("keys"):
		r.AccessKeyList = new(AccessKeyList)
		target = r.AccessKeyList
	default:
		return fmt.Errorf("RpcQueryResponse: unrecognised result shape")
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("RpcQueryResponse: %w", err)
	}
	return nil
}
