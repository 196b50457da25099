package entity

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestSnakeToCamel(t *testing.T) {
	tests := []struct {
		snake string
		camel string
	}{
		{snake: "block_hash", camel: "blockHash"},
		{snake: "latest_block_height", camel: "latestBlockHeight"},
		{snake: "account_id", camel: "accountId"},
		{snake: "rpc_addr", camel: "rpcAddr"},
		{snake: "vm_kind", camel: "vmKind"},
		{snake: "id_to_index_map", camel: "idToIndexMap"},
		{snake: "ttl_account_id_router", camel: "ttlAccountIdRouter"},
		{snake: "shard_0", camel: "shard_0"},
		{snake: "nonce", camel: "nonce"},
		{snake: "FunctionCall", camel: "FunctionCall"},
		{snake: "EXPERIMENTAL_tx_status", camel: "EXPERIMENTAL_tx_status"},
		{snake: "", camel: ""},
	}

	for _, tt := range tests {
		t.Run(tt.snake, func(t *testing.T) {
			if got := SnakeToCamel(tt.snake); got != tt.camel {
				t.Errorf("SnakeToCamel(%s) = %s, want %s", tt.snake, got, tt.camel)
			}
			if got := CamelToSnake(tt.camel); got != tt.snake {
				t.Errorf("CamelToSnake(%s) = %s, want %s", tt.camel, got, tt.snake)
			}
		})
	}
}

func collectKeys(v any, into map[string]struct{}) {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			into[k] = struct{}{}
			collectKeys(val, into)
		}
	case []any:
		for _, val := range t {
			collectKeys(val, into)
		}
	}
}

func TestSnakeToCamel_FixtureKeys(t *testing.T) {
	keys := make(map[string]struct{})
	for _, f := range loadFixtures(t) {
		collectKeys(gjson.ParseBytes(f.data).Value(), keys)
	}
	if len(keys) == 0 {
		t.Fatal("no object keys in fixtures")
	}

	for k := range keys {
		camel := SnakeToCamel(k)
		if back := CamelToSnake(camel); back != k {
			t.Errorf("%s -> %s -> %s", k, camel, back)
		}
		if !startsLower(k) {
			continue
		}
		for i := 0; i+1 < len(camel); i++ {
			if camel[i] == '_' && startsLower(camel[i+1:]) {
				t.Errorf("%s -> %s is not camel case", k, camel)
				break
			}
		}
	}
}

func TestConvertKeys(t *testing.T) {
	in := []byte(`{"block_hash":"abc","sync_info":{"latest_block_height":7},"chunks":[{"shard_id":1}],` +
		`"actions":[{"FunctionCall":{"method_name":"ft_transfer"}},"CreateAccount"]}`)

	camel, err := ConvertKeys(in, SnakeToCamel)
	if err != nil {
		t.Fatalf("ConvertKeys() error = %v", err)
	}
	for _, path := range []string{"blockHash", "syncInfo.latestBlockHeight", "chunks.0.shardId", "actions.0.FunctionCall.methodName"} {
		if !gjson.GetBytes(camel, path).Exists() {
			t.Errorf("%s missing from %s", path, camel)
		}
	}
	if gjson.GetBytes(camel, "syncInfo.latestBlockHeight").Int() != 7 {
		t.Errorf("value lost: %s", camel)
	}
	if gjson.GetBytes(camel, "actions.1").String() != "CreateAccount" {
		t.Errorf("unit variant changed: %s", camel)
	}

	back, err := ConvertKeys(camel, CamelToSnake)
	if err != nil {
		t.Fatalf("ConvertKeys() back error = %v", err)
	}
	canonIn, _ := MarshalCanonical(gjson.ParseBytes(in).Value(), false)
	canonBack, _ := MarshalCanonical(gjson.ParseBytes(back).Value(), false)
	if string(canonIn) != string(canonBack) {
		t.Errorf("round trip = %s, want %s", canonBack, canonIn)
	}
}

func TestMarshalCanonical(t *testing.T) {
	req := ViewAccountRequest(FinalityReference(FinalityFinal), "alice.near")

	got, err := MarshalCanonical(req, false)
	if err != nil {
		t.Fatalf("MarshalCanonical() error = %v", err)
	}
	want := `{"account_id":"alice.near","finality":"final","request_type":"view_account"}`
	if string(got) != want {
		t.Errorf("MarshalCanonical() = %s, want %s", got, want)
	}

	indented, err := MarshalCanonical(req, true)
	if err != nil {
		t.Fatalf("MarshalCanonical(indent) error = %v", err)
	}
	if gjson.GetBytes(indented, "account_id").String() != "alice.near" || len(indented) <= len(got) {
		t.Errorf("MarshalCanonical(indent) = %s", indented)
	}
}

func TestMarshalCanonical_KeepsLargeNumbers(t *testing.T) {
	got, err := MarshalCanonical(map[string]any{"nonce": uint64(18446744073709551615)}, false)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"nonce":18446744073709551615}` {
		t.Errorf("MarshalCanonical() = %s", got)
	}
}
