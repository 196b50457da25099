package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/lidofinance/near-jsonrpc/internal/app/feeder"
	"github.com/lidofinance/near-jsonrpc/internal/pkg/near"
	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
)

const (
	blockHash = "BwmK2sJD9sVBmczKnr2NzuQAasSKAsBhbAEK9rnAMZy"
	chunkHash = "CHMbeYQ1tWpRT891E7JR5eMw4Jc3Txtp8AxJ5prAqvy2"
)

type fakeNode struct {
	*httptest.Server

	mu      sync.Mutex
	replies map[string][]byte
	methods []string
	params  []json.RawMessage
}

func newFakeNode(t *testing.T, replies map[string][]byte) *fakeNode {
	t.Helper()

	node := &fakeNode{replies: replies}
	node.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string          `json:"method"`
			Params json.RawMessage `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		node.mu.Lock()
		node.methods = append(node.methods, req.Method)
		node.params = append(node.params, req.Params)
		reply, ok := node.replies[req.Method]
		node.mu.Unlock()

		if !ok {
			http.Error(w, "unexpected method "+req.Method, http.StatusNotFound)
			return
		}
		_, _ = w.Write(reply)
	}))
	t.Cleanup(node.Close)
	return node
}

func (n *fakeNode) lastCall() (string, json.RawMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.methods) == 0 {
		return "", nil
	}
	return n.methods[len(n.methods)-1], n.params[len(n.params)-1]
}

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "internal", "pkg", "near", "testdata", name+".json"))
	require.NoError(t, err)
	return data
}

func successReplies(t *testing.T) map[string][]byte {
	t.Helper()
	return map[string][]byte{
		"status":                       fixture(t, "JsonRpcResponseForRpcStatusResponseAndRpcError_Success"),
		"health":                       fixture(t, "JsonRpcResponseForNullableRpcHealthResponseAndRpcError_Success"),
		"block":                        fixture(t, "JsonRpcResponseForRpcBlockResponseAndRpcError_Success"),
		"chunk":                        fixture(t, "JsonRpcResponseForRpcChunkResponseAndRpcError_Success"),
		"tx":                           fixture(t, "JsonRpcResponseForRpcTransactionResponseAndRpcError_Success"),
		"EXPERIMENTAL_tx_status":       fixture(t, "JsonRpcResponseForRpcTransactionResponseAndRpcError_Success"),
		"EXPERIMENTAL_receipt":         fixture(t, "JsonRpcResponseForRpcReceiptResponseAndRpcError_Success"),
		"query":                        fixture(t, "JsonRpcResponseForRpcQueryResponseAndRpcError_Success"),
		"validators":                   fixture(t, "JsonRpcResponseForRpcValidatorResponseAndRpcError_Success"),
		"gas_price":                    fixture(t, "JsonRpcResponseForRpcGasPriceResponseAndRpcError_Success"),
		"EXPERIMENTAL_protocol_config": fixture(t, "JsonRpcResponseForRpcProtocolConfigResponseAndRpcError_Success"),
		"genesis_config":               fixture(t, "JsonRpcResponseForGenesisConfigAndRpcError_Success"),
		"network_info":                 fixture(t, "JsonRpcResponseForRpcNetworkInfoResponseAndRpcError_Success"),
	}
}

func run(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--url", url, "--attempts", "1"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	node := newFakeNode(t, successReplies(t))

	tests := []struct {
		name   string
		args   []string
		method string
		params string
		check  func(t *testing.T, out string)
	}{
		{
			name:   "status",
			args:   []string{"status"},
			method: "status",
			params: `{}`,
			check: func(t *testing.T, out string) {
				assert.Equal(t, "mainnet", gjson.Get(out, "chain_id").String())
			},
		},
		{
			name:   "health",
			args:   []string{"health"},
			method: "health",
			params: `{}`,
			check: func(t *testing.T, out string) {
				assert.Equal(t, "OK\n", out)
			},
		},
		{
			name:   "final block by default",
			args:   []string{"block"},
			method: "block",
			params: `{"finality":"final"}`,
			check: func(t *testing.T, out string) {
				assert.Equal(t, int64(137500000), gjson.Get(out, "header.height").Int())
			},
		},
		{
			name:   "block by height",
			args:   []string{"block", "137500000"},
			method: "block",
			params: `{"block_id":137500000}`,
		},
		{
			name:   "block by hash",
			args:   []string{"block", blockHash},
			method: "block",
			params: `{"block_id":"` + blockHash + `"}`,
		},
		{
			name:   "block at a sync checkpoint",
			args:   []string{"block", "genesis"},
			method: "block",
			params: `{"sync_checkpoint":"genesis"}`,
		},
		{
			name:   "chunk by hash",
			args:   []string{"chunk", chunkHash},
			method: "chunk",
			params: `{"chunk_id":"` + chunkHash + `"}`,
			check: func(t *testing.T, out string) {
				assert.Equal(t, chunkHash, gjson.Get(out, "header.chunk_hash").String())
			},
		},
		{
			name:   "chunk by block and shard",
			args:   []string{"chunk", "137500000", "2"},
			method: "chunk",
			params: `{"block_id":137500000,"shard_id":2}`,
		},
		{
			name:   "tx",
			args:   []string{"tx", blockHash, "Alice.near"},
			method: "tx",
			params: `{"tx_hash":"` + blockHash + `","sender_account_id":"alice.near","wait_until":"EXECUTED_OPTIMISTIC"}`,
		},
		{
			name:   "tx with receipts",
			args:   []string{"tx", "--receipts", "--wait", "FINAL", blockHash, "alice.near"},
			method: "EXPERIMENTAL_tx_status",
			params: `{"tx_hash":"` + blockHash + `","sender_account_id":"alice.near","wait_until":"FINAL"}`,
		},
		{
			name:   "receipt",
			args:   []string{"receipt", blockHash},
			method: "EXPERIMENTAL_receipt",
			params: `{"receipt_id":"` + blockHash + `"}`,
		},
		{
			name:   "account",
			args:   []string{"account", "alice.near", "--block", "optimistic"},
			method: "query",
			params: `{"finality":"optimistic","request_type":"view_account","account_id":"alice.near"}`,
			check: func(t *testing.T, out string) {
				assert.Equal(t, "1000000000000000000000000", gjson.Get(out, "amount").String())
				assert.Equal(t, int64(137500000), gjson.Get(out, "block_height").Int())
			},
		},
		{
			name:   "access key list",
			args:   []string{"access-keys", "alice.near"},
			method: "query",
			params: `{"finality":"final","request_type":"view_access_key_list","account_id":"alice.near"}`,
		},
		{
			name:   "validators of the latest epoch",
			args:   []string{"validators"},
			method: "validators",
			params: `"latest"`,
		},
		{
			name:   "total stake",
			args:   []string{"validators", "--total", "137500000"},
			method: "validators",
			params: `{"block_id":137500000}`,
			check: func(t *testing.T, out string) {
				assert.Equal(t, "1000000000000000000000000\n", out)
			},
		},
		{
			name:   "gas price",
			args:   []string{"gas-price"},
			method: "gas_price",
			params: `{}`,
			check: func(t *testing.T, out string) {
				assert.Equal(t, "100000000", gjson.Get(out, "gas_price").String())
			},
		},
		{
			name:   "protocol config",
			args:   []string{"protocol-config", "final"},
			method: "EXPERIMENTAL_protocol_config",
			params: `{"finality":"final"}`,
		},
		{
			name:   "genesis",
			args:   []string{"genesis"},
			method: "genesis_config",
			params: `{}`,
		},
		{
			name:   "network info",
			args:   []string{"network-info"},
			method: "network_info",
			params: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, node.URL, tt.args...)
			require.NoError(t, err)

			method, params := node.lastCall()
			assert.Equal(t, tt.method, method)
			assert.JSONEq(t, tt.params, string(params))

			if tt.check != nil {
				tt.check(t, out)
			}
		})
	}
}

func TestCommands_OutputFormat(t *testing.T) {
	node := newFakeNode(t, successReplies(t))

	t.Run("camel case keys", func(t *testing.T) {
		out, err := run(t, node.URL, "--key-case", "camel", "status")
		require.NoError(t, err)

		assert.Equal(t, "mainnet", gjson.Get(out, "chainId").String())
		assert.Equal(t, int64(137500000), gjson.Get(out, "syncInfo.latestBlockHeight").Int())
		assert.False(t, gjson.Get(out, "chain_id").Exists())
	})

	t.Run("sorted keys", func(t *testing.T) {
		out, err := run(t, node.URL, "--sorted", "status")
		require.NoError(t, err)

		var keys []string
		gjson.Parse(out).ForEach(func(key, _ gjson.Result) bool {
			keys = append(keys, key.String())
			return true
		})
		require.NotEmpty(t, keys)
		assert.True(t, sort.StringsAreSorted(keys), keys)
	})

	t.Run("unknown key case", func(t *testing.T) {
		_, err := run(t, node.URL, "--key-case", "kebab", "status")
		assert.ErrorContains(t, err, "--key-case")
	})
}

func TestCommands_Call(t *testing.T) {
	reply := func(t *testing.T, result string) []byte {
		t.Helper()
		raw, err := json.Marshal(entity.RpcQueryResponse{
			BlockHash:   blockHash,
			BlockHeight: 137500000,
			CallResult:  &entity.CallResult{Result: entity.ByteArray(result), Logs: []string{"view"}},
		})
		require.NoError(t, err)
		data, err := json.Marshal(map[string]any{"jsonrpc": "2.0", "id": "dontcare", "result": json.RawMessage(raw)})
		require.NoError(t, err)
		return data
	}

	t.Run("json result", func(t *testing.T) {
		node := newFakeNode(t, map[string][]byte{"query": reply(t, `{"total":"5"}`)})

		out, err := run(t, node.URL, "call", "token.near", "ft_total_supply", `{"a":1}`)
		require.NoError(t, err)

		_, params := node.lastCall()
		assert.Equal(t, "call_function", gjson.GetBytes(params, "request_type").String())
		assert.Equal(t, "ft_total_supply", gjson.GetBytes(params, "method_name").String())
		assert.Equal(t, "eyJhIjoxfQ==", gjson.GetBytes(params, "args_base64").String())

		assert.Equal(t, "5", gjson.Get(out, "result.total").String())
		assert.Equal(t, "view", gjson.Get(out, "logs.0").String())
		assert.Equal(t, int64(137500000), gjson.Get(out, "block_height").Int())
	})

	t.Run("plain result", func(t *testing.T) {
		node := newFakeNode(t, map[string][]byte{"query": reply(t, `not json`)})

		out, err := run(t, node.URL, "call", "token.near", "name")
		require.NoError(t, err)

		_, params := node.lastCall()
		assert.Equal(t, "e30=", gjson.GetBytes(params, "args_base64").String())
		assert.Equal(t, "not json", gjson.Get(out, "result").String())
	})

	t.Run("raw result", func(t *testing.T) {
		node := newFakeNode(t, map[string][]byte{"query": reply(t, `"x"`)})

		out, err := run(t, node.URL, "call", "--raw", "token.near", "name")
		require.NoError(t, err)
		result := gjson.Get(out, "result")
		require.True(t, result.IsArray(), out)
		assert.Equal(t, int64(3), gjson.Get(out, "result.#").Int())
		assert.Equal(t, []int64{34, 120, 34}, []int64{
			gjson.Get(out, "result.0").Int(),
			gjson.Get(out, "result.1").Int(),
			gjson.Get(out, "result.2").Int(),
		})
	})

	t.Run("invalid arguments", func(t *testing.T) {
		node := newFakeNode(t, map[string][]byte{})

		_, err := run(t, node.URL, "call", "token.near", "name", `{`)
		assert.ErrorContains(t, err, "not valid JSON")

		method, _ := node.lastCall()
		assert.Empty(t, method)
	})
}

func TestCommands_Errors(t *testing.T) {
	node := newFakeNode(t, map[string][]byte{
		"block": fixture(t, "JsonRpcResponseForRpcBlockResponseAndRpcBlockError_Error"),
	})

	t.Run("handler error", func(t *testing.T) {
		_, err := run(t, node.URL, "block", "1000")
		require.Error(t, err)

		var rpcErr *near.RPCError
		require.True(t, errors.As(err, &rpcErr))
		assert.Equal(t, entity.ErrorUnknownBlock, rpcErr.CauseName())
	})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad block reference", []string{"block", "not-a-block"}, "neither a block height nor a block hash"},
		{"bad chunk hash", []string{"chunk", "abc"}, "not a chunk hash"},
		{"bad shard id", []string{"chunk", "1", "x"}, "invalid shard id"},
		{"bad wait status", []string{"tx", "--wait", "SOON", blockHash, "alice.near"}, "unknown execution status"},
		{"epoch and block", []string{"validators", "--epoch", blockHash, "1"}, "mutually exclusive"},
		{"too many args", []string{"status", "x"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, node.URL, tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}

	t.Run("invalid url", func(t *testing.T) {
		_, err := run(t, "ftp://node", "status")
		assert.ErrorIs(t, err, near.ErrInvalidURL)
	})
}

func TestParseBlockReference(t *testing.T) {
	height := entity.BlockHeight(42)
	hash := entity.CryptoHash(blockHash)

	tests := []struct {
		value   string
		want    entity.BlockReference
		wantErr bool
	}{
		{"", entity.FinalityReference(entity.FinalityFinal), false},
		{"final", entity.FinalityReference(entity.FinalityFinal), false},
		{"optimistic", entity.FinalityReference(entity.FinalityOptimistic), false},
		{"near-final", entity.FinalityReference(entity.FinalityNearFinal), false},
		{"earliest_available", entity.SyncCheckpointReference(entity.SyncCheckpointEarliestAvailable), false},
		{"42", entity.BlockIdReference(entity.BlockId{Height: &height}), false},
		{blockHash, entity.BlockIdReference(entity.BlockId{Hash: &hash}), false},
		{"-1", entity.BlockReference{}, true},
		{"latest", entity.BlockReference{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseBlockReference(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptionalBlockId(t *testing.T) {
	id, err := parseOptionalBlockId("")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = parseOptionalBlockId("7")
	require.NoError(t, err)
	require.NotNil(t, id.Height)
	assert.Equal(t, entity.BlockHeight(7), *id.Height)
}

func TestRender(t *testing.T) {
	v := map[string]any{"zeta_value": 1, "alpha_value": map[string]any{"inner_key": true}}

	tests := []struct {
		name string
		opts options
		want string
	}{
		{
			name: "snake",
			opts: options{keyCase: keyCaseSnake},
			want: `{"alpha_value":{"inner_key":true},"zeta_value":1}`,
		},
		{
			name: "camel",
			opts: options{keyCase: keyCaseCamel},
			want: `{"alphaValue":{"innerKey":true},"zetaValue":1}`,
		},
		{
			name: "camel sorted",
			opts: options{keyCase: keyCaseCamel, sorted: true},
			want: `{"alphaValue":{"innerKey":true},"zetaValue":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.opts.render(v)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(out))
			assert.Contains(t, string(out), "\n  ")
		})
	}
}

func TestMethods(t *testing.T) {
	out, err := run(t, "http://127.0.0.1:1", "methods")
	require.NoError(t, err)

	assert.Contains(t, out, "block ")
	assert.Contains(t, out, "EXPERIMENTAL_genesis_config")
	assert.Contains(t, out, "deprecated, use genesis_config")
}

func TestPrintHandler(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	done := 0
	handler := newPrintHandler(&options{keyCase: keyCaseSnake}, cmd, 2, func() { done++ })

	for height := range 3 {
		require.NoError(t, handler(context.Background(), &feeder.BlockDto{Hash: blockHash, Height: entity.BlockHeight(height)}))
	}

	assert.Equal(t, 2, done, "done is called from the limit on")
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte(`"hash": "`+blockHash+`"`)))
}
