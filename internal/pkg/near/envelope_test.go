package near

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
)

// roundTrip decodes an envelope into T, encodes it back and decodes the
// result again.
func roundTrip[T any](data []byte) (any, any, error) {
	var first T
	if err := json.Unmarshal(data, &first); err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}

	encoded, err := json.Marshal(first)
	if err != nil {
		return nil, nil, fmt.Errorf("encode: %w", err)
	}

	var second T
	if err := json.Unmarshal(encoded, &second); err != nil {
		return nil, nil, fmt.Errorf("decode encoded: %w", err)
	}
	return first, second, nil
}

var envelopes = map[string]func([]byte) (any, any, error){
	"JsonRpcRequestForBlock":                                                              roundTrip[entity.JsonRpcRequest[entity.RpcBlockRequest]],
	"JsonRpcRequestForBlockEffects":                                                       roundTrip[entity.JsonRpcRequest[entity.RpcStateChangesInBlockRequest]],
	"JsonRpcRequestForBroadcastTxAsync":                                                   roundTrip[entity.JsonRpcRequest[entity.RpcSendTransactionRequest]],
	"JsonRpcRequestForBroadcastTxCommit":                                                  roundTrip[entity.JsonRpcRequest[entity.RpcSendTransactionRequest]],
	"JsonRpcRequestForChanges":                                                            roundTrip[entity.JsonRpcRequest[entity.RpcStateChangesInBlockByTypeRequest]],
	"JsonRpcRequestForChunk":                                                              roundTrip[entity.JsonRpcRequest[entity.RpcChunkRequest]],
	"JsonRpcRequestForClientConfig":                                                       roundTrip[entity.JsonRpcRequest[entity.RpcClientConfigRequest]],
	"JsonRpcRequestForEXPERIMENTALChanges":                                                roundTrip[entity.JsonRpcRequest[entity.RpcStateChangesInBlockByTypeRequest]],
	"JsonRpcRequestForEXPERIMENTALChangesInBlock":                                         roundTrip[entity.JsonRpcRequest[entity.RpcStateChangesInBlockRequest]],
	"JsonRpcRequestForEXPERIMENTALCongestionLevel":                                        roundTrip[entity.JsonRpcRequest[entity.RpcCongestionLevelRequest]],
	"JsonRpcRequestForEXPERIMENTALGenesisConfig":                                          roundTrip[entity.JsonRpcRequest[entity.GenesisConfigRequest]],
	"JsonRpcRequestForEXPERIMENTALLightClientBlockProof":                                  roundTrip[entity.JsonRpcRequest[entity.RpcLightClientBlockProofRequest]],
	"JsonRpcRequestForEXPERIMENTALLightClientProof":                                       roundTrip[entity.JsonRpcRequest[entity.RpcLightClientExecutionProofRequest]],
	"JsonRpcRequestForEXPERIMENTALMaintenanceWindows":                                     roundTrip[entity.JsonRpcRequest[entity.RpcMaintenanceWindowsRequest]],
	"JsonRpcRequestForEXPERIMENTALProtocolConfig":                                         roundTrip[entity.JsonRpcRequest[entity.RpcProtocolConfigRequest]],
	"JsonRpcRequestForEXPERIMENTALReceipt":                                                roundTrip[entity.JsonRpcRequest[entity.RpcReceiptRequest]],
	"JsonRpcRequestForEXPERIMENTALSplitStorageInfo":                                       roundTrip[entity.JsonRpcRequest[entity.RpcSplitStorageInfoRequest]],
	"JsonRpcRequestForEXPERIMENTALTxStatus":                                               roundTrip[entity.JsonRpcRequest[entity.RpcTransactionStatusRequest]],
	"JsonRpcRequestForEXPERIMENTALValidatorsOrdered":                                      roundTrip[entity.JsonRpcRequest[entity.RpcValidatorsOrderedRequest]],
	"JsonRpcRequestForGasPrice":                                                           roundTrip[entity.JsonRpcRequest[entity.RpcGasPriceRequest]],
	"JsonRpcRequestForGenesisConfig":                                                      roundTrip[entity.JsonRpcRequest[entity.GenesisConfigRequest]],
	"JsonRpcRequestForHealth":                                                             roundTrip[entity.JsonRpcRequest[entity.RpcHealthRequest]],
	"JsonRpcRequestForLightClientProof":                                                   roundTrip[entity.JsonRpcRequest[entity.RpcLightClientExecutionProofRequest]],
	"JsonRpcRequestForMaintenanceWindows":                                                 roundTrip[entity.JsonRpcRequest[entity.RpcMaintenanceWindowsRequest]],
	"JsonRpcRequestForNetworkInfo":                                                        roundTrip[entity.JsonRpcRequest[entity.RpcNetworkInfoRequest]],
	"JsonRpcRequestForNextLightClientBlock":                                               roundTrip[entity.JsonRpcRequest[entity.RpcLightClientNextBlockRequest]],
	"JsonRpcRequestForQuery":                                                              roundTrip[entity.JsonRpcRequest[entity.RpcQueryRequest]],
	"JsonRpcRequestForSendTx":                                                             roundTrip[entity.JsonRpcRequest[entity.RpcSendTransactionRequest]],
	"JsonRpcRequestForStatus":                                                             roundTrip[entity.JsonRpcRequest[entity.RpcStatusRequest]],
	"JsonRpcRequestForTx":                                                                 roundTrip[entity.JsonRpcRequest[entity.RpcTransactionStatusRequest]],
	"JsonRpcRequestForValidators":                                                         roundTrip[entity.JsonRpcRequest[entity.RpcValidatorRequest]],
	"JsonRpcResponseForArrayOfRangeOfUint64AndRpcError_Error":                             roundTrip[entity.JsonRpcResponse[[]entity.RangeOfUint64, entity.UntypedHandlerError]],
	"JsonRpcResponseForArrayOfRangeOfUint64AndRpcError_Success":                           roundTrip[entity.JsonRpcResponse[[]entity.RangeOfUint64, entity.UntypedHandlerError]],
	"JsonRpcResponseForArrayOfRangeOfUint64AndRpcMaintenanceWindowsError_Error":           roundTrip[entity.JsonRpcResponse[[]entity.RangeOfUint64, entity.RpcMaintenanceWindowsError]],
	"JsonRpcResponseForArrayOfRangeOfUint64AndRpcMaintenanceWindowsError_Success":         roundTrip[entity.JsonRpcResponse[[]entity.RangeOfUint64, entity.RpcMaintenanceWindowsError]],
	"JsonRpcResponseForArrayOfValidatorStakeViewAndRpcError_Error":                        roundTrip[entity.JsonRpcResponse[[]entity.ValidatorStakeView, entity.UntypedHandlerError]],
	"JsonRpcResponseForArrayOfValidatorStakeViewAndRpcError_Success":                      roundTrip[entity.JsonRpcResponse[[]entity.ValidatorStakeView, entity.UntypedHandlerError]],
	"JsonRpcResponseForArrayOfValidatorStakeViewAndRpcValidatorError_Error":               roundTrip[entity.JsonRpcResponse[[]entity.ValidatorStakeView, entity.RpcValidatorError]],
	"JsonRpcResponseForArrayOfValidatorStakeViewAndRpcValidatorError_Success":             roundTrip[entity.JsonRpcResponse[[]entity.ValidatorStakeView, entity.RpcValidatorError]],
	"JsonRpcResponseForCryptoHashAndRpcError_Error":                                       roundTrip[entity.JsonRpcResponse[entity.CryptoHash, entity.UntypedHandlerError]],
	"JsonRpcResponseForCryptoHashAndRpcError_Success":                                     roundTrip[entity.JsonRpcResponse[entity.CryptoHash, entity.UntypedHandlerError]],
	"JsonRpcResponseForCryptoHashAndRpcTransactionError_Error":                            roundTrip[entity.JsonRpcResponse[entity.CryptoHash, entity.RpcTransactionError]],
	"JsonRpcResponseForCryptoHashAndRpcTransactionError_Success":                          roundTrip[entity.JsonRpcResponse[entity.CryptoHash, entity.RpcTransactionError]],
	"JsonRpcResponseForGenesisConfigAndGenesisConfigError_Error":                          roundTrip[entity.JsonRpcResponse[entity.GenesisConfig, entity.GenesisConfigError]],
	"JsonRpcResponseForGenesisConfigAndGenesisConfigError_Success":                        roundTrip[entity.JsonRpcResponse[entity.GenesisConfig, entity.GenesisConfigError]],
	"JsonRpcResponseForGenesisConfigAndRpcError_Error":                                    roundTrip[entity.JsonRpcResponse[entity.GenesisConfig, entity.UntypedHandlerError]],
	"JsonRpcResponseForGenesisConfigAndRpcError_Success":                                  roundTrip[entity.JsonRpcResponse[entity.GenesisConfig, entity.UntypedHandlerError]],
	"JsonRpcResponseForNullableRpcHealthResponseAndRpcError_Error":                        roundTrip[entity.JsonRpcResponse[entity.RpcHealthResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForNullableRpcHealthResponseAndRpcError_Success":                      roundTrip[entity.JsonRpcResponse[entity.RpcHealthResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForNullableRpcHealthResponseAndRpcStatusError_Error":                  roundTrip[entity.JsonRpcResponse[entity.RpcHealthResponse, entity.RpcStatusError]],
	"JsonRpcResponseForNullableRpcHealthResponseAndRpcStatusError_Success":                roundTrip[entity.JsonRpcResponse[entity.RpcHealthResponse, entity.RpcStatusError]],
	"JsonRpcResponseForRpcBlockResponseAndRpcBlockError_Error":                            roundTrip[entity.JsonRpcResponse[entity.RpcBlockResponse, entity.RpcBlockError]],
	"JsonRpcResponseForRpcBlockResponseAndRpcBlockError_Success":                          roundTrip[entity.JsonRpcResponse[entity.RpcBlockResponse, entity.RpcBlockError]],
	"JsonRpcResponseForRpcBlockResponseAndRpcError_Error":                                 roundTrip[entity.JsonRpcResponse[entity.RpcBlockResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcBlockResponseAndRpcError_Success":                               roundTrip[entity.JsonRpcResponse[entity.RpcBlockResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcChunkResponseAndRpcChunkError_Error":                            roundTrip[entity.JsonRpcResponse[entity.RpcChunkResponse, entity.RpcChunkError]],
	"JsonRpcResponseForRpcChunkResponseAndRpcChunkError_Success":                          roundTrip[entity.JsonRpcResponse[entity.RpcChunkResponse, entity.RpcChunkError]],
	"JsonRpcResponseForRpcChunkResponseAndRpcError_Error":                                 roundTrip[entity.JsonRpcResponse[entity.RpcChunkResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcChunkResponseAndRpcError_Success":                               roundTrip[entity.JsonRpcResponse[entity.RpcChunkResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcClientConfigResponseAndRpcClientConfigError_Error":              roundTrip[entity.JsonRpcResponse[entity.RpcClientConfigResponse, entity.RpcClientConfigError]],
	"JsonRpcResponseForRpcClientConfigResponseAndRpcClientConfigError_Success":            roundTrip[entity.JsonRpcResponse[entity.RpcClientConfigResponse, entity.RpcClientConfigError]],
	"JsonRpcResponseForRpcClientConfigResponseAndRpcError_Error":                          roundTrip[entity.JsonRpcResponse[entity.RpcClientConfigResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcClientConfigResponseAndRpcError_Success":                        roundTrip[entity.JsonRpcResponse[entity.RpcClientConfigResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcCongestionLevelResponseAndRpcChunkError_Error":                  roundTrip[entity.JsonRpcResponse[entity.RpcCongestionLevelResponse, entity.RpcChunkError]],
	"JsonRpcResponseForRpcCongestionLevelResponseAndRpcChunkError_Success":                roundTrip[entity.JsonRpcResponse[entity.RpcCongestionLevelResponse, entity.RpcChunkError]],
	"JsonRpcResponseForRpcCongestionLevelResponseAndRpcError_Error":                       roundTrip[entity.JsonRpcResponse[entity.RpcCongestionLevelResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcCongestionLevelResponseAndRpcError_Success":                     roundTrip[entity.JsonRpcResponse[entity.RpcCongestionLevelResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcGasPriceResponseAndRpcError_Error":                              roundTrip[entity.JsonRpcResponse[entity.RpcGasPriceResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcGasPriceResponseAndRpcError_Success":                            roundTrip[entity.JsonRpcResponse[entity.RpcGasPriceResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcGasPriceResponseAndRpcGasPriceError_Error":                      roundTrip[entity.JsonRpcResponse[entity.RpcGasPriceResponse, entity.RpcGasPriceError]],
	"JsonRpcResponseForRpcGasPriceResponseAndRpcGasPriceError_Success":                    roundTrip[entity.JsonRpcResponse[entity.RpcGasPriceResponse, entity.RpcGasPriceError]],
	"JsonRpcResponseForRpcLightClientBlockProofResponseAndRpcError_Error":                 roundTrip[entity.JsonRpcResponse[entity.RpcLightClientBlockProofResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcLightClientBlockProofResponseAndRpcError_Success":               roundTrip[entity.JsonRpcResponse[entity.RpcLightClientBlockProofResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcLightClientBlockProofResponseAndRpcLightClientProofError_Error": roundTrip[entity.JsonRpcResponse[entity.RpcLightClientBlockProofResponse, entity.RpcLightClientProofError]],
	"JsonRpcResponseForRpcLightClientExecutionProofResponseAndRpcError_Error":             roundTrip[entity.JsonRpcResponse[entity.RpcLightClientExecutionProofResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcLightClientExecutionProofResponseAndRpcError_Success":           roundTrip[entity.JsonRpcResponse[entity.RpcLightClientExecutionProofResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcLightClientNextBlockResponseAndRpcError_Error":                  roundTrip[entity.JsonRpcResponse[entity.RpcLightClientNextBlockResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcLightClientNextBlockResponseAndRpcError_Success":                roundTrip[entity.JsonRpcResponse[entity.RpcLightClientNextBlockResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcNetworkInfoResponseAndRpcError_Error":                           roundTrip[entity.JsonRpcResponse[entity.RpcNetworkInfoResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcNetworkInfoResponseAndRpcError_Success":                         roundTrip[entity.JsonRpcResponse[entity.RpcNetworkInfoResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcNetworkInfoResponseAndRpcNetworkInfoError_Error":                roundTrip[entity.JsonRpcResponse[entity.RpcNetworkInfoResponse, entity.RpcNetworkInfoError]],
	"JsonRpcResponseForRpcNetworkInfoResponseAndRpcNetworkInfoError_Success":              roundTrip[entity.JsonRpcResponse[entity.RpcNetworkInfoResponse, entity.RpcNetworkInfoError]],
	"JsonRpcResponseForRpcProtocolConfigResponseAndRpcError_Error":                        roundTrip[entity.JsonRpcResponse[entity.RpcProtocolConfigResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcProtocolConfigResponseAndRpcError_Success":                      roundTrip[entity.JsonRpcResponse[entity.RpcProtocolConfigResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcProtocolConfigResponseAndRpcProtocolConfigError_Error":          roundTrip[entity.JsonRpcResponse[entity.RpcProtocolConfigResponse, entity.RpcProtocolConfigError]],
	"JsonRpcResponseForRpcProtocolConfigResponseAndRpcProtocolConfigError_Success":        roundTrip[entity.JsonRpcResponse[entity.RpcProtocolConfigResponse, entity.RpcProtocolConfigError]],
	"JsonRpcResponseForRpcQueryResponseAndRpcError_Error":                                 roundTrip[entity.JsonRpcResponse[entity.RpcQueryResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcQueryResponseAndRpcError_Success":                               roundTrip[entity.JsonRpcResponse[entity.RpcQueryResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcQueryResponseAndRpcQueryError_Error":                            roundTrip[entity.JsonRpcResponse[entity.RpcQueryResponse, entity.RpcQueryError]],
	"JsonRpcResponseForRpcQueryResponseAndRpcQueryError_Success":                          roundTrip[entity.JsonRpcResponse[entity.RpcQueryResponse, entity.RpcQueryError]],
	"JsonRpcResponseForRpcReceiptResponseAndRpcError_Error":                               roundTrip[entity.JsonRpcResponse[entity.RpcReceiptResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcReceiptResponseAndRpcError_Success":                             roundTrip[entity.JsonRpcResponse[entity.RpcReceiptResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcReceiptResponseAndRpcReceiptError_Error":                        roundTrip[entity.JsonRpcResponse[entity.RpcReceiptResponse, entity.RpcReceiptError]],
	"JsonRpcResponseForRpcReceiptResponseAndRpcReceiptError_Success":                      roundTrip[entity.JsonRpcResponse[entity.RpcReceiptResponse, entity.RpcReceiptError]],
	"JsonRpcResponseForRpcSplitStorageInfoResponseAndRpcError_Error":                      roundTrip[entity.JsonRpcResponse[entity.RpcSplitStorageInfoResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcSplitStorageInfoResponseAndRpcError_Success":                    roundTrip[entity.JsonRpcResponse[entity.RpcSplitStorageInfoResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcSplitStorageInfoResponseAndRpcSplitStorageInfoError_Error":      roundTrip[entity.JsonRpcResponse[entity.RpcSplitStorageInfoResponse, entity.RpcSplitStorageInfoError]],
	"JsonRpcResponseForRpcSplitStorageInfoResponseAndRpcSplitStorageInfoError_Success":    roundTrip[entity.JsonRpcResponse[entity.RpcSplitStorageInfoResponse, entity.RpcSplitStorageInfoError]],
	"JsonRpcResponseForRpcStateChangesInBlockByTypeResponseAndRpcError_Error":             roundTrip[entity.JsonRpcResponse[entity.RpcStateChangesInBlockByTypeResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcStateChangesInBlockByTypeResponseAndRpcError_Success":           roundTrip[entity.JsonRpcResponse[entity.RpcStateChangesInBlockByTypeResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcStateChangesInBlockByTypeResponseAndRpcStateChangesError_Error": roundTrip[entity.JsonRpcResponse[entity.RpcStateChangesInBlockByTypeResponse, entity.RpcStateChangesError]],
	"JsonRpcResponseForRpcStateChangesInBlockResponseAndRpcError_Error":                   roundTrip[entity.JsonRpcResponse[entity.RpcStateChangesInBlockResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcStateChangesInBlockResponseAndRpcError_Success":                 roundTrip[entity.JsonRpcResponse[entity.RpcStateChangesInBlockResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcStateChangesInBlockResponseAndRpcStateChangesError_Error":       roundTrip[entity.JsonRpcResponse[entity.RpcStateChangesInBlockResponse, entity.RpcStateChangesError]],
	"JsonRpcResponseForRpcStateChangesInBlockResponseAndRpcStateChangesError_Success":     roundTrip[entity.JsonRpcResponse[entity.RpcStateChangesInBlockResponse, entity.RpcStateChangesError]],
	"JsonRpcResponseForRpcStatusResponseAndRpcError_Error":                                roundTrip[entity.JsonRpcResponse[entity.RpcStatusResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcStatusResponseAndRpcError_Success":                              roundTrip[entity.JsonRpcResponse[entity.RpcStatusResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcStatusResponseAndRpcStatusError_Error":                          roundTrip[entity.JsonRpcResponse[entity.RpcStatusResponse, entity.RpcStatusError]],
	"JsonRpcResponseForRpcStatusResponseAndRpcStatusError_Success":                        roundTrip[entity.JsonRpcResponse[entity.RpcStatusResponse, entity.RpcStatusError]],
	"JsonRpcResponseForRpcTransactionResponseAndRpcError_Error":                           roundTrip[entity.JsonRpcResponse[entity.RpcTransactionResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcTransactionResponseAndRpcError_Success":                         roundTrip[entity.JsonRpcResponse[entity.RpcTransactionResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcTransactionResponseAndRpcTransactionError_Error":                roundTrip[entity.JsonRpcResponse[entity.RpcTransactionResponse, entity.RpcTransactionError]],
	"JsonRpcResponseForRpcTransactionResponseAndRpcTransactionError_Success":              roundTrip[entity.JsonRpcResponse[entity.RpcTransactionResponse, entity.RpcTransactionError]],
	"JsonRpcResponseForRpcValidatorResponseAndRpcError_Error":                             roundTrip[entity.JsonRpcResponse[entity.RpcValidatorResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcValidatorResponseAndRpcError_Success":                           roundTrip[entity.JsonRpcResponse[entity.RpcValidatorResponse, entity.UntypedHandlerError]],
	"JsonRpcResponseForRpcValidatorResponseAndRpcValidatorError_Error":                    roundTrip[entity.JsonRpcResponse[entity.RpcValidatorResponse, entity.RpcValidatorError]],
	"JsonRpcResponseForRpcValidatorResponseAndRpcValidatorError_Success":                  roundTrip[entity.JsonRpcResponse[entity.RpcValidatorResponse, entity.RpcValidatorError]],
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name+".json"))
	if err != nil {
		t.Fatalf("could not read fixture %s: %v", name, err)
	}
	return data
}

func TestEnvelopes_RoundTrip(t *testing.T) {
	for name, decode := range envelopes {
		t.Run(name, func(t *testing.T) {
			first, second, err := decode(readFixture(t, name))
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(first, second) {
				t.Errorf("round trip changed the value:\n got %#v\nwant %#v", second, first)
			}
		})
	}
}

func TestEnvelopes_EveryFixtureIsDecoded(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.json"))
	if err != nil {
		t.Fatal(err)
	}

	var missing []string
	for _, f := range files {
		name := strings.TrimSuffix(filepath.Base(f), ".json")
		if _, ok := envelopes[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)

	if len(missing) > 0 {
		t.Errorf("fixtures without a decoder: %v", missing)
	}
	if len(files) != len(envelopes) {
		t.Errorf("got %d fixtures for %d decoders", len(files), len(envelopes))
	}
}
