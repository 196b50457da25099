package near

import (
	"context"
	"slices"

	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
	"github.com/lidofinance/near-jsonrpc/internal/utils/registry"
)

// ExperimentalChanges is the deprecated name of Changes.
func (c *Client) ExperimentalChanges(ctx context.Context, req entity.RpcStateChangesInBlockByTypeRequest) (*entity.RpcStateChangesInBlockResponse, error) {
	return call[entity.RpcStateChangesInBlockByTypeRequest, entity.RpcStateChangesInBlockResponse](ctx, c, registry.ExperimentalChanges, req)
}

// ExperimentalChangesInBlock is the deprecated name of BlockEffects.
func (c *Client) ExperimentalChangesInBlock(ctx context.Context, req entity.RpcStateChangesInBlockRequest) (*entity.RpcStateChangesInBlockByTypeResponse, error) {
	return call[entity.RpcStateChangesInBlockRequest, entity.RpcStateChangesInBlockByTypeResponse](ctx, c, registry.ExperimentalChangesInBlock, req)
}

func (c *Client) ExperimentalCongestionLevel(ctx context.Context, req entity.RpcCongestionLevelRequest) (*entity.RpcCongestionLevelResponse, error) {
	return call[entity.RpcCongestionLevelRequest, entity.RpcCongestionLevelResponse](ctx, c, registry.ExperimentalCongestionLevel, req)
}

func (c *Client) ExperimentalGenesisConfig(ctx context.Context) (*entity.GenesisConfig, error) {
	return call[entity.GenesisConfigRequest, entity.GenesisConfig](ctx, c, registry.ExperimentalGenesisConfig, entity.GenesisConfigRequest{})
}

func (c *Client) ExperimentalLightClientBlockProof(ctx context.Context, req entity.RpcLightClientBlockProofRequest) (*entity.RpcLightClientBlockProofResponse, error) {
	return call[entity.RpcLightClientBlockProofRequest, entity.RpcLightClientBlockProofResponse](ctx, c, registry.ExperimentalLightClientBlockProof, req)
}

func (c *Client) ExperimentalLightClientProof(ctx context.Context, req entity.RpcLightClientExecutionProofRequest) (*entity.RpcLightClientExecutionProofResponse, error) {
	return call[entity.RpcLightClientExecutionProofRequest, entity.RpcLightClientExecutionProofResponse](ctx, c, registry.ExperimentalLightClientProof, req)
}

func (c *Client) ExperimentalMaintenanceWindows(ctx context.Context, req entity.RpcMaintenanceWindowsRequest) ([]entity.RangeOfUint64, error) {
	return callSlice[entity.RpcMaintenanceWindowsRequest, entity.RangeOfUint64](ctx, c, registry.ExperimentalMaintenanceWindows, req)
}

func (c *Client) ExperimentalProtocolConfig(ctx context.Context, req entity.RpcProtocolConfigRequest) (*entity.RpcProtocolConfigResponse, error) {
	return call[entity.RpcProtocolConfigRequest, entity.RpcProtocolConfigResponse](ctx, c, registry.ExperimentalProtocolConfig, req)
}

func (c *Client) ExperimentalReceipt(ctx context.Context, req entity.RpcReceiptRequest) (*entity.RpcReceiptResponse, error) {
	return call[entity.RpcReceiptRequest, entity.RpcReceiptResponse](ctx, c, registry.ExperimentalReceipt, req)
}

func (c *Client) ExperimentalSplitStorageInfo(ctx context.Context) (*entity.RpcSplitStorageInfoResponse, error) {
	return call[entity.RpcSplitStorageInfoRequest, entity.RpcSplitStorageInfoResponse](ctx, c, registry.ExperimentalSplitStorageInfo, entity.RpcSplitStorageInfoRequest{})
}

func (c *Client) ExperimentalTxStatus(ctx context.Context, req entity.RpcTransactionStatusRequest) (*entity.RpcTransactionResponse, error) {
	return call[entity.RpcTransactionStatusRequest, entity.RpcTransactionResponse](ctx, c, registry.ExperimentalTxStatus, req)
}

func (c *Client) ExperimentalValidatorsOrdered(ctx context.Context, req entity.RpcValidatorsOrderedRequest) ([]entity.ValidatorStakeView, error) {
	return callSlice[entity.RpcValidatorsOrderedRequest, entity.ValidatorStakeView](ctx, c, registry.ExperimentalValidatorsOrdered, req)
}

// Block serves blocks requested by hash from the cache when one is
// configured. Every fetched block is cached by its hash. Callers own the
// returned block, the cache keeps its own copy of the chunk headers.
func (c *Client) Block(ctx context.Context, req entity.RpcBlockRequest) (*entity.RpcBlockResponse, error) {
	if c.blocks != nil && req.BlockID != nil && req.BlockID.Hash != nil {
		if block, ok := c.blocks.Get(*req.BlockID.Hash); ok {
			c.metrics.RpcCacheHits.Inc()
			return cloneBlock(block), nil
		}
	}

	block, err := call[entity.RpcBlockRequest, entity.RpcBlockResponse](ctx, c, registry.Block, req)
	if err != nil {
		return nil, err
	}

	if c.blocks != nil {
		c.blocks.Add(block.Header.Hash, *cloneBlock(*block))
	}
	return block, nil
}

func cloneBlock(block entity.RpcBlockResponse) *entity.RpcBlockResponse {
	block.Chunks = slices.Clone(block.Chunks)
	return &block
}

func (c *Client) BlockEffects(ctx context.Context, req entity.RpcStateChangesInBlockRequest) (*entity.RpcStateChangesInBlockByTypeResponse, error) {
	return call[entity.RpcStateChangesInBlockRequest, entity.RpcStateChangesInBlockByTypeResponse](ctx, c, registry.BlockEffects, req)
}

// BroadcastTxAsync is deprecated, SendTx with wait_until NONE does the same.
func (c *Client) BroadcastTxAsync(ctx context.Context, req entity.RpcSendTransactionRequest) (entity.CryptoHash, error) {
	hash, err := call[entity.RpcSendTransactionRequest, entity.CryptoHash](ctx, c, registry.BroadcastTxAsync, req)
	if err != nil {
		return "", err
	}
	return *hash, nil
}

// BroadcastTxCommit is deprecated, use SendTx.
func (c *Client) BroadcastTxCommit(ctx context.Context, req entity.RpcSendTransactionRequest) (*entity.RpcTransactionResponse, error) {
	return call[entity.RpcSendTransactionRequest, entity.RpcTransactionResponse](ctx, c, registry.BroadcastTxCommit, req)
}

func (c *Client) Changes(ctx context.Context, req entity.RpcStateChangesInBlockByTypeRequest) (*entity.RpcStateChangesInBlockResponse, error) {
	return call[entity.RpcStateChangesInBlockByTypeRequest, entity.RpcStateChangesInBlockResponse](ctx, c, registry.Changes, req)
}

func (c *Client) Chunk(ctx context.Context, req entity.RpcChunkRequest) (*entity.RpcChunkResponse, error) {
	return call[entity.RpcChunkRequest, entity.RpcChunkResponse](ctx, c, registry.Chunk, req)
}

func (c *Client) ClientConfig(ctx context.Context) (*entity.RpcClientConfigResponse, error) {
	return call[entity.RpcClientConfigRequest, entity.RpcClientConfigResponse](ctx, c, registry.ClientConfig, entity.RpcClientConfigRequest{})
}

func (c *Client) GasPrice(ctx context.Context, req entity.RpcGasPriceRequest) (*entity.RpcGasPriceResponse, error) {
	return call[entity.RpcGasPriceRequest, entity.RpcGasPriceResponse](ctx, c, registry.GasPrice, req)
}

func (c *Client) GenesisConfig(ctx context.Context) (*entity.GenesisConfig, error) {
	return call[entity.GenesisConfigRequest, entity.GenesisConfig](ctx, c, registry.GenesisConfig, entity.GenesisConfigRequest{})
}

// Health returns nil when the node is healthy, an error otherwise.
func (c *Client) Health(ctx context.Context) error {
	_, err := call[entity.RpcHealthRequest, entity.RpcHealthResponse](ctx, c, registry.Health, entity.RpcHealthRequest{})
	return err
}

func (c *Client) LightClientProof(ctx context.Context, req entity.RpcLightClientExecutionProofRequest) (*entity.RpcLightClientExecutionProofResponse, error) {
	return call[entity.RpcLightClientExecutionProofRequest, entity.RpcLightClientExecutionProofResponse](ctx, c, registry.LightClientProof, req)
}

func (c *Client) MaintenanceWindows(ctx context.Context, req entity.RpcMaintenanceWindowsRequest) ([]entity.RangeOfUint64, error) {
	return callSlice[entity.RpcMaintenanceWindowsRequest, entity.RangeOfUint64](ctx, c, registry.MaintenanceWindows, req)
}

func (c *Client) NetworkInfo(ctx context.Context) (*entity.RpcNetworkInfoResponse, error) {
	return call[entity.RpcNetworkInfoRequest, entity.RpcNetworkInfoResponse](ctx, c, registry.NetworkInfo, entity.RpcNetworkInfoRequest{})
}

func (c *Client) NextLightClientBlock(ctx context.Context, req entity.RpcLightClientNextBlockRequest) (*entity.RpcLightClientNextBlockResponse, error) {
	return call[entity.RpcLightClientNextBlockRequest, entity.RpcLightClientNextBlockResponse](ctx, c, registry.NextLightClientBlock, req)
}

func (c *Client) Query(ctx context.Context, req entity.RpcQueryRequest) (*entity.RpcQueryResponse, error) {
	return call[entity.RpcQueryRequest, entity.RpcQueryResponse](ctx, c, registry.Query, req)
}

func (c *Client) SendTx(ctx context.Context, req entity.RpcSendTransactionRequest) (*entity.RpcTransactionResponse, error) {
	return call[entity.RpcSendTransactionRequest, entity.RpcTransactionResponse](ctx, c, registry.SendTx, req)
}

func (c *Client) Status(ctx context.Context) (*entity.RpcStatusResponse, error) {
	return call[entity.RpcStatusRequest, entity.RpcStatusResponse](ctx, c, registry.Status, entity.RpcStatusRequest{})
}

func (c *Client) Tx(ctx context.Context, req entity.RpcTransactionStatusRequest) (*entity.RpcTransactionResponse, error) {
	return call[entity.RpcTransactionStatusRequest, entity.RpcTransactionResponse](ctx, c, registry.Tx, req)
}

func (c *Client) Validators(ctx context.Context, req entity.RpcValidatorRequest) (*entity.RpcValidatorResponse, error) {
	return call[entity.RpcValidatorRequest, entity.RpcValidatorResponse](ctx, c, registry.Validators, req)
}

func callSlice[P, T any](ctx context.Context, c *Client, method string, params P) ([]T, error) {
	out, err := call[P, []T](ctx, c, method, params)
	if err != nil {
		return nil, err
	}
	return *out, nil
}
