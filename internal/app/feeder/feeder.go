package feeder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/klauspost/compress/zstd"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/lidofinance/near-jsonrpc/internal/connectors/metrics"
	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
)

type NodeClient interface {
	Block(ctx context.Context, req entity.RpcBlockRequest) (*entity.RpcBlockResponse, error)
	Chunk(ctx context.Context, req entity.RpcChunkRequest) (*entity.RpcChunkResponse, error)
	FetchBlocksInRange(ctx context.Context, from, to entity.BlockHeight, concurrency int) ([]entity.RpcBlockResponse, error)
}

// Publisher is the part of jetstream.JetStream the feeder needs.
type Publisher interface {
	PublishAsync(subject string, data []byte, opts ...jetstream.PublishOpt) (jetstream.PubAckFuture, error)
}

type Config struct {
	Topic        string
	PollInterval time.Duration
	Concurrency  int
	// BackfillLimit bounds how many missed blocks are published after a
	// restart or a failed tick.
	BackfillLimit  uint64
	ChunkCacheSize int
}

type Feeder struct {
	log          *slog.Logger
	client       NodeClient
	js           Publisher
	metricsStore *metrics.Store
	checkpoint   *checkpoint
	chunks       *expirable.LRU[entity.CryptoHash, struct{}]
	cfg          Config
}

const chunkTTL = 10 * time.Minute

func New(log *slog.Logger, client NodeClient, js Publisher, store CheckpointStore, metricsStore *metrics.Store, cfg Config) *Feeder {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.ChunkCacheSize <= 0 {
		cfg.ChunkCacheSize = 4096
	}

	return &Feeder{
		log:          log,
		client:       client,
		js:           js,
		metricsStore: metricsStore,
		checkpoint:   newCheckpoint(store, log, metricsStore),
		chunks:       expirable.NewLRU[entity.CryptoHash, struct{}](cfg.ChunkCacheSize, nil, chunkTTL),
		cfg:          cfg,
	}
}

func (w *Feeder) Run(ctx context.Context, g *errgroup.Group) {
	g.Go(func() error {
		ticker := time.NewTicker(w.cfg.PollInterval)
		defer ticker.Stop()

		var prevHash entity.CryptoHash
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				hash, err := w.Tick(ctx, prevHash)
				if err != nil {
					w.metricsStore.PublishedBlocks.With(prometheus.Labels{metrics.Status: metrics.StatusFail}).Inc()
					w.log.Error(fmt.Sprintf("feeder tick error: %v", err))
					continue
				}
				prevHash = hash
			}
		}
	})
}

// Tick publishes the latest final block unless its hash is prevHash, along
// with any blocks missed since the checkpoint. It returns the hash of the
// latest final block.
func (w *Feeder) Tick(ctx context.Context, prevHash entity.CryptoHash) (entity.CryptoHash, error) {
	latest, err := w.client.Block(ctx, entity.RpcBlockRequest{
		BlockReference: entity.FinalityReference(entity.FinalityFinal),
	})
	if err != nil {
		return prevHash, fmt.Errorf("could not fetch final block: %w", err)
	}

	if latest.Header.Hash == prevHash {
		return prevHash, nil
	}

	height := uint64(latest.Header.Height)
	last, known := w.checkpoint.Load(ctx)
	if known && last >= height {
		return latest.Header.Hash, nil
	}

	if known && height-last > 1 {
		if backfillErr := w.backfill(ctx, last+1, height-1); backfillErr != nil {
			return prevHash, backfillErr
		}
	}

	if publishErr := w.Publish(ctx, latest); publishErr != nil {
		return prevHash, publishErr
	}

	return latest.Header.Hash, nil
}

func (w *Feeder) backfill(ctx context.Context, from, to uint64) error {
	if w.cfg.BackfillLimit == 0 {
		w.log.Warn(fmt.Sprintf("skipping blocks %d..%d, backfill is disabled", from, to))
		return nil
	}

	if to-from+1 > w.cfg.BackfillLimit {
		skipped := to - w.cfg.BackfillLimit
		w.log.Warn(fmt.Sprintf("too far behind, skipping blocks %d..%d", from, skipped))
		from = skipped + 1
	}

	blocks, err := w.client.FetchBlocksInRange(ctx, entity.BlockHeight(from), entity.BlockHeight(to), w.cfg.Concurrency)
	if err != nil {
		return fmt.Errorf("could not backfill blocks %d..%d: %w", from, to, err)
	}

	w.log.Info(fmt.Sprintf("backfilling %d blocks in %d..%d", len(blocks), from, to))
	for i := range blocks {
		if publishErr := w.Publish(ctx, &blocks[i]); publishErr != nil {
			return publishErr
		}
	}
	return nil
}

// Publish sends the block with the chunks it includes for the first time.
// Chunks carried over from earlier blocks or already published are skipped.
func (w *Feeder) Publish(ctx context.Context, block *entity.RpcBlockResponse) error {
	chunks, err := w.fetchNewChunks(ctx, block)
	if err != nil {
		return err
	}

	blockDto := NewBlockDto(block, chunks)
	payload, marshalErr := blockDto.MarshalBinary()
	if marshalErr != nil {
		return fmt.Errorf("could not marshal blockDto %d: %w", blockDto.Height, marshalErr)
	}

	cPayload, compressErr := compress(payload)
	if compressErr != nil {
		return fmt.Errorf("could not compress blockDto %d by zstd: %w", blockDto.Height, compressErr)
	}

	payloadSize := slog.String("payloadSize", fmt.Sprintf(`%.6f mb`, float64(len(payload))/(1024*1024)))
	cPayloadSize := slog.String("cPayloadSize", fmt.Sprintf(`%.6f mb`, float64(len(cPayload))/(1024*1024)))

	ack, publishErr := w.js.PublishAsync(w.cfg.Topic, cPayload,
		jetstream.WithMsgID(string(blockDto.Hash)),
		//nolint
		jetstream.WithRetryAttempts(5),
		//nolint
		jetstream.WithRetryWait(250*time.Millisecond),
	)
	if publishErr != nil {
		w.log.Error(fmt.Sprintf("could not publish block %d to JetStream", blockDto.Height), payloadSize)
		return fmt.Errorf("could not publish block %d: %w", blockDto.Height, publishErr)
	}

	// the checkpoint and the chunk cache move only once the stream stored the block
	if ackErr := waitAck(ctx, ack); ackErr != nil {
		w.log.Error(fmt.Sprintf("block %d was not acknowledged by JetStream", blockDto.Height), payloadSize)
		return fmt.Errorf("could not publish block %d: %w", blockDto.Height, ackErr)
	}

	for _, chunk := range blockDto.Chunks {
		w.chunks.Add(chunk.ChunkHash, struct{}{})
	}
	w.checkpoint.Store(ctx, uint64(blockDto.Height))

	w.log.Info(fmt.Sprintf(`%d, %s`, blockDto.Height, blockDto.Hash), payloadSize, cPayloadSize,
		slog.Int("chunks", len(blockDto.Chunks)),
	)
	w.metricsStore.PublishedBlocks.With(prometheus.Labels{metrics.Status: metrics.StatusOk}).Inc()
	w.metricsStore.PublishedHeight.Set(float64(blockDto.Height))

	return nil
}

func (w *Feeder) fetchNewChunks(ctx context.Context, block *entity.RpcBlockResponse) ([]*entity.RpcChunkResponse, error) {
	var hashes []entity.CryptoHash
	for _, header := range block.Chunks {
		if header.HeightIncluded != block.Header.Height || w.chunks.Contains(header.ChunkHash) {
			w.metricsStore.SkippedChunks.Inc()
			continue
		}
		hashes = append(hashes, header.ChunkHash)
	}

	chunks := make([]*entity.RpcChunkResponse, len(hashes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(w.cfg.Concurrency, 1))
	for i, hash := range hashes {
		g.Go(func() error {
			chunk, err := w.client.Chunk(gCtx, entity.ChunkByHash(hash))
			if err != nil {
				return fmt.Errorf("could not fetch chunk %s of block %d: %w", hash, block.Header.Height, err)
			}
			chunks[i] = chunk
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return chunks, nil
}

var ErrAckTimeout = errors.New("timed out waiting for publish ack")

const ackTimeout = 10 * time.Second

func waitAck(ctx context.Context, ack jetstream.PubAckFuture) error {
	timer := time.NewTimer(ackTimeout)
	defer timer.Stop()

	select {
	case <-ack.Ok():
		return nil
	case err := <-ack.Err():
		return err
	case <-timer.C:
		return ErrAckTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

func compress(payload []byte) ([]byte, error) {
	cPayload := &bytes.Buffer{}
	zstdWriter, err := zstd.NewWriter(cPayload)
	if err != nil {
		return nil, err
	}

	if _, zstdErr := zstdWriter.Write(payload); zstdErr != nil {
		zstdWriter.Close()
		return nil, zstdErr
	}
	if closeErr := zstdWriter.Close(); closeErr != nil {
		return nil, closeErr
	}

	return cPayload.Bytes(), nil
}

// Decode reverses what Publish sends: a zstd frame holding a BlockDto.
func Decode(data []byte) (*BlockDto, error) {
	zstdReader, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer zstdReader.Close()

	payload, err := zstdReader.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("could not decompress block: %w", err)
	}

	block := new(BlockDto)
	if err := block.UnmarshalBinary(payload); err != nil {
		return nil, fmt.Errorf("could not unmarshal block: %w", err)
	}
	return block, nil
}
