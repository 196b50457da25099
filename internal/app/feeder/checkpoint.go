package feeder

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lidofinance/near-jsonrpc/internal/connectors/metrics"
)

// CheckpointStore persists the height of the last published block.
type CheckpointStore interface {
	Load(ctx context.Context) (uint64, bool, error)
	Store(ctx context.Context, height uint64) error
}

// checkpoint keeps the last published height in memory and mirrors it to
// the store. When the store fails the in-memory value is used.
type checkpoint struct {
	store   CheckpointStore
	log     *slog.Logger
	metrics *metrics.Store

	mu     sync.Mutex
	height uint64
	known  bool
}

func newCheckpoint(store CheckpointStore, log *slog.Logger, metricsStore *metrics.Store) *checkpoint {
	return &checkpoint{store: store, log: log, metrics: metricsStore}
}

func (c *checkpoint) Load(ctx context.Context) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		return c.height, c.known
	}

	height, ok, err := c.store.Load(ctx)
	if err != nil {
		c.metrics.RedisErrors.Inc()
		c.log.Warn("could not load checkpoint, using the in-memory one", slog.Any("error", err))
		return c.height, c.known
	}
	if ok && (!c.known || height > c.height) {
		c.height, c.known = height, true
	}
	return c.height, c.known
}

func (c *checkpoint) Store(ctx context.Context, height uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.known || height > c.height {
		c.height, c.known = height, true
	}

	if c.store == nil {
		return
	}
	if err := c.store.Store(ctx, height); err != nil {
		c.metrics.RedisErrors.Inc()
		c.log.Warn("could not store checkpoint", slog.Uint64("height", height), slog.Any("error", err))
	}
}
