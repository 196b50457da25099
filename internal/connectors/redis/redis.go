package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	writeClientOnce sync.Once
	writeClient     *redis.Client
)

func NewRedisClient(addr string, db int, log *slog.Logger, poolSize int) (*redis.Client, error) {
	var err error

	writeClientOnce.Do(func() {
		writeClient = redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,

			MaxRetries:      5,
			MinRetryBackoff: 50 * time.Millisecond,
			MaxRetryBackoff: 500 * time.Millisecond,

			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,

			PoolSize:     poolSize,
			MinIdleConns: poolSize / 10,
			PoolTimeout:  1500 * time.Millisecond,

			ConnMaxIdleTime: 5 * time.Minute,

			OnConnect: func(_ context.Context, _ *redis.Conn) error {
				log.Info("redis(write): connected")
				return nil
			},
		})
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if pingErr := writeClient.Ping(pingCtx).Err(); pingErr != nil {
		err = pingErr
	}
	return writeClient, err
}

// Checkpoint remembers the last block height handed to the stream.
type Checkpoint struct {
	client *redis.Client
	key    string
}

func NewCheckpoint(client *redis.Client, key string) *Checkpoint {
	return &Checkpoint{client: client, key: key}
}

// Load returns 0 and false when nothing was stored yet.
func (c *Checkpoint) Load(ctx context.Context) (uint64, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("could not read checkpoint %s: %w", c.key, err)
	}

	height, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("broken checkpoint %s=%q: %w", c.key, raw, err)
	}
	return height, true, nil
}

// Store keeps the highest height ever stored.
func (c *Checkpoint) Store(ctx context.Context, height uint64) error {
	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, getErr := tx.Get(ctx, c.key).Uint64()
		if getErr != nil && !errors.Is(getErr, redis.Nil) {
			return getErr
		}
		if current >= height {
			return nil
		}

		_, pipeErr := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.key, height, 0)
			return nil
		})
		return pipeErr
	}, c.key)
	if err != nil {
		return fmt.Errorf("could not store checkpoint %s: %w", c.key, err)
	}
	return nil
}
