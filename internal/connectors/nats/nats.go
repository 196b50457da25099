package nats

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/lidofinance/near-jsonrpc/internal/env"
)

var (
	natsClient        *nats.Conn
	onceDefaultClient sync.Once
)

func New(cfg *env.AppConfig, log *slog.Logger) (*nats.Conn, error) {
	var err error

	onceDefaultClient.Do(func() {
		natsClient, err = nats.Connect(cfg.NatsDefaultURL,
			nats.Name(cfg.Name),
			nats.ReconnectWait(2*time.Second),
			nats.MaxReconnects(-1),
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				log.Warn("Nats client got disconnected", slog.Any("error", err))
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				log.Info(fmt.Sprintf("Nats client got reconnected to %v", nc.ConnectedUrl()))
			}),
			nats.ClosedHandler(func(_ *nats.Conn) {
				log.Info("Nats connection closed")
			}))
	})

	return natsClient, err
}

const blockRetention = 24 * time.Hour

// EnsureBlockStream creates the stream that keeps published blocks, or
// updates it when it already exists.
func EnsureBlockStream(ctx context.Context, js jetstream.JetStream, name, topic string) (jetstream.Stream, error) {
	stream, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        name,
		Description: "NEAR blocks with their chunks",
		Subjects:    []string{topic},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      blockRetention,
		Storage:     jetstream.FileStorage,
		Compression: jetstream.S2Compression,
		Duplicates:  10 * time.Minute,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create stream %s: %w", name, err)
	}
	return stream, nil
}
