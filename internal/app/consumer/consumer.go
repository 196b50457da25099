package consumer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/lidofinance/near-jsonrpc/internal/app/feeder"
	"github.com/lidofinance/near-jsonrpc/internal/connectors/metrics"
	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
)

// Handler receives every block read from the stream once. A returned error
// makes the stream redeliver the block.
type Handler func(ctx context.Context, block *feeder.BlockDto) error

type Config struct {
	// Name of a durable consumer. An empty name creates an ephemeral one.
	Name      string
	Subject   string
	FromStart bool
}

type Consumer struct {
	log     *slog.Logger
	metrics *metrics.Store
	cache   *expirable.LRU[entity.CryptoHash, struct{}]
	formats strfmt.Registry

	cfg     Config
	handler Handler
}

const (
	LruSize = 1024
	lruTTL  = 10 * time.Minute
)

func New(log *slog.Logger, metricsStore *metrics.Store, cfg Config, handler Handler) *Consumer {
	return &Consumer{
		log:     log,
		metrics: metricsStore,
		cache:   expirable.NewLRU[entity.CryptoHash, struct{}](LruSize, nil, lruTTL),
		formats: entity.Formats,
		cfg:     cfg,
		handler: handler,
	}
}

func (c *Consumer) GetName() string {
	if c.cfg.Name == "" {
		return "ephemeral"
	}
	return c.cfg.Name
}

func (c *Consumer) GetTopic() string {
	return c.cfg.Subject
}

// Run attaches to the stream and consumes blocks until ctx is done.
func (c *Consumer) Run(ctx context.Context, g *errgroup.Group, stream jetstream.Stream) error {
	deliver := jetstream.DeliverNewPolicy
	if c.cfg.FromStart {
		deliver = jetstream.DeliverAllPolicy
	}

	con, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:           c.cfg.Name,
		AckPolicy:         jetstream.AckExplicitPolicy,
		MaxAckPending:     1,
		FilterSubjects:    []string{c.cfg.Subject},
		DeliverPolicy:     deliver,
		MaxDeliver:        10,
		InactiveThreshold: 2 * time.Hour,
	})
	if err != nil {
		return fmt.Errorf("could not create consumer %s: %w", c.GetName(), err)
	}

	c.log.Info(fmt.Sprintf(`%s listens up %s`, c.GetName(), c.GetTopic()))

	conCtx, consumeErr := con.Consume(c.GetConsumeHandler(ctx))
	if consumeErr != nil {
		return consumeErr
	}

	g.Go(func() error {
		<-ctx.Done()
		conCtx.Stop()
		return nil
	})
	return nil
}

func (c *Consumer) GetConsumeHandler(ctx context.Context) func(msg jetstream.Msg) {
	return func(msg jetstream.Msg) {
		block, err := feeder.Decode(msg.Data())
		if err != nil {
			c.log.Error(fmt.Sprintf(`Broken message: %v`, err))
			c.observe(metrics.StatusFail)
			c.terminateMessage(msg)
			return
		}

		if validateErr := block.Validate(c.formats); validateErr != nil {
			c.log.Error(fmt.Sprintf(`Invalid block %d: %v`, block.Height, validateErr))
			c.observe(metrics.StatusFail)
			c.terminateMessage(msg)
			return
		}

		if c.cache.Contains(block.Hash) {
			c.log.Debug(fmt.Sprintf("%s: block %d already handled", c.GetName(), block.Height))
			c.ackMessage(msg)
			return
		}

		if handleErr := c.handler(ctx, block); handleErr != nil {
			c.log.Error(fmt.Sprintf(`Could not handle block %d: %v`, block.Height, handleErr),
				slog.String("hash", string(block.Hash)),
			)
			c.observe(metrics.StatusFail)
			c.nackMessage(msg)
			return
		}

		c.cache.Add(block.Hash, struct{}{})
		c.observe(metrics.StatusOk)
		c.ackMessage(msg)

		c.log.Debug(fmt.Sprintf("%s: %d, %s", c.GetName(), block.Height, block.Hash),
			slog.Int("chunks", len(block.Chunks)),
		)
	}
}

func (c *Consumer) observe(status string) {
	c.metrics.ConsumedBlocks.With(prometheus.Labels{metrics.ConsumerName: c.GetName(), metrics.Status: status}).Inc()
}

func (c *Consumer) terminateMessage(msg jetstream.Msg) {
	if termErr := msg.Term(); termErr != nil {
		c.log.Error(fmt.Sprintf(`Could not term msg: %v`, termErr))
	}
}

func (c *Consumer) nackMessage(msg jetstream.Msg) {
	if nackErr := msg.Nak(); nackErr != nil {
		c.log.Error(fmt.Sprintf(`Could not nack msg: %v`, nackErr))
	}
}

func (c *Consumer) ackMessage(msg jetstream.Msg) {
	if ackErr := msg.Ack(); ackErr != nil {
		c.log.Error(fmt.Sprintf(`Could not ack msg: %v`, ackErr))
	}
}
