package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lidofinance/near-jsonrpc/internal/app/consumer"
	"github.com/lidofinance/near-jsonrpc/internal/app/feeder"
	"github.com/lidofinance/near-jsonrpc/internal/connectors/metrics"
	"github.com/lidofinance/near-jsonrpc/internal/connectors/nats"
	"github.com/lidofinance/near-jsonrpc/internal/env"
)

type watchOptions struct {
	natsURL   string
	stream    string
	topic     string
	durable   string
	fromStart bool
	limit     uint64
	verbose   bool
}

func watchCmd(opts *options) *cobra.Command {
	var w watchOptions

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print blocks published by the feeder as they arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log := slog.New(slog.NewTextHandler(io.Discard, nil))
			if w.verbose {
				log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			natsClient, err := nats.New(&env.AppConfig{Name: "nearrpc", NatsDefaultURL: w.natsURL}, log)
			if err != nil {
				return fmt.Errorf("could not connect to nats: %w", err)
			}
			defer natsClient.Close()

			js, err := jetstream.New(natsClient)
			if err != nil {
				return fmt.Errorf("could not connect to jetstream: %w", err)
			}

			stream, err := js.Stream(ctx, w.stream)
			if err != nil {
				return fmt.Errorf("could not find stream %s: %w", w.stream, err)
			}

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			metricsStore := metrics.New(prometheus.NewRegistry(), "nearrpc", "nearrpc", "")
			g, gCtx := errgroup.WithContext(ctx)

			handler := newPrintHandler(opts, cmd, w.limit, cancel)
			c := consumer.New(log, metricsStore, consumer.Config{
				Name:      w.durable,
				Subject:   w.topic,
				FromStart: w.fromStart,
			}, handler)

			if err := c.Run(gCtx, g, stream); err != nil {
				return err
			}
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&w.natsURL, "nats", "nats://localhost:4222", "nats server url")
	cmd.Flags().StringVar(&w.stream, "stream", "NEAR", "jetstream stream with blocks")
	cmd.Flags().StringVar(&w.topic, "topic", "near.blocks", "subject blocks are published to")
	cmd.Flags().StringVar(&w.durable, "durable", "", "name of a durable consumer, empty for an ephemeral one")
	cmd.Flags().BoolVar(&w.fromStart, "from-start", false, "read the whole stream instead of new blocks only")
	cmd.Flags().Uint64Var(&w.limit, "limit", 0, "stop after this many blocks, 0 for no limit")
	cmd.Flags().BoolVar(&w.verbose, "verbose", false, "log consumer events to stderr")
	return cmd
}

// newPrintHandler prints every block and calls done once limit blocks were
// printed.
func newPrintHandler(opts *options, cmd *cobra.Command, limit uint64, done context.CancelFunc) consumer.Handler {
	var printed atomic.Uint64
	return func(_ context.Context, block *feeder.BlockDto) error {
		if err := opts.print(cmd, block); err != nil {
			return err
		}
		if n := printed.Add(1); limit > 0 && n >= limit {
			done()
		}
		return nil
	}
}
