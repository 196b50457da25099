package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/lidofinance/near-jsonrpc/internal/app/feeder"
	"github.com/lidofinance/near-jsonrpc/internal/app/server"
	"github.com/lidofinance/near-jsonrpc/internal/connectors/logger"
	"github.com/lidofinance/near-jsonrpc/internal/connectors/metrics"
	nc "github.com/lidofinance/near-jsonrpc/internal/connectors/nats"
	"github.com/lidofinance/near-jsonrpc/internal/connectors/redis"
	"github.com/lidofinance/near-jsonrpc/internal/env"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	g, gCtx := errgroup.WithContext(ctx)

	cfg, envErr := env.Read("")
	if envErr != nil {
		fmt.Println("Read env error:", envErr.Error())
		return
	}

	log, sentryClient, logErr := logger.New(&cfg.AppConfig)
	if logErr != nil {
		fmt.Println("Logger error:", logErr.Error())
		return
	}
	if sentryClient != nil {
		defer sentryClient.Flush(2 * time.Second)
	}

	natsClient, natsErr := nc.New(&cfg.AppConfig, log)
	if natsErr != nil {
		log.Error(fmt.Sprintf(`Could not connect to nats error: %v`, natsErr))
		return
	}
	defer natsClient.Close()
	log.Info("Nats connected")

	js, jetStreamErr := jetstream.New(natsClient)
	if jetStreamErr != nil {
		log.Error(fmt.Sprintf(`Could not connect to jetStream error: %v`, jetStreamErr))
		return
	}

	if _, streamErr := nc.EnsureBlockStream(ctx, js, cfg.AppConfig.NatsStreamName, cfg.AppConfig.BlockTopic); streamErr != nil {
		log.Error(streamErr.Error())
		return
	}
	log.Info("Nats jetStream connected")

	metricsStore := metrics.New(prometheus.NewRegistry(), cfg.AppConfig.MetricsPrefix, cfg.AppConfig.Name, cfg.AppConfig.Env)

	services, servicesErr := server.NewServices(&cfg.AppConfig, log, metricsStore)
	if servicesErr != nil {
		log.Error(fmt.Sprintf(`Could not create near client: %v`, servicesErr))
		return
	}

	var checkpoints feeder.CheckpointStore
	if cfg.AppConfig.RedisURL != "" {
		redisClient, redisErr := redis.NewRedisClient(cfg.AppConfig.RedisURL, cfg.AppConfig.RedisDB, log, cfg.AppConfig.RedisPoolSize)
		if redisErr != nil {
			log.Warn("Redis is not available, the checkpoint is kept in memory", slog.Any("error", redisErr))
			metricsStore.RedisErrors.Inc()
		} else {
			defer redisClient.Close()
			checkpoints = redis.NewCheckpoint(redisClient, fmt.Sprintf(`%s:%s:checkpoint`, cfg.AppConfig.Name, cfg.AppConfig.BlockTopic))
		}
	}

	app := server.New(&cfg.AppConfig, log, metricsStore, services)
	app.Metrics.BuildInfo.Inc()

	feederWrk := feeder.New(log, services.Node, js, checkpoints, metricsStore, feeder.Config{
		Topic:          cfg.AppConfig.BlockTopic,
		PollInterval:   cfg.AppConfig.PollInterval,
		Concurrency:    cfg.AppConfig.FeederConcurrency,
		BackfillLimit:  cfg.AppConfig.BackfillLimit,
		ChunkCacheSize: cfg.AppConfig.ChunkCacheSize,
	})
	feederWrk.Run(gCtx, g)

	r := chi.NewRouter()
	app.RegisterInfraRoutes(r)
	app.RunHTTPServer(gCtx, g, cfg.AppConfig.Port, r)

	log.Info(fmt.Sprintf(`Started %s feeder for %s`, cfg.AppConfig.Name, cfg.AppConfig.NearRpcURL))

	if err := g.Wait(); err != nil {
		log.Error(err.Error())
	}

	fmt.Println(`Main done`)
}
