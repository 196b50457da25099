package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lidofinance/near-jsonrpc/internal/connectors/metrics"
	"github.com/lidofinance/near-jsonrpc/internal/env"
	"github.com/lidofinance/near-jsonrpc/internal/pkg/near"
)

const blockCacheTTL = 10 * time.Minute

type Services struct {
	Node *near.Client
}

func NewServices(cfg *env.AppConfig, log *slog.Logger, metricsStore *metrics.Store) (*Services, error) {
	transport := &http.Transport{
		MaxIdleConns:          30,
		MaxIdleConnsPerHost:   max(5, cfg.FeederConcurrency),
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   cfg.RpcTimeout,
	}

	node, err := near.New(cfg.NearRpcURL,
		near.WithHTTPClient(httpClient),
		near.WithMetrics(metricsStore),
		near.WithLogger(log),
		near.WithRetry(cfg.RpcMaxAttempts, near.RetryDelay, near.MaxDelay),
		near.WithRateLimit(cfg.RpcRateLimit, cfg.RpcBurst),
		near.WithBlockCache(cfg.ChunkCacheSize/4, blockCacheTTL),
	)
	if err != nil {
		return nil, err
	}

	return &Services{
		Node: node,
	}, nil
}
