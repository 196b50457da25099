package metrics

import (
	"fmt"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Store struct {
	Prometheus       *prometheus.Registry
	BuildInfo        prometheus.Counter
	PublishedBlocks  *prometheus.CounterVec
	PublishedHeight  prometheus.Gauge
	SkippedChunks    prometheus.Counter
	RedisErrors      prometheus.Counter
	RpcRequests      *prometheus.CounterVec
	RpcCacheHits     prometheus.Counter
	SummaryHandlers  *prometheus.HistogramVec
	DeprecatedCalled *prometheus.CounterVec
	ConsumedBlocks   *prometheus.CounterVec
}

const Status = `status`
const Method = `method`
const ConsumerName = `consumer_name`

const StatusOk = `Ok`
const StatusFail = `Fail`

var Commit string

func New(promRegistry *prometheus.Registry, prefix, appName, env string) *Store {
	factory := promauto.With(promRegistry)

	return &Store{
		Prometheus: promRegistry,
		BuildInfo: factory.NewCounter(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_metric_build_info", prefix),
			Help: "Build information",
			ConstLabels: prometheus.Labels{
				"name":    appName,
				"env":     env,
				"commit":  Commit,
				"version": runtime.Version(),
			},
		}),
		PublishedBlocks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_blocks_published_total", prefix),
			Help: "The total number of published blocks",
		}, []string{Status}),
		PublishedHeight: factory.NewGauge(prometheus.GaugeOpts{
			Name: fmt.Sprintf("%s_published_block_height", prefix),
			Help: "Height of the last published block",
		}),
		SkippedChunks: factory.NewCounter(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_chunks_skipped_total", prefix),
			Help: "The total number of chunks already published with an earlier block",
		}),
		RedisErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_redis_error_total", prefix),
			Help: "The total number of redis errors",
		}),
		RpcRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_rpc_requests_total", prefix),
			Help: "The total number of JSON-RPC calls to the node",
		}, []string{Method, Status}),
		RpcCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_rpc_cache_hits_total", prefix),
			Help: "The total number of blocks served from the client cache",
		}),
		SummaryHandlers: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    fmt.Sprintf("%s_request_processing_seconds", prefix),
			Help:    "Time spent processing a JSON-RPC call to the node",
			Buckets: prometheus.DefBuckets,
		}, []string{Method}),
		DeprecatedCalled: factory.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_rpc_deprecated_calls_total", prefix),
			Help: "The total number of calls to deprecated JSON-RPC methods",
		}, []string{Method}),
		ConsumedBlocks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_blocks_consumed_total", prefix),
			Help: "The total number of blocks read back from the stream",
		}, []string{ConsumerName, Status}),
	}
}
