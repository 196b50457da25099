package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/lidofinance/near-jsonrpc/internal/connectors/metrics"
	"github.com/lidofinance/near-jsonrpc/internal/env"
)

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("../../pkg/near/testdata/" + name + ".json")
	require.NoError(t, err)
	return data
}

func newTestApp(t *testing.T) *httptest.Server {
	t.Helper()

	replies := map[string][]byte{
		"health": fixture(t, "JsonRpcResponseForNullableRpcHealthResponseAndRpcError_Success"),
		"status": fixture(t, "JsonRpcResponseForRpcStatusResponseAndRpcError_Success"),
	}
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		reply, ok := replies[gjson.GetBytes(body, "method").String()]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(reply)
	}))
	t.Cleanup(node.Close)

	cfg := &env.AppConfig{
		Name:              "near-feeder",
		NearRpcURL:        node.URL,
		RpcTimeout:        time.Second,
		RpcMaxAttempts:    1,
		FeederConcurrency: 2,
		ChunkCacheSize:    64,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	metricsStore := metrics.New(prometheus.NewRegistry(), "test", cfg.Name, "test")

	services, err := NewServices(cfg, log, metricsStore)
	require.NoError(t, err)

	r := chi.NewRouter()
	New(cfg, log, metricsStore, services).RegisterInfraRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestInfraRoutes(t *testing.T) {
	srv := newTestApp(t)

	code, body := get(t, srv.URL+"/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", body)

	code, body = get(t, srv.URL+"/status")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, gjson.Get(body, "chain_id").Exists(), body)

	code, body = get(t, srv.URL+"/methods")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "EXPERIMENTAL_changes")

	code, body = get(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `test_rpc_requests_total{method="health",status="Ok"} 1`)

	code, _ = get(t, srv.URL+"/debug/pprof/")
	assert.Equal(t, http.StatusOK, code)
}

func TestRunHTTPServer_Shutdown(t *testing.T) {
	cfg := &env.AppConfig{NearRpcURL: "http://localhost:3030", RpcTimeout: time.Second, RpcMaxAttempts: 1}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	metricsStore := metrics.New(prometheus.NewRegistry(), "test", "near-feeder", "test")
	services, err := NewServices(cfg, log, metricsStore)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	g, gCtx := errgroup.WithContext(ctx)

	New(cfg, log, metricsStore, services).RunHTTPServer(gCtx, g, 0, chi.NewRouter())
	cancel()

	assert.NoError(t, g.Wait())
}
