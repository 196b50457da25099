package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "APP_NAME=near-feeder-test\n" +
		"PORT=9090\n" +
		"NEAR_RPC_URL=http://localhost:3030\n" +
		"RPC_TIMEOUT=3s\n" +
		"FEEDER_CONCURRENCY=8\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"from file", cfg.AppConfig.Name, "near-feeder-test"},
		{"uint from file", cfg.AppConfig.Port, uint(9090)},
		{"url from file", cfg.AppConfig.NearRpcURL, "http://localhost:3030"},
		{"duration from file", cfg.AppConfig.RpcTimeout, 3 * time.Second},
		{"int from file", cfg.AppConfig.FeederConcurrency, 8},
		{"from environment", cfg.AppConfig.LogLevel, "DEBUG"},
		{"default", cfg.AppConfig.BlockTopic, "near.blocks"},
		{"default duration", cfg.AppConfig.PollInterval, time.Second},
		{"default attempts", cfg.AppConfig.RpcMaxAttempts, uint(6)},
		{"rate limit off by default", cfg.AppConfig.RpcRateLimit, float64(0)},
		{"default burst", cfg.AppConfig.RpcBurst, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	again, err := Read("")
	if err != nil || again != cfg {
		t.Errorf("second Read() = %p, %v; want the same config", again, err)
	}
}
