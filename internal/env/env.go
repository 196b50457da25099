package env

import (
	"errors"
	"io/fs"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppConfig AppConfig
}

type AppConfig struct {
	Name          string
	Env           string
	Port          uint
	LogFormat     string
	LogLevel      string
	SentryDSN     string
	Source        string
	MetricsPrefix string

	NearRpcURL     string
	RpcTimeout     time.Duration
	RpcMaxAttempts uint
	RpcRateLimit   float64
	RpcBurst       int

	NatsDefaultURL string
	NatsStreamName string
	BlockTopic     string

	RedisURL      string
	RedisDB       int
	RedisPoolSize int

	PollInterval      time.Duration
	FeederConcurrency int
	ChunkCacheSize    int
	BackfillLimit     uint64
}

var (
	cfg Config

	onceDefaultClient sync.Once
)

func setDefaults() {
	viper.SetDefault("APP_NAME", "near-feeder")
	viper.SetDefault("ENV", "local")
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("LOG_FORMAT", "simple")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("METRICS_PREFIX", "near_feeder")
	viper.SetDefault("NEAR_RPC_URL", "https://rpc.mainnet.near.org")
	viper.SetDefault("RPC_TIMEOUT", 10*time.Second)
	viper.SetDefault("RPC_MAX_ATTEMPTS", 6)
	viper.SetDefault("RPC_RATE_LIMIT", 0)
	viper.SetDefault("RPC_BURST", 10)
	viper.SetDefault("NATS_DEFAULT_URL", "nats://localhost:4222")
	viper.SetDefault("NATS_STREAM_NAME", "NEAR")
	viper.SetDefault("BLOCK_TOPIC", "near.blocks")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_POOL_SIZE", 10)
	viper.SetDefault("POLL_INTERVAL", time.Second)
	viper.SetDefault("FEEDER_CONCURRENCY", 4)
	viper.SetDefault("CHUNK_CACHE_SIZE", 4096)
	viper.SetDefault("BACKFILL_LIMIT", 100)
}

func Read(configPath string) (*Config, error) {
	var err error

	onceDefaultClient.Do(func() {
		viper.SetConfigType("env")

		if len(configPath) != 0 {
			viper.SetConfigFile(configPath)
		} else {
			viper.AddConfigPath(".")
			viper.SetConfigFile(".env")
		}

		setDefaults()
		viper.AutomaticEnv()
		if viperErr := viper.ReadInConfig(); viperErr != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(viperErr, &notFound) && !isMissingFile(viperErr) {
				err = viperErr
				return
			}
		}

		cfg = Config{
			AppConfig: AppConfig{
				Name:          viper.GetString("APP_NAME"),
				Env:           viper.GetString("ENV"),
				Port:          viper.GetUint("PORT"),
				LogFormat:     viper.GetString("LOG_FORMAT"),
				LogLevel:      viper.GetString("LOG_LEVEL"),
				SentryDSN:     viper.GetString("SENTRY_DSN"),
				Source:        viper.GetString("SOURCE"),
				MetricsPrefix: viper.GetString("METRICS_PREFIX"),

				NearRpcURL:     viper.GetString("NEAR_RPC_URL"),
				RpcTimeout:     viper.GetDuration("RPC_TIMEOUT"),
				RpcMaxAttempts: viper.GetUint("RPC_MAX_ATTEMPTS"),
				RpcRateLimit:   viper.GetFloat64("RPC_RATE_LIMIT"),
				RpcBurst:       viper.GetInt("RPC_BURST"),

				NatsDefaultURL: viper.GetString("NATS_DEFAULT_URL"),
				NatsStreamName: viper.GetString("NATS_STREAM_NAME"),
				BlockTopic:     viper.GetString("BLOCK_TOPIC"),

				RedisURL:      viper.GetString("REDIS_URL"),
				RedisDB:       viper.GetInt("REDIS_DB"),
				RedisPoolSize: viper.GetInt("REDIS_POOL_SIZE"),

				PollInterval:      viper.GetDuration("POLL_INTERVAL"),
				FeederConcurrency: viper.GetInt("FEEDER_CONCURRENCY"),
				ChunkCacheSize:    viper.GetInt("CHUNK_CACHE_SIZE"),
				BackfillLimit:     viper.GetUint64("BACKFILL_LIMIT"),
			},
		}
	})

	return &cfg, err
}

func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
