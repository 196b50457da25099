package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"

	"github.com/lidofinance/near-jsonrpc/internal/env"
)

const LocalEnv = `local`

func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func handler(cfg *env.AppConfig, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}
	if cfg.LogFormat == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// New builds the process logger. Outside of the local environment errors are
// also sent to Sentry.
func New(cfg *env.AppConfig) (*slog.Logger, *sentry.Client, error) {
	slogHandler := handler(cfg, os.Stdout)

	if cfg.Env == LocalEnv || cfg.SentryDSN == "" {
		return slog.New(slogHandler), nil, nil
	}

	hub := sentry.CurrentHub()
	client, sentryErr := sentry.NewClient(sentry.ClientOptions{
		Dsn:           cfg.SentryDSN,
		EnableTracing: false,
		Environment:   cfg.Env,
		ServerName:    cfg.Source,
	})
	if sentryErr != nil {
		return nil, nil, sentryErr
	}
	hub.BindClient(client)

	return slog.New(
		slogmulti.Fanout(
			slogHandler,
			slogsentry.Option{
				Level: slog.LevelError,
				Hub:   hub,
			}.NewSentryHandler(),
		),
	), client, nil
}

// NewWithWriter is New without Sentry, writing to w.
func NewWithWriter(cfg *env.AppConfig, w io.Writer) *slog.Logger {
	return slog.New(handler(cfg, w))
}
