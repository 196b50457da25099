package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lidofinance/near-jsonrpc/internal/connectors/metrics"
	"github.com/lidofinance/near-jsonrpc/internal/env"
	"github.com/lidofinance/near-jsonrpc/internal/http/handlers/health"
	"github.com/lidofinance/near-jsonrpc/internal/http/handlers/methods"
	"github.com/lidofinance/near-jsonrpc/internal/http/handlers/status"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	shutdownTimeout     = 5 * time.Second
)

type App struct {
	env      *env.AppConfig
	Logger   *slog.Logger
	Metrics  *metrics.Store
	Services *Services
}

func New(config *env.AppConfig, logger *slog.Logger, promStore *metrics.Store, services *Services) *App {
	return &App{
		env:      config,
		Logger:   logger,
		Metrics:  promStore,
		Services: services,
	}
}

func (a *App) RunHTTPServer(ctx context.Context, g *errgroup.Group, appPort uint, router http.Handler) {
	server := &http.Server{
		Addr:           fmt.Sprintf(`:%d`, appPort),
		Handler:        router,
		ReadTimeout:    defaultReadTimeout,
		WriteTimeout:   defaultWriteTimeout,
		IdleTimeout:    defaultIdleTimeout,
		MaxHeaderBytes: http.DefaultMaxHeaderBytes,
	}

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
}

func (a *App) RegisterInfraRoutes(r chi.Router) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", health.New(a.Logger, a.Services.Node, a.env.RpcTimeout).Handler)
	r.Get("/status", status.New(a.Services.Node, a.env.RpcTimeout).Handler)
	r.Get("/methods", methods.New(a.Services.Node.URL()).Handler)
	r.Get("/metrics", promhttp.HandlerFor(a.Metrics.Prometheus, promhttp.HandlerOpts{Registry: a.Metrics.Prometheus}).ServeHTTP)

	r.HandleFunc("/debug/pprof/", pprof.Index)
	r.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	r.HandleFunc("/debug/pprof/profile", pprof.Profile)
	r.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	r.HandleFunc("/debug/pprof/trace", pprof.Trace)
	r.HandleFunc("/debug/pprof/{action}", pprof.Index)
}
