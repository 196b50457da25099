package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type Checker interface {
	Health(ctx context.Context) error
}

type handler struct {
	log     *slog.Logger
	node    Checker
	timeout time.Duration
}

func New(log *slog.Logger, node Checker, timeout time.Duration) *handler {
	return &handler{
		log:     log,
		node:    node,
		timeout: timeout,
	}
}

// Handler answers 200 when the node reports itself healthy and 503 otherwise.
func (h *handler) Handler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.node.Health(ctx); err != nil {
		h.log.Warn("node is unhealthy", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	_, _ = w.Write([]byte("OK"))
}
