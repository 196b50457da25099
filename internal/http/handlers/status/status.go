package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-openapi/swag"

	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
)

type StatusGetter interface {
	Status(ctx context.Context) (*entity.RpcStatusResponse, error)
}

type handler struct {
	node    StatusGetter
	timeout time.Duration
}

func New(node StatusGetter, timeout time.Duration) *handler {
	return &handler{
		node:    node,
		timeout: timeout,
	}
}

// Handler proxies the node status as JSON.
func (h *handler) Handler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	status, err := h.node.Status(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	body, err := swag.WriteJSON(status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}
