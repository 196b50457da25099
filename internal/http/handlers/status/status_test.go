package status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tidwall/gjson"

	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
)

type getterFunc func(ctx context.Context) (*entity.RpcStatusResponse, error)

func (f getterFunc) Status(ctx context.Context) (*entity.RpcStatusResponse, error) { return f(ctx) }

func TestHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h := New(getterFunc(func(context.Context) (*entity.RpcStatusResponse, error) {
			return &entity.RpcStatusResponse{ChainID: "mainnet"}, nil
		}), time.Second)

		rec := httptest.NewRecorder()
		h.Handler(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d", rec.Code)
		}
		if got := gjson.Get(rec.Body.String(), "chain_id").String(); got != "mainnet" {
			t.Errorf("chain_id = %q", got)
		}
	})

	t.Run("node error", func(t *testing.T) {
		h := New(getterFunc(func(context.Context) (*entity.RpcStatusResponse, error) {
			return nil, errors.New("connection refused")
		}), time.Second)

		rec := httptest.NewRecorder()
		h.Handler(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

		if rec.Code != http.StatusBadGateway {
			t.Errorf("code = %d, want %d", rec.Code, http.StatusBadGateway)
		}
	})
}
