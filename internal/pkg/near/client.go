package near

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/lidofinance/near-jsonrpc/internal/connectors/metrics"
	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
	"github.com/lidofinance/near-jsonrpc/internal/utils/registry"
)

const MaxAttempts = 6
const RetryDelay = 75 * time.Millisecond
const MaxDelay = 5 * time.Second

const maxErrorBody = 512

type Client struct {
	rpcURL     string
	httpClient *http.Client
	metrics    *metrics.Store
	log        *slog.Logger
	formats    strfmt.Registry

	attempts uint
	delay    time.Duration
	maxDelay time.Duration
	limiter  *rate.Limiter

	blocks     *expirable.LRU[entity.CryptoHash, entity.RpcBlockResponse]
	deprecated sync.Map
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithMetrics(store *metrics.Store) Option {
	return func(c *Client) {
		c.metrics = store
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithRetry sets how many times a call is attempted and the bounds of the
// backoff between attempts. attempts of 1 disables retries.
func WithRetry(attempts uint, delay, maxDelay time.Duration) Option {
	return func(c *Client) {
		c.attempts = max(attempts, 1)
		c.delay = delay
		c.maxDelay = maxDelay
	}
}

// WithRateLimit spaces requests, retries included, to at most rps per second
// with bursts of burst. A non-positive rps removes the limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}
}

// WithBlockCache keeps up to size blocks fetched by hash for ttl. Blocks
// requested by height or finality are not served from the cache.
func WithBlockCache(size int, ttl time.Duration) Option {
	return func(c *Client) {
		if size <= 0 {
			c.blocks = nil
			return
		}
		c.blocks = expirable.NewLRU[entity.CryptoHash, entity.RpcBlockResponse](size, nil, ttl)
	}
}

func New(rpcURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(rpcURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rpcURL)
	}

	c := &Client{
		rpcURL:     rpcURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		formats:    entity.Formats,
		attempts:   MaxAttempts,
		delay:      RetryDelay,
		maxDelay:   MaxDelay,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.metrics == nil {
		c.metrics = metrics.New(prometheus.NewRegistry(), "near_client", "near-jsonrpc", "")
	}

	return c, nil
}

func (c *Client) URL() string {
	return c.rpcURL
}

type validatable interface {
	Validate(strfmt.Registry) error
}

// call sends one JSON-RPC request and decodes its result into T. A result is
// returned only when the node answered with one; the error member always
// turns into *RPCError.
func call[P, T any](ctx context.Context, c *Client, method string, params P) (*T, error) {
	info, _ := registry.Lookup(method)
	c.warnDeprecated(info)

	if v, ok := any(params).(validatable); ok {
		if err := v.Validate(c.formats); err != nil {
			c.metrics.RpcRequests.With(prometheus.Labels{metrics.Method: method, metrics.Status: metrics.StatusFail}).Inc()
			return nil, &ValidationError{Method: method, Err: err}
		}
	}

	out, err := retry.DoWithData(
		func() (*T, error) {
			return doRpcRequest[P, T](ctx, c, method, params, info.NullableResult)
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.MaxDelay(c.maxDelay),
		retry.DelayType(retry.CombineDelay(
			retry.BackOffDelay,
			retry.RandomDelay,
		)),
		retry.LastErrorOnly(true),
		retry.RetryIf(retryable),
		retry.OnRetry(func(n uint, err error) {
			c.log.Debug("retrying rpc call",
				slog.String("method", method),
				slog.Uint64("attempt", uint64(n+1)),
				slog.Any("error", err),
			)
		}),
	)

	status := metrics.StatusOk
	if err != nil {
		status = metrics.StatusFail
	}
	c.metrics.RpcRequests.With(prometheus.Labels{metrics.Method: method, metrics.Status: status}).Inc()

	return out, err
}

func doRpcRequest[P, T any](ctx context.Context, c *Client, method string, params P, nullable bool) (*T, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s: rate limit: %w", method, err)
		}
	}

	rpcRequest := entity.JsonRpcRequest[P]{
		JsonRpc: entity.JsonRpcVersion,
		ID:      uuid.New().String(),
		Method:  method,
		Params:  params,
	}

	payload, marshalErr := json.Marshal(rpcRequest)
	if marshalErr != nil {
		return nil, fmt.Errorf("%s: could not marshal request: %w", method, marshalErr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		resp.Body.Close()
		duration := time.Since(start).Seconds()
		c.metrics.SummaryHandlers.With(prometheus.Labels{metrics.Method: method}).Observe(duration)
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
	}

	if !gjson.ValidBytes(body) || !gjson.GetBytes(body, "jsonrpc").Exists() {
		return nil, fmt.Errorf("%s: %w", method, ErrInvalidResponse)
	}

	var p entity.JsonRpcResponse[T, entity.UntypedHandlerError]
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &DecodeError{Method: method, Err: err}
	}

	if p.Error != nil {
		return nil, &RPCError{Method: method, Err: p.Error}
	}

	if !gjson.GetBytes(body, "result").Exists() {
		return nil, fmt.Errorf("%s: neither result nor error: %w", method, ErrInvalidResponse)
	}

	if p.Result == nil && !nullable {
		return nil, &DecodeError{Method: method, Err: ErrEmptyResponse}
	}

	return p.Result, nil
}

func (c *Client) warnDeprecated(m registry.Method) {
	if !m.Deprecated() {
		return
	}

	c.metrics.DeprecatedCalled.With(prometheus.Labels{metrics.Method: m.Name}).Inc()
	if _, seen := c.deprecated.LoadOrStore(m.Name, struct{}{}); seen {
		return
	}
	c.log.Warn(fmt.Sprintf("%s is deprecated, use %s", m.Name, m.ReplacedBy))
}
