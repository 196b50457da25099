package near

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
)

var (
	ErrInvalidURL      = errors.New("invalid rpc url")
	ErrInvalidResponse = errors.New("invalid response from server")
	ErrEmptyResponse   = errors.New("empty result")
	ErrInvalidRange    = errors.New("invalid block range")
)

// HTTPError is returned when the node answers with a status other than 200.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: %d", e.StatusCode)
	}
	return fmt.Sprintf("http error: %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether repeating the request may succeed.
func (e *HTTPError) Temporary() bool {
	switch {
	case e.StatusCode == http.StatusRequestTimeout,
		e.StatusCode == http.StatusTooManyRequests,
		e.StatusCode >= http.StatusInternalServerError:
		return true
	}
	return false
}

// RPCError carries the error member of a JSON-RPC response.
type RPCError struct {
	Method string
	Err    *entity.RpcError
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s: rpc error: %s", e.Method, e.Err.Error())
}

// CauseName is the name of the handler or validation error, e.g. UNKNOWN_BLOCK.
func (e *RPCError) CauseName() entity.ErrorName {
	return entity.ErrorName(e.Err.CauseName())
}

// DecodeCause decodes the handler error into a method specific type such as
// entity.RpcQueryError.
func (e *RPCError) DecodeCause(target any) error {
	if e.Err.Handler == nil {
		return fmt.Errorf("%s: %s carries no handler error", e.Method, e.Err.Name)
	}

	raw, err := json.Marshal(e.Err.Handler)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}

// DecodeError is returned when the result does not fit the expected type.
type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding error: %s", e.Method, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError is returned before sending when the request params are not
// valid.
type ValidationError struct {
	Method string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid params: %s", e.Method, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsCause reports whether err is an RPC error of the given cause.
func IsCause(err error, name entity.ErrorName) bool {
	var rpcErr *RPCError
	return errors.As(err, &rpcErr) && rpcErr.CauseName() == name
}

func retryable(err error) bool {
	var (
		httpErr     *HTTPError
		rpcErr      *RPCError
		decodeErr   *DecodeError
		validateErr *ValidationError
	)
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Temporary()
	case errors.As(err, &rpcErr), errors.As(err, &decodeErr), errors.As(err, &validateErr):
		return false
	case errors.Is(err, ErrInvalidResponse),
		errors.Is(err, context.Canceled):
		return false
	}
	return true
}
