package entity

import (
	"encoding/json"
	"fmt"
)

const JsonRpcVersion = "2.0"

type JsonRpcRequest[P any] struct {
	JsonRpc string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  P      `json:"params"`
}

type JsonRpcResponse[T any, E any] struct {
	JsonRpc string           `json:"jsonrpc"`
	ID      string           `json:"id"`
	Result  *T               `json:"result,omitempty"`
	Error   *ErrorWrapper[E] `json:"error,omitempty"`
}

type ErrorWrapperName string

const (
	ErrorWrapperRequestValidation ErrorWrapperName = "REQUEST_VALIDATION_ERROR"
	ErrorWrapperHandler           ErrorWrapperName = "HANDLER_ERROR"
	ErrorWrapperInternal          ErrorWrapperName = "INTERNAL_ERROR"
)

// ErrorWrapper is the error member of a JSON-RPC response. Cause depends on
// Name: a request validation kind, the method specific handler error E or an
// internal error.
type ErrorWrapper[E any] struct {
	Name              ErrorWrapperName
	RequestValidation *RpcRequestValidationErrorKind
	Handler           *E
	Internal          *InternalError

	Code    int64
	Message string
	Data    any
}

func (e ErrorWrapper[E]) Variant() string { return string(e.Name) }

// CauseName is the name of the wrapped cause, e.g. UNKNOWN_BLOCK.
func (e ErrorWrapper[E]) CauseName() string {
	switch {
	case e.RequestValidation != nil:
		return e.RequestValidation.Variant()
	case e.Internal != nil:
		return e.Internal.Variant()
	case e.Handler != nil:
		if v, ok := any(*e.Handler).(Varianter); ok {
			return v.Variant()
		}
	}
	return ""
}

// Cause returns the typed cause as an untyped value.
func (e ErrorWrapper[E]) Cause() any {
	switch {
	case e.RequestValidation != nil:
		return e.RequestValidation
	case e.Internal != nil:
		return e.Internal
	case e.Handler != nil:
		return e.Handler
	}
	return nil
}

func (e ErrorWrapper[E]) Error() string {
	if cause := e.CauseName(); cause != "" {
		return fmt.Sprintf("%s(%d): %s: %s", e.Name, e.Code, e.Message, cause)
	}
	return fmt.Sprintf("%s(%d): %s", e.Name, e.Code, e.Message)
}

type errorWrapperJSON struct {
	Name    ErrorWrapperName `json:"name"`
	Cause   json.RawMessage  `json:"cause,omitempty"`
	Code    int64            `json:"code"`
	Message string           `json:"message"`
	Data    any              `json:"data,omitempty"`
}

func (e ErrorWrapper[E]) MarshalJSON() ([]byte, error) {
	var (
		cause []byte
		err   error
	)
	switch e.Name {
	case ErrorWrapperRequestValidation:
		cause, err = json.Marshal(e.RequestValidation)
	case ErrorWrapperHandler:
		cause, err = json.Marshal(e.Handler)
	case ErrorWrapperInternal:
		cause, err = json.Marshal(e.Internal)
	default:
		return nil, &UnknownVariantError{Type: "ErrorWrapper", Variant: string(e.Name)}
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(errorWrapperJSON{
		Name:    e.Name,
		Cause:   cause,
		Code:    e.Code,
		Message: e.Message,
		Data:    e.Data,
	})
}

func (e *ErrorWrapper[E]) UnmarshalJSON(data []byte) error {
	var aux errorWrapperJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("ErrorWrapper: %w", err)
	}

	*e = ErrorWrapper[E]{
		Name:    aux.Name,
		Code:    aux.Code,
		Message: aux.Message,
		Data:    aux.Data,
	}

	var target any
	switch aux.Name {
	case ErrorWrapperRequestValidation:
		e.RequestValidation = new(RpcRequestValidationErrorKind)
		target = e.RequestValidation
	case ErrorWrapperHandler:
		e.Handler = new(E)
		target = e.Handler
	case ErrorWrapperInternal:
		e.Internal = new(InternalError)
		target = e.Internal
	default:
		return &UnknownVariantError{Type: "ErrorWrapper", Variant: string(aux.Name)}
	}

	if len(aux.Cause) == 0 || string(aux.Cause) == "null" {
		return nil
	}
	if err := json.Unmarshal(aux.Cause, target); err != nil {
		return fmt.Errorf("ErrorWrapper.cause: %w", err)
	}
	return nil
}

// UntypedHandlerError keeps the info of a handler error as a plain map, for
// callers that do not know the method specific error type.
type UntypedHandlerError = NamedError[map[string]any]

// RpcError is the error member of any method's response.
type RpcError = ErrorWrapper[UntypedHandlerError]
