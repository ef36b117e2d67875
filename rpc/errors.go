package rpc

import (
	"errors"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

// Kind separates errors the node reported about the request from transport failures.
type Kind int

const (
	// KindBusiness is an error object returned by the node: insufficient funds, bad name.
	KindBusiness Kind = iota
	// KindSystem covers dial, HTTP, timeout and decoding failures.
	KindSystem
)

func (k Kind) String() string {
	if k == KindBusiness {
		return "business"
	}
	return "system"
}

// Error is the only error type returned by Client methods.
type Error struct {
	Kind    Kind
	Method  string
	Code    int
	Message string
	err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.err }

// AsError extracts an *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsBusiness reports whether err carries a node-reported error.
func IsBusiness(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindBusiness
}

func businessError(method, msg string) *Error {
	return &Error{Kind: KindBusiness, Method: method, Message: msg}
}

func classify(method string, err error) *Error {
	if e, ok := AsError(err); ok {
		return e
	}
	var httpErr gethrpc.HTTPError
	if errors.As(err, &httpErr) {
		return &Error{Kind: KindSystem, Method: method, Code: httpErr.StatusCode, Message: err.Error(), err: err}
	}
	var rpcErr gethrpc.Error
	if errors.As(err, &rpcErr) {
		return &Error{Kind: KindBusiness, Method: method, Code: rpcErr.ErrorCode(), Message: rpcErr.Error(), err: err}
	}
	return &Error{Kind: KindSystem, Method: method, Message: err.Error(), err: err}
}
