// Package apperr defines the closed set of error kinds crossing the service
// boundary. Handlers map kinds to HTTP statuses; anything outside the set is
// treated as a storage failure and kept opaque to clients.
package apperr

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	// KindStorage is the zero-adjacent default: an unexpected persistence
	// failure whose detail must not leak to the caller.
	KindStorage Kind = iota
	KindValidation
	KindNotFound
	KindInsufficientStock
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInsufficientStock:
		return "insufficient_stock"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "storage"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func InsufficientStock(format string, args ...any) error {
	return &Error{Kind: KindInsufficientStock, Msg: fmt.Sprintf(format, args...)}
}

func Unauthorized(msg string) error {
	return &Error{Kind: KindUnauthorized, Msg: msg}
}

// Storage wraps an unexpected persistence error. The message shown to
// callers is generic; err carries the detail for server-side logs.
func Storage(err error) error {
	return &Error{Kind: KindStorage, Msg: "storage failure", Err: err}
}

// KindOf extracts the kind from err, defaulting to KindStorage for errors
// that did not originate in a service.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// Is lets errors.Is match two apperr values by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Kind == t.Kind
}
