// internal/apperr/errors.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so each transport adapter can map it to its own
// surfaced representation instead of inspecting messages.
type Kind int

const (
	KindValidation Kind = iota // caller-supplied data failed a shape or required-field check
	KindNotFound               // lookup by id failed
	KindStorage                // collection load or replace failed
	KindAsset                  // asset removal or write failed
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage"
	case KindAsset:
		return "asset"
	}
	return "unknown"
}

// Error is a tagged domain error. Message is safe to surface verbatim to
// callers; Err carries the underlying cause for logs and unwrapping.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

func Asset(message string, err error) *Error {
	return &Error{Kind: KindAsset, Message: message, Err: err}
}

// Status maps an error to the numeric status code of the boundary contract:
// 400 validation, 404 not found, 500 for everything else.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case KindValidation:
			return http.StatusBadRequest
		case KindNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}

// KindOf returns the kind of err, or KindStorage for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindValidation
}
