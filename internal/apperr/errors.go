package apperr

import (
	"errors"
	"fmt"
	"net/http"

	goerrors "github.com/go-errors/errors"
)

type Kind string

const (
	KindNotFound   Kind = "NOT_FOUND"
	KindValidation Kind = "VALIDATION_FAILED"
	KindConflict   Kind = "CONFLICT"
	KindBadRequest Kind = "BAD_REQUEST"
	KindInternal   Kind = "INTERNAL"
)

const ConflictMessage = "The resource was modified by another user. Please refresh and try again."

// Error is the error type services return for outcomes the caller must
// render; anything else reaching the transport is treated as internal.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind Kind, message string, err error) *Error {
	var stack []byte
	if err != nil {
		var stackErr *goerrors.Error
		if errors.As(err, &stackErr) {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

// NotFound builds "<Resource> not found with id: <id>".
func NotFound(resource string, id any) *Error {
	return newError(KindNotFound, fmt.Sprintf("%s not found with id: %v", resource, id), nil)
}

func Validation(fields map[string]string) *Error {
	e := newError(KindValidation, "Validation failed", nil)
	e.Fields = fields
	return e
}

func Conflict(err error) *Error {
	return newError(KindConflict, ConflictMessage, err)
}

func BadRequest(message string, err error) *Error {
	return newError(KindBadRequest, message, err)
}

func Internal(message string, err error) *Error {
	return newError(KindInternal, message, err)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is reports whether err carries an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}
