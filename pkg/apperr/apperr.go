package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags an Error with one of the failure classes every operation of the
// catalog can surface. Handlers map kinds to HTTP status codes; usecases never
// return a bare error.
type Kind int

const (
	// Validation covers missing/empty required fields and malformed ids.
	// Raised before any side effect.
	Validation Kind = iota
	// NotFound means no document exists for the given id.
	NotFound
	// UpstreamUpload means a blob store upload call failed.
	UpstreamUpload
	// UpstreamDelete means a blob store delete call failed.
	UpstreamDelete
	// Persistence means the document store returned no result for an
	// insert/update/delete.
	Persistence
	// Internal is everything else.
	Internal
)

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

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP-style status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case UpstreamUpload, UpstreamDelete:
		return http.StatusBadGateway
	case Persistence, Internal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

// From extracts an *Error from err, wrapping unknown errors as Internal so
// that the presentation layer always has a kind and a status to render.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	return &Error{Kind: Internal, Message: "internal server error", Err: err}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}

	return false
}
