// Package apperror defines the classified failures returned by the
// application layer. Every error carries a status code and a message that
// the transport layer can surface as-is.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind names the category of an Error.
type Kind string

const (
	KindBadRequest     Kind = "BadRequestError"
	KindInvalidEmail   Kind = "InvalidEmailError"
	KindNotFound       Kind = "NotFoundError"
	KindInternalServer Kind = "InternalServerError"
)

const (
	defaultBadRequestMessage     = "Bad Request"
	defaultNotFoundMessage       = "Not Found"
	defaultInternalServerMessage = "Internal server error."
	invalidEmailMessage          = "Invalid email format"
)

// Error is a classified failure. Cause is only set for internal errors and
// is never shown to clients.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error of the same kind, so sentinel-style checks work:
// errors.Is(err, apperror.NotFound("")).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// HTTPStatus returns the status code to surface for this error.
func (e *Error) HTTPStatus() int {
	if e.StatusCode != 0 {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

// IsBadRequest reports whether the error is a client input failure.
// InvalidEmail is a specialization of BadRequest.
func (e *Error) IsBadRequest() bool {
	return e.Kind == KindBadRequest || e.Kind == KindInvalidEmail
}

func BadRequest(message string) *Error {
	if message == "" {
		message = defaultBadRequestMessage
	}
	return &Error{Kind: KindBadRequest, Message: message, StatusCode: http.StatusBadRequest}
}

func InvalidEmail() *Error {
	return &Error{Kind: KindInvalidEmail, Message: invalidEmailMessage, StatusCode: http.StatusBadRequest}
}

func NotFound(message string) *Error {
	if message == "" {
		message = defaultNotFoundMessage
	}
	return &Error{Kind: KindNotFound, Message: message, StatusCode: http.StatusNotFound}
}

// InternalServer wraps an unexpected fault. cause may be nil.
func InternalServer(message string, cause error) *Error {
	if message == "" {
		message = defaultInternalServerMessage
	}
	return &Error{Kind: KindInternalServer, Message: message, StatusCode: http.StatusInternalServerError, Cause: cause}
}

// As converts any error into an *Error. Errors that are already classified
// (anywhere in the chain) are returned unchanged; everything else becomes
// an internal server error carrying err as its cause.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return InternalServer("", err)
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == k
}
