// Package apperr classifies every failure a request can end in so the HTTP
// layer never sees an unclassified error.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindClientError
	KindUnauthorized
	KindForbidden
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindClientError:
		return "client_error"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// GenericMessage is the only text an internal failure ever exposes.
const GenericMessage = "Internal server error. Contact the administrator."

type Error struct {
	Kind    Kind
	Message string
	Details any
	Err     error

	logged bool
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Logged reports whether the producer already wrote the failure to the log.
func (e *Error) Logged() bool { return e.logged }

func ClientError(message string, details any) *Error {
	return &Error{Kind: KindClientError, Message: message, Details: details}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: GenericMessage, Err: err}
}

// InternalLogged is Internal for failures the caller has already logged
// with its own context.
func InternalLogged(err error) *Error {
	e := Internal(err)
	e.logged = true
	return e
}

// From returns err as an *Error, classifying anything else as internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}

func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
