// Package apperr defines the error taxonomy shared by services and the
// HTTP layer. Services return *Error values; handlers map the kind to a
// status code without inspecting messages.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthentication
	KindNotFound
	KindUnprocessable
	// KindPersistence covers unexpected store failures. They surface as
	// 400 rather than 500, matching the upstream policy of treating every
	// store failure as client-reportable.
	KindPersistence
)

// Status maps an error kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Authentication(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Unprocessable(msg string) *Error {
	return &Error{Kind: KindUnprocessable, Message: msg}
}

func Persistence(err error) *Error {
	return &Error{Kind: KindPersistence, Message: "request could not be completed", Err: err}
}

// KindOf extracts the kind from an error chain, KindUnknown when the chain
// carries no *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusOf returns the HTTP status for any error, defaulting to 400.
func StatusOf(err error) int {
	return KindOf(err).Status()
}
