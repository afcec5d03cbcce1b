package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the transport layer can map it without
// inspecting messages.
type Kind string

const (
	KindIO            Kind = "io"
	KindParse         Kind = "parse"
	KindValidation    Kind = "validation"
	KindNotFound      Kind = "not_found"
	KindUpstream      Kind = "upstream"
	KindEmptyResponse Kind = "empty_response"
	KindTransport     Kind = "transport"
)

// Sentinels for errors.Is checks.
var (
	ErrIO            = &Error{Kind: KindIO}
	ErrParse         = &Error{Kind: KindParse}
	ErrValidation    = &Error{Kind: KindValidation}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrUpstream      = &Error{Kind: KindUpstream}
	ErrEmptyResponse = &Error{Kind: KindEmptyResponse}
	ErrTransport     = &Error{Kind: KindTransport}
)

// Error is the single error type surfaced by every command.
type Error struct {
	Kind    Kind
	Message string
	// Status and Body are only set for upstream failures.
	Status int
	Body   string
	// Err is the underlying cause, kept for logging.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind so callers can write errors.Is(err, domain.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of err, or "" if err is not a domain error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IOError wraps a filesystem failure.
func IOError(msg string, err error) *Error {
	return &Error{Kind: KindIO, Message: msg, Err: err}
}

// ParseError wraps malformed JSON in a config file, document or upstream response.
func ParseError(msg string, err error) *Error {
	return &Error{Kind: KindParse, Message: msg, Err: err}
}

// ValidationError reports a violated invariant or a bad argument.
func ValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NotFoundError reports an unknown provider id.
func NotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// UpstreamError reports a non-success status from a provider API.
func UpstreamError(status int, body string) *Error {
	return &Error{
		Kind:    KindUpstream,
		Message: fmt.Sprintf("API error (%d): %s", status, body),
		Status:  status,
		Body:    body,
	}
}

// EmptyResponseError reports a success response without reply text.
func EmptyResponseError(msg string) *Error {
	return &Error{Kind: KindEmptyResponse, Message: msg}
}

// TransportError reports that the provider could not be reached at all.
func TransportError(msg string, err error) *Error {
	return &Error{Kind: KindTransport, Message: msg, Err: err}
}
