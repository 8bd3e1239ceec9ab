// Package apperror classifies failures so that transports can map them to
// status codes without inspecting provider-specific errors.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the failure class of an Error
type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindInvalidQuery    Kind = "invalid_query"
	KindValidation      Kind = "validation"
	KindConflict        Kind = "conflict"
	KindPersistence     Kind = "persistence"
	KindPayment         Kind = "payment"
	KindInternal        Kind = "internal"
)

// MsgLoginRequired is shown whenever an operation runs without a session
const MsgLoginRequired = "You need to be logged in"

// MsgReferenceUsed is returned when a payment reference was already recorded
// for another student or trip
const MsgReferenceUsed = "payment reference already used"

// Error is a classified failure. Message is safe to show to callers; Err is not.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func Unauthenticated() *Error {
	return newError(KindUnauthenticated, MsgLoginRequired, nil)
}

// InvalidToken rejects an ID token that is malformed, expired or revoked
func InvalidToken(err error) *Error {
	return newError(KindUnauthenticated, MsgLoginRequired, err)
}

// InvalidCredentials rejects a sign-in attempt without saying which part was wrong
func InvalidCredentials(err error) *Error {
	return newError(KindUnauthenticated, "invalid email or password", err)
}

func Forbidden(msg string) *Error {
	return newError(KindForbidden, msg, nil)
}

// NotFound reports that entity could not be resolved
func NotFound(entity string) *Error {
	return newError(KindNotFound, fmt.Sprintf("%s doesn't exist", entity), nil)
}

func InvalidQuery(msg string) *Error {
	return newError(KindInvalidQuery, msg, nil)
}

func Validation(msg string) *Error {
	return newError(KindValidation, msg, nil)
}

func Conflict(msg string) *Error {
	return newError(KindConflict, msg, nil)
}

// Persistence wraps a store failure during op
func Persistence(op string, err error) *Error {
	return newError(KindPersistence, fmt.Sprintf("failed to %s", op), err)
}

func Payment(msg string, err error) *Error {
	return newError(KindPayment, msg, err)
}

func Internal(msg string, err error) *Error {
	return newError(KindInternal, msg, err)
}

// KindOf returns the kind of the first Error in err's chain, or KindInternal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err is classified as kind
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsNotFound(err error) bool { return Is(err, KindNotFound) }

// Message returns the caller-safe text of err
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}

// HTTPStatus maps a kind to its response status
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidQuery, KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindPayment:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
