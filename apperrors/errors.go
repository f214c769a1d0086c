// Package apperrors defines the machine-readable error kinds used across the
// backend and the correlation-ID convention attached to them.
//
// Errors carry a Kind (what went wrong) and optionally the correlation ID of
// the request that produced them. User-facing message text is a presentation
// concern and lives in the i18n package, never here.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error. Kinds are stable identifiers: they cross the API
// boundary as the "code" field and key the i18n message catalogs.
type Kind string

const (
	// Core nutrition kinds.
	KindInvalidPortion      Kind = "invalid_portion"       // non-positive portion weight
	KindUnknownFood         Kind = "unknown_food"          // log entry references a missing catalog id
	KindInvalidPortionIndex Kind = "invalid_portion_index" // portion index out of range for the food
	KindInvalidTarget       Kind = "invalid_target"        // non-positive calorie target

	// Repository / transport kinds.
	KindValidation      Kind = "validation"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindUnauthorized    Kind = "unauthorized"
	KindStorage         Kind = "storage"
	KindSyncUnavailable Kind = "sync_unavailable"
	KindInternal        Kind = "internal"
)

// Sentinel values for errors.Is checks. Matching is by Kind, so any *Error
// with the same Kind satisfies Is against these.
var (
	ErrInvalidPortion      = &Error{Kind: KindInvalidPortion}
	ErrUnknownFood         = &Error{Kind: KindUnknownFood}
	ErrInvalidPortionIndex = &Error{Kind: KindInvalidPortionIndex}
	ErrInvalidTarget       = &Error{Kind: KindInvalidTarget}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrConflict            = &Error{Kind: KindConflict}
	ErrUnauthorized        = &Error{Kind: KindUnauthorized}
)

// Error is the concrete error carried between layers. Op names the operation
// that failed ("nutrition.Scale", "catalog.Get"); Err is the wrapped cause.
type Error struct {
	Kind          Kind
	Op            string
	CorrelationID string
	Err           error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports kind equality, so errors.Is(err, ErrUnknownFood) matches any
// unknown_food error regardless of op or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// E builds an error of the given kind. err may be nil.
func E(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf builds an error of the given kind around a formatted cause.
func Errorf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf walks the error chain and returns the first Kind found, or
// KindInternal for foreign errors. Nil maps to the empty Kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// WithCorrelation stamps the request correlation ID onto err. Foreign errors
// are wrapped as KindInternal so the ID always has somewhere to live.
func WithCorrelation(err error, id string) error {
	if err == nil || id == "" {
		return err
	}
	var e *Error
	if errors.As(err, &e) {
		e.CorrelationID = id
		return err
	}
	return &Error{Kind: KindInternal, CorrelationID: id, Err: err}
}

// CorrelationIDOf returns the correlation ID carried by the chain, if any.
func CorrelationIDOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.CorrelationID
	}
	return ""
}

// HTTPStatus maps a kind to the status controllers respond with.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidPortion, KindInvalidPortionIndex, KindInvalidTarget, KindValidation:
		return 400
	case KindUnauthorized:
		return 401
	case KindUnknownFood, KindNotFound:
		return 404
	case KindConflict:
		return 409
	case KindSyncUnavailable:
		return 503
	default:
		return 500
	}
}
