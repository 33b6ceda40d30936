// Package apperror defines the application error taxonomy. Errors carry a
// Kind so callers branch on category instead of matching strings, wrap an
// underlying cause, and map onto HTTP status codes at the adapter boundary.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// Unknown is an unclassified internal error.
	Unknown Kind = iota
	// DuplicateUsername: registration hit an existing case-sensitive match.
	DuplicateUsername
	// InvalidCredentials: login did not match a stored row exactly. Unknown
	// user and wrong password intentionally collapse into this one kind.
	InvalidCredentials
	// UnknownUser: the referenced user id does not exist.
	UnknownUser
	// InvalidWeight: a recorded weight was not > 0.
	InvalidWeight
	// NotFound: the referenced ledger entry does not exist.
	NotFound
	// PermissionDenied: the permission gate refused a notification attempt.
	PermissionDenied
	// DeliveryFailed: the delivery channel reported a send failure.
	DeliveryFailed
	// StoreUnavailable: the backing store failed; retryable, distinct from
	// an absent row.
	StoreUnavailable
	// Validation: caller-layer input validation failed.
	Validation
)

// Error is the application error type. Message is user-facing; Err holds the
// underlying cause for debugging.
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

// Unwrap returns the underlying error so errors.Is and errors.As can walk
// the chain.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status for the caller layer.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case DuplicateUsername:
		return http.StatusConflict
	case InvalidCredentials:
		return http.StatusUnauthorized
	case UnknownUser, NotFound:
		return http.StatusNotFound
	case InvalidWeight, Validation:
		return http.StatusBadRequest
	case PermissionDenied:
		return http.StatusForbidden
	case DeliveryFailed:
		return http.StatusBadGateway
	case StoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// New creates an Error of an arbitrary kind.
func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NewDuplicateUsername reports a registration collision.
func NewDuplicateUsername(username string) *Error {
	return New(DuplicateUsername, fmt.Sprintf("username %q already exists", username), nil)
}

// NewInvalidCredentials reports a failed login without revealing whether the
// user exists.
func NewInvalidCredentials() *Error {
	return New(InvalidCredentials, "invalid username or password", nil)
}

// NewUnknownUser reports a dangling user id.
func NewUnknownUser(id int64) *Error {
	return New(UnknownUser, fmt.Sprintf("no user with id %d", id), nil)
}

// NewInvalidWeight reports an out-of-range weight value.
func NewInvalidWeight(value float64) *Error {
	return New(InvalidWeight, fmt.Sprintf("weight must be > 0, got %g", value), nil)
}

// NewNotFound reports an absent ledger entry.
func NewNotFound(entryID int64) *Error {
	return New(NotFound, fmt.Sprintf("no weight entry with id %d", entryID), nil)
}

// NewPermissionDenied reports a refused notification attempt.
func NewPermissionDenied() *Error {
	return New(PermissionDenied, "notification permission denied", nil)
}

// NewDeliveryFailed reports a failed notification send.
func NewDeliveryFailed(err error) *Error {
	return New(DeliveryFailed, "notification delivery failed", err)
}

// NewStoreUnavailable wraps a store-level failure.
func NewStoreUnavailable(err error) *Error {
	return New(StoreUnavailable, "store unavailable", err)
}

// NewValidation reports a caller input problem with a user-facing message.
func NewValidation(message string) *Error {
	return New(Validation, message, nil)
}

// KindOf extracts the Kind from an error chain, or Unknown.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Unknown
}

// IsKind reports whether an error in the chain has the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
