// Package errs provides the unified error type used across all of colfam.
//
// Every subsystem (schema, mutate, store drivers, …) wraps its failures into
// *errs.Error before returning them to callers. Callers use the Is*
// predicates to distinguish caller misuse from schema-rule violations and
// from failures originating in the backing store, without importing
// driver-specific packages.
//
// Usage:
//
//	// In a driver — wrap native errors:
//	return errs.Wrap(errs.ErrKindConnectionFailed, "store unreachable", err)
//
//	// In a caller — check error kind:
//	if errs.IsSchemaViolation(err) {
//	    // the request was well-typed but semantically disallowed
//	}
package errs

import (
	"errors"
	"fmt"
)

// ErrKind categorises an error without exposing subsystem-specific codes.
// The first two kinds are raised by colfam's own validation layers; the rest
// classify failures originating in the backing store or its transport.
type ErrKind int

const (
	ErrKindUnknown          ErrKind = iota
	ErrKindInvalidInput             // caller misuse, detectable without the store
	ErrKindSchemaViolation          // well-typed but semantically disallowed request
	ErrKindNotFound                 // unknown table, row, or column family
	ErrKindConnectionFailed         // cannot reach the backing store
	ErrKindTimeout                  // context deadline / cancellation
	ErrKindStoreFailed              // the store rejected or failed the operation
	ErrKindPermissionDenied         // access denied / auth failure
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidInput:
		return "invalid_input"
	case ErrKindSchemaViolation:
		return "schema_violation"
	case ErrKindNotFound:
		return "not_found"
	case ErrKindConnectionFailed:
		return "connection_failed"
	case ErrKindTimeout:
		return "timeout"
	case ErrKindStoreFailed:
		return "store_failed"
	case ErrKindPermissionDenied:
		return "permission_denied"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by all colfam subsystems.
// Validation layers and drivers produce it; callers inspect it via the
// Is* predicates below.
//
// Error() intentionally returns just the message (plus cause): the
// validation messages are part of the public contract and must reach the
// caller verbatim.
type Error struct {
	Kind    ErrKind
	Message string
	Cause   error // original store-level error, preserved for logging
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// --- Constructors ---

// New creates an *Error with the given kind and message and no cause.
func New(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf creates an *Error with a formatted message and no cause.
func Newf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error with the given kind, message, and an underlying cause.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// --- Predicates ---

// IsInvalidInput reports whether err was caused by bad arguments from the
// caller (non-mutable schema, empty table name, row column outside its
// table, …).
func IsInvalidInput(err error) bool {
	return kindOf(err) == ErrKindInvalidInput
}

// IsSchemaViolation reports whether err is a schema-rule violation: the
// request was structurally well-typed but semantically disallowed, such as
// executing a table creation with no column families staged.
func IsSchemaViolation(err error) bool {
	return kindOf(err) == ErrKindSchemaViolation
}

// IsNotFound reports whether err represents a missing table, row, or
// column family.
func IsNotFound(err error) bool {
	return kindOf(err) == ErrKindNotFound
}

// IsConnectionFailed reports whether err is a connectivity failure.
func IsConnectionFailed(err error) bool {
	return kindOf(err) == ErrKindConnectionFailed
}

// IsTimeout reports whether err was caused by a deadline or context cancellation.
func IsTimeout(err error) bool {
	return kindOf(err) == ErrKindTimeout
}

// IsStoreFailed reports whether err originated inside the backing store
// (duplicate table, server-side rejection, I/O failure, …).
func IsStoreFailed(err error) bool {
	return kindOf(err) == ErrKindStoreFailed
}

// IsPermissionDenied reports whether err is an access control failure.
func IsPermissionDenied(err error) bool {
	return kindOf(err) == ErrKindPermissionDenied
}

// kindOf extracts the ErrKind from any error in the chain.
func kindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}
