// Package errs provides the error type shared by the generator stages.
//
// The loader distinguishes errors it can recover from locally (a malformed
// source row is dropped) from errors that must abort the whole run (a missing
// source file, a catalog defect, a database constraint violation). Stages wrap
// their errors into *errs.Error so callers can make that decision with the
// Is* predicates instead of matching on message text.
//
// Usage:
//
//	// In a CSV reader — flag a bad row:
//	return errs.Wrap(errs.ErrKindInvalidRow, "parsing diameter", err)
//
//	// In the loader — drop it and keep going:
//	if errs.IsInvalidRow(err) {
//	    stats.Skipped++
//	    continue
//	}
package errs

import (
	"errors"
	"fmt"
)

// ErrKind categorises an error by how the generator must react to it.
type ErrKind int

const (
	ErrKindUnknown    ErrKind = iota
	ErrKindInvalidRow         // empty field, unparseable number, unknown unit
	ErrKindSource             // missing file, unreadable CSV, header mismatch
	ErrKindSchema             // catalog defect detected at compile time
	ErrKindConstraint         // key ordering defect detected while loading
	ErrKindDatabase           // any other database failure
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidRow:
		return "invalid_row"
	case ErrKindSource:
		return "source"
	case ErrKindSchema:
		return "schema"
	case ErrKindConstraint:
		return "constraint"
	case ErrKindDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// Error is the error type returned by the generator stages.
type Error struct {
	Kind    ErrKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an *Error with the given kind and message and no cause.
func New(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf is like New with a formatted message.
func Newf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error with the given kind, message, and an underlying cause.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// IsInvalidRow reports whether err describes a single bad source row that
// may be skipped.
func IsInvalidRow(err error) bool {
	return KindOf(err) == ErrKindInvalidRow
}

// IsSource reports whether err is a missing or unreadable input source.
func IsSource(err error) bool {
	return KindOf(err) == ErrKindSource
}

// IsSchema reports whether err is a catalog defect.
func IsSchema(err error) bool {
	return KindOf(err) == ErrKindSchema
}

// IsConstraint reports whether err is a key or ordering violation.
func IsConstraint(err error) bool {
	return KindOf(err) == ErrKindConstraint
}

// KindOf extracts the ErrKind of the outermost *Error in the chain.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}
