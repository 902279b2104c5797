// Package errors provides standardized error types for Series operations.
// This package defines SeriesError for consistent error handling across
// all public APIs, with operation context and error wrapping support.
package errors

import (
	"fmt"
)

// Kind classifies a SeriesError into the error taxonomy used by all
// Series operations.
type Kind int

const (
	// KindInvalidArgument indicates an out-of-range index, a wrong argument
	// type, or an otherwise malformed argument. Raised by the validation
	// gate before any state change.
	KindInvalidArgument Kind = iota
	// KindTypeMismatch indicates a numeric-only operation encountered a
	// value that fails numeric coercion.
	KindTypeMismatch
	// KindOperandMismatch indicates an operand that is not a Series where
	// one is required (e.g. Concat).
	KindOperandMismatch
	// KindEmptySeries indicates an operation that needs at least one value
	// was invoked on an empty Series.
	KindEmptySeries
)

// String returns the taxonomy name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindOperandMismatch:
		return "OperandMismatch"
	case KindEmptySeries:
		return "EmptySeries"
	default:
		return "Unknown"
	}
}

// SeriesError represents standardized errors across all Series operations
type SeriesError struct {
	Op      string // Operation name (e.g., "Sort", "Filter", "Round")
	Arg     string // Argument name if applicable
	Kind    Kind   // Taxonomy classification
	Message string // Human-readable error description
	Cause   error  // Underlying error cause
}

// Error implements the error interface
func (e *SeriesError) Error() string {
	if e.Arg != "" {
		return fmt.Sprintf("%s: %s failed on argument '%s': %s", e.Kind, e.Op, e.Arg, e.Message)
	}
	return fmt.Sprintf("%s: %s failed: %s", e.Kind, e.Op, e.Message)
}

// Unwrap returns the underlying cause for error wrapping support
func (e *SeriesError) Unwrap() error {
	return e.Cause
}

// Is implements error matching for errors.Is(). A target SeriesError
// matches when its kind matches and every field it sets matches, so the
// predefined sentinels below match any error of their kind.
func (e *SeriesError) Is(target error) bool {
	se, ok := target.(*SeriesError)
	if !ok {
		return false
	}
	if e.Kind != se.Kind {
		return false
	}
	if se.Op != "" && se.Op != e.Op {
		return false
	}
	if se.Arg != "" && se.Arg != e.Arg {
		return false
	}
	if se.Message != "" && se.Message != e.Message {
		return false
	}
	return true
}

// Common error constructors for consistent error creation

// NewInvalidArgumentError creates an error for malformed or out-of-range arguments
func NewInvalidArgumentError(op, arg, message string) *SeriesError {
	return &SeriesError{
		Op:      op,
		Arg:     arg,
		Kind:    KindInvalidArgument,
		Message: message,
	}
}

// NewTypeMismatchError creates an error for values that fail numeric coercion
func NewTypeMismatchError(op, message string) *SeriesError {
	return &SeriesError{
		Op:      op,
		Kind:    KindTypeMismatch,
		Message: message,
	}
}

// NewOperandMismatchError creates an error for operands that are not a Series
func NewOperandMismatchError(op, message string) *SeriesError {
	return &SeriesError{
		Op:      op,
		Kind:    KindOperandMismatch,
		Message: message,
	}
}

// NewEmptySeriesError creates an error for operations that require at least one value
func NewEmptySeriesError(op string) *SeriesError {
	return &SeriesError{
		Op:      op,
		Kind:    KindEmptySeries,
		Message: "operation not supported on an empty Series",
	}
}

// NewInternalError creates an error for internal operation failures
func NewInternalError(op string, cause error) *SeriesError {
	return &SeriesError{
		Op:      op,
		Kind:    KindInvalidArgument,
		Message: "internal error occurred",
		Cause:   cause,
	}
}

// Predefined sentinel values for errors.Is checks; each matches any
// SeriesError of the same kind.
var (
	// ErrInvalidArgument matches validation-gate failures
	ErrInvalidArgument = &SeriesError{Kind: KindInvalidArgument}

	// ErrTypeMismatch matches numeric coercion failures
	ErrTypeMismatch = &SeriesError{Kind: KindTypeMismatch}

	// ErrOperandMismatch matches non-Series operands
	ErrOperandMismatch = &SeriesError{Kind: KindOperandMismatch}

	// ErrEmptySeries matches operations invoked on an empty Series
	ErrEmptySeries = &SeriesError{Kind: KindEmptySeries}
)
