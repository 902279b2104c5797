// Package validation provides the input validation gate for Series
// operations. Every public operation runs its validators before touching
// Series state, so a failed call never leaves a partial mutation behind.
// Small validators cover single conditions and compose through
// CompoundValidator.
package validation

import (
	"fmt"
	"reflect"

	"github.com/go-tabby/tabby/internal/errors"
)

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// IndexValidator validates that an index is an in-range position
type IndexValidator struct {
	index  int
	length int
	op     string
	arg    string
}

// NewIndexValidator creates a validator for positional index arguments
func NewIndexValidator(index, length int, op, arg string) *IndexValidator {
	return &IndexValidator{
		index:  index,
		length: length,
		op:     op,
		arg:    arg,
	}
}

// Validate checks if the index is within [0, length)
func (v *IndexValidator) Validate() error {
	if v.index < 0 || v.index >= v.length {
		message := fmt.Sprintf("index %d out of bounds [0, %d)", v.index, v.length)
		return errors.NewInvalidArgumentError(v.op, v.arg, message)
	}
	return nil
}

// OperandValidator validates that an operand required to be a Series is present
type OperandValidator struct {
	operand any
	op      string
}

// NewOperandValidator creates a validator for Series operands
func NewOperandValidator(operand any, op string) *OperandValidator {
	return &OperandValidator{
		operand: operand,
		op:      op,
	}
}

// Validate checks that the operand is a non-nil Series value. The static
// type system covers the wrong-type arm; what remains representable at
// runtime is a nil operand.
func (v *OperandValidator) Validate() error {
	if v.operand == nil || isNilPointer(v.operand) {
		return errors.NewOperandMismatchError(v.op, "operand must be a Series, got nil")
	}
	return nil
}

// isNilPointer reports whether the value is a typed nil pointer hiding
// inside a non-nil interface.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// NonEmptyValidator validates operations that need at least one value
type NonEmptyValidator struct {
	length int
	op     string
}

// NewNonEmptyValidator creates a validator for non-empty preconditions
func NewNonEmptyValidator(length int, op string) *NonEmptyValidator {
	return &NonEmptyValidator{
		length: length,
		op:     op,
	}
}

// Validate checks that the Series holds at least one value
func (v *NonEmptyValidator) Validate() error {
	if v.length == 0 {
		return errors.NewEmptySeriesError(v.op)
	}
	return nil
}

// CountValidator validates a non-negative count argument
type CountValidator struct {
	count int
	op    string
	arg   string
}

// NewCountValidator creates a validator for count arguments
func NewCountValidator(count int, op, arg string) *CountValidator {
	return &CountValidator{
		count: count,
		op:    op,
		arg:   arg,
	}
}

// Validate checks that the count is not negative
func (v *CountValidator) Validate() error {
	if v.count < 0 {
		message := fmt.Sprintf("count must not be negative, got %d", v.count)
		return errors.NewInvalidArgumentError(v.op, v.arg, message)
	}
	return nil
}

// CompoundValidator combines multiple validators
type CompoundValidator struct {
	validators []Validator
}

// NewCompoundValidator creates a validator that checks multiple conditions
func NewCompoundValidator(validators ...Validator) *CompoundValidator {
	return &CompoundValidator{
		validators: validators,
	}
}

// Validate runs all validators and returns the first error encountered
func (v *CompoundValidator) Validate() error {
	for _, validator := range v.validators {
		if err := validator.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Convenience validation functions

// ValidateIndex is a convenience function for positional index validation
func ValidateIndex(index, length int, op, arg string) error {
	return NewIndexValidator(index, length, op, arg).Validate()
}

// ValidateOperand is a convenience function for Series operand validation
func ValidateOperand(operand any, op string) error {
	return NewOperandValidator(operand, op).Validate()
}

// ValidateNotEmpty is a convenience function for non-empty validation
func ValidateNotEmpty(length int, op string) error {
	return NewNonEmptyValidator(length, op).Validate()
}

// ValidateCount is a convenience function for count validation
func ValidateCount(count int, op, arg string) error {
	return NewCountValidator(count, op, arg).Validate()
}
