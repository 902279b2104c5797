package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeriesErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *SeriesError
		expected string
	}{
		{
			name:     "error with argument name",
			err:      NewInvalidArgumentError("Get", "index", "index 5 out of bounds [0, 3)"),
			expected: "InvalidArgument: Get failed on argument 'index': index 5 out of bounds [0, 3)",
		},
		{
			name:     "error without argument name",
			err:      NewTypeMismatchError("Sum", "value at index 1 is not numeric"),
			expected: "TypeMismatch: Sum failed: value at index 1 is not numeric",
		},
		{
			name:     "operand mismatch",
			err:      NewOperandMismatchError("Concat", "operand must be a Series"),
			expected: "OperandMismatch: Concat failed: operand must be a Series",
		},
		{
			name:     "empty series",
			err:      NewEmptySeriesError("Mean"),
			expected: "EmptySeries: Mean failed: operation not supported on an empty Series",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel *SeriesError
		matches  bool
	}{
		{
			name:     "invalid argument matches its sentinel",
			err:      NewInvalidArgumentError("Set", "index", "out of bounds"),
			sentinel: ErrInvalidArgument,
			matches:  true,
		},
		{
			name:     "type mismatch matches its sentinel",
			err:      NewTypeMismatchError("Round", "not numeric"),
			sentinel: ErrTypeMismatch,
			matches:  true,
		},
		{
			name:     "kinds do not cross-match",
			err:      NewTypeMismatchError("Round", "not numeric"),
			sentinel: ErrInvalidArgument,
			matches:  false,
		},
		{
			name:     "empty series matches its sentinel",
			err:      NewEmptySeriesError("Median"),
			sentinel: ErrEmptySeries,
			matches:  true,
		},
		{
			name:     "operand mismatch matches its sentinel",
			err:      NewOperandMismatchError("Concat", "nil operand"),
			sentinel: ErrOperandMismatch,
			matches:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, stderrors.Is(tt.err, tt.sentinel))
		})
	}
}

func TestSentinelMatchingThroughWrapping(t *testing.T) {
	inner := NewTypeMismatchError("Std", "value 'x' is not numeric")
	wrapped := fmt.Errorf("computing report: %w", inner)

	assert.True(t, stderrors.Is(wrapped, ErrTypeMismatch))
	assert.False(t, stderrors.Is(wrapped, ErrEmptySeries))
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewInternalError("ToCSV", cause)

	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.True(t, stderrors.Is(err, cause))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "InvalidArgument", KindInvalidArgument.String())
	assert.Equal(t, "TypeMismatch", KindTypeMismatch.String())
	assert.Equal(t, "OperandMismatch", KindOperandMismatch.String())
	assert.Equal(t, "EmptySeries", KindEmptySeries.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}
