package series

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/go-tabby/tabby/internal/value"
)

// ToArrow exports the Series as an Apache Arrow array. When every
// non-missing value is numeric-coercible the result is a Float64 array
// with missing values as nulls; otherwise the values are formatted into a
// String array. The caller owns the returned array and must Release it.
func (s *Series) ToArrow(mem memory.Allocator) arrow.Array {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	if s.allNumeric() {
		builder := array.NewFloat64Builder(mem)
		defer builder.Release()
		for _, v := range s.values {
			if value.IsNA(v) {
				builder.AppendNull()
				continue
			}
			f, _ := value.ToFloat(v)
			builder.Append(f)
		}
		return builder.NewArray()
	}

	builder := array.NewStringBuilder(mem)
	defer builder.Release()
	for _, v := range s.values {
		if value.IsNA(v) {
			builder.AppendNull()
			continue
		}
		builder.Append(value.Format(v))
	}
	return builder.NewArray()
}

func (s *Series) allNumeric() bool {
	for _, v := range s.values {
		if value.IsNA(v) {
			continue
		}
		if _, ok := value.ToFloat(v); !ok {
			return false
		}
	}
	return true
}

// FromArrow imports an Arrow array through standard constructor coercion.
// Nulls become missing values.
func FromArrow(arr arrow.Array, opts ...Option) (*Series, error) {
	values := make([]any, arr.Len())

	appendValues := func(get func(int) any) {
		for i := 0; i < arr.Len(); i++ {
			if arr.IsNull(i) {
				values[i] = nil
				continue
			}
			values[i] = get(i)
		}
	}

	switch typed := arr.(type) {
	case *array.Float64:
		appendValues(func(i int) any { return typed.Value(i) })
	case *array.Float32:
		appendValues(func(i int) any { return float64(typed.Value(i)) })
	case *array.Int64:
		appendValues(func(i int) any { return float64(typed.Value(i)) })
	case *array.Int32:
		appendValues(func(i int) any { return float64(typed.Value(i)) })
	case *array.String:
		appendValues(func(i int) any { return typed.Value(i) })
	case *array.Boolean:
		appendValues(func(i int) any { return typed.Value(i) })
	default:
		return nil, fmt.Errorf("unsupported arrow array type: %s", arr.DataType().Name())
	}

	return New(values, opts...), nil
}
