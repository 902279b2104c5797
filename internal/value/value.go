// Package value holds the dynamic value model shared by the Series core:
// the numeric coercion strategy, missing-value classification, truthiness,
// deep copying and text formatting. Values live in []any storage and are
// one of float64, string, bool, nil, []any or map[string]any; all numeric
// types normalize to float64 on the way in.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coercer is a pure, injectable coercion strategy applied element-wise at
// construction time. It returns either the input unchanged or its coerced
// replacement.
type Coercer func(v any) any

// TryCoerceNumeric is the default Coercer: a non-bool value whose textual
// form parses as a finite number is replaced by its float64 value;
// everything else (non-numeric strings, bools, nil, nested structures) is
// preserved as-is. nil is a missing-value sentinel and is never coerced.
func TryCoerceNumeric(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case bool:
		return x
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return x
		}
		return f
	default:
		return v
	}
}

// Identity is a Coercer that preserves every value unchanged. Useful when
// a caller wants raw storage without numeric normalization.
func Identity(v any) any {
	return v
}

// IsNA reports whether a value is classified as missing: nil or a
// floating-point NaN.
func IsNA(v any) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(float64); ok {
		return math.IsNaN(f)
	}
	return false
}

// Truthy reports loose truthiness: nil, false, zero, NaN and the empty
// string are falsy, everything else is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	default:
		return true
	}
}

// ToFloat applies loose numeric coercion for aggregation preconditions:
// numbers pass through, bools count as 1/0, nil counts as 0, and strings
// parse when their trimmed form is a number (the empty string counts as
// 0). Nested structures and non-numeric strings fail.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case float64:
		if math.IsNaN(x) {
			return 0, false
		}
		return x, true
	case string:
		trimmed := strings.TrimSpace(x)
		if trimmed == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// NumericView coerces every element to float64 in order. On success it
// returns the coerced view and -1; otherwise it returns nil and the index
// of the first element that fails coercion.
func NumericView(values []any) ([]float64, int) {
	view := make([]float64, len(values))
	for i, v := range values {
		f, ok := ToFloat(v)
		if !ok {
			return nil, i
		}
		view[i] = f
	}
	return view, -1
}

// DeepCopy copies a value recursively so nested slices and maps are not
// aliased with caller-owned data. Scalars are returned as-is.
func DeepCopy(v any) any {
	switch x := v.(type) {
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = DeepCopy(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = DeepCopy(e)
		}
		return out
	default:
		return v
	}
}

// Format renders a value for CSV lines and table cells. Missing values
// render as the empty string, floats in shortest round-trip form.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		if math.IsNaN(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// Key renders a value as a loose grouping key: numeric 1 and the string
// "1" collide deliberately. Missing values get a distinct key so they
// never collide with the empty string.
func Key(v any) string {
	if v == nil {
		return "\x00null"
	}
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return "\x00nan"
	}
	return Format(v)
}
