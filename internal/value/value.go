package value

import (
	"encoding/json"
	"strconv"
)

// Value is a sealed interface over the scalar types a filter literal can
// take. Only Null, Bool, Number, and String implement it.
//
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in the query compiler's literal renderer.
type Value interface {
	scalarValue() // Sealed - only types in this package implement it
}

// Null represents the null scalar.
// Using an explicit type ensures all Values satisfy the sealed interface.
type Null struct{}

func (Null) scalarValue() {}

// MarshalJSON implements json.Marshaler for Null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// Bool represents a boolean scalar.
type Bool bool

func (Bool) scalarValue() {}

// Number represents a numeric scalar. Always float64; integral values
// render without a fractional part (see FormatNumber).
type Number float64

func (Number) scalarValue() {}

// String represents a string scalar.
type String string

func (String) scalarValue() {}

// FormatNumber renders a Number in its shortest decimal form:
// 7 renders as "7", 2.3 as "2.3".
func FormatNumber(n Number) string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// FromNative converts a Go scalar to a Value. Unsupported types map to Null.
// Integer widths are widened to Number's float64 representation.
func FromNative(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null{}
	case bool:
		return Bool(val)
	case int:
		return Number(val)
	case int64:
		return Number(val)
	case float64:
		return Number(val)
	case string:
		return String(val)
	default:
		return Null{}
	}
}

// Marshal serializes a Value to JSON bytes.
// Uses type-switch dispatch so each variant has an explicit case.
func Marshal(v Value) ([]byte, error) {
	switch val := v.(type) {
	case Null:
		return []byte("null"), nil
	case Bool:
		return json.Marshal(bool(val))
	case Number:
		return []byte(FormatNumber(val)), nil
	case String:
		return json.Marshal(string(val))
	default:
		// nil Value behaves as null so callers never see an error here
		return []byte("null"), nil
	}
}
