package dataset

import (
	"strconv"
	"strings"
)

// Kind identifies the runtime type of a cell value.
//
// Design decision: We model cells as an explicit tagged union rather than
// interface{} values because:
// 1. Classification becomes a pure function of the tag (no reflection)
// 2. The set of supported kinds is closed and part of the contract
// 3. Value comparison and coercion rules stay in one place
type Kind int

const (
	// KindNull is the missing-value sentinel. It is distinct from an
	// empty string and from zero.
	KindNull Kind = iota

	// KindBool is a boolean cell value.
	KindBool

	// KindInt is an integer cell value.
	KindInt

	// KindFloat is a floating-point cell value.
	KindFloat

	// KindString is a text cell value.
	KindString
)

// String returns the kind label used in mixed-type findings.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a single typed cell.
// The zero Value is the null sentinel.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Null returns the missing-value sentinel.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean cell value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an integer cell value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a floating-point cell value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// String returns a text cell value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Kind returns the value's runtime kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is the missing sentinel.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Display returns the stringified form of the value.
// This is the representation tested against date and email patterns.
func (v Value) Display() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// Float attempts numeric coercion of the value.
// Integers and floats convert directly, booleans convert to 0/1, and
// strings are parsed as decimal numbers. The second return value is
// false when coercion fails; coercion failures are findings, not errors.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Equal reports whether two cell values are identical.
// Null compares equal to null; values of different kinds never compare
// equal. This is the row-equality rule used by duplicate detection.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	default:
		return false
	}
}

// hashKey returns a collision-free string key for full-row hashing.
// The kind prefix keeps Int(1) and String("1") distinct.
func (v Value) hashKey() string {
	switch v.kind {
	case KindNull:
		return "n"
	case KindBool:
		return "b" + strconv.FormatBool(v.b)
	case KindInt:
		return "i" + strconv.FormatInt(v.i, 10)
	case KindFloat:
		return "f" + strconv.FormatFloat(v.f, 'b', -1, 64)
	case KindString:
		return "s" + v.s
	default:
		return "?"
	}
}
