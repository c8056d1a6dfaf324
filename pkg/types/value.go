// Package types defines the runtime value model for the Slate interpreter:
// nil, bool, number (64-bit float), and string.
package types

import (
	"fmt"
	"strconv"
)

// Kind represents the type of a Slate value.
type Kind int

const (
	KindNull   Kind = iota
	KindBool        // bool
	KindNumber      // float64
	KindString      // string
)

// String returns the Slate type name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value represents a Slate runtime value. It uses a tagged union approach
// so values copy cheaply and never alias.
type Value struct {
	kind    Kind
	boolVal bool
	numVal  float64
	strVal  string
}

// Null is the singleton nil value.
var Null = Value{kind: KindNull}

// NewBool creates a boolean value.
func NewBool(v bool) Value {
	return Value{kind: KindBool, boolVal: v}
}

// NewNumber creates a number value.
func NewNumber(v float64) Value {
	return Value{kind: KindNumber, numVal: v}
}

// NewString creates a string value.
func NewString(v string) Value {
	return Value{kind: KindString, strVal: v}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// AsNumber returns the numeric value. Panics if not a number.
func (v Value) AsNumber() float64 {
	if v.kind != KindNumber {
		panic(fmt.Sprintf("AsNumber called on %s value", v.kind))
	}
	return v.numVal
}

// AsString returns the string value. Panics if not a string.
func (v Value) AsString() string {
	if v.kind != KindString {
		panic(fmt.Sprintf("AsString called on %s value", v.kind))
	}
	return v.strVal
}

// Truthy returns the truthiness of a value. Only nil and false are falsy;
// 0 and the empty string are truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.boolVal
	default:
		return true
	}
}

// Equal tests value equality. Values of different kinds are never equal;
// nil equals only nil.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == other.boolVal
	case KindNumber:
		return v.numVal == other.numVal
	case KindString:
		return v.strVal == other.strVal
	}
	return false
}

// String returns the canonical textual form used by the print statement:
// numbers in minimal decimal notation (no trailing ".0" on integral values),
// nil as "nil", booleans as their keywords, strings verbatim.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "nil"
	case KindBool:
		if v.boolVal {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.numVal, 'g', -1, 64)
	case KindString:
		return v.strVal
	}
	return "<unknown>"
}
