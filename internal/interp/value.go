// Package interp evaluates lox expression trees.
package interp

import (
	"math"
	"strconv"
)

// Value is a runtime value: Number, Text, Bool or Nil.
type Value interface {
	String() string // display form
	aValue()
}

// Number is a 64-bit float.
type Number float64

// Text is a string value.
type Text string

// Bool is a boolean value.
type Bool bool

// Nil is the absence of a value.
type Nil struct{}

func (Number) aValue() {}
func (Text) aValue()   {}
func (Bool) aValue()   {}
func (Nil) aValue()    {}

// String prints integral values without a fraction ("3"), other values in
// the shortest form that reads back exactly, and "inf", "-inf" and "NaN"
// for the non-finite results of float arithmetic.
func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (t Text) String() string { return string(t) }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (Nil) String() string { return "nil" }

// TypeName returns the lox name of v's type.
func TypeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case Text:
		return "string"
	case Bool:
		return "boolean"
	case Nil:
		return "nil"
	}
	return "unknown"
}

// Truthy reports whether v counts as true: everything except false and nil.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(v)
	}
	return true
}
