// Package types defines the core runtime types of the Lox interpreter.
// It implements the Lox dynamic type system: number, string, bool, nil,
// and callable.
package types

import (
	"fmt"
	"math"
	"strconv"
)

// ValueType represents the type of a Lox runtime value.
type ValueType int

const (
	TypeNull     ValueType = iota
	TypeBool               // bool
	TypeNumber             // float64
	TypeString             // string
	TypeCallable           // native or user-defined function
)

// String returns the Lox type name.
func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "nil"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeCallable:
		return "function"
	default:
		return "unknown"
	}
}

// Callable is the contract every invocable Lox value satisfies, whether a
// native function or a user-defined one carrying its closure.
type Callable interface {
	// Arity returns the declared parameter count.
	Arity() int

	// Call invokes the callable with already-evaluated arguments.
	Call(args []Value) (Value, error)

	// String returns the display form, e.g. "<fn add>" or "<native fn clock>".
	String() string
}

// Value represents a Lox runtime value. It uses a tagged union approach:
// every value belongs to exactly one variant.
type Value struct {
	typ         ValueType
	boolVal     bool
	numberVal   float64
	stringVal   string
	callableVal Callable
}

// Null is the singleton nil value.
var Null = Value{typ: TypeNull}

// NewBool creates a boolean value.
func NewBool(v bool) Value {
	return Value{typ: TypeBool, boolVal: v}
}

// NewNumber creates a number value (64-bit float; Lox has one numeric type).
func NewNumber(v float64) Value {
	return Value{typ: TypeNumber, numberVal: v}
}

// NewString creates a string value.
func NewString(v string) Value {
	return Value{typ: TypeString, stringVal: v}
}

// NewCallable wraps a callable as a value.
func NewCallable(v Callable) Value {
	return Value{typ: TypeCallable, callableVal: v}
}

// Type returns the value's type.
func (v Value) Type() ValueType {
	return v.typ
}

// IsNull returns true if the value is nil.
func (v Value) IsNull() bool {
	return v.typ == TypeNull
}

// AsBool returns the boolean value. Panics if not a bool.
func (v Value) AsBool() bool {
	if v.typ != TypeBool {
		panic(fmt.Sprintf("AsBool called on %s value", v.typ))
	}
	return v.boolVal
}

// AsNumber returns the number value. Panics if not a number.
func (v Value) AsNumber() float64 {
	if v.typ != TypeNumber {
		panic(fmt.Sprintf("AsNumber called on %s value", v.typ))
	}
	return v.numberVal
}

// AsString returns the string value. Panics if not a string.
func (v Value) AsString() string {
	if v.typ != TypeString {
		panic(fmt.Sprintf("AsString called on %s value", v.typ))
	}
	return v.stringVal
}

// AsCallable returns the callable value. Panics if not callable.
func (v Value) AsCallable() Callable {
	if v.typ != TypeCallable {
		panic(fmt.Sprintf("AsCallable called on %s value", v.typ))
	}
	return v.callableVal
}

// Truthy returns the truthiness of a value per Lox semantics.
// Only false and nil are falsy; 0 and the empty string are truthy.
func (v Value) Truthy() bool {
	switch v.typ {
	case TypeNull:
		return false
	case TypeBool:
		return v.boolVal
	default:
		return true
	}
}

// Equal tests equality between two values. Nil equals only nil; values of
// different types are never equal; otherwise value equality per type.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case TypeNull:
		return true
	case TypeBool:
		return v.boolVal == other.boolVal
	case TypeNumber:
		return v.numberVal == other.numberVal
	case TypeString:
		return v.stringVal == other.stringVal
	case TypeCallable:
		return v.callableVal == other.callableVal
	}
	return false
}

// String returns the display representation used by print and the REPL.
// Whole numbers print without a trailing decimal point.
func (v Value) String() string {
	switch v.typ {
	case TypeNull:
		return "nil"
	case TypeBool:
		if v.boolVal {
			return "true"
		}
		return "false"
	case TypeNumber:
		if v.numberVal == math.Trunc(v.numberVal) && !math.IsInf(v.numberVal, 0) {
			return strconv.FormatFloat(v.numberVal, 'f', -1, 64)
		}
		return strconv.FormatFloat(v.numberVal, 'g', -1, 64)
	case TypeString:
		return v.stringVal
	case TypeCallable:
		return v.callableVal.String()
	}
	return "<unknown>"
}
