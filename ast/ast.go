// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the values produced by parsing JSON text.
//
// The concrete types Null, Bool, Number, String, Array, and Object are the
// only implementations of Value. Values are built once by the parser and not
// modified afterward; an Array or Object owns its elements.
package ast

import (
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/jcomb/internal/escape"
	"go4.org/mem"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// String renders the value in a compact JSON-like form for display.
	// String contents are rendered as parsed, without re-escaping.
	String() string

	isValue()
}

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// Null represents the null constant.
type Null struct{}

func (Null) String() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// A Number is a non-negative numeric value.
type Number float64

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// Float64 returns n as a float64.
func (n Number) Float64() float64 { return float64(n) }

// IsInt reports whether n has no fractional part.
func (n Number) IsInt() bool { return float64(n) == math.Trunc(float64(n)) }

// A String is the raw text between the quotation marks of a JSON string.
// Escape sequences are retained as written; use Decode to replace them.
type String string

func (s String) String() string { return `"` + string(s) + `"` }

// Decode returns the contents of s with escape sequences replaced by their
// unescaped equivalents. It reports an error for an incomplete escape.
func (s String) Decode() (string, error) {
	dec, err := escape.Decode(mem.S(string(s)))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// An Array is an ordered sequence of values.
type Array []Value

func (a Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// An Object is a collection of key-value members. Keys are unique within an
// object, and members are kept in the order their keys first appeared.
type Object []*Member

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

func (o Object) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) *Member { return &Member{Key: key, Value: value} }

func (m *Member) String() string { return String(m.Key).String() + ":" + m.Value.String() }
