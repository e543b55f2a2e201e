// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"github.com/creachadair/jcomb/ast"
	"github.com/creachadair/jcomb/combinator"
)

var topLevel = combinator.First[ast.Value](widen[ast.Object](ParseObject), ParseValue)

// Parse parses a JSON value from the front of text. It reports false if no
// value could be parsed. Any text following the value is ignored.
//
// An object is tried first; if text does not begin with an object, any other
// value is accepted.
func Parse(text string) (ast.Value, bool) {
	r := topLevel(text)
	return r.Value, r.OK
}

// ParseResult parses a JSON value from the front of text as Parse does, but
// returns the complete result including the text that was not consumed.
func ParseResult(text string) combinator.Result[ast.Value] { return topLevel(text) }

// MustParse parses a JSON value from the front of text, and panics if no
// value could be parsed. It is intended for use in tests and initializers.
func MustParse(text string) ast.Value {
	v, ok := Parse(text)
	if !ok {
		panic("jcomb: no value found in input")
	}
	return v
}
