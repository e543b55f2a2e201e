// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jcomb implements a JSON parser built from parser combinators.
//
// # Parsing
//
// Call Parse to parse a value from the front of a string:
//
//	v, ok := jcomb.Parse(`{"name": "Joe", "tasks": ["clean coop"]}`)
//	if !ok {
//	   log.Fatal("No value")
//	}
//	log.Printf("Parsed: %v", v)
//
// The result is an ast.Value, one of ast.Null, ast.Bool, ast.Number,
// ast.String, ast.Array, or ast.Object. Text following the value is ignored;
// use ParseResult to recover it.
//
// # Grammar
//
// Each kind of value has its own parsing function (ParseNull, ParseBool,
// ParseNumber, ParseString, ParseArray, ParseObject, ParseMember), and
// ParseValue dispatches among them. These functions report a
// combinator.Result, which carries either a value and the unconsumed input,
// or failure with the input untouched. There are no error messages.
//
// The grammar is a subset of JSON:
//
//   - Numbers are unsigned decimals, with an optional fraction and no exponent.
//   - Strings keep their escape sequences as written. A quotation mark ends a
//     string unless it follows a backslash. Use ast.String.Decode to replace
//     escape sequences.
//   - Arrays and objects are delimited by counting nested brackets or braces.
//     Brackets and braces inside strings are not skipped.
//   - Newlines and pairs of spaces are deleted inside objects, including inside
//     strings, before their members are parsed.
//   - Comments and trailing commas are not accepted.
//
// # Limits
//
// Arrays and objects are parsed recursively. Very deeply nested input may
// exhaust the stack; no depth limit is enforced.
package jcomb
