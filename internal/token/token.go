// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package token defines the literal tokens of the JSON grammar.
package token

// Keyword literals.
const (
	True  = "true"
	False = "false"
	Null  = "null"
)

// String delimiters. A quote preceded by Escape does not end a string.
const (
	StringStart = `"`
	StringEnd   = `"`
	Escape      = `\`
)

// Array punctuation.
const (
	ArrayStart = "["
	ArrayEnd   = "]"
	ArraySep   = ","
)

// Object punctuation.
const (
	ObjectStart = "{"
	ObjectEnd   = "}"
	ObjectSep   = ","
	MemberSep   = ":"
)
