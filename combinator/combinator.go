// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package combinator implements a small set of parser combinators over text.
//
// A Parser consumes a prefix of its input and reports a Result. Failure is an
// ordinary outcome, not an error: a failed Result carries no value, and its
// remainder is the input exactly as the parser received it. A successful
// Result carries a value and the unconsumed suffix of the input.
//
// Parsers are pure functions of their input and are safe for concurrent use.
package combinator

import (
	"strings"
	"unicode"

	"go4.org/mem"
)

// A Result is the outcome of applying a parser to an input.
type Result[T any] struct {
	Value T      // the parsed value; the zero value if !OK
	Rest  string // the unconsumed suffix of the input
	OK    bool   // whether parsing succeeded
}

// Success returns a successful result with value v and remainder rest.
func Success[T any](v T, rest string) Result[T] {
	return Result[T]{Value: v, Rest: rest, OK: true}
}

// Failure returns a failed result for the given input. The remainder of a
// failed result is always the complete input.
func Failure[T any](input string) Result[T] { return Result[T]{Rest: input} }

// Consumed reports how many bytes of input were consumed to produce r.
func (r Result[T]) Consumed(input string) int { return len(input) - len(r.Rest) }

// A Parser parses a prefix of its input.
type Parser[T any] func(input string) Result[T]

// Map applies f to the value of r if r is successful. The remainder of r is
// preserved either way, and a failed result is returned with its new type.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.OK {
		return Result[U]{Rest: r.Rest}
	}
	return Success(f(r.Value), r.Rest)
}

// Transform returns a parser that applies p and maps its value through f.
func Transform[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input string) Result[U] { return Map(p(input), f) }
}

// Literal returns a parser that matches lit exactly at the start of its input.
// The matched value is lit itself.
func Literal(lit string) Parser[string] {
	want := mem.S(lit)
	return func(input string) Result[string] {
		if !mem.HasPrefix(mem.S(input), want) {
			return Failure[string](input)
		}
		return Success(lit, input[len(lit):])
	}
}

// OneOf returns a parser that tries each of the given literals in order and
// reports the first that matches. The first match wins even if a later literal
// would consume more of the input, so the caller must order lits so that no
// literal is shadowed by a prefix of itself.
func OneOf(lits ...string) Parser[string] {
	ps := make([]Parser[string], len(lits))
	for i, lit := range lits {
		ps[i] = Literal(lit)
	}
	return First(ps...)
}

// First returns a parser that applies each of ps to the same input, in order,
// and reports the first successful result. If none succeeds, the parse fails.
func First[T any](ps ...Parser[T]) Parser[T] {
	return func(input string) Result[T] {
		for _, p := range ps {
			if r := p(input); r.OK {
				return r
			}
		}
		return Failure[T](input)
	}
}

// Many returns a parser that applies p repeatedly, each time to the remainder
// of the previous match, until p fails. The values are reported in order.
//
// Many always succeeds, possibly with no values. Its remainder is the text
// left after the last successful match, which is the input p failed on.
// If p succeeds without consuming input, Many stops after that match.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(input string) Result[[]T] {
		var vs []T
		rest := input
		for {
			r := p(rest)
			if !r.OK {
				return Success(vs, rest)
			}
			vs = append(vs, r.Value)
			if len(r.Rest) == len(rest) {
				return Success(vs, rest)
			}
			rest = r.Rest
		}
	}
}

// SepBy returns a parser for one or more values parsed by p, separated by the
// delimiter literal delim. The delimiter must immediately follow each value;
// whitespace following a delimiter is ignored.
//
// Parsing stops when the delimiter is absent or p fails after a delimiter; in
// the latter case the delimiter is not consumed. If the first value fails to
// parse, the whole parse fails.
func SepBy[T any](delim string, p Parser[T]) Parser[[]T] {
	sep := Literal(delim)
	next := Parser[T](func(input string) Result[T] {
		d := sep(input)
		if !d.OK {
			return Failure[T](input)
		}
		r := p(TrimLeft(d.Rest))
		if !r.OK {
			return Failure[T](input)
		}
		return r
	})
	more := Many(next)
	return func(input string) Result[[]T] {
		first := p(input)
		if !first.OK {
			return Failure[[]T](input)
		}
		tail := more(first.Rest)
		return Success(append([]T{first.Value}, tail.Value...), tail.Rest)
	}
}

// TrimLeft returns s without its leading whitespace. Only leading space is
// removed, so that the result remains a suffix of s.
func TrimLeft(s string) string { return strings.TrimLeftFunc(s, unicode.IsSpace) }
