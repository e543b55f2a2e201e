// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/jcomb/ast"
	"github.com/creachadair/jcomb/combinator"
	"github.com/creachadair/jcomb/internal/token"
	"go4.org/mem"
)

var (
	boolLiteral = combinator.OneOf(token.True, token.False)
	nullLiteral = combinator.Literal(token.Null)
	memberSep   = combinator.Literal(token.MemberSep)
	arraySep    = combinator.Literal(token.ArraySep)

	// valueParser is initialized in init to break the cycle between
	// ParseValue and the composite parsers that call it.
	valueParser combinator.Parser[ast.Value]

	// objectBody parses the interior of an object as a sequence of members.
	objectBody = combinator.SepBy[*ast.Member](token.ObjectSep, ParseMember)
)

func init() {
	valueParser = combinator.First(
		widen[ast.Array](ParseArray),
		widen[ast.Object](ParseObject),
		widen[ast.Bool](ParseBool),
		widen[ast.Null](ParseNull),
		widen[ast.Number](ParseNumber),
		widen[ast.String](ParseString),
	)
}

func widen[T ast.Value](p combinator.Parser[T]) combinator.Parser[ast.Value] {
	return combinator.Transform(p, func(v T) ast.Value { return v })
}

// ParseNull parses the null constant at the front of input.
func ParseNull(input string) combinator.Result[ast.Null] {
	return combinator.Map(nullLiteral(input), func(string) ast.Null { return ast.Null{} })
}

// ParseBool parses a true or false constant at the front of input.
func ParseBool(input string) combinator.Result[ast.Bool] {
	return combinator.Map(boolLiteral(input), func(s string) ast.Bool {
		return ast.Bool(s == token.True)
	})
}

// ParseString parses a quoted string at the front of input. The value is the
// text between the quotes. A quote preceded by an escape marker does not end
// the string; escape markers are otherwise kept as written.
func ParseString(input string) combinator.Result[ast.String] {
	if !strings.HasPrefix(input, token.StringStart) {
		return combinator.Failure[ast.String](input)
	}
	end := stringEnd(input)
	if end < 0 {
		return combinator.Failure[ast.String](input)
	}
	return combinator.Success(
		ast.String(input[len(token.StringStart):end]),
		input[end+len(token.StringEnd):],
	)
}

// stringEnd returns the offset of the closing quote of the string that begins
// input, or -1 if there is none.
func stringEnd(input string) int {
	text := mem.S(input)
	quote, esc := token.StringEnd[0], token.Escape[0]
	for pos := len(token.StringStart); pos < text.Len(); {
		i := mem.IndexByte(text.SliceFrom(pos), quote)
		if i < 0 {
			return -1
		}
		pos += i
		if text.At(pos-1) != esc {
			return pos
		}
		pos++
	}
	return -1
}

// ParseNumber parses an unsigned decimal number at the front of input.
// The number is the longest run of digits and decimal points; signs and
// exponents are not recognized.
func ParseNumber(input string) combinator.Result[ast.Number] {
	end := strings.IndexFunc(input, func(r rune) bool { return !isNumeric(r) })
	if end < 0 {
		end = len(input)
	}
	if end == 0 {
		return combinator.Failure[ast.Number](input)
	}
	return combinator.Success(ast.Number(numericValue(input[:end])), input[end:])
}

func isNumeric(r rune) bool { return r == '.' || ('0' <= r && r <= '9') }

// numericValue converts a run of digits and decimal points to a number.
// Text after a second decimal point is ignored, so "1.2.3" is 1.2.
func numericValue(lit string) float64 {
	parts := strings.SplitN(lit, ".", 3)
	intPart, fracPart := parts[0], ""
	if len(parts) > 1 {
		fracPart = parts[1]
	}
	digits := intPart + fracPart
	if digits == "" {
		return 0
	}

	// Accumulate the digits as a single integer weighted by position, then
	// scale by the number of fraction digits. While the mantissa is exact and
	// the scale is an exact power of ten, the division is correctly rounded.
	const maxMantissa = 1 << 53
	if len(digits) <= 15 && len(fracPart) <= 22 {
		var m uint64
		for i := range len(digits) {
			m = 10*m + uint64(digits[i]-'0')
		}
		if m < maxMantissa {
			return float64(m) / math.Pow10(len(fracPart))
		}
	}

	// Too many digits for an exact mantissa; defer to strconv for rounding.
	v, err := strconv.ParseFloat(intPart+"."+fracPart, 64)
	if err != nil {
		return math.Inf(1) // out of range
	}
	return v
}

// ParseArray parses a bracketed list of values at the front of input.
//
// The closing bracket is located by counting nested brackets, without regard
// to strings, so a bracket inside a string value confuses the search.
// Elements are parsed in order until one fails to parse or is not followed by
// a comma; the elements parsed up to that point are the value.
func ParseArray(input string) combinator.Result[ast.Array] {
	inner, rest, ok := balanced(input, token.ArrayStart, token.ArrayEnd)
	if !ok {
		return combinator.Failure[ast.Array](input)
	}
	arr := ast.Array{}
	for cur := combinator.TrimLeft(inner); cur != ""; {
		elt := valueParser(cur)
		if !elt.OK {
			break
		}
		arr = append(arr, elt.Value)
		sep := arraySep(elt.Rest)
		if !sep.OK {
			break
		}
		cur = combinator.TrimLeft(sep.Rest)
	}
	return combinator.Success(arr, rest)
}

// ParseObject parses a braced collection of members at the front of input.
// Leading whitespace before the opening brace is skipped.
//
// Before the members are parsed, newlines and pairs of spaces are deleted
// from the interior of the object. This includes the contents of strings.
// The closing brace is located as for ParseArray. If a key occurs more than
// once, the last value for the key is kept.
func ParseObject(input string) combinator.Result[ast.Object] {
	inner, rest, ok := balanced(combinator.TrimLeft(input), token.ObjectStart, token.ObjectEnd)
	if !ok {
		return combinator.Failure[ast.Object](input)
	}
	inner = strings.TrimSpace(stripSpace(inner))
	if inner == "" {
		return combinator.Success(ast.Object{}, rest)
	}
	ms := objectBody(inner)
	if !ms.OK {
		return combinator.Failure[ast.Object](input)
	}
	var obj ast.Object
	for _, m := range ms.Value {
		if old := obj.Find(m.Key); old != nil {
			old.Value = m.Value
		} else {
			obj = append(obj, m)
		}
	}
	return combinator.Success(obj, rest)
}

// ParseMember parses a single "key": value pair at the front of input.
func ParseMember(input string) combinator.Result[*ast.Member] {
	key := ParseString(input)
	if !key.OK {
		return combinator.Failure[*ast.Member](input)
	}
	sep := memberSep(key.Rest)
	if !sep.OK {
		return combinator.Failure[*ast.Member](input)
	}
	val := valueParser(combinator.TrimLeft(sep.Rest))
	if !val.OK {
		return combinator.Failure[*ast.Member](input)
	}
	return combinator.Success(ast.Field(string(key.Value), val.Value), val.Rest)
}

// ParseValue parses any JSON value at the front of input. Alternatives are
// tried in the order array, object, Boolean, null, number, string.
func ParseValue(input string) combinator.Result[ast.Value] { return valueParser(input) }

// balanced reports whether input begins with open and contains a matching
// close, counting nested pairs. If so, it returns the text between them and
// the text following close.
func balanced(input, open, close string) (inner, rest string, ok bool) {
	if !strings.HasPrefix(input, open) {
		return "", input, false
	}
	depth := 0
	for i := 0; i < len(input); {
		switch {
		case strings.HasPrefix(input[i:], open):
			depth++
			i += len(open)
		case strings.HasPrefix(input[i:], close):
			depth--
			i += len(close)
			if depth == 0 {
				return input[len(open) : i-len(close)], input[i:], true
			}
		default:
			i++
		}
	}
	return "", input, false
}

var spaceStripper = strings.NewReplacer("\n", "", "  ", "")

// stripSpace deletes newlines and pairs of spaces from s.
func stripSpace(s string) string { return spaceStripper.Replace(s) }
