// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape decodes escape sequences in the text of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// ErrIncomplete is reported for an escape sequence truncated by the end of
// the input.
var ErrIncomplete = errors.New("incomplete escape sequence")

var simpleEsc = [...]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Decode replaces the escape sequences in src with the characters they
// denote. The input must not include the enclosing quotation marks.
//
// Unknown escapes and invalid \u sequences are replaced by the Unicode
// replacement rune. Decode reports ErrIncomplete if src ends inside an escape.
func Decode(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, ErrIncomplete
		}

		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(max(n, 1))
		switch {
		case r == 'u':
			if src.Len() < 4 {
				return nil, fmt.Errorf("unicode escape: %w", ErrIncomplete)
			}
			v, ok := parseHex4(src.SliceTo(4))
			if !ok {
				v = utf8.RuneError
			}
			dec = utf8.AppendRune(dec, v)
			src = src.SliceFrom(4)
		case r < rune(len(simpleEsc)) && simpleEsc[r] != 0:
			dec = append(dec, simpleEsc[r])
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}
	}
}

func parseHex4(data mem.RO) (rune, bool) {
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += rune(b - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}
