// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jcomb"
	"github.com/creachadair/jcomb/ast"
	"github.com/creachadair/jcomb/ast/cursor"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestCursor(t *testing.T) {
	v := jcomb.MustParse(testJSON)
	root := v.(ast.Object)

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},
		{"BadElement", []any{1.5}, v, true},

		{"ArrayPos", []any{"list", 1},
			root.Find("list").Value.(ast.Array)[1],
			false,
		},
		{"ArrayNeg", []any{"list", -1},
			root.Find("list").Value.(ast.Array)[1],
			false,
		},
		{"ArrayRange", []any{"o", 25},
			root.Find("o").Value,
			true,
		},
		{"ObjPath", []any{"xyz", "d"}, ast.Bool(true), false},
		{"ObjIndex", []any{"xyz", -1}, ast.Bool(false), false},
		{"DeepPath", []any{"list", 0, "x"}, ast.Number(1), false},
		{"KeyOnArray", []any{"o", "x"}, root.Find("o").Value, true},

		{"FuncArray", []any{"o", testPathFunc}, ast.Number(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, ast.Number(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, ast.Bool(true), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Errorf("Down %+v: got %v, want error", tc.path, c.Value())
			}
			got := c.Value()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Down %+v: wrong result (-want, +got):\n%s", tc.path, diff)
			} else if err == nil {
				t.Logf("Found %s OK", got)
			}
		})
	}
}

func TestCursorMoves(t *testing.T) {
	v := jcomb.MustParse(testJSON)
	c := cursor.New(v)
	if !c.AtOrigin() {
		t.Error("New cursor is not at its origin")
	}

	c.Down("y", "hello")
	if got := c.Value(); got != ast.String("there") {
		t.Errorf("Value: got %v, want %q", got, "there")
	}
	if n := len(c.Path()); n != 3 {
		t.Errorf("Path: got %d values, want 3", n)
	}

	c.Up()
	if _, ok := c.Value().(ast.Object); !ok {
		t.Errorf("After Up: got %T, want object", c.Value())
	}
	c.Up().Up()
	if !c.AtOrigin() {
		t.Error("Up did not stop at the origin")
	}

	c.Down("nonesuch")
	if c.Err() == nil {
		t.Error("Down nonesuch: got nil error")
	}
	c.Reset()
	if c.Err() != nil || !c.AtOrigin() {
		t.Errorf("After Reset: err=%v origin=%v", c.Err(), c.AtOrigin())
	}
	if diff := cmp.Diff(v, c.Origin()); diff != "" {
		t.Errorf("Origin (-want, +got):\n%s", diff)
	}
}

func TestPath(t *testing.T) {
	v := jcomb.MustParse(testJSON)

	s, err := cursor.Path[ast.String](v, "o", 0)
	if err != nil {
		t.Fatalf("Path: unexpected error: %v", err)
	} else if s != "hi" {
		t.Errorf("Path: got %q, want hi", s)
	}

	if _, err := cursor.Path[ast.Number](v, "o", 0); err == nil {
		t.Error("Path with wrong type: got nil error")
	}
	if _, err := cursor.Path[ast.Value](v, "list", 9); err == nil {
		t.Error("Path out of range: got nil error")
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		input string
		want  []any
	}{
		{"", nil},
		{"a", []any{"a"}},
		{"list.0.x", []any{"list", 0, "x"}},
		{"o.-1", []any{"o", -1}},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, cursor.ParsePath(test.input)); diff != "" {
			t.Errorf("ParsePath(%q) (-want, +got):\n%s", test.input, diff)
		}
	}
}

func testPathFunc(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case ast.Array:
		return ast.Number(len(t)), nil
	case ast.Object:
		return ast.Number(len(t)), nil
	default:
		return nil, errors.New("not a thing with length")
	}
}
