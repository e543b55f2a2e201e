// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

func mustParseFlags(t *testing.T, args ...string) *CLI {
	t.Helper()
	var cli CLI
	k, err := kong.New(&cli, kong.Name("jcomb"))
	if err != nil {
		t.Fatalf("New parser: %v", err)
	}
	if _, err := k.Parse(args); err != nil {
		t.Fatalf("Parse %q: %v", args, err)
	}
	return &cli
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cli := mustParseFlags(t, args...)
	var out strings.Builder
	err := cli.Execute(strings.NewReader(stdin), &out)
	return out.String(), err
}

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Object", []string{`{"a":2}`}, "{\"a\":2}\n"},
		{"Several", []string{"true asdf", "[1, [2, 3], 4]"}, "true\n[1,[2,3],4]\n"},
		{"Rest", []string{"--rest", `null"e asdf`}, "null\nRest: \"\\\"e asdf\"\n"},
		{"Path", []string{"-p", "job.tasks.-1", `{"job": {"tasks": ["a", "b"]}}`}, "\"b\"\n"},
		{"BadPath", []string{"--path", "nope", `{"a": 1}`}, "<path \"nope\": key \"nope\" not found>\n"},
		{"JWCC", []string{"--jwcc", `{"a": [1, 2,], /* note */ "b": true,}`}, "{\"a\":[1,2],\"b\":true}\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runCLI(t, "", tc.args...)
			if err != nil {
				t.Fatalf("Execute: unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Output (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNoValue(t *testing.T) {
	got, err := runCLI(t, "", "[1]", "asdfas")
	if !errors.Is(err, errNoValue) {
		t.Errorf("Execute: got error %v, want %v", err, errNoValue)
	}
	if want := "[1]\n<no value>\n"; got != want {
		t.Errorf("Output: got %q, want %q", got, want)
	}
}

func TestStdin(t *testing.T) {
	got, err := runCLI(t, "{\n  \"k\": [true, null]\n}\n")
	if err != nil {
		t.Fatalf("Execute: unexpected error: %v", err)
	}
	if want := "{\"k\":[true,null]}\n"; got != want {
		t.Errorf("Output: got %q, want %q", got, want)
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(`{"name": "Joe", "age": 53}`), 0600); err != nil {
		t.Fatalf("Write input: %v", err)
	}
	got, err := runCLI(t, "ignored", "--file", path, "--path", "age")
	if err != nil {
		t.Fatalf("Execute: unexpected error: %v", err)
	}
	if got != "53\n" {
		t.Errorf("Output: got %q, want %q", got, "53\n")
	}

	if _, err := runCLI(t, "", "--file", filepath.Join(t.TempDir(), "nonesuch")); err == nil {
		t.Error("Missing file: got nil error")
	}
}

func TestDemo(t *testing.T) {
	got, err := runCLI(t, "", "--demo")
	if err != nil {
		t.Fatalf("Execute: unexpected error: %v", err)
	}
	for _, want := range []string{
		"Escaped String\n\"string \\\" with escape\"\n",
		"Null Literal\nnull\n",
		"No number\n<no value>\n",
		"Nested List Middle\n[1,\"i want to, confuse ,the s,ystem\",[true,false,[1,2,3]],\"applesauce\"]\n",
		"Whitespace tolerant\n{\"name\":\"Joe\",\"age\":53,\"job\":{\"company\":\"Red Barn Farm\",\"pay\":12," +
			"\"tasks\":[\"clean coop\",\"collect eggs\",\"feed chickens\"]}}\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Demo output is missing %q", want)
		}
	}
	if n := strings.Count(got, "Input: "); n != len(demoInputs) {
		t.Errorf("Demo printed %d inputs, want %d", n, len(demoInputs))
	}
}
