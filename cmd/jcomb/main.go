// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jcomb parses JSON text with the jcomb parser and prints the values
// it finds.
//
// Usage:
//
//	jcomb [flags] [text ...]
//
// Each argument is parsed as a separate input. With no arguments, input is
// read from the file named by --file, or from stdin. With --demo, a built-in
// catalogue of inputs is parsed instead.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jcomb"
	"github.com/creachadair/jcomb/ast/cursor"
	"github.com/tailscale/hujson"
)

// CLI defines the command-line interface.
type CLI struct {
	Demo    bool     `help:"Parse the built-in demonstration inputs."`
	File    string   `help:"Read input from this file (default stdin)." short:"f"`
	JWCC    bool     `name:"jwcc" help:"Convert JWCC input (comments, trailing commas) to plain JSON before parsing."`
	Rest    bool     `help:"Also print the unconsumed text following each value." short:"r"`
	Path    string   `help:"Print only the value at this dot-separated path (e.g. tasks.0)." short:"p"`
	Verbose bool     `help:"Log details of each parse." short:"v"`
	Inputs  []string `arg:"" optional:"" help:"JSON texts to parse."`
}

// errNoValue is reported when one or more inputs did not yield a value.
var errNoValue = errors.New("no value found")

func main() {
	log.SetFlags(0)
	log.SetPrefix("jcomb: ")

	var cli CLI
	kong.Parse(&cli,
		kong.Name("jcomb"),
		kong.Description("Parse JSON text with a combinator parser and print the result."),
		kong.UsageOnError(),
	)
	if err := cli.Execute(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// An input is a named text to be parsed.
type input struct {
	Name string
	Text string
}

// Execute parses the inputs selected by c and writes the results to w. Input is
// read from stdin only when no other source is selected.
func (c *CLI) Execute(stdin io.Reader, w io.Writer) error {
	inputs, err := c.inputs(stdin)
	if err != nil {
		return err
	}
	var failed int
	for _, in := range inputs {
		if !c.parseOne(w, in) {
			failed++
		}
	}
	if failed > 0 && !c.Demo {
		return fmt.Errorf("%d of %d inputs: %w", failed, len(inputs), errNoValue)
	}
	return nil
}

func (c *CLI) inputs(stdin io.Reader) ([]input, error) {
	switch {
	case c.Demo:
		return demoInputs, nil
	case len(c.Inputs) != 0:
		out := make([]input, len(c.Inputs))
		for i, text := range c.Inputs {
			out[i] = input{Name: fmt.Sprintf("arg %d", i+1), Text: text}
		}
		return out, nil
	}

	name, r := "stdin", stdin
	if c.File != "" && c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		name, r = c.File, f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return []input{{Name: name, Text: string(data)}}, nil
}

// parseOne parses a single input and prints its result to w. It reports
// whether a value was found.
func (c *CLI) parseOne(w io.Writer, in input) bool {
	text := in.Text
	if c.JWCC {
		std, err := hujson.Standardize([]byte(text))
		if err != nil {
			log.Printf("%s: invalid JWCC: %v", in.Name, err)
			return false
		}
		text = string(std)
	}

	r := jcomb.ParseResult(text)
	if c.Verbose {
		log.Printf("%s: ok=%v consumed %d of %d bytes", in.Name, r.OK, r.Consumed(text), len(text))
	}
	if c.Demo {
		fmt.Fprintln(w, in.Name)
	}
	if !r.OK {
		fmt.Fprintln(w, "<no value>")
	} else if c.Path != "" {
		cur := cursor.New(r.Value).Down(cursor.ParsePath(c.Path)...)
		if err := cur.Err(); err != nil {
			fmt.Fprintf(w, "<path %q: %v>\n", c.Path, err)
		} else {
			fmt.Fprintln(w, cur.Value())
		}
	} else {
		fmt.Fprintln(w, r.Value)
	}
	if c.Rest {
		fmt.Fprintf(w, "Rest: %q\n", r.Rest)
	}
	if c.Demo {
		fmt.Fprintf(w, "Input: %q\n\n", in.Text)
	}
	return r.OK
}
