// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

// demoInputs is the catalogue of inputs parsed by --demo.
var demoInputs = []input{
	// Strings
	{"Basic String", `"basic string"`},
	{"Quote String", `"string " with quotes"`},
	{"Escaped String", `"string \" with escape"`},

	// Literals
	{"True Literal", "true asdf"},
	{"False Literal", "false"},
	{"String true", `"true"e asdf`},
	{"Null Literal", `null"e asdf`},

	// Numbers
	{"Decimal Number", "12.34 asdf;lqw"},
	{"Integer number", "123 asdfas"},
	{"All Number", "19265"},
	{"Long Float", "102256.420723"},
	{"Only decimal", ".22"},
	{"No number", "asdfas"},

	// Lists
	{"Basic List", `[1, true, false, "applesauce"] asdf`},
	{"Comma List", `[1, "i want to, confuse ,the s,ystem", false, "applesauce"] asdf`},
	{"Mixed Type Object List", `[2, {"a": "b"}, null]`},
	{"Single List", "[234] asdf"},
	{"Empty List", "[]"},
	{"Nested List End", `[1, "i want to, confuse ,the s,ystem", "applesauce", [true, false, [1, 2, 3]]] asdf`},
	{"Nested List Middle", `[1, "i want to, confuse ,the s,ystem", [true, false, [1, 2, 3]], "applesauce"]`},

	// Objects
	{"Simple object", `{"name": "Joe", "age": 53, "job": "Farmer"}`},
	{"Empty object", "{}"},
	{"1 Element object", `{"a":2}`},
	{"Nested Object", `{"name": "Joe", "age": 53, "job": {"company": "Red Barn Farm", "pay": 12, "tasks": ["clean coop", "collect eggs", "feed chickens"]}}`},
	{"Whitespace tolerant", `{
        "name": "Joe",
        "age": 53,
        "job": {
          "company": "Red Barn Farm",
          "pay": 12,
          "tasks": ["clean coop", "collect eggs", "feed chickens"]
        }
      }
      `},
}
