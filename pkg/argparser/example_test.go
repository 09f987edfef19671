// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser_test

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yeetrun/argparser/pkg/argparser"
)

func Example() {
	args := []string{"-n", "-I", "inc", "-o", "out", "-v", "src1", "src2", "dest"}
	p := argparser.New(args)
	dryRun := argparser.Flagging(p, "dry run", "-n")
	includes := argparser.Adding(p, "include directory", "-I")
	output := argparser.Storing(p, "output file", "-o")
	verbose := argparser.Counting(p, "verbosity", "-v")
	sources := argparser.PositionalList(p, "SOURCE", "", argparser.OneOrMore)
	dest := argparser.Positional(p, "DEST", "")

	if err := p.Force(); err != nil {
		os.Exit(argparser.PrintError(os.Stdout, os.Stderr, "example", 80, err))
	}
	fmt.Println(dryRun.MustValue(), includes.MustValue(), output.MustValue(),
		verbose.MustValue(), sources.MustValue(), dest.MustValue())
	// Output: true [inc] out 1 [src1 src2] dest
}

func ExampleDelegate_AddValidator() {
	p := argparser.New([]string{"--jobs", "0"})
	argparser.StoringFunc(p, "parallel jobs", strconv.Atoi, "-j", "--jobs").
		Default(1).
		AddValidator(func(n int) error {
			if n < 1 {
				return argparser.InvalidArgument("JOBS must be at least 1, got %d", n)
			}
			return nil
		})

	err := p.Force()
	fmt.Println(err, argparser.ExitCode(err))
	// Output: JOBS must be at least 1, got 0 2
}

func ExampleOption() {
	p := argparser.New([]string{"--pair", "a", "b", "--pair", "c", "d"})
	pairs := argparser.Option(p, argparser.OptionConfig{
		Help:     "map SRC to DST",
		ArgNames: []string{"SRC", "DST"},
	}, func(inv *argparser.Invocation[map[string]string]) (map[string]string, error) {
		m := inv.Value
		if m == nil {
			m = make(map[string]string)
		}
		src, err := inv.Args.Next()
		if err != nil {
			return m, err
		}
		dst, err := inv.Args.Next()
		if err != nil {
			return m, err
		}
		m[src] = dst
		return m, nil
	}, "--pair")

	fmt.Println(pairs.MustValue())
	// Output: map[a:b c:d]
}

func ExampleMapping() {
	p := argparser.New([]string{"--json"})
	format := argparser.Mapping(p, "output format",
		argparser.Choice[string]{Name: "--text", Value: "text"},
		argparser.Choice[string]{Name: "--json", Value: "json"},
	).Default("text")

	fmt.Println(format.MustValue(), format.ErrorName())
	// Output: json --text|--json
}
