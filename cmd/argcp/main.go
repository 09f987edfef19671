// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The argcp command copies, moves or links files. It exists to exercise
// the argparser package end to end.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/yeetrun/argparser/pkg/argparser"
	"github.com/yeetrun/argparser/pkg/conv"
	"github.com/yeetrun/argparser/pkg/helpfmt"
	"tailscale.com/util/must"
)

const programName = "argcp"

var version = must.Get(conv.Semver("0.3.1")).String()

const (
	prologue = "Copy, move or link each SOURCE to DEST. With more than one SOURCE, DEST must be a directory."
	epilogue = "A SOURCE that does not exist relative to the working directory is looked up in each -I directory in order. Set ARGCP_TRACE=1 to trace argument parsing."
)

type operation int

const (
	opCopy operation = iota
	opMove
	opLink
)

func (o operation) String() string {
	switch o {
	case opCopy:
		return "copy"
	case opMove:
		return "move"
	case opLink:
		return "link"
	default:
		return fmt.Sprintf("operation(%d)", int(o))
	}
}

// config is the resolved command line.
type config struct {
	dryRun   bool
	includes []string
	output   string
	verbose  int
	op       operation
	format   string
	sources  []string
	dest     string
}

func parseArgs(args []string, logf func(string, ...any)) (*config, error) {
	opts := []argparser.ParserOption{
		argparser.WithHelpFormatter(helpfmt.New(prologue, epilogue)),
		argparser.WithVersion(version, "--version"),
	}
	if logf != nil {
		opts = append(opts, argparser.WithLogf(logf))
	}
	p := argparser.New(args, opts...)

	dryRun := argparser.Flagging(p, "print what would be done without touching any file", "-n", "--dry-run")
	includes := argparser.Adding(p, "also look for sources in DIR", "-I", "--include")
	output := argparser.Storing(p, "write the report to OUTPUT, or to stdout for -", "-o", "--output")
	verbose := argparser.Counting(p, "log each file as it is handled; repeat for more detail", "-v", "--verbose")
	op := argparser.Mapping(p, "what to do with each source (default --copy)",
		argparser.Choice[operation]{Name: "--copy", Value: opCopy},
		argparser.Choice[operation]{Name: "--move", Value: opMove},
		argparser.Choice[operation]{Name: "--link", Value: opLink},
	).Default(opCopy)
	format := argparser.StoringFunc(p, "report format: text, json, yaml or toml",
		conv.OneOf("text", "json", "yaml", "toml"), "--format").Default("text")
	sources := argparser.PositionalList(p, "SOURCE", "files to transfer", argparser.OneOrMore)
	dest := argparser.Positional(p, "DEST", "destination file or directory")

	includes.AddValidator(func(dirs []string) error {
		for _, dir := range dirs {
			if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
				return argparser.InvalidArgument("include directory %q is not a directory", dir)
			}
		}
		return nil
	})

	if err := p.Force(); err != nil {
		return nil, err
	}
	return &config{
		dryRun:   dryRun.MustValue(),
		includes: includes.MustValue(),
		output:   output.MustValue(),
		verbose:  verbose.MustValue(),
		op:       op.MustValue(),
		format:   format.MustValue(),
		sources:  sources.MustValue(),
		dest:     dest.MustValue(),
	}, nil
}

func run(args []string, stdout io.Writer) error {
	var logf func(string, ...any)
	if os.Getenv("ARGCP_TRACE") != "" {
		logf = log.Printf
	}
	cfg, err := parseArgs(args, logf)
	if err != nil {
		return err
	}

	steps, err := planSteps(cfg)
	if err != nil {
		return err
	}
	r := &report{
		RunID:  uuid.NewString(),
		Op:     cfg.op.String(),
		DryRun: cfg.dryRun,
		Steps:  steps,
	}
	if !cfg.dryRun {
		for _, st := range steps {
			if cfg.verbose > 0 {
				log.Printf("%s %s -> %s", cfg.op, st.Source, st.Dest)
			}
			if err := transfer(cfg.op, st.Source, st.Dest); err != nil {
				return fmt.Errorf("%s %s: %w", cfg.op, st.Source, err)
			}
		}
	}

	w := stdout
	if cfg.output != "-" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if cfg.verbose > 1 {
		log.Printf("writing %s report for run %s", cfg.format, r.RunID)
	}
	return writeReport(w, cfg.format, r)
}

// planSteps resolves every source and its final destination path.
func planSteps(cfg *config) ([]step, error) {
	destIsDir := false
	if fi, err := os.Stat(cfg.dest); err == nil && fi.IsDir() {
		destIsDir = true
	}
	if len(cfg.sources) > 1 && !destIsDir {
		return nil, fmt.Errorf("target %q is not a directory", cfg.dest)
	}

	steps := make([]step, 0, len(cfg.sources))
	for _, name := range cfg.sources {
		src, err := resolveSource(name, cfg.includes)
		if err != nil {
			return nil, err
		}
		dst := cfg.dest
		if destIsDir {
			dst = filepath.Join(cfg.dest, filepath.Base(src))
		}
		steps = append(steps, step{Source: src, Dest: dst})
	}
	return steps, nil
}

// resolveSource finds name relative to the working directory, or else in
// the first include directory that has it.
func resolveSource(name string, includes []string) (string, error) {
	if _, err := os.Lstat(name); err == nil || filepath.IsAbs(name) {
		return name, nil
	}
	for _, dir := range includes {
		p := filepath.Join(dir, name)
		if _, err := os.Lstat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("cannot stat %q: no such file", name)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(programName + ": ")
	argparser.Main(programName, func() error {
		return run(os.Args[1:], os.Stdout)
	})
}
