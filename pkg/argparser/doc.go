// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argparser parses command-line arguments into typed, lazily
// resolved values.
//
// A program declares its options and positional arguments against a Parser.
// Each declaration returns a *Delegate whose value is resolved on first
// read: the first read (or an explicit Force) scans the whole argument
// vector once, fills every binding, checks that required bindings were set
// and runs validators. Later reads return the cached values.
//
// # Basic Usage
//
//	p := argparser.New(os.Args[1:], argparser.WithHelpFormatter(helpfmt.New("", "")))
//	dryRun := argparser.Flagging(p, "only print what would happen", "-n", "--dry-run")
//	includes := argparser.Adding(p, "add a search directory", "-I", "--include")
//	output := argparser.Storing(p, "write output here", "-o", "--output")
//	verbose := argparser.Counting(p, "more output", "-v", "--verbose")
//	sources := argparser.PositionalList(p, "SOURCE", "files to copy", argparser.OneOrMore)
//	dest := argparser.Positional(p, "DEST", "destination")
//
//	if err := p.Force(); err != nil {
//	    os.Exit(argparser.PrintError(os.Stdout, os.Stderr, "cp", argparser.TerminalColumns(), err))
//	}
//	fmt.Println(dryRun.MustValue(), includes.MustValue(), output.MustValue(),
//	    verbose.MustValue(), sources.MustValue(), dest.MustValue())
//
// # Option Syntax
//
// Long options are spelled --name and take arguments as --name=value or as
// following tokens. Short options are spelled -x and may be clustered:
// -abc is -a -b -c. A short option that takes an argument uses the rest of
// its cluster as that argument, so -ofile and -o file are the same; -o=file
// gives the argument "=file". The token "--" ends option scanning.
//
// In GNU mode (the default) options and positional arguments may be mixed.
// In POSIX mode the first positional argument ends option scanning.
//
// # Positional Arguments
//
// Positional tokens are handed to the declared slots in order. Each slot
// gets its minimum first; any extra tokens go to the earliest slots that can
// take more. With SOURCE taking one or more and DEST taking exactly one,
// "a b c" gives SOURCE=[a b] and DEST=c.
//
// # Defaults and Validation
//
// Default wraps a delegate so that it yields a fallback value when unset;
// such bindings are never reported missing. Validators run after a
// successful scan, in registration order. A validator must be added after
// the default it should see; adding a default to a delegate that already has
// validators panics.
//
// # Errors
//
// Scanning and validation report typed errors (*UnrecognizedOptionError,
// *MissingValueError, ...) that carry a suggested exit code, available via
// ExitCode. Help and version requests are reported as *HelpRequestedError
// and *VersionRequestedError, which match ErrHelp and ErrVersion with
// errors.Is. Misuse of the declaration API, such as a duplicate option name,
// panics with a *ConfigError.
//
// A Parser is not safe for concurrent use.
package argparser
