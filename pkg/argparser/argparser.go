// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import (
	"slices"

	"tailscale.com/types/lazy"
	"tailscale.com/types/logger"
	"tailscale.com/util/set"
)

// Mode selects how options and positional arguments may be interleaved.
type Mode int

const (
	// GNU allows options anywhere in the argument vector.
	GNU Mode = iota
	// POSIX stops option scanning at the first positional argument.
	POSIX
)

func (m Mode) String() string {
	switch m {
	case GNU:
		return "GNU"
	case POSIX:
		return "POSIX"
	default:
		return "Mode(?)"
	}
}

// ParserOption configures a Parser in New.
type ParserOption func(*Parser)

// WithMode sets the scanning mode. The default is GNU.
func WithMode(m Mode) ParserOption {
	return func(p *Parser) { p.mode = m }
}

// WithHelpFormatter registers -h and --help. When either is given, reading
// any value returns a *HelpRequestedError that renders help with f.
func WithHelpFormatter(f HelpFormatter) ParserOption {
	return func(p *Parser) { p.helpFormatter = f }
}

// WithVersion registers a version option. When it is given, reading any
// value returns a *VersionRequestedError. The option is spelled -v and
// --version unless names are supplied.
func WithVersion(version string, names ...string) ParserOption {
	return func(p *Parser) {
		p.version = version
		p.versionNames = names
	}
}

// WithLogf sets a trace logger that receives one line per scanned token and
// per positional slot allocation.
func WithLogf(logf logger.Logf) ParserOption {
	return func(p *Parser) { p.logf = logf }
}

// Parser scans a fixed argument vector against a set of registered
// bindings. Bindings are registered with the package-level constructors
// (Flagging, Storing, Positional, ...). The first Force, or the first read of
// any bound value, scans the arguments and validates every binding; later
// reads return the cached result.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	args          []string
	mode          Mode
	logf          logger.Logf
	helpFormatter HelpFormatter
	version       string
	versionNames  []string

	shortOptions map[rune]optionBinding
	longOptions  map[string]optionBinding
	bindings     []binding // registration order
	slots        []*posSlot
	slotNames    set.Set[string]

	started      bool // registration is closed once set
	inParse      bool
	inValidation bool
	finished     bool
	err          error
	scanned      lazy.GValue[error]
}

// New returns a Parser for args, which should not include the program name
// (os.Args[1:]).
func New(args []string, opts ...ParserOption) *Parser {
	p := &Parser{
		args: slices.Clone(args),
		mode: GNU,
		logf: logger.Discard,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logf == nil {
		p.logf = logger.Discard
	}
	if p.helpFormatter != nil {
		p.registerHelp()
	}
	if p.version != "" {
		p.registerVersion()
	}
	return p
}

// Mode returns the scanning mode.
func (p *Parser) Mode() Mode {
	return p.mode
}

func (p *Parser) registerHelp() {
	Option(p, OptionConfig{
		Help:      "show this help message and exit",
		ErrorName: "HELP",
	}, func(*Invocation[struct{}]) (struct{}, error) {
		return struct{}{}, &HelpRequestedError{formatter: p.helpFormatter, values: p.HelpValues()}
	}, "-h", "--help").Default(struct{}{})
}

func (p *Parser) registerVersion() {
	names := p.versionNames
	if len(names) == 0 {
		names = []string{"-v", "--version"}
	}
	Option(p, OptionConfig{
		Help:      "show program version and exit",
		ErrorName: "VERSION",
	}, func(*Invocation[struct{}]) (struct{}, error) {
		return struct{}{}, &VersionRequestedError{Version: p.version}
	}, names...).Default(struct{}{})
}

// Force scans the arguments and validates all bindings, if that has not
// happened yet, and returns the outcome. Only the first call does any work;
// later calls return the same error. Calls made while scanning or validating
// (for example from a validator reading another binding) return nil
// immediately.
func (p *Parser) Force() error {
	if p.inParse || p.inValidation {
		return nil
	}
	if p.finished {
		return p.err
	}
	p.started = true
	defer func() {
		p.inParse, p.inValidation = false, false
		if !p.finished {
			// A handler, transform or validator panicked.
			p.finished = true
			p.err = errIncomplete
		}
	}()

	p.inParse = true
	err := p.scanned.Get(p.parseArgs)
	p.inParse = false

	if err == nil {
		p.inValidation = true
		err = p.validate()
		p.inValidation = false
	}
	p.finished = true
	p.err = err
	return err
}

// validate reports the first binding without a value, then runs validators
// in registration order.
func (p *Parser) validate() error {
	for _, b := range p.bindings {
		if !b.hasValue() {
			return &MissingValueError{Name: b.errorName()}
		}
	}
	for _, b := range p.bindings {
		if err := b.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) checkNotParsed() {
	if p.started {
		configErrorf("cannot register bindings after parsing has started")
	}
}
