// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import (
	"errors"
	"fmt"
	"io"
)

// UsageExitCode is the exit code suggested for every usage error.
const UsageExitCode = 2

// Sentinel errors for help and version handling.
var (
	// ErrHelp matches a *HelpRequestedError via errors.Is.
	ErrHelp = errors.New("help requested")

	// ErrVersion matches a *VersionRequestedError via errors.Is.
	ErrVersion = errors.New("version requested")
)

// errIncomplete is what Force returns after an earlier call panicked part
// way through parsing.
var errIncomplete = errors.New("argparser: parsing did not complete")

// ConfigError reports programmer misuse of the binding API: malformed or
// duplicate names, invalid arity ranges, or registering after parsing
// began. It is raised with panic at the offending call and is not meant to
// be recovered from.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "argparser: " + e.Msg
}

func configErrorf(format string, args ...any) {
	panic(&ConfigError{Msg: fmt.Sprintf(format, args...)})
}

// UnrecognizedOptionError is returned when an option spelling is not registered.
type UnrecognizedOptionError struct {
	Name string
}

func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("unrecognized option '%s'", e.Name)
}

func (e *UnrecognizedOptionError) ExitCode() int { return UsageExitCode }

// UnexpectedOptionArgumentError is returned when "--name=value" is given for
// an option that takes no arguments.
type UnexpectedOptionArgumentError struct {
	Name string
}

func (e *UnexpectedOptionArgumentError) Error() string {
	return fmt.Sprintf("option '%s' doesn't allow an argument", e.Name)
}

func (e *UnexpectedOptionArgumentError) ExitCode() int { return UsageExitCode }

// OptionMissingRequiredArgumentError is returned when the argument vector
// runs out before an option received all of its arguments. ArgName is only
// set for options taking more than one argument.
type OptionMissingRequiredArgumentError struct {
	Name    string
	ArgName string
}

func (e *OptionMissingRequiredArgumentError) Error() string {
	if e.ArgName == "" {
		return fmt.Sprintf("option '%s' is missing a required argument", e.Name)
	}
	return fmt.Sprintf("option '%s' is missing the required argument %s", e.Name, e.ArgName)
}

func (e *OptionMissingRequiredArgumentError) ExitCode() int { return UsageExitCode }

// MissingRequiredPositionalArgumentError is returned when there are too few
// positional arguments to fill a required slot.
type MissingRequiredPositionalArgumentError struct {
	Name string
}

func (e *MissingRequiredPositionalArgumentError) Error() string {
	return fmt.Sprintf("missing %s operand", e.Name)
}

func (e *MissingRequiredPositionalArgumentError) ExitCode() int { return UsageExitCode }

// UnexpectedPositionalArgumentError is returned when positional arguments
// remain after every slot has been filled. Name is the last slot, if any.
type UnexpectedPositionalArgumentError struct {
	Name string
}

func (e *UnexpectedPositionalArgumentError) Error() string {
	if e.Name == "" {
		return "unexpected argument"
	}
	return fmt.Sprintf("unexpected argument after %s", e.Name)
}

func (e *UnexpectedPositionalArgumentError) ExitCode() int { return UsageExitCode }

// MissingValueError is returned when a required binding was never set.
type MissingValueError struct {
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing %s", e.Name)
}

func (e *MissingValueError) ExitCode() int { return UsageExitCode }

// InvalidArgumentError is returned by transforms and validators. Errors they
// return that are not already parser errors are wrapped in one, so the
// original cause stays reachable through Unwrap.
type InvalidArgumentError struct {
	Msg string
	Err error
}

// InvalidArgument returns an *InvalidArgumentError with a formatted message.
// It is the usual way for a validator to reject a value.
func InvalidArgument(format string, args ...any) error {
	return &InvalidArgumentError{Msg: fmt.Sprintf(format, args...)}
}

func (e *InvalidArgumentError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

func (e *InvalidArgumentError) ExitCode() int { return UsageExitCode }

// HelpRequestedError is returned instead of a value when -h or --help was
// given. It carries everything needed to render the help text.
type HelpRequestedError struct {
	formatter HelpFormatter
	values    []HelpValue
}

func (e *HelpRequestedError) Error() string {
	return ErrHelp.Error()
}

func (e *HelpRequestedError) Is(target error) bool {
	return target == ErrHelp
}

func (e *HelpRequestedError) ExitCode() int { return 0 }

// Text renders the help text.
func (e *HelpRequestedError) Text(programName string, columns int) string {
	return e.formatter.Format(programName, columns, e.values)
}

// PrintUserMessage writes the help text to w.
func (e *HelpRequestedError) PrintUserMessage(w io.Writer, programName string, columns int) {
	io.WriteString(w, e.Text(programName, columns))
}

// VersionRequestedError is returned instead of a value when the version
// option was given.
type VersionRequestedError struct {
	Version string
}

func (e *VersionRequestedError) Error() string {
	return ErrVersion.Error()
}

func (e *VersionRequestedError) Is(target error) bool {
	return target == ErrVersion
}

func (e *VersionRequestedError) ExitCode() int { return 0 }

// PrintUserMessage writes "programName version" to w.
func (e *VersionRequestedError) PrintUserMessage(w io.Writer, programName string, _ int) {
	if programName == "" {
		fmt.Fprintln(w, e.Version)
		return
	}
	fmt.Fprintf(w, "%s %s\n", programName, e.Version)
}

type exitCoder interface {
	ExitCode() int
}

// ExitCode returns the process exit code suggested for err: 0 for nil and
// for help or version requests, 2 for usage errors, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

// wrapInvalid passes parser errors through and wraps everything else from a
// caller-supplied function in an *InvalidArgumentError.
func wrapInvalid(err error) error {
	if err == nil {
		return nil
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		return err
	}
	return &InvalidArgumentError{Msg: err.Error(), Err: err}
}
