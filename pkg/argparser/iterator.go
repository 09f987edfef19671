// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

// Invocation is what an option handler sees for one occurrence of its
// option.
type Invocation[T any] struct {
	// Name is the spelling that matched, e.g. "-o" or "--output".
	Name string
	// Value is the current value of the binding. It is the zero value
	// unless HasValue is set, which happens after the first occurrence.
	Value    T
	HasValue bool
	// Args yields this occurrence's arguments.
	Args *ArgIterator
}

// ArgIterator iterates over the arguments of one option occurrence.
type ArgIterator struct {
	option   string
	argNames []string
	args     []string
	pos      int
}

func newArgIterator(option string, argNames, args []string) *ArgIterator {
	return &ArgIterator{option: option, argNames: argNames, args: args}
}

// HasNext reports whether another argument is available.
func (it *ArgIterator) HasNext() bool {
	return it.pos < len(it.args)
}

// Peek returns the next argument without consuming it.
func (it *ArgIterator) Peek() (string, bool) {
	if !it.HasNext() {
		return "", false
	}
	return it.args[it.pos], true
}

// Next consumes and returns the next argument. It returns an
// *OptionMissingRequiredArgumentError once the arguments are exhausted.
func (it *ArgIterator) Next() (string, error) {
	if !it.HasNext() {
		err := &OptionMissingRequiredArgumentError{Name: it.option}
		if len(it.argNames) > 1 && it.pos < len(it.argNames) {
			err.ArgName = it.argNames[it.pos]
		}
		return "", err
	}
	arg := it.args[it.pos]
	it.pos++
	return arg, nil
}

// Len returns the number of arguments not yet consumed.
func (it *ArgIterator) Len() int {
	return len(it.args) - it.pos
}
