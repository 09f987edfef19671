// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import (
	"slices"
	"strings"
)

// OptionConfig describes an option for Option.
type OptionConfig struct {
	Help string
	// ErrorName names the option in error messages. It defaults to the
	// first long name, or else the first name, upper-cased without leading
	// hyphens and with '-' replaced by '_'.
	ErrorName string
	// ArgNames names each argument the option takes; its length is the
	// number of arguments consumed per occurrence.
	ArgNames []string
	// Repeating marks an option that is meant to be given more than once.
	// It only affects help.
	Repeating bool
}

// Option registers a generic option spelled by names. Each occurrence calls
// handler with the current value and the occurrence's arguments, and the
// returned value becomes the new value. All other option constructors are
// built on Option.
//
// Option panics with a *ConfigError if a name is malformed or already
// registered, or if parsing has already started.
func Option[T any](p *Parser, cfg OptionConfig, handler func(*Invocation[T]) (T, error), names ...string) *Delegate[T] {
	p.checkNotParsed()
	if len(names) == 0 {
		configErrorf("need at least one option name")
	}
	errName := cfg.ErrorName
	if errName == "" {
		errName = optionToValueName(selectRepresentativeName(names))
	}
	o := &optionDelegate[T]{
		names:     slices.Clone(names),
		argNames:  slices.Clone(cfg.ArgNames),
		help:      cfg.Help,
		errName:   errName,
		repeating: cfg.Repeating,
		handler:   handler,
	}
	for _, name := range names {
		p.registerOption(name, o)
	}
	return register[T](p, o, nil)
}

// Flagging registers an option without arguments that is true when given
// and false otherwise.
func Flagging(p *Parser, help string, names ...string) *Delegate[bool] {
	return Option(p, OptionConfig{Help: help}, func(*Invocation[bool]) (bool, error) {
		return true, nil
	}, names...).Default(false)
}

// Counting registers an option without arguments that counts how many times
// it was given, e.g. -vvv.
func Counting(p *Parser, help string, names ...string) *Delegate[int] {
	return Option(p, OptionConfig{Help: help, Repeating: true}, func(inv *Invocation[int]) (int, error) {
		return inv.Value + 1, nil
	}, names...).Default(0)
}

// Storing registers an option with one argument, keeping the argument of
// the last occurrence. It is required unless given a default.
func Storing(p *Parser, help string, names ...string) *Delegate[string] {
	return StoringFunc(p, help, identity, names...)
}

// StoringFunc is like Storing but converts the argument with transform.
func StoringFunc[T any](p *Parser, help string, transform func(string) (T, error), names ...string) *Delegate[T] {
	argName := optionToValueName(selectRepresentativeName(names))
	return Option(p, OptionConfig{Help: help, ArgNames: []string{argName}}, func(inv *Invocation[T]) (T, error) {
		arg, err := inv.Args.Next()
		if err != nil {
			var zero T
			return zero, err
		}
		return transform(arg)
	}, names...)
}

// Adding registers an option with one argument that collects the argument
// of every occurrence in order. It defaults to an empty slice.
func Adding(p *Parser, help string, names ...string) *Delegate[[]string] {
	return AddingInto(p, help, nil, identity, names...)
}

// AddingFunc is like Adding but converts each argument with transform.
func AddingFunc[T any](p *Parser, help string, transform func(string) (T, error), names ...string) *Delegate[[]T] {
	return AddingInto(p, help, nil, transform, names...)
}

// AddingInto is like AddingFunc but starts from a copy of initial, which is
// also the default. The caller's slice is never modified.
func AddingInto[T any](p *Parser, help string, initial []T, transform func(string) (T, error), names ...string) *Delegate[[]T] {
	initial = append([]T{}, initial...)
	argName := optionToValueName(selectRepresentativeName(names))
	return Option(p, OptionConfig{Help: help, ArgNames: []string{argName}, Repeating: true}, func(inv *Invocation[[]T]) ([]T, error) {
		arg, err := inv.Args.Next()
		if err != nil {
			return inv.Value, err
		}
		v, err := transform(arg)
		if err != nil {
			return inv.Value, err
		}
		cur := inv.Value
		if !inv.HasValue {
			cur = append([]T{}, initial...)
		}
		return append(cur, v), nil
	}, names...).DefaultFunc(func() []T {
		return append([]T{}, initial...)
	})
}

// Choice is one entry of a Mapping table.
type Choice[T any] struct {
	Name  string
	Value T
}

// Mapping registers one option spelling per choice; each takes no
// arguments and selects its value. The last one given wins. It is required
// unless given a default, and its error name lists every spelling
// separated by '|'.
func Mapping[T any](p *Parser, help string, choices ...Choice[T]) *Delegate[T] {
	if len(choices) == 0 {
		configErrorf("mapping needs at least one choice")
	}
	names := make([]string, 0, len(choices))
	table := make(map[string]T, len(choices))
	for _, c := range choices {
		names = append(names, c.Name)
		table[c.Name] = c.Value
	}
	return Option(p, OptionConfig{Help: help, ErrorName: strings.Join(names, "|")}, func(inv *Invocation[T]) (T, error) {
		return table[inv.Name], nil
	}, names...)
}

// Positional registers a positional argument taking exactly one token.
func Positional(p *Parser, name, help string) *Delegate[string] {
	return PositionalFunc(p, name, help, identity)
}

// PositionalFunc is like Positional but converts the token with transform.
func PositionalFunc[T any](p *Parser, name, help string, transform func(string) (T, error)) *Delegate[T] {
	d := addPositional(p, name, help, Exactly(1), func(args []string) (T, error) {
		return transform(args[0])
	})
	d.slot.single = true
	return d
}

// PositionalList registers a positional argument taking a number of tokens
// within size. Extra tokens go to the earliest list that can take them.
func PositionalList(p *Parser, name, help string, size Range) *Delegate[[]string] {
	return PositionalListFunc(p, name, help, size, identity)
}

// PositionalListFunc is like PositionalList but converts each token with
// transform.
func PositionalListFunc[T any](p *Parser, name, help string, size Range, transform func(string) (T, error)) *Delegate[[]T] {
	return addPositional(p, name, help, size, func(args []string) ([]T, error) {
		out := make([]T, 0, len(args))
		for _, arg := range args {
			v, err := transform(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	})
}

func addPositional[T any](p *Parser, name, help string, size Range, convert func([]string) (T, error)) *Delegate[T] {
	p.checkNotParsed()
	size.check(name)
	pd := &positionalDelegate[T]{
		name:    name,
		help:    help,
		size:    size,
		convert: convert,
	}
	slot := p.registerPositional(pd)
	return register[T](p, pd, slot)
}

func identity(s string) (string, error) {
	return s, nil
}
