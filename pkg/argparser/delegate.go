// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import (
	"fmt"
	"strings"

	"tailscale.com/types/lazy"
)

// valueSource is a binding that can produce a typed value.
type valueSource[T any] interface {
	binding
	value() (T, error)
	addValidator(fn func(T) error)
	hasValidators() bool
}

// Delegate is the handle returned by every binding constructor. Reading its
// value parses the arguments first if that has not happened yet.
type Delegate[T any] struct {
	p    *Parser
	src  valueSource[T]
	idx  int      // position in p.bindings
	slot *posSlot // nil for options
}

func register[T any](p *Parser, src valueSource[T], slot *posSlot) *Delegate[T] {
	p.bindings = append(p.bindings, src)
	return &Delegate[T]{p: p, src: src, idx: len(p.bindings) - 1, slot: slot}
}

// Value parses the arguments if needed and returns the bound value, or the
// first error from scanning or validation.
func (d *Delegate[T]) Value() (T, error) {
	if err := d.p.Force(); err != nil {
		var zero T
		return zero, err
	}
	return d.src.value()
}

// MustValue is like Value but panics on error. It is intended for use after
// a successful Force.
func (d *Delegate[T]) MustValue() T {
	v, err := d.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// HasValue reports whether reading the delegate would produce a value:
// either it was set by the arguments or it has a default. Like Value, it
// parses the arguments first if needed.
func (d *Delegate[T]) HasValue() bool {
	d.p.Force()
	return d.src.hasValue()
}

// ErrorName is the name used for this binding in error messages.
func (d *Delegate[T]) ErrorName() string {
	return d.src.errorName()
}

// Help returns the help text.
func (d *Delegate[T]) Help() string {
	return d.src.helpValue().Help
}

// HelpValue returns the help record for this binding.
func (d *Delegate[T]) HelpValue() HelpValue {
	return d.src.helpValue()
}

// Default returns a delegate that yields v when the arguments did not set
// a value. The returned delegate replaces d in the parser, so the binding
// is no longer required. It panics with a *ConfigError if validators were
// already added, because they would not see the default.
func (d *Delegate[T]) Default(v T) *Delegate[T] {
	return d.DefaultFunc(func() T { return v })
}

// DefaultFunc is like Default but computes the default on first use.
func (d *Delegate[T]) DefaultFunc(fn func() T) *Delegate[T] {
	d.p.checkNotParsed()
	if d.src.hasValidators() {
		configErrorf("cannot add a default to %s after adding validators", d.src.errorName())
	}
	if d.slot != nil {
		if r := d.slot.b.sizeRange(); d.slot.single && r.Min != 1 {
			configErrorf("positional %s can only have a default if it takes exactly one argument", d.src.errorName())
		}
		d.slot.hasDefault = true
	}
	inner := d.src
	if dd, ok := inner.(*defaultedDelegate[T]); ok {
		// Replace the earlier default rather than stacking on it.
		inner = dd.inner
	}
	w := &defaultedDelegate[T]{inner: inner, fallback: fn}
	d.p.bindings[d.idx] = w
	return &Delegate[T]{p: d.p, src: w, idx: d.idx, slot: d.slot}
}

// AddValidator adds fn to the validators run after a successful scan.
// Validators run in registration order across the whole parser and the
// first error stops parsing. Errors that are not parser errors are wrapped
// in an *InvalidArgumentError.
func (d *Delegate[T]) AddValidator(fn func(T) error) *Delegate[T] {
	d.p.checkNotParsed()
	d.src.addValidator(fn)
	return d
}

func runValidators[T any](validators []func(T) error, v T) error {
	for _, fn := range validators {
		if err := fn(v); err != nil {
			return wrapInvalid(err)
		}
	}
	return nil
}

// optionDelegate is the single implementation behind every option
// binding; flags, counters, storing and the rest differ only in handler.
type optionDelegate[T any] struct {
	names      []string
	argNames   []string
	help       string
	errName    string
	repeating  bool
	handler    func(*Invocation[T]) (T, error)
	cell       cell[T]
	validators []func(T) error
}

func (o *optionDelegate[T]) errorName() string { return o.errName }
func (o *optionDelegate[T]) hasValue() bool    { return o.cell.set }
func (o *optionDelegate[T]) argCount() int     { return len(o.argNames) }

func (o *optionDelegate[T]) value() (T, error) {
	v, ok := o.cell.get()
	if !ok {
		return v, &MissingValueError{Name: o.errName}
	}
	return v, nil
}

func (o *optionDelegate[T]) addValidator(fn func(T) error) {
	o.validators = append(o.validators, fn)
}

func (o *optionDelegate[T]) hasValidators() bool { return len(o.validators) > 0 }

func (o *optionDelegate[T]) validate() error {
	v, ok := o.cell.get()
	if !ok {
		return nil
	}
	return runValidators(o.validators, v)
}

func (o *optionDelegate[T]) parseOption(name, inline string, hasInline bool, args []string, index int) (int, error) {
	var window []string
	if n := len(o.argNames); n > 0 {
		if hasInline {
			window = append(window, inline)
		}
		required := n - len(window)
		if available := len(args) - index; required > available {
			err := &OptionMissingRequiredArgumentError{Name: name}
			// Naming the argument is only useful when there is more than one.
			if n > 1 {
				err.ArgName = o.argNames[len(window)+available]
			}
			return 0, err
		}
		window = append(window, args[index:index+required]...)
	}

	cur, has := o.cell.get()
	v, err := o.handler(&Invocation[T]{
		Name:     name,
		Value:    cur,
		HasValue: has,
		Args:     newArgIterator(name, o.argNames, window),
	})
	if err != nil {
		return 0, wrapInvalid(err)
	}
	o.cell.store(v)
	return len(o.argNames), nil
}

func (o *optionDelegate[T]) helpValue() HelpValue {
	usages := make([]string, 0, len(o.names))
	for _, name := range o.names {
		if len(o.argNames) == 0 {
			usages = append(usages, name)
			continue
		}
		usages = append(usages, name+" "+strings.Join(o.argNames, " "))
	}
	return HelpValue{
		Usages:      usages,
		IsRequired:  true,
		IsRepeating: o.repeating,
		Help:        o.help,
	}
}

// positionalDelegate owns one positional slot.
type positionalDelegate[T any] struct {
	name       string
	help       string
	size       Range
	convert    func([]string) (T, error)
	cell       cell[T]
	validators []func(T) error
}

func (pd *positionalDelegate[T]) errorName() string { return pd.name }
func (pd *positionalDelegate[T]) hasValue() bool    { return pd.cell.set }
func (pd *positionalDelegate[T]) sizeRange() Range  { return pd.size }

func (pd *positionalDelegate[T]) value() (T, error) {
	v, ok := pd.cell.get()
	if !ok {
		return v, &MissingValueError{Name: pd.name}
	}
	return v, nil
}

func (pd *positionalDelegate[T]) addValidator(fn func(T) error) {
	pd.validators = append(pd.validators, fn)
}

func (pd *positionalDelegate[T]) hasValidators() bool { return len(pd.validators) > 0 }

func (pd *positionalDelegate[T]) validate() error {
	v, ok := pd.cell.get()
	if !ok {
		return nil
	}
	return runValidators(pd.validators, v)
}

func (pd *positionalDelegate[T]) parseArguments(args []string) error {
	if len(args) < pd.size.Min || len(args) > pd.size.Max {
		panic(fmt.Sprintf("argparser: %d arguments for %s outside %v", len(args), pd.name, pd.size))
	}
	v, err := pd.convert(args)
	if err != nil {
		return wrapInvalid(err)
	}
	pd.cell.store(v)
	return nil
}

func (pd *positionalDelegate[T]) helpValue() HelpValue {
	return HelpValue{
		Usages:       []string{pd.name},
		IsRequired:   pd.size.Min > 0,
		IsRepeating:  pd.size.Max > 1,
		IsPositional: true,
		Help:         pd.help,
	}
}

// defaultedDelegate wraps a binding and substitutes a default when the
// wrapped binding was never set.
type defaultedDelegate[T any] struct {
	inner      valueSource[T]
	fallback   func() T
	def        lazy.GValue[T]
	validators []func(T) error
}

func (d *defaultedDelegate[T]) errorName() string { return d.inner.errorName() }
func (d *defaultedDelegate[T]) hasValue() bool    { return true }

func (d *defaultedDelegate[T]) value() (T, error) {
	if d.inner.hasValue() {
		return d.inner.value()
	}
	return d.def.Get(d.fallback), nil
}

func (d *defaultedDelegate[T]) addValidator(fn func(T) error) {
	d.validators = append(d.validators, fn)
}

func (d *defaultedDelegate[T]) hasValidators() bool {
	return len(d.validators) > 0 || d.inner.hasValidators()
}

func (d *defaultedDelegate[T]) validate() error {
	if err := d.inner.validate(); err != nil {
		return err
	}
	if len(d.validators) == 0 {
		return nil
	}
	v, err := d.value()
	if err != nil {
		return err
	}
	return runValidators(d.validators, v)
}

func (d *defaultedDelegate[T]) helpValue() HelpValue {
	hv := d.inner.helpValue()
	hv.IsRequired = false
	return hv
}
