// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import (
	"strings"
	"unicode/utf8"

	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

// binding is the part of every delegate the parser needs for the missing
// value check, validation and help.
type binding interface {
	errorName() string
	hasValue() bool
	validate() error
	helpValue() HelpValue
}

// optionBinding is a binding that owns one or more option spellings.
type optionBinding interface {
	binding
	argCount() int
	// parseOption handles one occurrence of the option spelled name. inline
	// is the text attached to the option token, if any; following tokens
	// start at args[index]. It returns how many arguments it took, counting
	// inline.
	parseOption(name, inline string, hasInline bool, args []string, index int) (int, error)
}

// positionalBinding is a binding that owns one positional slot.
type positionalBinding interface {
	binding
	sizeRange() Range
	parseArguments(args []string) error
}

// posSlot is a positional slot in declaration order.
type posSlot struct {
	b          positionalBinding
	single     bool // yields one value rather than a list
	hasDefault bool
}

// registerOption maps name to b. Long names start with "--" and need at
// least one more character; short names are a single hyphen and exactly
// one character.
func (p *Parser) registerOption(name string, b optionBinding) {
	switch {
	case strings.HasPrefix(name, "--"):
		if len(name) <= 2 {
			configErrorf("long option '%s' must have at least one character after the hyphens", name)
		}
		if _, ok := p.longOptions[name]; ok {
			configErrorf("long option '%s' already in use", name)
		}
		mak.Set(&p.longOptions, name, b)
	case strings.HasPrefix(name, "-"):
		key, size := utf8.DecodeRuneInString(name[1:])
		if size == 0 || key == utf8.RuneError || 1+size != len(name) {
			configErrorf("short option '%s' can only have one character after the hyphen", name)
		}
		if _, ok := p.shortOptions[key]; ok {
			configErrorf("short option '%s' already in use", name)
		}
		mak.Set(&p.shortOptions, key, b)
	default:
		configErrorf("illegal option name '%s': must start with '-' or '--'", name)
	}
}

func (p *Parser) lookupLong(name string) (optionBinding, bool) {
	b, ok := p.longOptions[name]
	return b, ok
}

func (p *Parser) lookupShort(key rune) (optionBinding, bool) {
	b, ok := p.shortOptions[key]
	return b, ok
}

func (p *Parser) registerPositional(b positionalBinding) *posSlot {
	name := b.errorName()
	if name == "" {
		configErrorf("positional name must not be empty")
	}
	if p.slotNames.Contains(name) {
		configErrorf("positional '%s' already in use", name)
	}
	if p.slotNames == nil {
		p.slotNames = make(set.Set[string])
	}
	p.slotNames.Add(name)
	s := &posSlot{b: b}
	p.slots = append(p.slots, s)
	return s
}

// selectRepresentativeName picks the name used to derive error and
// argument names: the first long name, or else the first name.
func selectRepresentativeName(names []string) string {
	if len(names) == 0 {
		configErrorf("need at least one option name")
	}
	for _, name := range names {
		if strings.HasPrefix(name, "--") {
			return name
		}
	}
	return names[0]
}

// optionToValueName turns "--dry-run" into "DRY_RUN".
func optionToValueName(option string) string {
	name := strings.TrimLeft(option, "-")
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
