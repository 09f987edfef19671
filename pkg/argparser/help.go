// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

// HelpValue describes one binding for help generation.
type HelpValue struct {
	// Usages lists how the binding may be spelled, e.g. "-o OUTPUT" and
	// "--output OUTPUT". Positional bindings have a single usage, their name.
	Usages       []string
	IsRequired   bool
	IsRepeating  bool
	IsPositional bool
	Help         string
}

// HelpFormatter renders help text from the bindings of a parser, in
// registration order.
type HelpFormatter interface {
	Format(programName string, columns int, values []HelpValue) string
}

// HelpFormatterFunc adapts a function to HelpFormatter.
type HelpFormatterFunc func(programName string, columns int, values []HelpValue) string

func (f HelpFormatterFunc) Format(programName string, columns int, values []HelpValue) string {
	return f(programName, columns, values)
}

// HelpValues returns one HelpValue per registered binding in registration
// order. It does not trigger parsing.
func (p *Parser) HelpValues() []HelpValue {
	values := make([]HelpValue, 0, len(p.bindings))
	for _, b := range p.bindings {
		values = append(values, b.helpValue())
	}
	return values
}
