// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package helpfmt renders argparser help text in the familiar
// "usage: prog [-h] ..." layout, wrapped to the terminal width.
package helpfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
	"github.com/yeetrun/argparser/pkg/argparser"
)

const (
	indent       = 2  // before each usage column entry
	gutter       = 2  // between the usage column and the help column
	minHelpWidth = 20 // narrowest help column before we stop shrinking it
)

// Formatter is the default argparser.HelpFormatter.
type Formatter struct {
	// Prologue is printed after the usage line.
	Prologue string
	// Epilogue is printed after all argument sections.
	Epilogue string
}

var _ argparser.HelpFormatter = (*Formatter)(nil)

// New returns a Formatter with the given prologue and epilogue. Either may
// be empty.
func New(prologue, epilogue string) *Formatter {
	return &Formatter{Prologue: prologue, Epilogue: epilogue}
}

// Format implements argparser.HelpFormatter. Options are split into
// required and optional sections; positional arguments get their own
// section. Empty sections are left out.
func (f *Formatter) Format(programName string, columns int, values []argparser.HelpValue) string {
	if columns <= 0 {
		columns = argparser.DefaultColumns
	}
	var b strings.Builder
	writeUsage(&b, programName, columns, values)

	if f.Prologue != "" {
		b.WriteString("\n")
		writeParagraph(&b, f.Prologue, columns)
	}

	var required, optional, positional []argparser.HelpValue
	for _, v := range values {
		switch {
		case v.IsPositional:
			positional = append(positional, v)
		case v.IsRequired:
			required = append(required, v)
		default:
			optional = append(optional, v)
		}
	}
	col := helpColumn(columns, values)
	writeSection(&b, "required arguments", required, col, columns)
	writeSection(&b, "optional arguments", optional, col, columns)
	writeSection(&b, "positional arguments", positional, col, columns)

	if f.Epilogue != "" {
		b.WriteString("\n")
		writeParagraph(&b, f.Epilogue, columns)
	}
	return b.String()
}

// usageElement is how v appears on the usage line: its first usage,
// bracketed when optional and followed by "..." when repeating.
func usageElement(v argparser.HelpValue) string {
	if len(v.Usages) == 0 {
		return ""
	}
	s := v.Usages[0]
	if !v.IsRequired {
		s = "[" + s + "]"
	}
	if v.IsRepeating {
		s += "..."
	}
	return s
}

func writeUsage(b *strings.Builder, programName string, columns int, values []argparser.HelpValue) {
	line := "usage: " + programName
	cont := strings.Repeat(" ", runewidth.StringWidth(line)+1)
	width := runewidth.StringWidth(line)
	first := true
	for _, v := range values {
		el := usageElement(v)
		if el == "" {
			continue
		}
		w := runewidth.StringWidth(el)
		if !first && width+1+w > columns {
			b.WriteString(line)
			b.WriteString("\n")
			line, width = cont+el, len(cont)+w
			continue
		}
		line += " " + el
		width += 1 + w
		first = false
	}
	b.WriteString(line)
	b.WriteString("\n")
}

// helpColumn is where help text starts: just past the widest usage entry,
// but no further right than a third of the screen.
func helpColumn(columns int, values []argparser.HelpValue) int {
	widest := 0
	for _, v := range values {
		widest = max(widest, runewidth.StringWidth(entryHeader(v)))
	}
	col := min(indent+widest+gutter, columns/3)
	col = min(col, columns-minHelpWidth)
	return max(col, indent+gutter)
}

func entryHeader(v argparser.HelpValue) string {
	return strings.Join(v.Usages, ", ")
}

func writeSection(b *strings.Builder, title string, values []argparser.HelpValue, col, columns int) {
	if len(values) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString(":\n")
	pad := strings.Repeat(" ", col)
	for _, v := range values {
		header := strings.Repeat(" ", indent) + entryHeader(v)
		if v.Help == "" {
			b.WriteString(header)
			b.WriteString("\n")
			continue
		}
		lines := wrap(v.Help, columns-col)
		if runewidth.StringWidth(header)+gutter <= col {
			b.WriteString(runewidth.FillRight(header, col))
		} else {
			b.WriteString(header)
			b.WriteString("\n")
			b.WriteString(pad)
		}
		for i, l := range lines {
			if i > 0 {
				b.WriteString(pad)
			}
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
}

// writeParagraph wraps text to columns. Blank lines separate paragraphs.
func writeParagraph(b *strings.Builder, text string, columns int) {
	for i, para := range strings.Split(strings.TrimSpace(text), "\n\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, l := range wrap(para, columns) {
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
}

// wrap word-wraps s to width, collapsing runs of spaces so that help text
// written across several source lines reflows.
func wrap(s string, width int) []string {
	s = strings.Join(strings.Fields(s), " ")
	if width < 1 {
		width = 1
	}
	return strings.Split(wordwrap.WrapString(s, uint(width)), "\n")
}
