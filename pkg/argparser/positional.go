// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import (
	"fmt"
	"math"
)

// Unlimited is the Max of a Range with no upper bound.
const Unlimited = math.MaxInt

// Range is the number of tokens a positional slot accepts, inclusive.
type Range struct {
	Min int
	Max int
}

var (
	// OneOrMore accepts at least one token.
	OneOrMore = Range{Min: 1, Max: Unlimited}
	// ZeroOrMore accepts any number of tokens.
	ZeroOrMore = Range{Min: 0, Max: Unlimited}
)

// Exactly returns a Range accepting exactly n tokens.
func Exactly(n int) Range {
	return Range{Min: n, Max: n}
}

func (r Range) String() string {
	switch {
	case r.Max == Unlimited:
		return fmt.Sprintf("%d..", r.Min)
	case r.Min == r.Max:
		return fmt.Sprintf("%d", r.Min)
	default:
		return fmt.Sprintf("%d..%d", r.Min, r.Max)
	}
}

func (r Range) check(name string) {
	if r.Min < 0 || r.Max < 1 || r.Min > r.Max {
		configErrorf("invalid size range %d..%d for positional '%s'", r.Min, r.Max, name)
	}
}

// parsePositionals distributes args over the positional slots in
// declaration order. Each slot first gets its minimum; capacity beyond the
// minimums goes to the earliest slots that can take it. A slot with a
// default has an effective minimum of zero and keeps its default when it
// gets no tokens; given any tokens it still needs its full minimum.
func (p *Parser) parsePositionals(args []string) error {
	extra := len(args)
	for _, s := range p.slots {
		if !s.hasDefault {
			extra -= s.b.sizeRange().Min
		}
	}
	extra = max(extra, 0)

	index, remaining := 0, len(args)
	var last string
	for _, s := range p.slots {
		r := s.b.sizeRange()
		minSize := r.Min
		if s.hasDefault {
			minSize = 0
		}
		chunk := r.Max
		if extra < r.Max-minSize {
			chunk = minSize + extra
		}
		chunk = min(chunk, remaining)
		if chunk < minSize || (chunk > 0 && chunk < r.Min) {
			return &MissingRequiredPositionalArgumentError{Name: s.b.errorName()}
		}

		if chunk != 0 || !s.hasDefault {
			p.logf("argparser: positional %s gets %d argument(s)", s.b.errorName(), chunk)
			if err := s.b.parseArguments(args[index : index+chunk]); err != nil {
				return err
			}
		}
		last = s.b.errorName()
		index += chunk
		remaining -= chunk
		extra -= chunk - minSize
	}

	if remaining > 0 {
		return &UnexpectedPositionalArgumentError{Name: last}
	}
	return nil
}
