// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import (
	"strings"
	"unicode/utf8"
)

// parseArgs makes the single left-to-right pass over the argument vector.
// Option tokens are dispatched to their bindings as they are seen; every
// other token is collected and handed to the positional allocator at the
// end.
//
// The parser supports:
//   - "--" ends option scanning; everything after it is positional
//   - long options: --name, --name=value, --name value
//   - short option clusters: -abc, -ovalue, -o value
//   - in POSIX mode, the first positional ends option scanning
func (p *Parser) parseArgs() error {
	args := p.args
	var positionals []string

	i := 0
scan:
	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "--":
			p.logf("argparser: %q ends option scanning at %d", arg, i)
			i++
			break scan

		case strings.HasPrefix(arg, "--"):
			n, err := p.parseLongOption(i)
			if err != nil {
				return err
			}
			i += n

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			n, err := p.parseShortOptions(i)
			if err != nil {
				return err
			}
			i += n

		default:
			positionals = append(positionals, arg)
			i++
			if p.mode == POSIX {
				p.logf("argparser: positional %q ends option scanning (POSIX)", arg)
				break scan
			}
		}
	}

	// Tokens after an early stop are positional verbatim.
	positionals = append(positionals, args[i:]...)
	return p.parsePositionals(positionals)
}

// parseLongOption handles args[index], which starts with "--", and returns
// the number of tokens consumed including the option itself.
func (p *Parser) parseLongOption(index int) (int, error) {
	arg := p.args[index]
	name, inline, hasInline := arg, "", false
	// The name needs at least one character, so "--=x" is not split.
	if eq := strings.IndexByte(arg, '='); eq > 2 {
		name, inline, hasInline = arg[:eq], arg[eq+1:], true
	}

	b, ok := p.lookupLong(name)
	if !ok {
		return 0, &UnrecognizedOptionError{Name: name}
	}
	if hasInline && b.argCount() == 0 {
		return 0, &UnexpectedOptionArgumentError{Name: name}
	}

	consumed, err := b.parseOption(name, inline, hasInline, p.args, index+1)
	if err != nil {
		return 0, err
	}
	if hasInline {
		consumed--
	}
	p.logf("argparser: %s took %d following argument(s)", name, consumed)
	return 1 + consumed, nil
}

// parseShortOptions walks the cluster in args[index] one character at a
// time. An option that takes arguments uses the rest of the cluster as its
// first argument, if there is any, and ends the cluster.
func (p *Parser) parseShortOptions(index int) (int, error) {
	cluster := p.args[index]
	for pos := 1; pos < len(cluster); {
		key, size := utf8.DecodeRuneInString(cluster[pos:])
		name := "-" + string(key)
		pos += size

		b, ok := p.lookupShort(key)
		if !ok {
			return 0, &UnrecognizedOptionError{Name: name}
		}

		rest, hasRest := "", pos < len(cluster)
		if hasRest {
			rest = cluster[pos:]
		}
		consumed, err := b.parseOption(name, rest, hasRest, p.args, index+1)
		if err != nil {
			return 0, err
		}
		if consumed > 0 {
			p.logf("argparser: %s in %q took %d argument(s)", name, cluster, consumed)
			if hasRest {
				// The rest of the cluster was the first argument.
				return consumed, nil
			}
			return 1 + consumed, nil
		}
	}
	return 1, nil
}
