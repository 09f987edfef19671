// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conv provides argument transforms for use with argparser's
// StoringFunc, AddingFunc and PositionalFunc. Each transform reports the
// offending text in its error and wraps the underlying parse error.
package conv

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

// Int parses a base 10 int.
func Int(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid int value %q: %w", s, err)
	}
	return i, nil
}

// Uint parses a base 10 uint.
func Uint(s string) (uint, error) {
	u, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid uint value %q: %w", s, err)
	}
	return uint(u), nil
}

// Float parses a float64.
func Float(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value %q: %w", s, err)
	}
	return f, nil
}

// Bool parses anything strconv.ParseBool accepts.
func Bool(s string) (bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid bool value %q: %w", s, err)
	}
	return b, nil
}

// Duration parses a time.Duration such as "1m30s".
func Duration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d, nil
}

// URL parses an absolute URL.
func URL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", s, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("invalid URL %q: missing scheme", s)
	}
	return u, nil
}

// Port is a TCP or UDP port number.
type Port uint16

// ParsePort parses a port number in 0-65535.
func ParsePort(s string) (Port, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, fmt.Errorf("port must be between 0 and 65535, got %q", s)
		}
		return 0, fmt.Errorf("invalid port value %q: %w", s, err)
	}
	return Port(v), nil
}

// PortRange returns a transform that accepts ports in [min, max] only.
func PortRange(min, max Port) func(string) (Port, error) {
	return func(s string) (Port, error) {
		p, err := ParsePort(s)
		if err != nil {
			return 0, err
		}
		if p < min || p > max {
			return 0, fmt.Errorf("port must be between %d-%d, got %d", min, max, p)
		}
		return p, nil
	}
}

// ParsePortRange parses a range like "8000-9000".
func ParsePortRange(s string) (min, max Port, err error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid port range format %q (expected \"min-max\")", s)
	}
	if min, err = ParsePort(lo); err != nil {
		return 0, 0, fmt.Errorf("invalid min port in range %q: %w", s, err)
	}
	if max, err = ParsePort(hi); err != nil {
		return 0, 0, fmt.Errorf("invalid max port in range %q: %w", s, err)
	}
	if min > max {
		return 0, 0, fmt.Errorf("invalid port range %q: min (%d) > max (%d)", s, min, max)
	}
	return min, max, nil
}

// Semver parses a semantic version. A leading "v" is accepted.
func Semver(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return v, nil
}

// SemverConstraint parses a version constraint such as ">= 1.2, < 2".
func SemverConstraint(s string) (*semver.Constraints, error) {
	c, err := semver.NewConstraint(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %q: %w", s, err)
	}
	return c, nil
}

// UUID parses a UUID in any form uuid.Parse accepts.
func UUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid UUID %q: %w", s, err)
	}
	return id, nil
}

// OneOf returns a transform that accepts only the given choices.
func OneOf(choices ...string) func(string) (string, error) {
	choices = slices.Clone(choices)
	return func(s string) (string, error) {
		if slices.Contains(choices, s) {
			return s, nil
		}
		return "", fmt.Errorf("invalid choice %q (choose from %s)", s, strings.Join(choices, ", "))
	}
}

// Split returns a transform that splits its argument on sep and drops
// empty elements, so "a,,b" gives [a b].
func Split(sep string) func(string) ([]string, error) {
	return func(s string) ([]string, error) {
		parts := strings.Split(s, sep)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	}
}
