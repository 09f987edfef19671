// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package main

import "golang.org/x/sys/unix"

// sameDevice reports whether a and b are on the same filesystem. It returns
// false if either cannot be stat'ed.
func sameDevice(a, b string) bool {
	var sa, sb unix.Stat_t
	if err := unix.Stat(a, &sa); err != nil {
		return false
	}
	if err := unix.Stat(b, &sb); err != nil {
		return false
	}
	return sa.Dev == sb.Dev
}
