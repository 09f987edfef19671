// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

// cell holds the resolved value of a single binding. The zero cell is
// unset; a cell that was set to a zero value is still set.
type cell[T any] struct {
	v   T
	set bool
}

func (c *cell[T]) get() (T, bool) {
	return c.v, c.set
}

func (c *cell[T]) store(v T) {
	c.v = v
	c.set = true
}
