// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

// Package sweep implements the one-dimensional active-window sweep shared
// by the colliding-pairs engine and the sweep-and-prune fallback: given a
// sequence of elements visited in ascending order of their perpendicular-
// axis start, it tracks which previously visited elements are still
// "active" (their perpendicular-axis end has not yet been passed).
package sweep

import (
	"cmp"

	"github.com/bits-and-blooms/bitset"
)

// Window is an active-window workspace, sized up front for a known
// maximum index range. Reset clears it for reuse, keeping the ends slice
// when it is large enough; each Reset allocates a fresh bitset.
type Window[C cmp.Ordered] struct {
	active *bitset.BitSet
	ends   []C
	order  []int
}

// New returns a Window with capacity for indices in [0, n).
func New[C cmp.Ordered](n int) *Window[C] {
	w := &Window[C]{}
	w.Reset(n)
	return w
}

// Reset clears the window and resizes it for indices in [0, n).
func (w *Window[C]) Reset(n int) {
	if cap(w.ends) < n {
		w.ends = make([]C, n)
	} else {
		w.ends = w.ends[:n]
	}
	w.active = bitset.New(uint(n))
	w.order = w.order[:0]
}

// Expire deactivates every currently active index whose stored end is
// strictly less than start.
func (w *Window[C]) Expire(start C) {
	kept := w.order[:0]
	for _, idx := range w.order {
		if w.ends[idx] < start {
			w.active.Clear(uint(idx))
			continue
		}
		kept = append(kept, idx)
	}
	w.order = kept
}

// Activate adds idx to the window with the given perpendicular-axis end.
func (w *Window[C]) Activate(idx int, end C) {
	w.ends[idx] = end
	w.active.Set(uint(idx))
	w.order = append(w.order, idx)
}

// Each invokes fn for every currently active index, in activation order.
func (w *Window[C]) Each(fn func(idx int)) {
	for _, idx := range w.order {
		if w.active.Test(uint(idx)) {
			fn(idx)
		}
	}
}

// Len reports the number of currently active indices.
func (w *Window[C]) Len() int {
	n := 0
	for _, idx := range w.order {
		if w.active.Test(uint(idx)) {
			n++
		}
	}
	return n
}
