// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

import (
	"cmp"
	"slices"

	"github.com/aabbtree/broadphase/internal/sweep"
)

// SweepAndPrune finds every colliding pair in elems with a single
// sweep along the X axis, pruned by Y-range overlap, rather than
// building a Tree. It reuses the same active-window sweep the
// colliding-pairs engine's within-node phase uses, and is intended as
// the cheaper alternative for small or short-lived element sets where
// building a Tree isn't worth it.
//
// elems is reordered by the sweep (sorted ascending by X start); cb is
// invoked with indices into elems as left reordered, not the caller's
// original order.
func SweepAndPrune[C cmp.Ordered, P any](elems []Elem[C, P], cb func(ai, bi int)) {
	if len(elems) < 2 {
		return
	}

	slices.SortFunc(elems, func(a, b Elem[C, P]) int {
		return cmp.Compare(a.AABB().On(AxisX).Start, b.AABB().On(AxisX).Start)
	})

	win := sweep.New[C](len(elems))
	for i, e := range elems {
		cur := e.AABB()
		win.Expire(cur.On(AxisX).Start)
		win.Each(func(activeIdx int) {
			if cur.Overlaps(elems[activeIdx].AABB()) {
				cb(i, activeIdx)
			}
		})
		win.Activate(i, cur.On(AxisX).End)
	}
}
