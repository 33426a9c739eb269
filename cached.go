// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

import "cmp"

// cachedEntry pins one colliding pair by index rather than by pointer, so
// Cached can outlive a single traversal without entangling its lifetime
// with any particular Pin: indices stay valid for as long as the tree's
// underlying slice is unchanged, the same borrow contract the tree itself
// relies on.
type cachedEntry[D any] struct {
	ai, bi int
	datum  D
}

// Cached is the result of Begin: the subset of colliding pairs for which
// filter reported true, recorded as slice indices plus the datum filter
// returned, so Replay can re-run a cheap downstream step over exactly
// those pairs without repeating the broad-phase traversal.
type Cached[C cmp.Ordered, P any, D any] struct {
	tree    *Tree[C, P]
	entries []cachedEntry[D]
}

// Begin runs a full colliding-pairs traversal and asks filter to judge
// every colliding pair once. Pairs where filter returns ok == false are
// discarded immediately; the rest are recorded along with the D filter
// returned, for cheap replay later via Replay.
func Begin[C cmp.Ordered, P any, D any](t *Tree[C, P], filter func(a, b *P) (D, bool)) *Cached[C, P, D] {
	return BeginWithArgs(t, filter, DefaultQueryArgs(), false)
}

// BeginWithArgs is Begin honoring the supplied QueryArgs, with parallel
// traversal toggled explicitly. When parallel is true the traversal runs
// on several goroutines, but every filter call and every append to the
// recorded entries happens under one lock, so filter is never called
// concurrently and Cached itself needs no external synchronization.
func BeginWithArgs[C cmp.Ordered, P any, D any](t *Tree[C, P], filter func(a, b *P) (D, bool), args QueryArgs, parallel bool) *Cached[C, P, D] {
	c := &Cached[C, P, D]{tree: t}
	var mu chan struct{}
	if parallel {
		mu = make(chan struct{}, 1)
		mu <- struct{}{}
	}
	record := func(ai, bi int) {
		if mu != nil {
			<-mu
			defer func() { mu <- struct{}{} }()
		}
		d, ok := filter(&t.elems[ai].Payload, &t.elems[bi].Payload)
		if !ok {
			return
		}
		c.entries = append(c.entries, cachedEntry[D]{ai: ai, bi: bi, datum: d})
	}
	t.findCollidingIndexPairs(record, args, parallel)
	return c
}

// Len reports how many pairs survived the filter.
func (c *Cached[C, P, D]) Len() int {
	return len(c.entries)
}

// Replay invokes cb once per cached pair, in recording order, handing
// back live Pins over the same tree and the datum the filter produced
// for that pair during Begin.
func (c *Cached[C, P, D]) Replay(cb func(a, b Pin[C, P], datum D)) {
	for _, e := range c.entries {
		cb(newPin(&c.tree.elems[e.ai]), newPin(&c.tree.elems[e.bi]), e.datum)
	}
}
