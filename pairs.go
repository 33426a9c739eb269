// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

import (
	"cmp"

	"github.com/aabbtree/broadphase/internal/sweep"
)

// FindCollidingPairs invokes cb once for every unordered pair of indexed
// elements whose AABBs overlap, sequentially.
func (t *Tree[C, P]) FindCollidingPairs(cb func(a, b Pin[C, P])) {
	t.FindCollidingPairsWithArgs(cb, DefaultQueryArgs(), false)
}

// FindCollidingPairsParallel is FindCollidingPairs with fork/join
// parallelism enabled above the default NumSeqFallback threshold. The
// set of reported pairs is identical to the sequential traversal; the
// order is not.
func (t *Tree[C, P]) FindCollidingPairsParallel(cb func(a, b Pin[C, P])) {
	t.FindCollidingPairsWithArgs(cb, DefaultQueryArgs(), true)
}

// FindCollidingPairsWithArgs is FindCollidingPairs honoring the supplied
// QueryArgs, with parallel execution toggled explicitly. cb must be safe
// to call concurrently when parallel is true.
func (t *Tree[C, P]) FindCollidingPairsWithArgs(cb func(a, b Pin[C, P]), args QueryArgs, parallel bool) {
	t.findCollidingIndexPairs(func(ai, bi int) {
		cb(newPin(&t.elems[ai]), newPin(&t.elems[bi]))
	}, args, parallel)
}

// findCollidingIndexPairs is the index-based engine shared by
// FindCollidingPairsWithArgs and the cached-pairs session (which needs
// raw indices, not Pins, to store durable references into t.elems).
func (t *Tree[C, P]) findCollidingIndexPairs(cb func(ai, bi int), args QueryArgs, parallel bool) {
	args = args.normalized()
	if len(t.nodes) == 0 || len(t.elems) == 0 {
		return
	}
	t.collideRec(0, nil, cb, parallel, args.NumSeqFallback, t.height, args.Splitter)
}

// collideRec runs a two-phase sweep at each node: Phase 1 sweeps this
// node's own straddling set against itself; Phase 2 sweeps the elements
// accumulated from ancestor straddling sets ("active") against this
// node's straddling set, pruned by perpendicular tight-range overlap.
// Before descending, active is combined with this node's own straddling
// set and re-partitioned by this node's axis/divider so each child only
// inherits the ancestor elements that could still matter to it.
func (t *Tree[C, P]) collideRec(
	nodeIdx int,
	active []int,
	cb func(ai, bi int),
	parallel bool,
	numSeqFallback int,
	remHeight int,
	splitter Splitter,
) {
	n := &t.nodes[nodeIdx]
	own := ownIndices(n)

	sweepWithinPerp(t, own, n.axis, cb)

	if len(active) > 0 && n.length > 0 && tightRangeOf(t, active, n.axis.Next()).Overlaps(n.perp) {
		sweepCrossPerp(t, active, own, n.axis, cb)
	}

	if n.leaf {
		return
	}

	combined := make([]int, 0, len(active)+len(own))
	combined = append(combined, active...)
	combined = append(combined, own...)
	leftActive, rightActive := splitByDivider(t, combined, n.axis, n.divider)

	runParallel := parallel && remHeight > numSeqFallback
	leftSplit := splitter.Div()

	join(runParallel,
		func() {
			t.collideRec(n.leftIdx, leftActive, cb, parallel, numSeqFallback, remHeight-1, leftSplit)
		},
		func() {
			t.collideRec(n.rightIdx, rightActive, cb, parallel, numSeqFallback, remHeight-1, splitter)
		},
	)

	splitter.Add(leftSplit)
}

// ownIndices returns the tree-array indices belonging to node n, in the
// order they're stored (ascending by n's perpendicular axis Start, the
// sort the builder already performed).
func ownIndices[C cmp.Ordered, P any](n *node[C, P]) []int {
	idx := make([]int, n.length)
	for i := range idx {
		idx[i] = n.start + i
	}
	return idx
}

// sweepWithinPerp runs the active-window sweep over a single node's own
// straddling set.
func sweepWithinPerp[C cmp.Ordered, P any](t *Tree[C, P], idxs []int, axis Axis, cb func(ai, bi int)) {
	if len(idxs) < 2 {
		return
	}
	perp := axis.Next()
	win := sweep.New[C](len(idxs))
	for pos, idx := range idxs {
		cur := t.elems[idx].AABB()
		win.Expire(cur.On(perp).Start)
		win.Each(func(activePos int) {
			other := idxs[activePos]
			if cur.Overlaps(t.elems[other].AABB()) {
				cb(idx, other)
			}
		})
		win.Activate(pos, cur.On(perp).End)
	}
}

// sweepCrossPerp reports every overlapping pair (a, b) with a drawn from
// anc and b drawn from own. anc and own may be in any order; the tight-
// range prune applied by the caller already bounds their combined size
// in well-distributed trees.
func sweepCrossPerp[C cmp.Ordered, P any](t *Tree[C, P], anc, own []int, axis Axis, cb func(ai, bi int)) {
	perp := axis.Next()
	for _, ai := range anc {
		aAabb := t.elems[ai].AABB()
		aPerp := aAabb.On(perp)
		for _, oi := range own {
			oAabb := t.elems[oi].AABB()
			if !aPerp.Overlaps(oAabb.On(perp)) {
				continue
			}
			if aAabb.Overlaps(oAabb) {
				cb(ai, oi)
			}
		}
	}
}

// tightRangeOf computes the bounding range of idxs on the given axis.
func tightRangeOf[C cmp.Ordered, P any](t *Tree[C, P], idxs []int, axis Axis) Range[C] {
	if len(idxs) == 0 {
		var zero Range[C]
		return zero
	}
	r := t.elems[idxs[0]].AABB().On(axis)
	for _, idx := range idxs[1:] {
		or := t.elems[idx].AABB().On(axis)
		if or.Start < r.Start {
			r.Start = or.Start
		}
		if or.End > r.End {
			r.End = or.End
		}
	}
	return r
}

// splitByDivider partitions idxs by their range on axis relative to
// divider: elements entirely left of divider go only to left, entirely
// right go only to right, and elements whose range spans divider
// (touching counts as spanning) go to both, since they could still
// overlap elements on either side.
func splitByDivider[C cmp.Ordered, P any](t *Tree[C, P], idxs []int, axis Axis, divider C) (left, right []int) {
	for _, idx := range idxs {
		r := t.elems[idx].AABB().On(axis)
		switch {
		case r.End < divider:
			left = append(left, idx)
		case r.Start > divider:
			right = append(right, idx)
		default:
			left = append(left, idx)
			right = append(right, idx)
		}
	}
	return left, right
}
