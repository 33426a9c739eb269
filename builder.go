// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

import (
	"cmp"
	"math"
	"slices"

	"github.com/aabbtree/broadphase/internal/median"
)

// node is one entry of a Tree's flat, preorder node array. A node with
// length == 0 and hasDivider == false is an empty leaf. Internal nodes
// always have hasDivider == true; the terminal level (the leaves) never
// does — at the leaf level, all remaining elements are simply emitted as
// a straddling set with no divider.
type node[C cmp.Ordered, P any] struct {
	axis       Axis
	hasDivider bool
	divider    C
	start      int // offset into Tree.elems
	length     int // size of this node's straddling sub-slice
	perp       Range[C]

	leaf             bool
	leftIdx, rightIdx int
}

// Tree is a space-partitioning index built in place over a caller-owned
// slice of elements. See the package doc comment for the overall
// contract.
type Tree[C cmp.Ordered, P any] struct {
	elems  []Elem[C, P]
	nodes  []node[C, P]
	height int
}

// Len returns the number of elements indexed by the tree.
func (t *Tree[C, P]) Len() int {
	return len(t.elems)
}

// Height returns the tree's height (number of levels, root counted as 1).
func (t *Tree[C, P]) Height() int {
	return t.height
}

// treeHeight picks a height that keeps leaves around targetLeafSize
// elements on average: h = ceil(log2(n / targetLeafSize)) + 1, with
// h >= 1.
func treeHeight(n int) int {
	if n <= defaultTargetLeafSize {
		return 1
	}
	h := int(math.Ceil(math.Log2(float64(n)/float64(defaultTargetLeafSize)))) + 1
	if h < 1 {
		h = 1
	}
	return h
}

// subtreeNodeCount returns 2^h - 1, the node count of a perfect binary
// tree of height h (h == 1 means a single leaf node).
func subtreeNodeCount(h int) int {
	return (1 << uint(h)) - 1
}

// Build constructs a Tree sequentially over elems, in place.
func Build[C cmp.Ordered, P any](elems []Elem[C, P]) *Tree[C, P] {
	return BuildWithArgs(elems, DefaultBuildArgs(), false)
}

// BuildParallel constructs a Tree using fork/join parallelism above the
// default NumSeqFallback subtree-height threshold.
func BuildParallel[C cmp.Ordered, P any](elems []Elem[C, P]) *Tree[C, P] {
	return BuildWithArgs(elems, DefaultBuildArgs(), true)
}

// BuildWithArgs constructs a Tree honoring the supplied BuildArgs. When
// parallel is false, construction is purely sequential regardless of
// args.NumSeqFallback.
func BuildWithArgs[C cmp.Ordered, P any](elems []Elem[C, P], args BuildArgs, parallel bool) *Tree[C, P] {
	args = args.normalized()

	h := treeHeight(len(elems))
	if args.Height != nil && *args.Height > 0 {
		h = *args.Height
	}

	t := &Tree[C, P]{
		elems:  elems,
		nodes:  make([]node[C, P], subtreeNodeCount(h)),
		height: h,
	}

	if len(elems) == 0 {
		return t
	}

	buildRec(t.elems, t.nodes, 0, 0, len(elems), AxisX, h, parallel, args.NumSeqFallback, args.Splitter)
	return t
}

// buildRec fills in t.nodes[nodeIdx] and its entire subtree, covering
// elems[start:start+length], recursing until remHeight reaches 1 (the
// leaf level).
func buildRec[C cmp.Ordered, P any](
	elems []Elem[C, P],
	nodes []node[C, P],
	nodeIdx, start, length int,
	axis Axis,
	remHeight int,
	parallel bool,
	numSeqFallback int,
	splitter Splitter,
) {
	if remHeight <= 1 || length == 0 {
		sub := elems[start : start+length]
		sortByPerp(sub, axis)
		nodes[nodeIdx] = node[C, P]{
			axis:   axis,
			start:  start,
			length: length,
			perp:   tightPerpRange(sub, axis),
			leaf:   true,
		}
		return
	}

	sub := elems[start : start+length]
	d := dividerFor(sub, axis)

	middleLen, leftLen := partition(sub, axis, d)
	rightLen := length - middleLen - leftLen

	middle := sub[:middleLen]
	sortByPerp(middle, axis)

	leftStart := start + middleLen
	rightStart := leftStart + leftLen

	childHeight := remHeight - 1
	childSize := subtreeNodeCount(childHeight)
	leftIdx := nodeIdx + 1
	rightIdx := leftIdx + childSize

	nodes[nodeIdx] = node[C, P]{
		axis:       axis,
		hasDivider: true,
		divider:    d,
		start:      start,
		length:     middleLen,
		perp:       tightPerpRange(middle, axis),
		leftIdx:    leftIdx,
		rightIdx:   rightIdx,
	}

	runParallel := parallel && remHeight > numSeqFallback

	leftSplit := splitter.Div()

	join(runParallel,
		func() {
			buildRec(elems, nodes, leftIdx, leftStart, leftLen, axis.Next(), childHeight, parallel, numSeqFallback, leftSplit)
		},
		func() {
			buildRec(elems, nodes, rightIdx, rightStart, rightLen, axis.Next(), childHeight, parallel, numSeqFallback, splitter)
		},
	)

	splitter.Add(leftSplit)
}

// dividerFor computes the median of the sub-slice's Start coordinates on
// axis, via linear-time expected-case quickselect.
func dividerFor[C cmp.Ordered, P any](sub []Elem[C, P], axis Axis) C {
	starts := make([]C, len(sub))
	for i, e := range sub {
		starts[i] = e.AABB().On(axis).Start
	}
	return median.Select(starts)
}

// sortByPerp sorts sub ascending by its Start coordinate on the
// perpendicular axis, the order the colliding-pairs engine's sweep
// requires.
func sortByPerp[C cmp.Ordered, P any](sub []Elem[C, P], axis Axis) {
	perp := axis.Next()
	slices.SortFunc(sub, func(a, b Elem[C, P]) int {
		return cmp.Compare(a.AABB().On(perp).Start, b.AABB().On(perp).Start)
	})
}

// tightPerpRange computes the tight bounding range of sub on the
// perpendicular axis, or the zero value if sub is empty.
func tightPerpRange[C cmp.Ordered, P any](sub []Elem[C, P], axis Axis) Range[C] {
	if len(sub) == 0 {
		var zero Range[C]
		return zero
	}
	perp := axis.Next()
	r := sub[0].AABB().On(perp)
	for _, e := range sub[1:] {
		er := e.AABB().On(perp)
		if er.Start < r.Start {
			r.Start = er.Start
		}
		if er.End > r.End {
			r.End = er.End
		}
	}
	return r
}
