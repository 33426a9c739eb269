// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

import "cmp"

// NodeData is the serializable form of one builder.go node: everything
// needed to reconstruct a Tree's shape without recomputing a single
// divider or re-partitioning a single element.
type NodeData[C cmp.Ordered] struct {
	Axis       Axis
	HasDivider bool
	Divider    C
	Start      int
	Length     int
	Perp       Range[C]
	Leaf       bool
	LeftIdx    int
	RightIdx   int
}

// TreeData is a flattened, serializable snapshot of a Tree's shape (its
// preorder node array and height). It does not include the indexed
// elements themselves: a TreeData is only meaningful together with the
// exact []Elem slice — in the same order — that GetTreeData was called
// on.
type TreeData[C cmp.Ordered] struct {
	Nodes  []NodeData[C]
	Height int
}

// GetTreeData extracts t's shape into a TreeData value, suitable for
// serialization and later reconstruction via FromTreeData against the
// same (or an identically ordered) element slice.
func (t *Tree[C, P]) GetTreeData() TreeData[C] {
	data := TreeData[C]{
		Nodes:  make([]NodeData[C], len(t.nodes)),
		Height: t.height,
	}
	for i, n := range t.nodes {
		data.Nodes[i] = NodeData[C]{
			Axis:       n.axis,
			HasDivider: n.hasDivider,
			Divider:    n.divider,
			Start:      n.start,
			Length:     n.length,
			Perp:       n.perp,
			Leaf:       n.leaf,
			LeftIdx:    n.leftIdx,
			RightIdx:   n.rightIdx,
		}
	}
	return data
}

// FromTreeData reconstructs a Tree over elems using a previously
// extracted TreeData, without recomputing any divider or re-running the
// partition: it trusts that elems is in the exact order GetTreeData's
// source tree left its backing slice in. Callers that reorder or mutate
// elems between GetTreeData and FromTreeData void that trust and will
// get a Tree whose queries silently misbehave.
func FromTreeData[C cmp.Ordered, P any](elems []Elem[C, P], data TreeData[C]) *Tree[C, P] {
	t := &Tree[C, P]{
		elems:  elems,
		nodes:  make([]node[C, P], len(data.Nodes)),
		height: data.Height,
	}
	for i, nd := range data.Nodes {
		t.nodes[i] = node[C, P]{
			axis:       nd.Axis,
			hasDivider: nd.HasDivider,
			divider:    nd.Divider,
			start:      nd.Start,
			length:     nd.Length,
			perp:       nd.Perp,
			leaf:       nd.Leaf,
			leftIdx:    nd.LeftIdx,
			rightIdx:   nd.RightIdx,
		}
	}
	return t
}
