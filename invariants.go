// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

import "fmt"

// AssertTreeInvariants walks the whole tree and returns a non-nil error
// at the first structural invariant it finds broken: every element
// assigned to exactly one node, each node's straddling set actually
// straddling its divider, each internal node's children stored at
// larger indices than the node itself, and perpendicular tight ranges
// actually bounding their straddling set. Intended for use in
// tests and debugging, not on any hot path.
func (t *Tree[C, P]) AssertTreeInvariants() error {
	if len(t.nodes) == 0 {
		if len(t.elems) != 0 {
			return fmt.Errorf("tree has no nodes but %d elems", len(t.elems))
		}
		return nil
	}

	seen := make([]bool, len(t.elems))
	if err := t.checkNode(0, seen); err != nil {
		return err
	}
	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("elem %d not covered by any node", i)
		}
	}
	return nil
}

func (t *Tree[C, P]) checkNode(nodeIdx int, seen []bool) error {
	n := &t.nodes[nodeIdx]

	for i := 0; i < n.length; i++ {
		idx := n.start + i
		if idx < 0 || idx >= len(t.elems) {
			return fmt.Errorf("node %d: elem index %d out of range", nodeIdx, idx)
		}
		if seen[idx] {
			return fmt.Errorf("node %d: elem %d already covered by another node", nodeIdx, idx)
		}
		seen[idx] = true

		r := t.elems[idx].AABB().On(n.axis.Next())
		if r.Start < n.perp.Start || r.End > n.perp.End {
			return fmt.Errorf("node %d: elem %d's perpendicular range %v is not contained in node's tight range %v", nodeIdx, idx, r, n.perp)
		}

		if n.hasDivider && !t.elems[idx].AABB().On(n.axis).Contains(n.divider) {
			return fmt.Errorf("node %d: elem %d does not straddle divider %v on axis %v", nodeIdx, idx, n.divider, n.axis)
		}
	}

	if n.leaf {
		return nil
	}

	if n.leftIdx <= nodeIdx || n.rightIdx <= nodeIdx {
		return fmt.Errorf("node %d: child indices must be greater than parent (left=%d right=%d)", nodeIdx, n.leftIdx, n.rightIdx)
	}
	if err := t.checkNode(n.leftIdx, seen); err != nil {
		return err
	}
	return t.checkNode(n.rightIdx, seen)
}
