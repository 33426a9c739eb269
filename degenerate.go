// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

// IsDegenerate reports whether t's element distribution looks badly
// clustered: t is flagged degenerate when the top quartile of levels (the
// levels nearest the root) holds more elements in its straddling sets
// than the bottom three quartiles combined. This is a heuristic, not a formally validated
// threshold: a false positive or negative doesn't indicate a bug, only a
// tree shape worth a closer look.
func (t *Tree[C, P]) IsDegenerate() bool {
	counts := t.levelOccupancy()
	if len(counts) < 4 {
		return false
	}

	q := len(counts) / 4
	if q == 0 {
		return false
	}
	topQuartile := sum(counts[:q])
	restQuartiles := sum(counts[q:])

	return topQuartile > restQuartiles
}

// levelOccupancy returns, for each level of the tree (0 == root), the
// total number of elements held in that level's straddling sets.
func (t *Tree[C, P]) levelOccupancy() []int {
	if len(t.nodes) == 0 {
		return nil
	}
	counts := make([]int, t.height)
	t.walkLevels(0, 0, counts)
	return counts
}

func (t *Tree[C, P]) walkLevels(nodeIdx, level int, counts []int) {
	n := &t.nodes[nodeIdx]
	counts[level] += n.length
	if n.leaf {
		return
	}
	t.walkLevels(n.leftIdx, level+1, counts)
	t.walkLevels(n.rightIdx, level+1, counts)
}

func sum(vals []int) int {
	s := 0
	for _, v := range vals {
		s += v
	}
	return s
}
