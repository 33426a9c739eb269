// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

import "cmp"

// NaiveCollidingPairs reports every overlapping pair of elems by brute
// force, in O(n^2) comparisons. It exists as a reference oracle for
// property tests asserting that Tree.FindCollidingPairs reports the same
// set of pairs as this unoptimized baseline, never as an API meant for
// production use.
func NaiveCollidingPairs[C cmp.Ordered, P any](elems []Elem[C, P], cb func(ai, bi int)) {
	for i := 0; i < len(elems); i++ {
		for j := i + 1; j < len(elems); j++ {
			if elems[i].AABB().Overlaps(elems[j].AABB()) {
				cb(i, j)
			}
		}
	}
}

// NaiveFindAllInRect reports every index in elems whose AABB overlaps
// rect, by brute force. Reference oracle for FindAllInRect property
// tests.
func NaiveFindAllInRect[C cmp.Ordered, P any](elems []Elem[C, P], rect Aabb[C], cb func(i int)) {
	for i := range elems {
		if elems[i].AABB().Overlaps(rect) {
			cb(i)
		}
	}
}
