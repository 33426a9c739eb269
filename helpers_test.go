// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

import "math/rand/v2"

// seededElems generates n pseudo-random AABBs on a PCG source seeded
// with fixed constants, so failures reproduce deterministically across
// runs.
func seededElems(n int) []Elem[int, int] {
	prng := rand.New(rand.NewPCG(42, 42))
	elems := make([]Elem[int, int], n)
	for i := range elems {
		x := prng.IntN(1000)
		y := prng.IntN(1000)
		w := 1 + prng.IntN(20)
		h := 1 + prng.IntN(20)
		elems[i] = NewElem(NewAabb(x, x+w, y, y+h), i)
	}
	return elems
}

type pairKey struct{ a, b int }

func normalizedPair(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// collectPairPayloads runs the sequential colliding-pairs traversal and
// returns the set of payload pairs it reported.
func collectPairPayloads(tree *Tree[int, int]) map[pairKey]bool {
	out := make(map[pairKey]bool)
	tree.FindCollidingPairs(func(a, b Pin[int, int]) {
		out[normalizedPair(*a.Payload(), *b.Payload())] = true
	})
	return out
}

func samePairSet(a, b map[pairKey]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
