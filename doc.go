// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

// Package broadphase provides a broad-phase spatial index for axis-aligned
// bounding box (AABB) collision detection in 2D.
//
// The index is built in place over a caller-owned slice of elements: a
// two-dimensional k-d-style tree with sorted in-node storage, alternating
// the split axis with depth. Construction never reallocates or copies the
// slice's backing array — it only permutes element order within it.
//
// Once built, a Tree drives several families of spatial queries at
// substantially better than naive O(n^2) cost:
//
//   - FindCollidingPairs / FindCollidingPairsParallel: every pair of
//     overlapping elements, exactly once each.
//   - FindAllInRect / MultiRect: elements overlapping a query rectangle.
//   - CastRay: nearest element(s) hit by a ray.
//   - FindKNearest: the k elements nearest a query point.
//
// An element's AABB must not change while the element is owned by a Tree.
// This module enforces that statically: Elem keeps its bounds unexported
// and exposes mutable access only to its Payload field through Pin, so
// there is no exported path that lets a caller reach back into the
// geometry a Tree has already indexed.
package broadphase
