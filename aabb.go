// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

import "cmp"

// Range is an inclusive coordinate interval on one axis: Start <= End.
type Range[C cmp.Ordered] struct {
	Start, End C
}

// Overlaps reports whether r and o share at least one point, touching
// endpoints included.
func (r Range[C]) Overlaps(o Range[C]) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// Contains reports whether the coordinate v lies within r, inclusive.
func (r Range[C]) Contains(v C) bool {
	return r.Start <= v && v <= r.End
}

// Aabb is an axis-aligned bounding box: one Range per axis. It also serves
// as the query rectangle type for FindAllInRect and the multi-rect session.
type Aabb[C cmp.Ordered] struct {
	X, Y Range[C]
}

// NewAabb builds an Aabb from the four bounds directly: x_lo, x_hi,
// y_lo, y_hi.
func NewAabb[C cmp.Ordered](xLo, xHi, yLo, yHi C) Aabb[C] {
	return Aabb[C]{X: Range[C]{xLo, xHi}, Y: Range[C]{yLo, yHi}}
}

// On returns the Range projection of the box on the given axis.
func (b Aabb[C]) On(axis Axis) Range[C] {
	if axis == AxisX {
		return b.X
	}
	return b.Y
}

// Overlaps reports whether b and o overlap on both axes, touching
// endpoints counting as overlap.
func (b Aabb[C]) Overlaps(o Aabb[C]) bool {
	return b.X.Overlaps(o.X) && b.Y.Overlaps(o.Y)
}

// Point is a single 2D coordinate, used by ray casts (as origin and
// direction) and k-nearest-neighbor queries (as the query point).
type Point[C cmp.Ordered] struct {
	X, Y C
}

// On returns the point's coordinate on the given axis.
func (p Point[C]) On(axis Axis) C {
	if axis == AxisX {
		return p.X
	}
	return p.Y
}

// Elem is an AABB-carrying element of a Tree. Bounds is unexported and has
// no setter: once constructed, an Elem's geometry cannot be reached or
// mutated through any exported method, so its AABB stays stable for as
// long as a Tree holds it, with no reliance on caller discipline. Payload
// is exported and is never read or written by the tree itself.
type Elem[C cmp.Ordered, P any] struct {
	bounds  Aabb[C]
	Payload P
}

// NewElem constructs an Elem with the given immutable bounds and initial
// payload.
func NewElem[C cmp.Ordered, P any](bounds Aabb[C], payload P) Elem[C, P] {
	return Elem[C, P]{bounds: bounds, Payload: payload}
}

// AABB returns a copy of the element's bounding box.
func (e Elem[C, P]) AABB() Aabb[C] {
	return e.bounds
}

// Pin is a mutable reference to a single Elem still owned by a Tree. It
// exposes the element's AABB only as an immutable copy and the payload
// only through a pointer that cannot reach the bounds field, so a query
// callback can freely mutate Payload without ever being able to corrupt
// the geometry the tree has already indexed.
type Pin[C cmp.Ordered, P any] struct {
	elem *Elem[C, P]
}

func newPin[C cmp.Ordered, P any](e *Elem[C, P]) Pin[C, P] {
	return Pin[C, P]{elem: e}
}

// AABB returns a copy of the pinned element's bounding box.
func (p Pin[C, P]) AABB() Aabb[C] {
	return p.elem.AABB()
}

// Payload returns a pointer to the pinned element's mutable payload.
func (p Pin[C, P]) Payload() *P {
	return &p.elem.Payload
}
