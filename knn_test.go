// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

import (
	"math"
	"testing"
)

type centerPointHandler struct{}

func (centerPointHandler) DistToElem(point Point[int], e Pin[int, int]) float64 {
	b := e.AABB()
	cx := float64(b.X.Start+b.X.End) / 2
	cy := float64(b.Y.Start+b.Y.End) / 2
	dx := float64(point.X) - cx
	dy := float64(point.Y) - cy
	return math.Hypot(dx, dy)
}

func (centerPointHandler) DistToAxis(point Point[int], axis Axis, value int) float64 {
	return math.Abs(float64(point.On(axis) - value))
}

// TestFindKNearestOrdersByDistance checks that results come back
// nearest-first; payloads are points encoded as ints packed x*1000+y
// for easy comparison.
func TestFindKNearestOrdersByDistance(t *testing.T) {
	pack := func(x, y int) int { return x*1000 + y }
	elems := []Elem[int, int]{
		NewElem(NewAabb(0, 10, 0, 10), pack(5, 5)),
		NewElem(NewAabb(2, 4, 2, 4), pack(3, 3)),
		NewElem(NewAabb(6, 8, 6, 8), pack(7, 7)),
	}
	tree := Build(elems)

	res := tree.FindKNearest(Point[int]{X: 30, Y: 30}, 2, centerPointHandler{})

	if len(res.Elems) != 2 {
		t.Fatalf("got %d results, want 2", len(res.Elems))
	}
	got := []int{*res.Elems[0].Payload(), *res.Elems[1].Payload()}
	want := []int{pack(7, 7), pack(5, 5)}
	if got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("nearest order = %v, want %v", got, want)
	}
}

func TestFindKNearestZeroK(t *testing.T) {
	elems := seededElems(10)
	tree := Build(elems)
	res := tree.FindKNearest(Point[int]{X: 0, Y: 0}, 0, knnIntHandler{})
	if len(res.Elems) != 0 {
		t.Fatalf("k=0 returned %d elements, want 0", len(res.Elems))
	}
}

func TestFindKNearestWithTies(t *testing.T) {
	elems := []Elem[int, int]{
		NewElem(NewAabb(10, 10, 0, 0), 0),
		NewElem(NewAabb(-10, -10, 0, 0), 1),
		NewElem(NewAabb(0, 0, 10, 10), 2),
		NewElem(NewAabb(100, 100, 100, 100), 3),
	}
	tree := Build(elems)
	res := tree.FindKNearest(Point[int]{X: 0, Y: 0}, 1, knnIntHandler{})
	if len(res.Elems) < 2 {
		t.Fatalf("expected tied results at k=1, got %d", len(res.Elems))
	}
}

type knnIntHandler struct{}

func (knnIntHandler) DistToElem(point Point[int], e Pin[int, int]) float64 {
	b := e.AABB()
	cx := float64(b.X.Start+b.X.End) / 2
	cy := float64(b.Y.Start+b.Y.End) / 2
	return math.Hypot(float64(point.X)-cx, float64(point.Y)-cy)
}

func (knnIntHandler) DistToAxis(point Point[int], axis Axis, value int) float64 {
	return math.Abs(float64(point.On(axis) - value))
}
