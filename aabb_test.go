// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

import "testing"

func TestRangeOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Range[int]
		overlaps bool
	}{
		{"disjoint left", Range[int]{0, 5}, Range[int]{10, 20}, false},
		{"disjoint right", Range[int]{10, 20}, Range[int]{0, 5}, false},
		{"touching", Range[int]{0, 10}, Range[int]{10, 20}, true},
		{"nested", Range[int]{0, 20}, Range[int]{5, 10}, true},
		{"identical", Range[int]{0, 10}, Range[int]{0, 10}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.overlaps {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.overlaps)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := Range[int]{5, 10}
	for _, v := range []int{5, 7, 10} {
		if !r.Contains(v) {
			t.Errorf("Contains(%d) = false, want true", v)
		}
	}
	for _, v := range []int{4, 11} {
		if r.Contains(v) {
			t.Errorf("Contains(%d) = true, want false", v)
		}
	}
}

func TestAabbOverlaps(t *testing.T) {
	a := NewAabb(0, 10, 0, 10)
	b := NewAabb(5, 15, 5, 15)
	c := NewAabb(15, 20, 15, 20)

	if !a.Overlaps(b) {
		t.Error("a and b should overlap")
	}
	if a.Overlaps(c) {
		t.Error("a and c should not overlap")
	}
	if !b.Overlaps(c) {
		t.Error("b and c should touch at (15,15)")
	}
}

func TestElemAABBIsImmutableCopy(t *testing.T) {
	e := NewElem(NewAabb(0, 10, 0, 10), "payload")
	got := e.AABB()
	got.X.Start = 999
	if e.AABB().X.Start == 999 {
		t.Fatal("mutating a returned AABB copy affected the element's bounds")
	}
}

func TestPinPayloadMutation(t *testing.T) {
	elems := []Elem[int, int]{NewElem(NewAabb(0, 1, 0, 1), 0)}
	p := newPin(&elems[0])
	*p.Payload() = 42
	if elems[0].Payload != 42 {
		t.Fatalf("Payload() = %d, want 42", elems[0].Payload)
	}
	if p.AABB() != elems[0].AABB() {
		t.Fatal("Pin.AABB() diverged from the underlying element")
	}
}
