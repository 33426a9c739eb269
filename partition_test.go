// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

import "testing"

func TestPartitionThreeWay(t *testing.T) {
	elems := []Elem[int, string]{
		NewElem(NewAabb(0, 2, 0, 0), "left"),
		NewElem(NewAabb(4, 6, 0, 0), "straddle"),
		NewElem(NewAabb(8, 10, 0, 0), "right"),
		NewElem(NewAabb(5, 5, 0, 0), "touch-left-end"),
		NewElem(NewAabb(5, 9, 0, 0), "touch-right-start"),
	}

	middleLen, leftLen := partition(elems, AxisX, 5)
	rightLen := len(elems) - middleLen - leftLen

	middle := elems[:middleLen]
	left := elems[middleLen : middleLen+leftLen]
	right := elems[middleLen+leftLen:]

	if leftLen != 1 || left[0].Payload != "left" {
		t.Fatalf("left = %v, want [left]", payloadsOf(left))
	}
	if rightLen != 1 || right[0].Payload != "right" {
		t.Fatalf("right = %v, want [right]", payloadsOf(right))
	}
	wantMiddle := map[string]bool{"straddle": true, "touch-left-end": true, "touch-right-start": true}
	if middleLen != len(wantMiddle) {
		t.Fatalf("middle = %v, want 3 straddling elements", payloadsOf(middle))
	}
	for _, e := range middle {
		if !wantMiddle[e.Payload] {
			t.Errorf("unexpected element %q in middle", e.Payload)
		}
	}
}

func TestPartitionEmpty(t *testing.T) {
	var elems []Elem[int, string]
	middleLen, leftLen := partition(elems, AxisX, 0)
	if middleLen != 0 || leftLen != 0 {
		t.Fatalf("partition of empty slice = (%d, %d), want (0, 0)", middleLen, leftLen)
	}
}

func TestPartitionAllStraddle(t *testing.T) {
	elems := []Elem[int, int]{
		NewElem(NewAabb(0, 10, 0, 0), 0),
		NewElem(NewAabb(0, 10, 0, 0), 1),
		NewElem(NewAabb(0, 10, 0, 0), 2),
	}
	middleLen, leftLen := partition(elems, AxisX, 5)
	if middleLen != 3 || leftLen != 0 {
		t.Fatalf("partition = (%d, %d), want (3, 0)", middleLen, leftLen)
	}
}

func payloadsOf(elems []Elem[int, string]) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.Payload
	}
	return out
}
