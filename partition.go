// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

import "cmp"

// partition reorders elems in place into three contiguous runs —
// middle || left || right — around the given axis and divider value:
//
//   - middle: every element whose range on axis contains divider
//   - left:   every element whose range.End on axis is strictly less
//     than divider
//   - right:  every element whose range.Start on axis is strictly
//     greater than divider
//
// It returns the lengths of the middle and left runs; the right run is
// whatever remains. The algorithm is a single forward pass with two
// cursors, middleEnd <= leftEnd <= i: an element found to straddle the
// divider is swapped to the front of the tail region and then again to
// the front of the left region; an element strictly left of the divider
// is swapped to the front of the tail region; an element strictly right
// of the divider is left where it is, implicitly joining the tail that
// becomes the final right run.
func partition[C cmp.Ordered, P any](elems []Elem[C, P], axis Axis, divider C) (middleLen, leftLen int) {
	middleEnd, leftEnd := 0, 0

	for i := 0; i < len(elems); i++ {
		r := elems[i].AABB().On(axis)

		switch {
		case r.Contains(divider):
			elems[i], elems[leftEnd] = elems[leftEnd], elems[i]
			elems[leftEnd], elems[middleEnd] = elems[middleEnd], elems[leftEnd]
			middleEnd++
			leftEnd++
		case r.End < divider:
			elems[i], elems[leftEnd] = elems[leftEnd], elems[i]
			leftEnd++
		default:
			// r.Start > divider: stays in the tail, which becomes "right".
		}
	}

	return middleEnd, leftEnd - middleEnd
}
