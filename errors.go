// Copyright (c) 2025 The broadphase authors
// SPDX-License-Identifier: MIT

package broadphase

import "errors"

// ErrRectIntersect is returned by Session.Query when the requested
// rectangle intersects a rectangle already issued against the same
// session. The session remains usable afterward; the caller may retry
// with a non-intersecting rectangle.
var ErrRectIntersect = errors.New("broadphase: query rectangle intersects a previously issued rectangle")
