// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"cogentcore.org/exgui/colors"
	"cogentcore.org/exgui/math32"
)

// Linear is a linear gradient between a start and an end point.
type Linear struct {
	Base

	// the starting point of the gradient
	Start math32.Vector2

	// the ending point of the gradient
	End math32.Vector2
}

// NewLinear returns a new left-to-right [Linear] gradient
// between the two given colors.
func NewLinear(start, end colors.Color) *Linear {
	l := &Linear{End: math32.Vec2(1, 0)}
	l.setSpan(start, end)
	return l
}

// SetStart sets the starting point of the gradient and returns it.
func (l *Linear) SetStart(start math32.Vector2) *Linear {
	l.Start = start
	return l
}

// SetEnd sets the ending point of the gradient and returns it.
func (l *Linear) SetEnd(end math32.Vector2) *Linear {
	l.End = end
	return l
}
