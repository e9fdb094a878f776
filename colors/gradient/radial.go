// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"cogentcore.org/exgui/colors"
	"cogentcore.org/exgui/math32"
)

// Radial is a radial gradient between an inner and an outer radius
// around a center point.
type Radial struct {
	Base

	// the center point of the gradient
	Center math32.Vector2

	// the inner radius, at which the first stop is placed
	InnerRadius float32

	// the outer radius, at which the last stop is placed
	OuterRadius float32
}

// NewRadial returns a new centered [Radial] gradient
// between the two given colors.
func NewRadial(start, end colors.Color) *Radial {
	r := &Radial{OuterRadius: 1}
	r.setSpan(start, end)
	return r
}

// SetCenter sets the center point of the gradient and returns it.
func (r *Radial) SetCenter(center math32.Vector2) *Radial {
	r.Center = center
	return r
}

// SetInnerRadius sets the inner radius of the gradient and returns it.
func (r *Radial) SetInnerRadius(radius float32) *Radial {
	r.InnerRadius = radius
	return r
}

// SetOuterRadius sets the outer radius of the gradient and returns it.
func (r *Radial) SetOuterRadius(radius float32) *Radial {
	r.OuterRadius = radius
	return r
}
