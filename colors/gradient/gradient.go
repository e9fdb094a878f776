// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient provides linear, radial, and box color gradients.
package gradient

import (
	"cogentcore.org/exgui/colors"
)

// Gradient is the interface that all gradient types satisfy.
// All gradients are [colors.Paint] sources.
type Gradient interface {
	colors.Paint

	// AsBase returns the [Base] of the gradient.
	AsBase() *Base
}

// Base contains the data and logic common to all gradient types.
type Base struct {

	// the stops for the gradient; use AddStop to add stops
	Stops []Stop
}

// Stop represents a single stop in a gradient.
type Stop struct {

	// the color of the stop
	Color colors.Color

	// the position of the stop between 0 and 1
	Pos float32
}

// AddStop adds a new stop with the given color and position to the gradient.
func (b *Base) AddStop(color colors.Color, pos float32) {
	b.Stops = append(b.Stops, Stop{color, pos})
}

// AsBase returns the [Base] of the gradient.
func (b *Base) AsBase() *Base {
	return b
}

// Opaque reports whether every stop of the gradient is fully opaque.
// Part of the [colors.Paint] interface.
func (b *Base) Opaque() bool {
	for _, st := range b.Stops {
		if !st.Color.Opaque() {
			return false
		}
	}
	return true
}

// setSpan is a convenience helper for the two-stop case used by
// the New* constructors: one color at the start, one at the end.
func (b *Base) setSpan(start, end colors.Color) {
	b.Stops = b.Stops[:0]
	b.AddStop(start, 0)
	b.AddStop(end, 1)
}
