// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"cogentcore.org/exgui/math32"
)

// Clip specifies the clipping of a node. The zero value is no
// clipping; otherwise Scissor gives a clipping rectangle.
type Clip struct {

	// Scissor is the clipping rectangle. nil means no clipping.
	Scissor *Scissor
}

// NewClip returns a new [Clip] with the given scissor rectangle.
func NewClip(x, y, width, height Dimension) Clip {
	return Clip{Scissor: &Scissor{X: x, Y: y, Width: width, Height: height}}
}

// IsNone returns whether this clip is the no-clipping value.
func (c Clip) IsNone() bool {
	return c.Scissor == nil
}

// Or returns this clip if it exists, and otherwise the other
// given clip.
func (c Clip) Or(other Clip) Clip {
	if c.IsNone() {
		return other
	}
	return c
}

// Reset re-arms the scissor dimensions for a fresh layout pass.
func (c *Clip) Reset() {
	if c.Scissor == nil {
		return
	}
	c.Scissor.X.Reset()
	c.Scissor.Y.Reset()
	c.Scissor.Width.Reset()
	c.Scissor.Height.Reset()
}

// ResolvePercent resolves the percentage scissor dimensions against
// the given parent size: x and width against the width, y and height
// against the height. Scissor coordinates are not offset by the
// parent position.
func (c *Clip) ResolvePercent(size math32.Vector2) {
	if c.Scissor == nil {
		return
	}
	c.Scissor.X.ResolvePercent(size.X)
	c.Scissor.Y.ResolvePercent(size.Y)
	c.Scissor.Width.ResolvePercent(size.X)
	c.Scissor.Height.ResolvePercent(size.Y)
}

// Scissor is a clipping rectangle with an optional transform of
// its own.
type Scissor struct {
	X      Dimension
	Y      Dimension
	Width  Dimension
	Height Dimension

	// Transform is the scissor's own transform, independent of the
	// transform of the node it clips.
	Transform Transform
}

// Bounds returns the resolved scissor rectangle as a [math32.Box2].
func (sc *Scissor) Bounds() math32.Box2 {
	return math32.B2(sc.X.Dots, sc.Y.Dots, sc.X.Dots+sc.Width.Dots, sc.Y.Dots+sc.Height.Dots).Canon()
}
