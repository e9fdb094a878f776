// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"cogentcore.org/exgui/colors"
	"cogentcore.org/exgui/math32"
)

// Box is a box gradient: a rounded-rectangle shaped gradient that
// fades from the first stop inside the box to the last stop outside
// of it, over the feather distance.
type Box struct {
	Base

	// the position of the box (its minimum point)
	Pos math32.Vector2

	// the size of the box
	Size math32.Vector2

	// the corner radius of the box
	Radius float32

	// Feather is the blur distance over which the gradient fades
	// from the inner color to the outer color.
	Feather float32
}

// NewBox returns a new [Box] gradient between the two given colors.
func NewBox(start, end colors.Color) *Box {
	b := &Box{Size: math32.Vec2(1, 1)}
	b.setSpan(start, end)
	return b
}

// SetPos sets the position of the gradient box and returns it.
func (b *Box) SetPos(pos math32.Vector2) *Box {
	b.Pos = pos
	return b
}

// SetSize sets the size of the gradient box and returns it.
func (b *Box) SetSize(size math32.Vector2) *Box {
	b.Size = size
	return b
}

// SetRadius sets the corner radius of the gradient box and returns it.
func (b *Box) SetRadius(radius float32) *Box {
	b.Radius = radius
	return b
}

// SetFeather sets the feather (blur) distance of the gradient box
// and returns it.
func (b *Box) SetFeather(feather float32) *Box {
	b.Feather = feather
	return b
}
