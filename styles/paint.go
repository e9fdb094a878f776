// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"

	"cogentcore.org/exgui/colors"
)

// Fill contains all the properties for filling a region.
type Fill struct {

	// Color is the paint source for filling the region.
	Color colors.Paint
}

// NewFill returns a new [Fill] with the given paint source.
func NewFill(paint colors.Paint) *Fill {
	return &Fill{Color: paint}
}

// LineCaps specifies the end-cap of a line: stroke-linecap property in SVG.
type LineCaps int32

const (
	// LineCapButt indicates to draw no line caps; it draws a
	// line with the length of the specified length.
	LineCapButt LineCaps = iota

	// LineCapRound indicates to draw a semicircle on each line
	// end with a diameter of the stroke width.
	LineCapRound

	// LineCapSquare indicates to draw a rectangle on each line end
	// with a height of the stroke width and a width of half of the
	// stroke width.
	LineCapSquare
)

func (lc LineCaps) String() string {
	switch lc {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return fmt.Sprintf("LineCaps(%d)", int32(lc))
}

// LineJoins specifies the way in which lines are joined together:
// stroke-linejoin property in SVG.
type LineJoins int32

const (
	LineJoinMiter LineJoins = iota
	LineJoinRound
	LineJoinBevel
)

func (lj LineJoins) String() string {
	switch lj {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	}
	return fmt.Sprintf("LineJoins(%d)", int32(lj))
}

// Stroke contains all the properties for painting a line.
type Stroke struct {

	// Color is the paint source for stroking the line.
	Color colors.Paint

	// Width is the line width in dots.
	Width float32

	// Cap specifies how to draw the end cap of lines.
	Cap LineCaps

	// Join specifies how to join line segments.
	Join LineJoins

	// MiterLimit is the limit of how far to miter; must be 1 or larger.
	MiterLimit float32
}

// NewStroke returns a new [Stroke] with the given paint source
// and default line parameters.
func NewStroke(paint colors.Paint) *Stroke {
	ss := &Stroke{Color: paint}
	ss.Defaults()
	return ss
}

// Defaults sets the default line parameters, preserving the paint source.
func (ss *Stroke) Defaults() {
	ss.Width = 1
	ss.Cap = LineCapButt
	ss.Join = LineJoinMiter
	ss.MiterLimit = 10
}

// Defaults are the cascading shape style values: the values a node
// falls back on for anything it does not set itself. Group nodes
// derive a new Defaults for their subtree; passing Defaults by value
// keeps each derivation scoped to its own branch.
type Defaults struct {

	// Transparency is the accumulated 0-1 transparency of the
	// enclosing groups.
	Transparency float32

	// Fill is the fallback fill. nil means no fill.
	Fill *Fill

	// Stroke is the fallback stroke. nil means no stroke.
	Stroke *Stroke

	// Clip is the fallback clip.
	Clip Clip
}
