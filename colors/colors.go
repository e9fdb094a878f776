// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the solid color and paint source types
// used for filling and stroking shapes.
package colors

import (
	"fmt"
	"image/color"

	"cogentcore.org/exgui/math32"
)

// Paint is the interface for all paint sources that can color a fill or
// a stroke: a solid [Color] or one of the gradient types. The set of
// paint sources is fixed; renderers switch over the concrete types.
type Paint interface {
	// Opaque reports whether the paint source is fully opaque.
	Opaque() bool
}

// Color is an 8-bit RGBA color with straight (non-premultiplied) alpha,
// the form used throughout the scene styles and renderers.
type Color struct {
	R, G, B, A uint8
}

// RGB returns a fully opaque [Color] with the given components.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// RGBA returns a [Color] with the given components and alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// FromFloat32 returns a [Color] from the given float32 components
// in the 0-1 range, clamping as needed.
func FromFloat32(r, g, b, a float32) Color {
	return Color{f32To8(r), f32To8(g), f32To8(b), f32To8(a)}
}

func f32To8(v float32) uint8 {
	return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
}

// Standard colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Transparent = Color{}
)

// RGBA implements the [color.Color] interface, returning the
// alpha-premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

// Opaque reports whether the color is fully opaque.
// Part of the [Paint] interface.
func (c Color) Opaque() bool {
	return c.A == 255
}

// AlphaF32 returns the alpha component as a float32 in the 0-1 range.
func (c Color) AlphaF32() float32 {
	return float32(c.A) / 255
}

// ApplyOpacity returns the color with its alpha multiplied by the
// given 0-1 opacity factor. The color components are unchanged.
func (c Color) ApplyOpacity(opacity float32) Color {
	if opacity >= 1 {
		return c
	}
	c.A = f32To8(c.AlphaF32() * opacity)
	return c
}

// String returns the hex representation of the color: #RRGGBB,
// or #RRGGBBAA when not fully opaque.
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
