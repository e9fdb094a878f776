// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"testing"

	"cogentcore.org/exgui/colors"
	"cogentcore.org/exgui/math32"
	"github.com/stretchr/testify/assert"
)

func TestGradientStops(t *testing.T) {
	l := NewLinear(colors.Red, colors.Blue)
	assert.Equal(t, []Stop{{colors.Red, 0}, {colors.Blue, 1}}, l.Stops)
	assert.Equal(t, math32.Vec2(0, 0), l.Start)
	assert.Equal(t, math32.Vec2(1, 0), l.End)

	l.SetStart(math32.Vec2(10, 10)).SetEnd(math32.Vec2(10, 50))
	assert.Equal(t, math32.Vec2(10, 50), l.End)

	l.AddStop(colors.Green, 0.5)
	assert.Len(t, l.Stops, 3)
}

func TestGradientOpaque(t *testing.T) {
	r := NewRadial(colors.Black, colors.White)
	assert.True(t, r.Opaque())

	r.AddStop(colors.RGBA(0, 0, 0, 128), 0.5)
	assert.False(t, r.Opaque())

	b := NewBox(colors.Transparent, colors.White)
	assert.False(t, b.Opaque())
}

func TestGradientAsPaint(t *testing.T) {
	// all gradient types must satisfy colors.Paint and Gradient
	var paints = []colors.Paint{
		NewLinear(colors.Red, colors.Blue),
		NewRadial(colors.Red, colors.Blue),
		NewBox(colors.Red, colors.Blue),
	}
	for _, p := range paints {
		g, ok := p.(Gradient)
		assert.True(t, ok)
		assert.Len(t, g.AsBase().Stops, 2)
	}
}
