// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"testing"

	"cogentcore.org/exgui/math32"
	"github.com/stretchr/testify/assert"
)

func TestTransformNone(t *testing.T) {
	tr := Transform{}
	assert.True(t, tr.IsNone())
	assert.Equal(t, math32.Identity2(), tr.LocalMatrix())

	// a nonexistent transform passes the parent matrix through
	parent := math32.Translate2D(10, 20)
	assert.Equal(t, parent, tr.ComposeGlobal(parent))
	assert.Equal(t, parent, tr.Global)
}

func TestTransformCompose(t *testing.T) {
	tr := NewTransform(math32.Translate2D(5, 0))
	assert.False(t, tr.IsNone())

	parent := math32.Translate2D(10, 20)
	got := tr.ComposeGlobal(parent)
	assert.Equal(t, math32.Translate2D(15, 20), got)
	assert.Equal(t, got, tr.Global)
}

func TestTransformAbsolute(t *testing.T) {
	tr := NewTransform(math32.Translate2D(5, 0))
	tr.Absolute = true

	// an absolute transform ignores the parent matrix
	got := tr.ComposeGlobal(math32.Translate2D(10, 20))
	assert.Equal(t, math32.Translate2D(5, 0), got)

	// absolute with no local matrix composes to identity
	abs := Transform{Absolute: true}
	assert.False(t, abs.IsNone())
	assert.Equal(t, math32.Identity2(), abs.ComposeGlobal(math32.Translate2D(10, 20)))
}

func TestClip(t *testing.T) {
	none := Clip{}
	assert.True(t, none.IsNone())

	c := NewClip(Abs(1), Abs(2), Pct(50), Abs(4))
	assert.False(t, c.IsNone())

	// Or keeps an existing clip and falls back otherwise
	assert.Equal(t, c, c.Or(none))
	assert.Equal(t, c, none.Or(c))
	assert.True(t, none.Or(Clip{}).IsNone())

	c.Reset()
	c.ResolvePercent(math32.Vec2(200, 100))
	assert.Equal(t, float32(100), c.Scissor.Width.Dots)
	assert.Equal(t, math32.B2(1, 2, 101, 6), c.Scissor.Bounds())
}
