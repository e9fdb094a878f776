// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapedgt

import (
	"testing"

	"cogentcore.org/exgui/base/errors"
	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/text/shaped"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/stretchr/testify/assert"
)

func TestShape(t *testing.T) {
	sh := NewShaper()
	run, err := sh.Shape("LMRoman10", 24, "hello", math32.Vec2(10, 20))
	assert.NoError(t, err)

	assert.Greater(t, run.Metrics.Ascender, float32(0))
	assert.Less(t, run.Metrics.Descender, float32(0))
	assert.GreaterOrEqual(t, run.Metrics.LineHeight, run.Metrics.Ascender-run.Metrics.Descender)

	assert.Equal(t, 5, len(run.Glyphs))
	x := float32(10)
	for _, g := range run.Glyphs {
		assert.GreaterOrEqual(t, g.X, x)
		assert.LessOrEqual(t, g.MinX, g.MaxX)
		x = g.X
	}
	assert.Equal(t, run.Glyphs[4].MaxX, run.MaxX(10))
	assert.Greater(t, run.MaxX(10), float32(10))
}

func TestShapeFontNames(t *testing.T) {
	sh := NewShaper()
	for _, name := range []string{"", "default", "serif", "lmroman10", "LMROMAN10", "LMRoman10-Bold", "LMRoman10-Italic"} {
		run, err := sh.Shape(name, 16, "x", math32.Vector2{})
		assert.NoError(t, err, name)
		assert.Equal(t, 1, len(run.Glyphs), name)
	}
}

func TestShapeFontNotFound(t *testing.T) {
	sh := NewShaper()
	run, err := sh.Shape("Comic Sans", 16, "hello", math32.Vector2{})
	assert.Nil(t, run)
	assert.Error(t, err)

	fnf := &shaped.FontNotFoundError{}
	assert.True(t, errors.As(err, &fnf))
	assert.Equal(t, "Comic Sans", fnf.Font)
	assert.Equal(t, `font "Comic Sans" not found`, err.Error())
}

func TestShapeEmpty(t *testing.T) {
	sh := NewShaper()
	run, err := sh.Shape("default", 16, "", math32.Vec2(5, 0))
	assert.NoError(t, err)
	assert.Equal(t, 0, len(run.Glyphs))
	assert.Equal(t, float32(5), run.MaxX(5))
	assert.Greater(t, run.Metrics.LineHeight, float32(0))
}

func TestAddFont(t *testing.T) {
	sh := NewShaper()
	assert.NoError(t, sh.AddFont("Heading", lmroman10bold.TTF))
	_, err := sh.Shape("heading", 16, "abc", math32.Vector2{})
	assert.NoError(t, err)

	assert.Error(t, sh.AddFont("bad", []byte("not a font")))
}
