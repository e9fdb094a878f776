// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2(0, 0, 10, 10)
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vec2(10, 10), b.Size())
	assert.Equal(t, Vec2(5, 5), b.Center())

	assert.True(t, b.ContainsPoint(Vec2(5, 5)))
	assert.True(t, b.ContainsPoint(Vec2(0, 10)))
	assert.False(t, b.ContainsPoint(Vec2(-1, 5)))

	o := B2(5, 5, 20, 20)
	assert.True(t, b.IntersectsBox(o))
	assert.False(t, b.ContainsBox(o))
	assert.True(t, B2(0, 0, 30, 30).ContainsBox(o))

	assert.Equal(t, B2(5, 5, 10, 10), b.Intersect(o))
	assert.Equal(t, B2(2, 2, 12, 12), b.Translate(Vec2(2, 2)))
}

func TestBox2Union(t *testing.T) {
	a := B2(0, 0, 10, 10)
	b := B2(5, 5, 20, 20)

	assert.Equal(t, B2(0, 0, 20, 20), a.Union(b))
	assert.Equal(t, a.Union(b), b.Union(a))

	c := B2(-5, 2, 3, 30)
	assert.Equal(t, a.Union(b).Union(c), a.Union(b.Union(c)))

	// the union of all-zero boxes is the all-zero box, which is
	// a valid box at the origin, not an empty one
	zero := Box2{}
	assert.Equal(t, zero, zero.Union(zero))
	assert.False(t, zero.IsEmpty())
}

func TestBox2Empty(t *testing.T) {
	e := B2Empty()
	assert.True(t, e.IsEmpty())

	// expanding an empty box by any box yields that box
	e.ExpandByBox(B2(3, 4, 5, 6))
	assert.Equal(t, B2(3, 4, 5, 6), e)

	e = B2Empty()
	e.ExpandByPoint(Vec2(2, 2))
	e.ExpandByPoint(Vec2(-1, 5))
	assert.Equal(t, B2(-1, 2, 2, 5), e)

	assert.Equal(t, B2(0, 1, 2, 3), B2(2, 3, 0, 1).Canon())
}

func TestBox2MulMatrix2(t *testing.T) {
	b := B2(0, 0, 10, 10)

	assert.Equal(t, b, b.MulMatrix2(Identity2()))
	assert.Equal(t, B2(5, 5, 15, 15), b.MulMatrix2(Translate2D(5, 5)))
	assert.Equal(t, B2(0, 0, 20, 20), b.MulMatrix2(Scale2D(2, 2)))

	// rotation must map all four corners, not just min and max
	r := b.MulMatrix2(Rotate2D(DegToRad(90)))
	tolAssertEqualVector(t, standardTol, Vec2(-10, 0), r.Min)
	tolAssertEqualVector(t, standardTol, Vec2(0, 10), r.Max)
}
