// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgrender

import (
	"strings"
	"testing"

	"cogentcore.org/exgui/colors"
	"cogentcore.org/exgui/colors/gradient"
	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/paint/ppath"
	"cogentcore.org/exgui/paint/render"
	"cogentcore.org/exgui/styles"
	"github.com/stretchr/testify/assert"
)

func TestRenderPath(t *testing.T) {
	rs := New(math32.Vec2(100, 100))
	pp := ppath.New().Rectangle(10, 10, 80, 40)
	rs.Render(render.Render{render.NewPath(*pp, render.Context{
		Fill:    styles.NewFill(colors.Red),
		Stroke:  styles.NewStroke(colors.Black),
		Opacity: 1,
	})})
	src := string(rs.Source())

	assert.Contains(t, src, `viewBox="0 0 100 100"`)
	assert.Contains(t, src, `<path d="M10 10H90V50H10z" fill="#FF0000" stroke="#000000" stroke-width="1"/>`)
	assert.NotContains(t, src, "opacity")
	assert.NotContains(t, src, "<defs>")
}

func TestRenderContext(t *testing.T) {
	rs := New(math32.Vec2(100, 100))
	pp := ppath.New().Rectangle(0, 0, 10, 10)
	ctx := render.Context{
		Fill:      styles.NewFill(colors.Blue),
		Opacity:   0.5,
		Clip:      styles.NewClip(styles.Abs(1), styles.Abs(2), styles.Abs(3), styles.Abs(4)),
		Transform: math32.Translate2D(5, 6),
	}
	ctx.Clip.Reset()
	ctx.Clip.ResolvePercent(math32.Vec2(100, 100))
	rs.Render(render.Render{render.NewPath(*pp, ctx)})
	src := string(rs.Source())

	assert.Contains(t, src, `opacity="0.5"`)
	assert.Contains(t, src, `clip-path="url(#d0)"`)
	assert.Contains(t, src, `<clipPath id="d0"><rect x="1" y="2" width="3" height="4"/></clipPath>`)
	assert.Contains(t, src, `transform="translate(5,6)"`)
}

func TestRenderGradient(t *testing.T) {
	rs := New(math32.Vec2(100, 100))
	pp := ppath.New().Rectangle(0, 0, 10, 10)
	lg := gradient.NewLinear(colors.Red, colors.Blue).SetStart(math32.Vec2(0, 0)).SetEnd(math32.Vec2(10, 0))
	rs.Render(render.Render{render.NewPath(*pp, render.Context{
		Fill:    &styles.Fill{Color: lg},
		Opacity: 1,
	})})
	src := string(rs.Source())

	assert.Contains(t, src, `fill="url(#d0)"`)
	assert.Contains(t, src, `<linearGradient id="d0" gradientUnits="userSpaceOnUse" x1="0" y1="0" x2="10" y2="0">`)
	assert.Contains(t, src, `<stop offset="0" stop-color="#FF0000"/>`)
	assert.Contains(t, src, `<stop offset="1" stop-color="#0000FF"/>`)
}

func TestRenderText(t *testing.T) {
	rs := New(math32.Vec2(100, 100))
	rs.Render(render.Render{&render.Text{
		Content:  "a < b",
		Font:     "LMRoman10",
		Size:     16,
		Position: math32.Vec2(10, 20),
		Color:    colors.Black,
		Align:    styles.TextAlign{Hor: styles.AlignCenter},
		Context:  render.Context{Opacity: 1},
	}})
	src := string(rs.Source())

	assert.Contains(t, src, `<text x="10" y="20" fill="#000000" font-family="LMRoman10" font-size="16" text-anchor="middle">a &lt; b</text>`)
}

func TestRenderReplaces(t *testing.T) {
	rs := New(math32.Vec2(50, 50))
	pp := ppath.New().Rectangle(0, 0, 10, 10)
	item := render.NewPath(*pp, render.Context{Fill: styles.NewFill(colors.Black), Opacity: 1})
	rs.Render(render.Render{item})
	rs.Render(render.Render{item})

	// rendering again replaces the prior content instead of appending
	assert.Equal(t, 1, strings.Count(string(rs.Source()), "<path"))
}
