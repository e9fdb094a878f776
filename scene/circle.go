// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/paint/ppath"
	"cogentcore.org/exgui/paint/render"
	"cogentcore.org/exgui/styles"
)

// Circle is a circle node. Its center and radius can be given
// absolutely, as percentages of the parent bound, or automatically
// from its children bounds: the center from the padded center of the
// children union, and the radius from half of its larger padded
// extent. Children are laid out in the padded content box, as for
// [Rect].
type Circle struct {
	NodeBase

	// CX and CY are the position of the center. Percent values resolve
	// against the parent width and height and are offset by the parent
	// minimum.
	CX, CY styles.Dimension

	// R is the radius. Percent values resolve against the smaller of
	// the parent width and height.
	R styles.Dimension

	// Padding is the padding between this circle and the content box
	// its children are laid out in.
	Padding styles.Padding

	// Fill is the fill of the circle. nil falls back to the cascading
	// default fill.
	Fill *styles.Fill

	// Stroke is the stroke of the circle. nil falls back to the
	// cascading default stroke.
	Stroke *styles.Stroke

	// Transparency is the 0-1 transparency of this node, combined
	// multiplicatively with the cascading default transparency.
	Transparency float32
}

func (cr *Circle) resolve(sc *Scene, parent math32.Box2, matrix math32.Matrix2, defaults styles.Defaults) math32.Box2 {
	cr.CX.Reset()
	cr.CY.Reset()
	cr.R.Reset()
	cr.Padding.Reset()
	cr.Clip.Reset()

	size := parent.Size()
	if cr.CX.ResolvePercent(size.X) {
		cr.CX.Dots += parent.Min.X
	}
	if cr.CY.ResolvePercent(size.Y) {
		cr.CY.Dots += parent.Min.Y
	}
	cr.R.ResolvePercent(math32.Min(size.X, size.Y))
	cr.Padding.ResolvePercent(size)
	cr.Clip.ResolvePercent(size)

	mat := cr.Transform.ComposeGlobal(matrix)
	mat.X0 += cr.Padding.Left.Dots
	mat.Y0 += cr.Padding.Top.Dots

	cr.Bound = cr.bound()
	inner := cr.resolveChildren(sc, cr.Bound, mat, defaults)

	center := inner.Center()
	cr.CX.ResolveAuto(center.X + cr.Padding.Left.Dots)
	cr.CY.ResolveAuto(center.Y + cr.Padding.Top.Dots)
	isize := inner.Size()
	cr.R.ResolveAuto(math32.Max(isize.X+cr.Padding.Horizontal(), isize.Y+cr.Padding.Vertical()) / 2)

	cr.Bound = cr.bound()
	return cr.Bound
}

func (cr *Circle) bound() math32.Box2 {
	cx, cy, r := cr.CX.Dots, cr.CY.Dots, cr.R.Dots
	return math32.B2(cx-r, cy-r, cx+r, cy+r)
}

func (cr *Circle) compose(list *render.Render, defaults styles.Defaults) error {
	ctx := renderContext(cr.Fill, cr.Stroke, cr.Transparency, cr.Clip, &cr.Transform, defaults)
	if ctx.Fill != nil || ctx.Stroke != nil {
		pp := ppath.New().Circle(cr.CX.Dots, cr.CY.Dots, cr.R.Dots)
		if !pp.Empty() {
			list.Add(render.NewPath(*pp, ctx))
		}
	}
	return cr.composeChildren(list, defaults)
}
