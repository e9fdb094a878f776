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

// Rect is a rectangle node. Its position and size can be given
// absolutely, as percentages of the parent bound, or automatically
// from the union of its children bounds expanded by the padding.
// Children are laid out in the padded content box: their coordinate
// space is translated by the left and top padding.
type Rect struct {
	NodeBase

	// X and Y are the position of the top left corner. Percent values
	// resolve against the parent width and height and are offset by
	// the parent minimum, so that 0% is the parent's left and top edge.
	X, Y styles.Dimension

	// Width and Height are the size. Percent values resolve against
	// the parent width and height.
	Width, Height styles.Dimension

	// Padding is the padding between this rectangle and the content
	// box its children are laid out in.
	Padding styles.Padding

	// Fill is the fill of the rectangle. nil falls back to the
	// cascading default fill.
	Fill *styles.Fill

	// Stroke is the stroke of the rectangle. nil falls back to the
	// cascading default stroke.
	Stroke *styles.Stroke

	// Transparency is the 0-1 transparency of this node, combined
	// multiplicatively with the cascading default transparency.
	Transparency float32
}

func (rt *Rect) resolve(sc *Scene, parent math32.Box2, matrix math32.Matrix2, defaults styles.Defaults) math32.Box2 {
	rt.X.Reset()
	rt.Y.Reset()
	rt.Width.Reset()
	rt.Height.Reset()
	rt.Padding.Reset()
	rt.Clip.Reset()

	size := parent.Size()
	if rt.X.ResolvePercent(size.X) {
		rt.X.Dots += parent.Min.X
	}
	if rt.Y.ResolvePercent(size.Y) {
		rt.Y.Dots += parent.Min.Y
	}
	rt.Width.ResolvePercent(size.X)
	rt.Height.ResolvePercent(size.Y)
	rt.Padding.ResolvePercent(size)
	rt.Clip.ResolvePercent(size)

	mat := rt.Transform.ComposeGlobal(matrix)
	mat.X0 += rt.Padding.Left.Dots
	mat.Y0 += rt.Padding.Top.Dots

	rt.Bound = math32.B2(rt.X.Dots, rt.Y.Dots, rt.X.Dots+rt.Width.Dots, rt.Y.Dots+rt.Height.Dots)
	inner := rt.resolveChildren(sc, rt.Bound, mat, defaults)

	rt.X.ResolveAuto(inner.Min.X - rt.Padding.Left.Dots)
	rt.Y.ResolveAuto(inner.Min.Y - rt.Padding.Top.Dots)
	rt.Width.ResolveAuto(inner.Max.X - rt.X.Dots + rt.Padding.Horizontal())
	rt.Height.ResolveAuto(inner.Max.Y - rt.Y.Dots + rt.Padding.Vertical())

	rt.Bound = math32.B2(rt.X.Dots, rt.Y.Dots, rt.X.Dots+rt.Width.Dots, rt.Y.Dots+rt.Height.Dots)
	return rt.Bound
}

func (rt *Rect) compose(list *render.Render, defaults styles.Defaults) error {
	ctx := renderContext(rt.Fill, rt.Stroke, rt.Transparency, rt.Clip, &rt.Transform, defaults)
	if ctx.Fill != nil || ctx.Stroke != nil {
		pp := ppath.New().Rectangle(rt.X.Dots, rt.Y.Dots, rt.Width.Dots, rt.Height.Dots)
		if !pp.Empty() {
			list.Add(render.NewPath(*pp, ctx))
		}
	}
	return rt.composeChildren(list, defaults)
}
