// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/paint/render"
	"cogentcore.org/exgui/styles"
)

// Path is a freeform path node built from a sequence of move, line,
// and bezier [Commands]. A path has no intrinsic bound and does not
// participate in auto sizing: its bound is exactly the parent bound,
// and its children are laid out against the parent bound as well.
type Path struct {
	NodeBase

	// Commands are the path construction commands, interpreted during
	// composition with the cursor starting at the origin.
	Commands Commands

	// Fill is the fill of the path. nil falls back to the cascading
	// default fill.
	Fill *styles.Fill

	// Stroke is the stroke of the path. nil falls back to the
	// cascading default stroke.
	Stroke *styles.Stroke

	// Transparency is the 0-1 transparency of this node, combined
	// multiplicatively with the cascading default transparency.
	Transparency float32
}

func (pt *Path) resolve(sc *Scene, parent math32.Box2, matrix math32.Matrix2, defaults styles.Defaults) math32.Box2 {
	pt.Clip.Reset()
	pt.Clip.ResolvePercent(parent.Size())
	mat := pt.Transform.ComposeGlobal(matrix)
	pt.Bound = parent
	pt.resolveChildren(sc, parent, mat, defaults)
	return pt.Bound
}

func (pt *Path) compose(list *render.Render, defaults styles.Defaults) error {
	pp, err := pt.Commands.Path()
	if err != nil {
		return err
	}
	ctx := renderContext(pt.Fill, pt.Stroke, pt.Transparency, pt.Clip, &pt.Transform, defaults)
	if (ctx.Fill != nil || ctx.Stroke != nil) && !pp.Empty() {
		list.Add(render.NewPath(pp, ctx))
	}
	return pt.composeChildren(list, defaults)
}
