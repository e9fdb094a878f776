// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/paint/render"
	"cogentcore.org/exgui/styles"
)

// Group is a grouping node with no geometry of its own. Any style
// overrides it sets overwrite the corresponding cascading defaults for
// its subtree only; siblings after the group are unaffected. Its bound
// is the union of its children bounds.
type Group struct {
	NodeBase

	// Transparency, if non-nil, overwrites the default transparency
	// for the subtree. It does not multiply with the enclosing value.
	Transparency *float32

	// Fill, if non-nil, overwrites the default fill for the subtree.
	Fill *styles.Fill

	// Stroke, if non-nil, overwrites the default stroke for the subtree.
	Stroke *styles.Stroke
}

// branchDefaults returns the cascading defaults for this group's
// subtree, overwriting any value the group sets itself. The clip
// override uses the group's own [NodeBase.Clip] when it is not none.
func (gp *Group) branchDefaults(defaults styles.Defaults) styles.Defaults {
	if gp.Transparency != nil {
		defaults.Transparency = *gp.Transparency
	}
	if gp.Fill != nil {
		defaults.Fill = gp.Fill
	}
	if gp.Stroke != nil {
		defaults.Stroke = gp.Stroke
	}
	if !gp.Clip.IsNone() {
		defaults.Clip = gp.Clip
	}
	return defaults
}

func (gp *Group) resolve(sc *Scene, parent math32.Box2, matrix math32.Matrix2, defaults styles.Defaults) math32.Box2 {
	gp.Clip.Reset()
	gp.Clip.ResolvePercent(parent.Size())
	mat := gp.Transform.ComposeGlobal(matrix)
	gp.Bound = gp.resolveChildren(sc, parent, mat, gp.branchDefaults(defaults))
	return gp.Bound
}

func (gp *Group) compose(list *render.Render, defaults styles.Defaults) error {
	return gp.composeChildren(list, gp.branchDefaults(defaults))
}
