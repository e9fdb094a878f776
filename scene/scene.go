// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a retained-mode vector scene graph: a tree of
// declarative shape nodes ([Rect], [Circle], [Path], [Group], [Text])
// that is laid out against a viewport bound, resolving percentage and
// automatic geometry, and then composed in document order into a
// backend-agnostic [render.Render] list.
//
// Layout and composition are two passes over the same tree. [Scene.Resolve]
// walks the tree once, top-down resolving percent dimensions, padding,
// clips, and transforms against the parent bound, and bottom-up
// resolving auto dimensions from the union of the children bounds.
// [Scene.Compose] then walks the resolved tree, cascading the group
// style defaults down each branch and emitting one render item per
// visible node. The tree itself is the single source of truth: layout
// writes the resolved values back into the nodes, and composition only
// reads them.
package scene

import (
	"cogentcore.org/exgui/base/errors"
	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/paint"
	"cogentcore.org/exgui/paint/render"
	"cogentcore.org/exgui/styles"
	"cogentcore.org/exgui/text/shaped"
)

// Scene owns a shape tree together with the parameters for laying it
// out and composing it into render items. A Scene must only be used
// from one goroutine at a time.
type Scene struct {

	// Root is the root node of the shape tree.
	Root Node

	// Viewport is the root bound that the tree is laid out against.
	Viewport math32.Box2

	// TextShaper is the text shaping capability used to measure
	// [Text] nodes during layout.
	TextShaper shaped.Shaper

	// Defaults are the root cascading style values, which nodes fall
	// back on for anything they do not set themselves. [Group] nodes
	// derive new values for their own subtrees.
	Defaults styles.Defaults

	// errs accumulates the per-node errors of the current layout pass.
	errs []error
}

// NewScene returns a new [Scene] with the given root node. The
// viewport, text shaper, and defaults are set directly as fields.
func NewScene(root Node) *Scene {
	return &Scene{Root: root}
}

// Resolve performs one layout pass over the whole tree against the
// current viewport, writing resolved geometry, bounds, and global
// transforms into the nodes. Errors from individual nodes, such as a
// missing font, do not stop the pass; they are joined into the
// returned error, and the affected node is left with degenerate
// geometry. Resolve can be called any number of times; percent and
// auto dimensions are recomputed from their authored values each pass.
func (sc *Scene) Resolve() error {
	sc.errs = nil
	if sc.Root == nil {
		return nil
	}
	sc.Root.resolve(sc, sc.Viewport, math32.Identity2(), sc.Defaults)
	return errors.Join(sc.errs...)
}

// Compose walks the resolved tree in document order and returns the
// render list for it. The tree must have been resolved first. If any
// node fails to compose, such as a [Path] with an unsupported command,
// Compose returns a nil list along with the error, never a partial one.
func (sc *Scene) Compose() (render.Render, error) {
	var list render.Render
	if sc.Root == nil {
		return list, nil
	}
	if err := sc.Root.compose(&list, sc.Defaults); err != nil {
		return nil, err
	}
	return list, nil
}

// Render resolves the scene, composes it, and hands the resulting
// render list to the given renderer. Composition errors abort before
// anything reaches the renderer; layout errors do not prevent
// rendering and are returned after it, so that a scene with a missing
// font still renders everything else.
func (sc *Scene) Render(rd paint.Renderer) error {
	rerr := sc.Resolve()
	list, cerr := sc.Compose()
	if cerr != nil {
		return errors.Join(rerr, cerr)
	}
	rd.Render(list)
	return rerr
}
