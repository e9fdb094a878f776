// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/exgui/paint/ppath"
)

// Path is a path drawing render [Item]: responsible for all vector graphics
// drawing functionality.
type Path struct {
	// Path specifies the shape(s) to be drawn, using commands:
	// MoveTo, LineTo, QuadTo, CubeTo, ArcTo, and Close.
	// Each command has the applicable coordinates appended after it,
	// like the SVG path element. The coordinates are in resolved dots,
	// without any transforms applied. See [Context.Transform].
	Path ppath.Path

	// Context has the effective style, clip, and transform parameters
	// for rendering the path, combining the cascading defaults (e.g.,
	// from any higher-level groups) with the element's own parameters.
	Context Context
}

func NewPath(pt ppath.Path, ctx Context) *Path {
	return &Path{Path: pt, Context: ctx}
}

// interface assertion.
func (p *Path) IsRenderItem() {}
