// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/exgui/colors"
	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/styles"
	"cogentcore.org/exgui/text/shaped"
)

// Text is a text rendering render item.
type Text struct {
	// Content is the text string to be rendered.
	Content string

	// Font is the resolved font family name used to shape Content.
	Font string

	// Size is the resolved font size in dots.
	Size float32

	// Position is the anchor position of the text. It is interpreted
	// according to Align and is transformed by the active transform matrix.
	Position math32.Vector2

	// Color is the effective solid text ink, with the effective alpha
	// already applied. Text is always painted with a solid color.
	Color colors.Color

	// Align is the horizontal and vertical anchor alignment pair,
	// relative to Position.
	Align styles.TextAlign

	// Text contains the shaped run of glyphs for Content, as produced by a
	// [shaped.Shaper], with line metrics and per-glyph horizontal extents.
	Text *shaped.Run

	// Context has the effective style, clip, and transform parameters
	// for rendering, combining the cascading defaults (e.g., from any
	// higher-level groups) with the element's own parameters.
	Context Context
}

// interface assertion.
func (tx *Text) IsRenderItem() {}
