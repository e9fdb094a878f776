// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

// Run is a shaped span of text with the same font properties,
// with layout information for sizing and rendering the text.
type Run struct {

	// Metrics has the font line metrics for the run.
	Metrics Metrics

	// Glyphs has the horizontal extents of each glyph in the run,
	// in visual order.
	Glyphs []Glyph
}

// Metrics has font line metrics, in the same units as the font size.
type Metrics struct {

	// Ascender is the maximum extent above the baseline, positive up.
	Ascender float32

	// Descender is the maximum extent below the baseline,
	// typically negative.
	Descender float32

	// LineHeight is the recommended total line height,
	// ascender to descender plus the line gap.
	LineHeight float32
}

// Glyph has the horizontal extents of one shaped glyph.
type Glyph struct {

	// X is the pen position at which the glyph is drawn.
	X float32

	// MinX is the leftmost extent of the glyph outline.
	MinX float32

	// MaxX is the rightmost extent of the glyph outline.
	MaxX float32
}

// MaxX returns the rightmost extent of the run: the last glyph's MaxX,
// or start for an empty run.
func (rn *Run) MaxX(start float32) float32 {
	if len(rn.Glyphs) == 0 {
		return start
	}
	return rn.Glyphs[len(rn.Glyphs)-1].MaxX
}
