// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaped defines the [Shaper] interface for text shaping ([Run],
// [Metrics], and [Glyph] types), which the layout resolver calls to size
// text nodes. The shapedgt sub-package provides the standard implementation
// based on go-text/typesetting.
package shaped

import (
	"fmt"

	"cogentcore.org/exgui/math32"
)

// Shaper is a text shaping system that can shape a string of text into a
// [Run] of per-glyph horizontal extents and line metrics.
type Shaper interface {

	// Shape shapes content with given font family name and size (in dots),
	// as a single left-to-right run starting at given position. The glyph
	// extents in the resulting [Run] are in the same coordinate space as pos.
	// It returns a [FontNotFoundError] if no font is registered under font.
	Shape(font string, size float32, content string, pos math32.Vector2) (*Run, error)
}

// FontNotFoundError is returned by [Shaper.Shape] when the requested
// font family name has not been registered with the shaper.
type FontNotFoundError struct {

	// Font is the requested font family name.
	Font string
}

func (e *FontNotFoundError) Error() string {
	return fmt.Sprintf("font %q not found", e.Font)
}
