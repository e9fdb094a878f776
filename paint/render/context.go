// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/styles"
)

// Context has the effective style, clip, and transform parameters for
// rendering an [Item], with all cascading defaults already applied and
// all percent dimensions already resolved.
type Context struct {

	// Fill is the effective fill to paint the item with, or nil for no fill.
	Fill *styles.Fill

	// Stroke is the effective stroke to outline the item with, or nil for
	// no stroke. Filling happens before stroking.
	Stroke *styles.Stroke

	// Opacity is the effective alpha multiplier in 0..1, combining the
	// item's own transparency with the inherited one.
	Opacity float32

	// Clip is the effective scissor clip, with resolved coordinates.
	// The zero value means no clipping.
	Clip styles.Clip

	// Transform is the cached global transform matrix of the item.
	Transform math32.Matrix2
}
