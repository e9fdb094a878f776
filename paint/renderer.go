// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint defines the [Renderer] interface for backend
// rendering outputs of the [render.Render] item stream.
package paint

import (
	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/paint/render"
)

// Renderer is the interface for all backend rendering outputs.
type Renderer interface {

	// Size returns the size of the render target, in dots.
	// Direct configuration of the Renderer happens outside of this interface.
	Size() math32.Vector2

	// Render renders the list of render items.
	Render(r render.Render)
}
