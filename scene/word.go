// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/paint/render"
	"cogentcore.org/exgui/styles"
)

// Word is a bare text run with no geometry of its own. It is a
// reserved node kind: it takes part in the tree but is not measured
// during layout and emits nothing during composition. Use [Text] for
// text that should be rendered.
type Word struct {
	NodeBase

	// Content is the text content of the run.
	Content string
}

func (wd *Word) resolve(sc *Scene, parent math32.Box2, matrix math32.Matrix2, defaults styles.Defaults) math32.Box2 {
	wd.Transform.ComposeGlobal(matrix)
	wd.Bound = parent
	return wd.Bound
}

func (wd *Word) compose(list *render.Render, defaults styles.Defaults) error {
	return nil
}
