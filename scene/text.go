// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/exgui/base/errors"
	"cogentcore.org/exgui/colors"
	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/paint/render"
	"cogentcore.org/exgui/styles"
	"cogentcore.org/exgui/text/shaped"
)

// Text is a single-line text node. It is measured during layout by the
// scene's text shaper, which stores the line metrics and per-glyph
// horizontal extents on the node; composition then emits one text item
// carrying them, so renderers never shape text themselves. If shaping
// fails, such as for an unregistered font, the node keeps a zero-size
// bound at its position and is skipped during composition.
type Text struct {
	NodeBase

	// X and Y are the position of the text, interpreted through Align.
	// Percent values resolve against the parent width and height and
	// are offset by the parent minimum.
	X, Y styles.Dimension

	// Font is the name of the font to shape with. The empty name means
	// the shaper's default font.
	Font string

	// FontSize is the font size in dots. Percent values resolve
	// against the parent height.
	FontSize styles.Dimension

	// Align is the horizontal and vertical alignment of the text
	// relative to its position.
	Align styles.TextAlign

	// Content is the text content.
	Content string

	// Fill is the fill of the text. nil falls back to the cascading
	// default fill. Only solid colors can ink text: a gradient paint
	// is coerced to opaque black.
	Fill *styles.Fill

	// Transparency is the 0-1 transparency of this node, combined
	// multiplicatively with the cascading default transparency.
	Transparency float32

	// Run is the shaped run cached by the last layout pass: the line
	// metrics and per-glyph extents for Content. It is nil if shaping
	// failed.
	Run *shaped.Run
}

func (tx *Text) resolve(sc *Scene, parent math32.Box2, matrix math32.Matrix2, defaults styles.Defaults) math32.Box2 {
	tx.X.Reset()
	tx.Y.Reset()
	tx.FontSize.Reset()
	tx.Clip.Reset()

	size := parent.Size()
	if tx.X.ResolvePercent(size.X) {
		tx.X.Dots += parent.Min.X
	}
	if tx.Y.ResolvePercent(size.Y) {
		tx.Y.Dots += parent.Min.Y
	}
	tx.FontSize.ResolvePercent(size.Y)
	tx.Clip.ResolvePercent(size)

	mat := tx.Transform.ComposeGlobal(matrix)

	tx.Run = nil
	pos := math32.Vec2(tx.X.Dots, tx.Y.Dots)
	if sc.TextShaper == nil {
		sc.errs = append(sc.errs, errors.New("scene: no TextShaper is set on the Scene, so Text nodes cannot be shaped"))
	} else {
		run, err := sc.TextShaper.Shape(tx.Font, tx.FontSize.Dots, tx.Content, pos)
		if err != nil {
			sc.errs = append(sc.errs, err)
		} else {
			tx.Run = run
		}
	}

	own := math32.B2(pos.X, pos.Y, pos.X, pos.Y)
	if tx.Run != nil {
		own = math32.B2(pos.X, pos.Y, tx.Run.MaxX(pos.X), pos.Y+tx.Run.Metrics.LineHeight)
	}

	inner := tx.resolveChildren(sc, own, mat, defaults)

	// the bound reflects the node's local transform: both the text
	// extent and the children union are mapped corner-wise through it.
	local := tx.Transform.LocalMatrix()
	tx.Bound = own.MulMatrix2(local).Union(inner.MulMatrix2(local))
	return tx.Bound
}

func (tx *Text) compose(list *render.Render, defaults styles.Defaults) error {
	if tx.Run == nil {
		return tx.composeChildren(list, defaults)
	}
	fill := tx.Fill
	if fill == nil {
		fill = defaults.Fill
	}
	ink := colors.Black
	if fill != nil {
		if c, ok := fill.Color.(colors.Color); ok {
			ink = c
		}
	}
	ink = ink.ApplyOpacity((1 - tx.Transparency) * (1 - defaults.Transparency))
	list.Add(&render.Text{
		Content:  tx.Content,
		Font:     tx.Font,
		Size:     tx.FontSize.Dots,
		Position: math32.Vec2(tx.X.Dots, tx.Y.Dots),
		Color:    ink,
		Align:    tx.Align,
		Text:     tx.Run,
		Context: render.Context{
			Opacity:   1,
			Clip:      tx.Clip.Or(defaults.Clip),
			Transform: tx.Transform.Global,
		},
	})
	return tx.composeChildren(list, defaults)
}
