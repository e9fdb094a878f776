// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedgt implements [shaped.Shaper] using go-text/typesetting,
// with an explicit registry of fonts loaded by family name.
package shapedgt

import (
	"bytes"
	"strings"

	"cogentcore.org/exgui/base/errors"
	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/text/shaped"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

var _ shaped.Shaper = (*Shaper)(nil)

// Shaper is the text shaper, from go-text/shaping. Fonts must be
// registered with [Shaper.AddFont] before they can be shaped with;
// [NewShaper] registers the embedded Latin Modern faces.
type Shaper struct {
	shaper shaping.HarfbuzzShaper

	// faces has the registered fonts, keyed by case-folded name.
	faces map[string]*font.Face
}

// NewShaper returns a new [Shaper] with the embedded Latin Modern
// regular, bold, and italic faces registered under "LMRoman10",
// "LMRoman10-Bold", and "LMRoman10-Italic". The regular face is also
// registered under "default" and "serif", so that shaping with an
// empty font name always works.
func NewShaper() *Shaper {
	sh := &Shaper{faces: map[string]*font.Face{}}
	errors.Log(sh.AddFont("LMRoman10", lmroman10regular.TTF))
	errors.Log(sh.AddFont("LMRoman10-Bold", lmroman10bold.TTF))
	errors.Log(sh.AddFont("LMRoman10-Italic", lmroman10italic.TTF))
	sh.faces["default"] = sh.faces["lmroman10"]
	sh.faces["serif"] = sh.faces["lmroman10"]
	return sh
}

// AddFont registers an OpenType font (TTF / OTF data) under the given
// name, and additionally under the family name recorded in the font
// itself when that is not already taken. Names are case-insensitive.
func (sh *Shaper) AddFont(name string, data []byte) error {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return err
	}
	sh.faces[strings.ToLower(name)] = face
	if family := strings.ToLower(face.Describe().Family); family != "" {
		if _, ok := sh.faces[family]; !ok {
			sh.faces[family] = face
		}
	}
	return nil
}

// Shape shapes content with given font name and size (in dots) as a
// single left-to-right run starting at pos, returning the line metrics
// and per-glyph horizontal extents. An empty font name means "default".
// It returns a [shaped.FontNotFoundError] if the font is not registered.
func (sh *Shaper) Shape(fontName string, size float32, content string, pos math32.Vector2) (*shaped.Run, error) {
	name := fontName
	if name == "" {
		name = "default"
	}
	face, ok := sh.faces[strings.ToLower(name)]
	if !ok {
		return nil, &shaped.FontNotFoundError{Font: fontName}
	}

	txt := []rune(content)
	in := shaping.Input{
		Text:      txt,
		RunStart:  0,
		RunEnd:    len(txt),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      math32.ToFixed(size),
		Script:    language.Latin,
		Language:  "en",
	}
	out := sh.shaper.Shape(in)

	run := &shaped.Run{}
	run.Metrics.Ascender = math32.FromFixed(out.LineBounds.Ascent)
	run.Metrics.Descender = math32.FromFixed(out.LineBounds.Descent)
	run.Metrics.LineHeight = math32.FromFixed(out.LineBounds.Ascent - out.LineBounds.Descent + out.LineBounds.Gap)

	pen := pos.X
	run.Glyphs = make([]shaped.Glyph, len(out.Glyphs))
	for i := range out.Glyphs {
		g := &out.Glyphs[i]
		gx := pen + math32.FromFixed(g.XOffset)
		minx := gx + math32.FromFixed(g.XBearing)
		run.Glyphs[i] = shaped.Glyph{X: gx, MinX: minx, MaxX: minx + math32.FromFixed(g.Width)}
		pen += math32.FromFixed(g.XAdvance)
	}
	return run, nil
}
