// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgrender renders a [render.Render] item list to SVG
// source text.
package svgrender

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"cogentcore.org/exgui/base/errors"
	"cogentcore.org/exgui/colors"
	"cogentcore.org/exgui/colors/gradient"
	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/paint"
	"cogentcore.org/exgui/paint/render"
	"cogentcore.org/exgui/styles"
)

var _ paint.Renderer = (*Renderer)(nil)

// Renderer is the SVG renderer. It implements [paint.Renderer],
// turning each render item into one SVG element, with gradient paints
// and scissor clips written as referenced defs.
type Renderer struct {
	size math32.Vector2

	body  bytes.Buffer
	defs  bytes.Buffer
	nDefs int
}

// New returns a new SVG [Renderer] with the given size in dots.
func New(size math32.Vector2) *Renderer {
	return &Renderer{size: size}
}

// Size returns the size of the render target, in dots.
func (rs *Renderer) Size() math32.Vector2 {
	return rs.size
}

// Source returns the SVG source of the last [Renderer.Render] call.
func (rs *Renderer) Source() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(rs.size.X), num(rs.size.Y), num(rs.size.X), num(rs.size.Y))
	if rs.defs.Len() > 0 {
		b.WriteString("<defs>\n")
		b.Write(rs.defs.Bytes())
		b.WriteString("</defs>\n")
	}
	b.Write(rs.body.Bytes())
	b.WriteString("</svg>\n")
	return b.Bytes()
}

// Render renders the list of render items, replacing any prior content.
func (rs *Renderer) Render(r render.Render) {
	rs.body.Reset()
	rs.defs.Reset()
	rs.nDefs = 0
	for _, ri := range r {
		switch x := ri.(type) {
		case *render.Path:
			rs.RenderPath(x)
		case *render.Text:
			rs.RenderText(x)
		}
	}
}

// RenderPath renders one path item as an SVG path element.
func (rs *Renderer) RenderPath(pt *render.Path) {
	pc := &pt.Context
	fmt.Fprintf(&rs.body, `<path d="%s"`, pt.Path.ToSVG())
	if pc.Fill != nil {
		fmt.Fprintf(&rs.body, ` fill="%s"`, rs.paint(pc.Fill.Color))
	} else {
		rs.body.WriteString(` fill="none"`)
	}
	if st := pc.Stroke; st != nil {
		fmt.Fprintf(&rs.body, ` stroke="%s" stroke-width="%s"`, rs.paint(st.Color), num(st.Width))
		if st.Cap != styles.LineCapButt {
			fmt.Fprintf(&rs.body, ` stroke-linecap="%v"`, st.Cap)
		}
		if st.Join != styles.LineJoinMiter {
			fmt.Fprintf(&rs.body, ` stroke-linejoin="%v"`, st.Join)
		}
	}
	rs.context(pc)
	rs.body.WriteString("/>\n")
}

// RenderText renders one text item as an SVG text element.
func (rs *Renderer) RenderText(tx *render.Text) {
	fmt.Fprintf(&rs.body, `<text x="%s" y="%s" fill="%s"`, num(tx.Position.X), num(tx.Position.Y), tx.Color)
	if tx.Font != "" {
		fmt.Fprintf(&rs.body, ` font-family="%s"`, tx.Font)
	}
	if tx.Size > 0 {
		fmt.Fprintf(&rs.body, ` font-size="%s"`, num(tx.Size))
	}
	if anchor := textAnchor(tx.Align.Hor); anchor != "" {
		fmt.Fprintf(&rs.body, ` text-anchor="%s"`, anchor)
	}
	if baseline := dominantBaseline(tx.Align.Ver); baseline != "" {
		fmt.Fprintf(&rs.body, ` dominant-baseline="%s"`, baseline)
	}
	rs.context(&tx.Context)
	rs.body.WriteString(">")
	errors.Log(xml.EscapeText(&rs.body, []byte(tx.Content)))
	rs.body.WriteString("</text>\n")
}

// context writes the attributes shared by all items: opacity,
// clip-path, and transform.
func (rs *Renderer) context(pc *render.Context) {
	if pc.Opacity < 1 {
		fmt.Fprintf(&rs.body, ` opacity="%s"`, num(pc.Opacity))
	}
	if sc := pc.Clip.Scissor; sc != nil {
		id := rs.defID()
		bd := sc.Bounds()
		sz := bd.Size()
		fmt.Fprintf(&rs.defs, `<clipPath id="%s"><rect x="%s" y="%s" width="%s" height="%s"`,
			id, num(bd.Min.X), num(bd.Min.Y), num(sz.X), num(sz.Y))
		if !sc.Transform.IsNone() {
			fmt.Fprintf(&rs.defs, ` transform="%s"`, sc.Transform.LocalMatrix())
		}
		rs.defs.WriteString("/></clipPath>\n")
		fmt.Fprintf(&rs.body, ` clip-path="url(#%s)"`, id)
	}
	if !pc.Transform.IsIdentity() {
		fmt.Fprintf(&rs.body, ` transform="%s"`, pc.Transform)
	}
}

// paint returns the SVG paint attribute value for the given paint
// source, writing a gradient def when needed. A box gradient has no
// SVG counterpart and is written as its inner color.
func (rs *Renderer) paint(paint colors.Paint) string {
	switch x := paint.(type) {
	case colors.Color:
		return x.String()
	case *gradient.Linear:
		id := rs.defID()
		fmt.Fprintf(&rs.defs, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`,
			id, num(x.Start.X), num(x.Start.Y), num(x.End.X), num(x.End.Y))
		rs.stops(x.Stops)
		rs.defs.WriteString("</linearGradient>\n")
		return "url(#" + id + ")"
	case *gradient.Radial:
		id := rs.defID()
		fmt.Fprintf(&rs.defs, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s" fr="%s">`,
			id, num(x.Center.X), num(x.Center.Y), num(x.OuterRadius), num(x.InnerRadius))
		rs.stops(x.Stops)
		rs.defs.WriteString("</radialGradient>\n")
		return "url(#" + id + ")"
	case gradient.Gradient:
		if stops := x.AsBase().Stops; len(stops) > 0 {
			return stops[0].Color.String()
		}
	}
	return "none"
}

// stops writes the stop elements of a gradient def.
func (rs *Renderer) stops(stops []gradient.Stop) {
	for _, st := range stops {
		fmt.Fprintf(&rs.defs, `<stop offset="%s" stop-color="%s"/>`, num(st.Pos), st.Color)
	}
}

// defID returns a fresh id for a def element.
func (rs *Renderer) defID() string {
	id := fmt.Sprintf("d%d", rs.nDefs)
	rs.nDefs++
	return id
}

// textAnchor returns the SVG text-anchor value for given alignment,
// or "" for the default.
func textAnchor(ah styles.AlignHor) string {
	switch ah {
	case styles.AlignRight:
		return "end"
	case styles.AlignCenter:
		return "middle"
	}
	return ""
}

// dominantBaseline returns the SVG dominant-baseline value for given
// alignment, or "" for the default.
func dominantBaseline(av styles.AlignVer) string {
	switch av {
	case styles.AlignTop:
		return "hanging"
	case styles.AlignMiddle:
		return "middle"
	case styles.AlignBottom:
		return "text-top"
	}
	return ""
}

// num formats a float32 compactly, without trailing zeros.
func num(v float32) string {
	return fmt.Sprintf("%g", v)
}
