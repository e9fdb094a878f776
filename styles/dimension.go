// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the styling and layout parameters for
// scene nodes: dimensions, padding, transforms, clipping, and
// fill and stroke paint.
package styles

import (
	"fmt"

	"cogentcore.org/exgui/math32"
)

// DimensionKinds are the kinds of [Dimension] values.
type DimensionKinds int32

const (
	// DimAbs is an absolute value, given directly in dots.
	DimAbs DimensionKinds = iota

	// DimPct is a percentage (0-100) of a parent base value,
	// resolved during layout.
	DimPct

	// DimAuto is a value computed from the content during layout.
	DimAuto
)

func (dk DimensionKinds) String() string {
	switch dk {
	case DimAbs:
		return "abs"
	case DimPct:
		return "pct"
	case DimAuto:
		return "auto"
	}
	return fmt.Sprintf("DimensionKinds(%d)", int32(dk))
}

// Dimension is a styling value that can be specified as an absolute
// number of dots, a percentage of a parent value, or automatically
// from content. The authored Value and Kind are retained across
// layout passes; the resolved value is computed into Dots each pass.
// This follows the units.Value model of keeping the specified value
// and unit alongside the computed raw value.
type Dimension struct {

	// Value is the authored value: dots for [DimAbs],
	// a 0-100 percentage for [DimPct], unused for [DimAuto].
	Value float32

	// Kind is the kind of value. It is never changed by resolution,
	// so the same tree can be laid out any number of times.
	Kind DimensionKinds

	// Dots is the resolved value in dots, computed during layout.
	Dots float32

	// resolved marks that this dimension has been resolved in the
	// current layout pass, making repeated resolution a no-op.
	resolved bool
}

// Abs returns a new absolute [Dimension] with the given value in dots.
func Abs(v float32) Dimension {
	return Dimension{Value: v, Dots: v, Kind: DimAbs}
}

// Pct returns a new percentage [Dimension] with the given
// 0-100 percentage value.
func Pct(v float32) Dimension {
	return Dimension{Value: v, Kind: DimPct}
}

// Auto returns a new automatic [Dimension], resolved from
// content during layout.
func Auto() Dimension {
	return Dimension{Kind: DimAuto}
}

// IsAuto returns whether this dimension is resolved automatically
// from content.
func (d Dimension) IsAuto() bool {
	return d.Kind == DimAuto
}

// Reset re-arms this dimension for a fresh layout pass. Absolute
// values resolve immediately to their authored value; percentage and
// auto values await resolution against the current pass's bases.
func (d *Dimension) Reset() {
	d.resolved = false
	if d.Kind == DimAbs {
		d.Dots = d.Value
	} else {
		d.Dots = 0
	}
}

// ResolvePercent resolves a percentage dimension against the given
// base value, setting Dots to Value/100 * base. It only has an effect
// on the first call in a pass on a [DimPct] dimension, and reports
// whether it fired just now, so that a caller can apply any
// positional offset exactly once.
func (d *Dimension) ResolvePercent(base float32) bool {
	if d.Kind != DimPct || d.resolved {
		return false
	}
	d.Dots = d.Value / 100 * base
	d.resolved = true
	return true
}

// ResolveAuto resolves an automatic dimension to the given
// content-derived value. It only has an effect on the first call
// in a pass on a [DimAuto] dimension.
func (d *Dimension) ResolveAuto(v float32) {
	if d.Kind != DimAuto || d.resolved {
		return
	}
	d.Dots = v
	d.resolved = true
}

func (d Dimension) String() string {
	switch d.Kind {
	case DimPct:
		return fmt.Sprintf("%g%%", d.Value)
	case DimAuto:
		return "auto"
	}
	return fmt.Sprintf("%g", d.Value)
}

// Padding specifies the padding on each side of a node. Left and
// right percentages resolve against the parent width, top and bottom
// against the parent height.
type Padding struct {
	Left   Dimension
	Right  Dimension
	Top    Dimension
	Bottom Dimension
}

// PaddingAll returns a new [Padding] with all four sides set to the
// given dimension.
func PaddingAll(d Dimension) Padding {
	return Padding{Left: d, Right: d, Top: d, Bottom: d}
}

// Reset re-arms all four sides for a fresh layout pass.
func (p *Padding) Reset() {
	p.Left.Reset()
	p.Right.Reset()
	p.Top.Reset()
	p.Bottom.Reset()
}

// ResolvePercent resolves the percentage sides against the given
// parent size: left and right against the width, top and bottom
// against the height.
func (p *Padding) ResolvePercent(size math32.Vector2) {
	p.Left.ResolvePercent(size.X)
	p.Right.ResolvePercent(size.X)
	p.Top.ResolvePercent(size.Y)
	p.Bottom.ResolvePercent(size.Y)
}

// Horizontal returns the total resolved horizontal padding,
// left plus right.
func (p Padding) Horizontal() float32 {
	return p.Left.Dots + p.Right.Dots
}

// Vertical returns the total resolved vertical padding,
// top plus bottom.
func (p Padding) Vertical() float32 {
	return p.Top.Dots + p.Bottom.Dots
}
