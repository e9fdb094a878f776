// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"fmt"
	"testing"

	"cogentcore.org/exgui/math32"
	"github.com/stretchr/testify/assert"
)

func tolEqualVec2(t *testing.T, a, b math32.Vector2, tols ...float64) {
	tol := 1.0e-4
	if len(tols) == 1 {
		tol = tols[0]
	}
	assert.InDelta(t, b.X, a.X, tol)
	assert.InDelta(t, b.Y, a.Y, tol)
}

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	assert.True(t, p.Empty())

	p.MoveTo(5, 2)
	assert.True(t, p.Empty())

	p.LineTo(6, 2)
	assert.True(t, !p.Empty())
}

func TestPathEquals(t *testing.T) {
	assert.True(t, !MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0")))
	assert.True(t, !MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0M5 10")))
	assert.True(t, !MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 9")))
	assert.True(t, MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 10")))
}

func TestPathClosed(t *testing.T) {
	assert.True(t, !MustParseSVGPath("M5 0L5 10").Closed())
	assert.True(t, MustParseSVGPath("M5 0L5 10z").Closed())
	assert.True(t, !MustParseSVGPath("M5 0L5 10zM5 10").Closed())
	assert.True(t, MustParseSVGPath("M5 0L5 10zM5 10z").Closed())
}

func TestPathAppend(t *testing.T) {
	assert.Equal(t, MustParseSVGPath("M5 0L5 10").Append(nil), MustParseSVGPath("M5 0L5 10"))
	assert.Equal(t, (&Path{}).Append(MustParseSVGPath("M5 0L5 10")), MustParseSVGPath("M5 0L5 10"))

	p := MustParseSVGPath("M5 0L5 10").Append(MustParseSVGPath("M5 15L10 15"))
	assert.Equal(t, p, MustParseSVGPath("M5 0L5 10M5 15L10 15"))

	p = MustParseSVGPath("M5 0L5 10").Append(MustParseSVGPath("L10 15M20 15L25 15"))
	assert.Equal(t, p, MustParseSVGPath("M5 0L5 10M0 0L10 15M20 15L25 15"))
}

func TestPathCommands(t *testing.T) {
	var tts = []struct {
		p        string
		expected string
	}{
		{"M3 4", "M3 4"},
		{"M3 4M5 3", "M5 3"},
		{"M3 4z", ""},
		{"z", ""},

		{"L3 4", "L3 4"},
		{"L3 4L0 0z", "L3 4z"},
		{"L3 4L4 0L2 0z", "L3 4L4 0z"},
		{"L3 4zz", "L3 4z"},
		{"L5 0zL6 3", "L5 0zL6 3"},
		{"M2 1L3 4L5 0zL6 3", "M2 1L3 4L5 0zM2 1L6 3"},
		{"M2 1L3 4L5 0zM2 1L6 3", "M2 1L3 4L5 0zM2 1L6 3"},

		{"M3 4Q3 4 3 4", "M3 4"},
		{"Q0 0 0 0", ""},
		{"Q3 4 3 4", "L3 4"},
		{"Q1.5 2 3 4", "L3 4"},
		{"Q0 0 -1 -1", "L-1 -1"},
		{"Q1 2 3 4", "Q1 2 3 4"},
		{"Q3 4 0 0", "Q3 4 0 0"},
		{"L5 0zQ5 3 6 3", "L5 0zQ5 3 6 3"},

		{"M3 4C3 4 3 4 3 4", "M3 4"},
		{"C0 0 0 0 0 0", ""},
		{"C0 0 3 4 3 4", "L3 4"},
		{"C1 1 2 2 3 3", "L3 3"},
		{"C0 0 0 0 -1 -1", "L-1 -1"},
		{"C-1 -1 0 0 -1 -1", "L-1 -1"},
		{"C1 1 2 2 3 4", "C1 1 2 2 3 4"},
		{"C1 1 2 2 0 0", "C1 1 2 2 0 0"},
		{"C3 3 -1 -1 2 2", "C3 3 -1 -1 2 2"},
		{"L5 0zC5 1 5 3 6 3", "L5 0zC5 1 5 3 6 3"},

		{"M3 4A2 2 0 0 0 3 4", "M3 4"},
		{"A0 0 0 0 0 4 0", "L4 0"},
		{"A2 1 0 0 0 4 0", "A2 1 0 0 0 4 0"},
		{"A1 2 0 1 1 4 0", "A4 2 90 1 1 4 0"},
		{"A1 2 90 0 0 4 0", "A2 1 0 0 0 4 0"},
		{"L5 0zA5 5 0 0 0 10 0", "L5 0zA5 5 0 0 0 10 0"},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.p), func(t *testing.T) {
			assert.Equal(t, MustParseSVGPath(tt.p), MustParseSVGPath(tt.expected))
		})
	}
}

func TestPathPos(t *testing.T) {
	p := MustParseSVGPath("M5 5L10 5Q10 10 15 10")
	assert.Equal(t, math32.Vector2{X: 15, Y: 10}, p.Pos())
	assert.Equal(t, math32.Vector2{X: 5, Y: 5}, p.StartPos())

	assert.Equal(t, math32.Vector2{}, Path{}.Pos())
	assert.Equal(t, math32.Vector2{}, Path{}.StartPos())
}

func TestPathScanner(t *testing.T) {
	p := MustParseSVGPath("M5 5L10 5Q12 10 15 5C15 0 20 0 20 5z")
	s := p.Scanner()

	assert.True(t, s.Scan())
	assert.Equal(t, MoveTo, s.Cmd())
	assert.Equal(t, math32.Vector2{X: 5, Y: 5}, s.End())

	assert.True(t, s.Scan())
	assert.Equal(t, LineTo, s.Cmd())
	assert.Equal(t, math32.Vector2{X: 5, Y: 5}, s.Start())
	assert.Equal(t, math32.Vector2{X: 10, Y: 5}, s.End())

	assert.True(t, s.Scan())
	assert.Equal(t, QuadTo, s.Cmd())
	assert.Equal(t, math32.Vector2{X: 12, Y: 10}, s.CP1())
	assert.Equal(t, math32.Vector2{X: 15, Y: 5}, s.End())

	assert.True(t, s.Scan())
	assert.Equal(t, CubeTo, s.Cmd())
	assert.Equal(t, math32.Vector2{X: 15, Y: 0}, s.CP1())
	assert.Equal(t, math32.Vector2{X: 20, Y: 0}, s.CP2())
	assert.Equal(t, math32.Vector2{X: 20, Y: 5}, s.End())

	assert.True(t, s.Scan())
	assert.Equal(t, Close, s.Cmd())
	assert.Equal(t, math32.Vector2{X: 5, Y: 5}, s.End())

	assert.False(t, s.Scan())
}

func TestArcToCubeImmediate(t *testing.T) {
	ArcToCubeImmediate = true
	defer func() { ArcToCubeImmediate = false }()

	p := Path{}
	p.ArcTo(100, 100, 0, false, false, 200, 0)
	assert.InDeltaSlice(t, MustParseSVGPath("C0 54.858 45.142 100 100 100C154.858 100 200 54.858 200 0"), p, 1.0e-3)
}

func TestPathParseSVGPath(t *testing.T) {
	var tts = []struct {
		p string
		r string
	}{
		{"M10 0L20 0H30V10C40 10 50 10 50 0Q55 10 60 0A5 5 0 0 0 70 0Z", "M10 0L20 0L30 0L30 10C40 10 50 10 50 0Q55 10 60 0A5 5 0 0 0 70 0z"},
		{"m10 0l10 0h10v10c10 0 20 0 20 -10q5 10 10 0a5 5 0 0 0 10 0z", "M10 0L20 0L30 0L30 10C40 10 50 10 50 0Q55 10 60 0A5 5 0 0 0 70 0z"},
		{"C0 10 10 10 10 0S20 -10 20 0", "C0 10 10 10 10 0C10 -10 20 -10 20 0"},
		{"c0 10 10 10 10 0s10 -10 10 0", "C0 10 10 10 10 0C10 -10 20 -10 20 0"},
		{"Q5 10 10 0T20 0", "Q5 10 10 0Q15 -10 20 0"},
		{"q5 10 10 0t10 0", "Q5 10 10 0Q15 -10 20 0"},
		{"A10 10 0 0 0 40 0", "A20 20 0 0 0 40 0"}, // scale ellipse
		{"A10 5 0 0020 0", "A10 5 0 0 0 20 0"},     // parse boolean flags

		// go-fuzz
		{"V0 ", ""},
	}
	for _, tt := range tts {
		t.Run(tt.p, func(t *testing.T) {
			p, err := ParseSVGPath(tt.p)
			assert.NoError(t, err)
			assert.Equal(t, MustParseSVGPath(tt.r), p)
		})
	}
}

func TestPathParseSVGPathErrors(t *testing.T) {
	var tts = []struct {
		p   string
		err string
	}{
		{"5", "bad path: path should start with command"},
		{"MM", "bad path: sets of 2 numbers should follow command 'M' at position 2"},
		{"A10 10 000 20 0", "bad path: largeArc and sweep flags should be 0 or 1 in command 'A' at position 12"},
		{"A10 10 0 23 20 0", "bad path: largeArc and sweep flags should be 0 or 1 in command 'A' at position 10"},

		// go-fuzz
		{"V4-z\n0ìGßIzØ", "bad path: unknown command '-' at position 3"},
		{"ae000e000e00", "bad path: sets of 7 numbers should follow command 'a' at position 2"},
		{"s........----.......---------------", "bad path: sets of 4 numbers should follow command 's' at position 2"},
		{"l00000000000000000000+00000000000000000000 00000000000000000000", "bad path: sets of 2 numbers should follow command 'l' at position 64"},
	}
	for _, tt := range tts {
		t.Run(tt.p, func(t *testing.T) {
			_, err := ParseSVGPath(tt.p)
			assert.True(t, err != nil)
			assert.Equal(t, tt.err, err.Error())
		})
	}
}

func TestPathToSVG(t *testing.T) {
	var tts = []struct {
		p   string
		svg string
	}{
		{"", ""},
		{"L10 0Q15 10 20 0M20 10C20 20 30 20 30 10z", "M0 0H10Q15 10 20 0M20 10C20 20 30 20 30 10z"},
		{"L10 0M20 0L30 0", "M0 0H10M20 0H30"},
		{"L0 0L0 10L20 20", "M0 0V10L20 20"},
		{"L.5 .25", "M0 0L.5 .25"},
		{"A5 5 0 0 1 10 0", "M0 0A5 5 0 0110 0"},
		{"A10 5 0 0 0 10 0", "M0 0A10 5 0 0010 0"},
		{"M20 0L20 0", ""},
	}
	for _, tt := range tts {
		t.Run(tt.p, func(t *testing.T) {
			p := MustParseSVGPath(tt.p)
			assert.Equal(t, tt.svg, p.ToSVG())
		})
	}
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "M5 2L10 2", MustParseSVGPath("M5 2L10 2").String())
	assert.Equal(t, "M0 0A5 5 0 0 1 10 0", MustParseSVGPath("A5 5 0 0 1 10 0").String())
}
