// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/exgui/base/errors"
	"github.com/stretchr/testify/assert"
)

func TestCommandsLines(t *testing.T) {
	cs := Commands{
		MoveTo(1, 2),
		LineTo(11, 2),
		LineToRel(0, 10),
		LineToX(1),
		LineToYRel(-10),
		Close(),
	}
	p, err := cs.Path()
	assert.NoError(t, err)

	// the final line returns to the start, so closing absorbs it
	assert.Equal(t, "M1 2H11V12H1z", p.ToSVG())
}

func TestCommandsMoveRel(t *testing.T) {
	cs := Commands{
		MoveTo(5, 5),
		LineToXRel(10),
		MoveToRel(0, 10),
		LineToY(25),
	}
	p, err := cs.Path()
	assert.NoError(t, err)
	assert.Equal(t, "M5 5H15M15 15V25", p.ToSVG())
}

func TestCommandsCubic(t *testing.T) {
	cs := Commands{
		MoveTo(0, 0),
		BezCtrl(10, 0),
		BezCtrl(10, 10),
		CubBezTo(0, 10),
	}
	p, err := cs.Path()
	assert.NoError(t, err)

	// one cubic from (0,0) to (0,10), with the two declared control
	// points consumed in declaration order
	assert.Equal(t, "M0 0C10 0 10 10 0 10", p.ToSVG())
}

func TestCommandsQuad(t *testing.T) {
	cs := Commands{
		MoveTo(0, 10),
		BezCtrl(5, 0),
		QuadBezTo(10, 10),
	}
	p, err := cs.Path()
	assert.NoError(t, err)
	assert.Equal(t, "M0 10Q5 0 10 10", p.ToSVG())

	// the control window holds the two most recent declarations:
	// a quad uses only the later one
	cs = Commands{
		MoveTo(0, 10),
		BezCtrl(3, 3),
		BezCtrl(5, 0),
		QuadBezTo(10, 10),
	}
	p, err = cs.Path()
	assert.NoError(t, err)
	assert.Equal(t, "M0 10Q5 0 10 10", p.ToSVG())
}

func TestCommandsRelative(t *testing.T) {
	cs := Commands{
		MoveTo(10, 10),
		BezCtrlRel(5, -10),
		QuadBezToRel(10, 0),
	}
	p, err := cs.Path()
	assert.NoError(t, err)
	assert.Equal(t, "M10 10Q15 0 20 10", p.ToSVG())
}

func TestCommandsUnsupported(t *testing.T) {
	cs := Commands{
		MoveTo(0, 0),
		{Kind: CommandKinds(99), X: 1, Y: 1},
		LineTo(10, 10),
	}
	p, err := cs.Path()
	assert.Error(t, err)
	assert.Nil(t, p)

	var ue *UnsupportedCommandError
	assert.True(t, errors.As(err, &ue))
	assert.Equal(t, CommandKinds(99), ue.Kind)
}
