// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/paint/ppath"
)

// CommandKinds are the kinds of path [Command]. Each drawing kind has
// a relative twin that offsets from the current cursor position
// instead of giving absolute coordinates.
type CommandKinds int32

const (
	// CmdMove moves the cursor without drawing, starting a new subpath.
	CmdMove CommandKinds = iota

	// CmdMoveRel is the relative form of [CmdMove].
	CmdMoveRel

	// CmdLine draws a line from the cursor to the given point.
	CmdLine

	// CmdLineRel is the relative form of [CmdLine].
	CmdLineRel

	// CmdLineAlongX draws a horizontal line, changing only the
	// cursor x coordinate.
	CmdLineAlongX

	// CmdLineAlongXRel is the relative form of [CmdLineAlongX].
	CmdLineAlongXRel

	// CmdLineAlongY draws a vertical line, changing only the
	// cursor y coordinate.
	CmdLineAlongY

	// CmdLineAlongYRel is the relative form of [CmdLineAlongY].
	CmdLineAlongYRel

	// CmdClose closes the current subpath. The cursor is not moved.
	CmdClose

	// CmdBezCtrl declares a bezier control point for a following
	// [CmdQuadBezTo] or [CmdCubBezTo], pushing it into the rolling
	// two-point control window.
	CmdBezCtrl

	// CmdBezCtrlRel is the relative form of [CmdBezCtrl].
	CmdBezCtrlRel

	// CmdQuadBezTo draws a quadratic bezier to the given point, using
	// the most recently declared control point.
	CmdQuadBezTo

	// CmdQuadBezToRel is the relative form of [CmdQuadBezTo].
	CmdQuadBezToRel

	// CmdCubBezTo draws a cubic bezier to the given point, using the
	// two most recently declared control points in declaration order.
	CmdCubBezTo

	// CmdCubBezToRel is the relative form of [CmdCubBezTo].
	CmdCubBezToRel
)

func (ck CommandKinds) String() string {
	switch ck {
	case CmdMove:
		return "Move"
	case CmdMoveRel:
		return "MoveRel"
	case CmdLine:
		return "Line"
	case CmdLineRel:
		return "LineRel"
	case CmdLineAlongX:
		return "LineAlongX"
	case CmdLineAlongXRel:
		return "LineAlongXRel"
	case CmdLineAlongY:
		return "LineAlongY"
	case CmdLineAlongYRel:
		return "LineAlongYRel"
	case CmdClose:
		return "Close"
	case CmdBezCtrl:
		return "BezCtrl"
	case CmdBezCtrlRel:
		return "BezCtrlRel"
	case CmdQuadBezTo:
		return "QuadBezTo"
	case CmdQuadBezToRel:
		return "QuadBezToRel"
	case CmdCubBezTo:
		return "CubBezTo"
	case CmdCubBezToRel:
		return "CubBezToRel"
	}
	return fmt.Sprintf("CommandKinds(%d)", int32(ck))
}

// Command is one path construction command for a [Path] node:
// a kind plus the coordinates it uses. [CmdLineAlongX] uses only X,
// [CmdLineAlongY] only Y, and [CmdClose] neither. Use the constructor
// functions ([MoveTo], [LineTo], [BezCtrl], ...) rather than filling
// in the fields directly.
type Command struct {
	Kind CommandKinds
	X    float32
	Y    float32
}

// Commands is an ordered sequence of path construction commands.
type Commands []Command

// MoveTo returns a command moving the cursor to the given absolute
// position without drawing.
func MoveTo(x, y float32) Command { return Command{Kind: CmdMove, X: x, Y: y} }

// MoveToRel returns a command moving the cursor by the given offset
// without drawing.
func MoveToRel(x, y float32) Command { return Command{Kind: CmdMoveRel, X: x, Y: y} }

// LineTo returns a command drawing a line to the given absolute position.
func LineTo(x, y float32) Command { return Command{Kind: CmdLine, X: x, Y: y} }

// LineToRel returns a command drawing a line by the given offset.
func LineToRel(x, y float32) Command { return Command{Kind: CmdLineRel, X: x, Y: y} }

// LineToX returns a command drawing a horizontal line to the given
// absolute x coordinate.
func LineToX(x float32) Command { return Command{Kind: CmdLineAlongX, X: x} }

// LineToXRel returns a command drawing a horizontal line by the given
// x offset.
func LineToXRel(x float32) Command { return Command{Kind: CmdLineAlongXRel, X: x} }

// LineToY returns a command drawing a vertical line to the given
// absolute y coordinate.
func LineToY(y float32) Command { return Command{Kind: CmdLineAlongY, Y: y} }

// LineToYRel returns a command drawing a vertical line by the given
// y offset.
func LineToYRel(y float32) Command { return Command{Kind: CmdLineAlongYRel, Y: y} }

// Close returns a command closing the current subpath.
func Close() Command { return Command{Kind: CmdClose} }

// BezCtrl returns a command declaring a bezier control point at the
// given absolute position.
func BezCtrl(x, y float32) Command { return Command{Kind: CmdBezCtrl, X: x, Y: y} }

// BezCtrlRel returns a command declaring a bezier control point at the
// given offset from the cursor.
func BezCtrlRel(x, y float32) Command { return Command{Kind: CmdBezCtrlRel, X: x, Y: y} }

// QuadBezTo returns a command drawing a quadratic bezier to the given
// absolute position, using the most recently declared control point.
func QuadBezTo(x, y float32) Command { return Command{Kind: CmdQuadBezTo, X: x, Y: y} }

// QuadBezToRel returns a command drawing a quadratic bezier by the
// given offset, using the most recently declared control point.
func QuadBezToRel(x, y float32) Command { return Command{Kind: CmdQuadBezToRel, X: x, Y: y} }

// CubBezTo returns a command drawing a cubic bezier to the given
// absolute position, using the two most recently declared control points.
func CubBezTo(x, y float32) Command { return Command{Kind: CmdCubBezTo, X: x, Y: y} }

// CubBezToRel returns a command drawing a cubic bezier by the given
// offset, using the two most recently declared control points.
func CubBezToRel(x, y float32) Command { return Command{Kind: CmdCubBezToRel, X: x, Y: y} }

// UnsupportedCommandError is the error for a [Command] kind that the
// path interpreter does not support. Unsupported commands fail the
// whole interpretation rather than being skipped, since skipping one
// would desync the cursor and control point state from the intended
// path.
type UnsupportedCommandError struct {
	Kind CommandKinds
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("unsupported path command %v", e.Kind)
}

// Path interprets the command sequence into a flat [ppath.Path]. The
// cursor starts at the origin, as does the rolling window of the two
// most recently declared control points. Relative commands offset from
// the cursor. If any command kind is not supported, Path returns an
// [UnsupportedCommandError] and no path.
func (cs Commands) Path() (ppath.Path, error) {
	p := ppath.Path{}
	cur := math32.Vector2{}
	var ctrl [2]math32.Vector2
	for _, c := range cs {
		switch c.Kind {
		case CmdMove:
			cur = math32.Vec2(c.X, c.Y)
			p.MoveTo(cur.X, cur.Y)
		case CmdMoveRel:
			cur = cur.Add(math32.Vec2(c.X, c.Y))
			p.MoveTo(cur.X, cur.Y)
		case CmdLine:
			cur = math32.Vec2(c.X, c.Y)
			p.LineTo(cur.X, cur.Y)
		case CmdLineRel:
			cur = cur.Add(math32.Vec2(c.X, c.Y))
			p.LineTo(cur.X, cur.Y)
		case CmdLineAlongX:
			cur.X = c.X
			p.LineTo(cur.X, cur.Y)
		case CmdLineAlongXRel:
			cur.X += c.X
			p.LineTo(cur.X, cur.Y)
		case CmdLineAlongY:
			cur.Y = c.Y
			p.LineTo(cur.X, cur.Y)
		case CmdLineAlongYRel:
			cur.Y += c.Y
			p.LineTo(cur.X, cur.Y)
		case CmdClose:
			p.Close()
		case CmdBezCtrl:
			ctrl[0] = ctrl[1]
			ctrl[1] = math32.Vec2(c.X, c.Y)
		case CmdBezCtrlRel:
			ctrl[0] = ctrl[1]
			ctrl[1] = cur.Add(math32.Vec2(c.X, c.Y))
		case CmdQuadBezTo:
			cur = math32.Vec2(c.X, c.Y)
			p.QuadTo(ctrl[1].X, ctrl[1].Y, cur.X, cur.Y)
		case CmdQuadBezToRel:
			cur = cur.Add(math32.Vec2(c.X, c.Y))
			p.QuadTo(ctrl[1].X, ctrl[1].Y, cur.X, cur.Y)
		case CmdCubBezTo:
			cur = math32.Vec2(c.X, c.Y)
			p.CubeTo(ctrl[0].X, ctrl[0].Y, ctrl[1].X, ctrl[1].Y, cur.X, cur.Y)
		case CmdCubBezToRel:
			cur = cur.Add(math32.Vec2(c.X, c.Y))
			p.CubeTo(ctrl[0].X, ctrl[0].Y, ctrl[1].X, ctrl[1].Y, cur.X, cur.Y)
		default:
			return nil, &UnsupportedCommandError{Kind: c.Kind}
		}
	}
	return p, nil
}
