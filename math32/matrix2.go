// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix2 is a 3x2 matrix for 2D transforms, with the bottom row
// implicitly [0, 0, 1]. The column-wise layout matches the SVG
// matrix(xx, yx, xy, yy, x0, y0) transform form: XX, YX is the
// x axis basis vector, XY, YY is the y axis basis vector, and
// X0, Y0 is the translation.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{
		XX: 1,
		YY: 1,
	}
}

// IsIdentity returns whether this matrix is the identity matrix.
func (m Matrix2) IsIdentity() bool {
	return m == Identity2()
}

// Translate2D returns a new [Matrix2] that translates by the given
// x and y offsets.
func Translate2D(x, y float32) Matrix2 {
	m := Identity2()
	m.X0 = x
	m.Y0 = y
	return m
}

// Scale2D returns a new [Matrix2] that scales by the given x and y factors.
func Scale2D(x, y float32) Matrix2 {
	m := Identity2()
	m.XX = x
	m.YY = y
	return m
}

// Rotate2D returns a new [Matrix2] that rotates by the given angle,
// in radians.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{
		XX: c,
		YX: s,
		XY: -s,
		YY: c,
	}
}

// Mul returns the result of multiplying this matrix by the other given
// matrix. The other matrix is the logically earlier transform: the
// resulting matrix applies other first and this matrix second,
// so composition order is the reverse of application order.
func (m Matrix2) Mul(other Matrix2) Matrix2 {
	return Matrix2{
		XX: m.XX*other.XX + m.XY*other.YX,
		YX: m.YX*other.XX + m.YY*other.YX,
		XY: m.XX*other.XY + m.XY*other.YY,
		YY: m.YX*other.XY + m.YY*other.YY,
		X0: m.XX*other.X0 + m.XY*other.Y0 + m.X0,
		Y0: m.YX*other.X0 + m.YY*other.Y0 + m.Y0,
	}
}

// SetMul sets this matrix to the result of multiplying it by the other
// given matrix.
func (m *Matrix2) SetMul(other Matrix2) {
	*m = m.Mul(other)
}

// Translate returns this matrix with an additional translation by the
// given x and y offsets, applied before the existing transform.
func (m Matrix2) Translate(x, y float32) Matrix2 {
	return m.Mul(Translate2D(x, y))
}

// Scale returns this matrix with an additional scaling by the given
// factors, applied before the existing transform.
func (m Matrix2) Scale(x, y float32) Matrix2 {
	return m.Mul(Scale2D(x, y))
}

// Rotate returns this matrix with an additional rotation by the given
// angle, in radians, applied before the existing transform.
func (m Matrix2) Rotate(angle float32) Matrix2 {
	return m.Mul(Rotate2D(angle))
}

// MulVector2AsVector multiplies the given vector by this matrix as a
// vector, with no translation.
func (m Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := m.XX*v.X + m.XY*v.Y
	ty := m.YX*v.X + m.YY*v.Y
	return Vec2(tx, ty)
}

// MulVector2AsPoint multiplies the given vector by this matrix as a
// point, including translation.
func (m Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := m.XX*v.X + m.XY*v.Y + m.X0
	ty := m.YX*v.X + m.YY*v.Y + m.Y0
	return Vec2(tx, ty)
}

// Inverse returns the inverse of this matrix.
func (m Matrix2) Inverse() Matrix2 {
	det := m.XX*m.YY - m.XY*m.YX

	return Matrix2{
		XX: m.YY / det,
		YX: -m.YX / det,
		XY: -m.XY / det,
		YY: m.XX / det,
		X0: (m.XY*m.Y0 - m.YY*m.X0) / det,
		Y0: (m.YX*m.X0 - m.XX*m.Y0) / det,
	}
}

// ExtractRot extracts the rotation component from this matrix,
// in radians.
func (m Matrix2) ExtractRot() float32 {
	return Atan2(-m.XY, m.XX)
}

// ExtractScale extracts the x and y scale factors from this matrix.
func (m Matrix2) ExtractScale() (scx, scy float32) {
	scx = Vec2(m.XX, m.YX).Length()
	scy = Vec2(m.XY, m.YY).Length()
	return
}

// SetString processes the standard SVG-style transform strings:
// none, matrix(a, b, c, d, e, f), translate(x, y), scale(x, y),
// and rotate(angle). Multiple space-separated transforms are
// composed in order.
func (m *Matrix2) SetString(str string) error {
	errmsg := "math32.Matrix2.SetString"
	str = strings.ToLower(strings.TrimSpace(str))
	*m = Identity2()
	if str == "none" {
		return nil
	}
	// could have multiple transforms
	for {
		pidx := strings.IndexByte(str, '(')
		if pidx < 0 {
			err := fmt.Errorf("%s: no params for transform: %q", errmsg, str)
			return err
		}
		cmd := strings.TrimSpace(str[:pidx])
		vals := str[pidx+1:]
		nxt := ""
		eidx := strings.IndexByte(vals, ')')
		if eidx > 0 {
			nxt = strings.TrimSpace(vals[eidx+1:])
			vals = vals[:eidx]
		}
		pts, err := readPoints(vals)
		if err != nil {
			return err
		}
		switch cmd {
		case "matrix":
			if len(pts) != 6 {
				return fmt.Errorf("%s: matrix requires 6 values, got: %d", errmsg, len(pts))
			}
			*m = m.Mul(Matrix2{pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]})
		case "translate":
			if len(pts) != 2 {
				return fmt.Errorf("%s: translate requires 2 values, got: %d", errmsg, len(pts))
			}
			*m = m.Translate(pts[0], pts[1])
		case "scale":
			switch len(pts) {
			case 1:
				*m = m.Scale(pts[0], pts[0])
			case 2:
				*m = m.Scale(pts[0], pts[1])
			default:
				return fmt.Errorf("%s: scale requires 1 or 2 values, got: %d", errmsg, len(pts))
			}
		case "rotate":
			if len(pts) != 1 {
				return fmt.Errorf("%s: rotate requires 1 value, got: %d", errmsg, len(pts))
			}
			*m = m.Rotate(DegToRad(pts[0]))
		default:
			return fmt.Errorf("%s: unknown transform type: %q", errmsg, cmd)
		}
		if nxt == "" {
			break
		}
		if !strings.Contains(nxt, "(") {
			break
		}
		str = nxt
	}
	return nil
}

// readPoints reads a comma or space separated list of float values.
func readPoints(pstr string) ([]float32, error) {
	lastIdx := -1
	var pts []float32
	lr := ' '
	for i, r := range pstr {
		if !unicodeIsNumber(r) && lastIdx != -1 && r != 'e' && r != 'E' && (r != '-' || lr == 'e' || lr == 'E') {
			s := pstr[lastIdx:i]
			p, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return nil, err
			}
			pts = append(pts, float32(p))
			lastIdx = -1
		} else if unicodeIsNumber(r) && lastIdx == -1 {
			lastIdx = i
		}
		lr = r
	}
	if lastIdx != -1 {
		s := pstr[lastIdx:]
		p, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, err
		}
		pts = append(pts, float32(p))
	}
	return pts, nil
}

func unicodeIsNumber(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+'
}

// String returns the SVG-style transform string representation of this
// matrix, using the simplest form that captures it: none, translate,
// scale, translate scale, or the full matrix form.
func (m Matrix2) String() string {
	if m.IsIdentity() {
		return "none"
	}
	if m.YX == 0 && m.XY == 0 { // no rotation or shearing
		hasTrans := m.X0 != 0 || m.Y0 != 0
		hasScale := m.XX != 1 || m.YY != 1
		switch {
		case hasTrans && hasScale:
			return fmt.Sprintf("translate(%s,%s) scale(%s,%s)", f32s(m.X0), f32s(m.Y0), f32s(m.XX), f32s(m.YY))
		case hasTrans:
			return fmt.Sprintf("translate(%s,%s)", f32s(m.X0), f32s(m.Y0))
		case hasScale:
			return fmt.Sprintf("scale(%s,%s)", f32s(m.XX), f32s(m.YY))
		}
	}
	return fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)", f32s(m.XX), f32s(m.YX), f32s(m.XY), f32s(m.YY), f32s(m.X0), f32s(m.Y0))
}

// f32s formats a float32 compactly, without trailing zeros.
func f32s(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
