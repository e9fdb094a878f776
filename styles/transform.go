// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"cogentcore.org/exgui/math32"
)

// Transform specifies the local transform of a node and caches the
// composed global transform from the last layout pass. The zero value
// is the identity transform, which composition skips entirely.
type Transform struct {

	// Matrix is the local transform matrix. nil means identity.
	Matrix *math32.Matrix2

	// Absolute indicates that the local matrix replaces the parent
	// transform instead of composing with it.
	Absolute bool

	// Global is the composed global matrix cached by the last layout
	// pass, for use by renderers.
	Global math32.Matrix2
}

// NewTransform returns a new [Transform] with the given local matrix.
func NewTransform(m math32.Matrix2) Transform {
	return Transform{Matrix: &m}
}

// IsNone returns whether this transform does not exist: no local
// matrix and not absolute. Such transforms compose to the parent
// matrix with no multiplication.
func (t *Transform) IsNone() bool {
	return t.Matrix == nil && !t.Absolute
}

// LocalMatrix returns the local matrix, or identity if there is none.
func (t *Transform) LocalMatrix() math32.Matrix2 {
	if t.Matrix == nil {
		return math32.Identity2()
	}
	return *t.Matrix
}

// ComposeGlobal composes this transform with the given parent global
// matrix, caches the result in Global, and returns it. An absolute
// transform ignores the parent entirely; a nonexistent transform
// passes the parent through unchanged.
func (t *Transform) ComposeGlobal(parent math32.Matrix2) math32.Matrix2 {
	switch {
	case t.Absolute:
		t.Global = t.LocalMatrix()
	case t.Matrix == nil:
		t.Global = parent
	default:
		t.Global = parent.Mul(*t.Matrix)
	}
	return t.Global
}
