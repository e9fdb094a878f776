// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (in other words, it allows the numbers to be
// within a certain range of each other).
package tolassert

import (
	"github.com/stretchr/testify/assert"
)

// Equal asserts that the two given numbers are within 0.001 of each other.
func Equal[T ~float32 | ~float64](t assert.TestingT, expected, actual T, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that the two given numbers are within the given
// tolerance of each other.
func EqualTol[T ~float32 | ~float64](t assert.TestingT, expected, actual, tol T, msgAndArgs ...any) bool {
	return assert.InDelta(t, expected, actual, float64(tol), msgAndArgs...)
}

// EqualTolSlice asserts that the values in the two given slices are within
// the given tolerance of each other.
func EqualTolSlice[T ~float32 | ~float64](t assert.TestingT, expected, actual []T, tol T, msgAndArgs ...any) bool {
	if !assert.Equal(t, len(expected), len(actual), msgAndArgs...) {
		return false
	}
	res := true
	for i, ev := range expected {
		if !EqualTol(t, ev, actual[i], tol, msgAndArgs...) {
			res = false
		}
	}
	return res
}
