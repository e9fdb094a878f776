// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
)

// NOTE: these are type and function aliases to the standard library
// errors package, so that this package can be imported in its place.

var (
	// As finds the first error in err's tree that matches target, and if one is found,
	// sets target to that error value and returns true. Otherwise, it returns false.
	As = errors.As

	// Is reports whether any error in err's tree matches target.
	Is = errors.Is

	// Join returns an error that wraps the given errors.
	// Any nil error values are discarded.
	// Join returns nil if every value in errs is nil.
	Join = errors.Join

	// New returns an error that formats as the given text.
	// Each call to New returns a distinct error value even if the text is identical.
	New = errors.New

	// Unwrap returns the result of calling the Unwrap method on err, if err's
	// type contains an Unwrap method returning error.
	// Otherwise, Unwrap returns nil.
	Unwrap = errors.Unwrap
)
