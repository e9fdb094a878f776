// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "fmt"

// AlignHor are the horizontal text alignment options, relative to
// the text position.
type AlignHor int32

const (
	// AlignLeft renders the text to the right of the position.
	AlignLeft AlignHor = iota

	// AlignRight renders the text to the left of the position.
	AlignRight

	// AlignCenter centers the text horizontally on the position.
	AlignCenter
)

func (ah AlignHor) String() string {
	switch ah {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	}
	return fmt.Sprintf("AlignHor(%d)", int32(ah))
}

// AlignVer are the vertical text alignment options, relative to
// the text position.
type AlignVer int32

const (
	// AlignBaseline puts the text baseline on the position.
	AlignBaseline AlignVer = iota

	// AlignTop renders the text below the position.
	AlignTop

	// AlignMiddle centers the text vertically on the position.
	AlignMiddle

	// AlignBottom renders the text above the position.
	AlignBottom
)

func (av AlignVer) String() string {
	switch av {
	case AlignBaseline:
		return "baseline"
	case AlignTop:
		return "top"
	case AlignMiddle:
		return "middle"
	case AlignBottom:
		return "bottom"
	}
	return fmt.Sprintf("AlignVer(%d)", int32(av))
}

// TextAlign is the pair of horizontal and vertical text alignment
// options. The zero value is left baseline.
type TextAlign struct {
	Hor AlignHor
	Ver AlignVer
}
