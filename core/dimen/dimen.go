// Package dimen implements dimensions and units.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// DU is a dimension type.
// Values are in scaled big points (different from TeX).
// Page coordinates grow to the right and downwards, starting top-left.
type DU int32

// Some pre-defined dimensions
const (
	Zero DU = 0
	SP   DU = 1       // scaled point = BP / 65536
	BP   DU = 65536   // big point (PDF) = 1/72 inch
	PX   DU = 65536   // "pixels"
	PT   DU = 65291   // printers point 1/72.27 inch
	MM   DU = 185771  // millimeters
	CM   DU = 1857710 // centimeters
	IN   DU = 4718592 // inch
)

// Infinity is the largest possible dimension
const Infinity = math.MaxInt32

// DINA4 is the paper size DIN A4, in portrait orientation.
var DINA4 = Point{210 * MM, 297 * MM}

// Stringer implementation.
func (d DU) String() string {
	return fmt.Sprintf("%.2fbp", d.Points())
}

// Points returns a dimension in big (PDF) points.
func (d DU) Points() float64 {
	return float64(d) / float64(BP)
}

// FromPoints converts a value in big points to a dimension.
func FromPoints(bp float64) DU {
	return DU(math.Round(bp * float64(BP)))
}

// Point is a point on a page.
type Point struct {
	X, Y DU
}

// Origin is origin
var Origin = Point{0, 0}

// Shift returns p moved along a vector.
func (p Point) Shift(vector Point) Point {
	return Point{p.X + vector.X, p.Y + vector.Y}
}

// Landscape returns a paper size with the longer side horizontal.
func (p Point) Landscape() Point {
	if p.X < p.Y {
		return Point{p.Y, p.X}
	}
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X.Points(), p.Y.Points())
}

// Rect is a rectangle (on a page).
type Rect struct {
	TopL, BotR Point
}

// RectFromTopRight creates a rectangle with width w and height h, extending
// to the left and downwards from its top-right corner.
func RectFromTopRight(topR Point, w, h DU) Rect {
	return Rect{
		TopL: Point{topR.X - w, topR.Y},
		BotR: Point{topR.X, topR.Y + h},
	}
}

// Width returns the width of a rectangle, i.e. the difference between x-coordinates
// of bottom-right and top-left corner.
func (r Rect) Width() DU {
	return r.BotR.X - r.TopL.X
}

// Height returns the height of a rectangle, i.e. the difference between y-coordinates
// of bottom-right and top-left corner.
func (r Rect) Height() DU {
	return r.BotR.Y - r.TopL.Y
}

// Left is the x-coordinate of the left edge.
func (r Rect) Left() DU { return r.TopL.X }

// Right is the x-coordinate of the right edge.
func (r Rect) Right() DU { return r.BotR.X }

// Top is the y-coordinate of the upper edge.
func (r Rect) Top() DU { return r.TopL.Y }

// Bottom is the y-coordinate of the lower edge.
func (r Rect) Bottom() DU { return r.BotR.Y }

// TopR returns the top-right corner.
func (r Rect) TopR() Point { return Point{r.BotR.X, r.TopL.Y} }

// CenterX is the x-coordinate of the vertical center line.
func (r Rect) CenterX() DU { return r.TopL.X + r.Width()/2 }

// Contains is true if q is a point within r, edges included.
func (r Rect) Contains(q Point) bool {
	return q.X >= r.TopL.X && q.X <= r.BotR.X && q.Y >= r.TopL.Y && q.Y <= r.BotR.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v-%v]", r.TopL, r.BotR)
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]*\.?[0-9]+)([a-zA-Z]{2})?$`)

// ErrDimenFormat is returned for strings which do not denote a dimension.
var ErrDimenFormat = errors.New("format error parsing dimension")

// ParseDimen parses a string to return a dimension. Syntax is a decimal number,
// optionally followed by a unit (`pt`, `bp`, `px`, `mm`, `cm`, `in`, `sp`).
// Numbers without a unit are interpreted in unit `unitless`.
func ParseDimen(s string, unitless DU) (DU, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, ErrDimenFormat
	}
	scale := unitless
	switch d[2] {
	case "pt", "PT":
		scale = PT
	case "mm", "MM":
		scale = MM
	case "bp", "px", "BP", "PX":
		scale = BP
	case "cm", "CM":
		scale = CM
	case "in", "IN":
		scale = IN
	case "sp", "SP":
		scale = SP
	case "":
	default:
		return 0, ErrDimenFormat
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, ErrDimenFormat
	}
	v := math.Round(n * float64(scale))
	if v > Infinity || v < -Infinity {
		return 0, ErrDimenFormat
	}
	return DU(v), nil
}

// ---------------------------------------------------------------------------

// Checked converts a value computed with 64 bit precision to a dimension.
// It returns false if the value is out of the range of dimensions.
func Checked(v int64) (DU, bool) {
	if v > Infinity || v < -Infinity {
		return 0, false
	}
	return DU(v), true
}
