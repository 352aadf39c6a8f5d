// seehuhn.de/go/pie - pie and doughnut chart layout
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package data turns tabular rows into the points of a pie series.
//
// A [Series] keeps the source rows it was built from.  Every mutation
// (adding, removing or updating a row, toggling visibility, expanding the
// "Others" group) changes the source list and re-derives the displayed
// points from scratch, so that the displayed set is never patched in place.
package data

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pie/config"
	"seehuhn.de/go/pie/geometry"
)

// Row is one record of the data source.
type Row = map[string]any

// Point is one slice of the pie.
type Point struct {
	X     any     // category
	Y     float64 // NaN for empty points without a replacement value
	Text  string  // label text from the data label name mapping
	Color string

	Visible bool
	IsEmpty bool

	Percentage float64

	// Angles in degrees, clockwise from the positive x-axis.
	StartAngle       float64
	EndAngle         float64
	MidAngle         float64
	OriginalMidAngle float64

	SliceRadius string  // raw value of the radius mapping
	Radius      float64 // resolved outer radius

	IsExplode bool
	IsClubbed bool // the synthetic "Others" point
	IsSliced  bool // a member of the expanded "Others" group

	Region         geometry.Rect
	LabelRegion    geometry.Rect
	LabelVisible   bool
	LabelPosition  config.LabelPosition
	LabelAngle     float64
	SymbolLocation vec.Vec2

	Index       int
	SourceIndex int // -1 for the "Others" point
}

// Name returns the category as a string.
func (p *Point) Name() string {
	switch x := p.X.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return geometry.FormatNumber(x)
	}
	return fmt.Sprint(p.X)
}

// Abs returns the absolute value of the point, or 0 for empty points.
func (p *Point) Abs() float64 {
	if math.IsNaN(p.Y) {
		return 0
	}
	return math.Abs(p.Y)
}

// Span returns the clockwise angle covered by the slice.
func (p *Point) Span() float64 {
	d := p.EndAngle - p.StartAngle
	if d < 0 {
		d += 360
	}
	return d
}
