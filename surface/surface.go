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

// Package surface defines the drawing interface used by the chart
// renderer, together with a recording surface and an SVG surface.
//
// Coordinates are chart pixels with the origin in the top-left corner and
// the y axis pointing down.  Colours are CSS colour strings; an empty
// string or "transparent" means that nothing is painted.
package surface

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/text"
)

// Surface receives the drawing commands for one frame.
type Surface interface {
	Path(PathCommand)
	Rect(RectCommand)
	Text(TextCommand)
}

// PathCommand draws an outline.
type PathCommand struct {
	ID          string
	Shape       *path.Data
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
	Dash        []float64
}

// RectCommand draws a rectangle, optionally with rounded corners.
type RectCommand struct {
	ID          string
	Rect        geometry.Rect
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
	Radius      float64
}

// TextAnchor selects the horizontal alignment of text relative to its
// position.
type TextAnchor string

// These are the valid text anchors.
const (
	AnchorStart  TextAnchor = "start"
	AnchorMiddle TextAnchor = "middle"
	AnchorEnd    TextAnchor = "end"
)

// Baseline selects the vertical alignment of the text block relative to
// its position.
type Baseline string

// These are the valid baselines.  BaselineMiddle centres the whole block
// of lines on the position.
const (
	BaselineTop    Baseline = "top"
	BaselineMiddle Baseline = "middle"
)

// TextCommand draws one or more lines of text.
type TextCommand struct {
	ID         string
	Position   vec.Vec2
	Lines      []string
	LineHeight float64
	Font       text.Font
	Fill       string
	Anchor     TextAnchor
	Baseline   Baseline

	// Rotation is applied around Position, in degrees clockwise.
	Rotation float64
	Opacity  float64
}

// Top returns the y coordinate of the top of the first line, before
// rotation.
func (c TextCommand) Top() float64 {
	if c.Baseline == BaselineMiddle {
		return c.Position.Y - c.LineHeight*float64(len(c.Lines))/2
	}
	return c.Position.Y
}

// Paints reports whether a colour string denotes a visible paint.
func Paints(color string) bool {
	return color != "" && color != "transparent" && color != "none"
}
