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

package label

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pie/arc"
	"seehuhn.de/go/pie/data"
	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/text"
)

// Center is the placement of the text in the hole of a doughnut.
type Center struct {
	Lines      []string
	Anchor     vec.Vec2 // centre of the text block
	Region     geometry.Rect
	LineHeight float64
	Visible    bool
}

// PlaceCenter wraps s to fit into the square inscribed in the hole of the
// doughnut.  Nothing is shown for a pie without a hole, or when no point
// is visible.
func PlaceCenter(s string, f text.Font, b arc.Base, points []*data.Point, m text.Measurer) Center {
	if s == "" || b.InnerRadius <= 0 {
		return Center{}
	}
	anyVisible := false
	for _, p := range points {
		if p.Visible {
			anyVisible = true
			break
		}
	}
	if !anyVisible {
		return Center{}
	}

	sm := text.SafeMeasure{M: m}
	width := b.InnerRadius * math.Sqrt2
	var lines []string
	for _, line := range text.SplitLines(s) {
		wrapped := sm.Wrap(line, width, f)
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}
	lh := sm.LineHeight(f)
	sz := sm.Lines(lines, f)
	return Center{
		Lines:      lines,
		Anchor:     b.Center,
		LineHeight: lh,
		Region: geometry.Rect{
			X:      b.Center.X - sz.Width/2,
			Y:      b.Center.Y - sz.Height/2,
			Width:  sz.Width,
			Height: sz.Height,
		},
		Visible: true,
	}
}
