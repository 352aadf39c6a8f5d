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

// Package title places the title and subtitle of a chart.
package title

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pie/config"
	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/text"
)

// Placement is the computed position of a title.
type Placement struct {
	Lines    []string
	Position config.Position

	// Rotation is -90 for titles on the left and 90 for titles on the
	// right of the chart.
	Rotation float64

	// Align is the resolved alignment of the lines inside the text block:
	// AlignNear, AlignCenter or AlignFar, in reading direction.
	Align config.Alignment

	Anchor     vec.Vec2      // centre of the text block
	BorderRect geometry.Rect // text block plus padding, in chart coordinates
	LineHeight float64
	Padding    float64
	Visible    bool
}

// Place lays out s according to cfg inside area.
func Place(s string, cfg config.Title, area geometry.Rect, m text.Measurer) Placement {
	if s == "" || area.IsEmpty() {
		return Placement{}
	}
	sm := text.SafeMeasure{M: m}
	pad := cfg.Padding

	pos := cfg.Position
	vertical := pos == config.PositionLeft || pos == config.PositionRight
	length := area.Width
	if vertical {
		length = area.Height
	}
	avail := length - 2*pad

	var lines []string
	for _, line := range text.SplitLines(s) {
		switch cfg.TextOverflow {
		case config.OverflowWrap:
			w := sm.Wrap(line, avail, cfg.Font)
			if len(w) == 0 {
				w = []string{line}
			}
			lines = append(lines, w...)
		case config.OverflowTrim:
			lines = append(lines, sm.Trim(line, avail, cfg.Font))
		default:
			lines = append(lines, line)
		}
	}
	sz := sm.Lines(lines, cfg.Font)
	along := sz.Width + 2*pad
	across := sz.Height + 2*pad

	p := Placement{
		Lines:      lines,
		Position:   pos,
		Align:      resolveAlign(cfg.Alignment),
		LineHeight: sm.LineHeight(cfg.Font),
		Padding:    pad,
		Visible:    true,
	}

	var r geometry.Rect
	switch pos {
	case config.PositionCustom:
		r = geometry.Rect{X: cfg.X - along/2, Y: cfg.Y - across/2, Width: along, Height: across}
	case config.PositionLeft, config.PositionRight:
		// the text reads bottom to top on the left, top to bottom on the right
		r = geometry.Rect{Width: across, Height: along}
		offs := alongOffset(p.Align, area.Height, along)
		if pos == config.PositionLeft {
			p.Rotation = -90
			r.X = area.X
			r.Y = area.Bottom() - along - offs
		} else {
			p.Rotation = 90
			r.X = area.Right() - across
			r.Y = area.Y + offs
		}
	default:
		r = geometry.Rect{Width: along, Height: across}
		r.X = area.X + alongOffset(p.Align, area.Width, along)
		r.Y = area.Y
		if pos == config.PositionBottom {
			r.Y = area.Bottom() - across
		}
	}
	p.BorderRect = r
	p.Anchor = r.Center()
	return p
}

func resolveAlign(a config.Alignment) config.Alignment {
	switch a {
	case config.AlignNear, config.AlignLeft, config.AlignTop:
		return config.AlignNear
	case config.AlignFar, config.AlignRight, config.AlignBottom:
		return config.AlignFar
	default:
		return config.AlignCenter
	}
}

// alongOffset returns the distance of the text block from the start of the
// edge, measured in reading direction.
func alongOffset(a config.Alignment, length, size float64) float64 {
	switch a {
	case config.AlignNear:
		return 0
	case config.AlignFar:
		return length - size
	default:
		return (length - size) / 2
	}
}

// Shrink returns the part of area not used by the title.  Titles at a
// custom position take no space.
func Shrink(area geometry.Rect, p Placement) geometry.Rect {
	if !p.Visible {
		return area
	}
	r := p.BorderRect
	switch p.Position {
	case config.PositionTop:
		return area.Inset(0, r.Height+p.Padding, 0, 0)
	case config.PositionBottom:
		return area.Inset(0, 0, 0, r.Height+p.Padding)
	case config.PositionLeft:
		return area.Inset(r.Width+p.Padding, 0, 0, 0)
	case config.PositionRight:
		return area.Inset(0, 0, r.Width+p.Padding, 0)
	}
	return area
}
