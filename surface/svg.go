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

package surface

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"seehuhn.de/go/pie/geometry"
)

// SVG writes drawing commands as an SVG document.  Call Close to finish
// the document.
type SVG struct {
	canvas *svg.SVG
}

// NewSVG starts an SVG document of the given size.
func NewSVG(w io.Writer, width, height int) *SVG {
	canvas := svg.New(w)
	canvas.Start(width, height)
	return &SVG{canvas: canvas}
}

// Close writes the end of the document.
func (s *SVG) Close() {
	s.canvas.End()
}

// Path implements Surface.
func (s *SVG) Path(c PathCommand) {
	if c.Shape == nil || len(c.Shape.Cmds) == 0 {
		return
	}
	s.canvas.Path(geometry.SVGPath(c.Shape), idAttr(c.ID),
		paintStyle(c.Fill, c.Stroke, c.StrokeWidth, c.Opacity, c.Dash))
}

// Rect implements Surface.
func (s *SVG) Rect(c RectCommand) {
	if c.Rect.IsEmpty() {
		return
	}
	p := geometry.RectPath(c.Rect, c.Radius)
	s.canvas.Path(geometry.SVGPath(p), idAttr(c.ID),
		paintStyle(c.Fill, c.Stroke, c.StrokeWidth, c.Opacity, nil))
}

// Text implements Surface.
func (s *SVG) Text(c TextCommand) {
	if len(c.Lines) == 0 {
		return
	}
	transform := "translate(" + geometry.FormatNumber(c.Position.X) + "," +
		geometry.FormatNumber(c.Position.Y) + ")"
	if c.Rotation != 0 {
		transform += " rotate(" + geometry.FormatNumber(c.Rotation) + ")"
	}
	s.canvas.Group(idAttr(c.ID), `transform="`+transform+`"`)
	top := c.Top() - c.Position.Y
	for i, line := range c.Lines {
		// each line is vertically centred on its slot
		y := top + (float64(i)+0.5)*c.LineHeight
		s.canvas.Gtransform("translate(0," + geometry.FormatNumber(y) + ")")
		s.canvas.Text(0, 0, line, textStyle(c))
		s.canvas.Gend()
	}
	s.canvas.Gend()
}

func idAttr(id string) string {
	if id == "" {
		return ""
	}
	return `id="` + id + `"`
}

func paintStyle(fill, stroke string, width, opacity float64, dash []float64) string {
	var sb strings.Builder
	if Paints(fill) {
		fmt.Fprintf(&sb, "fill:%s;", fill)
	} else {
		sb.WriteString("fill:none;")
	}
	if Paints(stroke) && width > 0 {
		fmt.Fprintf(&sb, "stroke:%s;stroke-width:%s;", stroke, geometry.FormatNumber(width))
		if len(dash) > 0 {
			parts := make([]string, len(dash))
			for i, d := range dash {
				parts[i] = geometry.FormatNumber(d)
			}
			fmt.Fprintf(&sb, "stroke-dasharray:%s;", strings.Join(parts, ","))
		}
	}
	fmt.Fprintf(&sb, "opacity:%s", geometry.FormatNumber(opacity))
	return sb.String()
}

func textStyle(c TextCommand) string {
	var sb strings.Builder
	anchor := c.Anchor
	if anchor == "" {
		anchor = AnchorStart
	}
	fmt.Fprintf(&sb, "text-anchor:%s;dominant-baseline:central;", anchor)
	if c.Font.Family != "" {
		fmt.Fprintf(&sb, "font-family:%s;", c.Font.Family)
	}
	if c.Font.Size > 0 {
		fmt.Fprintf(&sb, "font-size:%spx;", geometry.FormatNumber(c.Font.Size))
	}
	if c.Font.Weight != "" {
		fmt.Fprintf(&sb, "font-weight:%s;", strings.ToLower(c.Font.Weight))
	}
	if c.Font.Style != "" {
		fmt.Fprintf(&sb, "font-style:%s;", strings.ToLower(c.Font.Style))
	}
	fill := c.Fill
	if !Paints(fill) {
		fill = c.Font.Color
	}
	if Paints(fill) {
		fmt.Fprintf(&sb, "fill:%s;", fill)
	}
	fmt.Fprintf(&sb, "opacity:%s", geometry.FormatNumber(c.Opacity))
	return sb.String()
}
