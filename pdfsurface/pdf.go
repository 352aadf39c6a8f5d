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

// Package pdfsurface draws charts onto a single PDF page.
//
// Slices, connectors and rectangles are written as PDF path objects.  Text
// is not drawn, since this would require embedding fonts; text commands are
// counted and logged instead.
package pdfsurface

import (
	imgcolor "image/color"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/extgstate"

	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/raster"
	"seehuhn.de/go/pie/surface"
)

// Page is a surface writing into a PDF file.  One chart pixel maps to one
// PDF point.
type Page struct {
	page *document.Page
	log  *zap.Logger

	// SkippedText counts the text commands which were not drawn.
	SkippedText int
}

var _ surface.Surface = (*Page)(nil)

// Create starts a new PDF file with one page of the given size.  The file
// is complete after Close has been called.
func Create(fileName string, width, height float64, log *zap.Logger) (*Page, error) {
	if log == nil {
		log = zap.NewNop()
	}
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", fileName)
	}

	// PDF origin is bottom-left; charts use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinRound)

	return &Page{page: page, log: log}, nil
}

// Close finishes the page and writes the file.
func (p *Page) Close() error {
	if p.SkippedText > 0 {
		p.log.Debug("text not drawn in PDF output", zap.Int("commands", p.SkippedText))
	}
	if err := p.page.Close(); err != nil {
		return errors.Wrap(err, "writing PDF")
	}
	return nil
}

// Path implements surface.Surface.
func (p *Page) Path(cmd surface.PathCommand) {
	if cmd.Shape == nil {
		return
	}
	fill, hasFill := raster.ParseColor(cmd.Fill)
	stroke, hasStroke := raster.ParseColor(cmd.Stroke)
	hasStroke = hasStroke && cmd.StrokeWidth > 0
	if !hasFill && !hasStroke || cmd.Opacity <= 0 {
		return
	}

	p.page.PushGraphicsState()
	defer p.page.PopGraphicsState()

	fillAlpha := float64(fill.A) / 255 * opacity(cmd.Opacity)
	strokeAlpha := float64(stroke.A) / 255 * opacity(cmd.Opacity)
	if (hasFill && fillAlpha < 1) || (hasStroke && strokeAlpha < 1) {
		p.page.SetExtGState(&extgstate.ExtGState{
			Set:         graphics.StateStrokeAlpha | graphics.StateFillAlpha,
			StrokeAlpha: strokeAlpha,
			FillAlpha:   fillAlpha,
			SingleUse:   true,
		})
	}
	if hasFill {
		p.page.SetFillColor(deviceRGB(fill))
	}
	if hasStroke {
		p.page.SetStrokeColor(deviceRGB(stroke))
		p.page.SetLineWidth(cmd.StrokeWidth)
		if len(cmd.Dash) > 0 {
			p.page.SetLineDash(cmd.Dash, 0)
		}
	}

	p.draw(cmd.Shape)

	switch {
	case hasFill && hasStroke:
		p.page.FillAndStroke()
	case hasFill:
		p.page.Fill()
	default:
		p.page.Stroke()
	}
}

// Rect implements surface.Surface.
func (p *Page) Rect(cmd surface.RectCommand) {
	if cmd.Rect.IsEmpty() {
		return
	}
	p.Path(surface.PathCommand{
		ID:          cmd.ID,
		Shape:       geometry.RectPath(cmd.Rect, cmd.Radius),
		Fill:        cmd.Fill,
		Stroke:      cmd.Stroke,
		StrokeWidth: cmd.StrokeWidth,
		Opacity:     cmd.Opacity,
	})
}

// Text implements surface.Surface.
func (p *Page) Text(cmd surface.TextCommand) {
	if len(cmd.Lines) > 0 {
		p.SkippedText++
	}
}

// draw appends the path to the current PDF path, converting quadratic
// segments into cubic ones.
func (p *Page) draw(shape *path.Data) {
	for cmd, pts := range shape.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			p.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			p.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			p.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			p.page.ClosePath()
		}
	}
}

func deviceRGB(c imgcolor.NRGBA) color.Color {
	return color.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

func opacity(v float64) float64 {
	return min(max(v, 0), 1)
}
