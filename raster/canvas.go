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

package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/surface"
	"seehuhn.de/go/pie/text"
)

// Canvas is a surface which paints into an RGBA image.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	Image *image.RGBA

	// Scale is the number of device pixels per chart pixel.
	Scale float64

	fonts *text.FaceMeasurer
	r     *Rasterizer
	log   *zap.Logger
}

var _ surface.Surface = (*Canvas)(nil)

// NewCanvas allocates a transparent canvas for a chart of the given size.
// Text is drawn using fonts; if fonts is nil, text commands are ignored.
func NewCanvas(width, height int, scale float64, fonts *text.FaceMeasurer, log *zap.Logger) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	w := int(math.Ceil(float64(width) * scale))
	h := int(math.Ceil(float64(height) * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r := NewRasterizer(img.Bounds())
	r.Transform = matrix.Scale(scale, scale)
	return &Canvas{Image: img, Scale: scale, fonts: fonts, r: r, log: log}
}

// Path implements surface.Surface.
func (c *Canvas) Path(cmd surface.PathCommand) {
	if cmd.Shape == nil {
		return
	}
	if fill, ok := ParseColor(cmd.Fill); ok {
		c.r.Fill(cmd.Shape, NonZero, c.painter(fill, cmd.Opacity))
	}
	if stroke, ok := ParseColor(cmd.Stroke); ok && cmd.StrokeWidth > 0 {
		pen := Pen{
			Width: cmd.StrokeWidth,
			Cap:   graphics.LineCapButt,
			Join:  graphics.LineJoinRound,
			Dash:  cmd.Dash,
		}
		c.r.Stroke(cmd.Shape, pen, c.painter(stroke, cmd.Opacity))
	}
}

// Rect implements surface.Surface.
func (c *Canvas) Rect(cmd surface.RectCommand) {
	if cmd.Rect.IsEmpty() {
		return
	}
	c.Path(surface.PathCommand{
		ID:          cmd.ID,
		Shape:       geometry.RectPath(cmd.Rect, cmd.Radius),
		Fill:        cmd.Fill,
		Stroke:      cmd.Stroke,
		StrokeWidth: cmd.StrokeWidth,
		Opacity:     cmd.Opacity,
	})
}

// Text implements surface.Surface.  Lines are drawn into a coverage mask
// which is then rotated into place; rotations are rounded to multiples of
// 90 degrees.
func (c *Canvas) Text(cmd surface.TextCommand) {
	if c.fonts == nil || len(cmd.Lines) == 0 {
		return
	}
	col, ok := ParseColor(cmd.Fill)
	if !ok {
		col, ok = ParseColor(cmd.Font.Color)
	}
	if !ok {
		return
	}
	f := cmd.Font
	if f.Size <= 0 {
		f.Size = text.DefaultSize
	}
	f.Size *= c.Scale
	face, err := c.fonts.Face(f)
	if err != nil {
		c.log.Debug("text not drawn", zap.String("id", cmd.ID), zap.Error(err))
		return
	}
	met := face.Metrics()
	ascent := fromFixed(met.Ascent)
	descent := fromFixed(met.Descent)

	lh := cmd.LineHeight * c.Scale
	if lh <= 0 {
		lh = ascent + descent
	}
	widths := make([]float64, len(cmd.Lines))
	maxW := 0.0
	for i, line := range cmd.Lines {
		widths[i] = fromFixed(font.MeasureString(face, line))
		maxW = max(maxW, widths[i])
	}

	// the mask covers the text block in unrotated device coordinates,
	// relative to the text position
	var left float64
	switch cmd.Anchor {
	case surface.AnchorMiddle:
		left = -maxW / 2
	case surface.AnchorEnd:
		left = -maxW
	}
	top := (cmd.Top() - cmd.Position.Y) * c.Scale
	mw := int(math.Ceil(maxW)) + 2
	mh := int(math.Ceil(lh*float64(len(cmd.Lines)))) + 2
	mask := image.NewAlpha(image.Rect(0, 0, mw, mh))
	d := &font.Drawer{Dst: mask, Src: image.Opaque, Face: face}
	for i, line := range cmd.Lines {
		x := 1.0
		switch cmd.Anchor {
		case surface.AnchorMiddle:
			x += (maxW - widths[i]) / 2
		case surface.AnchorEnd:
			x += maxW - widths[i]
		}
		baseline := 1 + (float64(i)+0.5)*lh + (ascent-descent)/2
		d.Dot = fixed.Point26_6{X: toFixed(x), Y: toFixed(baseline)}
		d.DrawString(line)
	}

	quarter := int(math.Round(cmd.Rotation/90)) & 3
	px := cmd.Position.X * c.Scale
	py := cmd.Position.Y * c.Scale
	alpha := float32(clamp01(cmd.Opacity))
	b := c.Image.Bounds()
	for my := range mh {
		for mx := range mw {
			a := mask.AlphaAt(mx, my).A
			if a == 0 {
				continue
			}
			lx := left + float64(mx) - 1
			ly := top + float64(my) - 1
			var dx, dy float64
			switch quarter {
			case 0:
				dx, dy = lx, ly
			case 1: // 90 degrees clockwise
				dx, dy = -ly-1, lx
			case 2:
				dx, dy = -lx-1, -ly-1
			case 3:
				dx, dy = ly, -lx-1
			}
			x := int(math.Floor(px + dx))
			y := int(math.Floor(py + dy))
			if !(image.Point{X: x, Y: y}).In(b) {
				continue
			}
			c.blend(x, y, col, float32(a)/255*alpha)
		}
	}
}

// painter returns an emit function compositing col with the given
// opacity over the image.
func (c *Canvas) painter(col color.NRGBA, opacity float64) func(y, x int, coverage []float32) {
	alpha := float32(clamp01(opacity))
	return func(y, x int, coverage []float32) {
		for i, cov := range coverage {
			if cov > 0 {
				c.blend(x+i, y, col, cov*alpha)
			}
		}
	}
}

// blend composites col with coverage a over the pixel at (x, y),
// using the source-over operator on premultiplied values.
func (c *Canvas) blend(x, y int, col color.NRGBA, a float32) {
	sa := a * float32(col.A) / 255
	if sa <= 0 {
		return
	}
	i := c.Image.PixOffset(x, y)
	pix := c.Image.Pix[i : i+4 : i+4]
	inv := 1 - sa
	pix[0] = uint8(float32(col.R)*sa + float32(pix[0])*inv + 0.5)
	pix[1] = uint8(float32(col.G)*sa + float32(pix[1])*inv + 0.5)
	pix[2] = uint8(float32(col.B)*sa + float32(pix[2])*inv + 0.5)
	pix[3] = uint8(255*sa + float32(pix[3])*inv + 0.5)
}

// WritePNG encodes the image as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.Image); err != nil {
		return errors.Wrap(err, "encoding PNG")
	}
	return nil
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, 0), 1)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
