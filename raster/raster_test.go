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
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/surface"
	"seehuhn.de/go/pie/text"
)

// coverage rasterizes into a dense w×h grid.
func coverage(w, h int, draw func(r *Rasterizer, emit func(y, x int, c []float32))) [][]float32 {
	grid := make([][]float32, h)
	for i := range grid {
		grid[i] = make([]float32, w)
	}
	r := NewRasterizer(image.Rect(0, 0, w, h))
	draw(r, func(y, x int, c []float32) {
		copy(grid[y][x:], c)
	})
	return grid
}

func total(grid [][]float32) float64 {
	var s float64
	for _, row := range grid {
		for _, v := range row {
			s += float64(v)
		}
	}
	return s
}

func TestFillRectangle(t *testing.T) {
	rect := geometry.RectPath(geometry.Rect{X: 2.5, Y: 2, Width: 5, Height: 4}, 0)
	grid := coverage(10, 10, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.Fill(rect, NonZero, emit)
	})
	assert.InDelta(t, 1, grid[3][4], 1e-6)
	assert.InDelta(t, 0.5, grid[3][2], 1e-6)
	assert.InDelta(t, 0.5, grid[3][7], 1e-6)
	assert.Equal(t, float32(0), grid[1][4])
	assert.Equal(t, float32(0), grid[6][4])
	assert.InDelta(t, 20, total(grid), 1e-4)
}

func TestFillCircleArea(t *testing.T) {
	disc := geometry.Ring(vec.Vec2{X: 32, Y: 32}, 20, 0)
	grid := coverage(64, 64, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.Fill(disc, NonZero, emit)
	})
	assert.InDelta(t, math.Pi*400, total(grid), 2)
}

func TestFillRules(t *testing.T) {
	// two nested squares with the same orientation
	p := geometry.RectPath(geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}, 0)
	inner := geometry.RectPath(geometry.Rect{X: 3, Y: 3, Width: 4, Height: 4}, 0)
	p.Cmds = append(p.Cmds, inner.Cmds...)
	p.Coords = append(p.Coords, inner.Coords...)

	nz := coverage(10, 10, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.Fill(p, NonZero, emit)
	})
	eo := coverage(10, 10, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.Fill(p, EvenOdd, emit)
	})
	assert.InDelta(t, 1, nz[5][5], 1e-6)
	assert.InDelta(t, 0, eo[5][5], 1e-6)
	assert.InDelta(t, 1, eo[1][1], 1e-6)
}

func TestFillClipped(t *testing.T) {
	rect := geometry.RectPath(geometry.Rect{X: -5, Y: -5, Width: 7, Height: 20}, 0)
	grid := coverage(4, 4, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.Fill(rect, NonZero, emit)
	})
	assert.InDelta(t, 1, grid[0][0], 1e-6)
	assert.InDelta(t, 1, grid[3][1], 1e-6)
	assert.Equal(t, float32(0), grid[0][2])
	assert.Equal(t, float32(0), grid[3][3])
}

func TestStrokeLine(t *testing.T) {
	line := geometry.Polyline(vec.Vec2{X: 2, Y: 5}, vec.Vec2{X: 12, Y: 5})
	pen := Pen{Width: 2, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter}
	grid := coverage(16, 10, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.Stroke(line, pen, emit)
	})
	assert.InDelta(t, 1, grid[4][6], 1e-6)
	assert.InDelta(t, 1, grid[5][6], 1e-6)
	assert.Equal(t, float32(0), grid[3][6])
	assert.Equal(t, float32(0), grid[4][1])
	assert.InDelta(t, 20, total(grid), 1e-4)

	pen.Cap = graphics.LineCapSquare
	grid = coverage(16, 10, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.Stroke(line, pen, emit)
	})
	assert.InDelta(t, 24, total(grid), 1e-4)
	assert.InDelta(t, 1, grid[4][1], 1e-6)
}

func TestStrokeJoinsOverlapOnce(t *testing.T) {
	// overlapping segment and join polygons must not add up
	corner := geometry.Polyline(vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 12, Y: 2}, vec.Vec2{X: 12, Y: 12})
	for _, join := range []graphics.LineJoinStyle{graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel} {
		grid := coverage(16, 16, func(r *Rasterizer, emit func(int, int, []float32)) {
			r.Stroke(corner, Pen{Width: 2, Join: join}, emit)
		})
		for _, row := range grid {
			for _, v := range row {
				assert.LessOrEqual(t, v, float32(1))
			}
		}
		assert.InDelta(t, 1, grid[2][11], 1e-6)
	}
}

func TestStrokeClosedRect(t *testing.T) {
	r := geometry.RectPath(geometry.Rect{X: 2, Y: 2, Width: 10, Height: 10}, 0)
	grid := coverage(16, 16, func(ras *Rasterizer, emit func(int, int, []float32)) {
		ras.Stroke(r, Pen{Width: 2, Join: graphics.LineJoinMiter}, emit)
	})
	// outer 12×12 square minus inner 8×8 square
	assert.InDelta(t, 144-64, total(grid), 1e-3)
	assert.Equal(t, float32(0), grid[7][7])
}

func TestDash(t *testing.T) {
	line := geometry.Polyline(vec.Vec2{X: 0, Y: 5}, vec.Vec2{X: 16, Y: 5})
	grid := coverage(16, 10, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.Stroke(line, Pen{Width: 2, Dash: []float64{2, 2}}, emit)
	})
	assert.InDelta(t, 16, total(grid), 1e-4)
	assert.InDelta(t, 1, grid[5][0], 1e-6)
	assert.Equal(t, float32(0), grid[5][2])
	assert.InDelta(t, 1, grid[5][4], 1e-6)

	pieces := applyDash(polyline{pts: []vec.Vec2{{X: 0}, {X: 10}}}, []float64{3}, 1)
	require.Len(t, pieces, 2)
	assert.InDelta(t, 2, pieces[0].pts[1].X, 1e-9)
	assert.InDelta(t, 5, pieces[1].pts[0].X, 1e-9)
	assert.InDelta(t, 8, pieces[1].pts[1].X, 1e-9)
}

func TestParseColor(t *testing.T) {
	cases := map[string]color.NRGBA{
		"#ff0000":            {R: 255, A: 255},
		"#0f0":               {G: 255, A: 255},
		"#00000080":          {A: 128},
		"rgb(1, 2, 3)":       {R: 1, G: 2, B: 3, A: 255},
		"rgba(0,0,255,0.5)":  {B: 255, A: 128},
		"White":              {R: 255, G: 255, B: 255, A: 255},
		"  cornflowerblue  ": {R: 100, G: 149, B: 237, A: 255},
	}
	for s, want := range cases {
		got, ok := ParseColor(s)
		assert.True(t, ok, s)
		assert.Equal(t, want, got, s)
	}
	for _, s := range []string{"", "transparent", "none", "#12", "rgb(1,2)", "nocolor"} {
		_, ok := ParseColor(s)
		assert.False(t, ok, s)
	}
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(20, 10, 2, nil, nil)
	require.Equal(t, image.Rect(0, 0, 40, 20), c.Image.Bounds())

	c.Rect(surface.RectCommand{Rect: geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}, Fill: "#ff0000", Opacity: 1})
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c.Image.RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{}, c.Image.RGBAAt(30, 10))

	c.Rect(surface.RectCommand{Rect: geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}, Fill: "#0000ff", Opacity: 0.5})
	px := c.Image.RGBAAt(10, 10)
	assert.InDelta(t, 128, int(px.R), 1)
	assert.InDelta(t, 128, int(px.B), 1)
	assert.Equal(t, uint8(255), px.A)

	var buf bytes.Buffer
	require.NoError(t, c.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.Image.Bounds(), img.Bounds())
}

func TestCanvasText(t *testing.T) {
	fonts, err := text.NewFaceMeasurer()
	require.NoError(t, err)

	inked := func(rot float64) image.Rectangle {
		c := NewCanvas(100, 100, 1, fonts, nil)
		c.Text(surface.TextCommand{
			Position:   vec.Vec2{X: 50, Y: 50},
			Lines:      []string{"Legend"},
			LineHeight: 14,
			Font:       text.Font{Size: 12, Color: "#000000"},
			Anchor:     surface.AnchorMiddle,
			Baseline:   surface.BaselineMiddle,
			Rotation:   rot,
			Opacity:    1,
		})
		var box image.Rectangle
		for y := range 100 {
			for x := range 100 {
				if c.Image.RGBAAt(x, y).A > 0 {
					box = box.Union(image.Rect(x, y, x+1, y+1))
				}
			}
		}
		return box
	}

	flat := inked(0)
	require.False(t, flat.Empty())
	assert.Greater(t, flat.Dx(), flat.Dy())
	assert.True(t, image.Pt(50, 50).In(flat.Inset(-2)))

	up := inked(-90)
	require.False(t, up.Empty())
	assert.Greater(t, up.Dy(), up.Dx())
	assert.InDelta(t, flat.Dx(), up.Dy(), 1)
}

func benchPath() *path.Data {
	return geometry.Slice{
		Center: vec.Vec2{X: 100, Y: 100},
		Radius: 90,
		Start:  -90,
		Span:   130,
	}.Path()
}

func BenchmarkFill(b *testing.B) {
	p := benchPath()
	r := NewRasterizer(image.Rect(0, 0, 200, 200))
	emit := func(int, int, []float32) {}
	for b.Loop() {
		r.Fill(p, NonZero, emit)
	}
}

// BenchmarkVector rasterizes the same shape with golang.org/x/image/vector,
// for comparison.
func BenchmarkVector(b *testing.B) {
	p := benchPath()
	dst := image.NewAlpha(image.Rect(0, 0, 200, 200))
	z := vector.NewRasterizer(200, 200)
	for b.Loop() {
		z.Reset(200, 200)
		k := 0
		for _, cmd := range p.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				z.MoveTo(float32(p.Coords[k].X), float32(p.Coords[k].Y))
				k++
			case path.CmdLineTo:
				z.LineTo(float32(p.Coords[k].X), float32(p.Coords[k].Y))
				k++
			case path.CmdQuadTo:
				z.QuadTo(float32(p.Coords[k].X), float32(p.Coords[k].Y),
					float32(p.Coords[k+1].X), float32(p.Coords[k+1].Y))
				k += 2
			case path.CmdCubeTo:
				z.CubeTo(float32(p.Coords[k].X), float32(p.Coords[k].Y),
					float32(p.Coords[k+1].X), float32(p.Coords[k+1].Y),
					float32(p.Coords[k+2].X), float32(p.Coords[k+2].Y))
				k += 3
			case path.CmdClose:
				z.ClosePath()
			}
		}
		z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	}
}
