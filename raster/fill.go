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

// Package raster draws charts into RGBA images.
//
// The Rasterizer computes exact area coverage for polygons with the
// nonzero or even-odd fill rules, one scanline at a time.  Curves are
// flattened before rasterization.  A Canvas combines the rasterizer with
// colour compositing and text drawing to implement surface.Surface.
package raster

import (
	"cmp"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Rule selects how the interior of a self-overlapping path is determined.
type Rule int

// These are the supported fill rules.
const (
	NonZero Rule = iota
	EvenOdd
)

// segment is a non-horizontal line in device coordinates.
type segment struct {
	x0, y0, x1, y1 float64
	dxdy           float64
}

func (s *segment) top() float64    { return min(s.y0, s.y1) }
func (s *segment) bottom() float64 { return max(s.y0, s.y1) }

// Rasterizer converts paths into per-pixel coverage.  Its buffers are
// reused between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Transform maps path coordinates to device pixels.
	Transform matrix.Matrix

	// Clip limits the output.
	Clip image.Rectangle

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments approximating it.
	Flatness float64

	segs   []segment
	active []int
	cover  []float32
	area   []float32

	bbox     [4]float64 // xMin, yMin, xMax, yMax of all segments
	haveBBox bool
}

// NewRasterizer returns a rasterizer for the given clip rectangle.
func NewRasterizer(clip image.Rectangle) *Rasterizer {
	return &Rasterizer{
		Transform: matrix.Identity,
		Clip:      clip,
		Flatness:  defaultFlatness,
	}
}

// Fill computes the coverage of p and calls emit once for every scanline
// with non-zero coverage.  The coverage slice starts at pixel x and is only
// valid during the call.
func (r *Rasterizer) Fill(p *path.Data, rule Rule, emit func(y, x int, coverage []float32)) {
	r.reset()
	r.walk(p, r.addLine)
	r.scan(rule, emit)
}

func (r *Rasterizer) reset() {
	r.segs = r.segs[:0]
	r.haveBBox = false
}

// device maps a point from path coordinates to device coordinates.
func (r *Rasterizer) device(v vec.Vec2) vec.Vec2 {
	m := r.Transform
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// walk flattens p in device coordinates.  The line callback receives
// every segment; subpaths are implicitly closed.
func (r *Rasterizer) walk(p *path.Data, line func(a, b vec.Vec2)) {
	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && cur != start {
				line(cur, start)
			}
			cur = r.device(p.Coords[k])
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			next := r.device(p.Coords[k])
			line(cur, next)
			cur = next
			k++
		case path.CmdQuadTo:
			c, next := r.device(p.Coords[k]), r.device(p.Coords[k+1])
			flattenQuad(cur, c, next, r.Flatness, line)
			cur = next
			k += 2
		case path.CmdCubeTo:
			c1, c2 := r.device(p.Coords[k]), r.device(p.Coords[k+1])
			next := r.device(p.Coords[k+2])
			flattenCube(cur, c1, c2, next, r.Flatness, line)
			cur = next
			k += 3
		case path.CmdClose:
			if cur != start {
				line(cur, start)
			}
			cur = start
		}
	}
	if open && cur != start {
		line(cur, start)
	}
}

// addLine records a device space segment.
func (r *Rasterizer) addLine(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalThreshold {
		return
	}
	r.segs = append(r.segs, segment{
		x0: a.X, y0: a.Y, x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})
	box := [4]float64{min(a.X, b.X), min(a.Y, b.Y), max(a.X, b.X), max(a.Y, b.Y)}
	if !r.haveBBox {
		r.bbox = box
		r.haveBBox = true
		return
	}
	r.bbox[0] = min(r.bbox[0], box[0])
	r.bbox[1] = min(r.bbox[1], box[1])
	r.bbox[2] = max(r.bbox[2], box[2])
	r.bbox[3] = max(r.bbox[3], box[3])
}

// flattenQuad splits a quadratic Bézier curve into line segments.
func flattenQuad(p0, p1, p2 vec.Vec2, tol float64, line func(a, b vec.Vec2)) {
	dev := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	n := 1
	if dev > tol {
		n = int(math.Ceil(math.Sqrt(dev / tol)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		line(prev, pt)
		prev = pt
	}
}

// flattenCube splits a cubic Bézier curve into line segments, using
// Wang's formula for the number of segments.
func flattenCube(p0, p1, p2, p3 vec.Vec2, tol float64, line func(a, b vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * tol)); f > 1 {
			n = int(math.Ceil(f))
		}
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		line(prev, pt)
		prev = pt
	}
}

// scan runs the active segment list over all scanlines touched by the
// recorded segments.
//
// Each segment adds its signed vertical extent to the cover buffer of
// the pixel column it crosses, and the part of that extent to the right
// of the crossing to the area buffer.  Summing cover from the left and
// adding the area of the current pixel gives the signed covered area.
func (r *Rasterizer) scan(rule Rule, emit func(y, x int, coverage []float32)) {
	if !r.haveBBox {
		return
	}
	xMin := max(int(math.Floor(r.bbox[0])), r.Clip.Min.X)
	xMax := min(int(math.Floor(r.bbox[2]))+1, r.Clip.Max.X)
	yMin := max(int(math.Floor(r.bbox[1])), r.Clip.Min.Y)
	yMax := min(int(math.Floor(r.bbox[3]))+1, r.Clip.Max.Y)
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.segs, func(a, b segment) int {
		return cmp.Compare(a.top(), b.top())
	})
	r.active = r.active[:0]
	next := 0
	for next < len(r.segs) && r.segs[next].bottom() <= float64(yMin) {
		next++
	}

	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.segs) && r.segs[next].top() < yf+1 {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			s := &r.segs[r.active[i]]
			if s.bottom() <= yf {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if accumulate(s, y, r.cover, r.area, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if row, offs := trim(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// accumulate adds the contribution of s within scanline y.  Buffers are
// indexed from xMin; crossings left of xMin are attributed to the first
// column.  It reports whether anything was added.
func accumulate(s *segment, y int, cover, area []float32, xMin, xMax int) bool {
	yTop := max(float64(y), s.top())
	yBot := min(float64(y+1), s.bottom())
	if yBot <= yTop {
		return false
	}
	sign := float32(1)
	if s.y1 < s.y0 {
		sign = -1
	}

	xa := s.x0 + s.dxdy*(yTop-s.y0)
	xb := s.x0 + s.dxdy*(yBot-s.y0)
	left, right := min(xa, xb), max(xa, xb)
	pl, pr := int(math.Floor(left)), int(math.Floor(right))

	add := func(pix int, y0, y1 float64) {
		c := sign * float32(y1-y0)
		switch {
		case pix < xMin:
			cover[0] += c
			area[0] += c
		case pix < xMax:
			xm := s.x0 + s.dxdy*((y0+y1)/2-s.y0)
			frac := float32(xm - float64(pix))
			cover[pix-xMin] += c
			area[pix-xMin] += c * (1 - frac)
		}
	}

	if pl == pr {
		add(pl, yTop, yBot)
		return true
	}
	// the segment crosses several pixel columns
	dydx := 1 / s.dxdy
	for pix := pl; pix <= pr; pix++ {
		ya := s.y0 + dydx*(float64(pix)-s.x0)
		yb := s.y0 + dydx*(float64(pix+1)-s.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi > lo {
			add(pix, lo, hi)
		}
	}
	return true
}

// integrate turns the accumulated buffers into coverage values in [0, 1],
// in place.
func integrate(cover, area []float32, rule Rule) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		if rule == EvenOdd {
			v -= 2 * float32(int(v/2))
			if v > 1 {
				v = 2 - v
			}
		} else if v > 1 {
			v = 1
		}
		cover[i] = v
	}
}

// trim removes leading and trailing zeros.
func trim(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is well below what can be seen on screen.
	defaultFlatness = 0.25

	horizontalThreshold = 1e-10
)
