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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Pen describes how outlines are stroked.  Width and Dash are given in
// path coordinates.
type Pen struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64
	DashPhase  float64
}

// Stroke computes the coverage of the outline of p drawn with pen.
//
// The stroke is built from one polygon per line segment plus polygons for
// the joins and caps.  All polygons have the same orientation, so that
// filling them together with the nonzero rule gives their union.
func (r *Rasterizer) Stroke(p *path.Data, pen Pen, emit func(y, x int, coverage []float32)) {
	r.reset()
	scale := math.Sqrt(math.Abs(r.Transform[0]*r.Transform[3] - r.Transform[1]*r.Transform[2]))
	hw := pen.Width * scale / 2
	if hw <= 0 {
		return
	}
	var dash []float64
	if dashValid(pen.Dash) {
		dash = make([]float64, len(pen.Dash))
		for i, d := range pen.Dash {
			dash[i] = d * scale
		}
	}
	limit := pen.MiterLimit
	if limit < 1 {
		limit = defaultMiterLimit
	}

	for _, sp := range r.polylines(p) {
		pieces := []polyline{sp}
		if dash != nil {
			pieces = applyDash(sp, dash, pen.DashPhase*scale)
		}
		for _, pl := range pieces {
			r.strokePolyline(pl, hw, pen.Cap, pen.Join, limit)
		}
	}
	r.scan(NonZero, emit)
}

type polyline struct {
	pts    []vec.Vec2
	closed bool
}

// polylines flattens p into device space polylines, one per subpath.
func (r *Rasterizer) polylines(p *path.Data) []polyline {
	var res []polyline
	var cur *polyline
	add := func(a, b vec.Vec2) {
		if cur == nil {
			res = append(res, polyline{pts: []vec.Vec2{a}})
			cur = &res[len(res)-1]
		}
		if b.Sub(cur.pts[len(cur.pts)-1]).Length() > zeroLength {
			cur.pts = append(cur.pts, b)
		}
	}

	var pos, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = nil
			pos = r.device(p.Coords[k])
			start = pos
			k++
		case path.CmdLineTo:
			next := r.device(p.Coords[k])
			add(pos, next)
			pos = next
			k++
		case path.CmdQuadTo:
			c, next := r.device(p.Coords[k]), r.device(p.Coords[k+1])
			flattenQuad(pos, c, next, r.Flatness, add)
			pos = next
			k += 2
		case path.CmdCubeTo:
			c1, c2 := r.device(p.Coords[k]), r.device(p.Coords[k+1])
			next := r.device(p.Coords[k+2])
			flattenCube(pos, c1, c2, next, r.Flatness, add)
			pos = next
			k += 3
		case path.CmdClose:
			if cur != nil {
				if start.Sub(pos).Length() > zeroLength {
					add(pos, start)
				}
				if n := len(cur.pts); n > 1 && cur.pts[n-1].Sub(cur.pts[0]).Length() <= zeroLength {
					cur.pts = cur.pts[:n-1]
				}
				cur.closed = true
			}
			cur = nil
			pos = start
		}
	}
	return res
}

func (r *Rasterizer) strokePolyline(pl polyline, hw float64, lineCap graphics.LineCapStyle, join graphics.LineJoinStyle, limit float64) {
	pts := make([]vec.Vec2, 0, len(pl.pts))
	for _, p := range pl.pts {
		if len(pts) == 0 || p.Sub(pts[len(pts)-1]).Length() > zeroLength {
			pts = append(pts, p)
		}
	}
	n := len(pts)
	if n < 2 {
		if n == 1 && lineCap == graphics.LineCapRound {
			r.addDisc(pts[0], hw)
		}
		return
	}

	segs := n - 1
	if pl.closed {
		segs = n
	}
	for i := range segs {
		a, b := pts[i], pts[(i+1)%n]
		d := unit(b.Sub(a))
		nv := vec.Vec2{X: -d.Y, Y: d.X}.Mul(hw)
		if !pl.closed && lineCap == graphics.LineCapSquare {
			if i == 0 {
				a = a.Sub(d.Mul(hw))
			}
			if i == segs-1 {
				b = b.Add(d.Mul(hw))
			}
		}
		r.addPolygon(a.Add(nv), b.Add(nv), b.Sub(nv), a.Sub(nv))
	}

	// joins between consecutive segments
	first, last := 1, n-1
	if pl.closed {
		first, last = 0, n
	}
	for i := first; i < last; i++ {
		prev := pts[(i-1+n)%n]
		p := pts[i%n]
		next := pts[(i+1)%n]
		r.addJoin(prev, p, next, hw, join, limit)
	}

	if !pl.closed && lineCap == graphics.LineCapRound {
		r.addDisc(pts[0], hw)
		r.addDisc(pts[n-1], hw)
	}
}

func (r *Rasterizer) addJoin(prev, p, next vec.Vec2, hw float64, join graphics.LineJoinStyle, limit float64) {
	d1 := unit(p.Sub(prev))
	d2 := unit(next.Sub(p))
	cross := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(cross) < collinear && d1.X*d2.X+d1.Y*d2.Y > 0 {
		return
	}
	if join == graphics.LineJoinRound {
		r.addDisc(p, hw)
		return
	}

	// the join is on the outer side of the turn
	side := 1.0
	if cross > 0 {
		side = -1
	}
	n1 := vec.Vec2{X: -d1.Y, Y: d1.X}.Mul(hw * side)
	n2 := vec.Vec2{X: -d2.Y, Y: d2.X}.Mul(hw * side)
	if join == graphics.LineJoinMiter {
		cosTheta := d1.X*d2.X + d1.Y*d2.Y
		// the miter length relative to the line width is 1/sin(phi/2),
		// where phi is the angle between the segments
		sinHalf := math.Sqrt(max((1+cosTheta)/2, 0))
		if sinHalf > 0 && 1/sinHalf <= limit {
			bisect := unit(n1.Add(n2))
			tip := p.Add(bisect.Mul(hw / sinHalf))
			r.addPolygon(p, p.Add(n1), tip, p.Add(n2))
			return
		}
	}
	r.addPolygon(p, p.Add(n1), p.Add(n2))
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// addDisc adds a polygonal approximation of a circle.
func (r *Rasterizer) addDisc(c vec.Vec2, radius float64) {
	n := max(8, int(math.Ceil(math.Pi/math.Acos(max(1-r.Flatness/radius, -1)))))
	pts := make([]vec.Vec2, n)
	for i := range pts {
		s, co := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = vec.Vec2{X: c.X + radius*co, Y: c.Y + radius*s}
	}
	r.addPolygon(pts...)
}

// addPolygon adds a closed polygon, reversing it if necessary so that all
// stroke polygons share the same orientation.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	var a float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	if a == 0 {
		return
	}
	for i := range pts {
		if a > 0 {
			r.addLine(pts[(i+1)%len(pts)], pts[i])
		} else {
			r.addLine(pts[i], pts[(i+1)%len(pts)])
		}
	}
}

func dashValid(dash []float64) bool {
	total := 0.0
	for _, d := range dash {
		if d < 0 {
			return false
		}
		total += d
	}
	return total > 0
}

// applyDash splits a polyline into its "on" pieces.
func applyDash(pl polyline, dash []float64, phase float64) []polyline {
	pts := pl.pts
	if pl.closed && len(pts) > 1 {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	if len(dash)%2 == 1 {
		dash = append(dash[:len(dash):len(dash)], dash...)
	}
	period := 0.0
	for _, d := range dash {
		period += d
	}
	phase = math.Mod(phase, period)
	if phase < 0 {
		phase += period
	}
	idx := 0
	for phase >= dash[idx] {
		phase -= dash[idx]
		idx = (idx + 1) % len(dash)
	}
	left := dash[idx] - phase
	on := idx%2 == 0

	var res []polyline
	var cur []vec.Vec2
	if on {
		cur = []vec.Vec2{pts[0]}
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := b.Sub(a).Length()
		pos := 0.0
		for segLen-pos > left {
			pos += left
			pt := a.Add(b.Sub(a).Mul(pos / segLen))
			if on {
				cur = append(cur, pt)
				res = append(res, polyline{pts: cur})
				cur = nil
			} else {
				cur = []vec.Vec2{pt}
			}
			on = !on
			idx = (idx + 1) % len(dash)
			left = dash[idx]
		}
		left -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		res = append(res, polyline{pts: cur})
	}
	return res
}

const (
	defaultMiterLimit = 10.0

	zeroLength = 1e-10
	collinear  = 1e-6
)
