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

package geometry

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Slice describes one pie or doughnut wedge.
type Slice struct {
	Center vec.Vec2

	// Start is the angle where the wedge begins.  The wedge extends
	// clockwise by Span degrees.
	Start float64
	Span  float64

	Radius      float64 // outer radius
	InnerRadius float64 // 0 for a pie slice

	// CornerRadius rounds the four corners of the wedge.  It is reduced
	// automatically when the wedge is too small to hold it.
	CornerRadius float64
}

// End returns the angle where the wedge ends.
func (s Slice) End() float64 {
	return s.Start + s.Span
}

// Mid returns the angle bisecting the wedge.
func (s Slice) Mid() float64 {
	return s.Start + s.Span/2
}

// Offset returns a copy of s moved by distance along its mid-angle.
// This is how exploded slices are drawn.
func (s Slice) Offset(distance float64) Slice {
	s.Center = PointAt(s.Center, distance, s.Mid())
	return s
}

// Contains reports whether the point p lies inside the wedge.
func (s Slice) Contains(p vec.Vec2) bool {
	d := Distance(s.Center, p)
	if d > s.Radius || d < s.InnerRadius {
		return false
	}
	if d == 0 {
		return s.InnerRadius == 0 && s.Span > 0
	}
	return InSweep(AngleOf(s.Center, p), s.Start, s.Span)
}

// Bounds returns the bounding box of the wedge.
func (s Slice) Bounds() Rect {
	if s.Span <= 0 || s.Radius <= 0 {
		return Rect{X: s.Center.X, Y: s.Center.Y}
	}
	pts := []vec.Vec2{
		PointAt(s.Center, s.Radius, s.Start),
		PointAt(s.Center, s.Radius, s.End()),
		PointAt(s.Center, s.InnerRadius, s.Start),
		PointAt(s.Center, s.InnerRadius, s.End()),
	}
	// the extreme points of the circle which the arc passes through
	first := math.Ceil(s.Start / 90)
	for a := first * 90; a <= s.End(); a += 90 {
		pts = append(pts, PointAt(s.Center, s.Radius, a))
	}
	return BoundingRect(pts...)
}

// CapCornerRadius limits a requested corner radius so that a thin slice
// never receives rounding larger than its own geometry supports.
func CapCornerRadius(requested, radius, span float64) float64 {
	if requested <= 0 {
		return 0
	}
	return min(requested, radius*span/360)
}

// Path returns the outline of the wedge.
func (s Slice) Path() *path.Data {
	p := &path.Data{}
	if s.Span <= 0 || s.Radius <= 0 {
		return p
	}
	span := min(s.Span, FullCircle)
	end := s.Start + span
	r, ri := s.Radius, max(s.InnerRadius, 0)

	cr := s.CornerRadius
	if cr > 0 {
		cr = min(cr, (r-ri)/2)
		if ri > 0 {
			cr = min(cr, ri*Radians(span)/2)
		}
		cr = min(cr, r*Radians(span)/2)
	}

	if cr <= 0 {
		if ri == 0 {
			p = p.MoveTo(s.Center).LineTo(PointAt(s.Center, r, s.Start))
			p = appendArc(p, s.Center, r, s.Start, end)
			return p.Close()
		}
		p = p.MoveTo(PointAt(s.Center, r, s.Start))
		p = appendArc(p, s.Center, r, s.Start, end)
		p = p.LineTo(PointAt(s.Center, ri, end))
		p = appendArc(p, s.Center, ri, end, s.Start)
		return p.Close()
	}

	do := Degrees(cr / r)
	if ri == 0 {
		p = p.MoveTo(s.Center).LineTo(PointAt(s.Center, r-cr, s.Start))
	} else {
		p = p.MoveTo(PointAt(s.Center, ri+cr, s.Start)).
			LineTo(PointAt(s.Center, r-cr, s.Start))
	}
	p = appendQuad(p, PointAt(s.Center, r-cr, s.Start), PointAt(s.Center, r, s.Start), PointAt(s.Center, r, s.Start+do))
	p = appendArc(p, s.Center, r, s.Start+do, end-do)
	p = appendQuad(p, PointAt(s.Center, r, end-do), PointAt(s.Center, r, end), PointAt(s.Center, r-cr, end))
	if ri == 0 {
		return p.Close()
	}

	di := Degrees(cr / ri)
	p = p.LineTo(PointAt(s.Center, ri+cr, end))
	p = appendQuad(p, PointAt(s.Center, ri+cr, end), PointAt(s.Center, ri, end), PointAt(s.Center, ri, end-di))
	p = appendArc(p, s.Center, ri, end-di, s.Start+di)
	p = appendQuad(p, PointAt(s.Center, ri, s.Start+di), PointAt(s.Center, ri, s.Start), PointAt(s.Center, ri+cr, s.Start))
	return p.Close()
}

// Ring returns the outline of a full ring (or disc, if inner is zero).
// The inner circle runs against the outer one so that the hole is left
// unfilled under the nonzero rule.
func Ring(center vec.Vec2, outer, inner float64) *path.Data {
	p := &path.Data{}
	if outer <= 0 {
		return p
	}
	p = p.MoveTo(PointAt(center, outer, 0))
	p = appendArc(p, center, outer, 0, 360)
	p = p.Close()
	if inner > 0 {
		p = p.MoveTo(PointAt(center, inner, 0))
		p = appendArc(p, center, inner, 360, 0)
		p = p.Close()
	}
	return p
}

// appendArc adds a circular arc from angle a0 to a1 to p.  The current
// point must be the start of the arc.  The arc is split into pieces of at
// most 90 degrees, each approximated by one cubic Bézier curve.
func appendArc(p *path.Data, center vec.Vec2, r, a0, a1 float64) *path.Data {
	sweep := a1 - a0
	if sweep == 0 || r <= 0 {
		return p
	}
	n := int(math.Ceil(math.Abs(sweep) / 90))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(Radians(step)/4) * r

	tangent := func(a float64) vec.Vec2 {
		s, c := math.Sincos(Radians(a))
		return vec.Vec2{X: -s, Y: c}
	}

	angle := a0
	p0 := PointAt(center, r, angle)
	for range n {
		next := angle + step
		p3 := PointAt(center, r, next)
		p1 := p0.Add(tangent(angle).Mul(k))
		p2 := p3.Sub(tangent(next).Mul(k))
		p = p.CubeTo(p1, p2, p3)
		angle = next
		p0 = p3
	}
	return p
}

// appendQuad adds the quadratic Bézier curve (from, ctrl, to), raised to
// cubic degree.
func appendQuad(p *path.Data, from, ctrl, to vec.Vec2) *path.Data {
	c1 := from.Add(ctrl.Sub(from).Mul(2.0 / 3.0))
	c2 := to.Add(ctrl.Sub(to).Mul(2.0 / 3.0))
	return p.CubeTo(c1, c2, to)
}

// Polyline returns an open path through the given points.
func Polyline(pts ...vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(pts) == 0 {
		return p
	}
	p = p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p = p.LineTo(pt)
	}
	return p
}

// Curve returns an open path from a to b, bending towards ctrl.
func Curve(a, ctrl, b vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(a)
	return appendQuad(p, a, ctrl, b)
}

// RectPath returns the outline of r, with corners rounded by radius.
func RectPath(r Rect, radius float64) *path.Data {
	p := &path.Data{}
	if r.IsEmpty() {
		return p
	}
	radius = min(max(radius, 0), r.Width/2, r.Height/2)
	if radius == 0 {
		return p.MoveTo(vec.Vec2{X: r.X, Y: r.Y}).
			LineTo(vec.Vec2{X: r.Right(), Y: r.Y}).
			LineTo(vec.Vec2{X: r.Right(), Y: r.Bottom()}).
			LineTo(vec.Vec2{X: r.X, Y: r.Bottom()}).
			Close()
	}
	c := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	p = p.MoveTo(c(r.X+radius, r.Y)).LineTo(c(r.Right()-radius, r.Y))
	p = appendQuad(p, c(r.Right()-radius, r.Y), c(r.Right(), r.Y), c(r.Right(), r.Y+radius))
	p = p.LineTo(c(r.Right(), r.Bottom()-radius))
	p = appendQuad(p, c(r.Right(), r.Bottom()-radius), c(r.Right(), r.Bottom()), c(r.Right()-radius, r.Bottom()))
	p = p.LineTo(c(r.X+radius, r.Bottom()))
	p = appendQuad(p, c(r.X+radius, r.Bottom()), c(r.X, r.Bottom()), c(r.X, r.Bottom()-radius))
	p = p.LineTo(c(r.X, r.Y+radius))
	p = appendQuad(p, c(r.X, r.Y+radius), c(r.X, r.Y), c(r.X+radius, r.Y))
	return p.Close()
}

// SVGPath formats p as the "d" attribute of an SVG path element.
// Coordinates are rounded to two decimal places.
func SVGPath(p *path.Data) string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	k := 0
	for _, cmd := range p.Cmds {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch cmd {
		case path.CmdMoveTo:
			sb.WriteString("M ")
			writeCoords(&sb, p.Coords[k:k+1])
			k++
		case path.CmdLineTo:
			sb.WriteString("L ")
			writeCoords(&sb, p.Coords[k:k+1])
			k++
		case path.CmdQuadTo:
			sb.WriteString("Q ")
			writeCoords(&sb, p.Coords[k:k+2])
			k += 2
		case path.CmdCubeTo:
			sb.WriteString("C ")
			writeCoords(&sb, p.Coords[k:k+3])
			k += 3
		case path.CmdClose:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func writeCoords(sb *strings.Builder, pts []vec.Vec2) {
	for i, pt := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(FormatNumber(pt.X))
		sb.WriteByte(' ')
		sb.WriteString(FormatNumber(pt.Y))
	}
}

// FormatNumber formats v with at most two decimal places and no trailing
// zeros.
func FormatNumber(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // avoid "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
