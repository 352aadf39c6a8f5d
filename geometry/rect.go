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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rect is an axis-aligned rectangle in chart pixel coordinates, with the
// origin in the top-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the middle of the rectangle.
func (r Rect) Center() vec.Vec2 {
	return vec.Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside or on the border of r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// ContainsRect reports whether o lies completely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Right() <= r.Right() && o.Y >= r.Y && o.Bottom() <= r.Bottom()
}

// Intersects reports whether the interiors of r and o overlap.
// Rectangles which only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Union returns the smallest rectangle containing both r and o.
// Empty rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.Right(), o.Right())
	y1 := max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Inset shrinks the rectangle by the given amounts on each side.
// The result never has negative size.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	res := Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  r.Width - left - right,
		Height: r.Height - top - bottom,
	}
	res.Width = max(res.Width, 0)
	res.Height = max(res.Height, 0)
	return res
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Bounds converts r to a geom rectangle.  Since y grows downwards in chart
// coordinates, the "lower left" corner is the top-left corner on screen.
func (r Rect) Bounds() rect.Rect {
	return rect.Rect{LLx: r.X, LLy: r.Y, URx: r.Right(), URy: r.Bottom()}
}

// BoundingRect returns the smallest rectangle containing all points.
func BoundingRect(pts ...vec.Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	x0, y0 := pts[0].X, pts[0].Y
	x1, y1 := x0, y0
	for _, p := range pts[1:] {
		x0 = min(x0, p.X)
		y0 = min(y0, p.Y)
		x1 = max(x1, p.X)
		y1 = max(y1, p.Y)
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// SegmentIntersectsRect reports whether the line segment from a to b
// touches the interior of r.
func SegmentIntersectsRect(a, b vec.Vec2, r Rect) bool {
	if r.IsEmpty() {
		return false
	}
	inside := func(p vec.Vec2) bool {
		return p.X > r.X && p.X < r.Right() && p.Y > r.Y && p.Y < r.Bottom()
	}
	if inside(a) || inside(b) {
		return true
	}
	c := [4]vec.Vec2{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
	for i := range 4 {
		if segmentsCross(a, b, c[i], c[(i+1)%4]) {
			return true
		}
	}
	return false
}

// segmentsCross reports whether the open segments p1p2 and q1q2 cross.
func segmentsCross(p1, p2, q1, q2 vec.Vec2) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// cross returns the z component of (b-a)×(c-a).
func cross(a, b, c vec.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
