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

// Package arc assigns angles and radii to the points of a pie series.
//
// Angles follow the screen convention of package geometry: degrees,
// clockwise, with -90 pointing straight up.  A series start angle of 0
// therefore places the first slice at -90.
package arc

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pie/config"
	"seehuhn.de/go/pie/data"
	"seehuhn.de/go/pie/geometry"
)

// Base is the geometry shared by all slices of one pie.
type Base struct {
	Center      vec.Vec2
	Radius      float64
	InnerRadius float64

	// StartAngle is the configured series start angle.  TotalAngle is the
	// sweep of the whole pie, in (0, 360).
	StartAngle float64
	TotalAngle float64

	// IsRadiusMapped is set when points carry individual radii.
	IsRadiusMapped bool

	ExplodeDistance float64
	CornerRadius    float64
}

// Origin returns the angle at which the first slice starts.
func (b Base) Origin() float64 {
	return b.StartAngle - 90
}

// Angle is the angular range of one slice, in absolute degrees.
type Angle struct {
	Start, End float64
}

// Span returns the clockwise sweep from Start to End.
func (a Angle) Span() float64 {
	d := a.End - a.Start
	if d < 0 {
		d += 360
	}
	return d
}

// Mid returns the bisecting angle.
func (a Angle) Mid() float64 {
	return a.Start + a.Span()/2
}

// TotalAngle returns the sweep between the configured start and end
// angles.  A full circle is represented as 360-ε.
func TotalAngle(start, end float64) float64 {
	total := end - start
	if total <= 0 {
		total += 360
	}
	return min(total, geometry.FullCircle)
}

func lengthOr(s string, ref, fallback float64) float64 {
	if v, ok := geometry.Length(s, ref); ok {
		return v
	}
	return fallback
}

// ExplodeEnabled reports whether slices of the series can be exploded.
func ExplodeEnabled(cfg config.Series) bool {
	return cfg.Explode || cfg.ExplodeAll || cfg.ExplodeIndex >= 0
}

// Resolve computes the pie geometry for the given plot area.  When points
// carry a radius mapping, each point receives its own radius and the
// largest one becomes the base radius; otherwise every point gets the
// base radius.
func Resolve(cfg config.Series, area geometry.Rect, points []*data.Point) Base {
	b := Base{
		Center: vec.Vec2{
			X: area.X + lengthOr(cfg.Center.X, area.Width, area.Width/2),
			Y: area.Y + lengthOr(cfg.Center.Y, area.Height, area.Height/2),
		},
		StartAngle:   cfg.StartAngle,
		TotalAngle:   TotalAngle(cfg.StartAngle, cfg.EndAngle),
		CornerRadius: cfg.CornerRadius,
	}

	ref := max(min(area.Width, area.Height)/2, 0)
	radius := max(lengthOr(cfg.Radius, ref, 0.8*ref), 0)

	if ExplodeEnabled(cfg) {
		b.ExplodeDistance = max(lengthOr(cfg.ExplodeOffset, radius, 0.3*radius), 0)
	}
	shrink := func(r float64) float64 {
		return max(r-b.ExplodeDistance, 0)
	}

	for _, p := range points {
		if p.SliceRadius != "" {
			b.IsRadiusMapped = true
			break
		}
	}
	if b.IsRadiusMapped {
		largest := 0.0
		for _, p := range points {
			p.Radius = shrink(max(lengthOr(p.SliceRadius, ref, radius), 0))
			if p.Visible {
				largest = max(largest, p.Radius)
			}
		}
		b.Radius = largest
	} else {
		b.Radius = shrink(radius)
		for _, p := range points {
			p.Radius = b.Radius
		}
	}

	if cfg.IsDoughnut() {
		b.InnerRadius = min(max(lengthOr(cfg.InnerRadius, b.Radius, 0), 0), b.Radius)
	}
	return b
}

// Compute assigns angles to the points, in point order, and returns them.
// Start and end angles are reduced modulo 360 keeping the sign, so that
// the first slice of a pie starting at 0 begins at -90.
func Compute(points []*data.Point, b Base) []Angle {
	var sum float64
	visible := 0
	for _, p := range points {
		if p.Visible {
			sum += p.Abs()
			visible++
		}
	}
	single := visible == 1 && sum > 0

	origin := b.Origin()
	cursor := origin
	res := make([]Angle, len(points))
	for i, p := range points {
		var span float64
		switch {
		case single && p.Visible:
			span = b.TotalAngle - geometry.Epsilon
		case single:
			span = 0
		case p.Visible && sum > 0:
			span = p.Abs() / sum * b.TotalAngle
		}
		from := cursor
		if single {
			from = origin
		}

		a := Angle{
			Start: math.Mod(from, 360),
			End:   math.Mod(from+span, 360),
		}
		res[i] = a

		p.StartAngle = a.Start
		p.EndAngle = a.End
		p.MidAngle = a.Start + span/2
		p.OriginalMidAngle = p.MidAngle
		p.LabelAngle = p.MidAngle
		p.Percentage = 0
		if p.Visible && sum > 0 {
			p.Percentage = p.Abs() / sum * 100
		}
		p.Region = slice(p, b, span).Bounds()

		cursor += span
	}
	return res
}

// Apply writes a set of angles back to the points, for example an
// interpolated animation frame.
func Apply(points []*data.Point, angles []Angle, b Base) {
	for i, p := range points {
		if i >= len(angles) {
			break
		}
		a := angles[i]
		p.StartAngle = a.Start
		p.EndAngle = a.End
		span := a.Span()
		p.MidAngle = a.Start + span/2
		p.Region = slice(p, b, span).Bounds()
	}
}

// Snapshot returns the current angles of the points.
func Snapshot(points []*data.Point) []Angle {
	res := make([]Angle, len(points))
	for i, p := range points {
		res[i] = Angle{Start: p.StartAngle, End: p.EndAngle}
	}
	return res
}

// CornerRadius caps a requested corner radius by the size of the slice.
func CornerRadius(requested, radius, span float64) float64 {
	return geometry.CapCornerRadius(requested, radius, span)
}

func slice(p *data.Point, b Base, span float64) geometry.Slice {
	return geometry.Slice{
		Center:       b.Center,
		Start:        p.StartAngle,
		Span:         span,
		Radius:       p.Radius,
		InnerRadius:  b.InnerRadius,
		CornerRadius: CornerRadius(b.CornerRadius, p.Radius, span),
	}
}

// Slice returns the wedge of point p as it is drawn, moved outwards if the
// point is exploded.
func Slice(p *data.Point, b Base) geometry.Slice {
	s := slice(p, b, p.Span())
	if p.IsExplode {
		s = s.Offset(b.ExplodeDistance)
	}
	return s
}

// Hit returns the index of the visible slice containing (x, y), or -1.
// The wedge of each point is given by slice.
func Hit(points []*data.Point, slice func(*data.Point) geometry.Slice, x, y float64) int {
	pt := vec.Vec2{X: x, Y: y}
	for i, p := range points {
		if !p.Visible {
			continue
		}
		if slice(p).Contains(pt) {
			return i
		}
	}
	return -1
}
