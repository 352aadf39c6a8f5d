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

// Package geometry implements the angle and path arithmetic shared by the
// chart layout packages.
//
// Angles are in degrees and grow clockwise on screen, because the y axis
// points down.  An angle of 0 points to the right and -90 points straight
// up.
package geometry

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Epsilon is subtracted from a full revolution so that a single slice
// covering the whole circle still has distinct start and end points.
const Epsilon = 1e-5

// FullCircle is the largest sweep a slice may have.
const FullCircle = 360 - Epsilon

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// PointAt returns the point at distance radius from center in the
// direction given by angle.
func PointAt(center vec.Vec2, radius, angle float64) vec.Vec2 {
	s, c := math.Sincos(Radians(angle))
	return vec.Vec2{X: center.X + radius*c, Y: center.Y + radius*s}
}

// AngleOf returns the direction of p as seen from center, in [0, 360).
func AngleOf(center, p vec.Vec2) float64 {
	return Normalize(Degrees(math.Atan2(p.Y-center.Y, p.X-center.X)))
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b vec.Vec2) float64 {
	return b.Sub(a).Length()
}

// Normalize maps an angle to [0, 360).
func Normalize(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		// -tiny + 360 rounds up to 360
		a = 0
	}
	return a
}

// Wrap maps an angle into the revolution [lo, lo+360).
func Wrap(a, lo float64) float64 {
	return lo + Normalize(a-lo)
}

// Delta returns the signed shortest rotation taking a to b, in (-180, 180].
func Delta(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	switch {
	case d > 180:
		d -= 360
	case d <= -180:
		d += 360
	}
	return d
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InSweep reports whether angle lies on the arc which starts at start and
// extends clockwise by span degrees.
func InSweep(angle, start, span float64) bool {
	if span >= 360 {
		return true
	}
	if span <= 0 {
		return false
	}
	return Normalize(angle-start) <= span
}

// IsLeft reports whether a label anchored at the given angle belongs to the
// left half of the chart.  Angles in [90, 270] are on the left.
func IsLeft(angle float64) bool {
	a := Normalize(angle)
	return a >= 90 && a <= 270
}

// RotatedSize returns the size of the bounding box of a w×h rectangle
// rotated by angle degrees.
func RotatedSize(w, h, angle float64) (float64, float64) {
	s, c := math.Sincos(Radians(angle))
	s, c = math.Abs(s), math.Abs(c)
	return w*c + h*s, w*s + h*c
}
