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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestPointAt(t *testing.T) {
	c := vec.Vec2{X: 100, Y: 100}
	cases := []struct {
		angle float64
		want  vec.Vec2
	}{
		{0, vec.Vec2{X: 150, Y: 100}},
		{90, vec.Vec2{X: 100, Y: 150}},
		{180, vec.Vec2{X: 50, Y: 100}},
		{-90, vec.Vec2{X: 100, Y: 50}},
	}
	for _, tc := range cases {
		got := PointAt(c, 50, tc.angle)
		assert.InDelta(t, tc.want.X, got.X, 1e-9, "angle %g", tc.angle)
		assert.InDelta(t, tc.want.Y, got.Y, 1e-9, "angle %g", tc.angle)
		assert.InDelta(t, Normalize(tc.angle), AngleOf(c, got), 1e-9)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 270.0, Normalize(-90))
	assert.Equal(t, 0.0, Normalize(360))
	assert.Equal(t, 10.0, Normalize(730))
	assert.Equal(t, 0.0, Normalize(-1e-17))
	assert.Equal(t, -80.0, Wrap(280, -90))
}

func TestDeltaShortestPath(t *testing.T) {
	cases := []struct{ a, b, want float64 }{
		{0, 90, 90},
		{350, 10, 20},
		{10, 350, -20},
		{-90, 270, 0},
		{0, 180, 180},
		{0, 181, -179},
	}
	for _, tc := range cases {
		got := Delta(tc.a, tc.b)
		assert.InDelta(t, tc.want, got, 1e-9, "Delta(%g, %g)", tc.a, tc.b)
		assert.LessOrEqual(t, math.Abs(got), 180.0)
	}
}

func TestInSweepAndSides(t *testing.T) {
	assert.True(t, InSweep(0, -10, 20))
	assert.True(t, InSweep(355, -10, 20))
	assert.False(t, InSweep(15, -10, 20))
	assert.True(t, InSweep(123, 0, 360))
	assert.False(t, InSweep(0, 0, 0))

	assert.True(t, IsLeft(90))
	assert.True(t, IsLeft(180))
	assert.True(t, IsLeft(-90+360-90))
	assert.False(t, IsLeft(-45))
	assert.False(t, IsLeft(271))
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	assert.True(t, a.Intersects(Rect{X: 5, Y: 5, Width: 10, Height: 10}))
	assert.False(t, a.Intersects(Rect{X: 10, Y: 0, Width: 10, Height: 10}), "touching edges")
	assert.False(t, a.Intersects(Rect{X: 5, Y: 5}), "empty")
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 20, Height: 15}, a.Union(Rect{X: 10, Y: 5, Width: 10, Height: 10}))
	assert.Equal(t, Rect{X: 2, Y: 1, Width: 4, Height: 0}, a.Inset(2, 1, 4, 20))
}

func TestSegmentIntersectsRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 10, Height: 10}
	assert.True(t, SegmentIntersectsRect(vec.Vec2{X: 0, Y: 15}, vec.Vec2{X: 30, Y: 15}, r))
	assert.True(t, SegmentIntersectsRect(vec.Vec2{X: 15, Y: 15}, vec.Vec2{X: 30, Y: 30}, r))
	assert.False(t, SegmentIntersectsRect(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 30, Y: 0}, r))
	assert.False(t, SegmentIntersectsRect(vec.Vec2{X: 0, Y: 30}, vec.Vec2{X: 30, Y: 25}, r))
}

func TestSliceContains(t *testing.T) {
	s := Slice{Center: vec.Vec2{X: 0, Y: 0}, Start: -90, Span: 90, Radius: 100}
	assert.True(t, s.Contains(vec.Vec2{X: 30, Y: -30}))
	assert.False(t, s.Contains(vec.Vec2{X: -30, Y: -30}))
	assert.False(t, s.Contains(vec.Vec2{X: 80, Y: -80}), "outside radius")

	donut := s
	donut.InnerRadius = 50
	assert.False(t, donut.Contains(vec.Vec2{X: 10, Y: -10}))
	assert.True(t, donut.Contains(vec.Vec2{X: 50, Y: -50}))

	moved := s.Offset(10)
	assert.InDelta(t, 10*math.Cos(Radians(-45)), moved.Center.X, 1e-9)
}

func TestSliceBounds(t *testing.T) {
	s := Slice{Center: vec.Vec2{X: 100, Y: 100}, Start: -90, Span: 180, Radius: 50}
	b := s.Bounds()
	assert.InDelta(t, 100, b.X, 1e-9)
	assert.InDelta(t, 50, b.Y, 1e-9)
	assert.InDelta(t, 50, b.Width, 1e-9)
	assert.InDelta(t, 100, b.Height, 1e-9)
}

func TestCapCornerRadius(t *testing.T) {
	assert.Equal(t, 5.0, CapCornerRadius(5, 100, 90))
	assert.InDelta(t, 100*3.6/360, CapCornerRadius(5, 100, 3.6), 1e-12)
	assert.Equal(t, 0.0, CapCornerRadius(-1, 100, 90))
}

func TestSlicePathShape(t *testing.T) {
	type counts struct{ move, line, cube, close int }
	count := func(p *path.Data) counts {
		var c counts
		for _, cmd := range p.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				c.move++
			case path.CmdLineTo:
				c.line++
			case path.CmdCubeTo:
				c.cube++
			case path.CmdClose:
				c.close++
			}
		}
		return c
	}

	c := vec.Vec2{X: 50, Y: 50}
	cases := []struct {
		name  string
		slice Slice
		want  counts
	}{
		{"pie_quarter", Slice{Center: c, Start: -90, Span: 90, Radius: 40}, counts{1, 1, 1, 1}},
		{"pie_half", Slice{Center: c, Start: -90, Span: 180, Radius: 40}, counts{1, 1, 2, 1}},
		{"donut_quarter", Slice{Center: c, Start: -90, Span: 90, Radius: 40, InnerRadius: 20}, counts{1, 1, 2, 1}},
		{"pie_rounded", Slice{Center: c, Start: -90, Span: 90, Radius: 40, CornerRadius: 4}, counts{1, 1, 3, 1}},
		{"donut_rounded", Slice{Center: c, Start: -90, Span: 90, Radius: 40, InnerRadius: 20, CornerRadius: 4}, counts{1, 2, 6, 1}},
		{"empty", Slice{Center: c, Start: -90, Span: 0, Radius: 40}, counts{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, count(tc.slice.Path()))
		})
	}
}

func TestSVGPath(t *testing.T) {
	s := Slice{Center: vec.Vec2{X: 50, Y: 50}, Start: -90, Span: 90, Radius: 40}
	d := SVGPath(s.Path())
	require.True(t, strings.HasPrefix(d, "M 50 50 L 50 10 C "), d)
	assert.True(t, strings.HasSuffix(d, "90 50 Z"), d)

	assert.Equal(t, "1.23", FormatNumber(1.2345))
	assert.Equal(t, "0", FormatNumber(-0.001))
	assert.Equal(t, "", SVGPath(nil))
}

func TestArcApproximation(t *testing.T) {
	// every curve end point must lie on the circle
	s := Slice{Center: vec.Vec2{X: 0, Y: 0}, Start: 10, Span: 300, Radius: 10}
	p := s.Path()
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			k++
		case path.CmdCubeTo:
			end := p.Coords[k+2]
			assert.InDelta(t, 10, end.Length(), 1e-9)
			k += 3
		}
	}
}

func TestRotatedSize(t *testing.T) {
	w, h := RotatedSize(40, 10, 90)
	assert.InDelta(t, 10, w, 1e-9)
	assert.InDelta(t, 40, h, 1e-9)
}

func TestLength(t *testing.T) {
	v, ok := Length("80%", 150)
	assert.True(t, ok)
	assert.Equal(t, 120.0, v)
	v, ok = Length(" 42px", 0)
	assert.True(t, ok)
	assert.Equal(t, 42.0, v)
	_, ok = Length("wide", 0)
	assert.False(t, ok)
}
