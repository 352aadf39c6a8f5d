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

package arc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/pie/config"
	"seehuhn.de/go/pie/data"
	"seehuhn.de/go/pie/geometry"
)

func points(values ...float64) []*data.Point {
	rows := make([]data.Row, len(values))
	for i, v := range values {
		rows[i] = data.Row{"x": i, "y": v}
	}
	return data.Ingest(rows, config.Default().Series, nil).Points
}

func fullBase() Base {
	return Base{Radius: 100, StartAngle: 0, TotalAngle: TotalAngle(0, 360)}
}

func TestTwoSliceScenario(t *testing.T) {
	pts := points(10, 30)
	angles := Compute(pts, fullBase())
	require.Len(t, angles, 2)

	assert.Equal(t, -90.0, angles[0].Start)
	assert.InDelta(t, 0, angles[0].End, 1e-4)
	assert.InDelta(t, 90, angles[0].Span(), 1e-4)
	assert.InDelta(t, 270, angles[1].Span(), 1e-4)
	assert.InDelta(t, angles[0].End, angles[1].Start, 1e-12)

	assert.InDelta(t, 25, pts[0].Percentage, 1e-9)
	assert.InDelta(t, 75, pts[1].Percentage, 1e-9)
	assert.InDelta(t, -45, pts[0].MidAngle, 1e-4)
	assert.Equal(t, pts[0].MidAngle, pts[0].OriginalMidAngle)
}

func TestAnglePartition(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
		values     []float64
	}{
		{"full", 0, 360, []float64{1, 2, 3, 4, 5}},
		{"half", -90, 90, []float64{7, 1, 1}},
		{"rotated", 90, 450, []float64{3, 3, 3, 1}},
		{"negative values", 0, 360, []float64{-5, 5, 10}},
		{"wrap", 270, 90, []float64{1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pts := points(tc.values...)
			b := Base{Radius: 50, StartAngle: tc.start, TotalAngle: TotalAngle(tc.start, tc.end)}
			angles := Compute(pts, b)

			total, pct := 0.0, 0.0
			for i, a := range angles {
				total += a.Span()
				pct += pts[i].Percentage
				if i > 0 {
					// no gaps between consecutive slices
					assert.InDelta(t, 0, geometry.Delta(angles[i-1].End, a.Start), 1e-9)
				}
			}
			assert.InDelta(t, b.TotalAngle, total, 1e-9)
			assert.InDelta(t, 100, pct, 1e-9)
			assert.InDelta(t, tc.start-90, angles[0].Start, 1e-9)
		})
	}
}

func TestSingleVisiblePoint(t *testing.T) {
	pts := points(3, 5, 4)
	pts[0].Visible = false
	pts[2].Visible = false
	b := fullBase()
	angles := Compute(pts, b)

	assert.InDelta(t, 360, angles[1].Span(), 1e-4)
	assert.Less(t, angles[1].Span(), 360.0)
	assert.InDelta(t, b.TotalAngle-geometry.Epsilon, angles[1].Span(), 1e-9)
	for _, i := range []int{0, 2} {
		assert.Equal(t, 0.0, angles[i].Span())
		assert.Equal(t, -90.0, angles[i].Start)
	}
	assert.Equal(t, 100.0, pts[1].Percentage)
}

func TestZeroSum(t *testing.T) {
	pts := points(0, 0, 0)
	angles := Compute(pts, fullBase())
	for i, a := range angles {
		assert.Equal(t, 0.0, a.Span())
		assert.Equal(t, 0.0, pts[i].Percentage)
	}
}

func TestIdempotent(t *testing.T) {
	pts := points(4, 8, 15, 16, 23, 42)
	b := fullBase()
	first := Compute(pts, b)
	regions := make([]geometry.Rect, len(pts))
	for i, p := range pts {
		regions[i] = p.Region
	}
	second := Compute(pts, b)
	assert.Equal(t, first, second)
	for i, p := range pts {
		assert.Equal(t, regions[i], p.Region)
	}
}

func TestTotalAngle(t *testing.T) {
	assert.Equal(t, geometry.FullCircle, TotalAngle(0, 360))
	assert.Equal(t, geometry.FullCircle, TotalAngle(90, 90))
	assert.Equal(t, 180.0, TotalAngle(270, 90))
	assert.Equal(t, 270.0, TotalAngle(0, -90))
}

func TestResolve(t *testing.T) {
	area := geometry.Rect{X: 0, Y: 0, Width: 400, Height: 300}
	cfg := config.Default().Series

	b := Resolve(cfg, area, points(1, 2))
	assert.Equal(t, 200.0, b.Center.X)
	assert.Equal(t, 150.0, b.Center.Y)
	assert.Equal(t, 120.0, b.Radius)
	assert.Equal(t, 0.0, b.InnerRadius)
	assert.Equal(t, 0.0, b.ExplodeDistance)

	cfg.InnerRadius = "50%"
	cfg.Explode = true
	pts := points(1, 2)
	b = Resolve(cfg, area, pts)
	assert.InDelta(t, 36, b.ExplodeDistance, 1e-9)
	assert.InDelta(t, 84, b.Radius, 1e-9)
	assert.InDelta(t, 42, b.InnerRadius, 1e-9)
	assert.Equal(t, b.Radius, pts[0].Radius)

	cfg = config.Default().Series
	cfg.Center = config.Center{X: "100", Y: "25%"}
	b = Resolve(cfg, area.Translate(10, 10), nil)
	assert.Equal(t, 110.0, b.Center.X)
	assert.Equal(t, 85.0, b.Center.Y)
}

func TestResolveRadiusMapping(t *testing.T) {
	cfg := config.Default().Series
	cfg.RadiusMapping = "r"
	rows := []data.Row{{"y": 1, "r": "50%"}, {"y": 1, "r": 100}, {"y": 1}}
	pts := data.Ingest(rows, cfg, nil).Points
	b := Resolve(cfg, geometry.Rect{Width: 300, Height: 300}, pts)

	assert.True(t, b.IsRadiusMapped)
	assert.Equal(t, 75.0, pts[0].Radius)
	assert.Equal(t, 100.0, pts[1].Radius)
	assert.Equal(t, 120.0, pts[2].Radius, "unmapped points get the series radius")
	assert.Equal(t, 120.0, b.Radius)
}

func TestHit(t *testing.T) {
	pts := points(1, 1, 1, 1)
	b := fullBase()
	b.Center.X, b.Center.Y = 200, 200
	b.ExplodeDistance = 20
	for _, p := range pts {
		p.Radius = b.Radius
	}
	Compute(pts, b)
	at := func(p *data.Point) geometry.Slice { return Slice(p, b) }

	// the first slice covers the upper right quadrant
	assert.Equal(t, 0, Hit(pts, at, 250, 150))
	assert.Equal(t, 1, Hit(pts, at, 250, 250))
	assert.Equal(t, 2, Hit(pts, at, 150, 250))
	assert.Equal(t, 3, Hit(pts, at, 150, 150))
	assert.Equal(t, -1, Hit(pts, at, 200, 50))

	pts[0].IsExplode = true
	// just outside the original radius along the mid-angle of slice 0
	assert.Equal(t, 0, Hit(pts, at, 200+75, 200-75))

	pts[1].Visible = false
	assert.Equal(t, -1, Hit(pts, at, 250, 250))
}

func TestSnapshotApply(t *testing.T) {
	pts := points(1, 3)
	b := fullBase()
	for _, p := range pts {
		p.Radius = b.Radius
	}
	angles := Compute(pts, b)
	snap := Snapshot(pts)
	assert.Equal(t, angles, snap)

	Apply(pts, []Angle{{Start: -90, End: 90}, {Start: 90, End: 270}}, b)
	assert.Equal(t, 0.0, pts[0].MidAngle)
	assert.Equal(t, 180.0, pts[1].MidAngle)
	assert.InDelta(t, b.Radius, pts[0].Region.Width, 1e-9)
}
