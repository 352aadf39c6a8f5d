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

package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pie/config"
	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/text"
)

var mono = text.Monospace{Advance: 6, LineHeight: 14}

var area = geometry.Rect{Width: 400, Height: 300}

func titleConfig(pos config.Position) config.Title {
	cfg := config.Default().Title
	cfg.Position = pos
	return cfg
}

func TestTop(t *testing.T) {
	p := Place("Sales", titleConfig(config.PositionTop), area, mono)
	assert.True(t, p.Visible)
	assert.Equal(t, []string{"Sales"}, p.Lines)
	assert.Equal(t, geometry.Rect{X: 180, Y: 0, Width: 40, Height: 24}, p.BorderRect)
	assert.Equal(t, vec.Vec2{X: 200, Y: 12}, p.Anchor)
	assert.Equal(t, 0.0, p.Rotation)
	assert.Equal(t, 14.0, p.LineHeight)

	assert.Equal(t, geometry.Rect{Y: 29, Width: 400, Height: 271}, Shrink(area, p))
}

func TestBottom(t *testing.T) {
	p := Place("Sales", titleConfig(config.PositionBottom), area, mono)
	assert.Equal(t, 276.0, p.BorderRect.Y)
	assert.Equal(t, geometry.Rect{Width: 400, Height: 271}, Shrink(area, p))
}

func TestOverflow(t *testing.T) {
	narrow := geometry.Rect{Width: 100, Height: 300}
	s := "Quarterly sales report"

	cfg := titleConfig(config.PositionTop)
	p := Place(s, cfg, narrow, mono)
	assert.Equal(t, []string{"Quarterly sales", "report"}, p.Lines)
	assert.Equal(t, 28.0+10, p.BorderRect.Height)

	cfg.TextOverflow = config.OverflowTrim
	p = Place(s, cfg, narrow, mono)
	assert.Equal(t, []string{"Quarterly sa..."}, p.Lines)

	cfg.TextOverflow = config.OverflowNone
	p = Place(s, cfg, narrow, mono)
	assert.Equal(t, []string{s}, p.Lines)
}

func TestExplicitBreaks(t *testing.T) {
	p := Place("Sales<br>2024", titleConfig(config.PositionTop), area, mono)
	assert.Equal(t, []string{"Sales", "2024"}, p.Lines)
}

func TestSides(t *testing.T) {
	p := Place("Sales", titleConfig(config.PositionLeft), area, mono)
	assert.Equal(t, -90.0, p.Rotation)
	assert.Equal(t, geometry.Rect{X: 0, Y: 130, Width: 24, Height: 40}, p.BorderRect)
	assert.Equal(t, vec.Vec2{X: 12, Y: 150}, p.Anchor)
	assert.Equal(t, geometry.Rect{X: 29, Width: 371, Height: 300}, Shrink(area, p))

	p = Place("Sales", titleConfig(config.PositionRight), area, mono)
	assert.Equal(t, 90.0, p.Rotation)
	assert.Equal(t, 376.0, p.BorderRect.X)
	assert.Equal(t, 371.0, Shrink(area, p).Width)
}

func TestAlignment(t *testing.T) {
	cases := []struct {
		name  string
		pos   config.Position
		align config.Alignment
		x, y  float64
	}{
		{"top-near", config.PositionTop, config.AlignNear, 0, 0},
		{"top-far", config.PositionTop, config.AlignFar, 360, 0},
		{"top-left", config.PositionTop, config.AlignLeft, 0, 0},
		{"left-near", config.PositionLeft, config.AlignNear, 0, 260},
		{"left-far", config.PositionLeft, config.AlignFar, 0, 0},
		{"right-near", config.PositionRight, config.AlignNear, 376, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := titleConfig(c.pos)
			cfg.Alignment = c.align
			p := Place("Sales", cfg, area, mono)
			assert.Equal(t, c.x, p.BorderRect.X)
			assert.Equal(t, c.y, p.BorderRect.Y)
		})
	}
}

func TestCustom(t *testing.T) {
	cfg := titleConfig(config.PositionCustom)
	cfg.X, cfg.Y = 100, 50
	p := Place("Sales", cfg, area, mono)
	assert.Equal(t, vec.Vec2{X: 100, Y: 50}, p.Anchor)
	assert.Equal(t, area, Shrink(area, p))
}

func TestEmpty(t *testing.T) {
	p := Place("", titleConfig(config.PositionTop), area, mono)
	assert.False(t, p.Visible)
	assert.Equal(t, area, Shrink(area, p))
}
