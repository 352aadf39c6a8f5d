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

package legend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pie/config"
	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/text"
)

var mono = text.Monospace{Advance: 6, LineHeight: 14}

func makeItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Index: i, Text: "Item", Visible: true}
	}
	return items
}

func legendConfig(pos config.Position) config.Legend {
	cfg := config.Default().Legend
	cfg.Position = pos
	return cfg
}

func TestAutoPosition(t *testing.T) {
	cfg := legendConfig(config.PositionAuto)
	res := Layout(makeItems(2), cfg, geometry.Rect{Width: 600, Height: 400}, mono)
	assert.Equal(t, config.PositionRight, res.Position)

	res = Layout(makeItems(2), cfg, geometry.Rect{Width: 400, Height: 600}, mono)
	assert.Equal(t, config.PositionBottom, res.Position)
}

func TestSingleRow(t *testing.T) {
	area := geometry.Rect{Width: 600, Height: 400}
	res := Layout(makeItems(5), legendConfig(config.PositionBottom), area, mono)

	// each item is 10+8+4*6 = 42 wide; five items with 8 pixel gaps and
	// 8 pixels of padding on either side
	assert.Equal(t, geometry.Rect{X: 171, Y: 370, Width: 258, Height: 30}, res.Bounds)
	assert.Equal(t, geometry.Rect{Width: 600, Height: 370}, res.Remaining)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "", res.PageText)
	require.Len(t, res.Items, 5)

	first := res.Items[0]
	assert.Equal(t, geometry.Rect{X: 179, Y: 378, Width: 42, Height: 14}, first.Region)
	assert.Equal(t, geometry.Rect{X: 179, Y: 380, Width: 10, Height: 10}, first.Shape)
	assert.Equal(t, vec.Vec2{X: 197, Y: 385}, first.TextPos)
	assert.Equal(t, 229.0, res.Items[1].Region.X)
}

func TestRowWrapping(t *testing.T) {
	area := geometry.Rect{Width: 120, Height: 400}
	res := Layout(makeItems(5), legendConfig(config.PositionBottom), area, mono)
	require.Len(t, res.Items, 5)
	assert.Equal(t, 1, res.Pages)

	rows := map[float64]int{}
	for _, it := range res.Items {
		rows[it.Region.Y]++
	}
	assert.Len(t, rows, 3)
	assert.Equal(t, 58.0+16, res.Bounds.Height)
}

func TestPaging(t *testing.T) {
	area := geometry.Rect{Width: 120, Height: 90}
	res := Layout(makeItems(5), legendConfig(config.PositionBottom), area, mono)

	require.Equal(t, 5, res.Pages)
	assert.Equal(t, 0, res.Current)
	assert.Equal(t, "1/5", res.PageText)
	assert.Equal(t, 0.0, res.PrevOpacity)
	assert.Equal(t, 1.0, res.NextOpacity)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 0, res.Items[0].Index)

	next := res.NextRect.Center()
	prev := res.PrevRect.Center()
	assert.Equal(t, 1, res.NavTest(next.X, next.Y))
	assert.Equal(t, 0, res.NavTest(prev.X, prev.Y), "disabled control")

	res.Page(2)
	assert.Equal(t, 2, res.Current)
	assert.Equal(t, "3/5", res.PageText)
	assert.Equal(t, 1.0, res.PrevOpacity)
	assert.Equal(t, 1.0, res.NextOpacity)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 2, res.Items[0].Index)
	assert.Equal(t, -1, res.NavTest(prev.X, prev.Y))

	res.Page(99)
	assert.Equal(t, 4, res.Current)
	assert.Equal(t, 0.0, res.NextOpacity)

	res.Page(-3)
	assert.Equal(t, 0, res.Current)
}

func TestPagingDisabled(t *testing.T) {
	cfg := legendConfig(config.PositionBottom)
	cfg.EnablePages = false
	res := Layout(makeItems(5), cfg, geometry.Rect{Width: 120, Height: 90}, mono)
	assert.Equal(t, 1, res.Pages)
	assert.Len(t, res.Items, 5)
	assert.Equal(t, 0.0, res.NextOpacity)
}

func TestColumns(t *testing.T) {
	area := geometry.Rect{Width: 300, Height: 60}
	res := Layout(makeItems(5), legendConfig(config.PositionRight), area, mono)
	assert.Equal(t, 5, res.Pages)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, area.Right(), res.Bounds.Right())

	cfg := legendConfig(config.PositionRight)
	cfg.EnablePages = false
	res = Layout(makeItems(5), cfg, area, mono)
	assert.Equal(t, 1, res.Pages)
	require.Len(t, res.Items, 5)
	assert.Equal(t, 142.0+16, res.Bounds.Width)
	assert.Equal(t, area.Width-res.Bounds.Width, res.Remaining.Width)
}

func TestTrimToWidth(t *testing.T) {
	cfg := legendConfig(config.PositionRight)
	cfg.Width = "100"
	items := []Item{{Index: 0, Text: "A very long legend entry", Visible: true}}
	res := Layout(items, cfg, geometry.Rect{Width: 600, Height: 400}, mono)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "A very l...", res.Items[0].Label)
	assert.Equal(t, "A very long legend entry", res.Items[0].Text)
}

func TestAlignment(t *testing.T) {
	area := geometry.Rect{Width: 600, Height: 400}
	cases := []struct {
		pos   config.Position
		align config.Alignment
		x, y  float64
	}{
		{config.PositionBottom, config.AlignNear, 0, 370},
		{config.PositionBottom, config.AlignFar, 342, 370},
		{config.PositionBottom, config.AlignTop, 171, 370},
		{config.PositionTop, config.AlignLeft, 0, 0},
		{config.PositionRight, config.AlignNear, 600 - 58, 0},
		{config.PositionRight, config.AlignLeft, 600 - 58, 185},
		{config.PositionLeft, config.AlignBottom, 0, 370},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%s-%s", c.pos, c.align), func(t *testing.T) {
			cfg := legendConfig(c.pos)
			cfg.Alignment = c.align
			items := makeItems(5)
			if c.pos == config.PositionLeft || c.pos == config.PositionRight {
				items = makeItems(1)
			}
			res := Layout(items, cfg, area, mono)
			assert.InDelta(t, c.x, res.Bounds.X, 1e-9)
			assert.InDelta(t, c.y, res.Bounds.Y, 1e-9)
		})
	}
}

func TestCustomPosition(t *testing.T) {
	cfg := legendConfig(config.PositionCustom)
	cfg.X, cfg.Y = 20, 30
	area := geometry.Rect{Width: 600, Height: 400}
	res := Layout(makeItems(2), cfg, area, mono)
	assert.Equal(t, 20.0, res.Bounds.X)
	assert.Equal(t, 30.0, res.Bounds.Y)
	assert.Equal(t, area, res.Remaining)
}

func TestReverseAndHitTest(t *testing.T) {
	cfg := legendConfig(config.PositionBottom)
	cfg.Reverse = true
	res := Layout(makeItems(3), cfg, geometry.Rect{Width: 600, Height: 400}, mono)
	require.Len(t, res.Items, 3)
	assert.Equal(t, 2, res.Items[0].Index)

	c := res.Items[0].Region.Center()
	assert.Equal(t, 2, res.HitTest(c.X, c.Y))
	assert.Equal(t, -1, res.HitTest(-1, -1))
}

func TestHidden(t *testing.T) {
	cfg := legendConfig(config.PositionBottom)
	cfg.Visible = false
	area := geometry.Rect{Width: 600, Height: 400}
	res := Layout(makeItems(3), cfg, area, mono)
	assert.Equal(t, area, res.Remaining)
	assert.Empty(t, res.Items)
	assert.Equal(t, -1, res.HitTest(300, 390))

	res = Layout(nil, legendConfig(config.PositionBottom), area, mono)
	assert.Equal(t, area, res.Remaining)
}
