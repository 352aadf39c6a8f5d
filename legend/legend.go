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

// Package legend lays out the legend of a pie chart.
//
// Items are packed greedily into rows (legends above or below the chart)
// or columns (legends at the sides).  When the items do not fit into the
// space allotted to the legend and paging is enabled, they are split into
// pages with backward and forward controls.
package legend

import (
	"fmt"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pie/config"
	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/text"
)

// Item is one legend entry.
type Item struct {
	Index   int // point index
	Text    string
	Color   string
	Visible bool // false for items toggled off; these are drawn greyed out
}

// ItemPlacement is the position of one legend entry.
type ItemPlacement struct {
	Item

	Label   string        // text after trimming
	Region  geometry.Rect // area reacting to clicks
	Shape   geometry.Rect
	TextPos vec.Vec2 // left end of the text, vertically centred
	Page    int
}

// Result is a computed legend layout.
type Result struct {
	Position config.Position // resolved; never Auto
	Bounds   geometry.Rect

	// Items holds the entries of the current page.
	Items []ItemPlacement

	Pages       int
	Current     int // current page, starting at 0
	PageText    string
	PrevOpacity float64
	NextOpacity float64
	PrevRect    geometry.Rect
	NextRect    geometry.Rect

	// Remaining is the chart area left after reserving the legend.
	Remaining geometry.Rect

	// PageTextPos is the centre of the page number text.
	PageTextPos vec.Vec2
	LineHeight  float64

	all    []ItemPlacement // all items, relative to the inner legend area
	pad    float64
	shapeW float64
	shapeH float64
	textX  float64
}

// arrow is the size of the paging controls.
const arrow = 10

// Horizontal reports whether the legend is laid out in rows.
func (r *Result) Horizontal() bool {
	return r.Position == config.PositionTop || r.Position == config.PositionBottom ||
		r.Position == config.PositionCustom
}

// Layout lays out the legend inside available and shows the first page.
func Layout(items []Item, cfg config.Legend, available geometry.Rect, m text.Measurer) *Result {
	res := &Result{Remaining: available}
	if !cfg.Visible || len(items) == 0 || available.IsEmpty() {
		return res
	}
	if cfg.Reverse {
		items = slices.Clone(items)
		slices.Reverse(items)
	}

	pos := cfg.Position
	if pos == config.PositionAuto {
		pos = config.PositionBottom
		if available.Width > available.Height {
			pos = config.PositionRight
		}
	}
	res.Position = pos
	horizontal := res.Horizontal()

	// the extent allotted to the legend
	var maxW, maxH float64
	if horizontal {
		maxW = lengthOr(cfg.Width, available.Width, available.Width)
		maxH = lengthOr(cfg.Height, available.Height, available.Height/3)
	} else {
		maxW = lengthOr(cfg.Width, available.Width, available.Width/3)
		maxH = lengthOr(cfg.Height, available.Height, available.Height)
	}
	maxW = min(maxW, available.Width)
	maxH = min(maxH, available.Height)

	sm := text.SafeMeasure{M: m}
	lineH := sm.LineHeight(cfg.Font)
	itemH := max(cfg.ShapeHeight, lineH)
	res.LineHeight = lineH
	pad := cfg.Padding
	gap := cfg.ItemPadding

	// items are trimmed to the inner width of the legend
	maxText := maxW - 2*pad - cfg.ShapeWidth - cfg.ShapePadding
	placed := make([]ItemPlacement, len(items))
	for i, it := range items {
		label := sm.Trim(it.Text, max(maxText, 0), cfg.Font)
		w := cfg.ShapeWidth + cfg.ShapePadding + sm.Measure(label, cfg.Font).Width
		placed[i] = ItemPlacement{
			Item:   it,
			Label:  label,
			Region: geometry.Rect{Width: w, Height: itemH},
		}
	}

	navW := 2*arrow + sm.Measure(fmt.Sprintf("%d/%d", len(items), len(items)), cfg.Font).Width + 2*gap
	iw, ih := maxW-2*pad, maxH-2*pad
	var pages int
	var w, h float64
	if horizontal {
		pages, w, h = packRows(placed, iw, ih, itemH, gap, false)
		if h > ih && cfg.EnablePages {
			pages, w, h = packRows(placed, iw-navW, ih, itemH, gap, true)
			w += navW
		}
	} else {
		pages, w, h = packColumns(placed, ih, gap, true)
		if pages > 1 && cfg.EnablePages {
			pages, w, h = packColumns(placed, ih-itemH-gap, gap, true)
			w = max(w, navW-2*gap)
			h += itemH + gap
		} else {
			pages, w, h = packColumns(placed, ih, gap, false)
		}
	}
	w += 2 * pad
	h += 2 * pad

	res.Bounds = position(pos, cfg, available, w, h)
	res.all = placed
	res.Pages = pages
	res.pad = pad
	res.shapeW = cfg.ShapeWidth
	res.shapeH = cfg.ShapeHeight
	res.textX = cfg.ShapeWidth + cfg.ShapePadding

	switch pos {
	case config.PositionTop:
		res.Remaining = available.Inset(0, h, 0, 0)
	case config.PositionBottom:
		res.Remaining = available.Inset(0, 0, 0, h)
	case config.PositionLeft:
		res.Remaining = available.Inset(w, 0, 0, 0)
	case config.PositionRight:
		res.Remaining = available.Inset(0, 0, w, 0)
	}

	if res.Pages > 1 {
		b := res.Bounds
		if horizontal {
			y := b.Y + (b.Height-arrow)/2
			res.PrevRect = geometry.Rect{X: b.Right() - pad - navW + gap, Y: y, Width: arrow, Height: arrow}
			res.NextRect = geometry.Rect{X: b.Right() - pad - arrow, Y: y, Width: arrow, Height: arrow}
			res.PageTextPos = vec.Vec2{X: (res.PrevRect.Right() + res.NextRect.X) / 2, Y: y + arrow/2}
		} else {
			y := b.Bottom() - pad - itemH + (itemH-arrow)/2
			res.PrevRect = geometry.Rect{X: b.X + pad, Y: y, Width: arrow, Height: arrow}
			res.NextRect = geometry.Rect{X: b.X + pad + navW - 2*gap - arrow, Y: y, Width: arrow, Height: arrow}
			res.PageTextPos = vec.Vec2{X: b.X + pad + (navW-2*gap)/2, Y: y + arrow/2}
		}
	}
	res.show(0)
	return res
}

// packRows assigns row positions and pages to the items.  With paging,
// a new page starts when the next row does not fit into maxH.  It returns
// the number of pages and the size of the largest page.
func packRows(items []ItemPlacement, maxW, maxH, itemH, gap float64, paged bool) (int, float64, float64) {
	page, x, y := 0, 0.0, 0.0
	var w, h float64
	for i := range items {
		it := &items[i]
		if x > 0 && x+it.Region.Width > maxW {
			x = 0
			y += itemH + gap
			if paged && y+itemH > maxH {
				page++
				y = 0
			}
		}
		it.Region.X, it.Region.Y = x, y
		it.Page = page
		x += it.Region.Width + gap
		w = max(w, x-gap)
		h = max(h, y+itemH)
	}
	return page + 1, w, h
}

// packColumns assigns column positions to the items.  When a column is
// full, the next item starts a new page if paged is set, and a new column
// otherwise.
func packColumns(items []ItemPlacement, maxH, gap float64, paged bool) (int, float64, float64) {
	page, x, y := 0, 0.0, 0.0
	colW := 0.0
	var w, h float64
	for i := range items {
		it := &items[i]
		if y > 0 && y+it.Region.Height > maxH {
			y = 0
			if paged {
				page++
			} else {
				x += colW + gap
				colW = 0
			}
		}
		it.Region.X, it.Region.Y = x, y
		it.Page = page
		y += it.Region.Height + gap
		colW = max(colW, it.Region.Width)
		w = max(w, x+colW)
		h = max(h, y-gap)
	}
	return page + 1, w, h
}

// position places a w×h legend in available.
func position(pos config.Position, cfg config.Legend, available geometry.Rect, w, h float64) geometry.Rect {
	r := geometry.Rect{Width: w, Height: h}
	switch pos {
	case config.PositionCustom:
		r.X, r.Y = cfg.X, cfg.Y
		return r
	case config.PositionTop, config.PositionBottom:
		r.Y = available.Y
		if pos == config.PositionBottom {
			r.Y = available.Bottom() - h
		}
		switch cfg.Alignment {
		case config.AlignLeft, config.AlignNear:
			r.X = available.X
		case config.AlignRight, config.AlignFar:
			r.X = available.Right() - w
		default:
			r.X = available.X + (available.Width-w)/2
		}
	default:
		r.X = available.X
		if pos == config.PositionRight {
			r.X = available.Right() - w
		}
		switch cfg.Alignment {
		case config.AlignTop, config.AlignNear:
			r.Y = available.Y
		case config.AlignBottom, config.AlignFar:
			r.Y = available.Bottom() - h
		default:
			r.Y = available.Y + (available.Height-h)/2
		}
	}
	return r
}

// Page shows page n.  Out of range page numbers are clamped.
func (r *Result) Page(n int) *Result {
	if r.Pages == 0 {
		return r
	}
	r.show(min(max(n, 0), r.Pages-1))
	return r
}

func (r *Result) show(n int) {
	r.Current = n
	r.Items = nil
	for _, it := range r.all {
		if it.Page == n {
			r.Items = append(r.Items, r.absolute(it))
		}
	}
	r.PrevOpacity, r.NextOpacity = 0, 0
	r.PageText = ""
	if r.Pages > 1 {
		if n > 0 {
			r.PrevOpacity = 1
		}
		if n < r.Pages-1 {
			r.NextOpacity = 1
		}
		r.PageText = fmt.Sprintf("%d/%d", n+1, r.Pages)
	}
}

// absolute converts an item from legend-relative to chart coordinates.
func (r *Result) absolute(it ItemPlacement) ItemPlacement {
	it.Region = it.Region.Translate(r.Bounds.X+r.pad, r.Bounds.Y+r.pad)
	it.Shape = geometry.Rect{
		X:      it.Region.X,
		Y:      it.Region.Y + (it.Region.Height-r.shapeH)/2,
		Width:  r.shapeW,
		Height: r.shapeH,
	}
	it.TextPos = vec.Vec2{X: it.Region.X + r.textX, Y: it.Region.Y + it.Region.Height/2}
	return it
}

// HitTest returns the point index of the item at (x, y) on the current
// page, or -1.
func (r *Result) HitTest(x, y float64) int {
	for _, it := range r.Items {
		if it.Region.Contains(x, y) {
			return it.Index
		}
	}
	return -1
}

// NavTest reports whether (x, y) hits an enabled paging control: -1 for
// the previous page, +1 for the next page and 0 otherwise.
func (r *Result) NavTest(x, y float64) int {
	switch {
	case r.PrevOpacity == 1 && r.PrevRect.Contains(x, y):
		return -1
	case r.NextOpacity == 1 && r.NextRect.Contains(x, y):
		return 1
	}
	return 0
}

func lengthOr(s string, ref, fallback float64) float64 {
	if v, ok := geometry.Length(s, ref); ok {
		return v
	}
	return fallback
}
