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

package pie

import (
	"strings"

	"go.uber.org/zap"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pie/anim"
	"seehuhn.de/go/pie/arc"
	"seehuhn.de/go/pie/data"
	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/label"
	"seehuhn.de/go/pie/text"
)

// Hovered returns the index of the point under the pointer, or -1.
func (c *Chart) Hovered() int {
	return c.hovered
}

// Focused returns the index of the point with keyboard focus, or -1.
func (c *Chart) Focused() int {
	return c.focused
}

// HitTest returns the index of the visible slice at (x, y), or -1.
// Slices are tested at their current, possibly animated, position.
func (c *Chart) HitTest(x, y float64) int {
	if !c.cfg.Series.Visible {
		return -1
	}
	return arc.Hit(c.series.Points, c.sliceOf, x, y)
}

// PointerMove handles pointer movement to (x, y).
func (c *Chart) PointerMove(x, y float64) {
	ev := PointerEvent{X: x, Y: y}
	c.pointer = ev
	if !c.pointerIn {
		c.pointerIn = true
		c.Events.pointerEnter.emit(ev)
	}
	c.Events.pointerMove.emit(ev)
	c.setHovered(c.HitTest(x, y))
}

// PointerLeave handles the pointer leaving the chart.
func (c *Chart) PointerLeave() {
	c.setHovered(-1)
	if c.pointerIn {
		c.pointerIn = false
		c.Events.pointerLeave.emit(c.pointer)
	}
}

// Click handles a click at (x, y).  Clicks on the legend are passed on to
// LegendClick; clicks on a slice explode or collapse it.
func (c *Chart) Click(x, y float64) {
	if lg := c.layout.Legend; lg != nil && !lg.Bounds.IsEmpty() && lg.Bounds.Contains(x, y) {
		c.LegendClick(x, y)
		return
	}
	i := c.HitTest(x, y)
	if i < 0 {
		return
	}
	c.Events.pointClick.emit(&PointEvent{Series: c.series.Index, Point: i, X: x, Y: y})
	c.toggleExplode(i)
}

// LegendClick handles a click at (x, y) on the legend.  Clicks on the
// paging controls change the legend page.  Clicks on an item toggle the
// visibility of its point, unless an event handler cancels the event.
// It reports whether the click hit the legend.
func (c *Chart) LegendClick(x, y float64) bool {
	lg := c.layout.Legend
	if lg == nil {
		return false
	}
	if dir := lg.NavTest(x, y); dir != 0 {
		c.legendPage += dir
		c.relayout()
		return true
	}
	i := lg.HitTest(x, y)
	if i < 0 || i >= len(c.series.Points) {
		return false
	}
	p := c.series.Points[i]
	ev := &LegendClickEvent{
		Series:     c.series.Index,
		Point:      i,
		Text:       p.Name(),
		Shape:      c.cfg.Legend.Shape,
		SeriesName: c.series.Name,
	}
	c.Events.legendClick.emit(ev)
	if ev.Cancel {
		c.log.Debug("legend click cancelled", zap.Int("point", i))
		return true
	}
	if !c.cfg.Legend.ToggleVisibility {
		return true
	}

	from := c.currentAngles()
	if err := c.series.ToggleVisible(i); err != nil {
		c.log.Warn("visibility not changed", zap.Int("point", i), zap.Error(err))
		return true
	}
	c.transition(from, LegendToggleDuration, false)
	return true
}

// SetPointVisible shows or hides the displayed point i, as a click on its
// legend item does.
func (c *Chart) SetPointVisible(i int, visible bool) error {
	from := c.currentAngles()
	if err := c.series.SetVisible(i, visible); err != nil {
		return err
	}
	c.transition(from, LegendToggleDuration, false)
	return nil
}

// Explode explodes or collapses the displayed point i, as a click on the
// slice does.  Nothing happens unless exploding is enabled for the series.
func (c *Chart) Explode(i int, on bool) error {
	if i < 0 || i >= len(c.series.Points) {
		return data.ErrIndex
	}
	if p := c.series.Points[i]; p.IsExplode != on && !p.IsClubbed {
		c.toggleExplode(i)
	}
	return nil
}

// KeyDown handles a key press.  Tab and the arrow keys move the focus
// between the visible slices; Enter and space explode or collapse the
// focused slice.  It reports whether the key was used.
func (c *Chart) KeyDown(key string) bool {
	switch key {
	case "Tab", "ArrowRight", "ArrowDown":
		return c.moveFocus(1)
	case "ArrowLeft", "ArrowUp":
		return c.moveFocus(-1)
	case "Enter", " ", "Space":
		i := c.focused
		if i < 0 || i >= len(c.series.Points) {
			return false
		}
		p := c.series.Points[i]
		c.Events.pointClick.emit(&PointEvent{
			Series: c.series.Index,
			Point:  i,
			X:      p.SymbolLocation.X,
			Y:      p.SymbolLocation.Y,
		})
		c.toggleExplode(i)
		return true
	case "Escape":
		if c.focused < 0 {
			return false
		}
		c.focused = -1
		return true
	}
	return false
}

func (c *Chart) moveFocus(dir int) bool {
	n := len(c.series.Points)
	if n == 0 || c.series.VisibleCount() == 0 {
		return false
	}
	i := c.focused
	if i < 0 && dir < 0 {
		i = 0
	}
	for range n {
		i = ((i+dir)%n + n) % n
		if c.series.Points[i].Visible {
			c.focused = i
			return true
		}
	}
	return false
}

// toggleExplode explodes or collapses point i.  The "Others" point
// expands into its members instead, and clicking a member collapses the
// group again.
func (c *Chart) toggleExplode(i int) {
	cfg := c.cfg.Series
	if !arc.ExplodeEnabled(cfg) || i < 0 || i >= len(c.series.Points) {
		return
	}
	p := c.series.Points[i]
	if p.IsClubbed || p.IsSliced {
		c.toggleClub(p.IsClubbed)
		return
	}

	on := !p.IsExplode
	if c.explode.Active() {
		c.explode.Cancel()
	}
	if on && !cfg.ExplodeAll {
		for _, q := range c.series.Points {
			if q.IsExplode && q != p {
				_ = c.series.SetExplode(q.Index, false)
			}
		}
	}
	if err := c.series.SetExplode(i, on); err != nil {
		return
	}
	c.relayout()

	c.explode.index = i
	c.explode.from, c.explode.to = 1, 0
	if on {
		c.explode.from, c.explode.to = 0, 1
	}
	c.explode.level = c.explode.to
	if c.state == Rendering && c.cfg.Animation.Enable {
		c.explode.Start(c.clock(), ExplodeDuration, anim.EaseOut)
		c.explode.level = c.explode.from
	}
	if on && c.hover.index == i {
		// no hover border on exploded slices
		c.fade(false, i)
	}
	c.log.Debug("explode toggled", zap.Int("point", i), zap.Bool("exploded", on))
}

func (c *Chart) toggleClub(split bool) {
	m := c.memo()
	var changed bool
	if split {
		changed = c.series.SplitClub()
	} else {
		changed = c.series.MergeClub()
	}
	if !changed {
		return
	}
	c.relayout()
	c.transition(m.from(c.series.Points), ClubDuration, true)
	c.log.Debug("group toggled", zap.Bool("expanded", split))
}

func (c *Chart) setHovered(i int) {
	if i == c.hovered {
		return
	}
	c.hovered = i
	if i >= 0 && !c.series.Points[i].IsExplode {
		c.fade(true, i)
	} else if c.hover.in {
		c.fade(false, c.hover.index)
	}
}

// fade starts fading the hover border of point i in or out.
func (c *Chart) fade(in bool, i int) {
	h := &c.hover
	if in && h.index != i {
		h.level = 0
	}
	h.index = i
	h.in = in
	h.from = h.level
	if !c.cfg.Animation.Enable {
		h.Cancel()
		h.level = 0
		if in {
			h.level = 1
		}
		return
	}
	h.Start(c.clock(), HoverFadeDuration, anim.Linear)
}

// explodeFraction returns the part of the explode distance by which
// point p is currently moved.
func (c *Chart) explodeFraction(p *data.Point) float64 {
	if c.explode.Active() && c.explode.index == p.Index {
		return c.explode.level
	}
	if p.IsExplode {
		return 1
	}
	return 0
}

// sliceOf returns the wedge of p as it is currently drawn.
func (c *Chart) sliceOf(p *data.Point) geometry.Slice {
	b := c.layout.Base
	q := *p
	q.IsExplode = false
	s := arc.Slice(&q, b)
	if f := c.explodeFraction(p); f > 0 {
		s = s.Offset(b.ExplodeDistance * f)
	}
	if c.sweeping && c.tween.Active() {
		s.Radius *= c.progress
		s.InnerRadius *= c.progress
	}
	return s
}

// Tooltip is the content and position of the tooltip.
type Tooltip struct {
	Visible bool
	Index   int

	Header string
	Lines  []string

	// Anchor is the point on the slice the tooltip refers to.  Region is
	// the tooltip box, kept inside the chart.
	Anchor     vec.Vec2
	Region     geometry.Rect
	LineHeight float64
}

// tooltipPad is the space around the tooltip text.
const tooltipPad = 5

// Tooltip resolves the tooltip for the hovered point, or for the focused
// point when nothing is hovered.
func (c *Chart) Tooltip() Tooltip {
	cfg := c.cfg.Tooltip
	i := c.hovered
	if i < 0 {
		i = c.focused
	}
	if !cfg.Enable || i < 0 || i >= len(c.series.Points) {
		return Tooltip{Index: -1}
	}
	p := c.series.Points[i]
	if !p.Visible {
		return Tooltip{Index: -1}
	}

	tt := Tooltip{
		Visible: true,
		Index:   i,
		Header:  strings.TrimSpace(label.Expand(cfg.Header, p, c.series.Name)),
		Lines:   text.SplitLines(label.Expand(cfg.Format, p, c.series.Name)),
	}
	s := c.sliceOf(p)
	tt.Anchor = geometry.PointAt(s.Center, s.Radius, s.Mid())

	sm := text.SafeMeasure{M: c.measurer, Log: c.log}
	all := tt.Lines
	if tt.Header != "" {
		all = append([]string{tt.Header}, all...)
	}
	sz := sm.Lines(all, cfg.Font)
	tt.LineHeight = sm.LineHeight(cfg.Font)
	w, h := sz.Width+2*tooltipPad, sz.Height+2*tooltipPad

	// above the anchor, moved inside the chart where necessary
	bounds := c.layout.Bounds
	x := tt.Anchor.X - w/2
	y := tt.Anchor.Y - h - tooltipPad
	if y < bounds.Y {
		y = tt.Anchor.Y + tooltipPad
	}
	x = max(bounds.X, min(x, bounds.Right()-w))
	y = max(bounds.Y, min(y, bounds.Bottom()-h))
	tt.Region = geometry.Rect{X: x, Y: y, Width: w, Height: h}
	return tt
}
