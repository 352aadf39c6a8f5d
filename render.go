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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pie/config"
	"seehuhn.de/go/pie/data"
	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/label"
	"seehuhn.de/go/pie/surface"
	"seehuhn.de/go/pie/text"
	"seehuhn.de/go/pie/title"
)

// hoverGrow is the amount by which the hover border extends beyond the
// slice.
const hoverGrow = 4

// hoverOpacity is the opacity of a fully faded in hover border.
const hoverOpacity = 0.5

// disabledColor is used for legend items of hidden points.
const disabledColor = "#D6D6D6"

// Render draws the current state of the chart.  The first call starts the
// initial animation.  Nothing is drawn while a resize is pending.
func (c *Chart) Render(s surface.Surface) {
	if c.Hidden() {
		return
	}
	c.start()
	L := c.layout
	cfg := &c.cfg

	if surface.Paints(cfg.Background) || cfg.Border.Width > 0 {
		s.Rect(surface.RectCommand{
			ID:          surface.ChartID(c.id, surface.KindBackground),
			Rect:        L.Bounds,
			Fill:        cfg.Background,
			Stroke:      cfg.Border.Color,
			StrokeWidth: cfg.Border.Width,
			Opacity:     1,
		})
	}

	c.drawTitle(s, L.Title, cfg.Title, surface.KindTitle)
	c.drawTitle(s, L.Subtitle, cfg.Subtitle, surface.KindSubtitle)

	if cfg.Series.Visible {
		c.drawSlices(s)
		c.drawHover(s)
		c.drawLabels(s)
		c.drawCenter(s)
	}
	c.drawLegend(s)
	c.drawTooltip(s)
}

func (c *Chart) drawSlices(s surface.Surface) {
	cfg := c.cfg.Series
	for _, p := range c.series.Points {
		if !p.Visible || p.Span() == 0 {
			continue
		}
		sl := c.sliceOf(p)
		if sl.Radius <= 0 {
			continue
		}
		s.Path(surface.PathCommand{
			ID:          surface.PointID(c.id, surface.KindSlice, c.series.Index, p.Index),
			Shape:       sl.Path(),
			Fill:        p.Color,
			Stroke:      cfg.Border.Color,
			StrokeWidth: cfg.Border.Width,
			Opacity:     cfg.Opacity,
			Dash:        cfg.Border.Dash,
		})
	}
}

func (c *Chart) drawHover(s surface.Surface) {
	h := &c.hover
	if h.level <= 0 || h.index < 0 || h.index >= len(c.series.Points) {
		return
	}
	p := c.series.Points[h.index]
	if !p.Visible || p.IsExplode {
		return
	}
	sl := c.sliceOf(p)
	sl.Radius += hoverGrow
	if sl.InnerRadius > 0 {
		sl.InnerRadius = max(sl.InnerRadius-hoverGrow, 0)
	}
	sl.CornerRadius = 0
	s.Path(surface.PathCommand{
		ID:      surface.PointID(c.id, surface.KindBorder, c.series.Index, p.Index),
		Shape:   sl.Path(),
		Fill:    p.Color,
		Opacity: hoverOpacity * h.level,
	})
}

// labelOpacity is 0 while slices are moving, except towards the end of
// the initial sweep.
func (c *Chart) labelOpacity() float64 {
	if !c.tween.Active() {
		return 1
	}
	if c.sweeping && c.progress >= labelReveal {
		return 1
	}
	return 0
}

func (c *Chart) drawLabels(s surface.Surface) {
	opacity := c.labelOpacity()
	if opacity == 0 {
		return
	}
	dl := c.cfg.Series.DataLabel
	sm := text.SafeMeasure{M: c.measurer, Log: c.log}
	lh := sm.LineHeight(dl.Font)
	for _, pl := range c.layout.Labels {
		if !pl.Visible || pl.Index >= len(c.series.Points) {
			continue
		}
		p := c.series.Points[pl.Index]
		id := surface.PointID(c.id, surface.KindLabel, c.series.Index, p.Index)

		if pl.Connector != nil {
			color := dl.Connector.Color
			if color == "" {
				color = p.Color
			}
			s.Path(surface.PathCommand{
				ID:          surface.PointID(c.id, surface.KindConnector, c.series.Index, p.Index),
				Shape:       c.shiftConnector(pl.Connector, p.Index),
				Stroke:      color,
				StrokeWidth: dl.Connector.Width,
				Opacity:     opacity,
				Dash:        dl.Connector.Dash,
			})
		}
		if surface.Paints(dl.Fill) || (dl.Border.Width > 0 && surface.Paints(dl.Border.Color)) {
			s.Rect(surface.RectCommand{
				ID:          id + "_Shape",
				Rect:        pl.Region,
				Fill:        dl.Fill,
				Stroke:      dl.Border.Color,
				StrokeWidth: dl.Border.Width,
				Radius:      dl.Rx,
				Opacity:     opacity,
			})
		}

		fill := dl.Font.Color
		if pl.Position == config.Inside && fill == "" {
			fill = "#ffffff"
		}
		s.Text(surface.TextCommand{
			ID:         id,
			Position:   pl.Anchor,
			Lines:      pl.Lines,
			LineHeight: lh,
			Font:       dl.Font,
			Fill:       fill,
			Anchor:     surface.AnchorMiddle,
			Baseline:   surface.BaselineMiddle,
			Opacity:    opacity,
		})
	}
}

// shiftConnector returns the connector of point i.  Connectors are laid
// out for the final explode state; during an explode transition the part
// touching the slice follows the slice.
func (c *Chart) shiftConnector(conn *path.Data, i int) *path.Data {
	if !c.explode.Active() || c.explode.index != i || len(conn.Coords) == 0 {
		return conn
	}
	p := c.series.Points[i]
	d := c.layout.Base.ExplodeDistance * (c.explode.level - c.explode.to)
	res := &path.Data{
		Cmds:   conn.Cmds,
		Coords: make([]vec.Vec2, len(conn.Coords)),
	}
	copy(res.Coords, conn.Coords)
	res.Coords[0] = geometry.PointAt(res.Coords[0], d, p.MidAngle)
	return res
}

func (c *Chart) drawCenter(s surface.Surface) {
	cl := c.cfg.CenterLabel
	center := c.layout.Center
	if i := c.hovered; i >= 0 && cl.HoverTextFormat != "" && i < len(c.series.Points) {
		p := c.series.Points[i]
		if p.Visible {
			center = c.placeCenterText(p)
		}
	}
	if !center.Visible || len(center.Lines) == 0 {
		return
	}
	if c.sweeping && c.tween.Active() && c.progress < labelReveal {
		return
	}
	s.Text(surface.TextCommand{
		ID:         surface.ChartID(c.id, surface.KindCenterLabel),
		Position:   center.Anchor,
		Lines:      center.Lines,
		LineHeight: center.LineHeight,
		Font:       cl.Font,
		Fill:       cl.Font.Color,
		Anchor:     surface.AnchorMiddle,
		Baseline:   surface.BaselineMiddle,
		Opacity:    1,
	})
}

// placeCenterText lays out the centre label shown while p is hovered.
func (c *Chart) placeCenterText(p *data.Point) label.Center {
	cl := c.cfg.CenterLabel
	s := label.Expand(cl.HoverTextFormat, p, c.series.Name)
	return label.PlaceCenter(s, cl.Font, c.layout.Base, c.series.Points, c.measurer)
}

func (c *Chart) drawTitle(s surface.Surface, pl title.Placement, cfg config.Title, kind surface.Kind) {
	if !pl.Visible {
		return
	}
	id := surface.ChartID(c.id, kind)
	if surface.Paints(cfg.Background) || cfg.Border.Width > 0 {
		s.Rect(surface.RectCommand{
			ID:          id + "_Shape",
			Rect:        pl.BorderRect,
			Fill:        cfg.Background,
			Stroke:      cfg.Border.Color,
			StrokeWidth: cfg.Border.Width,
			Opacity:     1,
		})
	}

	// the text block is centred on the anchor; within the block the lines
	// are aligned along the reading direction
	anchor := surface.AnchorMiddle
	pos := pl.Anchor
	along := pl.BorderRect.Width - 2*pl.Padding
	if pl.Rotation != 0 {
		along = pl.BorderRect.Height - 2*pl.Padding
	}
	var shift float64
	switch pl.Align {
	case config.AlignNear:
		anchor, shift = surface.AnchorStart, -along/2
	case config.AlignFar:
		anchor, shift = surface.AnchorEnd, along/2
	}
	switch pl.Rotation {
	case 90:
		pos.Y += shift
	case -90:
		pos.Y -= shift
	default:
		pos.X += shift
	}

	s.Text(surface.TextCommand{
		ID:         id,
		Position:   pos,
		Lines:      pl.Lines,
		LineHeight: pl.LineHeight,
		Font:       cfg.Font,
		Fill:       cfg.Font.Color,
		Anchor:     anchor,
		Baseline:   surface.BaselineMiddle,
		Rotation:   pl.Rotation,
		Opacity:    1,
	})
}

func (c *Chart) drawLegend(s surface.Surface) {
	lg := c.layout.Legend
	cfg := c.cfg.Legend
	if lg == nil || len(lg.Items) == 0 {
		return
	}
	if surface.Paints(cfg.Background) || cfg.Border.Width > 0 {
		s.Rect(surface.RectCommand{
			ID:          surface.ChartID(c.id, surface.KindLegendBackground),
			Rect:        lg.Bounds,
			Fill:        cfg.Background,
			Stroke:      cfg.Border.Color,
			StrokeWidth: cfg.Border.Width,
			Opacity:     1,
		})
	}

	for _, it := range lg.Items {
		shapeColor, textColor := it.Color, cfg.Font.Color
		if !it.Visible {
			shapeColor, textColor = disabledColor, disabledColor
		}
		s.Path(surface.PathCommand{
			ID:      surface.PointID(c.id, surface.KindLegendShape, c.series.Index, it.Index),
			Shape:   legendShape(cfg.Shape, it.Shape),
			Fill:    shapeColor,
			Opacity: 1,
		})
		s.Text(surface.TextCommand{
			ID:         surface.PointID(c.id, surface.KindLegendText, c.series.Index, it.Index),
			Position:   it.TextPos,
			Lines:      []string{it.Label},
			LineHeight: lg.LineHeight,
			Font:       cfg.Font,
			Fill:       textColor,
			Anchor:     surface.AnchorStart,
			Baseline:   surface.BaselineMiddle,
			Opacity:    1,
		})
	}

	if lg.Pages > 1 {
		s.Path(surface.PathCommand{
			ID:      surface.ChartID(c.id, surface.KindLegendPrev),
			Shape:   arrowShape(lg.PrevRect, true),
			Fill:    cfg.Font.Color,
			Opacity: lg.PrevOpacity,
		})
		s.Path(surface.PathCommand{
			ID:      surface.ChartID(c.id, surface.KindLegendNext),
			Shape:   arrowShape(lg.NextRect, false),
			Fill:    cfg.Font.Color,
			Opacity: lg.NextOpacity,
		})
		s.Text(surface.TextCommand{
			ID:         surface.ChartID(c.id, surface.KindLegendPageText),
			Position:   lg.PageTextPos,
			Lines:      []string{lg.PageText},
			LineHeight: lg.LineHeight,
			Font:       cfg.Font,
			Fill:       cfg.Font.Color,
			Anchor:     surface.AnchorMiddle,
			Baseline:   surface.BaselineMiddle,
			Opacity:    1,
		})
	}
}

func (c *Chart) drawTooltip(s surface.Surface) {
	tt := c.Tooltip()
	if !tt.Visible {
		return
	}
	cfg := c.cfg.Tooltip
	id := surface.ChartID(c.id, surface.KindTooltip)
	s.Rect(surface.RectCommand{
		ID:      id + "_Shape",
		Rect:    tt.Region,
		Fill:    cfg.Fill,
		Opacity: cfg.Opacity,
		Radius:  4,
	})
	lines := tt.Lines
	if tt.Header != "" {
		lines = append([]string{tt.Header}, lines...)
	}
	s.Text(surface.TextCommand{
		ID:         id,
		Position:   vec.Vec2{X: tt.Region.X + tooltipPad, Y: tt.Region.Y + tooltipPad},
		Lines:      lines,
		LineHeight: tt.LineHeight,
		Font:       cfg.Font,
		Fill:       cfg.Font.Color,
		Anchor:     surface.AnchorStart,
		Baseline:   surface.BaselineTop,
		Opacity:    1,
	})
}

// legendShape returns the outline of a legend marker inside r.
func legendShape(shape string, r geometry.Rect) *path.Data {
	c := r.Center()
	switch shape {
	case "Rectangle":
		return geometry.RectPath(r, 0)
	case "Diamond":
		return (&path.Data{}).
			MoveTo(vec.Vec2{X: c.X, Y: r.Y}).
			LineTo(vec.Vec2{X: r.Right(), Y: c.Y}).
			LineTo(vec.Vec2{X: c.X, Y: r.Bottom()}).
			LineTo(vec.Vec2{X: r.X, Y: c.Y}).
			Close()
	}
	return geometry.Ring(c, min(r.Width, r.Height)/2, 0)
}

// arrowShape returns a triangle inside r, pointing left or right.
func arrowShape(r geometry.Rect, left bool) *path.Data {
	tip, back := r.Right(), r.X
	if left {
		tip, back = r.X, r.Right()
	}
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: back, Y: r.Y}).
		LineTo(vec.Vec2{X: tip, Y: r.Y + r.Height/2}).
		LineTo(vec.Vec2{X: back, Y: r.Bottom()}).
		Close()
}
