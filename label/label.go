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

// Package label places the data labels of a pie chart.
//
// Labels are placed inside their slice, at the middle between the inner
// and outer radius, or outside the pie at the end of a connector line.
// With smart labels enabled, outside labels which would overlap the
// previous label on the same side of the chart are moved along the slice
// in small angular steps, and labels which cannot be separated are hidden.
package label

import (
	"go.uber.org/zap"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pie/arc"
	"seehuhn.de/go/pie/config"
	"seehuhn.de/go/pie/data"
	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/text"
)

// MaxNudgeSteps bounds the number of angular steps tried for one label.
const MaxNudgeSteps = 3600

// NudgeStep is the angular increment, in degrees, used to move a
// colliding label.
const NudgeStep = 0.1

// leg is the length of the horizontal part of an outside connector.
const leg = 10

// Side identifies the half of the chart a label belongs to.
type Side int

// The two sides.
const (
	Right Side = iota
	Left
)

// Env holds the context of a label layout pass.
type Env struct {
	Measurer text.Measurer

	// PlotArea is the area labels must stay inside.  Obstacles are other
	// chart elements, typically the title, which labels must not cover.
	PlotArea  geometry.Rect
	Obstacles []geometry.Rect

	SmartLabels bool
	Formatter   Formatter
	SeriesName  string
	Logger      *zap.Logger
}

func (env Env) logger() *zap.Logger {
	if env.Logger == nil {
		return zap.NewNop()
	}
	return env.Logger
}

// Placement is the computed position of one data label.
type Placement struct {
	Index int // point index
	Lines []string

	Region geometry.Rect
	Anchor vec.Vec2 // centre of the text block

	// Connector joins outside labels to their slice.  It is nil for
	// inside labels.
	Connector *path.Data

	Side     Side
	Position config.LabelPosition
	Angle    float64
	Visible  bool

	conn []vec.Vec2
}

// Layout places the labels of all visible points.  The results are also
// recorded in the label fields of the points.
func Layout(points []*data.Point, b arc.Base, cfg config.DataLabel, env Env) []Placement {
	l := &layout{
		cfg: cfg,
		env: env,
		b:   b,
		sm:  text.SafeMeasure{M: env.Measurer, Log: env.logger()},
		pad: max(1, cfg.Border.Width),
	}
	l.connLen = max(lengthOr(cfg.Connector.Length, b.Radius, 0.04*b.Radius), 0)

	var res []Placement
	for _, p := range points {
		p.LabelVisible = false
		p.LabelRegion = geometry.Rect{}
		if !p.Visible || p.Span() == 0 {
			continue
		}
		pl, ok := l.place(p, res)
		if !ok {
			continue
		}
		p.LabelVisible = pl.Visible
		p.LabelRegion = pl.Region
		p.LabelPosition = pl.Position
		p.LabelAngle = pl.Angle
		res = append(res, pl)
	}
	return res
}

type layout struct {
	cfg     config.DataLabel
	env     Env
	b       arc.Base
	sm      text.SafeMeasure
	pad     float64
	connLen float64
}

func (l *layout) place(p *data.Point, placed []Placement) (Placement, bool) {
	content := Content(p, l.cfg.Format, l.env)
	if content == "" {
		return Placement{}, false
	}
	lines := l.shape(text.SplitLines(content))

	pl := Placement{
		Index:    p.Index,
		Lines:    lines,
		Position: l.cfg.Position,
		Angle:    p.MidAngle,
		Side:     sideOf(p.OriginalMidAngle),
		Visible:  true,
	}
	w, h := l.box(lines)
	if w <= 2*l.pad {
		// measurement failed
		pl.Visible = false
		return pl, true
	}

	if pl.Position == config.Inside {
		pl.Region = l.insideRegion(p, p.MidAngle, w, h)
		if !fitsInside(pl.Region, arc.Slice(p, l.b)) && l.env.SmartLabels {
			pl.Position = config.Outside
		}
	}
	if pl.Position == config.Inside {
		pl.Anchor = pl.Region.Center()
		return pl, true
	}

	pl.Region, pl.conn = l.outside(p, pl.Angle, pl.Side, w, h)
	if l.env.SmartLabels {
		l.nudge(p, &pl, placed, w, h)
	}
	l.trim(&pl)
	if pl.Visible {
		pa := l.env.PlotArea
		if !pa.IsEmpty() && (pl.Region.Y < pa.Y || pl.Region.Bottom() > pa.Bottom()) {
			pl.Visible = false
		}
	}
	if pl.Visible && l.env.SmartLabels {
		for _, q := range placed {
			if q.Visible && q.Position == config.Outside && q.Side == pl.Side && q.Region.Intersects(pl.Region) {
				pl.Visible = false
				break
			}
		}
	}

	pl.conn = l.connector(p, pl.Angle, pl.Region)
	pl.Connector = l.connectorPath(pl.conn)
	pl.Anchor = pl.Region.Center()
	return pl, true
}

// shape applies the maximum width to the label lines.
func (l *layout) shape(lines []string) []string {
	if l.cfg.MaxWidth <= 0 {
		return lines
	}
	var res []string
	for _, line := range lines {
		if l.cfg.TextWrap == config.WrapWrap {
			res = append(res, l.sm.Wrap(line, l.cfg.MaxWidth, l.cfg.Font)...)
		} else {
			res = append(res, l.sm.Trim(line, l.cfg.MaxWidth, l.cfg.Font))
		}
	}
	return res
}

// box returns the size of the label rectangle, including the margin.
func (l *layout) box(lines []string) (float64, float64) {
	sz := l.sm.Lines(lines, l.cfg.Font)
	return sz.Width + 2*l.pad, sz.Height + 2*l.pad
}

func (l *layout) center(p *data.Point) vec.Vec2 {
	c := l.b.Center
	if p.IsExplode {
		c = geometry.PointAt(c, l.b.ExplodeDistance, p.MidAngle)
	}
	return c
}

func (l *layout) insideRegion(p *data.Point, angle, w, h float64) geometry.Rect {
	r := (l.b.InnerRadius + p.Radius) / 2
	a := geometry.PointAt(l.center(p), r, angle)
	return geometry.Rect{X: a.X - w/2, Y: a.Y - h/2, Width: w, Height: h}
}

// outside returns the label rectangle for the given anchor angle, together
// with the connector polyline.
func (l *layout) outside(p *data.Point, angle float64, side Side, w, h float64) (geometry.Rect, []vec.Vec2) {
	elbow := geometry.PointAt(l.center(p), p.Radius+l.connLen, angle)
	var r geometry.Rect
	if side == Left {
		r = geometry.Rect{X: elbow.X - leg - w, Y: elbow.Y - h/2, Width: w, Height: h}
	} else {
		r = geometry.Rect{X: elbow.X + leg, Y: elbow.Y - h/2, Width: w, Height: h}
	}
	return r, l.connector(p, angle, r)
}

// nudge moves pl along the slice until it no longer collides with the most
// recent label on the same side.  If no free position is found before the
// end of the slice, the label returns to the original mid-angle.
func (l *layout) nudge(p *data.Point, pl *Placement, placed []Placement, w, h float64) {
	var prev *Placement
	for i := len(placed) - 1; i >= 0; i-- {
		q := &placed[i]
		if q.Visible && q.Position == config.Outside && q.Side == pl.Side {
			prev = q
			break
		}
	}
	if prev == nil {
		return
	}

	end := p.MidAngle + p.Span()/2
	angle := pl.Angle
	region, conn := pl.Region, pl.conn
	for step := 0; collides(prev, region, conn); step++ {
		if step >= MaxNudgeSteps || angle+NudgeStep > end {
			angle = p.OriginalMidAngle
			region, conn = l.outside(p, angle, pl.Side, w, h)
			l.env.logger().Debug("label kept at mid-angle",
				zap.Int("point", p.Index), zap.Int("steps", step))
			break
		}
		angle += NudgeStep
		region, conn = l.outside(p, angle, pl.Side, w, h)
	}
	pl.Angle = angle
	pl.Region = region
	pl.conn = conn
}

func collides(q *Placement, r geometry.Rect, conn []vec.Vec2) bool {
	if q.Region.Intersects(r) {
		return true
	}
	return polylineHitsRect(conn, q.Region) || polylineHitsRect(q.conn, r)
}

func polylineHitsRect(pts []vec.Vec2, r geometry.Rect) bool {
	for i := 1; i < len(pts); i++ {
		if geometry.SegmentIntersectsRect(pts[i-1], pts[i], r) {
			return true
		}
	}
	return false
}

// trim shortens the label lines when the label leaves the plot area
// horizontally or covers an obstacle.  Labels reduced to a bare ellipsis
// are hidden.
func (l *layout) trim(pl *Placement) {
	r := pl.Region
	avail := r.Width
	pa := l.env.PlotArea
	if !pa.IsEmpty() {
		if pl.Side == Left {
			avail = min(avail, r.Right()-pa.X)
		} else {
			avail = min(avail, pa.Right()-r.X)
		}
	}
	for _, o := range l.env.Obstacles {
		if !o.Intersects(r) {
			continue
		}
		if pl.Side == Left {
			avail = min(avail, r.Right()-o.Right())
		} else {
			avail = min(avail, o.X-r.X)
		}
	}
	if avail >= r.Width {
		return
	}

	width := avail - 2*l.pad
	lines := Fit(l.sm, pl.Lines, width, l.cfg.Font)
	if lines == nil {
		pl.Visible = false
		return
	}
	pl.Lines = lines
	w, h := l.box(lines)
	if pl.Side == Left {
		pl.Region = geometry.Rect{X: r.Right() - w, Y: r.Y, Width: w, Height: h}
	} else {
		pl.Region = geometry.Rect{X: r.X, Y: r.Y, Width: w, Height: h}
	}
}

// Fit trims each line to width.  It returns nil if nothing but ellipses
// would remain.
func Fit(sm text.SafeMeasure, lines []string, width float64, f text.Font) []string {
	if width <= 0 {
		return nil
	}
	res := make([]string, len(lines))
	keep := false
	for i, line := range lines {
		res[i] = sm.Trim(line, width, f)
		if !text.IsTrimmedAway(res[i]) {
			keep = true
		}
	}
	if !keep {
		return nil
	}
	return res
}

// connector returns the polyline from the slice edge to the label.  The
// label edge is chosen by the position of the label relative to the
// undisplaced slice, so that the line never crosses the slice.
func (l *layout) connector(p *data.Point, angle float64, r geometry.Rect) []vec.Vec2 {
	c := l.center(p)
	start := geometry.PointAt(c, p.Radius, p.MidAngle)
	elbow := geometry.PointAt(c, p.Radius+l.connLen, angle)
	end := vec.Vec2{X: r.X, Y: r.Y + r.Height/2}
	if r.Center().X < p.Region.Center().X {
		end.X = r.Right()
	}
	return []vec.Vec2{start, elbow, end}
}

func (l *layout) connectorPath(pts []vec.Vec2) *path.Data {
	if len(pts) != 3 {
		return nil
	}
	if l.cfg.Connector.Type == config.ConnectorCurve {
		return geometry.Curve(pts[0], pts[1], pts[2])
	}
	return geometry.Polyline(pts...)
}

func sideOf(angle float64) Side {
	if geometry.IsLeft(angle) {
		return Left
	}
	return Right
}

// fitsInside reports whether all corners of r lie in the slice.
func fitsInside(r geometry.Rect, s geometry.Slice) bool {
	corners := []vec.Vec2{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.X, Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
	}
	for _, c := range corners {
		if !s.Contains(c) {
			return false
		}
	}
	return true
}

func lengthOr(s string, ref, fallback float64) float64 {
	if v, ok := geometry.Length(s, ref); ok {
		return v
	}
	return fallback
}
