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

// Package pie lays out, animates and draws pie and doughnut charts.
//
// A [Chart] combines a configuration tree with tabular data.  Every change
// of configuration, data or size triggers a layout pass, which places the
// title, legend, slices and data labels.  Transitions between layouts are
// animated; the host drives the animation by calling [Chart.Step] once per
// frame and then [Chart.Render] to draw the current state.
//
// A Chart is not safe for concurrent use.
package pie

//go:generate go run ./testcases/export

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"seehuhn.de/go/pie/anim"
	"seehuhn.de/go/pie/arc"
	"seehuhn.de/go/pie/config"
	"seehuhn.de/go/pie/data"
	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/label"
	"seehuhn.de/go/pie/legend"
	"seehuhn.de/go/pie/text"
	"seehuhn.de/go/pie/title"
)

// Transition durations.
const (
	LegendToggleDuration = 300 * time.Millisecond
	ClubDuration         = 300 * time.Millisecond
	DataChangeDuration   = 500 * time.Millisecond
	ExplodeDuration      = 300 * time.Millisecond
	HoverFadeDuration    = 100 * time.Millisecond
	ResizeDebounce       = 500 * time.Millisecond
)

// labelReveal is the sweep progress at which data labels appear.
const labelReveal = 0.8

// ErrNoSource is returned by Refresh for charts without a data source.
var ErrNoSource = errors.New("chart has no data source")

// State is the life cycle state of a chart.
type State int

// The chart states.  A chart is measuring until it is rendered for the
// first time.
const (
	Measuring State = iota
	Rendering
)

func (s State) String() string {
	if s == Rendering {
		return "rendering"
	}
	return "measuring"
}

// Layout is the result of one layout pass.
type Layout struct {
	Bounds   geometry.Rect // the whole chart
	Title    title.Placement
	Subtitle title.Placement
	Legend   *legend.Result

	// PlotArea is the area left for the pie and its labels.
	PlotArea geometry.Rect
	Base     arc.Base

	// Angles are the final slice angles, in point order.
	Angles []arc.Angle
	Labels []label.Placement
	Center label.Center
}

// Chart is one pie or doughnut chart.
type Chart struct {
	// Events holds the observers of this chart.
	Events Events

	cfg       config.Chart
	id        string
	log       *zap.Logger
	measurer  text.Measurer
	formatter label.Formatter
	clock     func() time.Time

	series  *data.Series
	source  data.Source
	manager *data.Manager

	state      State
	layout     *Layout
	legendPage int

	tween    anim.Tween
	sweeping bool
	progress float64 // eased progress of the running tween

	explode explodeTween
	hover   hoverFade

	hovered   int
	focused   int
	pointerIn bool
	pointer   PointerEvent

	resize resizeState
}

type explodeTween struct {
	anim.Controller
	index    int
	from, to float64 // fractions of the explode distance
	level    float64
}

type hoverFade struct {
	anim.Controller
	index int
	from  float64
	in    bool
	level float64 // opacity factor of the hover border
}

type resizeState struct {
	pending       bool
	due           time.Time
	width, height float64
}

// Option configures a chart.
type Option func(*Chart)

// WithLogger sets the logger.  The default discards all messages.
func WithLogger(log *zap.Logger) Option {
	return func(c *Chart) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMeasurer sets the text measurer.  Without a measurer all text
// measures as zero size and data labels are hidden.
func WithMeasurer(m text.Measurer) Option {
	return func(c *Chart) { c.measurer = m }
}

// WithFormatter sets a callback computing data label texts.
func WithFormatter(f label.Formatter) Option {
	return func(c *Chart) { c.formatter = f }
}

// WithSource connects the chart to a data source, read by Refresh.
func WithSource(src data.Source) Option {
	return func(c *Chart) { c.source = src }
}

// WithID sets the element id prefix, overriding the configured one.
func WithID(id string) Option {
	return func(c *Chart) { c.id = id }
}

// WithClock sets the time source used when interaction starts a
// transition.  The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Chart) { c.clock = now }
}

// New creates a chart from a resolved configuration and the initial data
// rows.
func New(cfg config.Chart, rows []data.Row, opts ...Option) *Chart {
	c := &Chart{
		cfg:     cfg,
		id:      cfg.ID,
		log:     zap.NewNop(),
		clock:   time.Now,
		hovered: -1,
		focused: -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.id == "" {
		c.id = uuid.NewString()
	}
	c.log = c.log.With(zap.String("chart", c.id))
	c.series = data.Ingest(rows, cfg.Series, cfg.Palette)
	if c.source != nil {
		c.manager = data.NewManager(c.source, c.series, c.log)
	}
	c.relayout()
	return c
}

// ID returns the element id prefix of the chart.
func (c *Chart) ID() string {
	return c.id
}

// Config returns the chart configuration.
func (c *Chart) Config() config.Chart {
	return c.cfg
}

// State returns the life cycle state.
func (c *Chart) State() State {
	return c.state
}

// Series returns the data series.  Callers must not modify it directly;
// use the data methods of the chart instead.
func (c *Chart) Series() *data.Series {
	return c.series
}

// Points returns the displayed points, with their current, possibly
// interpolated, angles.
func (c *Chart) Points() []*data.Point {
	return c.series.Points
}

// Layout returns the result of the most recent layout pass.
func (c *Chart) Layout() *Layout {
	return c.layout
}

// Tweening reports whether a slice transition is in progress.
func (c *Chart) Tweening() bool {
	return c.tween.Active()
}

// Hidden reports whether the chart must not be shown, because a resize is
// pending.
func (c *Chart) Hidden() bool {
	return c.resize.pending
}

// SetData replaces all data rows.  Visibility and explode state are
// reset.
func (c *Chart) SetData(rows []data.Row) {
	from := c.currentAngles()
	c.series.Replace(rows)
	c.transition(from, DataChangeDuration, false)
}

// AddPoint appends a data row.
func (c *Chart) AddPoint(row data.Row) {
	from := c.currentAngles()
	c.series.AddPoint(row)
	c.transition(from, DataChangeDuration, false)
}

// RemovePoint removes the displayed point i.
func (c *Chart) RemovePoint(i int) error {
	from := c.currentAngles()
	if err := c.series.RemovePoint(i); err != nil {
		return err
	}
	c.transition(from, DataChangeDuration, false)
	return nil
}

// UpdatePoint replaces the data row of the displayed point i.
func (c *Chart) UpdatePoint(i int, row data.Row) error {
	from := c.currentAngles()
	if err := c.series.UpdatePoint(i, row); err != nil {
		return err
	}
	c.transition(from, DataChangeDuration, false)
	return nil
}

// Refresh reloads the data from the data source.  On failure the points
// are left unchanged.
func (c *Chart) Refresh(ctx context.Context) error {
	if c.manager == nil {
		return ErrNoSource
	}
	from := c.currentAngles()
	if err := c.manager.Refresh(ctx); err != nil {
		return err
	}
	c.transition(from, DataChangeDuration, false)
	return nil
}

// Resize schedules a change of the chart size.  The new size is applied
// by Step once no further resize has been requested for ResizeDebounce.
// The chart is hidden until then.
func (c *Chart) Resize(width, height float64) {
	c.resize = resizeState{
		pending: true,
		due:     c.clock().Add(ResizeDebounce),
		width:   max(width, 0),
		height:  max(height, 0),
	}
}

func (c *Chart) applyResize() {
	ev := ResizeEvent{
		PreviousWidth:  c.cfg.Width,
		PreviousHeight: c.cfg.Height,
		Width:          c.resize.width,
		Height:         c.resize.height,
	}
	c.resize = resizeState{}
	c.cfg.Width, c.cfg.Height = ev.Width, ev.Height
	c.snap()
	c.relayout()
	c.log.Debug("resize applied", zap.Float64("width", ev.Width), zap.Float64("height", ev.Height))
	c.Events.resize.emit(ev)
}

// Step advances all transitions to time now.  It reports whether further
// frames are needed.
func (c *Chart) Step(now time.Time) bool {
	busy := false
	if c.resize.pending {
		if now.Before(c.resize.due) {
			busy = true
		} else {
			c.applyResize()
		}
	}

	if c.tween.Active() {
		angles, t, done := c.tween.Frame(now)
		c.progress = t
		arc.Apply(c.series.Points, angles, c.layout.Base)
		if done {
			c.sweeping = false
			c.log.Debug("transition complete")
			c.Events.animDone.emit(AnimationEvent{Series: c.series.Index})
		} else {
			busy = true
		}
	}

	if c.explode.Active() {
		t, done := c.explode.Step(now)
		c.explode.level = geometry.Lerp(c.explode.from, c.explode.to, t)
		busy = busy || !done
	}

	if c.hover.Active() {
		t, done := c.hover.Step(now)
		if c.hover.in {
			c.hover.level = c.hover.from + (1-c.hover.from)*t
		} else {
			c.hover.level = c.hover.from * (1 - t)
		}
		busy = busy || !done
	}
	return busy
}

// start switches from measuring to rendering and begins the initial
// sweep.
func (c *Chart) start() {
	if c.state == Rendering {
		return
	}
	c.state = Rendering
	a := c.cfg.Animation
	if !a.Enable || a.Duration <= 0 {
		return
	}
	b := c.layout.Base
	c.tween.Sweep(c.clock().Add(a.DelayValue()), a.DurationValue(), b.Origin(), c.layout.Angles)
	c.sweeping = true
	c.progress = 0
	arc.Apply(c.series.Points, c.tween.Current(), b)
}

// currentAngles returns the angles shown at the moment, which is where a
// new transition starts.
func (c *Chart) currentAngles() []arc.Angle {
	if c.tween.Active() {
		return c.tween.Current()
	}
	return arc.Snapshot(c.series.Points)
}

// snap ends all transitions, leaving the points in their final state.
func (c *Chart) snap() {
	if c.tween.Active() {
		arc.Apply(c.series.Points, c.tween.Cancel(), c.layout.Base)
	}
	c.sweeping = false
	if c.explode.Active() {
		c.explode.Cancel()
		c.explode.level = c.explode.to
	}
}

// transition runs a layout pass and animates the slices from the given
// angles to the new ones.
func (c *Chart) transition(from []arc.Angle, d time.Duration, primed bool) {
	animate := c.state == Rendering && c.cfg.Animation.Enable && d > 0
	if !animate {
		c.snap()
	}
	c.relayout()
	if !animate {
		return
	}

	now := c.clock()
	to := c.layout.Angles
	if primed {
		c.tween.MorphPrimed(now, d, c.layout.Base, from, to)
	} else {
		c.tween.Morph(now, d, c.layout.Base, from, to)
	}
	c.sweeping = false
	c.progress = 0
	arc.Apply(c.series.Points, c.tween.Current(), c.layout.Base)
	c.log.Debug("transition started",
		zap.Duration("duration", d),
		zap.Int("points", len(to)))
}

// relayout runs a layout pass.  The points receive their final angles,
// unless a transition is running, in which case its current frame is kept.
func (c *Chart) relayout() {
	cfg := &c.cfg
	L := &Layout{Bounds: geometry.Rect{Width: cfg.Width, Height: cfg.Height}}
	area := L.Bounds.Inset(cfg.Margin.Left, cfg.Margin.Top, cfg.Margin.Right, cfg.Margin.Bottom)

	L.Title = title.Place(cfg.Title.Text, cfg.Title, area, c.measurer)
	area = title.Shrink(area, L.Title)
	sub := cfg.Subtitle
	if L.Title.Visible && cfg.Title.Position != config.PositionCustom {
		sub.Position = cfg.Title.Position
	}
	L.Subtitle = title.Place(sub.Text, sub, area, c.measurer)
	area = title.Shrink(area, L.Subtitle)

	points := c.series.Points
	items := make([]legend.Item, len(points))
	for i, p := range points {
		items[i] = legend.Item{Index: p.Index, Text: p.Name(), Color: p.Color, Visible: p.Visible}
	}
	L.Legend = legend.Layout(items, cfg.Legend, area, c.measurer)
	c.legendPage = min(c.legendPage, max(L.Legend.Pages-1, 0))
	L.Legend.Page(c.legendPage)
	L.PlotArea = L.Legend.Remaining

	L.Base = arc.Resolve(cfg.Series, L.PlotArea, points)
	L.Angles = arc.Compute(points, L.Base)
	for _, p := range points {
		p.SymbolLocation = geometry.PointAt(L.Base.Center, p.Radius, p.MidAngle)
	}

	if dl := cfg.Series.DataLabel; dl.Visible {
		var obstacles []geometry.Rect
		for _, t := range []title.Placement{L.Title, L.Subtitle} {
			if t.Visible {
				obstacles = append(obstacles, t.BorderRect)
			}
		}
		L.Labels = label.Layout(points, L.Base, dl, label.Env{
			Measurer:    c.measurer,
			PlotArea:    L.PlotArea,
			Obstacles:   obstacles,
			SmartLabels: cfg.EnableSmartLabels,
			Formatter:   c.formatter,
			SeriesName:  c.series.Name,
			Logger:      c.log,
		})
	}
	L.Center = label.PlaceCenter(cfg.CenterLabel.Text, cfg.CenterLabel.Font, L.Base, points, c.measurer)

	c.layout = L
	if c.hovered >= len(points) {
		c.hovered = -1
	}
	if c.focused >= len(points) {
		c.focused = -1
	}
	if c.tween.Active() {
		arc.Apply(points, c.tween.Current(), L.Base)
	}
}

// angleMemo remembers the angles of the displayed points before the
// "Others" group is expanded or collapsed, keyed by source row.
type angleMemo struct {
	bySource   map[int]arc.Angle
	others     arc.Angle
	members    arc.Angle
	hasMembers bool
}

func (c *Chart) memo() angleMemo {
	cur := c.currentAngles()
	m := angleMemo{bySource: make(map[int]arc.Angle)}
	for i, p := range c.series.Points {
		if i >= len(cur) {
			break
		}
		a := cur[i]
		switch {
		case p.IsClubbed:
			m.others = a
		case p.IsSliced:
			if !m.hasMembers {
				m.members.Start = a.Start
				m.hasMembers = true
			}
			m.members.End = a.End
		}
		if p.SourceIndex >= 0 {
			m.bySource[p.SourceIndex] = a
		}
	}
	return m
}

// from returns the starting angles for the new set of points: unchanged
// points keep their angles, group members start out covering the whole
// "Others" slice and a new "Others" slice starts out covering all of its
// former members.
func (m angleMemo) from(points []*data.Point) []arc.Angle {
	res := make([]arc.Angle, len(points))
	for i, p := range points {
		switch {
		case p.IsClubbed:
			res[i] = m.members
		case p.IsSliced:
			res[i] = m.others
		default:
			a, ok := m.bySource[p.SourceIndex]
			if !ok {
				a = arc.Angle{Start: p.StartAngle, End: p.StartAngle}
			}
			res[i] = a
		}
	}
	return res
}
