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

import "slices"

// PointEvent describes a click on a slice.  X and Y are the pointer
// coordinates in chart pixels.
type PointEvent struct {
	Series int
	Point  int
	X, Y   float64
}

// LegendClickEvent describes a click on a legend item.  Handlers can set
// Cancel to suppress the visibility toggle.
type LegendClickEvent struct {
	Series     int
	Point      int
	Text       string
	Shape      string
	SeriesName string

	Cancel bool
}

// PointerEvent carries raw pointer coordinates, in chart pixels.
type PointerEvent struct {
	X, Y float64
}

// ResizeEvent is sent after a debounced resize has been applied.
type ResizeEvent struct {
	PreviousWidth, PreviousHeight float64
	Width, Height                 float64
}

// AnimationEvent is sent when a slice transition has finished.
type AnimationEvent struct {
	Series int
}

// Events holds the observers of one chart.
//
// Handlers run synchronously, on the goroutine which drives the chart.
// Registering or removing handlers from inside a handler is allowed; the
// change takes effect for the next event.
type Events struct {
	nextID uint64

	pointClick   observers[*PointEvent]
	legendClick  observers[*LegendClickEvent]
	pointerMove  observers[PointerEvent]
	pointerEnter observers[PointerEvent]
	pointerLeave observers[PointerEvent]
	resize       observers[ResizeEvent]
	animDone     observers[AnimationEvent]
}

// CallbackHandle allows removing a registered handler.
type CallbackHandle struct {
	id     uint64
	remove func(uint64) bool
}

// Remove unregisters the handler.  It reports whether the handler was
// still registered.
func (h CallbackHandle) Remove() bool {
	if h.remove == nil {
		return false
	}
	return h.remove(h.id)
}

type observer[E any] struct {
	id uint64
	fn func(E)
}

type observers[E any] struct {
	list []observer[E]
}

func (o *observers[E]) add(ev *Events, fn func(E)) CallbackHandle {
	ev.nextID++
	id := ev.nextID
	o.list = append(o.list, observer[E]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: o.remove}
}

func (o *observers[E]) remove(id uint64) bool {
	i := slices.IndexFunc(o.list, func(ob observer[E]) bool { return ob.id == id })
	if i < 0 {
		return false
	}
	o.list = slices.Delete(slices.Clone(o.list), i, i+1)
	return true
}

func (o *observers[E]) emit(e E) {
	for _, ob := range o.list {
		ob.fn(e)
	}
}

// OnPointClick registers a handler for clicks on slices.
func (ev *Events) OnPointClick(fn func(*PointEvent)) CallbackHandle {
	return ev.pointClick.add(ev, fn)
}

// OnLegendClick registers a handler for clicks on legend items.
func (ev *Events) OnLegendClick(fn func(*LegendClickEvent)) CallbackHandle {
	return ev.legendClick.add(ev, fn)
}

// OnPointerMove registers a handler for pointer movement over the chart.
func (ev *Events) OnPointerMove(fn func(PointerEvent)) CallbackHandle {
	return ev.pointerMove.add(ev, fn)
}

// OnPointerEnter registers a handler called when the pointer enters the
// chart.
func (ev *Events) OnPointerEnter(fn func(PointerEvent)) CallbackHandle {
	return ev.pointerEnter.add(ev, fn)
}

// OnPointerLeave registers a handler called when the pointer leaves the
// chart.
func (ev *Events) OnPointerLeave(fn func(PointerEvent)) CallbackHandle {
	return ev.pointerLeave.add(ev, fn)
}

// OnResize registers a handler for applied resizes.
func (ev *Events) OnResize(fn func(ResizeEvent)) CallbackHandle {
	return ev.resize.add(ev, fn)
}

// OnAnimationComplete registers a handler for finished transitions.
func (ev *Events) OnAnimationComplete(fn func(AnimationEvent)) CallbackHandle {
	return ev.animDone.add(ev, fn)
}
