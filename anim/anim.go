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

// Package anim implements time based transitions for chart geometry.
//
// A Controller maps wall clock time to animation progress.  The chart
// calls Step once per frame; nothing in this package starts timers or
// goroutines.
package anim

import (
	"math"
	"time"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear does not change the progress.
func Linear(t float64) float64 { return t }

// EaseOut starts fast and slows down towards the end.
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOut starts and ends slowly.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Controller tracks the progress of one transition.  The zero value is an
// inactive controller.
type Controller struct {
	start    time.Time
	duration time.Duration
	easing   Easing

	active bool
	primed bool
}

// Start begins a new transition at time now, replacing any transition in
// progress.
func (c *Controller) Start(now time.Time, d time.Duration, e Easing) {
	if e == nil {
		e = Linear
	}
	c.start = now
	c.duration = d
	c.easing = e
	c.active = true
	c.primed = false
}

// StartPrimed is like Start, but the first call to Step returns progress 0
// whatever the time, and the transition clock starts at that frame.  This
// makes sure that the initial state is shown for one frame before the
// transition begins.
func (c *Controller) StartPrimed(now time.Time, d time.Duration, e Easing) {
	c.Start(now, d, e)
	c.primed = true
}

// Step returns the eased progress at time now and whether the transition
// is complete.  An inactive controller reports (1, true).
func (c *Controller) Step(now time.Time) (float64, bool) {
	if !c.active {
		return 1, true
	}
	if c.primed {
		c.primed = false
		c.start = now
		return 0, false
	}
	elapsed := now.Sub(c.start)
	if c.duration <= 0 || elapsed >= c.duration {
		c.active = false
		return 1, true
	}
	if elapsed <= 0 {
		return c.easing(0), false
	}
	t := float64(elapsed) / float64(c.duration)
	return clamp(c.easing(t)), false
}

// Cancel ends the transition.  The caller is responsible for applying the
// final state.
func (c *Controller) Cancel() {
	c.active = false
	c.primed = false
}

// Active reports whether a transition is in progress.
func (c *Controller) Active() bool {
	return c.active
}

func clamp(t float64) float64 {
	if math.IsNaN(t) {
		return 1
	}
	return min(max(t, 0), 1)
}
