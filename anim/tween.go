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

package anim

import (
	"math"
	"slices"
	"time"

	"seehuhn.de/go/pie/arc"
	"seehuhn.de/go/pie/geometry"
)

// Morph interpolates slice angles between two snapshots of the pie b.
// Both snapshots are expressed as offsets from the pie origin, in
// [0, TotalAngle], and interpolated linearly there, so that slice edges
// never cross the origin and the slices always partition the pie.
// Slices without a previous state grow from their target start angle.
func Morph(from, to []arc.Angle, b arc.Base, t float64) []arc.Angle {
	origin, total := b.Origin(), b.TotalAngle
	res := make([]arc.Angle, len(to))
	for i, target := range to {
		s1, e1 := inPie(target, origin, total)
		s0, e0 := s1, s1
		if i < len(from) {
			s0, e0 = inPie(from[i], origin, total)
		}
		start := geometry.Lerp(s0, s1, t)
		span := min(max(geometry.Lerp(e0, e1, t)-start, 0), total-start)
		res[i] = arc.Angle{Start: origin + start, End: origin + start + span}
	}
	return res
}

// inPie returns the start and end of a as offsets from origin.
func inPie(a arc.Angle, origin, total float64) (float64, float64) {
	start := geometry.Wrap(a.Start, origin) - origin
	if start > total {
		// in the gap of a partial pie, or just below the origin
		d0 := math.Abs(geometry.Delta(a.Start, origin))
		d1 := math.Abs(geometry.Delta(a.Start, origin+total))
		start = 0
		if d1 < d0 {
			start = total
		}
	}
	return start, min(start+a.Span(), total)
}

// Sweep scales the angles of a pie around origin, so that at t = 0 all
// slices have zero size and at t = 1 the result equals to.
func Sweep(to []arc.Angle, origin, t float64) []arc.Angle {
	res := make([]arc.Angle, len(to))
	for i, b := range to {
		start := origin + geometry.Normalize(b.Start-origin)*t
		res[i] = arc.Angle{Start: start, End: start + b.Span()*t}
	}
	return res
}

// Tween animates a set of slice angles.
type Tween struct {
	Controller

	from, to []arc.Angle
	base     arc.Base
	origin   float64
	sweep    bool
	last     []arc.Angle
}

// Morph starts a transition from the given angles to the new ones.  If a
// transition is already running, pass its current frame as from.
func (tw *Tween) Morph(now time.Time, d time.Duration, b arc.Base, from, to []arc.Angle) {
	tw.from = slices.Clone(from)
	tw.to = slices.Clone(to)
	tw.base = b
	tw.sweep = false
	tw.last = Morph(from, to, b, 0)
	tw.Start(now, d, EaseInOut)
}

// MorphPrimed is like Morph, but the angles from are shown for one full
// frame before the transition starts.  This is used when the set of
// slices changes, as when the "Others" group is expanded.
func (tw *Tween) MorphPrimed(now time.Time, d time.Duration, b arc.Base, from, to []arc.Angle) {
	tw.Morph(now, d, b, from, to)
	tw.primed = true
}

// Sweep starts the initial animation, which opens the pie clockwise
// from origin.
func (tw *Tween) Sweep(now time.Time, d time.Duration, origin float64, to []arc.Angle) {
	tw.from = nil
	tw.to = slices.Clone(to)
	tw.origin = origin
	tw.sweep = true
	tw.last = Sweep(to, origin, 0)
	tw.Start(now, d, Linear)
}

// Frame advances the tween and returns the angles for time now, together
// with the eased progress.  After completion the target angles are
// returned.
func (tw *Tween) Frame(now time.Time) ([]arc.Angle, float64, bool) {
	if !tw.Active() {
		return tw.Target(), 1, true
	}
	t, done := tw.Step(now)
	if done {
		tw.last = tw.Target()
		return tw.last, 1, true
	}
	if tw.sweep {
		tw.last = Sweep(tw.to, tw.origin, t)
	} else {
		tw.last = Morph(tw.from, tw.to, tw.base, t)
	}
	return tw.last, t, false
}

// Current returns the most recently computed frame.  While no transition
// is running, this equals the target.
func (tw *Tween) Current() []arc.Angle {
	if !tw.Active() {
		return tw.Target()
	}
	return slices.Clone(tw.last)
}

// Target returns the final angles of the current or most recent
// transition.
func (tw *Tween) Target() []arc.Angle {
	return slices.Clone(tw.to)
}

// Cancel stops the transition and returns the final angles, which the
// caller must apply before the next layout pass.
func (tw *Tween) Cancel() []arc.Angle {
	tw.Controller.Cancel()
	tw.last = tw.Target()
	return tw.last
}
