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

package surface

import "slices"

// Recorder is a surface which keeps all commands in memory.
type Recorder struct {
	Paths []PathCommand
	Rects []RectCommand
	Texts []TextCommand

	// IDs lists the element ids in drawing order.
	IDs []string
}

// Path implements Surface.
func (r *Recorder) Path(c PathCommand) {
	r.Paths = append(r.Paths, c)
	r.IDs = append(r.IDs, c.ID)
}

// Rect implements Surface.
func (r *Recorder) Rect(c RectCommand) {
	r.Rects = append(r.Rects, c)
	r.IDs = append(r.IDs, c.ID)
}

// Text implements Surface.
func (r *Recorder) Text(c TextCommand) {
	r.Texts = append(r.Texts, c)
	r.IDs = append(r.IDs, c.ID)
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.Paths = r.Paths[:0]
	r.Rects = r.Rects[:0]
	r.Texts = r.Texts[:0]
	r.IDs = r.IDs[:0]
}

// FindPath returns the path command with the given id.
func (r *Recorder) FindPath(id string) (PathCommand, bool) {
	for _, c := range r.Paths {
		if c.ID == id {
			return c, true
		}
	}
	return PathCommand{}, false
}

// FindRect returns the rectangle command with the given id.
func (r *Recorder) FindRect(id string) (RectCommand, bool) {
	for _, c := range r.Rects {
		if c.ID == id {
			return c, true
		}
	}
	return RectCommand{}, false
}

// FindText returns the text command with the given id.
func (r *Recorder) FindText(id string) (TextCommand, bool) {
	for _, c := range r.Texts {
		if c.ID == id {
			return c, true
		}
	}
	return TextCommand{}, false
}

// Has reports whether an element with the given id was drawn.
func (r *Recorder) Has(id string) bool {
	return slices.Contains(r.IDs, id)
}
