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

package testcases

import (
	"seehuhn.de/go/pie/config"
	"seehuhn.de/go/pie/data"
)

// TestCase defines a single chart scenario.
type TestCase struct {
	Name   string // lowercase a-z and _ only
	Width  int    // chart width in pixels
	Height int    // chart height in pixels

	// Config is a sparse configuration, merged over the defaults.
	Config map[string]any
	Rows   []data.Row
}

// Resolve returns the full configuration of the test case.  Animation is
// switched off, so that a chart built from the result shows its final
// layout straight away.
func (tc TestCase) Resolve() (config.Chart, error) {
	defaults := config.Default()
	defaults.Animation.Enable = false
	defaults.Width = float64(tc.Width)
	defaults.Height = float64(tc.Height)
	return config.Resolve(tc.Config, defaults)
}

// values builds rows with categories "A", "B", ... and the given values.
func values(ys ...float64) []data.Row {
	rows := make([]data.Row, len(ys))
	for i, y := range ys {
		rows[i] = data.Row{"x": string(rune('A' + i%26)), "y": y}
	}
	return rows
}

// named builds rows from alternating category names and values.
func named(pairs ...any) []data.Row {
	var rows []data.Row
	for i := 0; i+1 < len(pairs); i += 2 {
		rows = append(rows, data.Row{"x": pairs[i], "y": pairs[i+1]})
	}
	return rows
}

// m is shorthand for a sparse configuration node.
type m = map[string]any
