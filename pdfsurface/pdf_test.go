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

package pdfsurface

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/surface"
)

func TestPage(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "chart.pdf")
	page, err := Create(fileName, 200, 100, nil)
	require.NoError(t, err)

	slice := geometry.Slice{Center: vec.Vec2{X: 50, Y: 50}, Radius: 40, Start: -90, Span: 120}
	page.Path(surface.PathCommand{ID: "s0", Shape: slice.Path(), Fill: "#ff0000", Stroke: "white", StrokeWidth: 1, Opacity: 1})
	page.Path(surface.PathCommand{ID: "s1", Shape: slice.Path(), Fill: "#00ff0080", Opacity: 1})
	page.Path(surface.PathCommand{ID: "hidden", Shape: slice.Path(), Fill: "none", Opacity: 1})
	page.Rect(surface.RectCommand{ID: "bg", Rect: geometry.Rect{X: 120, Y: 10, Width: 60, Height: 20}, Fill: "#eeeeee", Radius: 4, Opacity: 0.5})
	page.Path(surface.PathCommand{
		ID:          "conn",
		Shape:       geometry.Polyline(vec.Vec2{X: 90, Y: 50}, vec.Vec2{X: 110, Y: 30}, vec.Vec2{X: 120, Y: 30}),
		Stroke:      "#333",
		StrokeWidth: 1,
		Dash:        []float64{2, 1},
		Opacity:     1,
	})
	page.Text(surface.TextCommand{ID: "t", Lines: []string{"A"}})
	page.Text(surface.TextCommand{ID: "empty"})
	require.NoError(t, page.Close())
	assert.Equal(t, 1, page.SkippedText)

	body, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
	assert.Contains(t, string(body), "%%EOF")
}

func TestCreateFailure(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "chart.pdf"), 10, 10, nil)
	assert.Error(t, err)
}
