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

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/text"
)

func TestElementIDFormat(t *testing.T) {
	cases := []struct {
		id   ElementID
		want string
	}{
		{ElementID{Chart: "c1", Kind: KindSlice, Series: 0, Point: 3}, "c1_Series_0_Point_3"},
		{ElementID{Chart: "c1", Kind: KindLabel, Point: 3}, "c1_Series_0_Point_3_Text"},
		{ElementID{Chart: "c1", Kind: KindConnector, Point: 12}, "c1_Series_0_Point_12_Connector"},
		{ElementID{Chart: "c1", Kind: KindBorder, Point: 1}, "c1_Series_0_Point_1_Border"},
		{ElementID{Chart: "c1", Kind: KindLegendShape, Point: 2}, "c1_chart_legend_shape_2"},
		{ElementID{Chart: "c1", Kind: KindLegendText, Point: 2}, "c1_chart_legend_text_2"},
		{ElementID{Chart: "c1", Kind: KindTitle}, "c1_title"},
		{ElementID{Chart: "c1", Kind: KindSubtitle}, "c1_subtitle"},
		{ElementID{Chart: "c1", Kind: KindLegendNext}, "c1_chart_legend_pagedown"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, c.id.String())
			got, ok := ParseID(c.want)
			require.True(t, ok)
			assert.Equal(t, c.id, got)
		})
	}
}

func TestParseIDChartWithUnderscores(t *testing.T) {
	id, ok := ParseID("my_chart_Series_0_Point_4_Connector")
	require.True(t, ok)
	assert.Equal(t, "my_chart", id.Chart)
	assert.Equal(t, KindConnector, id.Kind)
	assert.Equal(t, 4, id.Point)
}

func TestParseIDInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"chart",
		"c_Series_x_Point_1",
		"c_Series_0_Point_",
		"c_Series_0_Point_1_Other",
		"c_chart_legend_shape_",
		"c_chart_legend_shape_1x",
		"_title",
	} {
		_, ok := ParseID(s)
		assert.False(t, ok, s)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Rect(RectCommand{ID: "bg", Rect: geometry.Rect{Width: 10, Height: 10}, Opacity: 1})
	r.Path(PathCommand{ID: "p", Shape: geometry.RectPath(geometry.Rect{Width: 1, Height: 1}, 0), Opacity: 1})
	r.Text(TextCommand{ID: "t", Lines: []string{"x"}, Opacity: 1})

	assert.Equal(t, []string{"bg", "p", "t"}, r.IDs)
	assert.True(t, r.Has("p"))
	_, ok := r.FindText("t")
	assert.True(t, ok)
	_, ok = r.FindPath("t")
	assert.False(t, ok)

	r.Reset()
	assert.Empty(t, r.IDs)
	assert.False(t, r.Has("p"))
}

func TestTextTop(t *testing.T) {
	c := TextCommand{Position: vec.Vec2{Y: 100}, Lines: []string{"a", "b"}, LineHeight: 10}
	assert.Equal(t, 100.0, c.Top())
	c.Baseline = BaselineMiddle
	assert.Equal(t, 90.0, c.Top())
}

func TestSVG(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSVG(buf, 200, 100)
	s.Rect(RectCommand{ID: "c_border", Rect: geometry.Rect{Width: 200, Height: 100}, Fill: "#ffffff", Opacity: 1})
	s.Path(PathCommand{
		ID:          "c_Series_0_Point_0",
		Shape:       geometry.Polyline(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}),
		Stroke:      "#000",
		StrokeWidth: 1.5,
		Dash:        []float64{2, 1},
		Opacity:     0.5,
	})
	s.Text(TextCommand{
		ID:         "c_title",
		Position:   vec.Vec2{X: 100, Y: 10},
		Lines:      []string{"Sales & <Cost>"},
		LineHeight: 12,
		Font:       text.Font{Family: "Segoe UI", Size: 15, Weight: "Bold", Color: "#212121"},
		Anchor:     AnchorMiddle,
		Rotation:   -90,
		Opacity:    1,
	})
	s.Path(PathCommand{ID: "empty"})
	s.Close()

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `id="c_border"`)
	assert.Contains(t, out, `id="c_Series_0_Point_0"`)
	assert.Contains(t, out, "stroke-dasharray:2,1")
	assert.Contains(t, out, "opacity:0.5")
	assert.Contains(t, out, `transform="translate(100,10) rotate(-90)"`)
	assert.Contains(t, out, "Sales &amp; &lt;Cost&gt;")
	assert.Contains(t, out, "font-weight:bold")
	assert.Contains(t, out, "text-anchor:middle")
	assert.NotContains(t, out, `id="empty"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}
