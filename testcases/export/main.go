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

// Command export writes the computed layout of every test case to JSON,
// for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"math"
	"os"
	"slices"

	"seehuhn.de/go/pie"
	"seehuhn.de/go/pie/geometry"
	"seehuhn.de/go/pie/testcases"
	"seehuhn.de/go/pie/text"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	m := text.Monospace{Advance: 0.55, LineHeight: 1.2, Scale: true}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			cfg, err := tc.Resolve()
			if err != nil {
				panic(err)
			}
			c := pie.New(cfg, tc.Rows, pie.WithID(category+"_"+tc.Name), pie.WithMeasurer(m))
			out.TestCases = append(out.TestCases, toJSON(c))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/layouts.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name        string      `json:"name"`
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	Center      [2]float64  `json:"center"`
	Radius      float64     `json:"radius"`
	InnerRadius float64     `json:"inner_radius,omitempty"`
	PlotArea    [4]float64  `json:"plot_area"`
	Legend      *[4]float64 `json:"legend,omitempty"`
	LegendPages int         `json:"legend_pages,omitempty"`
	Title       []string    `json:"title,omitempty"`
	Points      []jsonPoint `json:"points"`
}

type jsonPoint struct {
	X          string      `json:"x"`
	Y          *float64    `json:"y"`
	Visible    bool        `json:"visible"`
	Percentage float64     `json:"percentage"`
	Start      float64     `json:"start"`
	End        float64     `json:"end"`
	Radius     float64     `json:"radius"`
	Label      []string    `json:"label,omitempty"`
	LabelBox   *[4]float64 `json:"label_box,omitempty"`
}

func toJSON(c *pie.Chart) jsonTestCase {
	L := c.Layout()
	cfg := c.Config()
	jtc := jsonTestCase{
		Name:        c.ID(),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Center:      [2]float64{L.Base.Center.X, L.Base.Center.Y},
		Radius:      L.Base.Radius,
		InnerRadius: L.Base.InnerRadius,
		PlotArea:    rect(L.PlotArea),
	}
	if L.Legend != nil && !L.Legend.Bounds.IsEmpty() {
		r := rect(L.Legend.Bounds)
		jtc.Legend = &r
		jtc.LegendPages = L.Legend.Pages
	}
	if L.Title.Visible {
		jtc.Title = L.Title.Lines
	}

	labels := make(map[int]int)
	for i, pl := range L.Labels {
		if pl.Visible {
			labels[pl.Index] = i
		}
	}
	for _, p := range c.Points() {
		jp := jsonPoint{
			X:          p.Name(),
			Visible:    p.Visible,
			Percentage: p.Percentage,
			Start:      p.StartAngle,
			End:        p.EndAngle,
			Radius:     p.Radius,
		}
		if !math.IsNaN(p.Y) {
			y := p.Y
			jp.Y = &y
		}
		if i, ok := labels[p.Index]; ok {
			pl := L.Labels[i]
			r := rect(pl.Region)
			jp.Label = pl.Lines
			jp.LabelBox = &r
		}
		jtc.Points = append(jtc.Points, jp)
	}
	return jtc
}

func rect(r geometry.Rect) [4]float64 {
	return [4]float64{r.X, r.Y, r.Width, r.Height}
}
