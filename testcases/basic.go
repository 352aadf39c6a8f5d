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

var basicCases = []TestCase{
	{
		Name:   "two_slices",
		Width:  400,
		Height: 300,
		Rows:   values(10, 30),
	},
	{
		Name:   "six_slices",
		Width:  600,
		Height: 450,
		Rows:   named("Chrome", 37, "UC Browser", 17, "iPhone", 19, "Others", 4, "Opera", 11, "Android", 12),
	},
	{
		Name:   "semi_circle",
		Width:  600,
		Height: 400,
		Config: m{"series": m{"start_angle": 270, "end_angle": 90}},
		Rows:   values(5, 3, 2, 7, 1),
	},
	{
		Name:   "rotated",
		Width:  300,
		Height: 300,
		Config: m{"series": m{"start_angle": 45, "radius": "90%"}},
		Rows:   values(1, 1, 1, 1),
	},
	{
		Name:   "explode_index",
		Width:  500,
		Height: 400,
		Config: m{"series": m{"explode": true, "explode_index": 1, "explode_offset": "15%"}},
		Rows:   values(30, 20, 25, 25),
	},
	{
		Name:   "radius_mapping",
		Width:  500,
		Height: 400,
		Config: m{"series": m{"radius_mapping": "r"}},
		Rows: []map[string]any{
			{"x": "A", "y": 10, "r": "100%"},
			{"x": "B", "y": 20, "r": "80%"},
			{"x": "C", "y": 30, "r": "60%"},
		},
	},
	{
		Name:   "border_and_corners",
		Width:  400,
		Height: 400,
		Config: m{
			"background": "#f5f5f5",
			"border":     m{"width": 2, "color": "#999999"},
			"series": m{
				"corner_radius": 6,
				"border":        m{"width": 2, "color": "#ffffff", "dash": []float64{4, 2}},
			},
		},
		Rows: values(4, 3, 2, 1),
	},
	{
		Name:   "single_point",
		Width:  200,
		Height: 200,
		Rows:   values(42),
	},
}
