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

var labelCases = []TestCase{
	{
		Name:   "inside",
		Width:  400,
		Height: 400,
		Config: m{"series": m{"data_label": m{"visible": true}}},
		Rows:   values(10, 20, 30, 40),
	},
	{
		Name:   "outside_line",
		Width:  600,
		Height: 450,
		Config: m{"series": m{"data_label": m{
			"visible":  true,
			"position": "Outside",
			"name":     "text",
			"format":   "${point.text}: ${point.percentage}%",
		}}},
		Rows: []map[string]any{
			{"x": "Chrome", "y": 37, "text": "Chrome"},
			{"x": "UC", "y": 17, "text": "UC Browser"},
			{"x": "iPhone", "y": 19, "text": "iPhone"},
			{"x": "Others", "y": 4, "text": "Others"},
			{"x": "Opera", "y": 11, "text": "Opera"},
		},
	},
	{
		Name:   "outside_curve",
		Width:  600,
		Height: 450,
		Config: m{"series": m{"data_label": m{
			"visible":   true,
			"position":  "Outside",
			"connector": m{"type": "Curve", "length": "20px", "color": "#555555"},
		}}},
		Rows: values(1, 1, 2, 3, 5, 8, 13),
	},
	{
		Name:   "crowded",
		Width:  400,
		Height: 300,
		Config: m{"series": m{"data_label": m{"visible": true, "position": "Outside"}}},
		Rows:   values(60, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1),
	},
	{
		Name:   "wrapped",
		Width:  500,
		Height: 400,
		Config: m{"series": m{"data_label": m{
			"visible":   true,
			"position":  "Outside",
			"format":    "${point.x} has a rather long label",
			"max_width": 80,
			"text_wrap": "Wrap",
		}}},
		Rows: values(3, 2, 1),
	},
	{
		Name:   "boxed",
		Width:  400,
		Height: 400,
		Config: m{"series": m{"data_label": m{
			"visible": true,
			"fill":    "#ffffff",
			"border":  m{"width": 1, "color": "#333333"},
			"font":    m{"color": "#000000"},
		}}},
		Rows: values(2, 3, 5),
	},
}
