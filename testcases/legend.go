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

var legendCases = []TestCase{
	{
		Name:   "bottom",
		Width:  400,
		Height: 500,
		Config: m{"legend": m{"position": "Bottom"}},
		Rows:   values(5, 4, 3, 2, 1),
	},
	{
		Name:   "right_far",
		Width:  600,
		Height: 400,
		Config: m{"legend": m{"position": "Right", "alignment": "Far"}},
		Rows:   values(5, 4, 3, 2, 1),
	},
	{
		Name:   "left_rectangles",
		Width:  600,
		Height: 400,
		Config: m{"legend": m{"position": "Left", "shape": "Rectangle"}},
		Rows:   values(5, 4, 3),
	},
	{
		Name:   "top_diamonds",
		Width:  500,
		Height: 400,
		Config: m{"legend": m{"position": "Top", "shape": "Diamond", "background": "#eeeeee", "border": m{"width": 1, "color": "#cccccc"}}},
		Rows:   values(5, 4, 3),
	},
	{
		Name:   "paged",
		Width:  400,
		Height: 200,
		Config: m{"legend": m{"position": "Right"}},
		Rows:   values(20, 19, 18, 17, 16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1),
	},
	{
		Name:   "custom",
		Width:  500,
		Height: 400,
		Config: m{"legend": m{"position": "Custom", "x": 20, "y": 20, "width": "120px"}},
		Rows:   values(5, 4, 3),
	},
	{
		Name:   "hidden",
		Width:  300,
		Height: 300,
		Config: m{"legend": m{"visible": false}},
		Rows:   values(1, 2),
	},
}
