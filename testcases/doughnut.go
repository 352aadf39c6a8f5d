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

var doughnutCases = []TestCase{
	{
		Name:   "plain",
		Width:  400,
		Height: 400,
		Config: m{"series": m{"inner_radius": "40%"}},
		Rows:   values(24, 18, 12, 6),
	},
	{
		Name:   "center_label",
		Width:  400,
		Height: 400,
		Config: m{
			"series":       m{"inner_radius": "65%"},
			"center_label": m{"text": "Total\n60 units"},
		},
		Rows: values(24, 18, 12, 6),
	},
	{
		Name:   "pixel_radius",
		Width:  400,
		Height: 300,
		Config: m{"series": m{"radius": "120px", "inner_radius": "60px"}},
		Rows:   values(1, 2, 3),
	},
	{
		Name:   "half_doughnut",
		Width:  500,
		Height: 300,
		Config: m{"series": m{"inner_radius": "50%", "start_angle": 270, "end_angle": 90, "center": m{"y": "80%"}}},
		Rows:   values(3, 5, 2),
	},
}
