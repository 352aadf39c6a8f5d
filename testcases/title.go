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

var titleCases = []TestCase{
	{
		Name:   "top",
		Width:  400,
		Height: 400,
		Config: m{"title": m{"text": "Mobile Browser Statistics"}, "subtitle": m{"text": "In the year 2014"}},
		Rows:   values(37, 17, 19, 4),
	},
	{
		Name:   "left",
		Width:  500,
		Height: 400,
		Config: m{"title": m{"text": "Sales", "position": "Left"}},
		Rows:   values(1, 2, 3),
	},
	{
		Name:   "right_near",
		Width:  500,
		Height: 400,
		Config: m{"title": m{"text": "Sales", "position": "Right", "alignment": "Near"}},
		Rows:   values(1, 2, 3),
	},
	{
		Name:   "bottom_boxed",
		Width:  400,
		Height: 400,
		Config: m{"title": m{
			"text":       "Boxed title",
			"position":   "Bottom",
			"background": "#ffeecc",
			"border":     m{"width": 1, "color": "#aa8800"},
		}},
		Rows: values(1, 2, 3),
	},
	{
		Name:   "long_wrapped",
		Width:  300,
		Height: 400,
		Config: m{"title": m{"text": "A title which is much too long to fit onto a single line of this chart"}},
		Rows:   values(1, 2, 3),
	},
	{
		Name:   "long_trimmed",
		Width:  300,
		Height: 400,
		Config: m{"title": m{"text": "A title which is much too long to fit onto a single line of this chart", "text_overflow": "Trim"}},
		Rows:   values(1, 2, 3),
	},
}
