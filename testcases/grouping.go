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

var groupingCases = []TestCase{
	{
		Name:   "by_value",
		Width:  500,
		Height: 400,
		Config: m{"series": m{"group_to": "10", "explode": true}},
		Rows:   values(50, 5, 60, 8, 3),
	},
	{
		Name:   "by_percentage",
		Width:  500,
		Height: 400,
		Config: m{"series": m{"group_to": "5%", "group_name": "Rest"}},
		Rows:   values(40, 30, 20, 4, 3, 2, 1),
	},
	{
		Name:   "by_point",
		Width:  500,
		Height: 400,
		Config: m{"series": m{"group_to": "3", "group_mode": "Point"}},
		Rows:   values(9, 8, 7, 6, 5, 4),
	},
}
