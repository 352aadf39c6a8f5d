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

import "math"

var emptyCases = []TestCase{
	{
		Name:   "no_rows",
		Width:  300,
		Height: 300,
	},
	{
		Name:   "zero_sum",
		Width:  300,
		Height: 300,
		Rows:   values(0, 0, 0),
	},
	{
		Name:   "gap",
		Width:  300,
		Height: 300,
		Rows:   values(3, math.NaN(), 5),
	},
	{
		Name:   "average",
		Width:  300,
		Height: 300,
		Config: m{"series": m{"empty_point": m{"mode": "Average", "fill": "#cccccc"}}},
		Rows:   named("A", 2, "B", nil, "C", 4),
	},
	{
		Name:   "negative",
		Width:  300,
		Height: 300,
		Rows:   values(-5, 5, 10),
	},
	{
		Name:   "tiny",
		Width:  30,
		Height: 20,
		Config: m{"title": m{"text": "Does not fit"}},
		Rows:   values(1, 2),
	},
}
