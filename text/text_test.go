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

package text

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// proportional gives letters a width of 60/7 and dots a width of 2, so that
// "Revenue" is 60 pixels wide.
var proportional = MeasureFunc(func(s string, f Font) (Size, error) {
	w := 0.0
	for _, r := range s {
		if r == '.' {
			w += 2
		} else {
			w += 60.0 / 7
		}
	}
	return Size{Width: w, Height: 12}, nil
})

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitLines("a<br>b<BR>c"))
	assert.Equal(t, []string{"single"}, SplitLines("single"))
	assert.Equal(t, []string{"", "x"}, SplitLines("<br>x"))
	assert.Nil(t, SplitLines(""))
}

func TestTrimRevenue(t *testing.T) {
	sm := SafeMeasure{M: proportional}
	f := Font{Size: 12}

	require.InDelta(t, 60, sm.Measure("Revenue", f).Width, 1e-9)
	assert.Equal(t, "Rev...", sm.Trim("Revenue", 40, f))
	assert.Equal(t, "Revenue", sm.Trim("Revenue", 60, f))

	trimmed := sm.Trim("Revenue", 10, f)
	assert.Equal(t, Ellipsis, trimmed)
	assert.True(t, IsTrimmedAway(trimmed))
}

func TestWrap(t *testing.T) {
	sm := SafeMeasure{M: Monospace{Advance: 10, LineHeight: 12}}
	f := Font{}
	lines := sm.Wrap("alpha beta gamma", 110, f)
	assert.Equal(t, []string{"alpha beta", "gamma"}, lines)

	lines = sm.Wrap("extraordinarily long", 60, f)
	require.Len(t, lines, 2)
	assert.Equal(t, "ext...", lines[0])
	assert.Equal(t, "long", lines[1])
	for _, l := range lines {
		assert.LessOrEqual(t, float64(utf8.RuneCountInString(l))*10, 60.0)
	}
}

func TestSafeMeasureFailure(t *testing.T) {
	failing := MeasureFunc(func(string, Font) (Size, error) {
		return Size{}, ErrMeasure
	})
	sm := SafeMeasure{M: failing}
	assert.Equal(t, Size{}, sm.Measure("abc", Font{}))
	assert.Equal(t, Size{}, SafeMeasure{}.Measure("abc", Font{}))
}

func TestMonospaceScale(t *testing.T) {
	m := Monospace{Advance: 0.5, LineHeight: 1.2, Scale: true}
	sz, err := m.Measure("abcd", Font{Size: 10})
	require.NoError(t, err)
	assert.InDelta(t, 20, sz.Width, 1e-9)
	assert.InDelta(t, 12, sz.Height, 1e-9)
}

func TestLinesExtent(t *testing.T) {
	sm := SafeMeasure{M: Monospace{Advance: 5, LineHeight: 10}}
	sz := sm.Lines([]string{"ab", "abcd", ""}, Font{})
	assert.Equal(t, Size{Width: 20, Height: 30}, sz)
}

func TestFaceMeasurer(t *testing.T) {
	m, err := NewFaceMeasurer()
	require.NoError(t, err)

	small, err := m.Measure("Revenue", Font{Size: 10})
	require.NoError(t, err)
	large, err := m.Measure("Revenue", Font{Size: 20})
	require.NoError(t, err)
	bold, err := m.Measure("Revenue", Font{Size: 20, Weight: "Bold"})
	require.NoError(t, err)

	assert.Greater(t, small.Width, 0.0)
	assert.Greater(t, large.Width, small.Width)
	assert.Greater(t, large.Height, small.Height)
	assert.GreaterOrEqual(t, bold.Width, large.Width)

	again, _ := m.Measure("Revenue", Font{Size: 10})
	assert.Equal(t, small, again, "measurement must be deterministic")

	wide, _ := m.Measure(strings.Repeat("W", 10), Font{Size: 10})
	narrow, _ := m.Measure(strings.Repeat("i", 10), Font{Size: 10})
	assert.Greater(t, wide.Width, narrow.Width)

	var nilMeasurer *FaceMeasurer
	_, err = nilMeasurer.Measure("x", Font{})
	assert.ErrorIs(t, err, ErrMeasure)
}
