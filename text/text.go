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

// Package text provides text measurement, line splitting, wrapping and
// trimming for chart labels, legends and titles.
package text

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Font describes the typeface used to draw a piece of text.
type Font struct {
	Family string  `mapstructure:"family"`
	Size   float64 `mapstructure:"size"` // in pixels
	Weight string  `mapstructure:"weight"`
	Style  string  `mapstructure:"style"`
	Color  string  `mapstructure:"color"`
}

// IsBold reports whether the font weight denotes a bold face.
func (f Font) IsBold() bool {
	switch strings.ToLower(f.Weight) {
	case "bold", "bolder", "600", "700", "800", "900":
		return true
	}
	return false
}

// Size is the extent of a measured piece of text.
type Size struct {
	Width, Height float64
}

// Ellipsis is appended to trimmed text.
const Ellipsis = "..."

// LineBreak separates lines in label and title text.
const LineBreak = "<br>"

// ErrMeasure is returned by measurers which cannot determine text extents.
var ErrMeasure = errors.New("text measurement unavailable")

// Measurer determines the extent of a single line of text.
// Implementations must be deterministic.
type Measurer interface {
	Measure(s string, f Font) (Size, error)
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(s string, f Font) (Size, error)

// Measure implements Measurer.
func (fn MeasureFunc) Measure(s string, f Font) (Size, error) {
	return fn(s, f)
}

// Monospace is a Measurer in which every character has the same advance.
// Both values are given for a font size of 1 pixel and scale linearly.
// If Scale is false the values are used as they are, ignoring the font size.
type Monospace struct {
	Advance    float64
	LineHeight float64
	Scale      bool
}

// Measure implements Measurer.
func (m Monospace) Measure(s string, f Font) (Size, error) {
	n := float64(utf8.RuneCountInString(s))
	w, h := n*m.Advance, m.LineHeight
	if m.Scale {
		w *= f.Size
		h *= f.Size
	}
	return Size{Width: w, Height: h}, nil
}

// SafeMeasure wraps a measurer so that failures produce a zero size
// instead of an error.  Failures are logged at debug level.
type SafeMeasure struct {
	M   Measurer
	Log *zap.Logger
}

// Measure returns the size of s, or a zero size if measurement fails.
func (sm SafeMeasure) Measure(s string, f Font) Size {
	if sm.M == nil || s == "" {
		return Size{}
	}
	sz, err := sm.M.Measure(s, f)
	if err != nil {
		if sm.Log != nil {
			sm.Log.Debug("text measurement failed", zap.String("text", s), zap.Error(err))
		}
		return Size{}
	}
	return sz
}

// Lines measures each line of a multi-line text and returns the combined
// extent: the widest line and the sum of all line heights.
func (sm SafeMeasure) Lines(lines []string, f Font) Size {
	var res Size
	for _, l := range lines {
		sz := sm.Measure(l, f)
		if sz.Height == 0 && l == "" {
			sz.Height = sm.Measure("W", f).Height
		}
		res.Width = max(res.Width, sz.Width)
		res.Height += sz.Height
	}
	return res
}

// LineHeight returns the height of one line of text in font f.
func (sm SafeMeasure) LineHeight(f Font) float64 {
	return sm.Measure("W", f).Height
}

// SplitLines splits text at "<br>" markers (in any letter case).
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	lower := strings.ToLower(s)
	for {
		i := strings.Index(lower, LineBreak)
		if i < 0 {
			lines = append(lines, s)
			return lines
		}
		lines = append(lines, s[:i])
		s = s[i+len(LineBreak):]
		lower = lower[i+len(LineBreak):]
	}
}

// Trim shortens s so that it fits into width, appending an ellipsis when
// characters were removed.  If not even the first character fits together
// with the ellipsis, the result is the bare ellipsis.
func (sm SafeMeasure) Trim(s string, width float64, f Font) string {
	if sm.Measure(s, f).Width <= width {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		cand := strings.TrimRight(string(runes[:n]), " ") + Ellipsis
		if sm.Measure(cand, f).Width <= width {
			return cand
		}
	}
	return Ellipsis
}

// IsTrimmedAway reports whether trimming left nothing of the original
// text but the ellipsis.
func IsTrimmedAway(s string) bool {
	return s == "" || s == Ellipsis
}

// Wrap breaks s into lines no wider than width, breaking at spaces.
// Words which are wider than width on their own are trimmed.
func (sm SafeMeasure) Wrap(s string, width float64, f Font) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	cur := ""
	for _, w := range words {
		cand := w
		if cur != "" {
			cand = cur + " " + w
		}
		if sm.Measure(cand, f).Width <= width {
			cur = cand
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		cur = w
		if sm.Measure(cur, f).Width > width {
			lines = append(lines, sm.Trim(cur, width, f))
			cur = ""
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
