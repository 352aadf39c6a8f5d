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

package surface

import (
	"strconv"
	"strings"
)

// Kind identifies the type of chart element an id refers to.
type Kind int

// These are the element kinds.
const (
	KindUnknown Kind = iota
	KindBackground
	KindSlice
	KindLabel
	KindConnector
	KindBorder // hover border of a slice
	KindLegendShape
	KindLegendText
	KindLegendBackground
	KindLegendPrev
	KindLegendNext
	KindLegendPageText
	KindTitle
	KindSubtitle
	KindCenterLabel
	KindTooltip
)

// ElementID is the structured form of an element id.  Series and Point are
// only meaningful for kinds which refer to a point.
type ElementID struct {
	Chart  string
	Kind   Kind
	Series int
	Point  int
}

var pointSuffix = map[Kind]string{
	KindSlice:     "",
	KindLabel:     "_Text",
	KindConnector: "_Connector",
	KindBorder:    "_Border",
}

var legendPrefix = map[Kind]string{
	KindLegendShape: "_chart_legend_shape_",
	KindLegendText:  "_chart_legend_text_",
}

var fixedSuffix = map[Kind]string{
	KindBackground:       "_border",
	KindLegendBackground: "_chart_legend_element",
	KindLegendPrev:       "_chart_legend_pageup",
	KindLegendNext:       "_chart_legend_pagedown",
	KindLegendPageText:   "_chart_legend_pagenumber",
	KindTitle:            "_title",
	KindSubtitle:         "_subtitle",
	KindCenterLabel:      "_center_label",
	KindTooltip:          "_tooltip",
}

// String formats the id.  Slices are "<chart>_Series_<s>_Point_<p>", their
// labels, connectors and hover borders append "_Text", "_Connector" and
// "_Border".  Legend items are "<chart>_chart_legend_shape_<p>" and
// "<chart>_chart_legend_text_<p>".
func (id ElementID) String() string {
	if suffix, ok := pointSuffix[id.Kind]; ok {
		return id.Chart + "_Series_" + strconv.Itoa(id.Series) +
			"_Point_" + strconv.Itoa(id.Point) + suffix
	}
	if prefix, ok := legendPrefix[id.Kind]; ok {
		return id.Chart + prefix + strconv.Itoa(id.Point)
	}
	if suffix, ok := fixedSuffix[id.Kind]; ok {
		return id.Chart + suffix
	}
	return id.Chart
}

// PointID returns the id of an element belonging to point p of series s.
func PointID(chart string, kind Kind, s, p int) string {
	return ElementID{Chart: chart, Kind: kind, Series: s, Point: p}.String()
}

// ChartID returns the id of an element which exists once per chart.
func ChartID(chart string, kind Kind) string {
	return ElementID{Chart: chart, Kind: kind}.String()
}

// ParseID parses an element id produced by ElementID.String.
func ParseID(s string) (ElementID, bool) {
	if i := strings.LastIndex(s, "_Series_"); i > 0 {
		rest := s[i+len("_Series_"):]
		series, rest, ok := cutInt(rest)
		if !ok || !strings.HasPrefix(rest, "_Point_") {
			return ElementID{}, false
		}
		point, rest, ok := cutInt(rest[len("_Point_"):])
		if !ok {
			return ElementID{}, false
		}
		for kind, suffix := range pointSuffix {
			if rest == suffix {
				return ElementID{Chart: s[:i], Kind: kind, Series: series, Point: point}, true
			}
		}
		return ElementID{}, false
	}

	for kind, prefix := range legendPrefix {
		i := strings.LastIndex(s, prefix)
		if i <= 0 {
			continue
		}
		point, rest, ok := cutInt(s[i+len(prefix):])
		if ok && rest == "" {
			return ElementID{Chart: s[:i], Kind: kind, Point: point}, true
		}
	}
	for kind, suffix := range fixedSuffix {
		if chart, ok := strings.CutSuffix(s, suffix); ok && chart != "" {
			return ElementID{Chart: chart, Kind: kind}, true
		}
	}
	return ElementID{}, false
}

// cutInt splits a leading decimal integer off s.
func cutInt(s string) (int, string, bool) {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, s, false
	}
	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, s, false
	}
	return v, s[n:], true
}
