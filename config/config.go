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

// Package config defines the configuration tree of a pie or doughnut chart.
//
// A sparse configuration, as read from a file or built in code, is merged
// over the full set of defaults once, by [Resolve].  The layout packages
// then consume the fully populated value without checking for missing
// settings.
package config

import (
	"time"

	"seehuhn.de/go/pie/text"
)

// Chart is the complete configuration of one chart.
type Chart struct {
	// ID prefixes all element identifiers.  An empty ID is replaced by a
	// random UUID when the chart is created.
	ID string `mapstructure:"id"`

	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	Margin     Margin `mapstructure:"margin"`
	Background string `mapstructure:"background"`
	Border     Border `mapstructure:"border"`

	// Palette supplies point colours, cycled by point index, for points
	// without a colour mapping.
	Palette []string `mapstructure:"palette"`

	// EnableSmartLabels moves overlapping data labels apart.
	EnableSmartLabels bool `mapstructure:"enable_smart_labels"`

	Title       Title       `mapstructure:"title"`
	Subtitle    Title       `mapstructure:"subtitle"`
	Legend      Legend      `mapstructure:"legend"`
	Tooltip     Tooltip     `mapstructure:"tooltip"`
	CenterLabel CenterLabel `mapstructure:"center_label"`
	Series      Series      `mapstructure:"series"`
	Animation   Animation   `mapstructure:"animation"`
}

// Margin is the space between the chart border and its content.
type Margin struct {
	Left   float64 `mapstructure:"left"`
	Right  float64 `mapstructure:"right"`
	Top    float64 `mapstructure:"top"`
	Bottom float64 `mapstructure:"bottom"`
}

// Border describes an outline.
type Border struct {
	Width float64   `mapstructure:"width"`
	Color string    `mapstructure:"color"`
	Dash  []float64 `mapstructure:"dash"`
}

// EmptyPointMode selects how points without a numeric value are treated.
type EmptyPointMode string

// The supported empty point modes.  Any other value hides empty points.
const (
	EmptyGap     EmptyPointMode = "Gap"
	EmptyZero    EmptyPointMode = "Zero"
	EmptyDrop    EmptyPointMode = "Drop"
	EmptyAverage EmptyPointMode = "Average"
)

// EmptyPoint configures empty point handling.
type EmptyPoint struct {
	Mode EmptyPointMode `mapstructure:"mode"`
	Fill string         `mapstructure:"fill"`
}

// GroupMode selects how small slices are chosen for grouping.
type GroupMode string

// The supported grouping modes.
const (
	// GroupByValue groups points whose absolute value is at most the
	// threshold.
	GroupByValue GroupMode = "Value"

	// GroupByPoint groups all points whose index is at least the
	// threshold.
	GroupByPoint GroupMode = "Point"
)

// Center locates the pie centre, in pixels or as a percentage of the
// available area.
type Center struct {
	X string `mapstructure:"x"`
	Y string `mapstructure:"y"`
}

// Series configures the pie series.
type Series struct {
	Name string `mapstructure:"name"`

	// Field names in the source rows.
	XName             string `mapstructure:"x_name"`
	YName             string `mapstructure:"y_name"`
	PointColorMapping string `mapstructure:"point_color_mapping"`
	RadiusMapping     string `mapstructure:"radius_mapping"`

	StartAngle float64 `mapstructure:"start_angle"`
	EndAngle   float64 `mapstructure:"end_angle"`

	// Radius is the outer radius, in pixels or as a percentage of half the
	// smaller side of the available area.  InnerRadius is in pixels or a
	// percentage of the outer radius.  A non-zero inner radius turns the
	// pie into a doughnut.
	Radius      string `mapstructure:"radius"`
	InnerRadius string `mapstructure:"inner_radius"`
	Center      Center `mapstructure:"center"`

	Explode       bool   `mapstructure:"explode"`
	ExplodeAll    bool   `mapstructure:"explode_all"`
	ExplodeIndex  int    `mapstructure:"explode_index"` // -1 for none
	ExplodeOffset string `mapstructure:"explode_offset"`

	EmptyPoint EmptyPoint `mapstructure:"empty_point"`

	// GroupTo is the grouping threshold: a number, or for GroupByValue a
	// percentage of the total such as "10%".  Empty disables grouping.
	GroupTo   string    `mapstructure:"group_to"`
	GroupMode GroupMode `mapstructure:"group_mode"`
	GroupName string    `mapstructure:"group_name"`

	CornerRadius float64 `mapstructure:"corner_radius"`
	Border       Border  `mapstructure:"border"`
	Opacity      float64 `mapstructure:"opacity"`
	Visible      bool    `mapstructure:"visible"`

	DataLabel DataLabel `mapstructure:"data_label"`
}

// LabelPosition places data labels inside or outside their slice.
type LabelPosition string

// The supported label positions.
const (
	Inside  LabelPosition = "Inside"
	Outside LabelPosition = "Outside"
)

// ConnectorType selects the shape of label connector lines.
type ConnectorType string

// The supported connector shapes.
const (
	ConnectorLine  ConnectorType = "Line"
	ConnectorCurve ConnectorType = "Curve"
)

// Connector configures the line joining an outside label to its slice.
type Connector struct {
	Type   ConnectorType `mapstructure:"type"`
	Length string        `mapstructure:"length"` // pixels or percentage of the radius
	Width  float64       `mapstructure:"width"`
	Color  string        `mapstructure:"color"`
	Dash   []float64     `mapstructure:"dash"`
}

// TextWrap selects how over-long labels are shortened.
type TextWrap string

// The supported wrap modes.
const (
	WrapNormal TextWrap = "Normal" // trim with an ellipsis
	WrapWrap   TextWrap = "Wrap"   // break at spaces
)

// DataLabel configures the labels drawn for each data point.
type DataLabel struct {
	Visible bool   `mapstructure:"visible"`
	Name    string `mapstructure:"name"` // field holding the label text

	Position LabelPosition `mapstructure:"position"`
	Font     text.Font     `mapstructure:"font"`

	// Format is a template using ${point.x}, ${point.y},
	// ${point.percentage} and ${point.text}.
	Format string `mapstructure:"format"`

	Fill      string    `mapstructure:"fill"`
	Border    Border    `mapstructure:"border"`
	Rx        float64   `mapstructure:"rx"`
	Connector Connector `mapstructure:"connector"`

	MaxWidth float64  `mapstructure:"max_width"`
	TextWrap TextWrap `mapstructure:"text_wrap"`
}

// Alignment positions legends and titles along the chart edge they are
// attached to.
type Alignment string

// The alignment values.  Near and Far are valid for every orientation;
// Left and Right only apply to horizontal legends, Top and Bottom only to
// vertical ones.
const (
	AlignNear   Alignment = "Near"
	AlignCenter Alignment = "Center"
	AlignFar    Alignment = "Far"
	AlignLeft   Alignment = "Left"
	AlignRight  Alignment = "Right"
	AlignTop    Alignment = "Top"
	AlignBottom Alignment = "Bottom"
)

// Position attaches a legend or title to a side of the chart.
type Position string

// The position values.
const (
	PositionAuto   Position = "Auto"
	PositionTop    Position = "Top"
	PositionBottom Position = "Bottom"
	PositionLeft   Position = "Left"
	PositionRight  Position = "Right"
	PositionCustom Position = "Custom"
)

// Legend configures the legend.
type Legend struct {
	Visible   bool      `mapstructure:"visible"`
	Position  Position  `mapstructure:"position"`
	Alignment Alignment `mapstructure:"alignment"`

	// X and Y locate the legend for PositionCustom.
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`

	// Width and Height limit the legend, in pixels or as a percentage of
	// the chart size.  Empty means automatic.
	Width  string `mapstructure:"width"`
	Height string `mapstructure:"height"`

	Shape        string  `mapstructure:"shape"` // Circle, Rectangle or Diamond
	ShapeWidth   float64 `mapstructure:"shape_width"`
	ShapeHeight  float64 `mapstructure:"shape_height"`
	ShapePadding float64 `mapstructure:"shape_padding"`
	ItemPadding  float64 `mapstructure:"item_padding"`
	Padding      float64 `mapstructure:"padding"`

	EnablePages      bool `mapstructure:"enable_pages"`
	ToggleVisibility bool `mapstructure:"toggle_visibility"`
	Reverse          bool `mapstructure:"reverse"`

	Font       text.Font `mapstructure:"font"`
	Border     Border    `mapstructure:"border"`
	Background string    `mapstructure:"background"`
}

// Tooltip configures the tooltip shown for the hovered point.
type Tooltip struct {
	Enable bool `mapstructure:"enable"`

	// Format and Header use the data label placeholders plus
	// ${series.name}.
	Format string `mapstructure:"format"`
	Header string `mapstructure:"header"`

	Font    text.Font `mapstructure:"font"`
	Fill    string    `mapstructure:"fill"`
	Opacity float64   `mapstructure:"opacity"`
}

// Overflow selects how titles wider than the chart are handled.
type Overflow string

// The overflow values.
const (
	OverflowWrap Overflow = "Wrap"
	OverflowTrim Overflow = "Trim"
	OverflowNone Overflow = "None"
)

// Title configures the title or subtitle.
type Title struct {
	Text      string    `mapstructure:"text"`
	Font      text.Font `mapstructure:"font"`
	Position  Position  `mapstructure:"position"`
	Alignment Alignment `mapstructure:"alignment"`

	TextOverflow Overflow `mapstructure:"text_overflow"`

	// X and Y locate the title for PositionCustom.
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`

	Border     Border  `mapstructure:"border"`
	Background string  `mapstructure:"background"`
	Padding    float64 `mapstructure:"padding"`
}

// CenterLabel configures the text in the hole of a doughnut.
type CenterLabel struct {
	Text string `mapstructure:"text"`

	// HoverTextFormat replaces the text while a point is hovered.
	HoverTextFormat string    `mapstructure:"hover_text_format"`
	Font            text.Font `mapstructure:"font"`
}

// Animation configures the initial sweep and update transitions.
type Animation struct {
	Enable   bool    `mapstructure:"enable"`
	Duration float64 `mapstructure:"duration"` // milliseconds
	Delay    float64 `mapstructure:"delay"`    // milliseconds
}

// DurationValue returns the animation duration.
func (a Animation) DurationValue() time.Duration {
	return time.Duration(a.Duration * float64(time.Millisecond))
}

// DelayValue returns the delay before the initial animation starts.
func (a Animation) DelayValue() time.Duration {
	return time.Duration(a.Delay * float64(time.Millisecond))
}

// IsDoughnut reports whether the series has an inner radius.
func (s Series) IsDoughnut() bool {
	v := s.InnerRadius
	return v != "" && v != "0" && v != "0%" && v != "0px"
}
