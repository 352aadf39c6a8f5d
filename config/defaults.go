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

package config

import (
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"

	"seehuhn.de/go/pie/text"
)

// DefaultPalette is used when no palette is configured.
var DefaultPalette = []string{
	"#00bdae", "#404041", "#357cd2", "#e56590", "#f8b883",
	"#70ad47", "#dd8abd", "#7f84e8", "#7bb4eb", "#ea7a57",
}

// Default returns the fully populated default configuration.
func Default() Chart {
	labelFont := text.Font{Family: "Segoe UI", Size: 12, Weight: "Normal", Color: "#212121"}
	return Chart{
		Width:   600,
		Height:  450,
		Margin:  Margin{Left: 10, Right: 10, Top: 10, Bottom: 10},
		Border:  Border{Width: 0, Color: "#DDDDDD"},
		Palette: slices.Clone(DefaultPalette),

		EnableSmartLabels: true,

		Title: Title{
			Font:         text.Font{Family: "Segoe UI", Size: 15, Weight: "Bold", Color: "#212121"},
			Position:     PositionTop,
			Alignment:    AlignCenter,
			TextOverflow: OverflowWrap,
			Padding:      5,
		},
		Subtitle: Title{
			Font:         text.Font{Family: "Segoe UI", Size: 12, Weight: "Normal", Color: "#616161"},
			Position:     PositionTop,
			Alignment:    AlignCenter,
			TextOverflow: OverflowWrap,
			Padding:      5,
		},
		Legend: Legend{
			Visible:          true,
			Position:         PositionAuto,
			Alignment:        AlignCenter,
			Shape:            "Circle",
			ShapeWidth:       10,
			ShapeHeight:      10,
			ShapePadding:     8,
			ItemPadding:      8,
			Padding:          8,
			EnablePages:      true,
			ToggleVisibility: true,
			Font:             text.Font{Family: "Segoe UI", Size: 13, Weight: "Normal", Color: "#49454e"},
		},
		Tooltip: Tooltip{
			Enable:  false,
			Format:  "${point.x} : ${point.y}",
			Header:  "${series.name}",
			Font:    text.Font{Family: "Segoe UI", Size: 12, Color: "#dbdbdb"},
			Fill:    "#000816",
			Opacity: 0.75,
		},
		CenterLabel: CenterLabel{
			Font: text.Font{Family: "Segoe UI", Size: 15, Weight: "Normal", Color: "#212121"},
		},
		Series: Series{
			Name:          "Series 1",
			XName:         "x",
			YName:         "y",
			StartAngle:    0,
			EndAngle:      360,
			Radius:        "80%",
			InnerRadius:   "0",
			Center:        Center{X: "50%", Y: "50%"},
			ExplodeIndex:  -1,
			ExplodeOffset: "30%",
			EmptyPoint:    EmptyPoint{Mode: EmptyGap},
			GroupMode:     GroupByValue,
			GroupName:     "Others",
			Border:        Border{Width: 0, Color: "#ffffff"},
			Opacity:       1,
			Visible:       true,
			DataLabel: DataLabel{
				Visible:  false,
				Position: Inside,
				Font:     labelFont,
				Border:   Border{Width: 0.1, Color: ""},
				Rx:       5,
				Connector: Connector{
					Type:   ConnectorLine,
					Length: "4%",
					Width:  1,
				},
				TextWrap: WrapNormal,
			},
		},
		Animation: Animation{
			Enable:   true,
			Duration: 1000,
		},
	}
}

// Resolve decodes the sparse configuration tree over a copy of defaults and
// normalises the result.  Keys are matched case-insensitively and with
// underscores ignored, so that both "start_angle" and "startAngle" set
// Series.StartAngle.  Values are converted weakly, for example the string
// "30" sets a numeric field.
func Resolve(sparse map[string]any, defaults Chart) (Chart, error) {
	cfg := defaults.clone()

	// Lists replace the default list rather than overwriting a prefix.
	for k := range sparse {
		if matchName(k, "palette") {
			cfg.Palette = nil
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		MatchName:        matchName,
	})
	if err != nil {
		return Chart{}, errors.Wrap(err, "creating config decoder")
	}
	if err := dec.Decode(sparse); err != nil {
		return Chart{}, errors.Wrap(err, "decoding chart config")
	}
	cfg.normalize()
	return cfg, nil
}

func matchName(key, field string) bool {
	strip := func(s string) string {
		return strings.ReplaceAll(strings.ReplaceAll(s, "_", ""), "-", "")
	}
	return strings.EqualFold(strip(key), strip(field))
}

func (c Chart) clone() Chart {
	c.Palette = slices.Clone(c.Palette)
	c.Border.Dash = slices.Clone(c.Border.Dash)
	c.Series.Border.Dash = slices.Clone(c.Series.Border.Dash)
	c.Series.DataLabel.Border.Dash = slices.Clone(c.Series.DataLabel.Border.Dash)
	c.Series.DataLabel.Connector.Dash = slices.Clone(c.Series.DataLabel.Connector.Dash)
	c.Legend.Border.Dash = slices.Clone(c.Legend.Border.Dash)
	c.Title.Border.Dash = slices.Clone(c.Title.Border.Dash)
	c.Subtitle.Border.Dash = slices.Clone(c.Subtitle.Border.Dash)
	return c
}

// normalize replaces out-of-range values by their defaults.
func (c *Chart) normalize() {
	if len(c.Palette) == 0 {
		c.Palette = slices.Clone(DefaultPalette)
	}
	c.Width = max(c.Width, 0)
	c.Height = max(c.Height, 0)

	s := &c.Series
	if s.GroupName == "" {
		s.GroupName = "Others"
	}
	switch s.GroupMode {
	case GroupByValue, GroupByPoint:
	default:
		s.GroupMode = GroupByValue
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		s.Opacity = 1
	}
	s.CornerRadius = max(s.CornerRadius, 0)

	dl := &s.DataLabel
	switch dl.Position {
	case Inside, Outside:
	default:
		dl.Position = Inside
	}
	switch dl.Connector.Type {
	case ConnectorLine, ConnectorCurve:
	default:
		dl.Connector.Type = ConnectorLine
	}
	switch dl.TextWrap {
	case WrapNormal, WrapWrap:
	default:
		dl.TextWrap = WrapNormal
	}

	switch c.Legend.Position {
	case PositionAuto, PositionTop, PositionBottom, PositionLeft, PositionRight, PositionCustom:
	default:
		c.Legend.Position = PositionAuto
	}
	for _, t := range []*Title{&c.Title, &c.Subtitle} {
		switch t.Position {
		case PositionTop, PositionBottom, PositionLeft, PositionRight, PositionCustom:
		default:
			t.Position = PositionTop
		}
		switch t.TextOverflow {
		case OverflowWrap, OverflowTrim, OverflowNone:
		default:
			t.TextOverflow = OverflowWrap
		}
	}

	c.Animation.Duration = max(c.Animation.Duration, 0)
	c.Animation.Delay = max(c.Animation.Delay, 0)
}
