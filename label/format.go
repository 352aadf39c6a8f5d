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

package label

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"seehuhn.de/go/pie/data"
	"seehuhn.de/go/pie/geometry"
)

// Formatter computes the label text of a point.  Errors and panics are
// caught; the unformatted value is used instead.
type Formatter func(p *data.Point) (string, error)

// Expand replaces the placeholders ${point.x}, ${point.y},
// ${point.percentage}, ${point.text} and ${series.name} in format.
func Expand(format string, p *data.Point, seriesName string) string {
	if !strings.Contains(format, "${") {
		return format
	}
	r := strings.NewReplacer(
		"${point.x}", p.Name(),
		"${point.y}", value(p),
		"${point.percentage}", geometry.FormatNumber(p.Percentage),
		"${point.text}", p.Text,
		"${series.name}", seriesName,
	)
	return r.Replace(format)
}

func value(p *data.Point) string {
	if p.IsEmpty && !p.Visible {
		return ""
	}
	return geometry.FormatNumber(p.Y)
}

// raw is the label text of a point without any formatting.
func raw(p *data.Point) string {
	if p.Text != "" {
		return p.Text
	}
	return value(p)
}

// Content returns the label text of point p.
func Content(p *data.Point, format string, env Env) string {
	if env.Formatter != nil {
		s, err := safeFormat(env.Formatter, p)
		if err == nil {
			return s
		}
		env.logger().Debug("label formatter failed",
			zap.Int("point", p.Index), zap.Error(err))
		return raw(p)
	}
	if format != "" {
		return Expand(format, p, env.SeriesName)
	}
	return raw(p)
}

func safeFormat(f Formatter, p *data.Point) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("formatter panic: %v", r)
		}
	}()
	return f(p)
}
