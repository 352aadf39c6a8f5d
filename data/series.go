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

package data

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats"

	"seehuhn.de/go/pie/config"
	"seehuhn.de/go/pie/geometry"
)

// ErrIndex is returned by point operations given an index which does not
// refer to a displayed point.
var ErrIndex = errors.New("point index out of range")

// Series is the set of points of one pie.
type Series struct {
	Name  string
	Index int

	// Points is the displayed set, in display order.  It is replaced
	// wholesale by every mutation.
	Points []*Point

	// ClubbedPoints are the points grouped into the "Others" point.
	ClubbedPoints []*Point

	SumOfPoints float64
	SumOfClub   float64

	// ClubExpanded is set while the "Others" point is replaced by its
	// members.
	ClubExpanded bool

	cfg     config.Series
	palette []string

	rows           []sourceRow
	othersHidden   bool
	othersExploded bool
}

type sourceRow struct {
	row      Row
	hidden   bool
	exploded bool
}

// Ingest builds a series from the given rows.
func Ingest(rows []Row, cfg config.Series, palette []string) *Series {
	s := &Series{
		Name:    cfg.Name,
		cfg:     cfg,
		palette: palette,
	}
	s.setRows(rows)
	return s
}

// Replace discards all points and rebuilds the series from rows.
// Visibility and explode state are reset.
func (s *Series) Replace(rows []Row) {
	s.othersHidden = false
	s.othersExploded = false
	s.ClubExpanded = false
	s.setRows(rows)
}

func (s *Series) setRows(rows []Row) {
	s.rows = make([]sourceRow, len(rows))
	for i, r := range rows {
		s.rows[i] = sourceRow{
			row:      r,
			exploded: s.cfg.ExplodeAll || i == s.cfg.ExplodeIndex,
		}
	}
	s.derive()
}

// Config returns the series configuration.
func (s *Series) Config() config.Series {
	return s.cfg
}

// Rows returns a copy of the source rows.
func (s *Series) Rows() []Row {
	res := make([]Row, len(s.rows))
	for i, r := range s.rows {
		res[i] = r.row
	}
	return res
}

// AddPoint appends a row to the source data.
func (s *Series) AddPoint(row Row) {
	s.rows = append(s.rows, sourceRow{row: row, exploded: s.cfg.ExplodeAll})
	s.derive()
}

// RemovePoint removes the source row of the displayed point i.
// The "Others" point cannot be removed.
func (s *Series) RemovePoint(i int) error {
	src, err := s.source(i)
	if err != nil {
		return err
	}
	s.rows = append(s.rows[:src], s.rows[src+1:]...)
	s.derive()
	return nil
}

// UpdatePoint replaces the source row of the displayed point i.
func (s *Series) UpdatePoint(i int, row Row) error {
	src, err := s.source(i)
	if err != nil {
		return err
	}
	s.rows[src].row = row
	s.derive()
	return nil
}

// SetVisible shows or hides the displayed point i.
func (s *Series) SetVisible(i int, visible bool) error {
	if i < 0 || i >= len(s.Points) {
		return ErrIndex
	}
	p := s.Points[i]
	if p.IsClubbed {
		s.othersHidden = !visible
	} else {
		s.rows[p.SourceIndex].hidden = !visible
	}
	s.derive()
	return nil
}

// ToggleVisible flips the visibility of the displayed point i.
func (s *Series) ToggleVisible(i int) error {
	if i < 0 || i >= len(s.Points) {
		return ErrIndex
	}
	return s.SetVisible(i, s.hiddenFlag(s.Points[i]))
}

func (s *Series) hiddenFlag(p *Point) bool {
	if p.IsClubbed {
		return s.othersHidden
	}
	return s.rows[p.SourceIndex].hidden
}

// SetExplode sets the explode flag of the displayed point i.
func (s *Series) SetExplode(i int, on bool) error {
	if i < 0 || i >= len(s.Points) {
		return ErrIndex
	}
	p := s.Points[i]
	if p.IsClubbed {
		s.othersExploded = on
	} else {
		s.rows[p.SourceIndex].exploded = on
	}
	p.IsExplode = on
	return nil
}

// SplitClub replaces the "Others" point by its members.
func (s *Series) SplitClub() bool {
	if s.ClubExpanded || len(s.ClubbedPoints) == 0 {
		return false
	}
	s.ClubExpanded = true
	s.derive()
	return true
}

// MergeClub collapses the members of an expanded group back into the
// "Others" point.
func (s *Series) MergeClub() bool {
	if !s.ClubExpanded {
		return false
	}
	s.ClubExpanded = false
	s.derive()
	return true
}

// VisibleCount returns the number of visible displayed points.
func (s *Series) VisibleCount() int {
	n := 0
	for _, p := range s.Points {
		if p.Visible {
			n++
		}
	}
	return n
}

func (s *Series) source(i int) (int, error) {
	if i < 0 || i >= len(s.Points) {
		return 0, errors.Wrapf(ErrIndex, "point %d", i)
	}
	p := s.Points[i]
	if p.SourceIndex < 0 {
		return 0, errors.Errorf("point %d is the %q group", i, s.cfg.GroupName)
	}
	return p.SourceIndex, nil
}

// derive rebuilds the displayed points from the source rows.
func (s *Series) derive() {
	raw := make([]*Point, len(s.rows))
	for i, r := range s.rows {
		raw[i] = s.toPoint(r, i)
	}
	s.applyEmptyMode(raw)

	kept, clubbed := s.group(raw)
	s.ClubbedPoints = clubbed
	s.SumOfClub = 0
	if len(clubbed) == 0 {
		s.ClubExpanded = false
	}

	display := kept
	if len(clubbed) > 0 {
		s.SumOfClub = floats.Sum(absValues(clubbed))
		if s.ClubExpanded {
			for _, p := range clubbed {
				p.IsSliced = true
			}
			display = append(display, clubbed...)
		} else {
			display = append(display, &Point{
				X:           s.cfg.GroupName,
				Y:           s.SumOfClub,
				Visible:     !s.othersHidden,
				IsClubbed:   true,
				IsExplode:   s.othersExploded,
				SourceIndex: -1,
			})
		}
	}

	for i, p := range display {
		p.Index = i
		if p.Color == "" && len(s.palette) > 0 {
			p.Color = s.palette[i%len(s.palette)]
		}
	}
	s.Points = display
	s.updateSum()
}

// updateSum re-scans the visible points and recomputes the percentages.
func (s *Series) updateSum() {
	var vals []float64
	for _, p := range s.Points {
		if p.Visible {
			vals = append(vals, p.Abs())
		}
	}
	s.SumOfPoints = floats.Sum(vals)
	for _, p := range s.Points {
		p.Percentage = 0
		if p.Visible && s.SumOfPoints > 0 {
			p.Percentage = p.Abs() / s.SumOfPoints * 100
		}
	}
}

func (s *Series) toPoint(r sourceRow, i int) *Point {
	p := &Point{
		Y:           math.NaN(),
		Visible:     !r.hidden,
		IsExplode:   r.exploded,
		SourceIndex: i,
	}
	p.X, _ = lookup(r.row, s.cfg.XName)
	if v, ok := lookup(r.row, s.cfg.YName); ok {
		if y, ok := toFloat(v); ok {
			p.Y = y
		}
	}
	p.IsEmpty = math.IsNaN(p.Y)
	if v, ok := lookup(r.row, s.cfg.PointColorMapping); ok {
		p.Color, _ = v.(string)
	}
	if v, ok := lookup(r.row, s.cfg.DataLabel.Name); ok && v != nil {
		p.Text = (&Point{X: v}).Name()
	}
	if v, ok := lookup(r.row, s.cfg.RadiusMapping); ok && v != nil {
		p.SliceRadius = (&Point{X: v}).Name()
	}
	return p
}

func (s *Series) applyEmptyMode(pts []*Point) {
	neighbour := func(i int) float64 {
		if i < 0 || i >= len(pts) || pts[i].IsEmpty {
			return 0
		}
		return math.Abs(pts[i].Y)
	}
	for i, p := range pts {
		if !p.IsEmpty {
			continue
		}
		if s.cfg.EmptyPoint.Fill != "" {
			p.Color = s.cfg.EmptyPoint.Fill
		}
		switch s.cfg.EmptyPoint.Mode {
		case config.EmptyZero:
			p.Y = 0
		case config.EmptyAverage:
			p.Y = (neighbour(i-1) + neighbour(i+1)) / 2
		default: // Drop, Gap and unknown modes
			p.Visible = false
		}
	}
}

// group splits the points into the kept and the clubbed ones.
func (s *Series) group(pts []*Point) (kept, clubbed []*Point) {
	threshold, ok := s.threshold(pts)
	if !ok {
		return pts, nil
	}
	for i, p := range pts {
		var club bool
		switch s.cfg.GroupMode {
		case config.GroupByPoint:
			club = float64(i) >= threshold
		default:
			club = !p.IsEmpty && p.Abs() <= threshold
		}
		if club {
			clubbed = append(clubbed, p)
		} else {
			kept = append(kept, p)
		}
	}
	return kept, clubbed
}

// threshold resolves GroupTo, either a value or a percentage of the sum
// of all visible values.
func (s *Series) threshold(pts []*Point) (float64, bool) {
	return geometry.Length(s.cfg.GroupTo, floats.Sum(absValues(pts)))
}

func absValues(pts []*Point) []float64 {
	vals := make([]float64, 0, len(pts))
	for _, p := range pts {
		if p.Visible {
			vals = append(vals, p.Abs())
		}
	}
	return vals
}

// lookup finds a field by exact name, falling back to a case-insensitive
// match.
func lookup(row Row, name string) (any, bool) {
	if name == "" || row == nil {
		return nil, false
	}
	if v, ok := row[name]; ok {
		return v, true
	}
	for k, v := range row {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// toFloat converts a field value to a number.  Missing values, booleans
// and non-finite numbers count as empty.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		v = strings.TrimSpace(x)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
