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
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultSize is used for fonts which do not specify a size.
const DefaultSize = 12

// FaceMeasurer measures text using the Go fonts at 72 dpi, so that one
// point equals one pixel.  Faces are cached per size and weight.
//
// A FaceMeasurer is not safe for concurrent use.
type FaceMeasurer struct {
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

// NewFaceMeasurer parses the embedded Go fonts.
func NewFaceMeasurer() (*FaceMeasurer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parsing Go Regular")
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parsing Go Bold")
	}
	return &FaceMeasurer{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// Face returns the font face used for f.
func (m *FaceMeasurer) Face(f Font) (font.Face, error) {
	size := f.Size
	if size <= 0 {
		size = DefaultSize
	}
	key := faceKey{size: size, bold: f.IsBold()}
	if face, ok := m.faces[key]; ok {
		return face, nil
	}
	src := m.regular
	if key.bold {
		src = m.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "creating %gpx face", size)
	}
	m.faces[key] = face
	return face, nil
}

// Measure implements Measurer.
func (m *FaceMeasurer) Measure(s string, f Font) (Size, error) {
	if m == nil || m.regular == nil {
		return Size{}, ErrMeasure
	}
	face, err := m.Face(f)
	if err != nil {
		return Size{}, err
	}
	met := face.Metrics()
	return Size{
		Width:  fromFixed(font.MeasureString(face, s)),
		Height: fromFixed(met.Ascent + met.Descent),
	}, nil
}

// Ascent returns the distance from the top of a line to its baseline.
func (m *FaceMeasurer) Ascent(f Font) float64 {
	face, err := m.Face(f)
	if err != nil {
		return 0
	}
	return fromFixed(face.Metrics().Ascent)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
