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

// Command genpdf renders every test case to PDF and PNG files, for visual
// inspection.  It uses the fonts bundled with the module for measuring and
// drawing text.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"seehuhn.de/go/pie"
	"seehuhn.de/go/pie/pdfsurface"
	"seehuhn.de/go/pie/raster"
	"seehuhn.de/go/pie/testcases"
	"seehuhn.de/go/pie/text"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	fonts, err := text.NewFaceMeasurer()
	if err != nil {
		panic(err)
	}
	log := zap.NewNop()

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, name, fonts, log); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, name string, fonts *text.FaceMeasurer, log *zap.Logger) error {
	cfg, err := tc.Resolve()
	if err != nil {
		return err
	}
	c := pie.New(cfg, tc.Rows, pie.WithID(name), pie.WithMeasurer(fonts), pie.WithLogger(log))

	page, err := pdfsurface.Create(filepath.Join(refDir, name+".pdf"), cfg.Width, cfg.Height, log)
	if err != nil {
		return err
	}
	c.Render(page)
	if err := page.Close(); err != nil {
		return err
	}

	canvas := raster.NewCanvas(tc.Width, tc.Height, 2, fonts, log)
	c.Render(canvas)
	f, err := os.Create(filepath.Join(refDir, name+".png"))
	if err != nil {
		return errors.Wrap(err, "creating PNG file")
	}
	if err := canvas.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
