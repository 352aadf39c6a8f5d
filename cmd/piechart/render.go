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

package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seehuhn.de/go/pie"
	"seehuhn.de/go/pie/config"
	"seehuhn.de/go/pie/pdfsurface"
	"seehuhn.de/go/pie/raster"
	"seehuhn.de/go/pie/surface"
	"seehuhn.de/go/pie/text"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a chart to SVG, PNG or PDF",
	Long: `Render lays out the chart described in file and writes it to the
output file.  The output format is taken from --format, or else from the
extension of the output file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")
		scale, _ := cmd.Flags().GetFloat64("scale")
		explode, _ := cmd.Flags().GetInt("explode")
		hide, _ := cmd.Flags().GetIntSlice("hide")

		if out == "" {
			ext := format
			if ext == "" {
				ext = "svg"
			}
			out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "." + ext
		}
		if format == "" {
			format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
		}

		c, err := loadChart(args[0], explode >= 0)
		if err != nil {
			return err
		}
		for _, i := range hide {
			if err := c.SetPointVisible(i, false); err != nil {
				return errors.Wrapf(err, "hiding point %d", i)
			}
		}
		if explode >= 0 {
			if err := c.Explode(explode, true); err != nil {
				return errors.Wrapf(err, "exploding point %d", explode)
			}
		}

		if err := writeChart(c, format, out, scale); err != nil {
			return err
		}
		log.Info("chart written", zap.String("file", out), zap.String("format", format))
		return nil
	},
}

var layoutCmd = &cobra.Command{
	Use:   "layout [file]",
	Short: "Print the computed slice angles as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadChart(args[0], false)
		if err != nil {
			return err
		}
		type slice struct {
			Name       string  `json:"name"`
			Visible    bool    `json:"visible"`
			Percentage float64 `json:"percentage"`
			Start      float64 `json:"start"`
			End        float64 `json:"end"`
		}
		var res []slice
		for _, p := range c.Points() {
			res = append(res, slice{p.Name(), p.Visible, p.Percentage, p.StartAngle, p.EndAngle})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "output file (default: input file with new extension)")
	renderCmd.Flags().StringP("format", "f", "", "output format: svg, png or pdf")
	renderCmd.Flags().Float64("scale", 2, "device pixels per chart pixel, for PNG output")
	renderCmd.Flags().Int("explode", -1, "index of a point to draw exploded")
	renderCmd.Flags().IntSlice("hide", nil, "indices of points to hide")
}

var fonts *text.FaceMeasurer

func measurer() (*text.FaceMeasurer, error) {
	if fonts == nil {
		m, err := text.NewFaceMeasurer()
		if err != nil {
			return nil, err
		}
		fonts = m
	}
	return fonts, nil
}

// loadChart reads a chart definition.  The chart is created without
// animation, so that it shows its final layout.
func loadChart(file string, explode bool) (*pie.Chart, error) {
	cfg, rows, err := config.Load(file)
	if err != nil {
		return nil, err
	}
	cfg.Animation.Enable = false
	if explode {
		cfg.Series.Explode = true
	}
	m, err := measurer()
	if err != nil {
		return nil, err
	}
	log.Debug("chart loaded", zap.String("file", file), zap.Int("rows", len(rows)))
	return pie.New(cfg, rows, pie.WithMeasurer(m), pie.WithLogger(log)), nil
}

func writeChart(c *pie.Chart, format, out string, scale float64) error {
	cfg := c.Config()
	w := int(math.Ceil(cfg.Width))
	h := int(math.Ceil(cfg.Height))

	switch format {
	case "svg":
		f, err := os.Create(out)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		s := surface.NewSVG(f, w, h)
		c.Render(s)
		s.Close()
		return errors.Wrap(f.Close(), "writing SVG")

	case "png":
		m, err := measurer()
		if err != nil {
			return err
		}
		canvas := raster.NewCanvas(w, h, scale, m, log)
		c.Render(canvas)
		f, err := os.Create(out)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		if err := canvas.WritePNG(f); err != nil {
			f.Close()
			return err
		}
		return errors.Wrap(f.Close(), "writing PNG")

	case "pdf":
		page, err := pdfsurface.Create(out, cfg.Width, cfg.Height, log)
		if err != nil {
			return err
		}
		c.Render(page)
		return page.Close()
	}
	return fmt.Errorf("unsupported output format %q", format)
}
