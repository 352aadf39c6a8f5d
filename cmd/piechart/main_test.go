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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartFile = `chart:
  width: 300
  height: 200
  title:
    text: Fruit
  series:
    inner_radius: 40%
data:
  - {x: Apples, y: 10}
  - {x: Pears, y: 30}
`

func writeChartFile(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "fruit.yaml")
	require.NoError(t, os.WriteFile(name, []byte(chartFile), 0o644))
	return name
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags() {
	for _, name := range []string{"output", "format"} {
		_ = renderCmd.Flags().Set(name, "")
	}
	_ = renderCmd.Flags().Set("explode", "-1")
}

func TestRenderFormats(t *testing.T) {
	in := writeChartFile(t)
	dir := filepath.Dir(in)

	for _, format := range []string{"svg", "png", "pdf"} {
		t.Run(format, func(t *testing.T) {
			resetFlags()
			out := filepath.Join(dir, "out."+format)
			_, err := run(t, "render", in, "-o", out)
			require.NoError(t, err)
			body, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.NotEmpty(t, body)

			switch format {
			case "svg":
				assert.Contains(t, string(body), "<svg")
				assert.Contains(t, string(body), "_Series_0_Point_1")
			case "png":
				assert.True(t, bytes.HasPrefix(body, []byte("\x89PNG")))
			case "pdf":
				assert.True(t, strings.HasPrefix(string(body), "%PDF-"))
			}
		})
	}
}

func TestRenderDefaultOutput(t *testing.T) {
	resetFlags()
	in := writeChartFile(t)
	_, err := run(t, "render", in, "--explode", "0")
	require.NoError(t, err)
	_, err = os.Stat(strings.TrimSuffix(in, ".yaml") + ".svg")
	assert.NoError(t, err)
}

func TestRenderUnknownFormat(t *testing.T) {
	resetFlags()
	in := writeChartFile(t)
	_, err := run(t, "render", in, "-o", filepath.Join(t.TempDir(), "x.gif"))
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestRenderMissingFile(t *testing.T) {
	resetFlags()
	_, err := run(t, "render", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLayoutCommand(t *testing.T) {
	in := writeChartFile(t)
	out, err := run(t, "layout", in)
	require.NoError(t, err)

	var slices []struct {
		Name       string  `json:"name"`
		Percentage float64 `json:"percentage"`
		Start      float64 `json:"start"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &slices))
	require.Len(t, slices, 2)
	assert.Equal(t, "Apples", slices[0].Name)
	assert.InDelta(t, 25, slices[0].Percentage, 1e-9)
	assert.Equal(t, -90.0, slices[0].Start)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "piechart dev")
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("")
	require.NoError(t, err)
	assert.NotNil(t, l)

	l, err = newLogger("debug")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))

	_, err = newLogger("loud")
	assert.Error(t, err)
}
