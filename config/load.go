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
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file
// settings.  For example PIECHART_CHART_WIDTH overrides chart.width.
const EnvPrefix = "PIECHART"

// Load reads a chart definition from a YAML or JSON file.  The file holds
// a "chart" tree, which is resolved over [Default], and a "data" list of
// rows.  Settings present in the file can be overridden by environment
// variables.
func Load(file string) (Chart, []map[string]any, error) {
	v := viper.New()
	v.SetConfigFile(file)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return Chart{}, nil, errors.Wrapf(err, "reading %s", file)
	}

	sparse := map[string]any{}
	for _, key := range v.AllKeys() {
		path := strings.Split(key, ".")
		if len(path) < 2 || path[0] != "chart" {
			continue
		}
		setNested(sparse, path[1:], v.Get(key))
	}

	cfg, err := Resolve(sparse, Default())
	if err != nil {
		return Chart{}, nil, errors.Wrapf(err, "in %s", file)
	}

	rows, err := toRows(v.Get("data"))
	if err != nil {
		return Chart{}, nil, errors.Wrapf(err, "in %s", file)
	}
	return cfg, rows, nil
}

func setNested(m map[string]any, path []string, val any) {
	for _, p := range path[:len(path)-1] {
		sub, ok := m[p].(map[string]any)
		if !ok {
			sub = map[string]any{}
			m[p] = sub
		}
		m = sub
	}
	m[path[len(path)-1]] = val
}

func toRows(raw any) ([]map[string]any, error) {
	if raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, errors.Errorf("data must be a list, not %T", raw)
	}
	rows := make([]map[string]any, 0, len(list))
	for i, item := range list {
		switch r := item.(type) {
		case map[string]any:
			rows = append(rows, r)
		case map[any]any:
			row := make(map[string]any, len(r))
			for k, v := range r {
				ks, ok := k.(string)
				if !ok {
					return nil, errors.Errorf("data row %d: non-string key %v", i, k)
				}
				row[ks] = v
			}
			rows = append(rows, row)
		default:
			return nil, errors.Errorf("data row %d must be a mapping, not %T", i, item)
		}
	}
	return rows, nil
}
