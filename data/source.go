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
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Query selects a window of the source rows.  Take <= 0 selects all rows
// after the first Skip.
type Query struct {
	Skip int
	Take int
}

// Result is the answer to a Query.  Count is the total number of rows
// available, independent of the window.
type Result struct {
	Rows  []Row
	Count int
}

// Source is a provider of chart data.
//
//go:generate mockgen -destination=mocks/mock_source.go -package=mocks seehuhn.de/go/pie/data Source
type Source interface {
	Fetch(ctx context.Context, q Query) (Result, error)
}

// Rows is an in-memory Source.
type Rows []Row

// Fetch implements Source.
func (r Rows) Fetch(ctx context.Context, q Query) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	lo := min(max(q.Skip, 0), len(r))
	hi := len(r)
	if q.Take > 0 {
		hi = min(lo+q.Take, hi)
	}
	return Result{Rows: r[lo:hi], Count: len(r)}, nil
}

// Manager keeps a series up to date with a data source.
//
// Refresh may be called from several goroutines; overlapping calls share
// a single fetch.  The series must not be accessed concurrently with a
// refresh.
type Manager struct {
	Series *Series
	Query  Query

	src   Source
	log   *zap.Logger
	group singleflight.Group

	mu       sync.Mutex
	inFlight int
	count    int
}

// NewManager returns a manager which loads the rows of src into series.
// A nil logger discards all messages.
func NewManager(src Source, series *Series, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{Series: series, src: src, log: log}
}

// Refresh fetches the rows from the source and replaces the points of the
// series.  On failure the series is left unchanged and no retry is
// attempted.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	m.inFlight++
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.inFlight--
		m.mu.Unlock()
	}()

	v, err, shared := m.group.Do("fetch", func() (any, error) {
		return m.src.Fetch(ctx, m.Query)
	})
	if err != nil {
		m.log.Warn("data fetch failed", zap.Error(err))
		return errors.Wrap(err, "fetching chart data")
	}
	res := v.(Result)
	m.log.Debug("data fetched",
		zap.Int("rows", len(res.Rows)),
		zap.Int("count", res.Count),
		zap.Bool("shared", shared))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.count = res.Count
	m.Series.Replace(res.Rows)
	return nil
}

// InFlight reports whether a fetch is currently running.
func (m *Manager) InFlight() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inFlight > 0
}

// Count returns the total row count reported by the last successful fetch.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}
