// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package table provides a lunar calendar engine driven by a table of
// month lengths. The engine supports only the years covered by its table
// and reports all other dates as being out of range.
//
// The engine reads the civil date it is given as wall-clock fields, that
// is, the year, month and day are used exactly as supplied.
package table

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/hijri/civil"
	"cloudeng.io/hijri/engine"
)

// Table represents the month lengths of a contiguous range of lunar years.
type Table struct {
	ID        string     `yaml:"id"`
	FirstYear int        `yaml:"first_year"`
	Epoch     civil.Date `yaml:"epoch"` // First day of the first month of FirstYear.
	Years     [][]int    `yaml:"years"`
}

// LastYear returns the last year covered by the table.
func (t Table) LastYear() int {
	return t.FirstYear + len(t.Years) - 1
}

// Validate checks that every month is 29 or 30 days long and that every
// year has 12 months and is 354 or 355 days long.
func (t Table) Validate() error {
	errs := &errors.M{}
	if len(t.ID) == 0 {
		errs.Append(fmt.Errorf("missing id"))
	}
	if !t.Epoch.Valid() {
		errs.Append(fmt.Errorf("invalid epoch: %v", t.Epoch))
	}
	if len(t.Years) == 0 {
		errs.Append(fmt.Errorf("no years specified"))
	}
	for i, months := range t.Years {
		year := t.FirstYear + i
		if len(months) != engine.MonthsInYear {
			errs.Append(fmt.Errorf("year %v: has %v months, not %v", year, len(months), engine.MonthsInYear))
			continue
		}
		total := 0
		for m, days := range months {
			if days != 29 && days != 30 {
				errs.Append(fmt.Errorf("year %v, month %v: invalid length: %v", year, m+1, days))
			}
			total += days
		}
		if total != 354 && total != 355 {
			errs.Append(fmt.Errorf("year %v: invalid length: %v", year, total))
		}
	}
	return errs.Err()
}

// Load parses a YAML representation of a Table.
func Load(data []byte) (Table, error) {
	var t Table
	if err := cmdyaml.ParseConfig(data, &t); err != nil {
		return Table{}, err
	}
	return t, nil
}

// LoadFile parses a YAML representation of a Table from a file.
func LoadFile(filename string) (Table, error) {
	var t Table
	if err := cmdyaml.ParseConfigFile(context.Background(), filename, &t); err != nil {
		return Table{}, err
	}
	return t, nil
}

// Engine implements engine.Engine using a Table.
type Engine struct {
	table Table
	// starts[i] is the day number of the first day of the i'th month
	// in the table, the final entry is the day after the table ends.
	starts []int
}

var _ engine.Engine = (*Engine)(nil)

// New returns an Engine for the supplied table.
func New(t Table) (*Engine, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	starts := make([]int, 0, len(t.Years)*engine.MonthsInYear+1)
	day := t.Epoch.DayNumber()
	for _, months := range t.Years {
		for _, days := range months {
			starts = append(starts, day)
			day += days
		}
	}
	starts = append(starts, day)
	return &Engine{table: t, starts: starts}, nil
}

//go:embed ummalqura.yaml
var ummAlQuraYAML []byte

var ummAlQura = sync.OnceValue(func() *Engine {
	t, err := Load(ummAlQuraYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded umm al-qura table: %v", err))
	}
	e, err := New(t)
	if err != nil {
		panic(fmt.Sprintf("embedded umm al-qura table: %v", err))
	}
	return e
})

// UmmAlQura returns an engine for the embedded Umm al-Qura table which
// covers the years 1442 to 1446.
func UmmAlQura() *Engine {
	return ummAlQura()
}

// ID implements engine.Engine.
func (e *Engine) ID() string {
	return e.table.ID
}

// Table returns the table used by the engine.
func (e *Engine) Table() Table {
	return e.table
}

// Range returns the first and last civil dates supported by the engine.
func (e *Engine) Range() (first, last civil.Date) {
	return civil.FromDayNumber(e.starts[0]), civil.FromDayNumber(e.starts[len(e.starts)-1] - 1)
}

func (e *Engine) index(year, month int) (int, bool) {
	if month < 1 || month > engine.MonthsInYear || year < e.table.FirstYear || year > e.table.LastYear() {
		return 0, false
	}
	return (year-e.table.FirstYear)*engine.MonthsInYear + month - 1, true
}

// ToLunar implements engine.Engine.
func (e *Engine) ToLunar(d civil.Date) (engine.Coordinate, bool) {
	n := d.DayNumber()
	if n < e.starts[0] || n >= e.starts[len(e.starts)-1] {
		return engine.Coordinate{}, false
	}
	idx := sort.Search(len(e.starts), func(i int) bool { return e.starts[i] > n }) - 1
	return engine.Coordinate{
		Year:  e.table.FirstYear + idx/engine.MonthsInYear,
		Month: idx%engine.MonthsInYear + 1,
		Day:   n - e.starts[idx] + 1,
	}, true
}

// ToSolar implements engine.Engine.
func (e *Engine) ToSolar(year, month, day int) (civil.Date, bool) {
	idx, ok := e.index(year, month)
	if !ok || day < 1 || day > e.starts[idx+1]-e.starts[idx] {
		return civil.Date{}, false
	}
	return civil.FromDayNumber(e.starts[idx] + day - 1), true
}

// DaysInMonth implements engine.Engine. Months outside of the table are
// given the alternating 30/29 day lengths of the arithmetic calendar,
// converting any date within them will still fail.
func (e *Engine) DaysInMonth(year, month int) int {
	if idx, ok := e.index(year, month); ok {
		return e.starts[idx+1] - e.starts[idx]
	}
	if month < 1 || month > engine.MonthsInYear {
		return 0
	}
	if month%2 == 1 {
		return 30
	}
	return 29
}
