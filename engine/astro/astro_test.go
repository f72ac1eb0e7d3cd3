// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astro_test

import (
	"testing"
	"time"

	"cloudeng.io/hijri/civil"
	"cloudeng.io/hijri/engine"
	"cloudeng.io/hijri/engine/astro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConjunction(t *testing.T) {
	e := astro.New()
	for _, tc := range []struct {
		year, month int
		when        time.Time
	}{
		{1420, 10, time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC)},
		{1444, 9, time.Date(2023, 3, 21, 17, 23, 0, 0, time.UTC)},
		{1444, 10, time.Date(2023, 4, 20, 4, 12, 0, 0, time.UTC)},
		{1445, 9, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)},
	} {
		got := e.Conjunction(tc.year, tc.month)
		diff := got.Sub(tc.when)
		assert.True(t, diff.Abs() < 15*time.Minute, "%v/%v: got %v, want %v", tc.year, tc.month, got, tc.when)
	}
}

func TestMonthStarts(t *testing.T) {
	e := astro.New()
	assert.Equal(t, "fcna", e.ID())
	for _, tc := range []struct {
		year, month int
		start       string
	}{
		{1420, 10, "2000-01-08"},
		{1444, 9, "2023-03-23"},
		{1444, 10, "2023-04-21"},
		{1444, 12, "2023-06-19"},
		{1445, 9, "2024-03-11"},
		{1445, 10, "2024-04-10"},
	} {
		got, ok := e.ToSolar(tc.year, tc.month, 1)
		require.True(t, ok)
		assert.Equal(t, tc.start, got.String(), "%v/%v", tc.year, tc.month)

		c, ok := e.ToLunar(got)
		require.True(t, ok)
		assert.Equal(t, engine.Coordinate{Year: tc.year, Month: tc.month, Day: 1}, c)
	}
}

func TestRoundTrip(t *testing.T) {
	e := astro.New()
	from := civil.MustParse("2019-01-01")
	prev := engine.Coordinate{}
	for d := from; d.Year < 2027; d = d.AddDays(1) {
		c, ok := e.ToLunar(d)
		require.True(t, ok)
		require.Equal(t, 1, c.Compare(prev), d.String())
		require.True(t, c.Day <= e.DaysInMonth(c.Year, c.Month), d.String())
		back, ok := e.ToSolar(c.Year, c.Month, c.Day)
		require.True(t, ok)
		require.Equal(t, d, back)
		prev = c
	}
}

func TestUnbounded(t *testing.T) {
	e := astro.New()
	for _, d := range []string{"0622-07-16", "1066-10-14", "2500-01-01"} {
		c, ok := e.ToLunar(civil.MustParse(d))
		require.True(t, ok, d)
		back, ok := e.ToSolar(c.Year, c.Month, c.Day)
		require.True(t, ok, d)
		assert.Equal(t, d, back.String())
	}

	for year := 1; year < 2000; year += 37 {
		for month := 1; month <= 12; month++ {
			n := e.DaysInMonth(year, month)
			assert.Contains(t, []int{29, 30}, n, "%v/%v", year, month)
		}
	}
	for year := 1440; year <= 1446; year++ {
		total := 0
		for month := 1; month <= 12; month++ {
			total += e.DaysInMonth(year, month)
		}
		assert.Contains(t, []int{354, 355}, total, year)
	}

	_, ok := e.ToSolar(1444, 13, 1)
	assert.False(t, ok)
	_, ok = e.ToSolar(1444, 9, 31)
	assert.False(t, ok)
}

func TestOptions(t *testing.T) {
	// The conjunction preceding Ramadan 1444 was at 17:23 UTC, a cutoff
	// after that moves the start of the month a day earlier.
	e := astro.New(astro.WithCutoff(18), astro.WithID("late"))
	assert.Equal(t, "late", e.ID())
	got, ok := e.ToSolar(1444, 9, 1)
	require.True(t, ok)
	assert.Equal(t, "2023-03-22", got.String())
}

func TestShortYears(t *testing.T) {
	e := astro.New()
	yearLength := func(year int) int {
		total := 0
		for month := 1; month <= 12; month++ {
			total += e.DaysInMonth(year, month)
		}
		return total
	}
	for _, year := range []int{24, 727, 2936} {
		assert.Equal(t, 353, yearLength(year), year)
		first, ok := e.ToSolar(year, 1, 1)
		require.True(t, ok)
		next, ok := e.ToSolar(year+1, 1, 1)
		require.True(t, ok)
		assert.Equal(t, 353, first.DaysUntil(next), year)
	}
	for year := 1; year <= 3000; year++ {
		assert.Contains(t, []int{353, 354, 355}, yearLength(year), year)
	}
}
