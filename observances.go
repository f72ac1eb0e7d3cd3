// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"fmt"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/hijri/civil"
)

// Observance represents an annual event that falls on a fixed Hijri
// month and day, eg. the first of Ramadan.
type Observance struct {
	Name  string `yaml:"name"`
	Month int    `yaml:"month"`
	Day   int    `yaml:"day"`
}

func (o Observance) String() string {
	return fmt.Sprintf("%v (%v-%02d)", o.Name, MonthCode(o.Month), o.Day)
}

// Occurrence represents a single occurrence of an Observance.
type Occurrence struct {
	Observance
	Year int        // Hijri year.
	Date civil.Date // Civil date.
}

func (o Occurrence) String() string {
	return fmt.Sprintf("%v: %v %04d-%02d-%02d", o.Date, o.Name, o.Year, o.Month, o.Day)
}

const (
	meanYearDays = 354.36667
	// 1 Muharram 1 in the proleptic Gregorian calendar.
	epochDay = -492148 // civil.Date{622, 7, 19}.DayNumber()
)

func approxYear(d civil.Date) int {
	return int(float64(d.DayNumber()-epochDay)/meanYearDays) + 1
}

// Occurrences returns every occurrence of the supplied observances that
// falls within [from, to], ordered by date and then by the order in which
// the observances were specified. A day of month that does not exist in a
// particular year is constrained to the last day of that month. Years that
// the calendar's engine cannot convert are skipped, if no occurrences are
// found at all the error from the last failed conversion is returned.
func (c *Calendar) Occurrences(from, to civil.Date, observances ...Observance) ([]Occurrence, error) {
	if to.Before(from) || len(observances) == 0 {
		return nil, nil
	}
	first, last := approxYear(from)-1, approxYear(to)+1
	n := len(observances)
	h := heap.NewMinMax(heap.WithSliceCap[int, Occurrence]((last - first + 1) * n))
	var lastErr error
	for year := first; year <= last; year++ {
		for i, o := range observances {
			day, err := c.overflow(year, o.Month, o.Day, Constrain)
			if err != nil {
				return nil, err
			}
			d, err := c.FromLunar(year, o.Month, day)
			if err != nil {
				lastErr = err
				continue
			}
			if d.Before(from) || d.After(to) {
				continue
			}
			occ := Occurrence{Observance: o, Year: year, Date: d}
			h.Push(d.DayNumber()*n+i, occ)
		}
	}
	if h.Len() == 0 {
		return nil, lastErr
	}
	occurrences := make([]Occurrence, 0, h.Len())
	for h.Len() > 0 {
		_, occ := h.PopMin()
		occurrences = append(occurrences, occ)
	}
	return occurrences, nil
}
