// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package engine defines the contract implemented by lunar calendar
// conversion engines. An engine converts between civil (Gregorian) dates
// and lunar coordinates and reports the length of each lunar month; how
// month boundaries are determined, by table lookup or by astronomical
// computation, is entirely up to the engine.
//
// Engines must be safe for concurrent use and must return the same results
// for the same inputs on every call.
package engine

import (
	"fmt"

	"cloudeng.io/hijri/civil"
)

// MonthsInYear is the number of months in every lunar year.
const MonthsInYear = 12

// Coordinate represents a date in the lunar calendar.
type Coordinate struct {
	Year  int
	Month int
	Day   int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", c.Year, c.Month, c.Day)
}

// Valid returns true if the month is in the range 1-12 and the day
// in the range 1-30. It does not consult any engine.
func (c Coordinate) Valid() bool {
	return c.Month >= 1 && c.Month <= MonthsInYear && c.Day >= 1 && c.Day <= 30
}

// Compare returns -1, 0 or +1 depending on whether c is before, the same as
// or after o.
func (c Coordinate) Compare(o Coordinate) int {
	switch {
	case c.Year != o.Year:
		return cmpInt(c.Year, o.Year)
	case c.Month != o.Month:
		return cmpInt(c.Month, o.Month)
	}
	return cmpInt(c.Day, o.Day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Engine is the interface implemented by lunar calendar engines. A false
// return from ToLunar or ToSolar indicates that the requested date lies
// outside of the range supported by the engine or is not a valid date.
type Engine interface {
	// ID returns a short, stable, identifier for the engine, eg. "uaq".
	ID() string
	// ToLunar returns the lunar coordinate for the supplied civil date.
	ToLunar(d civil.Date) (Coordinate, bool)
	// ToSolar returns the civil date for the supplied lunar coordinate.
	ToSolar(year, month, day int) (civil.Date, bool)
	// DaysInMonth returns the length, 29 or 30, of the specified month.
	DaysInMonth(year, month int) int
}
