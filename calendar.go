// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package hijri provides support for the Islamic (Hijri) lunar calendar
// layered over civil (Gregorian) dates. A Calendar bridges between the two
// using a pluggable engine (see cloudeng.io/hijri/engine) and provides the
// lunar field values of a civil date, lunar aware addition and lunar aware
// differencing.
//
// Dates are always held as civil.Date values, the lunar coordinates are
// computed as needed and never stored. A Calendar is immutable and safe
// for concurrent use provided that its engine is.
//
//	cal := hijri.UmmAlQura()
//	ramadan, _ := cal.FromLunar(1444, 9, 1)               // 2023-03-23
//	shawwal, _ := cal.Add(ramadan, hijri.Duration{Months: 1}, hijri.Constrain) // 2023-04-21
//	n, _ := cal.Until(ramadan, shawwal, hijri.Months)     // P1M
package hijri

import (
	"time"

	"cloudeng.io/hijri/civil"
	"cloudeng.io/hijri/engine"
	"cloudeng.io/hijri/engine/astro"
	"cloudeng.io/hijri/engine/table"
)

// Calendar represents the Hijri calendar as implemented by a specific
// engine.
type Calendar struct {
	engine engine.Engine
	id     string
}

// New returns a Calendar that uses the supplied engine.
func New(e engine.Engine) *Calendar {
	return &Calendar{engine: e, id: "hijri-" + e.ID()}
}

// UmmAlQura returns a Calendar using the table driven Umm al-Qura engine.
func UmmAlQura() *Calendar {
	return New(table.UmmAlQura())
}

// FCNA returns a Calendar using the astronomical engine with the Fiqh
// Council of North America criterion.
func FCNA() *Calendar {
	return New(astro.New())
}

// ID returns the calendar's identifier, eg. hijri-uaq.
func (c *Calendar) ID() string {
	return c.id
}

func (c *Calendar) String() string {
	return c.id
}

// Engine returns the engine used by the calendar.
func (c *Calendar) Engine() engine.Engine {
	return c.engine
}

// ToLunar returns the lunar coordinate of the supplied date.
func (c *Calendar) ToLunar(d civil.Date) (engine.Coordinate, error) {
	lc, ok := c.engine.ToLunar(d)
	if !ok {
		return engine.Coordinate{}, &OutOfRangeError{Calendar: c.id, Date: d}
	}
	return lc, nil
}

// ToLunarTime returns the lunar coordinate of the wall-clock date of t in
// t's own location, see civil.LocalFields.
func (c *Calendar) ToLunarTime(t time.Time) (engine.Coordinate, error) {
	return c.ToLunar(civil.LocalFields(t))
}

// FromLunar returns the civil date of the supplied lunar date.
// Month and day values that can never occur, eg. a month of 13 or a day
// of 31, are rejected without consulting the engine.
func (c *Calendar) FromLunar(year, month, day int) (civil.Date, error) {
	lc := engine.Coordinate{Year: year, Month: month, Day: day}
	if !lc.Valid() {
		return civil.Date{}, &OutOfRangeError{Calendar: c.id, Coordinate: lc, Reason: "is not a valid lunar date"}
	}
	d, ok := c.engine.ToSolar(year, month, day)
	if !ok {
		return civil.Date{}, &OutOfRangeError{Calendar: c.id, Coordinate: lc}
	}
	return d, nil
}
