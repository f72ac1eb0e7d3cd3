// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astro provides a lunar calendar engine whose month boundaries
// are computed from the time of the astronomical new moon (conjunction).
// The default criterion is that of the Fiqh Council of North America:
// a month begins on the day following a conjunction that occurs before
// 12:00 UTC, and on the day after that otherwise.
//
// The engine is unbounded, all years are supported. The time of each
// conjunction is computed in UTC and all civil dates are derived from
// that UTC time, that is, the engine anchors its reads in UTC rather
// than any local wall-clock. The new moon computation includes the
// principal periodic terms and is accurate to within a few minutes for
// the current era, which is well within the one day tolerance of the
// criterion.
//
// Since month lengths follow the actual interval between conjunctions a
// year is usually 354 or 355 days long but very occasionally has 353
// days, eg. 24, 727 and 2936 AH, when twelve short lunations fall
// together.
package astro

import (
	"math"
	"time"

	"cloudeng.io/hijri/civil"
	"cloudeng.io/hijri/engine"
)

const (
	synodicMonth = 29.530588861
	// The conjunction of 2000-01-06 is lunation zero, it precedes
	// the first day of Shawwal 1420.
	lunationOffset = (1420-1)*engine.MonthsInYear + (10 - 1)
	jdUnixEpoch    = 2440587.5
	jdLunationZero = 2451550.09766
	// Approximate difference between terrestrial and universal time.
	deltaT = 69.0 / (24 * 60 * 60)
)

// Option represents an option to New.
type Option func(o *options)

type options struct {
	id     string
	cutoff int
}

// WithCutoff sets the UTC hour before which a conjunction must occur for
// the month to begin on the following day. The default is 12.
func WithCutoff(hour int) Option {
	return func(o *options) {
		o.cutoff = hour
	}
}

// WithID sets the engine's identifier, the default is "fcna".
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// Engine implements engine.Engine using astronomical calculations.
type Engine struct {
	opts options
}

var _ engine.Engine = (*Engine)(nil)

// New returns a new Engine.
func New(opts ...Option) *Engine {
	e := &Engine{opts: options{id: "fcna", cutoff: 12}}
	for _, fn := range opts {
		fn(&e.opts)
	}
	return e
}

// ID implements engine.Engine.
func (e *Engine) ID() string {
	return e.opts.id
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func lunation(year, month int) int {
	return (year-1)*engine.MonthsInYear + month - 1
}

func yearMonth(lunation int) (int, int) {
	year := floorDiv(lunation, engine.MonthsInYear)
	return year + 1, lunation - year*engine.MonthsInYear + 1
}

// Conjunction returns the UTC time of the new moon that precedes the
// specified lunar month.
func (e *Engine) Conjunction(year, month int) time.Time {
	return conjunction(lunation(year, month))
}

func conjunction(lunation int) time.Time {
	jd := newMoon(float64(lunation-lunationOffset)) - deltaT
	secs := (jd - jdUnixEpoch) * 24 * 60 * 60
	return time.Unix(int64(math.Round(secs)), 0).UTC()
}

func (e *Engine) monthStart(lunation int) civil.Date {
	when := conjunction(lunation)
	day := civil.AnchoredFields(when)
	if when.Hour() < e.opts.cutoff {
		return day.AddDays(1)
	}
	return day.AddDays(2)
}

// ToLunar implements engine.Engine.
func (e *Engine) ToLunar(d civil.Date) (engine.Coordinate, bool) {
	jd := float64(d.DayNumber()) + jdUnixEpoch
	l := int(math.Floor((jd-jdLunationZero)/synodicMonth)) + lunationOffset
	start := e.monthStart(l)
	for start.After(d) {
		l--
		start = e.monthStart(l)
	}
	for {
		next := e.monthStart(l + 1)
		if next.After(d) {
			break
		}
		l, start = l+1, next
	}
	year, month := yearMonth(l)
	return engine.Coordinate{Year: year, Month: month, Day: start.DaysUntil(d) + 1}, true
}

// ToSolar implements engine.Engine.
func (e *Engine) ToSolar(year, month, day int) (civil.Date, bool) {
	if month < 1 || month > engine.MonthsInYear || day < 1 || day > e.DaysInMonth(year, month) {
		return civil.Date{}, false
	}
	return e.monthStart(lunation(year, month)).AddDays(day - 1), true
}

// DaysInMonth implements engine.Engine.
func (e *Engine) DaysInMonth(year, month int) int {
	if month < 1 || month > engine.MonthsInYear {
		return 0
	}
	l := lunation(year, month)
	return e.monthStart(l).DaysUntil(e.monthStart(l + 1))
}

func rad(deg float64) float64 {
	return math.Mod(deg, 360) * math.Pi / 180
}

// newMoon returns the Julian Ephemeris Day of the k'th new moon
// after that of 2000-01-06, as per Meeus, Astronomical Algorithms,
// chapter 49, omitting the planetary arguments.
func newMoon(k float64) float64 {
	t := k / 1236.85
	t2, t3, t4 := t*t, t*t*t, t*t*t*t
	jde := jdLunationZero + synodicMonth*k + 0.00015437*t2 - 0.000000150*t3 + 0.00000000073*t4

	ecc := 1 - 0.002516*t - 0.0000074*t2
	m := rad(2.5534 + 29.10535670*k - 0.0000014*t2 - 0.00000011*t3)
	mp := rad(201.5643 + 385.81693528*k + 0.0107582*t2 + 0.00001238*t3 - 0.000000058*t4)
	f := rad(160.7108 + 390.67050284*k - 0.0016118*t2 - 0.00000227*t3 + 0.000000011*t4)
	om := rad(124.7746 - 1.56375588*k + 0.0020672*t2 + 0.00000215*t3)

	jde += -0.40720*math.Sin(mp) +
		0.17241*ecc*math.Sin(m) +
		0.01608*math.Sin(2*mp) +
		0.01039*math.Sin(2*f) +
		0.00739*ecc*math.Sin(mp-m) -
		0.00514*ecc*math.Sin(mp+m) +
		0.00208*ecc*ecc*math.Sin(2*m) -
		0.00111*math.Sin(mp-2*f) -
		0.00057*math.Sin(mp+2*f) +
		0.00056*ecc*math.Sin(2*mp+m) -
		0.00042*math.Sin(3*mp) +
		0.00042*ecc*math.Sin(m+2*f) +
		0.00038*ecc*math.Sin(m-2*f) -
		0.00024*ecc*math.Sin(2*mp-m) -
		0.00017*math.Sin(om) -
		0.00007*math.Sin(mp+2*m) +
		0.00004*math.Sin(2*mp-2*f) +
		0.00004*math.Sin(3*m) +
		0.00003*math.Sin(mp+m-2*f) +
		0.00003*math.Sin(2*mp+2*f) -
		0.00003*math.Sin(mp+m+2*f) +
		0.00003*math.Sin(mp-m+2*f) -
		0.00002*math.Sin(mp-m-2*f) -
		0.00002*math.Sin(3*mp+m) +
		0.00002*math.Sin(4*mp)
	return jde
}
