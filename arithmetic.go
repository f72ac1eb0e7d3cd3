// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"fmt"
	"strings"

	"cloudeng.io/hijri/civil"
	"cloudeng.io/hijri/engine"
)

// Overflow determines how a day of month that does not exist in a target
// month is handled.
type Overflow int

const (
	// Constrain moves the day to the last day of the target month.
	Constrain Overflow = iota
	// Reject returns an OutOfRangeError.
	Reject
)

func (o Overflow) String() string {
	switch o {
	case Constrain:
		return "constrain"
	case Reject:
		return "reject"
	}
	return fmt.Sprintf("Overflow(%d)", int(o))
}

// ParseOverflow parses "constrain" or "reject". An empty string is
// treated as "constrain".
func ParseOverflow(val string) (Overflow, error) {
	switch strings.ToLower(val) {
	case "", "constrain":
		return Constrain, nil
	case "reject":
		return Reject, nil
	}
	return 0, fmt.Errorf("invalid overflow: %q, expected constrain or reject", val)
}

// Unit is the largest unit to be used when computing the difference
// between two dates.
type Unit int

const (
	Days Unit = iota
	Weeks
	Months
	Years
)

func (u Unit) String() string {
	switch u {
	case Days:
		return "days"
	case Weeks:
		return "weeks"
	case Months:
		return "months"
	case Years:
		return "years"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit parses a unit name in singular or plural form, eg. "day"
// or "days".
func ParseUnit(val string) (Unit, error) {
	switch strings.TrimSuffix(strings.ToLower(val), "s") {
	case "day":
		return Days, nil
	case "week":
		return Weeks, nil
	case "month":
		return Months, nil
	case "year":
		return Years, nil
	}
	return 0, fmt.Errorf("invalid unit: %q, expected days, weeks, months or years", val)
}

// normalizeMonth folds months outside of 1-12 into the year.
func normalizeMonth(year, month int) (int, int) {
	m := month - 1
	q := m / MonthsInYear
	if m%MonthsInYear < 0 {
		q--
	}
	return year + q, m - q*MonthsInYear + 1
}

func (c *Calendar) overflow(year, month, day int, overflow Overflow) (int, error) {
	dim := c.engine.DaysInMonth(year, month)
	if dim == 0 {
		return day, nil // left to the engine to reject.
	}
	switch {
	case day > dim:
		if overflow == Reject {
			return 0, &OutOfRangeError{
				Calendar:   c.id,
				Coordinate: engine.Coordinate{Year: year, Month: month, Day: day},
				Reason:     fmt.Sprintf("does not exist, %04d-%02d has %v days", year, month, dim),
			}
		}
		return dim, nil
	case day < 1:
		if overflow == Reject {
			return 0, &OutOfRangeError{
				Calendar:   c.id,
				Coordinate: engine.Coordinate{Year: year, Month: month, Day: day},
				Reason:     "does not exist",
			}
		}
		return 1, nil
	}
	return day, nil
}

// Add adds the supplied duration to d. Years and months are added in the
// Hijri calendar, the resulting day of month is constrained to the length
// of the target month or rejected according to overflow. Weeks and days
// are then added as an exact number of days.
func (c *Calendar) Add(d civil.Date, dur Duration, overflow Overflow) (civil.Date, error) {
	lc, err := c.ToLunar(d)
	if err != nil {
		return civil.Date{}, err
	}
	year, month := normalizeMonth(lc.Year+dur.Years, lc.Month+dur.Months)
	day, err := c.overflow(year, month, lc.Day, overflow)
	if err != nil {
		return civil.Date{}, err
	}
	sd, err := c.FromLunar(year, month, day)
	if err != nil {
		return civil.Date{}, err
	}
	return sd.AddDays(dur.Days + dur.Weeks*DaysInWeek), nil
}

// Until returns the duration from start to end. For Days and Weeks the
// result is an exact number of days (and weeks). For Months and Years the
// difference is computed in the Hijri calendar, borrowing from the month
// preceding end's month when the day of month of end is earlier than that
// of start. If end is earlier than start the result is the negation of
// Until(end, start, largest).
func (c *Calendar) Until(start, end civil.Date, largest Unit) (Duration, error) {
	switch largest {
	case Days:
		return Duration{Days: start.DaysUntil(end)}, nil
	case Weeks:
		days := start.DaysUntil(end)
		return Duration{Weeks: days / DaysInWeek, Days: days % DaysInWeek}, nil
	case Months, Years:
	default:
		return Duration{}, fmt.Errorf("unsupported unit: %v", largest)
	}
	s, err := c.ToLunar(start)
	if err != nil {
		return Duration{}, err
	}
	e, err := c.ToLunar(end)
	if err != nil {
		return Duration{}, err
	}
	if e.Compare(s) < 0 {
		return c.difference(e, s, largest).Negate(), nil
	}
	return c.difference(s, e, largest), nil
}

func (c *Calendar) difference(start, end engine.Coordinate, largest Unit) Duration {
	years := end.Year - start.Year
	months := end.Month - start.Month
	days := end.Day - start.Day
	if days < 0 {
		months--
		by, bm := normalizeMonth(end.Year, end.Month-1)
		days += c.engine.DaysInMonth(by, bm)
	}
	if months < 0 {
		years--
		months += MonthsInYear
	}
	if largest == Months {
		return Duration{Months: years*MonthsInYear + months, Days: days}
	}
	return Duration{Years: years, Months: months, Days: days}
}
