// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/hijri/civil"
)

// DefaultMonthDayYear is the Hijri year used by MonthDayFromFields when
// no year is specified.
const DefaultMonthDayYear = 1444

// Fields represents a partially specified Hijri date, zero values are
// treated as being unset. The month may be specified using either Month
// or MonthCode, if both are specified they must agree.
type Fields struct {
	Year      int    `yaml:"year,omitempty"`
	Month     int    `yaml:"month,omitempty"`
	MonthCode string `yaml:"month_code,omitempty"`
	Day       int    `yaml:"day,omitempty"`
}

// MergeFields returns base with every field that is set in override
// replaced by the value from override. Since Month and MonthCode are
// alternate forms of the same field, setting either in override
// replaces both.
func MergeFields(base, override Fields) Fields {
	merged := base
	if override.Year != 0 {
		merged.Year = override.Year
	}
	if override.Month != 0 || len(override.MonthCode) > 0 {
		merged.Month = override.Month
		merged.MonthCode = override.MonthCode
	}
	if override.Day != 0 {
		merged.Day = override.Day
	}
	return merged
}

func (f Fields) month() (int, error) {
	if len(f.MonthCode) == 0 {
		return f.Month, nil
	}
	m, err := ParseMonthCode(f.MonthCode)
	if err != nil {
		return 0, err
	}
	if f.Month != 0 && f.Month != m {
		return 0, fmt.Errorf("month %v and month code %v disagree", f.Month, f.MonthCode)
	}
	return m, nil
}

func (f Fields) require(year, month, day bool) error {
	errs := &errors.M{}
	if year && f.Year == 0 {
		errs.Append(fmt.Errorf("missing year"))
	}
	if month && f.Month == 0 && len(f.MonthCode) == 0 {
		errs.Append(fmt.Errorf("missing month or month code"))
	}
	if day && f.Day == 0 {
		errs.Append(fmt.Errorf("missing day"))
	}
	return errs.Err()
}

func (c *Calendar) fromFields(year int, f Fields, overflow Overflow) (civil.Date, error) {
	month, err := f.month()
	if err != nil {
		return civil.Date{}, err
	}
	day, err := c.overflow(year, month, f.Day, overflow)
	if err != nil {
		return civil.Date{}, err
	}
	return c.FromLunar(year, month, day)
}

// DateFromFields returns the civil date for the Hijri year, month and day
// in f, all of which must be set.
func (c *Calendar) DateFromFields(f Fields, overflow Overflow) (civil.Date, error) {
	if err := f.require(true, true, true); err != nil {
		return civil.Date{}, err
	}
	return c.fromFields(f.Year, f, overflow)
}

// YearMonthFromFields returns the civil date of the first day of the Hijri
// year and month in f. Any day in f is ignored.
func (c *Calendar) YearMonthFromFields(f Fields) (civil.Date, error) {
	if err := f.require(true, true, false); err != nil {
		return civil.Date{}, err
	}
	f.Day = 1
	return c.fromFields(f.Year, f, Constrain)
}

// MonthDayFromFields returns the civil date of the Hijri month and day in
// f, in the year specified by f or in DefaultMonthDayYear if f does not
// specify a year.
func (c *Calendar) MonthDayFromFields(f Fields, overflow Overflow) (civil.Date, error) {
	if err := f.require(false, true, true); err != nil {
		return civil.Date{}, err
	}
	year := f.Year
	if year == 0 {
		year = DefaultMonthDayYear
	}
	return c.fromFields(year, f, overflow)
}
