// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/hijri/civil"
	"cloudeng.io/hijri/engine"
)

const (
	// MonthsInYear is the number of months in every Hijri year.
	MonthsInYear = engine.MonthsInYear
	// DaysInWeek is the number of days in a week.
	DaysInWeek = 7
	// DaysInLeapYear is the number of days in a Hijri leap year.
	DaysInLeapYear = 355
)

// MonthCode returns the month code, M01 to M12, for the specified month.
// Hijri months are never intercalary so no month carries a leap suffix.
func MonthCode(month int) string {
	return fmt.Sprintf("M%02d", month)
}

// ParseMonthCode parses a month code of the form M01 to M12.
func ParseMonthCode(code string) (int, error) {
	if len(code) != 3 || !strings.HasPrefix(code, "M") || strings.ContainsAny(code[1:], "+-") {
		return 0, fmt.Errorf("invalid month code: %q", code)
	}
	n, err := strconv.Atoi(code[1:])
	if err != nil || n < 1 || n > MonthsInYear {
		return 0, fmt.Errorf("invalid month code: %q", code)
	}
	return n, nil
}

// Year returns the Hijri year of d.
func (c *Calendar) Year(d civil.Date) (int, error) {
	lc, err := c.ToLunar(d)
	return lc.Year, err
}

// Month returns the Hijri month, 1-12, of d.
func (c *Calendar) Month(d civil.Date) (int, error) {
	lc, err := c.ToLunar(d)
	return lc.Month, err
}

// Day returns the Hijri day of month of d.
func (c *Calendar) Day(d civil.Date) (int, error) {
	lc, err := c.ToLunar(d)
	return lc.Day, err
}

// MonthCode returns the month code of the Hijri month of d.
func (c *Calendar) MonthCode(d civil.Date) (string, error) {
	lc, err := c.ToLunar(d)
	if err != nil {
		return "", err
	}
	return MonthCode(lc.Month), nil
}

// DaysInMonth returns the number of days, 29 or 30, in the Hijri month of d.
func (c *Calendar) DaysInMonth(d civil.Date) (int, error) {
	lc, err := c.ToLunar(d)
	if err != nil {
		return 0, err
	}
	return c.engine.DaysInMonth(lc.Year, lc.Month), nil
}

func (c *Calendar) daysInYear(year int) int {
	total := 0
	for m := 1; m <= MonthsInYear; m++ {
		total += c.engine.DaysInMonth(year, m)
	}
	return total
}

// DaysInYear returns the number of days in the Hijri year of d. This is
// 354 or 355 for tabular calendars, the astronomical engine may very
// rarely return 353 (see cloudeng.io/hijri/engine/astro).
func (c *Calendar) DaysInYear(d civil.Date) (int, error) {
	lc, err := c.ToLunar(d)
	if err != nil {
		return 0, err
	}
	return c.daysInYear(lc.Year), nil
}

// InLeapYear returns true if the Hijri year of d has 355 days. A 353 day
// year, which only the astronomical engine produces, is not a leap year.
func (c *Calendar) InLeapYear(d civil.Date) (bool, error) {
	n, err := c.DaysInYear(d)
	return n == DaysInLeapYear, err
}

// MonthsInYear always returns 12.
func (c *Calendar) MonthsInYear(civil.Date) int {
	return MonthsInYear
}

// DaysInWeek always returns 7.
func (c *Calendar) DaysInWeek(civil.Date) int {
	return DaysInWeek
}

// DayOfWeek returns the ISO 8601 day of the week, Monday is 1 and Sunday
// is 7. The day of the week is the same in all calendars.
func (c *Calendar) DayOfWeek(d civil.Date) int {
	return d.Weekday()
}

func (c *Calendar) dayOfYear(lc engine.Coordinate) int {
	doy := lc.Day
	for m := 1; m < lc.Month; m++ {
		doy += c.engine.DaysInMonth(lc.Year, m)
	}
	return doy
}

// DayOfYear returns the day of the Hijri year of d, starting at 1.
func (c *Calendar) DayOfYear(d civil.Date) (int, error) {
	lc, err := c.ToLunar(d)
	if err != nil {
		return 0, err
	}
	return c.dayOfYear(lc), nil
}

func weekOfYear(dayOfYear int) int {
	return (dayOfYear + DaysInWeek - 1) / DaysInWeek
}

// WeekOfYear returns ceil(DayOfYear/7). There is no standard week
// numbering for the Hijri calendar and this value is intended only to
// provide a consistent ordering of weeks within a year; in particular
// weeks do not start on any specific day of the week.
func (c *Calendar) WeekOfYear(d civil.Date) (int, error) {
	doy, err := c.DayOfYear(d)
	if err != nil {
		return 0, err
	}
	return weekOfYear(doy), nil
}

// Info contains all of the Hijri field values for a civil date.
type Info struct {
	Date         civil.Date `yaml:"date"`
	Year         int        `yaml:"year"`
	Month        int        `yaml:"month"`
	Day          int        `yaml:"day"`
	MonthCode    string     `yaml:"month_code"`
	DaysInMonth  int        `yaml:"days_in_month"`
	DaysInYear   int        `yaml:"days_in_year"`
	InLeapYear   bool       `yaml:"in_leap_year"`
	MonthsInYear int        `yaml:"months_in_year"`
	DaysInWeek   int        `yaml:"days_in_week"`
	DayOfWeek    int        `yaml:"day_of_week"`
	DayOfYear    int        `yaml:"day_of_year"`
	WeekOfYear   int        `yaml:"week_of_year"`
}

// Describe returns all of the Hijri field values for d using a single
// conversion.
func (c *Calendar) Describe(d civil.Date) (Info, error) {
	lc, err := c.ToLunar(d)
	if err != nil {
		return Info{}, err
	}
	diy := c.daysInYear(lc.Year)
	doy := c.dayOfYear(lc)
	return Info{
		Date:         d,
		Year:         lc.Year,
		Month:        lc.Month,
		Day:          lc.Day,
		MonthCode:    MonthCode(lc.Month),
		DaysInMonth:  c.engine.DaysInMonth(lc.Year, lc.Month),
		DaysInYear:   diy,
		InLeapYear:   diy == DaysInLeapYear,
		MonthsInYear: MonthsInYear,
		DaysInWeek:   DaysInWeek,
		DayOfWeek:    d.Weekday(),
		DayOfYear:    doy,
		WeekOfYear:   weekOfYear(doy),
	}, nil
}
