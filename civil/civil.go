// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package civil provides a proleptic Gregorian calendar date that carries
// neither a time of day nor a location. It is the interchange coordinate
// system used when converting to and from other calendars.
//
// Two readers are provided for obtaining a Date from a time.Time and they
// differ in which fields of the time they read:
//
//   - LocalFields reads the wall-clock year, month and day in the time's
//     own location.
//   - AnchoredFields reads the year, month and day of the time expressed
//     in UTC.
//
// Code that converts between calendars must choose one explicitly, since
// mixing them introduces a one day skew that depends on the host's
// timezone.
package civil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

func daysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// Date represents a year, month and day in the proleptic Gregorian calendar.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the Date for the specified year, month and day. Values that
// fall outside of their usual ranges are normalized as per time.Date, so
// that for example October 32 becomes November 1.
func New(year int, month time.Month, day int) Date {
	return AnchoredFields(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// LocalFields returns the Date made up of the wall-clock year, month and day
// of t in t's own location.
func LocalFields(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// AnchoredFields returns the Date made up of the year, month and day of t
// when expressed in UTC.
func AnchoredFields(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: m, Day: d}
}

// In returns midnight at the start of the date in the specified location.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// UTC is equivalent to In(time.UTC).
func (d Date) UTC() time.Time {
	return d.In(time.UTC)
}

// IsZero returns true for the zero value of Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Valid returns true if the month and day are valid for the year.
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= daysInMonth(d.Year, d.Month)
}

const secondsPerDay = 24 * 60 * 60

// DayNumber returns the number of days between 1970-01-01 and d, it is
// negative for earlier dates.
func (d Date) DayNumber() int {
	return int(d.UTC().Unix() / secondsPerDay)
}

// FromDayNumber is the inverse of DayNumber.
func FromDayNumber(n int) Date {
	return AnchoredFields(time.Unix(int64(n)*secondsPerDay, 0))
}

// AddDays returns the date n days after d, n may be negative.
func (d Date) AddDays(n int) Date {
	return New(d.Year, d.Month, d.Day+n)
}

// DaysUntil returns the number of days from d to e, it is negative if e
// is before d.
func (d Date) DaysUntil(e Date) int {
	return e.DayNumber() - d.DayNumber()
}

// Weekday returns the ISO 8601 day of the week, Monday is 1 and Sunday is 7.
func (d Date) Weekday() int {
	wd := d.UTC().Weekday()
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same as
// or after e.
func (d Date) Compare(e Date) int {
	switch {
	case d.Year != e.Year:
		return cmpInt(d.Year, e.Year)
	case d.Month != e.Month:
		return cmpInt(int(d.Month), int(e.Month))
	}
	return cmpInt(d.Day, e.Day)
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

// Before returns true if d is before e.
func (d Date) Before(e Date) bool {
	return d.Compare(e) < 0
}

// After returns true if d is after e.
func (d Date) After(e Date) bool {
	return d.Compare(e) > 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

const expectedDateFormat = "yyyy-mm-dd"

// Parse parses a date in the format yyyy-mm-dd, the month and day may
// be specified using one or two digits. The day is checked against the
// number of days in the month for that year.
func Parse(val string) (Date, error) {
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormat)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %s", parts[0])
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return Date{}, fmt.Errorf("invalid month: %s", parts[1])
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %s", parts[2])
	}
	if day < 1 || day > daysInMonth(year, time.Month(month)) {
		return Date{}, fmt.Errorf("invalid day for %v %v: %d", time.Month(month), year, day)
	}
	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(val string) Date {
	d, err := Parse(val)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse is like the package level Parse function but stores its result in d.
func (d *Date) Parse(val string) error {
	nd, err := Parse(val)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	return d.Parse(string(text))
}
