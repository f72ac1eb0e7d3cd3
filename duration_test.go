// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri_test

import (
	"errors"
	"testing"

	"cloudeng.io/hijri"
)

func TestParseDuration(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want hijri.Duration
	}{
		{"P1Y", hijri.Duration{Years: 1}},
		{"P2M", hijri.Duration{Months: 2}},
		{"P3W", hijri.Duration{Weeks: 3}},
		{"P4D", hijri.Duration{Days: 4}},
		{"P0D", hijri.Duration{}},
		{"P1Y2M3W4D", hijri.Duration{Years: 1, Months: 2, Weeks: 3, Days: 4}},
		{"P1Y4D", hijri.Duration{Years: 1, Days: 4}},
		{"-P1M", hijri.Duration{Months: -1}},
		{"-P1Y2D", hijri.Duration{Years: -1, Days: -2}},
		{"P120M", hijri.Duration{Months: 120}},
	} {
		got, err := hijri.ParseDuration(tc.val)
		if err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %+v, want %+v", tc.val, got, tc.want)
		}
		var d hijri.Duration
		if err := d.Parse(tc.val); err != nil {
			t.Errorf("%v: %v", tc.val, err)
		}
		if d != tc.want {
			t.Errorf("%v: got %+v, want %+v", tc.val, d, tc.want)
		}
	}
}

func TestParseDurationErrors(t *testing.T) {
	for _, val := range []string{
		"", "P", "-P", "1Y", "Y", "PY", "P1", "P1X", "P1.5D",
		"PT1H", "P1DT1H", "P1D1Y", "P1M1M", "P-1D", "+P1D",
	} {
		_, err := hijri.ParseDuration(val)
		if !errors.Is(err, hijri.ErrInvalidDuration) {
			t.Errorf("%q: unexpected or missing error: %v", val, err)
		}
	}
}

func TestDurationString(t *testing.T) {
	for _, tc := range []struct {
		dur  hijri.Duration
		want string
	}{
		{hijri.Duration{}, "P0D"},
		{hijri.Duration{Years: 1, Months: 2, Weeks: 3, Days: 4}, "P1Y2M3W4D"},
		{hijri.Duration{Months: 1}, "P1M"},
		{hijri.Duration{Months: -1}, "-P1M"},
		{hijri.Duration{Months: -11, Days: -25}, "-P11M25D"},
	} {
		if got, want := tc.dur.String(), tc.want; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		parsed, err := hijri.ParseDuration(tc.want)
		if err != nil {
			t.Errorf("%v: %v", tc.want, err)
		}
		if got, want := parsed, tc.dur; got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	}
	if !(hijri.Duration{}).IsZero() {
		t.Errorf("zero duration is not zero")
	}
	if got, want := (hijri.Duration{Years: 1, Days: -1}).Negate(), (hijri.Duration{Years: -1, Days: 1}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDurationRoundTrip(t *testing.T) {
	for _, cal := range calendars() {
		start := pd("2022-08-13")
		for _, unit := range []hijri.Unit{hijri.Days, hijri.Weeks, hijri.Months, hijri.Years} {
			for d := pd("2021-01-01"); d.Before(pd("2025-01-01")); d = d.AddDays(17) {
				dur, err := cal.Until(start, d, unit)
				if err != nil {
					t.Fatalf("%v: %v: %v", cal, d, err)
				}
				parsed, err := hijri.ParseDuration(dur.String())
				if err != nil {
					t.Errorf("%v: %v -> %v (%v): %v: %v", cal, start, d, unit, dur, err)
					continue
				}
				if got, want := parsed, dur; got != want {
					t.Errorf("%v: got %+v, want %+v", cal, got, want)
				}
			}
		}
	}

	mixed := hijri.Duration{Months: 1, Days: -2}
	if got, want := mixed.String(), "P1M-2D"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := hijri.ParseDuration(mixed.String()); !errors.Is(err, hijri.ErrInvalidDuration) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}
