// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/errors"
)

// Duration represents a calendar duration. Years and months are
// interpreted in the Hijri calendar, weeks and days are exact.
type Duration struct {
	Years  int
	Months int
	Weeks  int
	Days   int
}

// IsZero returns true if all of the components are zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// Negate returns the duration with all components negated.
func (d Duration) Negate() Duration {
	return Duration{Years: -d.Years, Months: -d.Months, Weeks: -d.Weeks, Days: -d.Days}
}

func (d Duration) negative() bool {
	return d.Years <= 0 && d.Months <= 0 && d.Weeks <= 0 && d.Days <= 0 && !d.IsZero()
}

// String returns the ISO8601 representation of the duration, eg.
// P1Y2M3W4D or -P1M. A zero duration is P0D. ISO8601 has no notation for
// components of differing signs, such durations are written with a sign
// on each negative component, eg. P1M-2D, which ParseDuration rejects;
// only durations whose components share a sign, as returned by Until,
// can be parsed back.
func (d Duration) String() string {
	if d.IsZero() {
		return "P0D"
	}
	var out strings.Builder
	if d.negative() {
		out.WriteByte('-')
		d = d.Negate()
	}
	out.WriteByte('P')
	for _, c := range []struct {
		n          int
		designator byte
	}{
		{d.Years, 'Y'},
		{d.Months, 'M'},
		{d.Weeks, 'W'},
		{d.Days, 'D'},
	} {
		if c.n != 0 {
			out.WriteString(strconv.Itoa(c.n))
			out.WriteByte(c.designator)
		}
	}
	return out.String()
}

// ErrInvalidDuration is returned, wrapped, by ParseDuration.
var ErrInvalidDuration = errors.New("invalid ISO8601 duration")

func consumeN(dur string) (int, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if c >= '0' && c <= '9' {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D':
			n, err := strconv.Atoi(dur[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidDuration)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or duration designator: %s: %w", dur, ErrInvalidDuration)
}

// ParseDuration parses the date portion of an ISO8601 duration,
// [-]PnYnMnWnD, with integer components. Time components are not
// supported. Each designator may appear at most once and in order.
func ParseDuration(dur string) (Duration, error) {
	nl := len(dur)
	hasP, hasNP := (nl > 0 && dur[0] == 'P'), (nl > 1 && dur[0] == '-' && dur[1] == 'P')
	if !hasP && !hasNP {
		return Duration{}, fmt.Errorf("duration must start with P or -P: %s: %w", dur, ErrInvalidDuration)
	}
	orig := dur
	dur = dur[1:]
	if hasNP {
		dur = dur[1:]
	}
	if len(dur) == 0 {
		return Duration{}, fmt.Errorf("empty duration: %s: %w", orig, ErrInvalidDuration)
	}
	var result Duration
	last := -1
	for len(dur) > 0 {
		if dur[0] == 'T' {
			return Duration{}, fmt.Errorf("time components are not supported: %s: %w", orig, ErrInvalidDuration)
		}
		n, designator, idx, err := consumeN(dur)
		if err != nil {
			return Duration{}, err
		}
		dur = dur[idx:]
		pos := strings.IndexByte("YMWD", designator)
		if pos <= last {
			return Duration{}, fmt.Errorf("duplicate or out of order designator: %c: %s: %w", designator, orig, ErrInvalidDuration)
		}
		last = pos
		switch designator {
		case 'Y':
			result.Years = n
		case 'M':
			result.Months = n
		case 'W':
			result.Weeks = n
		case 'D':
			result.Days = n
		}
	}
	if hasNP {
		result = result.Negate()
	}
	return result, nil
}

// Parse is like ParseDuration but stores its result in d.
func (d *Duration) Parse(val string) error {
	nd, err := ParseDuration(val)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
