// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/hijri/civil"
	"cloudeng.io/hijri/engine"
)

// ErrOutOfRange is matched, via errors.Is, by every OutOfRangeError.
var ErrOutOfRange = errors.New("out of range")

// OutOfRangeError is returned whenever a date cannot be represented in
// the other calendar, either because the engine does not support it or
// because the requested lunar date does not exist. Exactly one of Date
// or Coordinate is set.
type OutOfRangeError struct {
	Calendar   string
	Date       civil.Date
	Coordinate engine.Coordinate
	Reason     string
}

func (e *OutOfRangeError) Error() string {
	reason := e.Reason
	if len(reason) == 0 {
		reason = "is outside of the supported range"
	}
	if !e.Date.IsZero() {
		return fmt.Sprintf("%v: %v %v", e.Calendar, e.Date, reason)
	}
	return fmt.Sprintf("%v: lunar date %v %v", e.Calendar, e.Coordinate, reason)
}

// Is implements errors.Is.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
