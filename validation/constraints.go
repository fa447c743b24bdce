// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package validation

import (
	"time"
)

// Constraints restricts the days of the week that may be selected.
// An empty set of Constraints includes every day.
type Constraints struct {
	Weekdays bool // If true, include weekdays
	Weekends bool // If true, include weekends
}

func (c Constraints) String() string {
	switch {
	case c.Weekdays && !c.Weekends:
		return "weekdays only"
	case !c.Weekdays && c.Weekends:
		return "weekends only"
	}
	return "everyday"
}

// Include returns true if the given date satisfies the constraints.
func (c Constraints) Include(when time.Time) bool {
	switch {
	case c.Weekdays && c.Weekends:
		return true
	case c.Weekdays:
		return when.Weekday() >= time.Monday && when.Weekday() <= time.Friday
	case c.Weekends:
		return when.Weekday() == time.Sunday || when.Weekday() == time.Saturday
	}
	return true
}

// Empty returns true if no constraints are set.
func (c Constraints) Empty() bool {
	return !c.Weekdays && !c.Weekends
}
