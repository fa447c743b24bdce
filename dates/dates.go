// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dates provides total, side-effect free conversion, comparison and
// arithmetic for calendar dates. Values that may be absent are represented
// by Date, whose zero value is the absent date. None of the functions in
// this package panic or return errors: malformed input resolves to the
// absent date, false, zero or the empty string.
//
// Calendar arithmetic is performed in the location of the values involved,
// so a Date created in a given location is treated as a local date
// in that location.
package dates

import (
	"fmt"
	"time"
)

// Date represents an optional instant in time. The zero value is the
// absent date.
type Date struct {
	t   time.Time
	set bool
}

// Of returns a Date for t.
func Of(t time.Time) Date {
	return Date{t: t, set: true}
}

// New returns a Date for the start of the specified day in loc, see
// DayStart.
func New(year int, month time.Month, day int, loc *time.Location) Date {
	return Of(DayStart(year, month, day, loc))
}

// DayStart returns the first instant of the specified day in loc. This is
// midnight unless a daylight saving transition skips midnight, in which
// case it is the instant of the transition, eg. 01:00 in America/Santiago
// on 2024-09-08. A nil loc is treated as time.Local. Out of range values
// are normalized as per time.Date.
func DayStart(year int, month time.Month, day int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	year, month, day = time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if t.Day() == day {
		return t
	}
	// time.Date resolves a nonexistent midnight into the previous day.
	if _, end := t.ZoneBounds(); !end.IsZero() && end.Day() == day {
		return end
	}
	for i := 0; i < 24*60 && t.Day() != day; i++ {
		t = t.Add(time.Minute)
	}
	return t
}

// IsSet returns true if d is not the absent date.
func (d Date) IsSet() bool {
	return d.set
}

// Time returns the instant represented by d, or the zero time.Time if
// d is absent.
func (d Date) Time() time.Time {
	return d.t
}

// Before returns true if both dates are set and d is before o.
func (d Date) Before(o Date) bool {
	return d.set && o.set && d.t.Before(o.t)
}

// After returns true if both dates are set and d is after o.
func (d Date) After(o Date) bool {
	return d.set && o.set && d.t.After(o.t)
}

// String returns the ISO date, YYYY-MM-DD, or the empty string.
func (d Date) String() string {
	return FormatISODate(d)
}

// GoString implements fmt.GoStringer.
func (d Date) GoString() string {
	if !d.set {
		return "dates.Date{}"
	}
	return fmt.Sprintf("dates.Of(%s)", d.t.Format(time.RFC3339Nano))
}

// Clock returns the current time.
type Clock func() time.Time

// Now returns the current time, using time.Now if c is nil.
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// StartOfDay returns the start of the day of d in d's location, see
// DayStart.
func StartOfDay(d Date) Date {
	if !d.set {
		return Date{}
	}
	y, m, dd := d.t.Date()
	return Of(DayStart(y, m, dd, d.t.Location()))
}

// DatesEqual returns true if a and b represent the same instant, or if
// both are absent.
func DatesEqual(a, b Date) bool {
	if !a.set && !b.set {
		return true
	}
	if !a.set || !b.set {
		return false
	}
	return a.t.Equal(b.t)
}

// SameDay returns true if a and b fall on the same calendar day, each
// being interpreted in its own location. It returns false if either is
// absent.
func SameDay(a, b Date) bool {
	if !a.set || !b.set {
		return false
	}
	return sameDay(a.t, b.t)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// civilDays returns the number of days between 1970-01-01 and the calendar
// date of t, ignoring time of day and location offsets.
func civilDays(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// DiffInDays returns the number of whole days from anchor to candidate,
// computed on the calendar days of each so that daylight saving transitions
// and the time of day do not affect the result. It returns 0 if either
// date is absent.
func DiffInDays(candidate, anchor Date) int {
	if !candidate.set || !anchor.set {
		return 0
	}
	return int(civilDays(candidate.t) - civilDays(anchor.t))
}

// FormatISODate returns d formatted as YYYY-MM-DD in d's location,
// or the empty string if d is absent.
func FormatISODate(d Date) string {
	if !d.set {
		return ""
	}
	return isoDate(d.t)
}

func isoDate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// IsToday returns true if d falls on the current day.
func IsToday(d Date) bool {
	return IsTodayAt(d, time.Now())
}

// IsTodayAt returns true if d falls on the same day as now.
func IsTodayAt(d Date, now time.Time) bool {
	return SameDay(d, Of(now))
}
