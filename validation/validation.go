// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package validation determines whether dates are selectable given
// optional inclusive minimum and maximum bounds, a list of disabled dates,
// a caller supplied predicate and weekday/weekend constraints.
//
// A Validator is immutable once created and may be shared freely, for
// example as the predicate used to build any number of calendar grids
// concurrently.
package validation

import (
	"time"

	"cloudeng.io/datepicker/dates"
)

// Options configures a Validator. MinDate, MaxDate and the entries of
// DisabledDates may be any value accepted by dates.ToDateIn.
type Options struct {
	MinDate       any
	MaxDate       any
	DisabledDates []any
	// DisabledFunc, if non-nil, is called for every candidate date
	// and should return true for dates that are to be disabled.
	DisabledFunc func(time.Time) bool
	Constraints  Constraints
	// Location is used to interpret the bounds and disabled dates when they
	// are specified as strings or timestamps, it defaults to time.Local.
	Location *time.Location
}

// Validator decides whether a given date is selectable.
type Validator struct {
	min, max     dates.Date
	disabled     []time.Time
	disabledFunc func(time.Time) bool
	constraints  Constraints
}

// New returns a Validator for the supplied options. The bounds and disabled
// dates are normalized once; disabled dates that cannot be normalized are
// ignored.
func New(opts Options) *Validator {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	v := &Validator{
		min:          dates.ToDateIn(opts.MinDate, loc),
		max:          dates.ToDateIn(opts.MaxDate, loc),
		disabledFunc: opts.DisabledFunc,
		constraints:  opts.Constraints,
	}
	for _, d := range opts.DisabledDates {
		if nd := dates.ToDateIn(d, loc); nd.IsSet() {
			v.disabled = append(v.disabled, nd.Time())
		}
	}
	return v
}

// MinDate returns the normalized lower bound, which may be absent.
func (v *Validator) MinDate() dates.Date {
	if v == nil {
		return dates.Date{}
	}
	return v.min
}

// MaxDate returns the normalized upper bound, which may be absent.
func (v *Validator) MaxDate() dates.Date {
	if v == nil {
		return dates.Date{}
	}
	return v.max
}

// IsAllowed returns false if candidate is before the minimum or after
// the maximum bound, falls on the same day as any disabled date, is
// reported as disabled by the disabled predicate or is excluded by the
// weekday constraints. It returns true otherwise.
//
// The bounds are compared as instants, so a candidate at midnight on the
// day of a minimum bound that has a non-zero time of day is not allowed.
// Callers that need day granularity should supply bounds at the start of
// the day. A nil Validator allows all dates.
func (v *Validator) IsAllowed(candidate time.Time) bool {
	if v == nil {
		return true
	}
	if v.min.IsSet() && candidate.Before(v.min.Time()) {
		return false
	}
	if v.max.IsSet() && candidate.After(v.max.Time()) {
		return false
	}
	cd := dates.Of(candidate)
	for _, d := range v.disabled {
		if dates.SameDay(cd, dates.Of(d)) {
			return false
		}
	}
	if v.disabledFunc != nil && v.disabledFunc(candidate) {
		return false
	}
	return v.constraints.Include(candidate)
}

// ValidateDateRange returns true if either endpoint is absent, since an
// incomplete range is trivially valid. Otherwise it returns false if
// start is after end and true only if both endpoints are allowed.
func (v *Validator) ValidateDateRange(start, end dates.Date) bool {
	if !start.IsSet() || !end.IsSet() {
		return true
	}
	if start.After(end) {
		return false
	}
	return v.IsAllowed(start.Time()) && v.IsAllowed(end.Time())
}

// ValidateMultipleDates returns true if every one of the supplied dates is
// allowed, including when none are supplied.
func (v *Validator) ValidateMultipleDates(ds []time.Time) bool {
	for _, d := range ds {
		if !v.IsAllowed(d) {
			return false
		}
	}
	return true
}
