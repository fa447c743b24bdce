// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package validation_test

import (
	"testing"
	"time"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/validation"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBounds(t *testing.T) {
	v := validation.New(validation.Options{
		MinDate:  "2024-01-01",
		MaxDate:  "2024-01-31",
		Location: time.UTC,
	})
	for _, tc := range []struct {
		when time.Time
		want bool
	}{
		{day(2023, 12, 31), false},
		{day(2024, 1, 1), true},
		{day(2024, 1, 15), true},
		{day(2024, 1, 31), true},
		{time.Date(2024, 1, 31, 0, 0, 1, 0, time.UTC), false},
		{day(2024, 2, 1), false},
	} {
		if got, want := v.IsAllowed(tc.when), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.when, got, want)
		}
	}
	if got, want := v.MinDate().String(), "2024-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := v.MaxDate().String(), "2024-01-31"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Bounds are compared as instants.
	v = validation.New(validation.Options{
		MinDate:  time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
		Location: time.UTC,
	})
	if v.IsAllowed(day(2024, 1, 10)) {
		t.Errorf("midnight before a midday minimum should not be allowed")
	}
	if !v.IsAllowed(day(2024, 1, 11)) {
		t.Errorf("a day after the minimum should be allowed")
	}

	// Unparseable bounds are ignored.
	v = validation.New(validation.Options{MinDate: "not a date", MaxDate: 42.5e16})
	if !v.IsAllowed(day(1900, 1, 1)) || !v.IsAllowed(day(2900, 1, 1)) {
		t.Errorf("absent bounds should allow all dates")
	}
	if v.MinDate().IsSet() || v.MaxDate().IsSet() {
		t.Errorf("bounds should be absent")
	}
}

func TestDisabled(t *testing.T) {
	v := validation.New(validation.Options{
		DisabledDates: []any{
			"2024-01-15",
			day(2024, 1, 20).Add(15 * time.Hour),
			day(2024, 1, 25).UnixMilli(),
			"garbage",
			nil,
		},
		Location: time.UTC,
	})
	for _, tc := range []struct {
		when time.Time
		want bool
	}{
		{day(2024, 1, 14), true},
		{day(2024, 1, 15), false},
		{day(2024, 1, 15).Add(23 * time.Hour), false},
		{day(2024, 1, 20), false},
		{day(2024, 1, 25), false},
		{day(2024, 1, 26), true},
	} {
		if got, want := v.IsAllowed(tc.when), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.when, got, want)
		}
	}

	v = validation.New(validation.Options{
		DisabledFunc: func(t time.Time) bool { return t.Day() == 13 },
		Location:     time.UTC,
	})
	if v.IsAllowed(day(2024, 9, 13)) {
		t.Errorf("the 13th should be disabled")
	}
	if !v.IsAllowed(day(2024, 9, 14)) {
		t.Errorf("the 14th should be allowed")
	}
}

func TestConstraints(t *testing.T) {
	// 2024-01-13 is a Saturday.
	sat, sun, mon := day(2024, 1, 13), day(2024, 1, 14), day(2024, 1, 15)
	for _, tc := range []struct {
		c             validation.Constraints
		sat, sun, mon bool
		str           string
	}{
		{validation.Constraints{}, true, true, true, "everyday"},
		{validation.Constraints{Weekdays: true}, false, false, true, "weekdays only"},
		{validation.Constraints{Weekends: true}, true, true, false, "weekends only"},
		{validation.Constraints{Weekdays: true, Weekends: true}, true, true, true, "everyday"},
	} {
		v := validation.New(validation.Options{Constraints: tc.c, Location: time.UTC})
		if got, want := v.IsAllowed(sat), tc.sat; got != want {
			t.Errorf("%v: saturday: got %v, want %v", tc.c, got, want)
		}
		if got, want := v.IsAllowed(sun), tc.sun; got != want {
			t.Errorf("%v: sunday: got %v, want %v", tc.c, got, want)
		}
		if got, want := v.IsAllowed(mon), tc.mon; got != want {
			t.Errorf("%v: monday: got %v, want %v", tc.c, got, want)
		}
		if got, want := tc.c.String(), tc.str; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if !(validation.Constraints{}).Empty() {
		t.Errorf("zero value constraints should be empty")
	}
}

func TestNilValidator(t *testing.T) {
	var v *validation.Validator
	if !v.IsAllowed(day(2024, 1, 1)) {
		t.Errorf("a nil validator should allow all dates")
	}
	if v.MinDate().IsSet() || v.MaxDate().IsSet() {
		t.Errorf("a nil validator has no bounds")
	}
	if !v.ValidateMultipleDates([]time.Time{day(2024, 1, 1)}) {
		t.Errorf("a nil validator should allow all dates")
	}
}

func TestValidateDateRange(t *testing.T) {
	v := validation.New(validation.Options{
		MinDate:       "2024-01-01",
		MaxDate:       "2024-01-31",
		DisabledDates: []any{"2024-01-20"},
		Location:      time.UTC,
	})
	d := func(dd int) dates.Date { return dates.Of(day(2024, 1, dd)) }
	for i, tc := range []struct {
		start, end dates.Date
		want       bool
	}{
		{d(5), d(10), true},
		{d(10), d(10), true},
		{d(10), d(5), false},
		{d(5), d(20), false},
		{d(5), dates.Of(day(2024, 2, 1)), false},
		{dates.Date{}, d(10), true},
		{d(10), dates.Date{}, true},
		{dates.Date{}, dates.Date{}, true},
		{dates.Date{}, dates.Of(day(2025, 1, 1)), true},
	} {
		if got, want := v.ValidateDateRange(tc.start, tc.end), tc.want; got != want {
			t.Errorf("%v: %v..%v: got %v, want %v", i, tc.start, tc.end, got, want)
		}
	}

	if !v.ValidateMultipleDates(nil) {
		t.Errorf("no dates should be valid")
	}
	if !v.ValidateMultipleDates([]time.Time{day(2024, 1, 2), day(2024, 1, 3)}) {
		t.Errorf("allowed dates should be valid")
	}
	if v.ValidateMultipleDates([]time.Time{day(2024, 1, 2), day(2024, 1, 20)}) {
		t.Errorf("a disabled date should be invalid")
	}
}
