// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package holidays provides sets of named days, such as public holidays,
// that can be used to disable dates in a date picker. Sets may be read
// from and written to iCalendar (RFC 5545) files.
package holidays

import (
	"fmt"
	"slices"
	"time"

	"cloudeng.io/datepicker/dates"
)

// Set represents a set of named days keyed by their ISO date, YYYY-MM-DD.
type Set map[string]string

func isoDate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// Add adds the calendar day of t to the set, replacing the name of any
// existing entry for that day.
func (s Set) Add(t time.Time, name string) {
	s[isoDate(t)] = name
}

// Contains returns true if the calendar day of t is in the set.
func (s Set) Contains(t time.Time) bool {
	_, ok := s[isoDate(t)]
	return ok
}

// Disabled is the same as Contains and is intended for use as a
// validation.Options.DisabledFunc.
func (s Set) Disabled(t time.Time) bool {
	return s.Contains(t)
}

// Name returns the name of the calendar day of t, if any.
func (s Set) Name(t time.Time) (string, bool) {
	n, ok := s[isoDate(t)]
	return n, ok
}

// Merge adds all of the entries in o to s.
func (s Set) Merge(o Set) {
	for k, v := range o {
		s[k] = v
	}
}

// Dates returns the days in the set, in chronological order, as midnight
// in loc. A nil loc is treated as time.Local.
func (s Set) Dates(loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.Local
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		t, err := time.Parse(time.DateOnly, k)
		if err != nil {
			continue
		}
		out = append(out, dates.DayStart(t.Year(), t.Month(), t.Day(), loc))
	}
	return out
}

// Easter returns Easter Sunday, in the Gregorian calendar, for the given
// year as midnight in loc, computed using the Meeus/Jones/Butcher algorithm.
func Easter(year int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1
	return dates.DayStart(year, time.Month(month), day, loc)
}

// EasterRelative returns a Set containing the days that are the specified
// number of days from Easter Sunday in each of the years from and to
// inclusive, eg. -2 for Good Friday and 1 for Easter Monday.
func EasterRelative(from, to int, offsets ...int) Set {
	s := Set{}
	for year := from; year <= to; year++ {
		easter := Easter(year, time.UTC)
		for _, o := range offsets {
			s.Add(easter.AddDate(0, 0, o), fmt.Sprintf("Easter %+d", o))
		}
	}
	return s
}
