// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"iter"
	"time"

	"cloudeng.io/datepicker/locale"
)

// DateRange returns an iterator that yields every calendar day from start
// to end inclusive. Each value has the time of day and location of start,
// unless start is the start of its day, see DayStart, in which case every
// value is the start of its day. A day on which start's time of day does
// not exist is yielded as the start of that day.
// The iterator is empty if either date is absent or start is after end.
// It may be used any number of times.
func DateRange(start, end Date) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if !start.set || !end.set {
			return
		}
		last := end.t
		loc := start.t.Location()
		y, m, d := start.t.Date()
		atStart := start.t.Equal(DayStart(y, m, d, loc))
		for i := 0; ; i++ {
			day := start.t.AddDate(0, 0, i)
			if ds := DayStart(y, m, d+i, loc); atStart || ds.Day() != day.Day() {
				day = ds
			}
			if day.After(last) {
				return
			}
			if !yield(day) {
				return
			}
		}
	}
}

// FormatDate formats d for the locale specified as a BCP 47 language tag,
// eg. "en-US" or "de", using the long form "January 15, 2024" by default.
// It returns the empty string if d is absent. Unsupported locales are
// formatted as US English.
func FormatDate(d Date, tag string, opts locale.FormatOptions) string {
	if !d.set {
		return ""
	}
	return locale.Lookup(tag).Format(d.t, opts)
}
