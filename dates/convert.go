// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"math"
	"strings"
	"time"
)

// maxMillis is the largest magnitude timestamp, in milliseconds from the
// Unix epoch, that is accepted: +/- 100,000,000 days.
const maxMillis = 8.64e15

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
}

var dateOnlyLayouts = map[string]struct{}{
	"2006-01-02": {},
	"2006-01":    {},
}

// ToDate is like ToDateIn with time.Local.
func ToDate(value any) Date {
	return ToDateIn(value, time.Local)
}

// ToDateIn normalizes value to a Date. The following are supported:
//
//   - Date and *Date, returned as is.
//   - time.Time and *time.Time, where the zero time is treated as absent.
//   - strings in RFC 3339 format or any of the forms 2006-01-02T15:04:05,
//     2006-01-02T15:04, 2006-01-02 15:04:05, 2006-01-02 or 2006-01. Strings
//     without a zone offset are interpreted in loc.
//   - integer and floating point timestamps in milliseconds since the Unix
//     epoch, returned in loc.
//
// nil, empty or unparseable strings, NaN or infinite timestamps, timestamps
// further than 100,000,000 days from the epoch, nil pointers and values of
// any other type all result in the absent date.
func ToDateIn(value any, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	switch v := value.(type) {
	case nil:
		return Date{}
	case Date:
		return v
	case *Date:
		if v == nil {
			return Date{}
		}
		return *v
	case time.Time:
		return fromTime(v)
	case *time.Time:
		if v == nil {
			return Date{}
		}
		return fromTime(*v)
	case string:
		return parse(v, loc)
	case *string:
		if v == nil {
			return Date{}
		}
		return parse(*v, loc)
	case int:
		return fromMillis(float64(v), loc)
	case int8:
		return fromMillis(float64(v), loc)
	case int16:
		return fromMillis(float64(v), loc)
	case int32:
		return fromMillis(float64(v), loc)
	case int64:
		return fromMillis(float64(v), loc)
	case uint:
		return fromMillis(float64(v), loc)
	case uint8:
		return fromMillis(float64(v), loc)
	case uint16:
		return fromMillis(float64(v), loc)
	case uint32:
		return fromMillis(float64(v), loc)
	case uint64:
		return fromMillis(float64(v), loc)
	case float32:
		return fromMillis(float64(v), loc)
	case float64:
		return fromMillis(v, loc)
	}
	return Date{}
}

func fromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return Of(t)
}

func fromMillis(ms float64, loc *time.Location) Date {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxMillis {
		return Date{}
	}
	return Of(time.UnixMilli(int64(math.Trunc(ms))).In(loc))
}

func parse(s string, loc *time.Location) Date {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Date{}
	}
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		if _, dateOnly := dateOnlyLayouts[layout]; dateOnly {
			// Reparse in UTC since loc may not have a midnight on that day.
			t, _ = time.Parse(layout, s)
			return Of(DayStart(t.Year(), t.Month(), t.Day(), loc))
		}
		return Of(t)
	}
	return Date{}
}

// Range represents a pair of optional dates. When both are set Start is
// never after End. An absent Start or End denotes an unbounded or not yet
// chosen endpoint.
type Range struct {
	Start, End Date
}

// NewRange is like NormalizeRange for two time.Time values.
func NewRange(start, end time.Time) Range {
	return NormalizeRange(start, end)
}

// IsComplete returns true if both endpoints are set.
func (r Range) IsComplete() bool {
	return r.Start.set && r.End.set
}

// IsEmpty returns true if neither endpoint is set.
func (r Range) IsEmpty() bool {
	return !r.Start.set && !r.End.set
}

// Contains returns true if the range is complete and the calendar day of
// t lies within the range, inclusive of both endpoints.
func (r Range) Contains(t time.Time) bool {
	if !r.IsComplete() {
		return false
	}
	day := civilDays(t)
	return day >= civilDays(r.Start.t) && day <= civilDays(r.End.t)
}

func (r Range) String() string {
	return FormatISODate(r.Start) + ":" + FormatISODate(r.End)
}

// NormalizeRange is like NormalizeRangeIn with time.Local.
func NormalizeRange(values ...any) Range {
	return NormalizeRangeIn(time.Local, values...)
}

// NormalizeRangeIn normalizes the first two values using ToDateIn and
// returns them as a Range, swapping them if the start is after the end.
// Missing values are treated as absent and values beyond the first two are
// ignored.
func NormalizeRangeIn(loc *time.Location, values ...any) Range {
	var r Range
	if len(values) > 0 {
		r.Start = ToDateIn(values[0], loc)
	}
	if len(values) > 1 {
		r.End = ToDateIn(values[1], loc)
	}
	if r.Start.After(r.End) {
		r.Start, r.End = r.End, r.Start
	}
	return r
}
