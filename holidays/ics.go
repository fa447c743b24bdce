// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holidays

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"cloudeng.io/datepicker/dates"
	ics "github.com/arran4/golang-ical"
)

// maxEventDays limits the number of days contributed by a single event.
const maxEventDays = 366

// ProductID is used as the PRODID of generated calendars.
const ProductID = "-//cloudeng//datepicker//EN"

// ReadICS reads an iCalendar stream and returns a Set containing every
// day covered by each of its events, named by the event's summary.
// All-day events cover the days from their start up to, but not including,
// their end date. Timed events cover every day, in loc, from their start
// to their end instant. Events without an end cover a single day. At most
// 366 days, starting with the first, are included for any one event; the
// remaining days of longer events are ignored.
func ReadICS(rd io.Reader, loc *time.Location) (Set, error) {
	if loc == nil {
		loc = time.Local
	}
	cal, err := ics.ParseCalendar(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar: %w", err)
	}
	s := Set{}
	for _, ev := range cal.Events() {
		name := ""
		if p := ev.GetProperty(ics.ComponentPropertySummary); p != nil {
			name = p.Value
		}
		first, last, err := eventDays(ev, loc)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", ev.Id(), err)
		}
		fy, fm, fd := first.Date()
		for i := 0; i < maxEventDays; i++ {
			day := dates.DayStart(fy, fm, fd+i, loc)
			if day.After(last) {
				break
			}
			s.Add(day, name)
		}
	}
	return s, nil
}

func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return dates.DayStart(y, m, d, loc)
}

func isAllDay(ev *ics.VEvent) bool {
	p := ev.GetProperty(ics.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if v, ok := p.ICalParameters["VALUE"]; ok && slices.Contains(v, "DATE") {
		return true
	}
	return len(strings.TrimSpace(p.Value)) == len("20060102")
}

// eventDays returns the first and last day, as midnight in loc, covered
// by ev.
func eventDays(ev *ics.VEvent, loc *time.Location) (time.Time, time.Time, error) {
	if isAllDay(ev) {
		// The fields of all-day dates are used as is, regardless of the
		// location they are parsed in.
		start, err := ev.GetAllDayStartAt()
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		first := midnight(start, loc)
		end, err := ev.GetAllDayEndAt()
		if err != nil {
			return first, first, nil
		}
		ey, em, ed := end.Date()
		last := dates.DayStart(ey, em, ed-1, loc)
		if last.Before(first) {
			last = first
		}
		return first, last, nil
	}
	start, err := ev.GetStartAt()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	first := midnight(start.In(loc), loc)
	end, err := ev.GetEndAt()
	if err != nil || !end.After(start) {
		return first, first, nil
	}
	end = end.In(loc)
	last := midnight(end, loc)
	if last.Equal(end) {
		// An end at exactly the start of a day does not include that day.
		y, m, d := last.Date()
		last = dates.DayStart(y, m, d-1, loc)
	}
	return first, last, nil
}

// WriteICS writes the days in s as all-day events to w as an iCalendar
// stream with the given calendar name.
func WriteICS(w io.Writer, name string, s Set) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	if len(name) > 0 {
		cal.SetXWRCalName(name)
	}
	now := time.Now().UTC()
	for _, day := range s.Dates(time.UTC) {
		summary, _ := s.Name(day)
		ev := cal.AddEvent(fmt.Sprintf("%s@datepicker.cloudeng.io", isoDate(day)))
		ev.SetDtStampTime(now)
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		if len(summary) > 0 {
			ev.SetSummary(summary)
		}
	}
	_, err := io.WriteString(w, cal.Serialize())
	return err
}
