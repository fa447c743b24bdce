// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package locale provides the month and weekday names, date field ordering
// and user interface labels used to format dates and to label calendar
// grids for a small set of built-in locales. Locales are selected using
// BCP 47 language tags and the closest supported locale is always
// returned, falling back to US English.
package locale

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Style determines how a single field of a formatted date is rendered.
// The zero value selects the field's default.
type Style int

const (
	Default Style = iota
	Omit
	Numeric
	TwoDigit
	Short
	Long
)

func (s Style) String() string {
	switch s {
	case Default:
		return "default"
	case Omit:
		return "omit"
	case Numeric:
		return "numeric"
	case TwoDigit:
		return "2-digit"
	case Short:
		return "short"
	case Long:
		return "long"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// FormatOptions controls which fields appear in a formatted date and how.
// The defaults are: no weekday, numeric year, long month and numeric day.
type FormatOptions struct {
	Weekday Style
	Year    Style
	Month   Style
	Day     Style
}

func (o FormatOptions) withDefaults() FormatOptions {
	if o.Weekday == Default {
		o.Weekday = Omit
	}
	if o.Year == Default {
		o.Year = Numeric
	}
	if o.Month == Default {
		o.Month = Long
	}
	if o.Day == Default {
		o.Day = Numeric
	}
	return o
}

// Labels are the strings displayed by a date picker. Weekdays are short
// names starting with Sunday.
type Labels struct {
	SelectMonth string
	SelectYear  string
	Prev        string
	Next        string
	Today       string
	Clear       string
	Weekdays    [7]string
	Months      [12]string
}

// DefaultLabels returns the US English labels.
func DefaultLabels() Labels {
	return enUS.Labels()
}

type field int

const (
	fieldWeekday field = iota
	fieldDay
	fieldMonth
	fieldYear
)

// part is a field of a long form date and the separator written before
// it when it is not the first field written.
type part struct {
	field  field
	prefix string
}

// Locale contains the names and conventions for a single language/region.
type Locale struct {
	Tag            language.Tag
	Months         [12]string
	ShortMonths    [12]string
	Weekdays       [7]string // Sunday first.
	ShortWeekdays  [7]string // Sunday first.
	FirstDayOfWeek time.Weekday

	ui           [6]string // select month, select year, prev, next, today, clear
	long         []part
	monthYear    []part
	numericOrder string // some permutation of "dmy"
	numericSep   string
}

// Labels returns the picker labels for l.
func (l *Locale) Labels() Labels {
	return Labels{
		SelectMonth: l.ui[0],
		SelectYear:  l.ui[1],
		Prev:        l.ui[2],
		Next:        l.ui[3],
		Today:       l.ui[4],
		Clear:       l.ui[5],
		Weekdays:    l.ShortWeekdays,
		Months:      l.Months,
	}
}

func (l *Locale) String() string {
	return l.Tag.String()
}

// MonthYear returns the month and year, eg. "January 2024", as used for
// the title of a calendar grid.
func (l *Locale) MonthYear(year int, month time.Month) string {
	return l.Format(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		FormatOptions{Day: Omit})
}

// Format formats t according to the locale's conventions and the supplied
// options. Fields are taken from t in its own location.
func (l *Locale) Format(t time.Time, opts FormatOptions) string {
	opts = opts.withDefaults()
	if opts.Month == Numeric || opts.Month == TwoDigit {
		return l.formatNumeric(t, opts)
	}
	pattern := l.long
	if opts.Day == Omit && opts.Weekday == Omit {
		pattern = l.monthYear
	}
	var out strings.Builder
	for _, p := range pattern {
		v := l.field(t, p.field, opts)
		if len(v) == 0 {
			continue
		}
		if out.Len() > 0 {
			out.WriteString(p.prefix)
		}
		out.WriteString(v)
	}
	return out.String()
}

func (l *Locale) formatNumeric(t time.Time, opts FormatOptions) string {
	var out strings.Builder
	if wd := l.field(t, fieldWeekday, opts); len(wd) > 0 {
		out.WriteString(wd)
		out.WriteString(", ")
	}
	n := 0
	for _, c := range l.numericOrder {
		var v string
		switch c {
		case 'd':
			v = l.field(t, fieldDay, opts)
		case 'm':
			v = numeric(int(t.Month()), opts.Month)
		case 'y':
			v = l.field(t, fieldYear, opts)
		}
		if len(v) == 0 {
			continue
		}
		if n > 0 {
			out.WriteString(l.numericSep)
		}
		out.WriteString(v)
		n++
	}
	return out.String()
}

func numeric(v int, s Style) string {
	if s == TwoDigit {
		return fmt.Sprintf("%02d", v%100)
	}
	return fmt.Sprintf("%d", v)
}

func (l *Locale) field(t time.Time, f field, opts FormatOptions) string {
	switch f {
	case fieldWeekday:
		switch opts.Weekday {
		case Long:
			return l.Weekdays[t.Weekday()]
		case Short, Numeric, TwoDigit:
			return l.ShortWeekdays[t.Weekday()]
		}
	case fieldDay:
		switch opts.Day {
		case Omit:
			return ""
		case TwoDigit:
			return fmt.Sprintf("%02d", t.Day())
		}
		return fmt.Sprintf("%d", t.Day())
	case fieldMonth:
		switch opts.Month {
		case Omit:
			return ""
		case Short:
			return l.ShortMonths[t.Month()-1]
		}
		return l.Months[t.Month()-1]
	case fieldYear:
		switch opts.Year {
		case Omit:
			return ""
		case TwoDigit:
			return fmt.Sprintf("%02d", t.Year()%100)
		}
		return fmt.Sprintf("%d", t.Year())
	}
	return ""
}

var (
	supported []*Locale
	matcher   language.Matcher
)

func init() {
	supported = []*Locale{enUS, enGB, de, fr, es, nl, id}
	tags := make([]language.Tag, len(supported))
	for i, l := range supported {
		tags[i] = l.Tag
	}
	matcher = language.NewMatcher(tags)
}

// Supported returns the tags of the built-in locales, US English first.
func Supported() []string {
	out := make([]string, len(supported))
	for i, l := range supported {
		out[i] = l.Tag.String()
	}
	return out
}

// Lookup returns the built-in locale that best matches tag. An empty,
// malformed or unsupported tag returns US English.
func Lookup(tag string) *Locale {
	tag = strings.TrimSpace(tag)
	if len(tag) == 0 {
		return enUS
	}
	t, err := language.Parse(tag)
	if err != nil {
		return enUS
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		return enUS
	}
	return supported[idx]
}
