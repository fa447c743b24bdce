// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package picker provides the selection model of a date picker: the
// currently displayed month, the selected date, range or set of dates and
// the change events produced as the selection is updated.
//
// A Picker holds mutable state and is not safe for concurrent use; each
// calendar instance should own its own Picker.
package picker

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/grid"
	"cloudeng.io/datepicker/locale"
	"cloudeng.io/datepicker/validation"
)

// Mode determines how dates are selected.
type Mode int

const (
	Single Mode = iota
	Range
	Multiple
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Range:
		return "range"
	case Multiple:
		return "multiple"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a Mode from its string representation, the empty
// string is parsed as Single.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return Single, nil
	case "range":
		return Range, nil
	case "multiple":
		return Multiple, nil
	}
	return Single, fmt.Errorf("unrecognised selection mode: %q", s)
}

// Config configures a Picker.
type Config struct {
	Mode          Mode
	MinDate       any
	MaxDate       any
	DisabledDates []any
	DisabledFunc  func(time.Time) bool
	Constraints   validation.Constraints

	FirstDayOfWeek  time.Weekday
	Locale          string
	Labels          *locale.Labels // Overrides the locale's labels if set.
	ShowWeekNumbers bool

	Location *time.Location
	Clock    dates.Clock
}

// ChangeEvent describes the selection after it has been changed. For
// Single mode Value has one entry, for Range it has two, the start and
// end, either of which may be absent, and for Multiple one per selected
// date. Formatted contains the ISO dates of the set values.
type ChangeEvent struct {
	Mode      Mode
	Value     []dates.Date
	Formatted []string
}

// View is the renderable state of a Picker for its current month.
type View struct {
	Year        int
	Month       time.Month
	Title       string
	Headers     []string
	Cells       []grid.Cell
	Rows        [][]grid.Cell
	WeekNumbers []int // Only set if week numbers are enabled.
	Labels      locale.Labels
}

// Picker maintains the selection state of a date picker.
type Picker struct {
	cfg       Config
	loc       *time.Location
	locale    *locale.Locale
	labels    locale.Labels
	validator *validation.Validator

	year  int
	month time.Month

	single   dates.Date
	rng      dates.Range
	multiple []time.Time
}

// New returns a new Picker whose view is the month containing initial.
// If initial is the zero time the current month is used.
func New(cfg Config, initial time.Time) *Picker {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	p := &Picker{
		cfg:    cfg,
		loc:    loc,
		locale: locale.Lookup(cfg.Locale),
		validator: validation.New(validation.Options{
			MinDate:       cfg.MinDate,
			MaxDate:       cfg.MaxDate,
			DisabledDates: cfg.DisabledDates,
			DisabledFunc:  cfg.DisabledFunc,
			Constraints:   cfg.Constraints,
			Location:      loc,
		}),
	}
	p.labels = p.locale.Labels()
	if cfg.Labels != nil {
		p.labels = *cfg.Labels
	}
	if initial.IsZero() {
		initial = cfg.Clock.Now()
	}
	initial = initial.In(loc)
	p.year, p.month = initial.Year(), initial.Month()
	return p
}

// Validator returns the Validator used to decide which dates may be
// selected.
func (p *Picker) Validator() *validation.Validator {
	return p.validator
}

// Mode returns the picker's selection mode.
func (p *Picker) Mode() Mode {
	return p.cfg.Mode
}

func (p *Picker) midnight(t time.Time) time.Time {
	y, m, d := t.In(p.loc).Date()
	return dates.DayStart(y, m, d, p.loc)
}

// Select selects the day of t according to the picker's mode and returns
// the resulting change event. It returns false, and leaves the selection
// unchanged, if the day is not allowed or would create an invalid range.
func (p *Picker) Select(t time.Time) (ChangeEvent, bool) {
	day := p.midnight(t)
	if !p.validator.IsAllowed(day) {
		return ChangeEvent{}, false
	}
	switch p.cfg.Mode {
	case Range:
		if !p.selectRange(day) {
			return ChangeEvent{}, false
		}
	case Multiple:
		p.toggle(day)
	default:
		p.single = dates.Of(day)
	}
	return p.Event(), true
}

func (p *Picker) selectRange(day time.Time) bool {
	if !p.rng.Start.IsSet() || p.rng.IsComplete() {
		p.rng = dates.Range{Start: dates.Of(day)}
		return true
	}
	r := dates.NormalizeRangeIn(p.loc, p.rng.Start, day)
	if !p.validator.ValidateDateRange(r.Start, r.End) {
		return false
	}
	p.rng = r
	return true
}

func (p *Picker) toggle(day time.Time) {
	for i, d := range p.multiple {
		if d.Equal(day) {
			p.multiple = slices.Delete(p.multiple, i, i+1)
			return
		}
	}
	idx, _ := slices.BinarySearchFunc(p.multiple, day, func(a, b time.Time) int {
		return a.Compare(b)
	})
	p.multiple = slices.Insert(p.multiple, idx, day)
}

// Clear clears the selection.
func (p *Picker) Clear() ChangeEvent {
	p.single = dates.Date{}
	p.rng = dates.Range{}
	p.multiple = nil
	return p.Event()
}

// Today moves the view to the current month and selects today.
func (p *Picker) Today() (ChangeEvent, bool) {
	now := p.cfg.Clock.Now().In(p.loc)
	p.year, p.month = now.Year(), now.Month()
	return p.Select(now)
}

// NextMonth moves the view forward by one month.
func (p *Picker) NextMonth() {
	p.year, p.month = dates.AddMonths(p.year, p.month, 1)
}

// PrevMonth moves the view back by one month.
func (p *Picker) PrevMonth() {
	p.year, p.month = dates.AddMonths(p.year, p.month, -1)
}

// SetView sets the displayed month. Invalid months are ignored.
func (p *Picker) SetView(year int, month time.Month) {
	if month < time.January || month > time.December {
		return
	}
	p.year, p.month = year, month
}

// Event returns a change event describing the current selection.
func (p *Picker) Event() ChangeEvent {
	ev := ChangeEvent{Mode: p.cfg.Mode}
	switch p.cfg.Mode {
	case Range:
		ev.Value = []dates.Date{p.rng.Start, p.rng.End}
	case Multiple:
		ev.Value = make([]dates.Date, len(p.multiple))
		for i, d := range p.multiple {
			ev.Value[i] = dates.Of(d)
		}
	default:
		ev.Value = []dates.Date{p.single}
	}
	for _, v := range ev.Value {
		if v.IsSet() {
			ev.Formatted = append(ev.Formatted, dates.FormatISODate(v))
		}
	}
	return ev
}

// View returns the renderable state of the current month.
func (p *Picker) View() View {
	opts := grid.Options{
		Year:           p.year,
		Month:          p.month,
		IsAllowed:      p.validator.IsAllowed,
		FirstDayOfWeek: p.cfg.FirstDayOfWeek,
		Today:          dates.Of(p.cfg.Clock.Now().In(p.loc)),
		Location:       p.loc,
	}
	switch p.cfg.Mode {
	case Range:
		opts.Range = p.rng
	case Multiple:
		opts.SelectedDates = p.multiple
	default:
		if p.single.IsSet() {
			opts.SelectedDates = []time.Time{p.single.Time()}
		}
	}
	cells := grid.Build(opts)
	v := View{
		Year:    p.year,
		Month:   p.month,
		Title:   p.locale.MonthYear(p.year, p.month),
		Headers: grid.WeekdayHeaders(p.cfg.FirstDayOfWeek, p.labels.Weekdays[:]),
		Cells:   cells,
		Rows:    grid.Rows(cells),
		Labels:  p.labels,
	}
	if p.cfg.ShowWeekNumbers {
		v.WeekNumbers = grid.RowWeekNumbers(cells)
	}
	return v
}
