// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package grid builds the cells of a month calendar ready for rendering.
// A grid is a sequence of 35 or 42 cells, 5 or 6 weeks of 7 days, where
// each cell is either a day of the month annotated with its selection,
// range, validity and today flags, or a padding cell for the positions
// before the first or after the last day of the month.
//
// Build is a pure function of its Options and is safe for concurrent use.
package grid

import (
	"time"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/locale"
)

const (
	// DaysInWeek is the number of columns in a grid.
	DaysInWeek = 7
	// MinWeeks is the minimum number of rows in a grid.
	MinWeeks = 5
	// MaxWeeks is the maximum number of rows in a grid.
	MaxWeeks = 6
	// TotalCells is the number of candidate cells considered per grid.
	TotalCells = MaxWeeks * DaysInWeek
)

// Cell represents a single position in a calendar grid. Padding cells have
// a zero Day, a zero Date, an empty ISODate and all flags false.
type Cell struct {
	Day          int       // Day of the month, 1-31, or 0 for padding.
	Date         time.Time // Midnight of Day in the grid's location.
	ISODate      string    // YYYY-MM-DD
	Allowed      bool
	InRange      bool // Strictly between the range start and end.
	IsRangeStart bool
	IsRangeEnd   bool
	Selected     bool
	IsToday      bool
}

// IsPadding returns true if c does not represent a day.
func (c Cell) IsPadding() bool {
	return c.Day == 0
}

// Options specifies the month for which a grid is to be built and the
// selection state to be reflected in it.
type Options struct {
	Year  int
	Month time.Month

	SelectedDates []time.Time
	Range         dates.Range

	// IsAllowed determines whether a day may be selected. A nil
	// IsAllowed allows all days.
	IsAllowed func(time.Time) bool

	// FirstDayOfWeek is the weekday displayed in the first column.
	// Values outside of Sunday to Saturday are treated as Sunday.
	FirstDayOfWeek time.Weekday

	// Today determines which cell is flagged as today, if absent
	// the current time is used.
	Today dates.Date

	// Location is the location in which the days of the month are
	// created, it defaults to time.Local.
	Location *time.Location
}

// StartIndex returns the column of the first day of month given the first
// day of the week.
func StartIndex(year int, month time.Month, firstDayOfWeek time.Weekday, loc *time.Location) int {
	if firstDayOfWeek < time.Sunday || firstDayOfWeek > time.Saturday {
		firstDayOfWeek = time.Sunday
	}
	if loc == nil {
		loc = time.Local
	}
	wd := dates.DayStart(year, month, 1, loc).Weekday()
	return (int(wd) - int(firstDayOfWeek) + DaysInWeek) % DaysInWeek
}

// Build returns the cells for the month specified in opts. The number of
// cells returned is always a multiple of 7 between 35 and 42; trailing
// weeks that contain no days of the month are omitted unless needed to
// make up the minimum of 5 weeks.
func Build(opts Options) []Cell {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	today := opts.Today
	if !today.IsSet() {
		today = dates.Of(time.Now().In(loc))
	}
	isAllowed := opts.IsAllowed
	if isAllowed == nil {
		isAllowed = func(time.Time) bool { return true }
	}
	month := opts.Month
	daysInMonth := dates.DaysInMonth(month, opts.Year)
	start := StartIndex(opts.Year, month, opts.FirstDayOfWeek, loc)
	rangeStart, rangeEnd := opts.Range.Start, opts.Range.End
	if rangeStart.After(rangeEnd) {
		rangeStart, rangeEnd = rangeEnd, rangeStart
	}

	cells := make([]Cell, TotalCells)
	last := -1
	for i := range cells {
		day := i - start + 1
		if day < 1 || day > daysInMonth {
			continue
		}
		current := dates.DayStart(opts.Year, month, day, loc)
		cd := dates.Of(current)
		cell := Cell{
			Day:          day,
			Date:         current,
			ISODate:      dates.FormatISODate(cd),
			Allowed:      isAllowed(current),
			IsRangeStart: dates.SameDay(rangeStart, cd),
			IsRangeEnd:   dates.SameDay(rangeEnd, cd),
			IsToday:      dates.SameDay(today, cd),
		}
		for _, s := range opts.SelectedDates {
			if dates.SameDay(dates.Of(s), cd) {
				cell.Selected = true
				break
			}
		}
		cell.InRange = rangeStart.IsSet() && rangeEnd.IsSet() &&
			!current.Before(rangeStart.Time()) && !current.After(rangeEnd.Time()) &&
			!cell.IsRangeStart && !cell.IsRangeEnd
		cells[i] = cell
		last = i
	}
	weeks := max(MinWeeks, (last+DaysInWeek)/DaysInWeek)
	return cells[:weeks*DaysInWeek]
}

// Rows splits cells into weeks of 7 cells each.
func Rows(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, (len(cells)+DaysInWeek-1)/DaysInWeek)
	for i := 0; i < len(cells); i += DaysInWeek {
		rows = append(rows, cells[i:min(i+DaysInWeek, len(cells))])
	}
	return rows
}

// RowWeekNumbers returns the ISO 8601 week number of the Monday column of
// each row of cells, or 0 for rows that contain only padding. The Monday
// may fall outside of the month.
func RowWeekNumbers(cells []Cell) []int {
	rows := Rows(cells)
	nums := make([]int, len(rows))
	for i, row := range rows {
		for j, c := range row {
			if c.IsPadding() {
				continue
			}
			y, m, day := c.Date.Date()
			for k := range row {
				if d := time.Date(y, m, day+k-j, 0, 0, 0, 0, time.UTC); d.Weekday() == time.Monday {
					nums[i] = WeekNumber(d)
					break
				}
			}
			break
		}
	}
	return nums
}

// WeekdayHeaders returns the 7 weekday labels, which must be specified
// starting with Sunday, rotated so that firstDayOfWeek is first. If labels
// does not contain exactly 7 entries the English short weekday names are
// used.
func WeekdayHeaders(firstDayOfWeek time.Weekday, labels []string) []string {
	if len(labels) != DaysInWeek {
		def := locale.DefaultLabels().Weekdays
		labels = def[:]
	}
	if firstDayOfWeek < time.Sunday || firstDayOfWeek > time.Saturday {
		firstDayOfWeek = time.Sunday
	}
	out := make([]string, 0, DaysInWeek)
	out = append(out, labels[firstDayOfWeek:]...)
	return append(out, labels[:firstDayOfWeek]...)
}

// WeekNumber returns the ISO 8601 week number of the calendar day of t.
// The day is moved to the Thursday of its week, which determines the year
// that the week belongs to, and the week is then the number of whole weeks
// from the start of that year.
func WeekNumber(t time.Time) int {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7
	}
	thursday := day.AddDate(0, 0, 4-wd)
	return (thursday.YearDay()-1)/7 + 1
}
