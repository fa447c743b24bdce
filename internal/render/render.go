// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package render renders the view of a date picker as text.
package render

import (
	"fmt"
	"io"
	"strings"

	"cloudeng.io/datepicker/grid"
	"cloudeng.io/datepicker/picker"
	"github.com/charmbracelet/lipgloss"
)

// Each day is rendered as a right aligned number followed by a marker.
const (
	dayWidth    = 3
	columnWidth = dayWidth + 1
	weekWidth   = 3
)

// Markers appended to each day to indicate its state.
const (
	MarkerSelected   = '*'
	MarkerRangeEnd   = ']'
	MarkerRangeStart = '['
	MarkerInRange    = '~'
	MarkerDisallowed = 'x'
	MarkerToday      = '.'
	MarkerNone       = ' '
)

// Options controls rendering.
type Options struct {
	// Color enables colored output, it should only be set when writing
	// to a terminal.
	Color bool
	// Legend appends an explanation of the markers.
	Legend bool
}

type styles struct {
	enabled    bool
	title      lipgloss.Style
	header     lipgloss.Style
	week       lipgloss.Style
	selected   lipgloss.Style
	inRange    lipgloss.Style
	disallowed lipgloss.Style
	today      lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	if !color {
		return styles{}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		enabled:    true,
		title:      r.NewStyle().Bold(true),
		header:     r.NewStyle().Foreground(lipgloss.Color("8")),
		week:       r.NewStyle().Faint(true),
		selected:   r.NewStyle().Bold(true).Reverse(true),
		inRange:    r.NewStyle().Foreground(lipgloss.Color("12")),
		disallowed: r.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("9")),
		today:      r.NewStyle().Underline(true),
	}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

// Marker returns the marker character for c.
func Marker(c grid.Cell) rune {
	switch {
	case c.IsPadding():
		return MarkerNone
	case !c.Allowed:
		return MarkerDisallowed
	case c.Selected:
		return MarkerSelected
	case c.IsRangeStart && c.IsRangeEnd:
		return MarkerSelected
	case c.IsRangeStart:
		return MarkerRangeStart
	case c.IsRangeEnd:
		return MarkerRangeEnd
	case c.InRange:
		return MarkerInRange
	case c.IsToday:
		return MarkerToday
	}
	return MarkerNone
}

func (s styles) cell(c grid.Cell) string {
	if c.IsPadding() {
		return strings.Repeat(" ", columnWidth)
	}
	day := fmt.Sprintf("%*d", dayWidth, c.Day)
	switch {
	case !c.Allowed:
		day = s.render(s.disallowed, day)
	case c.Selected || c.IsRangeStart || c.IsRangeEnd:
		day = s.render(s.selected, day)
	case c.InRange:
		day = s.render(s.inRange, day)
	case c.IsToday:
		day = s.render(s.today, day)
	}
	return day + string(Marker(c))
}

// Month writes the month represented by v to w.
func Month(w io.Writer, v picker.View, opts Options) error {
	st := newStyles(w, opts.Color)
	var out strings.Builder
	width := grid.DaysInWeek * columnWidth
	indent := ""
	if len(v.WeekNumbers) > 0 {
		indent = strings.Repeat(" ", weekWidth+1)
	}
	title := lipgloss.PlaceHorizontal(width, lipgloss.Center, v.Title)
	out.WriteString(indent)
	out.WriteString(st.render(st.title, strings.TrimRight(title, " ")))
	out.WriteByte('\n')

	headers := make([]string, len(v.Headers))
	for i, h := range v.Headers {
		headers[i] = st.render(st.header, lipgloss.PlaceHorizontal(dayWidth, lipgloss.Right, h))
	}
	out.WriteString(indent)
	out.WriteString(strings.Join(headers, " "))
	out.WriteByte('\n')

	for i, row := range v.Rows {
		if len(v.WeekNumbers) > i {
			wk := ""
			if v.WeekNumbers[i] > 0 {
				wk = fmt.Sprintf("%*d", weekWidth, v.WeekNumbers[i])
			}
			out.WriteString(st.render(st.week, lipgloss.PlaceHorizontal(weekWidth, lipgloss.Right, wk)))
			out.WriteByte(' ')
		}
		var line strings.Builder
		for _, c := range row {
			line.WriteString(st.cell(c))
		}
		out.WriteString(strings.TrimRight(line.String(), " "))
		out.WriteByte('\n')
	}
	if opts.Legend {
		fmt.Fprintf(&out, "%c selected  %c%c range  %c in range  %c unavailable  %c today\n",
			MarkerSelected, MarkerRangeStart, MarkerRangeEnd, MarkerInRange, MarkerDisallowed, MarkerToday)
	}
	_, err := io.WriteString(w, out.String())
	return err
}
