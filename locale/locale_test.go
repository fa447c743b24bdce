// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package locale_test

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"cloudeng.io/datepicker/locale"
)

func TestLookup(t *testing.T) {
	for _, tc := range []struct {
		tag  string
		want string
	}{
		{"en-US", "en-US"},
		{"en", "en-US"},
		{"en-GB", "en-GB"},
		{"de", "de"},
		{"de-AT", "de"},
		{"de-DE", "de"},
		{"fr-CA", "fr"},
		{"es-MX", "es"},
		{"nl", "nl"},
		{"id-ID", "id"},
		{"xx", "en-US"},
		{"", "en-US"},
		{"!!", "en-US"},
	} {
		if got, want := locale.Lookup(tc.tag).String(), tc.want; got != want {
			t.Errorf("%q: got %v, want %v", tc.tag, got, want)
		}
	}
	if got, want := locale.Lookup("de-AT").Months[0], "Januar"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	supported := locale.Supported()
	if got, want := supported[0], "en-US"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tag := range supported {
		if got, want := locale.Lookup(tag).String(), tag; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestLabels(t *testing.T) {
	def := locale.DefaultLabels()
	if got, want := def.Weekdays[0], "Sun"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := def.Months[11], "December"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := def.Today, "Today"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	de := locale.Lookup("de").Labels()
	if got, want := de.Weekdays[:], []string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := de.Next, "Nächster Monat"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tag := range locale.Supported() {
		l := locale.Lookup(tag)
		lb := l.Labels()
		for i, v := range []string{lb.SelectMonth, lb.SelectYear, lb.Prev, lb.Next, lb.Today, lb.Clear} {
			if len(v) == 0 {
				t.Errorf("%v: label %v is empty", tag, i)
			}
		}
		if tag != "en-US" && l.FirstDayOfWeek != time.Monday {
			t.Errorf("%v: got %v, want %v", tag, l.FirstDayOfWeek, time.Monday)
		}
	}
}

func TestMonthYear(t *testing.T) {
	for _, tc := range []struct {
		tag  string
		want string
	}{
		{"en-US", "March 2024"},
		{"de", "März 2024"},
		{"es", "marzo de 2024"},
		{"fr", "mars 2024"},
	} {
		if got, want := locale.Lookup(tc.tag).MonthYear(2024, time.March), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.tag, got, want)
		}
	}
}

func TestFormat(t *testing.T) {
	when := time.Date(2024, 7, 4, 18, 0, 0, 0, time.UTC)
	l := locale.Lookup("en-US")
	for _, tc := range []struct {
		opts locale.FormatOptions
		want string
	}{
		{locale.FormatOptions{}, "July 4, 2024"},
		{locale.FormatOptions{Weekday: locale.Short}, "Thu, July 4, 2024"},
		{locale.FormatOptions{Year: locale.Omit}, "July 4"},
		{locale.FormatOptions{Year: locale.TwoDigit, Month: locale.TwoDigit, Day: locale.TwoDigit}, "07/04/24"},
		{locale.FormatOptions{Weekday: locale.Long, Month: locale.Numeric}, "Thursday, 7/4/2024"},
	} {
		if got, want := l.Format(when, tc.opts), tc.want; got != want {
			t.Errorf("%+v: got %q, want %q", tc.opts, got, want)
		}
	}
	if got, want := locale.Long.String(), "long"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func ExampleLookup() {
	l := locale.Lookup("de-AT")
	fmt.Println(l.Format(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), locale.FormatOptions{Weekday: locale.Long}))
	// Output:
	// Montag, 15. Januar 2024
}
