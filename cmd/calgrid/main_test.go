// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2024, 1, 22, 12, 0, 0, 0, time.UTC)

func newTestCommands() (*commands, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &commands{out: out, clock: func() time.Time { return testNow }}, out
}

func utcFlags() CommonFlags {
	return CommonFlags{TimeZone: "UTC"}
}

func writeConfig(t *testing.T, spec string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "calgrid.yaml")
	if err := os.WriteFile(filename, []byte(spec), 0600); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestWeek(t *testing.T) {
	c, out := newTestCommands()
	fl := utcFlags()
	if err := c.week(context.Background(), &fl, []string{"2020-12-31", "2021-01-03", "2021-01-04"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "2020-12-31\t53\n2021-01-03\t53\n2021-01-04\t1\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if err := c.week(context.Background(), &fl, []string{"yesterday"}); err == nil {
		t.Errorf("expected an error")
	}
}

func TestCheck(t *testing.T) {
	c, out := newTestCommands()
	fl := utcFlags()
	fl.Config = writeConfig(t, `min_date: "2024-01-01"
max_date: "2024-01-31"
disabled_dates: ["2024-01-15"]
easter_offsets: [0]
`)
	if err := c.check(context.Background(), &fl, []string{"2024-01-10", "2024-01-15", "2024-02-01", "2024-03-31"}); err != nil {
		t.Fatal(err)
	}
	want := "2024-01-10\tavailable\n" +
		"2024-01-15\tunavailable\n" +
		"2024-02-01\tunavailable\n" +
		"2024-03-31\tunavailable\tEaster +0\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDays(t *testing.T) {
	c, out := newTestCommands()
	fl := &daysFlags{CommonFlags: utcFlags()}
	fl.Config = writeConfig(t, "weekdays: true\n")
	// 2024-01-13 and 14 are a weekend, the arguments may be in either order.
	if err := c.days(context.Background(), fl, []string{"2024-01-15", "2024-01-12"}); err != nil {
		t.Fatal(err)
	}
	want := "2024-01-12\tavailable\n" +
		"2024-01-13\tunavailable\n" +
		"2024-01-14\tunavailable\n" +
		"2024-01-15\tavailable\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	out.Reset()
	fl.AllowedOnly = true
	fl.Long = true
	fl.Locale = "de"
	if err := c.days(context.Background(), fl, []string{"2024-01-12", "2024-01-15"}); err != nil {
		t.Fatal(err)
	}
	want = "Freitag, 12. Januar 2024\tavailable\n" +
		"Montag, 15. Januar 2024\tavailable\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExport(t *testing.T) {
	c, out := newTestCommands()
	fl := &exportFlags{CommonFlags: utcFlags(), Name: "closed"}
	fl.Config = writeConfig(t, "disabled_dates: [2024-01-02]\nweekdays: true\n")
	if err := c.export(context.Background(), fl, []string{"2024-01-01", "2024-01-07"}); err != nil {
		t.Fatal(err)
	}
	ics := out.String()
	for _, want := range []string{"X-WR-CALNAME:closed", "DTSTART;VALUE=DATE:20240102", "DTSTART;VALUE=DATE:20240106", "DTSTART;VALUE=DATE:20240107"} {
		if !strings.Contains(ics, want) {
			t.Errorf("missing %q in %v", want, ics)
		}
	}
	if strings.Contains(ics, "DTSTART;VALUE=DATE:20240103") {
		t.Errorf("2024-01-03 should not be exported")
	}

	fl.Output = filepath.Join(t.TempDir(), "closed.ics")
	out.Reset()
	if err := c.export(context.Background(), fl, []string{"2024-01-01", "2024-01-07"}); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output: %v", out.String())
	}
	data, err := os.ReadFile(fl.Output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "DTSTART;VALUE=DATE:20240102") {
		t.Errorf("missing exported date in %s", data)
	}
}

func TestMonth(t *testing.T) {
	c, out := newTestCommands()
	fl := &monthFlags{CommonFlags: utcFlags(), Mode: "multiple", Select: "2024-01-03,2024-01-05"}
	if err := c.month(context.Background(), fl, nil); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if got, want := strings.TrimSpace(lines[0]), "January 2024"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := lines[2], "      1   2   3*  4   5*  6"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := lines[len(lines)-1], "multiple: 2024-01-03, 2024-01-05"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	out.Reset()
	fl = &monthFlags{CommonFlags: utcFlags(), WeekNumbers: true}
	fl.FirstDay = "monday"
	if err := c.month(context.Background(), fl, []string{"2024-03"}); err != nil {
		t.Fatal(err)
	}
	lines = strings.Split(out.String(), "\n")
	if got, want := strings.TrimSpace(lines[0]), "March 2024"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := lines[1], "    Mon Tue Wed Thu Fri Sat Sun"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	out.Reset()
	fl = &monthFlags{CommonFlags: utcFlags(), Select: "2024-01-03"}
	fl.Config = writeConfig(t, "min_date: 2024-01-10\n")
	if err := c.month(context.Background(), fl, []string{"jan"}); err == nil {
		t.Errorf("expected an error selecting a date before the minimum")
	}
}

func TestParseMonthArg(t *testing.T) {
	for _, tc := range []struct {
		args  []string
		year  int
		month time.Month
	}{
		{nil, 2024, time.January},
		{[]string{"mar"}, 2024, time.March},
		{[]string{"12"}, 2024, time.December},
		{[]string{"2025-07"}, 2025, time.July},
		{[]string{"2023-02-14"}, 2023, time.February},
	} {
		y, m, err := parseMonthArg(tc.args, testNow)
		if err != nil {
			t.Errorf("%v: %v", tc.args, err)
			continue
		}
		if y != tc.year || m != tc.month {
			t.Errorf("%v: got %v %v, want %v %v", tc.args, y, m, tc.year, tc.month)
		}
	}
	if _, _, err := parseMonthArg([]string{"someday"}, testNow); err == nil {
		t.Errorf("expected an error")
	}
}

func TestCLI(t *testing.T) {
	cmdSet := cli()
	if cmdSet == nil {
		t.Fatal("no command set")
	}
}
