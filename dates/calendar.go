// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
	months          = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
)

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := range 12 {
		switch time.Month(i + 1) {
		case time.February:
			daysInMonth[i], daysInMonthLeap[i] = 28, 29
		case time.April, time.June, time.September, time.November:
			daysInMonth[i], daysInMonthLeap[i] = 30, 30
		default:
			daysInMonth[i], daysInMonthLeap[i] = 31, 31
		}
	}
}

// IsLeapYear returns true if year is a leap year in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month for the given year.
// Months outside of January to December report 31 days.
func DaysInMonth(month time.Month, year int) int {
	if month < time.January || month > time.December {
		return 31
	}
	if IsLeapYear(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// AddMonths returns the year and month that is n months after the given
// year and month; n may be negative.
func AddMonths(year int, month time.Month, n int) (int, time.Month) {
	total := year*12 + int(month) - 1 + n
	y, m := total/12, total%12
	if m < 0 {
		y, m = y-1, m+12
	}
	return y, time.Month(m + 1)
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (time.Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return time.Month(n), nil
}

// ParseMonth parses a month in either numeric format or as a month name
// of the form "Jan" to "Dec" or any other longer prefix of "January" to
// "December" in either lower or upper case.
func ParseMonth(val string) (time.Month, error) {
	if m, err := ParseNumericMonth(val); err == nil {
		return m, nil
	}
	lc := strings.ToLower(strings.TrimSpace(val))
	if len(lc) < 3 {
		return 0, fmt.Errorf("invalid month: %q", val)
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return time.Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %q", val)
}
