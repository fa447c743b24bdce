// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calgrid displays calendar grids and answers questions about
// which dates may be selected given a date picker configuration.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil/subcmd"
	"golang.org/x/term"
)

const cmdSpec = `name: calgrid
summary: display calendar grids and query date picker configurations
commands:
  - name: month
    summary: display the calendar grid for a month, the current month by default
    arguments:
      - "[<yyyy-mm>|<month>]"
  - name: week
    summary: print the ISO 8601 week number of each date
    arguments:
      - <date>
      - ...
  - name: check
    summary: report whether each date may be selected
    arguments:
      - <date>
      - ...
  - name: days
    summary: list the days from one date to another inclusive
    arguments:
      - <from>
      - <to>
  - name: export
    summary: write the days that may not be selected between two dates as an iCalendar file
    arguments:
      - <from>
      - <to>
`

func cli() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	c := &commands{out: os.Stdout, color: term.IsTerminal(int(os.Stdout.Fd()))}
	cmdSet.Set("month").MustRunnerAndFlags(c.month,
		subcmd.MustRegisterFlagStruct(&monthFlags{}, nil, nil))
	cmdSet.Set("week").MustRunnerAndFlags(c.week,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("check").MustRunnerAndFlags(c.check,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("days").MustRunnerAndFlags(c.days,
		subcmd.MustRegisterFlagStruct(&daysFlags{}, nil, nil))
	cmdSet.Set("export").MustRunnerAndFlags(c.export,
		subcmd.MustRegisterFlagStruct(&exportFlags{}, nil, nil))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli())
}
