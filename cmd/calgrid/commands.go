// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/grid"
	"cloudeng.io/datepicker/holidays"
	"cloudeng.io/datepicker/internal/config"
	"cloudeng.io/datepicker/internal/render"
	"cloudeng.io/datepicker/locale"
	"cloudeng.io/datepicker/picker"
	"cloudeng.io/logging/ctxlog"
)

type CommonFlags struct {
	cmdutil.LoggingFlags
	Config   string `subcmd:"config,,'yaml configuration file'"`
	Locale   string `subcmd:"locale,,'BCP 47 language tag, overrides the configuration file'"`
	FirstDay string `subcmd:"first-day,,'first day of the week, overrides the configuration file'"`
	TimeZone string `subcmd:"time-zone,,'IANA time zone name, overrides the configuration file'"`
}

type monthFlags struct {
	CommonFlags
	Mode        string `subcmd:"mode,,'selection mode: single, range or multiple, overrides the configuration file'"`
	Select      string `subcmd:"select,,'comma separated list of dates to select'"`
	WeekNumbers bool   `subcmd:"week-numbers,false,display ISO 8601 week numbers"`
	Legend      bool   `subcmd:"legend,false,explain the markers used for each day"`
	NoColor     bool   `subcmd:"no-color,false,disable colored output"`
}

type daysFlags struct {
	CommonFlags
	AllowedOnly bool `subcmd:"allowed-only,false,only list the days that may be selected"`
	Long        bool `subcmd:"long,false,'display each day using the long form for the locale'"`
}

type exportFlags struct {
	CommonFlags
	Output string `subcmd:"output,,'output file, stdout is used if not specified'"`
	Name   string `subcmd:"name,unavailable,name of the exported calendar"`
}

type commands struct {
	out   io.Writer
	color bool
	clock dates.Clock
}

// session holds the configuration and logger shared by a single
// invocation of a command.
type session struct {
	cfg    config.Config
	loc    *time.Location
	logger *cmdutil.Logger
}

func (s *session) Close() error {
	return s.logger.Close()
}

// setup loads the configuration file, if any, applies the command line
// overrides and creates the logger. The returned context carries the logger.
func (c *commands) setup(ctx context.Context, fl *CommonFlags, overrides func(*config.Config)) (context.Context, *session, error) {
	var cfg config.Config
	if len(fl.Config) > 0 {
		var err error
		if cfg, err = config.Load(ctx, fl.Config); err != nil {
			return ctx, nil, err
		}
	}
	if len(fl.Locale) > 0 {
		cfg.Locale = fl.Locale
	}
	if len(fl.FirstDay) > 0 {
		cfg.FirstDayOfWeek = fl.FirstDay
	}
	if len(fl.TimeZone) > 0 {
		cfg.TimeZone = fl.TimeZone
	}
	if overrides != nil {
		overrides(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return ctx, nil, err
	}
	lc := fl.LoggingConfig()
	if lc.Level == 0 && len(lc.File) == 0 && cfg.Logging != (cmdutil.LoggingConfig{}) {
		lc = cfg.Logging
	}
	logger, err := lc.NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	loc, err := cfg.Location()
	if err != nil {
		logger.Close()
		return ctx, nil, err
	}
	ctxlog.Logger(ctx).Debug("configured", "config", fl.Config, "locale", cfg.Locale, "location", loc.String())
	return ctx, &session{cfg: cfg, loc: loc, logger: logger}, nil
}

// picker returns a picker whose disabled days include those configured
// for the years from and to inclusive.
func (s *session) picker(ctx context.Context, clock dates.Clock, from, to int, initial time.Time) (*picker.Picker, holidays.Set, error) {
	disabled, err := s.cfg.Holidays(ctx, s.loc, from, to)
	if err != nil {
		return nil, nil, err
	}
	pc, err := s.cfg.PickerConfig(disabled)
	if err != nil {
		return nil, nil, err
	}
	pc.Clock = clock
	ctxlog.Logger(ctx).Debug("created picker", "mode", pc.Mode, "disabled", len(disabled), "constraints", pc.Constraints)
	return picker.New(pc, initial), disabled, nil
}

func parseDate(arg string, loc *time.Location) (time.Time, error) {
	d := dates.ToDateIn(arg, loc)
	if !d.IsSet() {
		return time.Time{}, fmt.Errorf("invalid date: %q", arg)
	}
	return d.Time(), nil
}

func parseDates(args []string, loc *time.Location) ([]time.Time, error) {
	out := make([]time.Time, 0, len(args))
	for _, arg := range args {
		t, err := parseDate(arg, loc)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// parseMonthArg parses an optional month argument which may be
// YYYY-MM, a full date or the name or number of a month in the
// current year.
func parseMonthArg(args []string, now time.Time) (int, time.Month, error) {
	if len(args) == 0 {
		return now.Year(), now.Month(), nil
	}
	if m, err := dates.ParseMonth(args[0]); err == nil {
		return now.Year(), m, nil
	}
	t, err := parseDate(args[0], now.Location())
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}

func (c *commands) month(ctx context.Context, values any, args []string) error {
	fl := values.(*monthFlags)
	ctx, s, err := c.setup(ctx, &fl.CommonFlags, func(cfg *config.Config) {
		if len(fl.Mode) > 0 {
			cfg.Mode = fl.Mode
		}
		cfg.WeekNumbers = cfg.WeekNumbers || fl.WeekNumbers
	})
	if err != nil {
		return err
	}
	defer s.Close()
	year, month, err := parseMonthArg(args, c.clock.Now().In(s.loc))
	if err != nil {
		return err
	}
	var selections []time.Time
	if len(fl.Select) > 0 {
		if selections, err = parseDates(strings.Split(fl.Select, ","), s.loc); err != nil {
			return err
		}
	}
	from, to := year-1, year+1
	for _, t := range selections {
		from, to = min(from, t.Year()), max(to, t.Year())
	}
	p, _, err := s.picker(ctx, c.clock, from, to, dates.DayStart(year, month, 1, s.loc))
	if err != nil {
		return err
	}
	var ev picker.ChangeEvent
	for _, t := range selections {
		var ok bool
		if ev, ok = p.Select(t); !ok {
			return fmt.Errorf("%v may not be selected", dates.FormatISODate(dates.Of(t)))
		}
	}
	view := p.View()
	ctxlog.Logger(ctx).Debug("rendering", "year", view.Year, "month", view.Month, "rows", len(view.Rows))
	if err := render.Month(c.out, view, render.Options{
		Color:  c.color && !fl.NoColor,
		Legend: fl.Legend,
	}); err != nil {
		return err
	}
	if len(ev.Formatted) > 0 {
		_, err = fmt.Fprintf(c.out, "%v: %v\n", ev.Mode, strings.Join(ev.Formatted, ", "))
	}
	return err
}

func (c *commands) week(ctx context.Context, values any, args []string) error {
	fl := values.(*CommonFlags)
	_, s, err := c.setup(ctx, fl, nil)
	if err != nil {
		return err
	}
	defer s.Close()
	days, err := parseDates(args, s.loc)
	if err != nil {
		return err
	}
	for _, d := range days {
		fmt.Fprintf(c.out, "%v\t%d\n", dates.FormatISODate(dates.Of(d)), grid.WeekNumber(d))
	}
	return nil
}

func availability(p *picker.Picker, disabled holidays.Set, t time.Time) string {
	if p.Validator().IsAllowed(t) {
		return "available"
	}
	if name, ok := disabled.Name(t); ok && len(name) > 0 {
		return "unavailable\t" + name
	}
	return "unavailable"
}

func (c *commands) check(ctx context.Context, values any, args []string) error {
	fl := values.(*CommonFlags)
	ctx, s, err := c.setup(ctx, fl, nil)
	if err != nil {
		return err
	}
	defer s.Close()
	days, err := parseDates(args, s.loc)
	if err != nil {
		return err
	}
	from, to := days[0].Year(), days[0].Year()
	for _, d := range days {
		from, to = min(from, d.Year()), max(to, d.Year())
	}
	p, disabled, err := s.picker(ctx, c.clock, from, to, days[0])
	if err != nil {
		return err
	}
	for _, d := range days {
		fmt.Fprintf(c.out, "%v\t%v\n", dates.FormatISODate(dates.Of(d)), availability(p, disabled, d))
	}
	return nil
}

// dayRange parses the from and to arguments into a range, in either
// order, and returns a picker for the years it spans.
func (c *commands) dayRange(ctx context.Context, s *session, args []string) (dates.Range, *picker.Picker, holidays.Set, error) {
	if _, err := parseDates(args, s.loc); err != nil {
		return dates.Range{}, nil, nil, err
	}
	r := dates.NormalizeRangeIn(s.loc, args[0], args[1])
	p, disabled, err := s.picker(ctx, c.clock, r.Start.Time().Year(), r.End.Time().Year(), r.Start.Time())
	return r, p, disabled, err
}

func (c *commands) days(ctx context.Context, values any, args []string) error {
	fl := values.(*daysFlags)
	ctx, s, err := c.setup(ctx, &fl.CommonFlags, nil)
	if err != nil {
		return err
	}
	defer s.Close()
	r, p, disabled, err := c.dayRange(ctx, s, args)
	if err != nil {
		return err
	}
	for day := range dates.DateRange(r.Start, r.End) {
		allowed := p.Validator().IsAllowed(day)
		if fl.AllowedOnly && !allowed {
			continue
		}
		label := dates.FormatISODate(dates.Of(day))
		if fl.Long {
			label = dates.FormatDate(dates.Of(day), s.cfg.Locale, locale.FormatOptions{Weekday: locale.Long})
		}
		fmt.Fprintf(c.out, "%v\t%v\n", label, availability(p, disabled, day))
	}
	return nil
}

func (c *commands) export(ctx context.Context, values any, args []string) error {
	fl := values.(*exportFlags)
	ctx, s, err := c.setup(ctx, &fl.CommonFlags, nil)
	if err != nil {
		return err
	}
	defer s.Close()
	r, p, disabled, err := c.dayRange(ctx, s, args)
	if err != nil {
		return err
	}
	unavailable := holidays.Set{}
	for day := range dates.DateRange(r.Start, r.End) {
		if p.Validator().IsAllowed(day) {
			continue
		}
		name, ok := disabled.Name(day)
		if !ok || len(name) == 0 {
			name = "unavailable"
		}
		unavailable.Add(day, name)
	}
	ctxlog.Logger(ctx).Info("exporting", "range", r.String(), "days", len(unavailable), "output", fl.Output)
	if len(fl.Output) == 0 {
		return holidays.WriteICS(c.out, fl.Name, unavailable)
	}
	f, err := os.Create(fl.Output)
	if err != nil {
		return err
	}
	if err := holidays.WriteICS(f, fl.Name, unavailable); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
