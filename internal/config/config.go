// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package config provides the YAML configuration for calendar grids and
// date pickers and its conversion into picker and validation options.
package config

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/holidays"
	"cloudeng.io/datepicker/locale"
	"cloudeng.io/datepicker/picker"
	"cloudeng.io/datepicker/validation"
	"cloudeng.io/errors"
	"cloudeng.io/file"
	"cloudeng.io/logging/ctxlog"
	"github.com/go-playground/validator/v10"
)

// Config represents the configuration of a date picker.
type Config struct {
	Mode           string   `yaml:"mode" validate:"omitempty,oneof=single range multiple"`
	MinDate        string   `yaml:"min_date" validate:"omitempty,isodate"`
	MaxDate        string   `yaml:"max_date" validate:"omitempty,isodate"`
	DisabledDates  []string `yaml:"disabled_dates" validate:"omitempty,dive,isodate"`
	DisabledICS    []string `yaml:"disabled_ics" validate:"omitempty,dive,required"`
	EasterOffsets  []int    `yaml:"easter_offsets" validate:"omitempty,dive,min=-90,max=90"`
	Weekdays       bool     `yaml:"weekdays"`
	Weekends       bool     `yaml:"weekends"`
	FirstDayOfWeek string   `yaml:"first_day_of_week" validate:"omitempty,weekday"`
	Locale         string   `yaml:"locale" validate:"omitempty,bcp47_language_tag"`
	WeekNumbers    bool     `yaml:"week_numbers"`
	TimeZone       string   `yaml:"time_zone" validate:"omitempty,timezone"`

	Logging cmdutil.LoggingConfig `yaml:"logging"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(time.DateOnly, fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, err := ParseWeekday(fl.Field().String())
			return err == nil
		})
		validateInst = v
	})
	return validateInst
}

// ParseWeekday parses the English name, or 3 letter abbreviation, of a
// day of the week.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 3 {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if strings.HasPrefix(strings.ToLower(wd.String()), s) {
				return wd, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("unrecognised day of the week: %q", s)
}

// Parse parses and validates the supplied YAML specification.
func Parse(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Load reads, parses and validates the specified YAML configuration file.
func Load(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%v: %w", filename, err)
	}
	ctxlog.Logger(ctx).Debug("loaded config", "file", filename, "mode", cfg.Mode, "locale", cfg.Locale)
	return cfg, nil
}

// Validate validates the configuration, all problems found are reported
// rather than just the first.
func (c Config) Validate() error {
	var errs errors.M
	if err := validatorInstance().Struct(c); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ves {
				errs.Append(fmt.Errorf("%v: invalid value %q, failed %q validation", fe.Namespace(), fmt.Sprint(fe.Value()), fe.Tag()))
			}
		} else {
			errs.Append(err)
		}
	}
	if len(c.MinDate) > 0 && len(c.MaxDate) > 0 {
		minDate := dates.ToDateIn(c.MinDate, time.UTC)
		maxDate := dates.ToDateIn(c.MaxDate, time.UTC)
		if minDate.After(maxDate) {
			errs.Append(fmt.Errorf("min_date %v is after max_date %v", c.MinDate, c.MaxDate))
		}
	}
	if len(c.Logging.Format) > 0 && c.Logging.Format != "text" && c.Logging.Format != "json" {
		errs.Append(fmt.Errorf("logging.format: unknown log format %q", c.Logging.Format))
	}
	return errs.Err()
}

// Location returns the configured time zone, or time.Local if none
// is configured.
func (c Config) Location() (*time.Location, error) {
	if len(c.TimeZone) == 0 {
		return time.Local, nil
	}
	return time.LoadLocation(c.TimeZone)
}

// Holidays returns the days read from all of the configured iCalendar
// files, together with the configured Easter relative days for the years
// from and to inclusive.
func (c Config) Holidays(ctx context.Context, loc *time.Location, from, to int) (holidays.Set, error) {
	set := holidays.Set{}
	var errs errors.M
	for _, name := range c.DisabledICS {
		hs, err := readICS(ctx, name, loc)
		if err != nil {
			errs.Append(err)
			continue
		}
		ctxlog.Logger(ctx).Debug("read disabled dates", "file", name, "days", len(hs))
		set.Merge(hs)
	}
	if len(c.EasterOffsets) > 0 {
		set.Merge(holidays.EasterRelative(from, to, c.EasterOffsets...))
	}
	return set, errs.Err()
}

func readICS(ctx context.Context, name string, loc *time.Location) (holidays.Set, error) {
	data, err := file.FSReadFile(ctx, name)
	if err != nil {
		return nil, err
	}
	hs, err := holidays.ReadICS(bytes.NewReader(data), loc)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", name, err)
	}
	return hs, nil
}

// PickerConfig returns the picker.Config represented by the configuration
// with the days in disabled, typically obtained via Holidays, being
// disabled. The first day of the week defaults to that of the configured
// locale.
func (c Config) PickerConfig(disabled holidays.Set) (picker.Config, error) {
	mode, err := picker.ParseMode(c.Mode)
	if err != nil {
		return picker.Config{}, err
	}
	loc, err := c.Location()
	if err != nil {
		return picker.Config{}, err
	}
	fdow := locale.Lookup(c.Locale).FirstDayOfWeek
	if len(c.FirstDayOfWeek) > 0 {
		if fdow, err = ParseWeekday(c.FirstDayOfWeek); err != nil {
			return picker.Config{}, err
		}
	}
	pc := picker.Config{
		Mode:            mode,
		Constraints:     validation.Constraints{Weekdays: c.Weekdays, Weekends: c.Weekends},
		FirstDayOfWeek:  fdow,
		Locale:          c.Locale,
		ShowWeekNumbers: c.WeekNumbers,
		Location:        loc,
	}
	if len(c.MinDate) > 0 {
		pc.MinDate = c.MinDate
	}
	if len(c.MaxDate) > 0 {
		pc.MaxDate = c.MaxDate
	}
	for _, d := range c.DisabledDates {
		pc.DisabledDates = append(pc.DisabledDates, d)
	}
	if len(disabled) > 0 {
		pc.DisabledFunc = disabled.Disabled
	}
	return pc, nil
}
