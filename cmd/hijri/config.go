// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/errors"
	"cloudeng.io/hijri"
	"cloudeng.io/hijri/engine/astro"
	"cloudeng.io/hijri/engine/table"
	"cloudeng.io/logging/ctxlog"
)

// Config represents the optional YAML configuration file.
type Config struct {
	Engine      string             `yaml:"engine"`
	CutoffHour  *int               `yaml:"cutoff_hour"`
	TableFile   string             `yaml:"table_file"`
	Overflow    string             `yaml:"overflow"`
	Observances []hijri.Observance `yaml:"observances"`
}

var defaultObservances = []hijri.Observance{
	{Name: "Islamic New Year", Month: 1, Day: 1},
	{Name: "Ashura", Month: 1, Day: 10},
	{Name: "Ramadan", Month: 9, Day: 1},
	{Name: "Eid al-Fitr", Month: 10, Day: 1},
	{Name: "Day of Arafah", Month: 12, Day: 9},
	{Name: "Eid al-Adha", Month: 12, Day: 10},
}

// Validate checks the configuration for errors, all of which are returned.
func (c Config) Validate() error {
	errs := &errors.M{}
	if len(c.Engine) > 0 {
		errs.Append(flags.OneOf(c.Engine).Validate("uaq", "fcna"))
	}
	if c.CutoffHour != nil && (*c.CutoffHour < 0 || *c.CutoffHour > 23) {
		errs.Append(fmt.Errorf("cutoff_hour: %v is not in the range 0-23", *c.CutoffHour))
	}
	if _, err := hijri.ParseOverflow(c.Overflow); err != nil {
		errs.Append(err)
	}
	for i, o := range c.Observances {
		if o.Month < 1 || o.Month > hijri.MonthsInYear {
			errs.Append(fmt.Errorf("observance %v: %q: invalid month: %v", i, o.Name, o.Month))
		}
		if o.Day < 1 || o.Day > 30 {
			errs.Append(fmt.Errorf("observance %v: %q: invalid day: %v", i, o.Name, o.Day))
		}
	}
	return errs.Err()
}

func loadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if len(filename) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFile(ctx, filename, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%v: %w", filename, err)
	}
	ctxlog.Logger(ctx).Info("loaded configuration", "file", filename, "engine", cfg.Engine, "observances", len(cfg.Observances))
	return cfg, nil
}

// calendar returns the calendar selected by the configuration, the engine
// named on the command line takes precedence over the one in the
// configuration file.
func (c Config) calendar(ctx context.Context, engineFlag string) (*hijri.Calendar, error) {
	name := c.Engine
	if len(engineFlag) > 0 {
		if err := flags.OneOf(engineFlag).Validate("uaq", "fcna"); err != nil {
			return nil, err
		}
		name = engineFlag
	}
	logger := ctxlog.Logger(ctx)
	switch name {
	case "", "uaq":
		if len(c.TableFile) == 0 {
			return hijri.UmmAlQura(), nil
		}
		t, err := table.LoadFile(c.TableFile)
		if err != nil {
			return nil, err
		}
		e, err := table.New(t)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", c.TableFile, err)
		}
		first, last := e.Range()
		logger.Info("loaded table", "file", c.TableFile, "id", e.ID(), "first", first, "last", last)
		return hijri.New(e), nil
	default:
		if c.CutoffHour == nil {
			return hijri.FCNA(), nil
		}
		logger.Info("using astronomical engine", "cutoff_hour", *c.CutoffHour)
		return hijri.New(astro.New(astro.WithCutoff(*c.CutoffHour))), nil
	}
}

func (c Config) observances() []hijri.Observance {
	if len(c.Observances) == 0 {
		return defaultObservances
	}
	return c.Observances
}
