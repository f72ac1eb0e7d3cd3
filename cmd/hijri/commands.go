// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/hijri"
	"cloudeng.io/hijri/civil"
	"cloudeng.io/hijri/engine"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml configuration file'"`
	Engine string `subcmd:"engine,,'calendar engine, uaq or fcna, overrides the configuration file'"`
}

type convertFlags struct {
	CommonFlags
	UTC bool `subcmd:"utc,false,'use the UTC date of RFC3339 timestamps rather than their local date'"`
}

type solarFlags struct {
	CommonFlags
	Overflow string `subcmd:"overflow,,'constrain or reject a day that does not exist in the month, overrides the configuration file'"`
}

type addFlags struct {
	CommonFlags
	Overflow string `subcmd:"overflow,,'constrain or reject a day that does not exist in the target month, overrides the configuration file'"`
}

type untilFlags struct {
	CommonFlags
	Unit string `subcmd:"unit,months,'largest unit of the result: days, weeks, months or years'"`
}

type commands struct {
	out io.Writer
}

type session struct {
	cal    *hijri.Calendar
	config Config
	logger *cmdutil.Logger
}

func (s *session) overflow(flag string) (hijri.Overflow, error) {
	if len(flag) > 0 {
		return hijri.ParseOverflow(flag)
	}
	return hijri.ParseOverflow(s.config.Overflow)
}

type ranged interface {
	Range() (first, last civil.Date)
}

// explain annotates out of range errors from table driven engines with
// the range that the table supports.
func (s *session) explain(err error) error {
	r, ok := s.cal.Engine().(ranged)
	if !ok || !errors.Is(err, hijri.ErrOutOfRange) {
		return err
	}
	first, last := r.Range()
	return fmt.Errorf("%w: the %v table covers %v to %v, use --engine=fcna or a table_file for other dates", err, s.cal.Engine().ID(), first, last)
}

func (c *commands) start(ctx context.Context, cf *CommonFlags) (context.Context, *session, error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	cfg, err := loadConfig(ctx, cf.Config)
	if err != nil {
		logger.Close()
		return ctx, nil, err
	}
	cal, err := cfg.calendar(ctx, cf.Engine)
	if err != nil {
		logger.Close()
		return ctx, nil, err
	}
	ctx = ctxlog.WithAttributes(ctx, "calendar", cal.ID())
	return ctx, &session{cal: cal, config: cfg, logger: logger}, nil
}

// parseDateOrTime accepts either a civil date or an RFC3339 timestamp.
func parseDateOrTime(val string, utc bool) (civil.Date, error) {
	d, err := civil.Parse(val)
	if err == nil {
		return d, nil
	}
	t, terr := time.Parse(time.RFC3339, val)
	if terr != nil {
		return civil.Date{}, err
	}
	if utc {
		return civil.AnchoredFields(t), nil
	}
	return civil.LocalFields(t), nil
}

func (c *commands) convert(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*convertFlags)
	ctx, s, err := c.start(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.logger.Close()
	for _, arg := range args {
		d, err := parseDateOrTime(arg, fv.UTC)
		if err != nil {
			return err
		}
		lc, err := s.cal.ToLunar(d)
		if err != nil {
			return s.explain(err)
		}
		ctxlog.Logger(ctx).Debug("converted", "civil", d, "hijri", lc)
		fmt.Fprintf(c.out, "%v %v\n", arg, lc)
	}
	return nil
}

func parseMonth(val string) (int, error) {
	if strings.HasPrefix(val, "M") {
		return hijri.ParseMonthCode(val)
	}
	m, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid month: %q", val)
	}
	return m, nil
}

func (c *commands) solar(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*solarFlags)
	ctx, s, err := c.start(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.logger.Close()
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year: %q", args[0])
	}
	month, err := parseMonth(args[1])
	if err != nil {
		return err
	}
	day, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid day: %q", args[2])
	}
	overflow, err := s.overflow(fv.Overflow)
	if err != nil {
		return err
	}
	d, err := s.cal.DateFromFields(hijri.Fields{Year: year, Month: month, Day: day}, overflow)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("converted", "hijri", engine.Coordinate{Year: year, Month: month, Day: day}, "civil", d)
	fmt.Fprintf(c.out, "%v\n", d)
	return nil
}

func (c *commands) info(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*CommonFlags)
	_, s, err := c.start(ctx, fv)
	if err != nil {
		return err
	}
	defer s.logger.Close()
	d, err := civil.Parse(args[0])
	if err != nil {
		return err
	}
	info, err := s.cal.Describe(d)
	if err != nil {
		return s.explain(err)
	}
	buf, err := yaml.Marshal(info)
	if err != nil {
		return err
	}
	_, err = c.out.Write(buf)
	return err
}

func (c *commands) add(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*addFlags)
	ctx, s, err := c.start(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.logger.Close()
	d, err := civil.Parse(args[0])
	if err != nil {
		return err
	}
	dur, err := hijri.ParseDuration(args[1])
	if err != nil {
		return err
	}
	overflow, err := s.overflow(fv.Overflow)
	if err != nil {
		return err
	}
	result, err := s.cal.Add(d, dur, overflow)
	if err != nil {
		return s.explain(err)
	}
	ctxlog.Logger(ctx).Debug("add", "date", d, "duration", dur, "overflow", overflow, "result", result)
	fmt.Fprintf(c.out, "%v\n", result)
	return nil
}

func (c *commands) until(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*untilFlags)
	ctx, s, err := c.start(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.logger.Close()
	unit, err := hijri.ParseUnit(fv.Unit)
	if err != nil {
		return err
	}
	start, err := civil.Parse(args[0])
	if err != nil {
		return err
	}
	end, err := civil.Parse(args[1])
	if err != nil {
		return err
	}
	dur, err := s.cal.Until(start, end, unit)
	if err != nil {
		return s.explain(err)
	}
	ctxlog.Logger(ctx).Debug("until", "start", start, "end", end, "unit", unit, "result", dur)
	fmt.Fprintf(c.out, "%v\n", dur)
	return nil
}

func (c *commands) observances(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*CommonFlags)
	ctx, s, err := c.start(ctx, fv)
	if err != nil {
		return err
	}
	defer s.logger.Close()
	from, err := civil.Parse(args[0])
	if err != nil {
		return err
	}
	to, err := civil.Parse(args[1])
	if err != nil {
		return err
	}
	observances := s.config.observances()
	occurrences, err := s.cal.Occurrences(from, to, observances...)
	if err != nil {
		return s.explain(err)
	}
	ctxlog.Logger(ctx).Info("observances", "from", from, "to", to, "observances", len(observances), "occurrences", len(occurrences))
	for _, o := range occurrences {
		fmt.Fprintln(c.out, o)
	}
	return nil
}
