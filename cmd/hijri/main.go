// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command hijri converts between civil (Gregorian) and Hijri dates and
// performs Hijri calendar arithmetic.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: hijri
summary: convert between civil and hijri dates and perform hijri calendar arithmetic
commands:
  - name: convert
    summary: display the hijri date for each of the supplied civil dates.
      The embedded umm al-qura table (the default engine) covers 1442-1446 AH,
      2020-08-20 to 2025-06-25, use --engine=fcna or a configured table_file
      for other dates.
    arguments:
      - <yyyy-mm-dd>
      - ...
  - name: solar
    summary: display the civil date for a hijri year, month (number or code, eg. M09) and day
    arguments:
      - <year>
      - <month>
      - <day>
  - name: info
    summary: display all of the hijri field values for a civil date as yaml
    arguments:
      - <yyyy-mm-dd>
  - name: add
    summary: add an ISO8601 duration, eg. P1M or -P1Y2D, to a civil date using the hijri calendar
    arguments:
      - <yyyy-mm-dd>
      - <duration>
  - name: until
    summary: display the duration between two civil dates using the hijri calendar
    arguments:
      - <start>
      - <end>
  - name: observances
    summary: list the occurrences of the configured observances between two civil dates
    arguments:
      - <from>
      - <to>
`

func newCommandSet(out io.Writer) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	c := &commands{out: out}
	cmdSet.Set("convert").MustRunnerAndFlags(c.convert,
		subcmd.MustRegisteredFlagSet(&convertFlags{}))
	cmdSet.Set("solar").MustRunnerAndFlags(c.solar,
		subcmd.MustRegisteredFlagSet(&solarFlags{}))
	cmdSet.Set("info").MustRunnerAndFlags(c.info,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("add").MustRunnerAndFlags(c.add,
		subcmd.MustRegisteredFlagSet(&addFlags{}))
	cmdSet.Set("until").MustRunnerAndFlags(c.until,
		subcmd.MustRegisteredFlagSet(&untilFlags{}))
	cmdSet.Set("observances").MustRunnerAndFlags(c.observances,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(os.Stdout))
}
