// Copyright 2022-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a scalar instant stamped with a Frequency. The underlying
// time is always normalized to the start of the period it falls in, in
// UTC, so two dates of the same frequency compare equal iff they denote
// the same period.
type Date struct {
	t    time.Time
	freq Frequency
}

// NewDate creates a Date at the given frequency, normalizing t to the
// start of its period.
func NewDate(freq Frequency, t time.Time) Date {
	return Date{t: truncate(freq, t.UTC()), freq: freq}
}

func truncate(freq Frequency, t time.Time) time.Time {
	switch {
	case freq == Secondly:
		return t.Truncate(time.Second)
	case freq == Minutely:
		return t.Truncate(time.Minute)
	case freq == Hourly:
		return t.Truncate(time.Hour)
	case freq == Daily:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case freq == Business:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		// weekends roll back to the preceding Friday
		switch day.Weekday() {
		case time.Saturday:
			day = day.AddDate(0, 0, -1)
		case time.Sunday:
			day = day.AddDate(0, 0, -2)
		}
		return day
	case freq == Weekly:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		sinceMonday := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -sinceMonday)
	case freq == Monthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case freq.IsQuarterly():
		first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		sinceStart := (int(t.Month()) - int(freq.QuarterStart()) + 12) % 12
		return first.AddDate(0, -(sinceStart % 3), 0)
	case freq == Annual:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return t
}

// Freq returns the frequency code the date is stamped with.
func (d Date) Freq() Frequency { return d.freq }

// Time returns the start instant of the period, in UTC.
func (d Date) Time() time.Time { return d.t }

// Year returns the calendar year of the period start.
func (d Date) Year() int { return d.t.Year() }

// Month returns the calendar month of the period start.
func (d Date) Month() time.Month { return d.t.Month() }

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.freq == other.freq && d.t.Equal(other.t) }

// Add offsets the date by n periods of its own frequency. Business
// dates skip weekends.
func (d Date) Add(n int) Date {
	var t time.Time
	switch {
	case d.freq == Secondly:
		t = d.t.Add(time.Duration(n) * time.Second)
	case d.freq == Minutely:
		t = d.t.Add(time.Duration(n) * time.Minute)
	case d.freq == Hourly:
		t = d.t.Add(time.Duration(n) * time.Hour)
	case d.freq == Daily:
		t = d.t.AddDate(0, 0, n)
	case d.freq == Business:
		t = addBusinessDays(d.t, n)
	case d.freq == Weekly:
		t = d.t.AddDate(0, 0, 7*n)
	case d.freq == Monthly:
		t = d.t.AddDate(0, n, 0)
	case d.freq.IsQuarterly():
		t = d.t.AddDate(0, 3*n, 0)
	case d.freq == Annual:
		t = d.t.AddDate(n, 0, 0)
	default:
		t = d.t
	}
	return Date{t: truncate(d.freq, t), freq: d.freq}
}

func addBusinessDays(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	for n > 0 {
		t = t.AddDate(0, 0, step)
		wd := t.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			n--
		}
	}
	return t
}

// AsFreq converts the date to another frequency by re-normalizing the
// period start.
func (d Date) AsFreq(target Frequency) Date {
	return NewDate(target, d.t)
}

// PeriodIndex returns the zero-based offset of this period within its
// calendar year, in units of the date's own frequency. The offset of a
// given calendar position is stable across years only up to the Feb-29
// shift, which annual grouping corrects separately.
func (d Date) PeriodIndex() int {
	switch {
	case d.freq == Daily:
		return d.t.YearDay() - 1
	case d.freq == Hourly:
		return (d.t.YearDay()-1)*24 + d.t.Hour()
	case d.freq == Minutely:
		return ((d.t.YearDay()-1)*24+d.t.Hour())*60 + d.t.Minute()
	case d.freq == Secondly:
		return (((d.t.YearDay()-1)*24+d.t.Hour())*60+d.t.Minute())*60 + d.t.Second()
	case d.freq == Business:
		return businessDayOfYear(d.t)
	case d.freq == Weekly:
		return (d.t.YearDay() - 1) / 7
	case d.freq == Monthly:
		return int(d.t.Month() - time.January)
	case d.freq.IsQuarterly():
		return ((int(d.t.Month()) - int(d.freq.QuarterStart()) + 12) % 12) / 3
	}
	return 0
}

// businessDayOfYear counts the weekdays from Jan 1 up to but excluding t.
func businessDayOfYear(t time.Time) int {
	count := 0
	for day := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC); day.Before(t); day = day.AddDate(0, 0, 1) {
		wd := day.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"2006-01",
	"2006",
}

// ParseDate parses a single string field into a Date at the requested
// frequency. Surrounding quotes and whitespace are ignored. Quarterly
// dates also accept the "2006Q1" and "2006-Q1" forms, with the quarter
// number interpreted against the frequency's fiscal start month.
func ParseDate(freq Frequency, s string) (Date, error) {
	field := strings.Trim(strings.TrimSpace(s), `"'`)
	if field == "" {
		return Date{}, fmt.Errorf("%w: empty field", ErrDateFormat)
	}
	if freq.IsQuarterly() {
		if d, ok := parseQuarterLabel(freq, field); ok {
			return d, nil
		}
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, field); err == nil {
			return NewDate(freq, t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrDateFormat, s)
}

func parseQuarterLabel(freq Frequency, field string) (Date, bool) {
	norm := strings.ToUpper(strings.ReplaceAll(field, "-", ""))
	idx := strings.IndexRune(norm, 'Q')
	if idx < 1 {
		return Date{}, false
	}
	year, err := strconv.Atoi(norm[:idx])
	if err != nil {
		return Date{}, false
	}
	quarter, err := strconv.Atoi(norm[idx+1:])
	if err != nil || quarter < 1 || quarter > 4 {
		return Date{}, false
	}
	start := time.Date(year, freq.QuarterStart(), 1, 0, 0, 0, 0, time.UTC)
	return NewDate(freq, start.AddDate(0, 3*(quarter-1), 0)), true
}

func (d Date) String() string {
	switch {
	case d.freq == Annual:
		return d.t.Format("2006")
	case d.freq.IsQuarterly():
		return fmt.Sprintf("%04dQ%d", d.t.Year(), d.PeriodIndex()+1)
	case d.freq == Monthly:
		return d.t.Format("2006-01")
	case d.freq == Hourly:
		return d.t.Format("2006-01-02 15:00")
	case d.freq == Minutely:
		return d.t.Format("2006-01-02 15:04")
	case d.freq == Secondly:
		return d.t.Format("2006-01-02 15:04:05")
	}
	return d.t.Format("2006-01-02")
}
