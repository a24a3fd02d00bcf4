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
	"strings"
	"time"
)

// Frequency identifies the sampling granularity of a date. Quarterly
// frequencies additionally carry their fiscal start month.
type Frequency int

const (
	Undefined Frequency = iota
	Secondly
	Minutely
	Hourly
	Daily
	Business
	Weekly
	Monthly
	QuarterlyJan
	QuarterlyFeb
	QuarterlyMar
	QuarterlyApr
	QuarterlyMay
	QuarterlyJun
	QuarterlyJul
	QuarterlyAug
	QuarterlySep
	QuarterlyOct
	QuarterlyNov
	QuarterlyDec
	Annual
)

// Quarterly is the default quarterly frequency (calendar quarters,
// starting in January)
const Quarterly = QuarterlyJan

var freqNames = map[Frequency]string{
	Undefined: "undefined",
	Secondly:  "secondly",
	Minutely:  "minutely",
	Hourly:    "hourly",
	Daily:     "daily",
	Business:  "business",
	Weekly:    "weekly",
	Monthly:   "monthly",
	Annual:    "annual",
}

func (f Frequency) String() string {
	if f.IsQuarterly() {
		return fmt.Sprintf("quarterly-%s", f.QuarterStart().String()[:3])
	}
	if name, ok := freqNames[f]; ok {
		return name
	}
	return "undefined"
}

// ParseFrequency converts a frequency specification string to a Frequency.
// Both long names ("daily") and the traditional single-letter codes
// ("d") are accepted. Quarterly start months may be given as a suffix,
// e.g. "q-oct" or "quarterly-oct".
func ParseFrequency(s string) (Frequency, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(norm, "q") {
		return parseQuarterly(norm)
	}

	switch norm {
	case "s", "sec", "second", "secondly":
		return Secondly, nil
	case "t", "min", "minute", "minutely":
		return Minutely, nil
	case "h", "hr", "hour", "hourly":
		return Hourly, nil
	case "d", "day", "daily":
		return Daily, nil
	case "b", "bus", "business":
		return Business, nil
	case "w", "week", "weekly":
		return Weekly, nil
	case "m", "month", "monthly":
		return Monthly, nil
	case "a", "y", "year", "annual", "annually", "yearly":
		return Annual, nil
	}
	return Undefined, fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
}

var monthAbbrev = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

func parseQuarterly(norm string) (Frequency, error) {
	switch norm {
	case "q", "qtr", "quarter", "quarterly":
		return Quarterly, nil
	}
	idx := strings.IndexRune(norm, '-')
	if idx < 0 {
		return Undefined, fmt.Errorf("%w: %q", ErrUnknownFrequency, norm)
	}
	month, ok := monthAbbrev[norm[idx+1:]]
	if !ok {
		return Undefined, fmt.Errorf("%w: %q", ErrUnknownFrequency, norm)
	}
	return QuarterlyJan + Frequency(month-time.January), nil
}

// IsQuarterly reports whether f is one of the twelve quarterly variants.
func (f Frequency) IsQuarterly() bool {
	return f >= QuarterlyJan && f <= QuarterlyDec
}

// QuarterStart returns the fiscal start month of a quarterly frequency.
// For all other frequencies it returns January.
func (f Frequency) QuarterStart() time.Month {
	if !f.IsQuarterly() {
		return time.January
	}
	return time.January + time.Month(f-QuarterlyJan)
}

// AlignmentClass partitions quarterly frequencies into three groups by
// fiscal start month modulo 3: 0 covers {Jan,Apr,Jul,Oct}, 1 covers
// {Feb,May,Aug,Nov} and 2 covers {Mar,Jun,Sep,Dec}. The class fixes
// which month within each quarter varies with leap years.
func (f Frequency) AlignmentClass() int {
	return int(f.QuarterStart()-time.January) % 3
}

// rank collapses the quarterly variants to a single position on the
// coarseness scale.
func (f Frequency) rank() int {
	if f.IsQuarterly() {
		return int(QuarterlyJan)
	}
	return int(f)
}

// Coarser reports whether f covers a longer calendar period than other.
func (f Frequency) Coarser(other Frequency) bool {
	return f.rank() > other.rank()
}

// Finer reports whether f covers a shorter calendar period than other.
func (f Frequency) Finer(other Frequency) bool {
	return f.rank() < other.rank()
}

// SubDaily reports whether f is finer than daily.
func (f Frequency) SubDaily() bool {
	return f == Hourly || f == Minutely || f == Secondly
}

// PerDay returns the number of periods per day for daily and sub-daily
// frequencies, and 0 for coarser frequencies.
func (f Frequency) PerDay() int {
	switch f {
	case Daily:
		return 1
	case Hourly:
		return 24
	case Minutely:
		return 24 * 60
	case Secondly:
		return 24 * 60 * 60
	}
	return 0
}

// PeriodsPerYear returns the fixed row width used when grouping a
// series of this frequency into annual rows. The width accommodates the
// longest possible year: 366 days, 53 weeks, 262 business days.
func (f Frequency) PeriodsPerYear() int {
	switch {
	case f.SubDaily() || f == Daily:
		return 366 * f.PerDay()
	case f == Business:
		return 262
	case f == Weekly:
		return 53
	case f == Monthly:
		return 12
	case f.IsQuarterly():
		return 4
	case f == Annual:
		return 1
	}
	return 0
}
