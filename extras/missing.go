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

package extras

import (
	"fmt"
	"time"

	"github.com/temporalib/tempora/calendar"
	"github.com/temporalib/tempora/series"
)

// monthDays is the length of each month in a non-leap year. February's
// actual length is resolved against IsLeapYear.
var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysInMonth(m time.Month, year int) int {
	if m == time.February && IsLeapYear(year) {
		return 29
	}
	return monthDays[m]
}

// CountMissing returns the number of missing observations per row of a
// converted series, discarding slots that can never hold data because
// the calendar period is shorter than the fixed row width. Converting a
// year of daily data to monthly rows yields a (12x31) layout; the three
// trailing slots of a non-leap February are structural padding, not
// missing observations, and are not counted.
//
// For 1-D series the result has a single entry: the total number of
// missing values.
func CountMissing(ts *series.TimeSeries) ([]int, error) {
	if ts == nil {
		return nil, series.ErrInvalidInput
	}
	if ts.Rank() == 1 {
		return []int{ts.Len() - ts.Count()}, nil
	}

	width := ts.Width()
	missing := make([]int, ts.Len())
	for i := range missing {
		missing[i] = width - ts.CountRow(i)
	}

	freq := ts.Freq()
	dates := ts.Dates()
	switch width {
	case 366:
		// rows: years, cols: days
		if freq != calendar.Annual {
			return nil, fmt.Errorf("%w: width 366 expects an annual series, got %s", ErrFreqWidthMismatch, freq)
		}
		for i, d := range dates {
			if !IsLeapYear(d.Year()) {
				missing[i]--
			}
		}
	case 31:
		// rows: months, cols: days
		if freq != calendar.Monthly {
			return nil, fmt.Errorf("%w: width 31 expects a monthly series, got %s", ErrFreqWidthMismatch, freq)
		}
		for i, d := range dates {
			switch {
			case d.Month() == time.February:
				missing[i] -= 2
				if !IsLeapYear(d.Year()) {
					missing[i]--
				}
			case daysInMonth(d.Month(), d.Year()) == 30:
				missing[i]--
			}
		}
	case 92:
		// rows: quarters, cols: days
		if !freq.IsQuarterly() {
			return nil, fmt.Errorf("%w: width 92 expects a quarterly series, got %s", ErrFreqWidthMismatch, freq)
		}
		for i, d := range dates {
			missing[i] -= quarterPadding(d)
		}
	case 12, 7:
		// already-coarse pivot layouts (month-of-year, day-of-week);
		// every slot is a real period, no correction applies
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedWidth, width)
	}
	return missing, nil
}

// quarterPadding returns the number of structural pad slots in a
// 92-wide quarter row. The three quarter alignment classes all reduce
// to the same formula: 92 minus the actual day count of the quarter's
// three months, with February's length read from the leap-year oracle
// against that month's own calendar year.
func quarterPadding(d calendar.Date) int {
	days := 0
	start := d.Time()
	for k := 0; k < 3; k++ {
		month := start.AddDate(0, k, 0)
		days += daysInMonth(month.Month(), month.Year())
	}
	return 92 - days
}
