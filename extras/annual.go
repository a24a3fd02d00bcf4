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
	"github.com/temporalib/tempora/calendar"
	"github.com/temporalib/tempora/series"
)

// ConvertToAnnual groups a 1-D series by calendar year, taking leap
// years into account. The result has one row per distinct year and
// 366*m columns, where m is the number of periods per day of the
// source frequency. Column k denotes the same Jan-1-relative offset in
// every row: with daily data column 58 is always Feb 28 and column 60
// always Mar 1, and column 59 (Feb 29) is masked for non-leap years.
// With hourly data the 24 columns between 59*24 and 60*24 are masked
// instead.
//
// Frequencies coarser than daily reduce to the plain annual reshape,
// which needs no leap adjustment.
func ConvertToAnnual(ts *series.TimeSeries) (*series.TimeSeries, error) {
	if ts == nil {
		return nil, series.ErrInvalidInput
	}
	freq := ts.Freq()
	if freq != calendar.Daily && !freq.SubDaily() {
		return series.ConvertAnnual(ts)
	}

	m := freq.PerDay()
	idxFeb28 := 59 * m // boundary right after the last Feb-28 slot
	idxMar1 := 60 * m
	width := 366 * m

	out, err := series.ConvertAnnual(ts)
	if err != nil {
		return nil, err
	}

	for row, year := range out.Dates().Years() {
		if IsLeapYear(year) {
			continue
		}
		// In a non-leap year the reshape packed Mar 1 at idxFeb28.
		// Slide everything from there to the end of the row one
		// calendar day later so Mar 1 lands at its canonical offset,
		// then mask the vacated Feb-29 band.
		for j := width - 1; j >= idxMar1; j-- {
			src := j - (idxMar1 - idxFeb28)
			if out.IsMissing(row, src) {
				out.SetMissing(row, j)
			} else {
				out.Set(row, j, out.At(row, src))
			}
		}
		for j := idxFeb28; j < idxMar1; j++ {
			out.SetMissing(row, j)
		}
	}
	return out, nil
}
