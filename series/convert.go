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

package series

import (
	"fmt"
	"time"

	"github.com/temporalib/tempora/calendar"
)

// ConvertAnnual reshapes a 1-D series into one row per calendar year.
// It is a pure reshape with no aggregation: every observation lands at
// the column matching its offset within the year, and every slot with
// no observation stays missing. Row width is the fixed annual capacity
// of the source frequency (366*m for daily and finer, 12 for monthly,
// 4 for quarterly, 53 for weekly, 262 for business days).
func ConvertAnnual(ts *TimeSeries) (*TimeSeries, error) {
	if ts == nil {
		return nil, ErrInvalidInput
	}
	if ts.Rank() != 1 {
		return nil, fmt.Errorf("%w: annual conversion needs a 1-D input", ErrUnsupportedRank)
	}
	freq := ts.Freq()
	width := freq.PeriodsPerYear()
	if width == 0 {
		return nil, fmt.Errorf("%w: cannot group %s series by year", ErrInvalidInput, freq)
	}

	if ts.Len() == 0 {
		return NewMasked2D(nil, width), nil
	}

	years := ts.Dates().Years()
	minYear, maxYear := years[0], years[0]
	for _, y := range years {
		if y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}

	annualDates := make(calendar.DateSequence, 0, maxYear-minYear+1)
	for y := minYear; y <= maxYear; y++ {
		annualDates = append(annualDates, calendar.NewDate(calendar.Annual, time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)))
	}

	out := NewMasked2D(annualDates, width)
	for i, d := range ts.Dates() {
		if ts.IsMissing(i, 0) {
			continue
		}
		out.Set(years[i]-minYear, d.PeriodIndex(), ts.Value(i))
	}
	return out, nil
}
