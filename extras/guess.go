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
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/temporalib/tempora/calendar"
)

// quarterGaps are the day gaps (mod 365) consistent with quarterly
// sampling: one quarter apart, or three quarters apart across a year
// wrap.
var quarterGaps = map[int]bool{
	89: true, 90: true, 91: true, 92: true,
	273: true, 274: true, 275: true, 276: true, 277: true,
}

// GuessFrequency estimates a sampling frequency from a list of
// timestamps. The input is reduced to second resolution, sorted, and
// classified by the gaps between consecutive entries. The thresholds
// are heuristic, not exact calendar rules; in particular Business is
// never guessed, so consecutive weekday timestamps classify as Daily
// (the weekend gap of 3 days breaks the weekly pattern and the 1-day
// gaps are not multiples of 7).
func GuessFrequency(times []time.Time) (calendar.Frequency, error) {
	if len(times) < 2 {
		return calendar.Undefined, ErrTooFewDates
	}

	sorted := make([]time.Time, len(times))
	for i, t := range times {
		sorted[i] = t.UTC().Truncate(time.Second)
	}
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Before(sorted[b]) })

	gapSecs := make([]float64, len(sorted)-1)
	anySubDay := false
	for i := 1; i < len(sorted); i++ {
		secs := int64(sorted[i].Sub(sorted[i-1]) / time.Second)
		gapSecs[i-1] = float64(secs)
		if secs%86400 != 0 {
			anySubDay = true
		}
	}

	if anySubDay {
		return classifySubDay(gapSecs), nil
	}
	return classifyDays(gapSecs), nil
}

// GuessFrequencyDates estimates the sampling frequency of an existing
// date sequence from its period start instants.
func GuessFrequencyDates(dates calendar.DateSequence) (calendar.Frequency, error) {
	return GuessFrequency(dates.Times())
}

func classifySubDay(gapSecs []float64) calendar.Frequency {
	minInc := floats.Min(gapSecs)

	anyWholeHour := false
	for _, s := range gapSecs {
		if int64(s)%3600 == 0 {
			anyWholeHour = true
			break
		}
	}

	switch {
	case minInc > 3599 && anyWholeHour:
		return calendar.Hourly
	case minInc < 59:
		return calendar.Secondly
	default:
		return calendar.Minutely
	}
}

func classifyDays(gapSecs []float64) calendar.Frequency {
	days := make([]float64, len(gapSecs))
	incs := make([]float64, len(gapSecs))
	for i, s := range gapSecs {
		days[i] = float64(int64(s) / 86400)
		incs[i] = float64(int64(days[i]) % 365)
	}

	// the annual test runs on the raw gaps: a 365-day gap folds to 0
	// under mod 365 and would otherwise be unreachable
	if floats.Min(days) > 360 {
		return calendar.Annual
	}

	minDays := floats.Min(incs)
	switch {
	case minDays > 88:
		for _, inc := range incs {
			if !quarterGaps[int(inc)] {
				return calendar.Monthly
			}
		}
		return calendar.Quarterly
	case minDays > 27:
		return calendar.Monthly
	}

	if int64(minDays)%7 == 0 {
		weekly := true
		for _, inc := range incs {
			if int64(inc)%7 != 0 {
				weekly = false
				break
			}
		}
		if weekly {
			return calendar.Weekly
		}
	}
	return calendar.Daily
}
