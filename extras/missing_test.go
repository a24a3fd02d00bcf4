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

package extras_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/temporalib/tempora/calendar"
	"github.com/temporalib/tempora/extras"
	"github.com/temporalib/tempora/series"
)

func lastDay(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// monthlyGrid builds the 12x31 layout a year of complete daily data
// converts to: one row per month, day slots past the month end masked.
func monthlyGrid(year int) *series.TimeSeries {
	times := make([]time.Time, 12)
	rows := make([][]float64, 12)
	for m := 0; m < 12; m++ {
		times[m] = time.Date(year, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
		rows[m] = make([]float64, 31)
	}
	ts, err := series.New2D(calendar.NewDateSequence(calendar.Monthly, times), rows)
	Expect(err).To(BeNil())
	for m := 0; m < 12; m++ {
		for d := lastDay(year, time.Month(m+1)); d < 31; d++ {
			ts.SetMissing(m, d)
		}
	}
	return ts
}

// quarterlyGrid builds the 4x92 layout of a complete year of daily data
// at the given quarterly frequency, starting at the quarter containing
// January 1 of year.
func quarterlyGrid(freq calendar.Frequency, year int) *series.TimeSeries {
	times := make([]time.Time, 4)
	rows := make([][]float64, 4)
	first := calendar.NewDate(freq, time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	for q := 0; q < 4; q++ {
		times[q] = first.Add(q).Time()
		rows[q] = make([]float64, 92)
	}
	ts, err := series.New2D(calendar.NewDateSequence(freq, times), rows)
	Expect(err).To(BeNil())
	for q := 0; q < 4; q++ {
		start := first.Add(q).Time()
		days := 0
		for k := 0; k < 3; k++ {
			month := start.AddDate(0, k, 0)
			days += lastDay(month.Year(), month.Month())
		}
		for d := days; d < 92; d++ {
			ts.SetMissing(q, d)
		}
	}
	return ts
}

var _ = Describe("CountMissing", func() {
	Context("with monthly rows of day slots", func() {
		It("discards the structural padding of a complete non-leap year", func() {
			counts, err := extras.CountMissing(monthlyGrid(2021))
			Expect(err).To(BeNil())
			Expect(counts).To(Equal(make([]int, 12)))
		})

		It("discards the structural padding of a complete leap year", func() {
			counts, err := extras.CountMissing(monthlyGrid(2020))
			Expect(err).To(BeNil())
			Expect(counts).To(Equal(make([]int, 12)))
		})

		It("counts real gaps on top of the padding", func() {
			ts := monthlyGrid(2021)
			ts.SetMissing(2, 4)
			ts.SetMissing(2, 5)
			ts.SetMissing(1, 0)

			counts, err := extras.CountMissing(ts)
			Expect(err).To(BeNil())
			Expect(counts[1]).To(Equal(1))
			Expect(counts[2]).To(Equal(2))
			Expect(counts[0]).To(Equal(0))
		})
	})

	Context("with annual rows of day slots", func() {
		It("ignores the absent leap day of non-leap years", func() {
			times := []time.Time{
				time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
			}
			rows := [][]float64{make([]float64, 366), make([]float64, 366)}
			ts, err := series.New2D(calendar.NewDateSequence(calendar.Annual, times), rows)
			Expect(err).To(BeNil())
			ts.SetMissing(1, 365)

			counts, err := extras.CountMissing(ts)
			Expect(err).To(BeNil())
			Expect(counts).To(Equal([]int{0, 0}))
		})
	})

	Context("with quarterly rows of day slots", func() {
		DescribeTable("discards padding for every quarter alignment",
			func(freq calendar.Frequency, year int) {
				counts, err := extras.CountMissing(quarterlyGrid(freq, year))
				Expect(err).To(BeNil())
				Expect(counts).To(Equal(make([]int, 4)))
			},
			Entry("calendar quarters, non-leap year", calendar.QuarterlyJan, 2021),
			Entry("calendar quarters, leap year", calendar.QuarterlyJan, 2020),
			Entry("february-aligned quarters", calendar.QuarterlyFeb, 2021),
			Entry("december-aligned quarters", calendar.QuarterlyDec, 2021),
			Entry("october-aligned quarters", calendar.QuarterlyOct, 2020),
		)

		It("counts real gaps on top of the padding", func() {
			ts := quarterlyGrid(calendar.QuarterlyJan, 2021)
			ts.SetMissing(0, 10)
			counts, err := extras.CountMissing(ts)
			Expect(err).To(BeNil())
			Expect(counts).To(Equal([]int{1, 0, 0, 0}))
		})
	})

	Context("with already-coarse pivot layouts", func() {
		It("returns raw counts for 12-wide rows", func() {
			times := []time.Time{time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)}
			ts, err := series.New2D(calendar.NewDateSequence(calendar.Annual, times), [][]float64{make([]float64, 12)})
			Expect(err).To(BeNil())
			ts.SetMissing(0, 3)

			counts, err := extras.CountMissing(ts)
			Expect(err).To(BeNil())
			Expect(counts).To(Equal([]int{1}))
		})

		It("returns raw counts for 7-wide rows", func() {
			times := []time.Time{time.Date(2021, time.January, 4, 0, 0, 0, 0, time.UTC)}
			ts, err := series.New2D(calendar.NewDateSequence(calendar.Weekly, times), [][]float64{make([]float64, 7)})
			Expect(err).To(BeNil())

			counts, err := extras.CountMissing(ts)
			Expect(err).To(BeNil())
			Expect(counts).To(Equal([]int{0}))
		})
	})

	Context("with 1-D input", func() {
		It("totals the missing values", func() {
			times := make([]time.Time, 5)
			for i := range times {
				times[i] = time.Date(2021, time.January, 1+i, 0, 0, 0, 0, time.UTC)
			}
			ts, err := series.New(calendar.NewDateSequence(calendar.Daily, times), []float64{1, 2, 3, 4, 5})
			Expect(err).To(BeNil())
			ts.SetMissing(1, 0)
			ts.SetMissing(3, 0)

			counts, err := extras.CountMissing(ts)
			Expect(err).To(BeNil())
			Expect(counts).To(Equal([]int{2}))
		})
	})

	Context("with malformed input", func() {
		It("rejects a nil series", func() {
			_, err := extras.CountMissing(nil)
			Expect(err).To(MatchError(series.ErrInvalidInput))
		})

		It("rejects widths with no known correction", func() {
			times := []time.Time{time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)}
			ts, err := series.New2D(calendar.NewDateSequence(calendar.Annual, times), [][]float64{make([]float64, 40)})
			Expect(err).To(BeNil())
			_, err = extras.CountMissing(ts)
			Expect(err).To(MatchError(extras.ErrUnsupportedWidth))
		})

		It("rejects a row width that disagrees with the frequency", func() {
			times := []time.Time{time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)}
			ts, err := series.New2D(calendar.NewDateSequence(calendar.Monthly, times), [][]float64{make([]float64, 366)})
			Expect(err).To(BeNil())
			_, err = extras.CountMissing(ts)
			Expect(err).To(MatchError(extras.ErrFreqWidthMismatch))
		})
	})
})
