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

package series_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/temporalib/tempora/calendar"
	"github.com/temporalib/tempora/series"
)

func dailyDates(start time.Time, n int) calendar.DateSequence {
	times := make([]time.Time, n)
	for i := range times {
		times[i] = start.AddDate(0, 0, i)
	}
	return calendar.NewDateSequence(calendar.Daily, times)
}

var _ = Describe("TimeSeries", func() {
	jan1 := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

	Describe("construction", func() {
		It("builds a 1-D series", func() {
			ts, err := series.New(dailyDates(jan1, 3), []float64{1, 2, 3})
			Expect(err).To(BeNil())
			Expect(ts.Rank()).To(Equal(1))
			Expect(ts.Len()).To(Equal(3))
			Expect(ts.Width()).To(Equal(3))
			Expect(ts.Value(1)).To(Equal(2.0))
			Expect(ts.Count()).To(Equal(3))
		})

		It("rejects misaligned dates and values", func() {
			_, err := series.New(dailyDates(jan1, 3), []float64{1, 2})
			Expect(err).To(MatchError(series.ErrShapeMismatch))
		})

		It("builds a 2-D series from rectangular rows", func() {
			ts, err := series.New2D(dailyDates(jan1, 2), [][]float64{{1, 2}, {3, 4}})
			Expect(err).To(BeNil())
			Expect(ts.Rank()).To(Equal(2))
			Expect(ts.Width()).To(Equal(2))
			Expect(ts.At(1, 0)).To(Equal(3.0))
		})

		It("rejects ragged rows", func() {
			_, err := series.New2D(dailyDates(jan1, 2), [][]float64{{1, 2}, {3}})
			Expect(err).To(MatchError(series.ErrRaggedRows))
		})

		It("starts fully missing when built masked", func() {
			ts := series.NewMasked2D(dailyDates(jan1, 2), 4)
			Expect(ts.Count()).To(Equal(0))
			Expect(ts.IsMissing(1, 3)).To(BeTrue())
		})
	})

	Describe("masking", func() {
		It("counts observed slots per row", func() {
			ts, err := series.New2D(dailyDates(jan1, 2), [][]float64{{1, 2, 3}, {4, 5, 6}})
			Expect(err).To(BeNil())
			ts.SetMissing(0, 1)
			Expect(ts.CountRow(0)).To(Equal(2))
			Expect(ts.CountRow(1)).To(Equal(3))
			Expect(ts.Count()).To(Equal(5))
		})

		It("masks whole rows", func() {
			ts, err := series.New2D(dailyDates(jan1, 2), [][]float64{{1, 2}, {3, 4}})
			Expect(err).To(BeNil())
			ts.MaskRow(0)
			Expect(ts.CountRow(0)).To(Equal(0))
			Expect(ts.CountRow(1)).To(Equal(2))
		})
	})

	Describe("copying", func() {
		It("does not share mask storage with the original", func() {
			orig, err := series.New2D(dailyDates(jan1, 2), [][]float64{{1, 2}, {3, 4}})
			Expect(err).To(BeNil())
			cp := orig.Copy()
			cp.MaskRow(0)
			cp.Set(1, 1, 99)
			Expect(orig.CountRow(0)).To(Equal(2))
			Expect(orig.At(1, 1)).To(Equal(4.0))
		})

		It("copies column names", func() {
			orig, err := series.New2D(dailyDates(jan1, 1), [][]float64{{1, 2}})
			Expect(err).To(BeNil())
			orig.SetNames([]string{"a", "b"})
			cp := orig.Copy()
			cp.SetNames([]string{"x", "y"})
			Expect(orig.Names()).To(Equal([]string{"a", "b"}))
		})
	})

	Describe("column extraction", func() {
		var ts *series.TimeSeries

		BeforeEach(func() {
			var err error
			ts, err = series.New2D(dailyDates(jan1, 3), [][]float64{{1, 10}, {2, 20}, {3, 30}})
			Expect(err).To(BeNil())
			ts.SetNames([]string{"open", "close"})
			ts.SetMissing(1, 1)
		})

		It("extracts a column by position", func() {
			col, err := ts.Column(1)
			Expect(err).To(BeNil())
			Expect(col.Rank()).To(Equal(1))
			Expect(col.Value(0)).To(Equal(10.0))
			Expect(col.IsMissing(1, 0)).To(BeTrue())
			Expect(col.Value(2)).To(Equal(30.0))
			Expect(col.Names()).To(Equal([]string{"close"}))
		})

		It("extracts a column by name", func() {
			col, err := ts.ColumnByName("open")
			Expect(err).To(BeNil())
			Expect(col.Value(2)).To(Equal(3.0))
		})

		It("rejects unknown columns", func() {
			_, err := ts.Column(5)
			Expect(err).To(MatchError(series.ErrInvalidInput))
			_, err = ts.ColumnByName("volume")
			Expect(err).To(MatchError(series.ErrInvalidInput))
		})
	})
})
