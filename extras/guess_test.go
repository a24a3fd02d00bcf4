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
)

func span(start time.Time, step time.Duration, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.Add(time.Duration(i) * step)
	}
	return out
}

func spanDays(start time.Time, stepDays, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i*stepDays)
	}
	return out
}

var _ = Describe("GuessFrequency", func() {
	jan1 := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

	DescribeTable("classifies evenly spaced timestamps",
		func(times []time.Time, expected calendar.Frequency) {
			freq, err := extras.GuessFrequency(times)
			Expect(err).To(BeNil())
			Expect(freq).To(Equal(expected))
		},
		Entry("one second apart", span(jan1, time.Second, 10), calendar.Secondly),
		Entry("thirty seconds apart", span(jan1, 30*time.Second, 10), calendar.Secondly),
		Entry("one minute apart", span(jan1, time.Minute, 10), calendar.Minutely),
		Entry("thirty minutes apart", span(jan1, 30*time.Minute, 10), calendar.Minutely),
		Entry("one hour apart", span(jan1, time.Hour, 10), calendar.Hourly),
		Entry("six hours apart", span(jan1, 6*time.Hour, 10), calendar.Hourly),
		Entry("one day apart", spanDays(jan1, 1, 10), calendar.Daily),
		Entry("one week apart", spanDays(jan1, 7, 10), calendar.Weekly),
		Entry("two weeks apart", spanDays(jan1, 14, 10), calendar.Weekly),
		Entry("first of every month", func() []time.Time {
			out := make([]time.Time, 14)
			for i := range out {
				out[i] = time.Date(2021, time.January+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
			}
			return out
		}(), calendar.Monthly),
		Entry("quarter starts", func() []time.Time {
			out := make([]time.Time, 8)
			for i := range out {
				out[i] = time.Date(2021, time.January+time.Month(3*i), 1, 0, 0, 0, 0, time.UTC)
			}
			return out
		}(), calendar.Quarterly),
		Entry("january first of every year", func() []time.Time {
			out := make([]time.Time, 5)
			for i := range out {
				out[i] = time.Date(2019+i, time.January, 1, 0, 0, 0, 0, time.UTC)
			}
			return out
		}(), calendar.Annual),
	)

	It("classifies consecutive weekdays as daily, never business", func() {
		// three weeks of Mon-Fri stamps: the weekend gap of 3 days is
		// not a multiple of 7, and the 1-day gaps rule out weekly
		times := make([]time.Time, 0, 15)
		day := time.Date(2021, time.June, 7, 0, 0, 0, 0, time.UTC) // a Monday
		for len(times) < 15 {
			if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
				times = append(times, day)
			}
			day = day.AddDate(0, 0, 1)
		}

		freq, err := extras.GuessFrequency(times)
		Expect(err).To(BeNil())
		Expect(freq).To(Equal(calendar.Daily))
	})

	It("ignores the input order", func() {
		times := spanDays(jan1, 1, 6)
		shuffled := []time.Time{times[3], times[0], times[5], times[1], times[4], times[2]}
		freq, err := extras.GuessFrequency(shuffled)
		Expect(err).To(BeNil())
		Expect(freq).To(Equal(calendar.Daily))
	})

	It("tolerates gaps in monthly data", func() {
		times := []time.Time{
			time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC),
		}
		freq, err := extras.GuessFrequency(times)
		Expect(err).To(BeNil())
		Expect(freq).To(Equal(calendar.Monthly))
	})

	It("needs at least two timestamps", func() {
		_, err := extras.GuessFrequency([]time.Time{jan1})
		Expect(err).To(MatchError(extras.ErrTooFewDates))
	})

	It("accepts a date sequence directly", func() {
		seq := calendar.NewDateSequence(calendar.Daily, spanDays(jan1, 1, 5))
		freq, err := extras.GuessFrequencyDates(seq)
		Expect(err).To(BeNil())
		Expect(freq).To(Equal(calendar.Daily))
	})
})
