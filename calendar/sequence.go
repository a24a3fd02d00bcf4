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
	"sort"
	"time"
)

// DateSequence is an ordered collection of dates sharing one frequency.
// It is not necessarily sorted; it keeps a 1:1 index correspondence
// with the leading axis of the series it indexes.
type DateSequence []Date

// NewDateSequence stamps the given instants with freq.
func NewDateSequence(freq Frequency, times []time.Time) DateSequence {
	seq := make(DateSequence, len(times))
	for i, t := range times {
		seq[i] = NewDate(freq, t)
	}
	return seq
}

// Freq returns the shared frequency of the sequence, or Undefined when
// empty.
func (seq DateSequence) Freq() Frequency {
	if len(seq) == 0 {
		return Undefined
	}
	return seq[0].Freq()
}

// Times returns the period start instants.
func (seq DateSequence) Times() []time.Time {
	times := make([]time.Time, len(seq))
	for i, d := range seq {
		times[i] = d.Time()
	}
	return times
}

// Years returns the calendar year of every date.
func (seq DateSequence) Years() []int {
	years := make([]int, len(seq))
	for i, d := range seq {
		years[i] = d.Year()
	}
	return years
}

// Months returns the calendar month of every date.
func (seq DateSequence) Months() []time.Month {
	months := make([]time.Month, len(seq))
	for i, d := range seq {
		months[i] = d.Month()
	}
	return months
}

// Sorted reports whether the sequence is in non-decreasing order.
func (seq DateSequence) Sorted() bool {
	for i := 1; i < len(seq); i++ {
		if seq[i].Before(seq[i-1]) {
			return false
		}
	}
	return true
}

// ArgSort returns the permutation that puts the sequence in
// chronological order. The sort is stable so equal dates keep their
// relative positions.
func (seq DateSequence) ArgSort() []int {
	idx := make([]int, len(seq))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return seq[idx[a]].Before(seq[idx[b]])
	})
	return idx
}

// Sort returns a chronologically sorted copy of the sequence.
func (seq DateSequence) Sort() DateSequence {
	out := seq.Clone()
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Before(out[b])
	})
	return out
}

// Clone returns an independently owned copy.
func (seq DateSequence) Clone() DateSequence {
	out := make(DateSequence, len(seq))
	copy(out, seq)
	return out
}
