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

// Package series implements a dated array with element-wise missing
// value tracking. A TimeSeries pairs a calendar.DateSequence with a
// 1-D or 2-D float64 payload; for 2-D series the trailing axis holds
// sub-period slots (e.g. 31 day slots per month row).
package series

import (
	"github.com/temporalib/tempora/calendar"
)

// TimeSeries is a dated, masked array. The leading axis always
// corresponds 1:1 with the date sequence. Mask storage is owned by the
// value; transformations that return a new TimeSeries never alias the
// input's mask.
type TimeSeries struct {
	dates calendar.DateSequence
	vals  [][]float64
	mask  [][]bool
	names []string
	rank  int
}

// New creates a 1-D series. Values and dates must align.
func New(dates calendar.DateSequence, values []float64) (*TimeSeries, error) {
	if len(dates) != len(values) {
		return nil, ErrShapeMismatch
	}
	vals := make([][]float64, len(values))
	mask := make([][]bool, len(values))
	for i, v := range values {
		vals[i] = []float64{v}
		mask[i] = []bool{false}
	}
	return &TimeSeries{dates: dates.Clone(), vals: vals, mask: mask, rank: 1}, nil
}

// New2D creates a 2-D series from rectangular rows. One date per row.
func New2D(dates calendar.DateSequence, values [][]float64) (*TimeSeries, error) {
	if len(dates) != len(values) {
		return nil, ErrShapeMismatch
	}
	width := 0
	if len(values) > 0 {
		width = len(values[0])
	}
	vals := make([][]float64, len(values))
	mask := make([][]bool, len(values))
	for i, row := range values {
		if len(row) != width {
			return nil, ErrRaggedRows
		}
		vals[i] = make([]float64, width)
		copy(vals[i], row)
		mask[i] = make([]bool, width)
	}
	return &TimeSeries{dates: dates.Clone(), vals: vals, mask: mask, rank: 2}, nil
}

// NewMasked2D creates a 2-D series of the given width with every slot
// missing. Used as the target of reshape operations.
func NewMasked2D(dates calendar.DateSequence, width int) *TimeSeries {
	vals := make([][]float64, len(dates))
	mask := make([][]bool, len(dates))
	for i := range dates {
		vals[i] = make([]float64, width)
		mask[i] = make([]bool, width)
		for j := range mask[i] {
			mask[i][j] = true
		}
	}
	return &TimeSeries{dates: dates.Clone(), vals: vals, mask: mask, rank: 2}
}

// Len returns the number of entries on the leading axis.
func (ts *TimeSeries) Len() int { return len(ts.dates) }

// Rank returns 1 or 2.
func (ts *TimeSeries) Rank() int { return ts.rank }

// Width returns the trailing-axis length. For 1-D series the trailing
// axis is the only axis, so Width equals Len.
func (ts *TimeSeries) Width() int {
	if ts.rank == 1 {
		return ts.Len()
	}
	if len(ts.vals) == 0 {
		return 0
	}
	return len(ts.vals[0])
}

// Dates returns the date index. Callers must not reorder it in place.
func (ts *TimeSeries) Dates() calendar.DateSequence { return ts.dates }

// Freq returns the frequency of the date index.
func (ts *TimeSeries) Freq() calendar.Frequency { return ts.dates.Freq() }

// Names returns the column labels of the trailing axis, if any.
func (ts *TimeSeries) Names() []string { return ts.names }

// SetNames labels the columns of the trailing axis.
func (ts *TimeSeries) SetNames(names []string) { ts.names = names }

// At returns the value at row i, column j.
func (ts *TimeSeries) At(i, j int) float64 { return ts.vals[i][j] }

// Value returns the i-th entry of a 1-D series.
func (ts *TimeSeries) Value(i int) float64 { return ts.vals[i][0] }

// Set stores a value at row i, column j and marks the slot observed.
// This mutates the receiver in place.
func (ts *TimeSeries) Set(i, j int, v float64) {
	ts.vals[i][j] = v
	ts.mask[i][j] = false
}

// IsMissing reports whether the slot at row i, column j holds no
// observation.
func (ts *TimeSeries) IsMissing(i, j int) bool { return ts.mask[i][j] }

// SetMissing marks the slot at row i, column j missing, in place.
func (ts *TimeSeries) SetMissing(i, j int) { ts.mask[i][j] = true }

// MaskRow marks every slot of row i missing, in place.
func (ts *TimeSeries) MaskRow(i int) {
	for j := range ts.mask[i] {
		ts.mask[i][j] = true
	}
}

// CountRow returns the number of observed (non-missing) slots in row i.
func (ts *TimeSeries) CountRow(i int) int {
	n := 0
	for _, missing := range ts.mask[i] {
		if !missing {
			n++
		}
	}
	return n
}

// Count returns the total number of observed slots.
func (ts *TimeSeries) Count() int {
	n := 0
	for i := range ts.mask {
		n += ts.CountRow(i)
	}
	return n
}

// Row returns a copy of the values in row i.
func (ts *TimeSeries) Row(i int) []float64 {
	out := make([]float64, len(ts.vals[i]))
	copy(out, ts.vals[i])
	return out
}

// Column extracts column j of a 2-D series as a new 1-D series with
// its own storage.
func (ts *TimeSeries) Column(j int) (*TimeSeries, error) {
	if ts.rank != 2 || j < 0 || j >= ts.Width() {
		return nil, ErrInvalidInput
	}
	out, err := New(ts.dates, make([]float64, ts.Len()))
	if err != nil {
		return nil, err
	}
	for i := 0; i < ts.Len(); i++ {
		if ts.mask[i][j] {
			out.SetMissing(i, 0)
		} else {
			out.Set(i, 0, ts.vals[i][j])
		}
	}
	if len(ts.names) == ts.Width() {
		out.names = []string{ts.names[j]}
	}
	return out, nil
}

// ColumnByName extracts the named column as a 1-D series.
func (ts *TimeSeries) ColumnByName(name string) (*TimeSeries, error) {
	for j, n := range ts.names {
		if n == name {
			return ts.Column(j)
		}
	}
	return nil, ErrInvalidInput
}

// Copy returns a deep copy. The copy's mask storage is independently
// owned, so masking rows of the copy can never leak into the receiver
// or any other view of it.
func (ts *TimeSeries) Copy() *TimeSeries {
	out := &TimeSeries{
		dates: ts.dates.Clone(),
		vals:  make([][]float64, len(ts.vals)),
		mask:  make([][]bool, len(ts.mask)),
		rank:  ts.rank,
	}
	if ts.names != nil {
		out.names = make([]string, len(ts.names))
		copy(out.names, ts.names)
	}
	for i := range ts.vals {
		out.vals[i] = make([]float64, len(ts.vals[i]))
		copy(out.vals[i], ts.vals[i])
		out.mask[i] = make([]bool, len(ts.mask[i]))
		copy(out.mask[i], ts.mask[i])
	}
	return out
}
