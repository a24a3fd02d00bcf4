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
	"time"

	"github.com/temporalib/tempora/calendar"
)

// ColumnKind tags the element type of a record column.
type ColumnKind int

const (
	Float ColumnKind = iota
	Int
	String
	Time
)

// Column is a fixed-type field of a record series with a per-element
// missing indicator. Exactly one of the value slices is populated,
// matching Kind.
type Column struct {
	Name    string
	Kind    ColumnKind
	Floats  []float64
	Ints    []int64
	Strings []string
	Times   []time.Time
	Missing []bool
}

// Len returns the number of elements in the column.
func (c *Column) Len() int { return len(c.Missing) }

// RecordSeries is the structured form of a loaded series: a date index
// plus one typed column per source field, all index-aligned.
type RecordSeries struct {
	Dates   calendar.DateSequence
	Columns []Column
}

// Len returns the number of records.
func (rs *RecordSeries) Len() int { return len(rs.Dates) }

// Column returns the named column, or nil when absent.
func (rs *RecordSeries) Column(name string) *Column {
	for i := range rs.Columns {
		if rs.Columns[i].Name == name {
			return &rs.Columns[i]
		}
	}
	return nil
}

// Names returns the column names in order.
func (rs *RecordSeries) Names() []string {
	names := make([]string, len(rs.Columns))
	for i := range rs.Columns {
		names[i] = rs.Columns[i].Name
	}
	return names
}

// Numeric projects the float and integer columns into a 2-D TimeSeries.
// String and time columns are dropped. Missing elements stay missing in
// the result.
func (rs *RecordSeries) Numeric() (*TimeSeries, error) {
	cols := make([]*Column, 0, len(rs.Columns))
	for i := range rs.Columns {
		if rs.Columns[i].Kind == Float || rs.Columns[i].Kind == Int {
			cols = append(cols, &rs.Columns[i])
		}
	}
	if len(cols) == 0 {
		return nil, ErrNoNumericData
	}

	rows := make([][]float64, rs.Len())
	for i := range rows {
		rows[i] = make([]float64, len(cols))
		for j, col := range cols {
			if col.Kind == Float {
				rows[i][j] = col.Floats[i]
			} else {
				rows[i][j] = float64(col.Ints[i])
			}
		}
	}

	ts, err := New2D(rs.Dates, rows)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cols))
	for j, col := range cols {
		names[j] = col.Name
		for i := range rows {
			if col.Missing[i] {
				ts.SetMissing(i, j)
			}
		}
	}
	ts.SetNames(names)
	return ts, nil
}
