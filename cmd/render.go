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

package cmd

import (
	json "github.com/goccy/go-json"

	"github.com/temporalib/tempora/series"
)

type jsonSeries struct {
	Frequency string       `json:"frequency"`
	Dates     []string     `json:"dates"`
	Columns   []string     `json:"columns,omitempty"`
	Values    [][]*float64 `json:"values"`
}

// renderJSON encodes a series with missing slots as nulls.
func renderJSON(ts *series.TimeSeries) ([]byte, error) {
	out := jsonSeries{
		Frequency: ts.Freq().String(),
		Dates:     make([]string, ts.Len()),
		Columns:   ts.Names(),
		Values:    make([][]*float64, ts.Len()),
	}
	for i, d := range ts.Dates() {
		out.Dates[i] = d.String()
		row := ts.Row(i)
		vals := make([]*float64, len(row))
		for j := range row {
			if !ts.IsMissing(i, j) {
				v := row[j]
				vals[j] = &v
			}
		}
		out.Values[i] = vals
	}
	return json.Marshal(out)
}
