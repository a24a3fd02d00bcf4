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
	"strings"

	"github.com/olekukonko/tablewriter"
)

// String renders the series as a table. Missing slots print as ".".
func (ts *TimeSeries) String() string {
	s := &strings.Builder{}

	header := make([]string, 0, ts.Width()+1)
	header = append(header, "Date")
	if ts.rank == 1 {
		header = append(header, "Value")
	} else if ts.Len() > 0 && len(ts.names) == len(ts.vals[0]) {
		header = append(header, ts.names...)
	} else {
		for j := 0; j < ts.Width(); j++ {
			header = append(header, fmt.Sprintf("c%d", j))
		}
	}

	table := tablewriter.NewWriter(s)
	table.SetHeader(header)
	footer := make([]string, len(header))
	footer[0] = "Num Rows"
	if len(footer) > 1 {
		footer[1] = fmt.Sprintf("%d", ts.Len())
	}
	table.SetFooter(footer)
	table.SetBorder(false)

	for i := 0; i < ts.Len(); i++ {
		row := make([]string, 0, len(ts.vals[i])+1)
		row = append(row, ts.dates[i].String())
		for j := range ts.vals[i] {
			if ts.mask[i][j] {
				row = append(row, ".")
			} else {
				row = append(row, fmt.Sprintf("%.4f", ts.vals[i][j]))
			}
		}
		table.Append(row)
	}

	table.Render()
	return s.String()
}
