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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// observed gathers the non-missing values of row i.
func (ts *TimeSeries) observed(i int) []float64 {
	out := make([]float64, 0, len(ts.vals[i]))
	for j, v := range ts.vals[i] {
		if !ts.mask[i][j] {
			out = append(out, v)
		}
	}
	return out
}

// RowMean returns the mean of the observed slots in each row. Rows with
// no observations yield NaN.
func (ts *TimeSeries) RowMean() []float64 {
	out := make([]float64, ts.Len())
	for i := range out {
		vals := ts.observed(i)
		if len(vals) == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = stat.Mean(vals, nil)
	}
	return out
}

// RowSum returns the sum of the observed slots in each row.
func (ts *TimeSeries) RowSum() []float64 {
	out := make([]float64, ts.Len())
	for i := range out {
		out[i] = floats.Sum(ts.observed(i))
	}
	return out
}

// RowMax returns the largest observed value in each row, NaN when the
// row is fully missing.
func (ts *TimeSeries) RowMax() []float64 {
	out := make([]float64, ts.Len())
	for i := range out {
		vals := ts.observed(i)
		if len(vals) == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = floats.Max(vals)
	}
	return out
}

// RowMin returns the smallest observed value in each row, NaN when the
// row is fully missing.
func (ts *TimeSeries) RowMin() []float64 {
	out := make([]float64, ts.Len())
	for i := range out {
		vals := ts.observed(i)
		if len(vals) == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = floats.Min(vals)
	}
	return out
}
