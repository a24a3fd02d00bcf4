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
	"math"

	"github.com/temporalib/tempora/series"
)

// AcceptAtMostMissing masks the rows of ts that contain more than
// maxMissing missing observations, as counted by CountMissing. A
// maxMissing below 1 is interpreted as the maximum acceptable fraction
// of the row width and rounded to the nearest whole count. With strict
// set, a row is masked only when its missing count is strictly greater
// than the threshold; otherwise reaching the threshold is enough.
//
// The input is never mutated: the result is a new series with
// independently owned mask storage.
func AcceptAtMostMissing(ts *series.TimeSeries, maxMissing float64, strict bool) (*series.TimeSeries, error) {
	if ts == nil {
		return nil, series.ErrInvalidInput
	}
	missing, err := CountMissing(ts)
	if err != nil {
		return nil, err
	}

	threshold := maxMissing
	if maxMissing < 1 {
		threshold = math.Round(maxMissing * float64(ts.Width()))
	}

	out := ts.Copy()
	exceeds := func(n int) bool {
		if strict {
			return float64(n) > threshold
		}
		return float64(n) >= threshold
	}

	if ts.Rank() == 1 {
		if exceeds(missing[0]) {
			for i := 0; i < out.Len(); i++ {
				out.MaskRow(i)
			}
		}
		return out, nil
	}

	for i, n := range missing {
		if exceeds(n) {
			out.MaskRow(i)
		}
	}
	return out, nil
}
