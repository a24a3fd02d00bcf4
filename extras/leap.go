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

// Package extras provides calendar-aware bookkeeping on top of dated
// series: counting truly-missing observations after a frequency
// conversion, reshaping daily and sub-daily data into fixed-width
// annual rows, filtering rows by missing-data thresholds, and guessing
// the sampling frequency of a list of timestamps.
package extras

// IsLeapYear reports whether year is a leap year: divisible by 4,
// except centuries not divisible by 400.
func IsLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// LeapYears applies IsLeapYear element-wise.
func LeapYears(years []int) []bool {
	out := make([]bool, len(years))
	for i, y := range years {
		out[i] = IsLeapYear(y)
	}
	return out
}
